package agenda

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core"
)

var (
	errInvalidDate      = errors.New("not a real calendar date in YYYY-MM-DD form")
	errEmptyDescription = errors.New("description is required")
)

// Service owns the in-memory, insertion-ordered event collection for the
// lifetime of the agenda screen. Events are not persisted: Reset recreates the
// store with its three seed events, as a fresh screen mount does.
type Service struct {
	mu     sync.RWMutex
	events []Event
}

func NewService() *Service {
	return &Service{events: seedEvents()}
}

func seedEvents() []Event {
	return []Event{
		{ID: uuid.NewString(), Date: mustDate("2025-06-07"), Description: "Revisión Proyecto Personal", Color: ColorYellow},
		{ID: uuid.NewString(), Date: mustDate("2025-06-15"), Description: "Entrega Borrador Diseño", Color: ColorBlue},
		{ID: uuid.NewString(), Date: mustDate("2025-06-22"), Description: "Clase de Matemáticas", Color: ColorRed},
	}
}

func mustDate(val string) time.Time {
	t, err := ParseDate(val)
	if err != nil {
		panic(err)
	}
	return t
}

// Reset drops all user-added events and reseeds the store.
func (svc *Service) Reset() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.events = seedEvents()
}

// AddEvent validates and appends a new event with the default color tag.
// On a validation failure nothing is mutated.
func (svc *Service) AddEvent(dateText, description string) (Event, error) {
	var flds []core.FieldError

	date, err := ParseDate(core.CleanString(dateText))
	if err != nil {
		flds = append(flds, core.FieldError{Field: "date", Error: err.Error()})
	}
	description = core.CleanString(description)
	if description == "" {
		flds = append(flds, core.FieldError{Field: "description", Error: errEmptyDescription.Error()})
	}
	if len(flds) > 0 {
		return Event{}, core.NewValidationError(nil, flds...)
	}

	evt := Event{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Color:       DefaultColor,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.events = append(svc.events, evt)
	return evt, nil
}

// Events returns the whole collection in insertion order.
func (svc *Service) Events() []Event {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	events := make([]Event, len(svc.events))
	copy(events, svc.events)
	return events
}

// EventsForMonth returns the events falling in the given year/month, ascending
// by date; events sharing a date keep their insertion order.
func (svc *Service) EventsForMonth(year int, month time.Month) []Event {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	events := make([]Event, 0)
	for _, evt := range svc.events {
		if evt.Date.Year() == year && evt.Date.Month() == month {
			events = append(events, evt)
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}
