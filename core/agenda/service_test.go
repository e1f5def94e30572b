package agenda

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yumoapp/aula/core"
)

func TestService_AddEvent(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		desc      string
		wantFails []string // offending fields, empty = accepted
	}{
		{name: "valid", date: "2025-07-01", desc: "Math test"},
		{name: "valid with surrounding spaces", date: " 2025-07-01 ", desc: "  Math test  "},
		{name: "rollover date rejected", date: "2025-02-30", desc: "x", wantFails: []string{"date"}},
		{name: "day 31 of a 30-day month rejected", date: "2025-06-31", desc: "x", wantFails: []string{"date"}},
		{name: "unpadded digits rejected", date: "2025-6-7", desc: "x", wantFails: []string{"date"}},
		{name: "garbage date rejected", date: "mañana", desc: "x", wantFails: []string{"date"}},
		{name: "empty description rejected", date: "2025-06-07", desc: "", wantFails: []string{"description"}},
		{name: "whitespace description rejected", date: "2025-06-07", desc: "   \t ", wantFails: []string{"description"}},
		{name: "both invalid", date: "2025-13-01", desc: " ", wantFails: []string{"date", "description"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			before := len(svc.Events())

			evt, err := svc.AddEvent(tt.date, tt.desc)

			if len(tt.wantFails) == 0 {
				assert.NoError(t, err)
				assert.NotEmpty(t, evt.ID)
				assert.Equal(t, DefaultColor, evt.Color)
				assert.Equal(t, strings.TrimSpace(tt.date), evt.DateString())
				assert.Equal(t, strings.TrimSpace(tt.desc), evt.Description)
				assert.Len(t, svc.Events(), before+1)
				return
			}

			var vErr *core.ValidationError
			assert.ErrorAs(t, err, &vErr)
			flds := make([]string, 0, len(vErr.Fields))
			for _, f := range vErr.Fields {
				flds = append(flds, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFails, flds)
			assert.Len(t, svc.Events(), before, "a rejected event must not mutate the store")
		})
	}
}

func TestService_EventsForMonth(t *testing.T) {
	svc := NewService()

	// seeds live in June 2025
	june := svc.EventsForMonth(2025, time.June)
	assert.Len(t, june, 3)
	for _, evt := range june {
		assert.Equal(t, 2025, evt.Date.Year())
		assert.Equal(t, time.June, evt.Date.Month())
	}

	_, err := svc.AddEvent("2025-07-01", "Math test")
	assert.NoError(t, err)

	july := svc.EventsForMonth(2025, time.July)
	assert.Len(t, july, 1)
	assert.Equal(t, "Math test", july[0].Description)

	assert.Empty(t, svc.EventsForMonth(2024, time.June), "same month of another year is excluded")
	assert.Empty(t, svc.EventsForMonth(2025, time.August))
}

func TestService_EventsForMonth_ordering(t *testing.T) {
	svc := NewService()

	_, err := svc.AddEvent("2025-06-02", "late insertion, early date")
	assert.NoError(t, err)
	_, err = svc.AddEvent("2025-06-07", "shares the seed's date")
	assert.NoError(t, err)

	events := svc.EventsForMonth(2025, time.June)
	dates := make([]string, 0, len(events))
	for _, evt := range events {
		dates = append(dates, evt.DateString())
	}
	assert.Equal(t, []string{"2025-06-02", "2025-06-07", "2025-06-07", "2025-06-15", "2025-06-22"}, dates)
	// stable tie-break: the seed (inserted first) comes before the new event
	assert.Equal(t, "Revisión Proyecto Personal", events[1].Description)
	assert.Equal(t, "shares the seed's date", events[2].Description)
}

func TestService_Reset(t *testing.T) {
	svc := NewService()

	_, err := svc.AddEvent("2025-06-25", "Tutoría")
	assert.NoError(t, err)
	assert.Len(t, svc.Events(), 4)

	svc.Reset()
	assert.Len(t, svc.Events(), 3)
}

func TestService_ICS(t *testing.T) {
	svc := NewService()
	out := svc.ICS()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "SUMMARY:Revisión Proyecto Personal")
	assert.Contains(t, out, "SUMMARY:Entrega Borrador Diseño")
	assert.Contains(t, out, "SUMMARY:Clase de Matemáticas")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250607")
}
