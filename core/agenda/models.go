package agenda

import (
	"regexp"
	"time"

	"github.com/yumoapp/aula/core"
)

// Color is the display category attached to an event's day cell.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorIndigo Color = "indigo"

	// DefaultColor tags user-added events; seed events carry fixed colors.
	DefaultColor = ColorIndigo
)

// Event is one description attached to one calendar date.
type Event struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"-"` // local midnight; wire form is YYYY-MM-DD
	Description string    `json:"description"`
	Color       Color     `json:"color"`
}

// DateString returns the event date in its unambiguous wire form.
func (e Event) DateString() string {
	return e.Date.Format(core.DateLayout)
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a YYYY-MM-DD string into a local-midnight date. It rejects
// anything that is not a real calendar date written exactly in that form:
// time.Parse's strict layout never rolls 2025-02-30 over into March.
func ParseDate(val string) (time.Time, error) {
	if !dateRegex.MatchString(val) {
		return time.Time{}, errInvalidDate
	}
	t, err := time.Parse(core.DateLayout, val)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}
