package agenda

import (
	"time"

	"github.com/yumoapp/aula/core"
)

// DayCell is one cell of the rendered month grid. A zero Day marks a blank
// padding cell outside the month.
type DayCell struct {
	Day      int   `json:"day"`
	HasEvent bool  `json:"hasEvent"`
	Color    Color `json:"color,omitempty"`
	IsToday  bool  `json:"isToday"`
}

// LeadingBlanks is the number of empty cells before day 1 in a Monday-first
// week layout.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	if first.Weekday() == time.Sunday {
		return 6
	}
	return int(first.Weekday()) - 1
}

// MonthGrid renders the Monday-first calendar grid for a month: weeks of seven
// cells, each day cell carrying whether an event falls on it and whether it is
// `today`. Pure function of its inputs.
//
// A day cell reflects only the first event found on its date; when several
// events share a date the later ones do not alter the cell. Kept as-is from
// the original behavior — arguably a latent limitation rather than a feature.
func MonthGrid(year int, month time.Month, today time.Time, events []Event) [][]DayCell {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	cells := make([]DayCell, LeadingBlanks(year, month), daysInMonth+13)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cell := DayCell{Day: day, IsToday: core.SameDay(date, today)}
		for _, evt := range events {
			if core.SameDay(evt.Date, date) {
				cell.HasEvent = true
				cell.Color = evt.Color
				break
			}
		}
		cells = append(cells, cell)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, DayCell{})
	}

	weeks := make([][]DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
