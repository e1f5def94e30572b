package agenda

import (
	ics "github.com/arran4/golang-ical"
)

// ICS serializes the stored events as an iCalendar document, one all-day
// VEVENT per event, so the agenda can be subscribed to from a calendar app.
func (svc *Service) ICS() string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Aula//Agenda//ES")

	for _, evt := range svc.Events() {
		ve := cal.AddEvent(evt.ID)
		ve.SetSummary(evt.Description)
		ve.SetAllDayStartAt(evt.Date)
		ve.SetAllDayEndAt(evt.Date.AddDate(0, 0, 1))
		ve.AddProperty(ics.ComponentPropertyCategories, string(evt.Color))
	}
	return cal.Serialize()
}
