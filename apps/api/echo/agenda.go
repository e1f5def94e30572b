package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yumoapp/aula/core"
	"github.com/yumoapp/aula/core/agenda"
)

type (
	// MonthQuery selects the month shown in the calendar grid; both fields
	// default to the current month when omitted.
	MonthQuery struct {
		Year  int `query:"year" json:"year" validate:"omitempty,min=1970,max=9999"`
		Month int `query:"month" json:"month" validate:"omitempty,min=1,max=12"`
	}

	NewEventRequest struct {
		Date        string `json:"date" validate:"required,datestr"`
		Description string `json:"description" validate:"required"`
	}

	EventResponse struct {
		agenda.Event
		Date string `json:"date"`
	}

	MonthResponse struct {
		Year   int                `json:"year"`
		Month  int                `json:"month"`
		Grid   [][]agenda.DayCell `json:"grid"`
		Events []EventResponse    `json:"events"`
	}
)

func (r *NewEventRequest) Validate(validate *validator.Validate) error {
	r.Date = core.CleanString(r.Date)
	r.Description = core.CleanString(r.Description)
	return validate.Struct(r)
}

func newEventResponse(evt agenda.Event) EventResponse {
	return EventResponse{Event: evt, Date: evt.DateString()}
}

type agendaApi struct {
	service  *agenda.Service
	validate *validator.Validate
}

func registerAgendaAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *agenda.Service, validate *validator.Validate) {
	api := agendaApi{service: svc, validate: validate}

	ag := g.Group("/agenda", jwt)
	ag.GET("", api.agendaRetrieveMonth)
	ag.POST("/events", api.agendaCreateEvent)
	ag.GET("/export.ics", api.agendaExport)
}

func (api *agendaApi) agendaRetrieveMonth(ctx echo.Context) error {
	now := time.Now()

	query := new(MonthQuery)
	if err := ctx.Bind(query); err != nil {
		return err
	}
	if err := api.validate.Struct(query); err != nil {
		return err
	}
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = int(now.Month())
	}

	month := time.Month(query.Month)
	events := api.service.EventsForMonth(query.Year, month)

	res := MonthResponse{
		Year:   query.Year,
		Month:  query.Month,
		Grid:   agenda.MonthGrid(query.Year, month, now, events),
		Events: make([]EventResponse, 0, len(events)),
	}
	for _, evt := range events {
		res.Events = append(res.Events, newEventResponse(evt))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *agendaApi) agendaCreateEvent(ctx echo.Context) error {
	data := new(NewEventRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.service.AddEvent(data.Date, data.Description)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newEventResponse(evt))
}

func (api *agendaApi) agendaExport(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(api.service.ICS()))
}
