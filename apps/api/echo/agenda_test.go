package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_agendaRetrieveMonth(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/agenda")
		server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("returns the seeded month", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/agenda?year=2025&month=6", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res MonthResponse
		decodeBody(t, rec, &res)
		assert.Equal(t, 2025, res.Year)
		assert.Equal(t, 6, res.Month)
		require.Len(t, res.Events, 3)
		assert.Equal(t, "2025-06-07", res.Events[0].Date)
		assert.Equal(t, "Revisión Proyecto Personal", res.Events[0].Description)

		// June 2025 starts on a Sunday: six leading blanks, six rows
		require.Len(t, res.Grid, 6)
		for _, week := range res.Grid {
			assert.Len(t, week, 7)
		}
		for _, cell := range res.Grid[0][:6] {
			assert.Zero(t, cell.Day)
		}
	})

	t.Run("month out of range is rejected", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/agenda?year=2025&month=13", token)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_agendaCreateEvent(t *testing.T) {
	server, deps := newTestServer(t)
	token := getToken(t, "Valentina", "")

	tests := []httpTest{
		{
			name:     "valid event is stored",
			method:   http.MethodPost,
			path:     "/v1/agenda/events",
			body:     []byte(`{"date": "2025-06-30", "description": "Examen final"}`),
			token:    token,
			wantCode: http.StatusCreated,
		},
		{
			name:     "rollover date is rejected",
			method:   http.MethodPost,
			path:     "/v1/agenda/events",
			body:     []byte(`{"date": "2025-02-30", "description": "Examen"}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"date": "must be a real calendar date in YYYY-MM-DD format",
			}),
		},
		{
			name:     "unpadded date is rejected",
			method:   http.MethodPost,
			path:     "/v1/agenda/events",
			body:     []byte(`{"date": "2025-6-7", "description": "Examen"}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"date": "must be a real calendar date in YYYY-MM-DD format",
			}),
		},
		{
			name:     "both fields reported at once",
			method:   http.MethodPost,
			path:     "/v1/agenda/events",
			body:     []byte(`{"date": "nope", "description": "  "}`),
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"date":        "must be a real calendar date in YYYY-MM-DD format",
				"description": "this field is required",
			}),
			extra: []string{"date", "description"},
		},
		{
			name:     "requires auth",
			method:   http.MethodPost,
			path:     "/v1/agenda/events",
			body:     []byte(`{"date": "2025-06-30", "description": "Examen final"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			switch {
			case tt.wantCode == http.StatusCreated:
				var res EventResponse
				decodeBody(t, rec, &res)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "2025-06-30", res.Date)
			case tt.extra != nil:
				var fields map[string]string
				decodeBody(t, rec, &fields)
				for _, fld := range tt.extra.([]string) {
					assert.Contains(t, fields, fld)
				}
			}
		})
	}

	// only the valid event made it in
	assert.Len(t, deps.agendaSvc.Events(), 4)
}

func Test_agendaExport(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	req, rec := newAuthRequest(http.MethodGet, "/v1/agenda/export.ics", token)
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/calendar"))
	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:Revisión Proyecto Personal")
}
