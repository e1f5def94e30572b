package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumoapp/aula/core/streak"
)

func Test_streakRetrieve(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/streak")
		server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("first visit starts the streak at 1", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/streak", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var st streak.State
		decodeBody(t, rec, &st)
		assert.Equal(t, 1, st.Count)
		assert.False(t, st.BonusClaimedToday)
	})

	t.Run("reloading the same day does not grow it", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/streak", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var st streak.State
		decodeBody(t, rec, &st)
		assert.Equal(t, 1, st.Count)
	})
}

func Test_streakClaimBonus(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	// seed today's state
	req, rec := newAuthRequest(http.MethodGet, "/v1/streak", token)
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("first claim adds one", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/streak/claim-bonus", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var st streak.State
		decodeBody(t, rec, &st)
		assert.Equal(t, 2, st.Count)
		assert.True(t, st.BonusClaimedToday)
	})

	t.Run("second claim the same day is a no-op", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/streak/claim-bonus", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var st streak.State
		decodeBody(t, rec, &st)
		assert.Equal(t, 2, st.Count)
		assert.True(t, st.BonusClaimedToday)
	})
}

func Test_dashboardRetrieve(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	t.Run("requires auth", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
		req, rec := newRequest(http.MethodGet, "/v1/dashboard")
		server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("returns cards, nav and an advanced streak", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var res DashboardResponse
		decodeBody(t, rec, &res)
		assert.Equal(t, 1, res.Streak.Count)
		assert.NotEmpty(t, res.Content.Videos)
		assert.NotEmpty(t, res.Content.Announcement.Body)
		assert.NotEmpty(t, res.Nav)
	})
}
