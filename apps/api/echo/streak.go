package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yumoapp/aula/core/content"
	"github.com/yumoapp/aula/core/streak"
)

type streakApi struct {
	service *streak.Service
}

func registerStreakAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *streak.Service) {
	api := streakApi{service: svc}

	sg := g.Group("/streak", jwt)
	sg.GET("", api.streakRetrieve)
	sg.POST("/claim-bonus", api.streakClaimBonus)
}

func (api *streakApi) streakRetrieve(ctx echo.Context) error {
	st, err := api.service.LoadOrAdvance(time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *streakApi) streakClaimBonus(ctx echo.Context) error {
	st, err := api.service.ClaimDailyBonus()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

type DashboardResponse struct {
	Content content.Dashboard `json:"content"`
	Streak  streak.State      `json:"streak"`
	Nav     []content.NavItem `json:"nav"`
}

type dashboardApi struct {
	streakSvc *streak.Service
}

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, streakSvc *streak.Service) {
	api := dashboardApi{streakSvc: streakSvc}
	g.GET("/dashboard", api.dashboardRetrieve, jwt)
}

// dashboardRetrieve assembles the home screen. Loading it counts as the
// day's visit, so the streak advances here.
func (api *dashboardApi) dashboardRetrieve(ctx echo.Context) error {
	st, err := api.streakSvc.LoadOrAdvance(time.Now())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DashboardResponse{
		Content: content.DashboardContent,
		Streak:  st,
		Nav:     content.NavItems,
	})
}
