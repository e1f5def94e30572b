package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yumoapp/aula/core/content"
	"github.com/yumoapp/aula/core/view"
)

type ViewResponse struct {
	Requested     string            `json:"requested"`
	View          view.View         `json:"view"`
	Authenticated bool              `json:"authenticated"`
	Nav           []content.NavItem `json:"nav,omitempty"`
}

type viewApi struct{}

func registerViewAPI(g *echo.Group) {
	api := viewApi{}
	g.GET("/views/:name", api.viewResolve)
}

// viewResolve maps a requested screen name to the one actually shown.
// Unknown names fall back to the dashboard for signed-in students and to
// the welcome screen otherwise, so a stale link never dead-ends.
func (api *viewApi) viewResolve(ctx echo.Context) error {
	_, authed := headerClaims(ctx)
	name := ctx.Param("name")

	res := ViewResponse{
		Requested:     name,
		View:          view.Resolve(name, authed),
		Authenticated: authed,
	}
	if authed {
		res.Nav = content.NavItems
	}
	return ctx.JSON(http.StatusOK, res)
}
