package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yumoapp/aula/core"
)

type (
	// LoginRequest carries the student's identity as typed on the welcome
	// screen. Any non-empty name signs in; there is no password.
	LoginRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	Student struct {
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
	}

	LoginResponse struct {
		Token   string  `json:"token"`
		Student Student `json:"student"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}
)

func (r *LoginRequest) Validate(validate *validator.Validate) error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email, true)
	return validate.Struct(r)
}

type sessionApi struct {
	validate *validator.Validate
}

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, validate *validator.Validate) {
	api := sessionApi{validate: validate}

	sg := g.Group("/session")
	sg.POST("/login", api.sessionLogin)
	sg.POST("/token-refresh", api.sessionRefreshToken, jwt)
}

func (api *sessionApi) sessionLogin(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	token, err := generateToken(getStudentClaims(data.Name, data.Email))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Student: Student{Name: data.Name, Email: data.Email},
	})
}

func (api *sessionApi) sessionRefreshToken(ctx echo.Context) error {
	token, err := refreshToken(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}
