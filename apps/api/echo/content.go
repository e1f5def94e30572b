package echoapi

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/yumoapp/aula/core"
	"github.com/yumoapp/aula/core/content"
)

// EmailAnnouncementRequest optionally overrides the recipient; by default
// the announcement goes to the signed-in student's own address.
type EmailAnnouncementRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

func (r *EmailAnnouncementRequest) Validate(validate *validator.Validate) error {
	r.Email = core.CleanString(r.Email, true)
	return validate.Struct(r)
}

type contentApi struct {
	emailSvc core.EmailService
	validate *validator.Validate
}

func registerContentAPI(g *echo.Group, jwt echo.MiddlewareFunc, emailSvc core.EmailService, validate *validator.Validate) {
	api := contentApi{emailSvc: emailSvc, validate: validate}

	g.GET("/content/pages/:page", api.contentRetrievePage, jwt)

	ag := g.Group("/announcements", jwt)
	ag.GET("", api.announcementQuery)
	ag.POST("/email", api.announcementEmail)
}

func (api *contentApi) contentRetrievePage(ctx echo.Context) error {
	page, ok := content.PageBySlug(ctx.Param("page"))
	if !ok {
		return errHTTPNotFound
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *contentApi) announcementQuery(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, []content.Announcement{content.TeacherAnnouncement})
}

func (api *contentApi) announcementEmail(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	data := new(EmailAnnouncementRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	addr := data.Email
	if addr == "" {
		addr = claims.Email
	}
	if addr == "" {
		return core.NewValidationError(nil,
			core.FieldError{Field: "email", Error: "no known address; provide one"})
	}

	ann := content.TeacherAnnouncement
	api.emailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: claims.Name, Address: addr}},
		Subject: ann.Title,
		BodyStr: fmt.Sprintf("%s\n\n%s", ann.Body, ann.Teacher),
	})
	return ctx.NoContent(http.StatusAccepted)
}
