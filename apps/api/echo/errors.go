package echoapi

import (
	"fmt"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yumoapp/aula/core"
	logsvc "github.com/yumoapp/aula/services/logger"
)

var (
	errUnauthorized       = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errRefreshExpired     = echo.NewHTTPError(http.StatusForbidden, "refresh has expired")
	errHTTPNotFound       = echo.NewHTTPError(http.StatusNotFound, "not found")
	errTokenSigningFailed = echo.NewHTTPError(http.StatusInternalServerError, "failed to sign token")
)

func newAppHTTPErrorHandler(translator ut.Translator, logger core.Logger, shutdown chan<- os.Signal) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int
		var message interface{}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err == middleware.ErrJWTMissing || err.Message == middleware.ErrJWTMissing.Message {
				code = http.StatusUnauthorized
				message = err.Message
				break
			}
			if err.Internal != nil {
				if herr, ok := err.Internal.(*echo.HTTPError); ok {
					err = herr
				}
			}
			code = err.Code
			message = err.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string)
			for _, vErr := range err {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if err.Fields != nil {
				fldErrs := make(map[string]string)
				for _, fErr := range err.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = err.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			args := []interface{}{err}
			// tag the report with the student when a valid token is present
			if claims, cErr := getContextClaims(c); cErr == nil {
				args = append(args, logsvc.Person{ID: claims.Name, Name: claims.Name, Email: claims.Email})
			}
			logger.Error(fmt.Sprintf("%+v", err), args...)
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)

			if core.IsShutdown(err) {
				shutdown <- syscall.SIGTERM
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead { // Issue #608
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, message)
			}
			if err != nil {
				c.Echo().Logger.Error(err)
			}
		}
	}
}
