package echoapi

import (
	"net/http"
	"os"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logsvc "github.com/yumoapp/aula/services/logger"
)

type recordingLogger struct {
	nopLogger
	errArgs [][]interface{}
}

func (l *recordingLogger) Error(msg string, args ...interface{}) {
	l.errArgs = append(l.errArgs, args)
}

func Test_appHTTPErrorHandler_serverError(t *testing.T) {
	newTestServer(t) // sets the signing config

	logger := &recordingLogger{}
	handler := newAppHTTPErrorHandler(newTestTranslator(), logger, make(chan os.Signal, 1))

	newCtx := func() echo.Context {
		app := echo.New()
		req, rec := newRequest(http.MethodGet, "/v1/streak")
		return app.NewContext(req, rec)
	}

	t.Run("reports are tagged with the signed-in student", func(t *testing.T) {
		ctx := newCtx()
		ctx.Set(jwtConfig.ContextKey, &jwt.Token{Claims: getStudentClaims("Valentina", "valentina@example.com")})

		handler(errors.New("boom"), ctx)

		require.Len(t, logger.errArgs, 1)
		var person logsvc.Person
		var found bool
		for _, arg := range logger.errArgs[0] {
			if p, ok := arg.(logsvc.Person); ok {
				person, found = p, true
			}
		}
		require.True(t, found, "expected a Person arg on the error report")
		assert.Equal(t, "Valentina", person.Name)
		assert.Equal(t, "valentina@example.com", person.Email)
	})

	t.Run("anonymous errors carry no person", func(t *testing.T) {
		logger.errArgs = nil
		ctx := newCtx()

		handler(errors.New("boom"), ctx)

		require.Len(t, logger.errArgs, 1)
		for _, arg := range logger.errArgs[0] {
			_, ok := arg.(logsvc.Person)
			assert.False(t, ok, "no Person expected without a token")
		}
	})
}
