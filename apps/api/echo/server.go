package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/yumoapp/aula/core"
	"github.com/yumoapp/aula/core/agenda"
	"github.com/yumoapp/aula/core/chat"
	"github.com/yumoapp/aula/core/quiz"
	"github.com/yumoapp/aula/core/streak"
)

type (
	ServerDeps struct {
		Conf       *core.Config
		Logger     core.Logger
		StreakSvc  *streak.Service
		AgendaSvc  *agenda.Service
		QuizSvc    *quiz.Service
		ChatSvc    *chat.Service
		EmailSvc   core.EmailService
		Validate   *validator.Validate
		Translator ut.Translator
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Translator, s.deps.Logger, s.shutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := configureAuth(conf)

	registerSessionAPI(v1, jwt, s.deps.Validate)
	registerViewAPI(v1)
	registerStreakAPI(v1, jwt, s.deps.StreakSvc)
	registerDashboardAPI(v1, jwt, s.deps.StreakSvc)
	registerAgendaAPI(v1, jwt, s.deps.AgendaSvc, s.deps.Validate)
	registerQuizAPI(v1, jwt, s.deps.QuizSvc)
	registerChatAPI(v1, jwt, s.deps.ChatSvc)
	registerContentAPI(v1, jwt, s.deps.EmailSvc, s.deps.Validate)
}

func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Host); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errs }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Aula API!")
}
