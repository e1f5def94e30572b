package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core/quiz"
)

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type quizApi struct {
	service *quiz.Service
}

func registerQuizAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *quiz.Service) {
	api := quizApi{service: svc}

	qg := g.Group("/quizzes", jwt)
	qg.GET("", api.quizQueryTopics)
	qg.POST("/:topic", api.quizStart)
	qg.POST("/sessions/:id/submit", api.quizSubmit)
	qg.POST("/sessions/:id/next", api.quizNext)
}

func (api *quizApi) quizQueryTopics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, quiz.Topics())
}

func (api *quizApi) quizStart(ctx echo.Context) error {
	state, err := api.service.Start(quiz.Topic(ctx.Param("topic")))
	if err != nil {
		if errors.Is(err, quiz.ErrUnknownTopic) {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, state)
}

func (api *quizApi) quizSubmit(ctx echo.Context) error {
	data := new(SubmitAnswerRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	state, err := api.service.Submit(ctx.Param("id"), data.Answer)
	if err != nil {
		return quizErr(err)
	}
	return ctx.JSON(http.StatusOK, state)
}

func (api *quizApi) quizNext(ctx echo.Context) error {
	state, err := api.service.Next(ctx.Param("id"))
	if err != nil {
		return quizErr(err)
	}
	return ctx.JSON(http.StatusOK, state)
}

func quizErr(err error) error {
	switch {
	case errors.Is(err, quiz.ErrSessionNotFound):
		return errHTTPNotFound
	case errors.Is(err, quiz.ErrNoFeedback):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
