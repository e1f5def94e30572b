package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core/chat"
)

type (
	NewChatMessageRequest struct {
		Text string `json:"text"`
	}

	AssistantInfo struct {
		Name           string `json:"name"`
		AvatarURL      string `json:"avatarUrl"`
		AvatarFallback string `json:"avatarFallback"`
	}

	TranscriptResponse struct {
		Assistant AssistantInfo  `json:"assistant"`
		Messages  []chat.Message `json:"messages"`
	}
)

func newTranscriptResponse(messages []chat.Message) TranscriptResponse {
	return TranscriptResponse{
		Assistant: AssistantInfo{
			Name:           chat.AssistantName,
			AvatarURL:      chat.AvatarURL,
			AvatarFallback: chat.AvatarFallback,
		},
		Messages: messages,
	}
}

type chatApi struct {
	service *chat.Service
}

func registerChatAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *chat.Service) {
	api := chatApi{service: svc}

	cg := g.Group("/chat", jwt)
	cg.GET("/:session", api.chatRetrieveTranscript)
	cg.POST("/:session/messages", api.chatSendMessage)
}

func (api *chatApi) chatRetrieveTranscript(ctx echo.Context) error {
	messages := api.service.Transcript(ctx.Param("session"))
	return ctx.JSON(http.StatusOK, newTranscriptResponse(messages))
}

func (api *chatApi) chatSendMessage(ctx echo.Context) error {
	data := new(NewChatMessageRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	messages, err := api.service.Send(ctx.Request().Context(), ctx.Param("session"), data.Text)
	if err != nil {
		if errors.Is(err, chat.ErrReplyPending) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, newTranscriptResponse(messages))
}
