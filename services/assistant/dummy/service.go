package dummyassistant

import (
	"context"

	"github.com/yumoapp/aula/core/chat"
)

// Service echoes a canned reply; it stands in for the real assistant
// in local runs and tests.
type Service struct {
	ReplyText string
	Err       error
}

var _ chat.Assistant = (*Service)(nil)

func NewService() *Service {
	return &Service{ReplyText: "Entendido. ¿En qué más puedo ayudarte?"}
}

func (svc *Service) Reply(ctx context.Context, transcript []chat.Message) (string, error) {
	if svc.Err != nil {
		return "", svc.Err
	}
	return svc.ReplyText, nil
}
