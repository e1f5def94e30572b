package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core"
)

// ErrReplyPending guards against re-submission while a reply is in flight.
var ErrReplyPending = errors.New("a reply is already pending for this conversation")

// Assistant is the external generative-text collaborator. A nil-error empty
// reply means the API answered with nothing usable; an error means it could
// not be reached or understood at all.
type Assistant interface {
	Reply(ctx context.Context, transcript []Message) (string, error)
}

type conversation struct {
	messages []Message
	awaiting bool
}

// Service keeps one ordered transcript per conversation and relays it to the
// Assistant on each send. API failures never propagate: they turn into canned
// assistant entries.
type Service struct {
	mu        sync.Mutex
	assistant Assistant
	logger    core.Logger
	convos    map[string]*conversation
}

func NewService(assistant Assistant, logger core.Logger) *Service {
	return &Service{
		assistant: assistant,
		logger:    logger,
		convos:    make(map[string]*conversation),
	}
}

// Transcript returns the conversation's messages, opening it with the
// assistant's greeting when seen for the first time.
func (svc *Service) Transcript(id string) []Message {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return snapshot(svc.conversation(id).messages)
}

// Send appends the user entry, forwards the full transcript to the Assistant
// and appends its reply. While a reply is pending, further sends on the same
// conversation are rejected with ErrReplyPending. There is no timeout beyond
// whatever `ctx` carries.
func (svc *Service) Send(ctx context.Context, id, text string) ([]Message, error) {
	text = core.CleanString(text)
	if text == "" {
		return nil, core.NewValidationError(nil,
			core.FieldError{Field: "text", Error: "a message is required"})
	}

	svc.mu.Lock()
	convo := svc.conversation(id)
	if convo.awaiting {
		svc.mu.Unlock()
		return nil, ErrReplyPending
	}
	convo.awaiting = true
	convo.messages = append(convo.messages, Message{Speaker: SpeakerUser, Text: text})
	transcript := snapshot(convo.messages)
	svc.mu.Unlock()

	reply, err := svc.assistant.Reply(ctx, transcript)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	convo.awaiting = false

	switch {
	case err != nil:
		svc.logger.Error(fmt.Sprintf("assistant reply: %v", err), errors.Wrap(err, "assistant reply"))
		reply = ConnErrorText
	case core.CleanString(reply) == "":
		reply = NoAnswerText
	}
	convo.messages = append(convo.messages, Message{Speaker: SpeakerAssistant, Text: reply})
	return snapshot(convo.messages), nil
}

// conversation returns (creating if needed) the conversation. Callers hold the lock.
func (svc *Service) conversation(id string) *conversation {
	convo, ok := svc.convos[id]
	if !ok {
		convo = &conversation{messages: []Message{{Speaker: SpeakerAssistant, Text: GreetingText}}}
		svc.convos[id] = convo
	}
	return convo
}

func snapshot(messages []Message) []Message {
	out := make([]Message, len(messages))
	copy(out, messages)
	return out
}
