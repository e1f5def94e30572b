package quiz

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core"
)

var (
	ErrUnknownTopic    = errors.New("unknown quiz topic")
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrNoFeedback: "next" is only enabled once the current answer was checked.
	ErrNoFeedback = errors.New("current question has not been answered yet")
)

// Feedback is the immediate result shown after a submit.
type Feedback struct {
	Correct       bool   `json:"correct"`
	Text          string `json:"text"`
	CorrectAnswer string `json:"correctAnswer,omitempty"` // revealed when wrong
}

// SessionState is the client-visible snapshot of a quiz session.
type SessionState struct {
	ID             string    `json:"id"`
	Topic          Topic     `json:"topic"`
	QuestionIndex  int       `json:"questionIndex"`
	TotalQuestions int       `json:"totalQuestions"`
	Question       *Question `json:"question,omitempty"` // nil once completed
	Feedback       *Feedback `json:"feedback,omitempty"`
	Completed      bool      `json:"completed"`
	CompletionText string    `json:"completionText,omitempty"`
}

type session struct {
	id        string
	topic     Topic
	questions []Question
	index     int
	feedback  *Feedback
}

// Service runs one state machine per active quiz session. Sessions live in
// memory only and are discarded once completed.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewService() *Service {
	return &Service{sessions: make(map[string]*session)}
}

// Start opens a session on the topic's fixed question list.
func (svc *Service) Start(topic Topic) (SessionState, error) {
	data, ok := topics[topic]
	if !ok {
		return SessionState{}, ErrUnknownTopic
	}

	s := &session{
		id:        uuid.NewString(),
		topic:     topic,
		questions: data.questions,
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.sessions[s.id] = s
	return s.state(), nil
}

// Submit checks the answer against the current question and records feedback.
// Comparison is case-insensitive exact equality ignoring whitespace; there is
// no partial credit or synonym matching.
func (svc *Service) Submit(id, answer string) (SessionState, error) {
	if core.CleanString(answer) == "" {
		return SessionState{}, core.NewValidationError(nil,
			core.FieldError{Field: "answer", Error: "an answer is required"})
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, ok := svc.sessions[id]
	if !ok {
		return SessionState{}, ErrSessionNotFound
	}

	q := s.questions[s.index]
	if answersMatch(answer, q.Answer) {
		s.feedback = &Feedback{Correct: true, Text: "¡Correcto! ✅"}
	} else {
		s.feedback = &Feedback{
			Correct:       false,
			Text:          fmt.Sprintf("Incorrecto. La respuesta correcta es: %s ❌", q.Answer),
			CorrectAnswer: q.Answer,
		}
	}
	return s.state(), nil
}

// Next clears the answer feedback and advances to the following question, or
// completes the session after the last one. The completed session is dropped.
func (svc *Service) Next(id string) (SessionState, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, ok := svc.sessions[id]
	if !ok {
		return SessionState{}, ErrSessionNotFound
	}
	if s.feedback == nil {
		return SessionState{}, ErrNoFeedback
	}

	s.feedback = nil
	s.index++

	st := s.state()
	if st.Completed {
		delete(svc.sessions, id)
	}
	return st, nil
}

func (s *session) state() SessionState {
	st := SessionState{
		ID:             s.id,
		Topic:          s.topic,
		QuestionIndex:  s.index,
		TotalQuestions: len(s.questions),
		Feedback:       s.feedback,
	}
	if s.index >= len(s.questions) {
		st.Completed = true
		st.CompletionText = fmt.Sprintf("¡Has completado el quiz de %s! 🎉", topics[s.topic].info.Title)
		return st
	}
	q := s.questions[s.index]
	st.Question = &q
	return st
}

// answersMatch folds case and strips all whitespace, so "A^2+B^2=C^2 " still
// matches "a^2 + b^2 = c^2".
func answersMatch(got, want string) bool {
	return strings.EqualFold(stripSpace(got), stripSpace(want))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
