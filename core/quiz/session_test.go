package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yumoapp/aula/core"
)

func TestService_Start(t *testing.T) {
	svc := NewService()

	st, err := svc.Start(TopicMath)
	assert.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, 0, st.QuestionIndex)
	assert.Equal(t, 3, st.TotalQuestions)
	assert.False(t, st.Completed)
	assert.Equal(t, "¿Cuál es la fórmula del Teorema de Pitágoras?", st.Question.Prompt)
	assert.Nil(t, st.Feedback)

	_, err = svc.Start(Topic("historia"))
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{name: "exact answer", answer: "a^2 + b^2 = c^2", wantCorrect: true},
		{name: "case variant", answer: "A^2 + B^2 = C^2", wantCorrect: true},
		{name: "case and space variant", answer: "A^2+B^2=C^2 ", wantCorrect: true},
		{name: "wrong answer", answer: "wrong", wantCorrect: false},
		{name: "no synonym matching", answer: "hipotenusa al cuadrado", wantCorrect: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			st, err := svc.Start(TopicMath)
			assert.NoError(t, err)

			st, err = svc.Submit(st.ID, tt.answer)
			assert.NoError(t, err)
			assert.NotNil(t, st.Feedback)
			assert.Equal(t, tt.wantCorrect, st.Feedback.Correct)
			if tt.wantCorrect {
				assert.Equal(t, "¡Correcto! ✅", st.Feedback.Text)
				assert.Empty(t, st.Feedback.CorrectAnswer)
			} else {
				assert.Equal(t, "a^2 + b^2 = c^2", st.Feedback.CorrectAnswer, "the expected answer is shown")
			}
			// submitting never advances by itself
			assert.Equal(t, 0, st.QuestionIndex)
		})
	}
}

func TestService_Submit_blankAnswerRejected(t *testing.T) {
	svc := NewService()
	st, err := svc.Start(TopicMath)
	assert.NoError(t, err)

	_, err = svc.Submit(st.ID, "   ")
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestService_Next(t *testing.T) {
	svc := NewService()
	st, err := svc.Start(TopicMath)
	assert.NoError(t, err)

	// next before any feedback is rejected
	_, err = svc.Next(st.ID)
	assert.ErrorIs(t, err, ErrNoFeedback)

	st, err = svc.Submit(st.ID, "whatever")
	assert.NoError(t, err)

	st, err = svc.Next(st.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, st.QuestionIndex)
	assert.Nil(t, st.Feedback, "feedback is cleared on advance")
	assert.Equal(t, "¿Cuál es el resultado de (a + b)²?", st.Question.Prompt)
}

func TestService_completion(t *testing.T) {
	svc := NewService()
	st, err := svc.Start(TopicMath)
	assert.NoError(t, err)

	answers := []string{"a^2 + b^2 = c^2", "a^2 + 2ab + b^2", "5"}
	for _, answer := range answers {
		st, err = svc.Submit(st.ID, answer)
		assert.NoError(t, err)
		assert.True(t, st.Feedback.Correct)
		st, err = svc.Next(st.ID)
		assert.NoError(t, err)
	}

	assert.True(t, st.Completed)
	assert.Nil(t, st.Question)
	assert.Equal(t, "¡Has completado el quiz de Matemáticas! 🎉", st.CompletionText)

	// the completed session is gone
	_, err = svc.Submit(st.ID, "5")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_singleChoiceTopics(t *testing.T) {
	svc := NewService()

	st, err := svc.Start(TopicDesign)
	assert.NoError(t, err)
	assert.Equal(t, KindSingleChoice, st.Question.Kind)
	assert.Equal(t, []string{"Criterio A", "Criterio B", "Criterio C", "Criterio D"}, st.Question.Options)

	st, err = svc.Submit(st.ID, "criterio a")
	assert.NoError(t, err)
	assert.True(t, st.Feedback.Correct)

	st, err = svc.Start(TopicProject)
	assert.NoError(t, err)
	st, err = svc.Submit(st.ID, "Planificación")
	assert.NoError(t, err)
	assert.False(t, st.Feedback.Correct)
	assert.Equal(t, "Identificación de un enfoque", st.Feedback.CorrectAnswer)
}

func TestTopics(t *testing.T) {
	infos := Topics()
	assert.Len(t, infos, 3)
	assert.Equal(t, TopicMath, infos[0].Topic)
	assert.Equal(t, "Diseño", infos[1].Title)
	assert.Equal(t, TopicProject, infos[2].Topic)
}
