package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumoapp/aula/core/quiz"
)

func Test_quizQueryTopics(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	req, rec := newAuthRequest(http.MethodGet, "/v1/quizzes", token)
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var topics []quiz.TopicInfo
	decodeBody(t, rec, &topics)
	require.Len(t, topics, 3)
	assert.Equal(t, quiz.TopicMath, topics[0].Topic)
}

func Test_quizStart(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	t.Run("opens a session on the first question", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/math", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var state quiz.SessionState
		decodeBody(t, rec, &state)
		assert.NotEmpty(t, state.ID)
		assert.Equal(t, 0, state.QuestionIndex)
		require.NotNil(t, state.Question)
		assert.Empty(t, state.Question.Answer) // never leaked to the client
	})

	t.Run("unknown topic is a 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/chemistry", token)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_quizFlow(t *testing.T) {
	server, _ := newTestServer(t)
	token := getToken(t, "Valentina", "")

	start := func(t *testing.T) quiz.SessionState {
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/math", token)
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		var state quiz.SessionState
		decodeBody(t, rec, &state)
		return state
	}

	t.Run("wrong answer reveals the correct one", func(t *testing.T) {
		state := start(t)
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/"+state.ID+"/submit", token,
			[]byte(`{"answer": "no idea"}`))
		server.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		decodeBody(t, rec, &state)
		require.NotNil(t, state.Feedback)
		assert.False(t, state.Feedback.Correct)
		assert.NotEmpty(t, state.Feedback.CorrectAnswer)
	})

	t.Run("next before submitting is rejected", func(t *testing.T) {
		state := start(t)
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/"+state.ID+"/next", token)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("finishing discards the session", func(t *testing.T) {
		id := start(t).ID
		answers := []string{"A^2+B^2=C^2 ", "a^2 + 2ab + b^2", "5"}

		// decode every response into a fresh struct: omitted fields must not
		// inherit values from the previous state
		var state quiz.SessionState
		for i, answer := range answers {
			req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/"+id+"/submit", token,
				marchallObj(t, SubmitAnswerRequest{Answer: answer}))
			server.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			state = quiz.SessionState{}
			decodeBody(t, rec, &state)
			require.NotNil(t, state.Feedback, "question %d", i)
			assert.True(t, state.Feedback.Correct, "question %d", i)

			req, rec = newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/"+id+"/next", token)
			server.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			state = quiz.SessionState{}
			decodeBody(t, rec, &state)
		}

		assert.True(t, state.Completed)
		assert.Contains(t, state.CompletionText, "Matemáticas")
		assert.Nil(t, state.Question)
		assert.Nil(t, state.Feedback)

		// the session is gone once completed
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/"+id+"/next", token)
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown session is a 404", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/quizzes/sessions/nope/submit", token,
			[]byte(`{"answer": "12"}`))
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
