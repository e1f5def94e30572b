package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/yumoapp/aula/core"
	"github.com/yumoapp/aula/core/agenda"
	"github.com/yumoapp/aula/core/chat"
	"github.com/yumoapp/aula/core/quiz"
	"github.com/yumoapp/aula/core/streak"
	dummyassistant "github.com/yumoapp/aula/services/assistant/dummy"
	emailsvc "github.com/yumoapp/aula/services/email"
	"github.com/yumoapp/aula/storage/kv"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newTestConfig() *core.Config {
	conf := &core.Config{
		TestMode:         true,
		Env:              "test",
		AppName:          "Aula",
		SecretKey:        "secret",
		DefaultFromEmail: mail.Address{Name: "Aula", Address: "noreply@localhost"},
	}
	conf.Server.Host = "localhost:8000"
	conf.Server.JWTExpirationDelta = 10 * time.Minute
	conf.Server.JWTRefreshExpirationDelta = 4 * time.Hour
	return conf
}

type testDeps struct {
	conf      *core.Config
	assistant *dummyassistant.Service
	emailSvc  core.EmailService
	streakSvc *streak.Service
	agendaSvc *agenda.Service
	quizSvc   *quiz.Service
	chatSvc   *chat.Service
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()

	conf := newTestConfig()
	assistant := dummyassistant.NewService()
	// sends run synchronously and land in emailsvc.SentMessages
	emailSvc := emailsvc.NewConsoleServiceMock(conf)

	deps := &testDeps{
		conf:      conf,
		assistant: assistant,
		emailSvc:  emailSvc,
		streakSvc: streak.NewService(kv.NewInMemStore()),
		agendaSvc: agenda.NewService(),
		quizSvc:   quiz.NewService(),
		chatSvc:   chat.NewService(assistant, nopLogger{}),
	}

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     nopLogger{},
		StreakSvc:  deps.streakSvc,
		AgendaSvc:  deps.agendaSvc,
		QuizSvc:    deps.quizSvc,
		ChatSvc:    deps.chatSvc,
		EmailSvc:   emailSvc,
		Validate:   validate,
		Translator: translator,
	})
	return server, deps
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// getToken must run after the server is built so the signing config is set.
func getToken(t *testing.T, name, email string) string {
	t.Helper()
	token, err := generateToken(getStudentClaims(name, email))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
