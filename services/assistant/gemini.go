package assistantsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/yumoapp/aula/core"
	"github.com/yumoapp/aula/core/chat"
)

// geminiService talks to the Gemini generateContent REST endpoint.
// The full conversation is replayed on every call; Gemini keeps no
// state between requests.
type geminiService struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

var _ chat.Assistant = (*geminiService)(nil)

func NewGeminiService(conf *core.Config) *geminiService {
	return &geminiService{
		baseURL: conf.Assistant.BaseURL,
		model:   conf.Assistant.Model,
		apiKey:  conf.Assistant.ApiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (svc geminiService) Reply(ctx context.Context, transcript []chat.Message) (string, error) {
	payload := geminiRequest{Contents: make([]geminiContent, 0, len(transcript))}
	for _, msg := range transcript {
		role := "user"
		if msg.Speaker == chat.SpeakerAssistant {
			role = "model"
		}
		payload.Contents = append(payload.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "encoding request")
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", svc.baseURL, svc.model, svc.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling assistant")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("calling assistant: status %d", res.StatusCode)
	}

	var data geminiResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", errors.Wrap(err, "decoding response")
	}

	// an OK response with no candidates is not an error; the caller
	// substitutes its own fallback text
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return data.Candidates[0].Content.Parts[0].Text, nil
}
