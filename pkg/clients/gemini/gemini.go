package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const maxOutputTokens = 1024

// Client defines the interface for the generative-language backend of the
// warehouse assistant.
type Client interface {
	GenerateContent(ctx context.Context, systemInstruction, message string) (string, error)
}

type geminiClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a configured Gemini client. baseURL points at the
// Generative Language API host; tests swap it for an httptest server.
func NewClient(apiKey, baseURL, model string) Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("x-goog-api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &geminiClient{httpClient: client, model: model}
}

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent sends one stateless user message plus the fixed persona
// instruction and returns the first candidate's concatenated text. No
// conversation history is replayed.
func (c *geminiClient) GenerateContent(ctx context.Context, systemInstruction, message string) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: message}}}},
		GenerationConfig:  generationConfig{MaxOutputTokens: maxOutputTokens},
	}

	respBody := new(generateResponse)
	errBody := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(respBody).
		SetError(errBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := errBody.Error.Message
		code := errBody.Error.Code
		if code == 0 {
			code = resp.StatusCode()
		}
		return "", fmt.Errorf("gemini api error: code=%d, message=%s", code, message)
	}

	if len(respBody.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range respBody.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
