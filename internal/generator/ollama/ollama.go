// Package ollama sends assembled prompts to an Ollama generation
// backend.
package ollama

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// Client issues single-turn, non-streaming generate calls. No
// conversation history is forwarded: every call is stateless from the
// model's perspective, and any multi-turn feel comes from re-assembling
// retrieved context per question.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Generate sends the prompt and returns the backend's answer text,
// whitespace-trimmed. Transport failures and non-success statuses
// surface as GenerationError so the orchestrator can substitute a
// user-visible fallback instead of propagating a fault.
func (c *Client) Generate(prompt string) (string, error) {
	body := map[string]any{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
	}
	data, _ := json.Marshal(body)
	url := fmt.Sprintf("%s/api/generate", c.baseURL)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.GenerationError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &domain.GenerationError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("generate returned %s", resp.Status),
		}
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &domain.GenerationError{Err: err}
	}
	return strings.TrimSpace(out.Response), nil
}
