package ollama

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

func TestClient_GenerateTrimsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		var body struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3", body.Model)
		assert.False(t, body.Stream)
		assert.Contains(t, body.Prompt, "QUESTION")

		_ = json.NewEncoder(w).Encode(map[string]any{"response": "  The sky is blue.\n"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	answer, err := c.Generate("CONTEXT\n\nQUESTION: why?")
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", answer)
}

func TestClient_BackendErrorStatusSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.Generate("prompt")
	var gerr *domain.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusInternalServerError, gerr.Status)
}

func TestClient_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.Generate("prompt")
	var gerr *domain.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Zero(t, gerr.Status)
}
