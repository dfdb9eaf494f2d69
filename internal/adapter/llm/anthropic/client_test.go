package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phrasegen-backend/internal/adapter/llm"
	"github.com/heartmarshall/phrasegen-backend/internal/config"
	"github.com/heartmarshall/phrasegen-backend/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.LLMConfig{
		APIKey:      "test-key",
		Model:       "claude-test",
		BaseURL:     srv.URL,
		Temperature: 0.5,
		MaxTokens:   1024,
		Timeout:     5 * time.Second,
	})
}

func TestClient_Generate_ExtractsJSON(t *testing.T) {
	t.Parallel()

	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-test",
			"content": [{"type": "text", "text": "Sure!\n`+"```json"+`\n{\"phrases\": []}\n`+"```"+`"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`)
	})

	out, err := c.Generate(context.Background(), domain.PromptConfig{
		SystemPrompt: "system text",
		UserPrompt:   "user text",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"phrases": []}`, string(out))
	assert.Equal(t, "claude-test", got["model"])
	assert.EqualValues(t, 1024, got["max_tokens"])
	assert.EqualValues(t, 0.5, got["temperature"])
}

func TestClient_Generate_PromptModelOverrides(t *testing.T) {
	t.Parallel()

	var model string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		model = body.Model
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"m","type":"message","role":"assistant","model":"x",
			"content":[{"type":"text","text":"{\"phrases\":[]}"}],
			"usage":{"input_tokens":1,"output_tokens":1}}`)
	})

	_, err := c.Generate(context.Background(), domain.PromptConfig{Model: "claude-other"})

	require.NoError(t, err)
	assert.Equal(t, "claude-other", model)
}

func TestClient_Generate_RateLimitCarriesStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`)
	})

	_, err := c.Generate(context.Background(), domain.PromptConfig{})

	var se *llm.StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, se.HTTPStatus())
	assert.Equal(t, Brand, se.Provider)
}

func TestClient_Generate_NoText(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"m","type":"message","role":"assistant","model":"x",
			"content":[],"usage":{"input_tokens":1,"output_tokens":0}}`)
	})

	_, err := c.Generate(context.Background(), domain.PromptConfig{})

	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
}
