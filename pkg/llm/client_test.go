package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRoundTrip(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"choices": [{
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{
						"id": "call_1",
						"type": "function",
						"function": {"name": "fetch_commit", "arguments": "{\"sha\":\"abc\"}"}
					}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 30}
		}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "key-1")
	resp, err := c.Chat(context.Background(), &ChatRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{Role: RoleSystem, Content: "You classify events."},
			{Role: RoleUser, Content: "classify this"},
		},
		Tools: []ToolDefinition{
			{Name: "fetch_commit", Description: "fetch a commit", Parameters: json.RawMessage(`{"type":"object"}`)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "tool_calls", resp.FinishReason)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "fetch_commit", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{"sha":"abc"}`, resp.ToolCalls[0].Arguments)
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, 30, resp.Usage.OutputTokens)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	tools, ok := gotBody["tools"].([]any)
	require.True(t, ok)
	assert.Len(t, tools, 1)
}

func TestChatHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "")
	_, err := c.Chat(context.Background(), &ChatRequest{Model: "gpt-4o"})
	assert.ErrorContains(t, err, "HTTP 503")
}

func TestEstimateCostUSD(t *testing.T) {
	tests := []struct {
		name  string
		model string
		usage Usage
		want  float64
	}{
		{"known model", "gpt-4o-mini", Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}, 0.75},
		{"zero usage", "gpt-4o", Usage{}, 0},
		{"unknown model ceiling", "mystery-9000", Usage{InputTokens: 1_000_000}, 15.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateCostUSD(tt.model, tt.usage), 1e-9)
		})
	}
}

func TestUnknownModelCostsMoreThanKnown(t *testing.T) {
	usage := Usage{InputTokens: 10_000, OutputTokens: 10_000}
	assert.Greater(t, EstimateCostUSD("unknown", usage), EstimateCostUSD("gpt-4o", usage))
}
