package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/pkg/llm"
)

// scriptedLLM replays canned responses and records every request it sees.
type scriptedLLM struct {
	responses []*llm.ChatResponse
	err       error
	requests  []*llm.ChatRequest
}

func (s *scriptedLLM) Chat(_ context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return nil, errors.New("scripted llm: no responses left")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func textResponse(content, finish string) *llm.ChatResponse {
	return &llm.ChatResponse{
		Content:      content,
		FinishReason: finish,
		Usage:        llm.Usage{InputTokens: 100, OutputTokens: 50},
	}
}

func TestRunCompletesOnStop(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		textResponse(`{"classification":"maintenance"}`, "stop"),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{AgentType: "classifier", Model: "gpt-4o-mini", MaxTurns: 5}
	result, err := runner.Run(context.Background(), spec, "ev-1", "classify this")
	require.NoError(t, err)

	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.Turns)
	assert.Equal(t, `{"classification":"maintenance"}`, result.Content)
	assert.Equal(t, 100, result.Usage.InputTokens)
	assert.Equal(t, 50, result.Usage.OutputTokens)
	assert.Greater(t, result.CostUSD, 0.0)
}

func TestRunDispatchesToolCalls(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		{
			ToolCalls: []llm.ToolCall{
				{ID: "call_1", Name: "echo", Arguments: `{"text":"hello"}`},
			},
			FinishReason: "tool_calls",
			Usage:        llm.Usage{InputTokens: 80, OutputTokens: 20},
		},
		textResponse("done", "stop"),
	}}
	runner := NewRunner(fake, nil)

	var gotArgs map[string]any
	spec := &Spec{
		AgentType: "analyzer",
		Model:     "gpt-4o",
		MaxTurns:  5,
		Tools: []Tool{{
			Name: "echo",
			Run: func(_ context.Context, args map[string]any) (string, bool) {
				gotArgs = args
				return "echoed: " + args["text"].(string), false
			},
		}},
	}

	result, err := runner.Run(context.Background(), spec, "vuln-1", "analyze")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, 2, result.Turns)
	assert.Equal(t, map[string]any{"text": "hello"}, gotArgs)

	// The second request must carry the assistant tool-call turn and the
	// tool result.
	require.Len(t, fake.requests, 2)
	msgs := fake.requests[1].Messages
	require.Len(t, msgs, 4)
	assert.Equal(t, llm.RoleAssistant, msgs[2].Role)
	require.Len(t, msgs[2].ToolCalls, 1)
	assert.Equal(t, llm.RoleTool, msgs[3].Role)
	assert.Equal(t, "call_1", msgs[3].ToolCallID)
	assert.Equal(t, "echoed: hello", msgs[3].Content)

	// Usage accumulates across both calls.
	assert.Equal(t, 180, result.Usage.InputTokens)
	assert.Equal(t, 70, result.Usage.OutputTokens)
}

func TestRunTruncatesLongToolOutput(t *testing.T) {
	long := strings.Repeat("x", maxToolResultChars+500)
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		{
			ToolCalls:    []llm.ToolCall{{ID: "c1", Name: "big", Arguments: `{}`}},
			FinishReason: "tool_calls",
		},
		textResponse("ok", "stop"),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{
		AgentType: "analyzer",
		Model:     "gpt-4o",
		MaxTurns:  3,
		Tools: []Tool{{
			Name: "big",
			Run:  func(context.Context, map[string]any) (string, bool) { return long, false },
		}},
	}

	_, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)

	toolMsg := fake.requests[1].Messages[3]
	assert.Equal(t, llm.RoleTool, toolMsg.Role)
	assert.Len(t, toolMsg.Content, maxToolResultChars+len(truncationNotice))
	assert.True(t, strings.HasSuffix(toolMsg.Content, truncationNotice))
}

func TestRunUnknownToolFedBackAsError(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		{
			ToolCalls:    []llm.ToolCall{{ID: "c1", Name: "nope", Arguments: `{}`}},
			FinishReason: "tool_calls",
		},
		textResponse("ok", "stop"),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{AgentType: "classifier", Model: "gpt-4o-mini", MaxTurns: 3}
	result, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)

	toolMsg := fake.requests[1].Messages[3]
	assert.Contains(t, toolMsg.Content, `unknown tool "nope"`)
}

func TestRunInjectsUrgencyMessage(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		textResponse("thinking...", ""),
		textResponse("thinking more...", ""),
		textResponse("final answer", "stop"),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{
		AgentType:      "analyzer",
		Model:          "gpt-4o",
		MaxTurns:       4,
		UrgencyMessage: "Wrap up now.",
	}
	result, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, 3, result.Turns)

	// The urgency turn appears in the third request (turn 3 of 4 = two
	// turns remaining), exactly once.
	require.Len(t, fake.requests, 3)
	count := func(req *llm.ChatRequest) int {
		n := 0
		for _, m := range req.Messages {
			if m.Role == llm.RoleUser && m.Content == "Wrap up now." {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 0, count(fake.requests[0]))
	assert.Equal(t, 0, count(fake.requests[1]))
	assert.Equal(t, 1, count(fake.requests[2]))
}

func TestRunEarlyStop(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		textResponse(`{"vuln_type":"buffer_overflow"}`, ""),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{
		AgentType: "analyzer",
		Model:     "gpt-4o",
		MaxTurns:  10,
		EarlyStop: func(content string) bool {
			return strings.Contains(content, "vuln_type")
		},
	}
	result, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, 1, result.Turns)
}

func TestRunExhaustionValidContentCompletes(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		textResponse("partial", ""),
		textResponse(`{"ok":true}`, ""),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{
		AgentType: "analyzer",
		Model:     "gpt-4o",
		MaxTurns:  2,
		Validate: func(content string) error {
			if strings.HasPrefix(content, "{") {
				return nil
			}
			return errors.New("not json")
		},
	}
	result, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, result.Status)
	assert.Equal(t, 2, result.Turns)
}

func TestRunExhaustionUnusableContentTimesOut(t *testing.T) {
	fake := &scriptedLLM{responses: []*llm.ChatResponse{
		textResponse("rambling", ""),
		textResponse("more rambling", ""),
	}}
	runner := NewRunner(fake, nil)

	spec := &Spec{
		AgentType: "classifier",
		Model:     "gpt-4o-mini",
		MaxTurns:  2,
		Validate:  func(string) error { return errors.New("unparseable") },
	}
	result, err := runner.Run(context.Background(), spec, "t", "go")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusTimeout, result.Status)
}

func TestRunLLMErrorFails(t *testing.T) {
	fake := &scriptedLLM{err: errors.New("upstream unavailable")}
	runner := NewRunner(fake, nil)

	spec := &Spec{AgentType: "classifier", Model: "gpt-4o-mini", MaxTurns: 3}
	_, err := runner.Run(context.Background(), spec, "t", "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}
