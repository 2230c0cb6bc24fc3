package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/pkg/llm"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// maxToolResultChars bounds the size of a tool result appended to the
// conversation.
const maxToolResultChars = 15000

const truncationNotice = "\n...[output truncated]"

// compressionThreshold is the share of the context window at which earlier
// turns are summarized away.
const compressionThreshold = 0.8

// keepRecentMessages is how many trailing messages survive compression.
const keepRecentMessages = 4

// Result is the outcome of one agent run.
type Result struct {
	Content string
	Status  agentrun.Status
	Turns   int
	Usage   llm.Usage
	CostUSD float64
}

// Runner drives agent specs against the LLM and persists the audit trail.
type Runner struct {
	llm    llm.Client
	runs   *services.AgentRunService
	logger *slog.Logger
}

// NewRunner creates an agent runner. runs may be nil (audit disabled, tests).
func NewRunner(client llm.Client, runs *services.AgentRunService) *Runner {
	return &Runner{llm: client, runs: runs, logger: slog.Default()}
}

// Run executes the agent loop: prompt, tool dispatch, turn budgeting, cost
// accounting, and audit persistence. targetID tags the audit row with the
// entity being worked on.
func (r *Runner) Run(ctx context.Context, spec *Spec, targetID, userPrompt string) (*Result, error) {
	start := time.Now()
	log := r.logger.With("agent_type", spec.AgentType, "target_id", targetID)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: spec.SystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}

	result := &Result{Status: agentrun.StatusRunning}
	var toolCalls []services.ToolCallRecord
	urgencyInjected := false

	defer func() {
		r.persist(spec, targetID, result, toolCalls, time.Since(start))
	}()

	for turn := 1; turn <= spec.MaxTurns; turn++ {
		result.Turns = turn

		// With two turns left, push the model toward a final answer.
		if remaining := spec.MaxTurns - turn; remaining == 1 && spec.UrgencyMessage != "" && !urgencyInjected {
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: spec.UrgencyMessage})
			urgencyInjected = true
		}

		resp, err := r.llm.Chat(ctx, &llm.ChatRequest{
			Model:       spec.Model,
			Messages:    messages,
			Tools:       spec.toolDefs(),
			Temperature: spec.Temperature,
		})
		if err != nil {
			result.Status = agentrun.StatusFailed
			return nil, fmt.Errorf("agent %s turn %d: %w", spec.AgentType, turn, err)
		}

		result.Usage.InputTokens += resp.Usage.InputTokens
		result.Usage.OutputTokens += resp.Usage.OutputTokens
		result.CostUSD += llm.EstimateCostUSD(spec.Model, resp.Usage)

		if len(resp.ToolCalls) > 0 {
			messages = append(messages, llm.Message{
				Role:      llm.RoleAssistant,
				Content:   resp.Content,
				ToolCalls: resp.ToolCalls,
			})
			for _, tc := range resp.ToolCalls {
				rec, msg := r.dispatch(ctx, spec, tc)
				toolCalls = append(toolCalls, rec)
				messages = append(messages, msg)
			}

			if spec.CompressionEnabled {
				messages = r.maybeCompress(ctx, spec, messages, resp.Usage.InputTokens)
			}
			continue
		}

		result.Content = resp.Content
		if (spec.EarlyStop != nil && spec.EarlyStop(resp.Content)) || resp.FinishReason == "stop" {
			result.Status = agentrun.StatusCompleted
			log.Debug("Agent run completed", "turns", turn, "cost_usd", result.CostUSD)
			return result, nil
		}

		messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: resp.Content})
	}

	// Turn budget exhausted: usable content counts as completed, anything
	// else is a timeout. The caller still receives the content either way.
	if spec.Validate != nil && spec.Validate(result.Content) == nil {
		result.Status = agentrun.StatusCompleted
	} else {
		result.Status = agentrun.StatusTimeout
	}
	log.Warn("Agent turn budget exhausted", "turns", spec.MaxTurns, "status", result.Status)
	return result, nil
}

// dispatch runs one tool call, truncating its output and recording audit data.
func (r *Runner) dispatch(ctx context.Context, spec *Spec, tc llm.ToolCall) (services.ToolCallRecord, llm.Message) {
	start := time.Now()

	var output string
	isError := false

	tool := spec.tool(tc.Name)
	if tool == nil {
		output = fmt.Sprintf("error: unknown tool %q", tc.Name)
		isError = true
	} else {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			output = fmt.Sprintf("error: malformed arguments: %v", err)
			isError = true
		} else {
			output, isError = tool.Run(ctx, args)
		}
	}

	rawLen := len(output)
	if rawLen > maxToolResultChars {
		output = output[:maxToolResultChars] + truncationNotice
	}

	rec := services.ToolCallRecord{
		ToolName:    tc.Name,
		Arguments:   tc.Arguments,
		OutputBytes: rawLen,
		Duration:    time.Since(start),
		IsError:     isError,
	}
	msg := llm.Message{
		Role:       llm.RoleTool,
		Content:    output,
		ToolCallID: tc.ID,
		ToolName:   tc.Name,
	}
	return rec, msg
}

// maybeCompress summarizes earlier turns into a single assistant message
// when the running context exceeds the compression threshold. The system
// prompt and the most recent messages are kept intact.
func (r *Runner) maybeCompress(ctx context.Context, spec *Spec, messages []llm.Message, lastInputTokens int) []llm.Message {
	if spec.MaxContextTokens <= 0 {
		return messages
	}
	if float64(lastInputTokens) < compressionThreshold*float64(spec.MaxContextTokens) {
		return messages
	}
	// Nothing worth compressing below system + a couple of exchanges.
	if len(messages) <= keepRecentMessages+2 {
		return messages
	}

	head := messages[1 : len(messages)-keepRecentMessages]
	transcript, err := json.Marshal(head)
	if err != nil {
		return messages
	}

	resp, err := r.llm.Chat(ctx, &llm.ChatRequest{
		Model: spec.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "Summarize the following agent conversation transcript. " + spec.CompressionCriteria},
			{Role: llm.RoleUser, Content: string(transcript)},
		},
		Temperature: 0,
	})
	if err != nil {
		r.logger.Warn("Context compression failed, keeping full history", "error", err)
		return messages
	}

	compressed := make([]llm.Message, 0, keepRecentMessages+2)
	compressed = append(compressed, messages[0])
	compressed = append(compressed, llm.Message{
		Role:    llm.RoleAssistant,
		Content: "[compressed context]\n" + resp.Content,
	})
	compressed = append(compressed, messages[len(messages)-keepRecentMessages:]...)
	return compressed
}

// persist writes the audit row. Failures are logged, never propagated: a
// broken audit trail must not fail a successful run.
func (r *Runner) persist(spec *Spec, targetID string, result *Result, toolCalls []services.ToolCallRecord, elapsed time.Duration) {
	if r.runs == nil {
		return
	}
	status := result.Status
	if status == agentrun.StatusRunning {
		status = agentrun.StatusFailed
	}
	_, err := r.runs.Record(context.Background(), services.AgentRunRecord{
		AgentType:    spec.AgentType,
		Model:        spec.Model,
		TargetID:     targetID,
		Turns:        result.Turns,
		InputTokens:  result.Usage.InputTokens,
		OutputTokens: result.Usage.OutputTokens,
		CostUSD:      result.CostUSD,
		Duration:     elapsed,
		Status:       status,
		ToolCalls:    toolCalls,
	})
	if err != nil {
		r.logger.Error("Failed to persist agent run", "agent_type", spec.AgentType, "error", err)
	}
}
