package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
)

// AgentRunService persists the audit log of LLM agent invocations.
type AgentRunService struct {
	client *ent.Client
}

// NewAgentRunService creates a new AgentRunService.
func NewAgentRunService(client *ent.Client) *AgentRunService {
	return &AgentRunService{client: client}
}

// AgentRunRecord is the audit summary of one agent loop run.
type AgentRunRecord struct {
	AgentType    string
	Model        string
	TargetID     string
	Turns        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Duration     time.Duration
	Status       agentrun.Status
	ErrorMessage string
	ToolCalls    []ToolCallRecord
}

// ToolCallRecord is the audit entry for one tool call within a run.
type ToolCallRecord struct {
	ToolName    string
	Arguments   string
	OutputBytes int
	Duration    time.Duration
	IsError     bool
}

// Record writes one AgentRun row and its tool calls in a single transaction.
func (s *AgentRunService) Record(ctx context.Context, rec AgentRunRecord) (*ent.AgentRun, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.AgentRun.Create().
		SetAgentType(rec.AgentType).
		SetModel(rec.Model).
		SetTargetID(rec.TargetID).
		SetTurns(rec.Turns).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetEstimatedCostUsd(rec.CostUSD).
		SetDurationMs(rec.Duration.Milliseconds()).
		SetStatus(rec.Status)
	if rec.ErrorMessage != "" {
		builder.SetErrorMessage(rec.ErrorMessage)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}

	for i, tc := range rec.ToolCalls {
		_, err := tx.AgentToolCall.Create().
			SetAgentRunID(run.ID).
			SetSeq(i + 1).
			SetToolName(tc.ToolName).
			SetArguments(tc.Arguments).
			SetOutputBytes(tc.OutputBytes).
			SetDurationMs(tc.Duration.Milliseconds()).
			SetIsError(tc.IsError).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create tool call %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent run: %w", err)
	}
	return run, nil
}
