// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/predicate"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun          = "AgentRun"
	TypeAgentToolCall     = "AgentToolCall"
	TypeClientVuln        = "ClientVuln"
	TypeEvent             = "Event"
	TypeLibrary           = "Library"
	TypeProject           = "Project"
	TypeProjectDependency = "ProjectDependency"
	TypeUpstreamVuln      = "UpstreamVuln"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent_type            *string
	model                 *string
	target_id             *string
	turns                 *int
	addturns              *int
	input_tokens          *int
	addinput_tokens       *int
	output_tokens         *int
	addoutput_tokens      *int
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	duration_ms           *int64
	addduration_ms        *int64
	status                *agentrun.Status
	error_message         *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	tool_calls            map[string]struct{}
	removedtool_calls     map[string]struct{}
	clearedtool_calls     bool
	done                  bool
	oldValue              func(context.Context) (*AgentRun, error)
	predicates            []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentRunMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentRunMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentRunMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetModel sets the "model" field.
func (m *AgentRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentRunMutation) ResetModel() {
	m.model = nil
}

// SetTargetID sets the "target_id" field.
func (m *AgentRunMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *AgentRunMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *AgentRunMutation) ResetTargetID() {
	m.target_id = nil
}

// SetTurns sets the "turns" field.
func (m *AgentRunMutation) SetTurns(i int) {
	m.turns = &i
	m.addturns = nil
}

// Turns returns the value of the "turns" field in the mutation.
func (m *AgentRunMutation) Turns() (r int, exists bool) {
	v := m.turns
	if v == nil {
		return
	}
	return *v, true
}

// OldTurns returns the old "turns" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurns: %w", err)
	}
	return oldValue.Turns, nil
}

// AddTurns adds i to the "turns" field.
func (m *AgentRunMutation) AddTurns(i int) {
	if m.addturns != nil {
		*m.addturns += i
	} else {
		m.addturns = &i
	}
}

// AddedTurns returns the value that was added to the "turns" field in this mutation.
func (m *AgentRunMutation) AddedTurns() (r int, exists bool) {
	v := m.addturns
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurns resets all changes to the "turns" field.
func (m *AgentRunMutation) ResetTurns() {
	m.turns = nil
	m.addturns = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentRunMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentRunMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentRunMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentRunMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentRunMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentRunMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentRunMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentRunMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentRunMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentRunMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *AgentRunMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *AgentRunMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *AgentRunMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *AgentRunMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *AgentRunMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddToolCallIDs adds the "tool_calls" edge to the AgentToolCall entity by ids.
func (m *AgentRunMutation) AddToolCallIDs(ids ...string) {
	if m.tool_calls == nil {
		m.tool_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.tool_calls[ids[i]] = struct{}{}
	}
}

// ClearToolCalls clears the "tool_calls" edge to the AgentToolCall entity.
func (m *AgentRunMutation) ClearToolCalls() {
	m.clearedtool_calls = true
}

// ToolCallsCleared reports if the "tool_calls" edge to the AgentToolCall entity was cleared.
func (m *AgentRunMutation) ToolCallsCleared() bool {
	return m.clearedtool_calls
}

// RemoveToolCallIDs removes the "tool_calls" edge to the AgentToolCall entity by IDs.
func (m *AgentRunMutation) RemoveToolCallIDs(ids ...string) {
	if m.removedtool_calls == nil {
		m.removedtool_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tool_calls, ids[i])
		m.removedtool_calls[ids[i]] = struct{}{}
	}
}

// RemovedToolCalls returns the removed IDs of the "tool_calls" edge to the AgentToolCall entity.
func (m *AgentRunMutation) RemovedToolCallsIDs() (ids []string) {
	for id := range m.removedtool_calls {
		ids = append(ids, id)
	}
	return
}

// ToolCallsIDs returns the "tool_calls" edge IDs in the mutation.
func (m *AgentRunMutation) ToolCallsIDs() (ids []string) {
	for id := range m.tool_calls {
		ids = append(ids, id)
	}
	return
}

// ResetToolCalls resets all changes to the "tool_calls" edge.
func (m *AgentRunMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.clearedtool_calls = false
	m.removedtool_calls = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent_type != nil {
		fields = append(fields, agentrun.FieldAgentType)
	}
	if m.model != nil {
		fields = append(fields, agentrun.FieldModel)
	}
	if m.target_id != nil {
		fields = append(fields, agentrun.FieldTargetID)
	}
	if m.turns != nil {
		fields = append(fields, agentrun.FieldTurns)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, agentrun.FieldEstimatedCostUsd)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldAgentType:
		return m.AgentType()
	case agentrun.FieldModel:
		return m.Model()
	case agentrun.FieldTargetID:
		return m.TargetID()
	case agentrun.FieldTurns:
		return m.Turns()
	case agentrun.FieldInputTokens:
		return m.InputTokens()
	case agentrun.FieldOutputTokens:
		return m.OutputTokens()
	case agentrun.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case agentrun.FieldDurationMs:
		return m.DurationMs()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	case agentrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentrun.FieldModel:
		return m.OldModel(ctx)
	case agentrun.FieldTargetID:
		return m.OldTargetID(ctx)
	case agentrun.FieldTurns:
		return m.OldTurns(ctx)
	case agentrun.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentrun.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentrun.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case agentrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentrun.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case agentrun.FieldTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurns(v)
		return nil
	case agentrun.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentrun.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case agentrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addturns != nil {
		fields = append(fields, agentrun.FieldTurns)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, agentrun.FieldEstimatedCostUsd)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldTurns:
		return m.AddedTurns()
	case agentrun.FieldInputTokens:
		return m.AddedInputTokens()
	case agentrun.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentrun.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	case agentrun.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurns(v)
		return nil
	case agentrun.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentrun.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	case agentrun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentrun.FieldModel:
		m.ResetModel()
		return nil
	case agentrun.FieldTargetID:
		m.ResetTargetID()
		return nil
	case agentrun.FieldTurns:
		m.ResetTurns()
		return nil
	case agentrun.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentrun.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentrun.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case agentrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.tool_calls))
		for id := range m.tool_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtool_calls != nil {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeToolCalls:
		ids := make([]ent.Value, 0, len(m.removedtool_calls))
		for id := range m.removedtool_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtool_calls {
		edges = append(edges, agentrun.EdgeToolCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeToolCalls:
		return m.clearedtool_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeToolCalls:
		m.ResetToolCalls()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AgentToolCallMutation represents an operation that mutates the AgentToolCall nodes in the graph.
type AgentToolCallMutation struct {
	config
	op              Op
	typ             string
	id              *string
	seq             *int
	addseq          *int
	tool_name       *string
	arguments       *string
	output_bytes    *int
	addoutput_bytes *int
	duration_ms     *int64
	addduration_ms  *int64
	is_error        *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	done            bool
	oldValue        func(context.Context) (*AgentToolCall, error)
	predicates      []predicate.AgentToolCall
}

var _ ent.Mutation = (*AgentToolCallMutation)(nil)

// agenttoolcallOption allows management of the mutation configuration using functional options.
type agenttoolcallOption func(*AgentToolCallMutation)

// newAgentToolCallMutation creates new mutation for the AgentToolCall entity.
func newAgentToolCallMutation(c config, op Op, opts ...agenttoolcallOption) *AgentToolCallMutation {
	m := &AgentToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentToolCallID sets the ID field of the mutation.
func withAgentToolCallID(id string) agenttoolcallOption {
	return func(m *AgentToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentToolCall
		)
		m.oldValue = func(ctx context.Context) (*AgentToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentToolCall sets the old AgentToolCall of the mutation.
func withAgentToolCall(node *AgentToolCall) agenttoolcallOption {
	return func(m *AgentToolCallMutation) {
		m.oldValue = func(context.Context) (*AgentToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentToolCall entities.
func (m *AgentToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentRunID sets the "agent_run_id" field.
func (m *AgentToolCallMutation) SetAgentRunID(s string) {
	m.run = &s
}

// AgentRunID returns the value of the "agent_run_id" field in the mutation.
func (m *AgentToolCallMutation) AgentRunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRunID returns the old "agent_run_id" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldAgentRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRunID: %w", err)
	}
	return oldValue.AgentRunID, nil
}

// ResetAgentRunID resets all changes to the "agent_run_id" field.
func (m *AgentToolCallMutation) ResetAgentRunID() {
	m.run = nil
}

// SetSeq sets the "seq" field.
func (m *AgentToolCallMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *AgentToolCallMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *AgentToolCallMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *AgentToolCallMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *AgentToolCallMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetToolName sets the "tool_name" field.
func (m *AgentToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *AgentToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *AgentToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArguments sets the "arguments" field.
func (m *AgentToolCallMutation) SetArguments(s string) {
	m.arguments = &s
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *AgentToolCallMutation) Arguments() (r string, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldArguments(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *AgentToolCallMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[agenttoolcall.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *AgentToolCallMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[agenttoolcall.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *AgentToolCallMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, agenttoolcall.FieldArguments)
}

// SetOutputBytes sets the "output_bytes" field.
func (m *AgentToolCallMutation) SetOutputBytes(i int) {
	m.output_bytes = &i
	m.addoutput_bytes = nil
}

// OutputBytes returns the value of the "output_bytes" field in the mutation.
func (m *AgentToolCallMutation) OutputBytes() (r int, exists bool) {
	v := m.output_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputBytes returns the old "output_bytes" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldOutputBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputBytes: %w", err)
	}
	return oldValue.OutputBytes, nil
}

// AddOutputBytes adds i to the "output_bytes" field.
func (m *AgentToolCallMutation) AddOutputBytes(i int) {
	if m.addoutput_bytes != nil {
		*m.addoutput_bytes += i
	} else {
		m.addoutput_bytes = &i
	}
}

// AddedOutputBytes returns the value that was added to the "output_bytes" field in this mutation.
func (m *AgentToolCallMutation) AddedOutputBytes() (r int, exists bool) {
	v := m.addoutput_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputBytes resets all changes to the "output_bytes" field.
func (m *AgentToolCallMutation) ResetOutputBytes() {
	m.output_bytes = nil
	m.addoutput_bytes = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentToolCallMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentToolCallMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentToolCallMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentToolCallMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentToolCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetIsError sets the "is_error" field.
func (m *AgentToolCallMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *AgentToolCallMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *AgentToolCallMutation) ResetIsError() {
	m.is_error = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentToolCall entity.
// If the AgentToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRunID sets the "run" edge to the AgentRun entity by id.
func (m *AgentToolCallMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *AgentToolCallMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agenttoolcall.FieldAgentRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *AgentToolCallMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *AgentToolCallMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentToolCallMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentToolCallMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AgentToolCallMutation builder.
func (m *AgentToolCallMutation) Where(ps ...predicate.AgentToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentToolCall).
func (m *AgentToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentToolCallMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.run != nil {
		fields = append(fields, agenttoolcall.FieldAgentRunID)
	}
	if m.seq != nil {
		fields = append(fields, agenttoolcall.FieldSeq)
	}
	if m.tool_name != nil {
		fields = append(fields, agenttoolcall.FieldToolName)
	}
	if m.arguments != nil {
		fields = append(fields, agenttoolcall.FieldArguments)
	}
	if m.output_bytes != nil {
		fields = append(fields, agenttoolcall.FieldOutputBytes)
	}
	if m.duration_ms != nil {
		fields = append(fields, agenttoolcall.FieldDurationMs)
	}
	if m.is_error != nil {
		fields = append(fields, agenttoolcall.FieldIsError)
	}
	if m.created_at != nil {
		fields = append(fields, agenttoolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttoolcall.FieldAgentRunID:
		return m.AgentRunID()
	case agenttoolcall.FieldSeq:
		return m.Seq()
	case agenttoolcall.FieldToolName:
		return m.ToolName()
	case agenttoolcall.FieldArguments:
		return m.Arguments()
	case agenttoolcall.FieldOutputBytes:
		return m.OutputBytes()
	case agenttoolcall.FieldDurationMs:
		return m.DurationMs()
	case agenttoolcall.FieldIsError:
		return m.IsError()
	case agenttoolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttoolcall.FieldAgentRunID:
		return m.OldAgentRunID(ctx)
	case agenttoolcall.FieldSeq:
		return m.OldSeq(ctx)
	case agenttoolcall.FieldToolName:
		return m.OldToolName(ctx)
	case agenttoolcall.FieldArguments:
		return m.OldArguments(ctx)
	case agenttoolcall.FieldOutputBytes:
		return m.OldOutputBytes(ctx)
	case agenttoolcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agenttoolcall.FieldIsError:
		return m.OldIsError(ctx)
	case agenttoolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttoolcall.FieldAgentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRunID(v)
		return nil
	case agenttoolcall.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case agenttoolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case agenttoolcall.FieldArguments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case agenttoolcall.FieldOutputBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputBytes(v)
		return nil
	case agenttoolcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agenttoolcall.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case agenttoolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, agenttoolcall.FieldSeq)
	}
	if m.addoutput_bytes != nil {
		fields = append(fields, agenttoolcall.FieldOutputBytes)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agenttoolcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agenttoolcall.FieldSeq:
		return m.AddedSeq()
	case agenttoolcall.FieldOutputBytes:
		return m.AddedOutputBytes()
	case agenttoolcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agenttoolcall.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case agenttoolcall.FieldOutputBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputBytes(v)
		return nil
	case agenttoolcall.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttoolcall.FieldArguments) {
		fields = append(fields, agenttoolcall.FieldArguments)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentToolCallMutation) ClearField(name string) error {
	switch name {
	case agenttoolcall.FieldArguments:
		m.ClearArguments()
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentToolCallMutation) ResetField(name string) error {
	switch name {
	case agenttoolcall.FieldAgentRunID:
		m.ResetAgentRunID()
		return nil
	case agenttoolcall.FieldSeq:
		m.ResetSeq()
		return nil
	case agenttoolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case agenttoolcall.FieldArguments:
		m.ResetArguments()
		return nil
	case agenttoolcall.FieldOutputBytes:
		m.ResetOutputBytes()
		return nil
	case agenttoolcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agenttoolcall.FieldIsError:
		m.ResetIsError()
		return nil
	case agenttoolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, agenttoolcall.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentToolCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttoolcall.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, agenttoolcall.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentToolCallMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttoolcall.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentToolCallMutation) ClearEdge(name string) error {
	switch name {
	case agenttoolcall.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentToolCallMutation) ResetEdge(name string) error {
	switch name {
	case agenttoolcall.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AgentToolCall edge %s", name)
}

// ClientVulnMutation represents an operation that mutates the ClientVuln nodes in the graph.
type ClientVulnMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	pipeline_status       *clientvuln.PipelineStatus
	status                *clientvuln.Status
	is_affected           *bool
	constraint_expr       *string
	constraint_source     *string
	resolved_version      *string
	reachable_path        *map[string]interface{}
	poc_results           *map[string]interface{}
	report                *map[string]interface{}
	error_message         *string
	analysis_completed_at *time.Time
	recorded_at           *time.Time
	reported_at           *time.Time
	confirmed_at          *time.Time
	fixed_at              *time.Time
	not_affect_at         *time.Time
	confirmed_msg         *string
	fixed_msg             *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	upstream_vuln         *string
	clearedupstream_vuln  bool
	project               *string
	clearedproject        bool
	done                  bool
	oldValue              func(context.Context) (*ClientVuln, error)
	predicates            []predicate.ClientVuln
}

var _ ent.Mutation = (*ClientVulnMutation)(nil)

// clientvulnOption allows management of the mutation configuration using functional options.
type clientvulnOption func(*ClientVulnMutation)

// newClientVulnMutation creates new mutation for the ClientVuln entity.
func newClientVulnMutation(c config, op Op, opts ...clientvulnOption) *ClientVulnMutation {
	m := &ClientVulnMutation{
		config:        c,
		op:            op,
		typ:           TypeClientVuln,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientVulnID sets the ID field of the mutation.
func withClientVulnID(id string) clientvulnOption {
	return func(m *ClientVulnMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientVuln
		)
		m.oldValue = func(ctx context.Context) (*ClientVuln, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientVuln.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientVuln sets the old ClientVuln of the mutation.
func withClientVuln(node *ClientVuln) clientvulnOption {
	return func(m *ClientVulnMutation) {
		m.oldValue = func(context.Context) (*ClientVuln, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientVulnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientVulnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientVuln entities.
func (m *ClientVulnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientVulnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientVulnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientVuln.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUpstreamVulnID sets the "upstream_vuln_id" field.
func (m *ClientVulnMutation) SetUpstreamVulnID(s string) {
	m.upstream_vuln = &s
}

// UpstreamVulnID returns the value of the "upstream_vuln_id" field in the mutation.
func (m *ClientVulnMutation) UpstreamVulnID() (r string, exists bool) {
	v := m.upstream_vuln
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamVulnID returns the old "upstream_vuln_id" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldUpstreamVulnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamVulnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamVulnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamVulnID: %w", err)
	}
	return oldValue.UpstreamVulnID, nil
}

// ResetUpstreamVulnID resets all changes to the "upstream_vuln_id" field.
func (m *ClientVulnMutation) ResetUpstreamVulnID() {
	m.upstream_vuln = nil
}

// SetProjectID sets the "project_id" field.
func (m *ClientVulnMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ClientVulnMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ClientVulnMutation) ResetProjectID() {
	m.project = nil
}

// SetPipelineStatus sets the "pipeline_status" field.
func (m *ClientVulnMutation) SetPipelineStatus(cs clientvuln.PipelineStatus) {
	m.pipeline_status = &cs
}

// PipelineStatus returns the value of the "pipeline_status" field in the mutation.
func (m *ClientVulnMutation) PipelineStatus() (r clientvuln.PipelineStatus, exists bool) {
	v := m.pipeline_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineStatus returns the old "pipeline_status" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldPipelineStatus(ctx context.Context) (v clientvuln.PipelineStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineStatus: %w", err)
	}
	return oldValue.PipelineStatus, nil
}

// ResetPipelineStatus resets all changes to the "pipeline_status" field.
func (m *ClientVulnMutation) ResetPipelineStatus() {
	m.pipeline_status = nil
}

// SetStatus sets the "status" field.
func (m *ClientVulnMutation) SetStatus(c clientvuln.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ClientVulnMutation) Status() (r clientvuln.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldStatus(ctx context.Context) (v *clientvuln.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ClientVulnMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[clientvuln.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ClientVulnMutation) StatusCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ClientVulnMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, clientvuln.FieldStatus)
}

// SetIsAffected sets the "is_affected" field.
func (m *ClientVulnMutation) SetIsAffected(b bool) {
	m.is_affected = &b
}

// IsAffected returns the value of the "is_affected" field in the mutation.
func (m *ClientVulnMutation) IsAffected() (r bool, exists bool) {
	v := m.is_affected
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAffected returns the old "is_affected" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldIsAffected(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAffected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAffected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAffected: %w", err)
	}
	return oldValue.IsAffected, nil
}

// ClearIsAffected clears the value of the "is_affected" field.
func (m *ClientVulnMutation) ClearIsAffected() {
	m.is_affected = nil
	m.clearedFields[clientvuln.FieldIsAffected] = struct{}{}
}

// IsAffectedCleared returns if the "is_affected" field was cleared in this mutation.
func (m *ClientVulnMutation) IsAffectedCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldIsAffected]
	return ok
}

// ResetIsAffected resets all changes to the "is_affected" field.
func (m *ClientVulnMutation) ResetIsAffected() {
	m.is_affected = nil
	delete(m.clearedFields, clientvuln.FieldIsAffected)
}

// SetConstraintExpr sets the "constraint_expr" field.
func (m *ClientVulnMutation) SetConstraintExpr(s string) {
	m.constraint_expr = &s
}

// ConstraintExpr returns the value of the "constraint_expr" field in the mutation.
func (m *ClientVulnMutation) ConstraintExpr() (r string, exists bool) {
	v := m.constraint_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintExpr returns the old "constraint_expr" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldConstraintExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintExpr: %w", err)
	}
	return oldValue.ConstraintExpr, nil
}

// ClearConstraintExpr clears the value of the "constraint_expr" field.
func (m *ClientVulnMutation) ClearConstraintExpr() {
	m.constraint_expr = nil
	m.clearedFields[clientvuln.FieldConstraintExpr] = struct{}{}
}

// ConstraintExprCleared returns if the "constraint_expr" field was cleared in this mutation.
func (m *ClientVulnMutation) ConstraintExprCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldConstraintExpr]
	return ok
}

// ResetConstraintExpr resets all changes to the "constraint_expr" field.
func (m *ClientVulnMutation) ResetConstraintExpr() {
	m.constraint_expr = nil
	delete(m.clearedFields, clientvuln.FieldConstraintExpr)
}

// SetConstraintSource sets the "constraint_source" field.
func (m *ClientVulnMutation) SetConstraintSource(s string) {
	m.constraint_source = &s
}

// ConstraintSource returns the value of the "constraint_source" field in the mutation.
func (m *ClientVulnMutation) ConstraintSource() (r string, exists bool) {
	v := m.constraint_source
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintSource returns the old "constraint_source" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldConstraintSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintSource: %w", err)
	}
	return oldValue.ConstraintSource, nil
}

// ClearConstraintSource clears the value of the "constraint_source" field.
func (m *ClientVulnMutation) ClearConstraintSource() {
	m.constraint_source = nil
	m.clearedFields[clientvuln.FieldConstraintSource] = struct{}{}
}

// ConstraintSourceCleared returns if the "constraint_source" field was cleared in this mutation.
func (m *ClientVulnMutation) ConstraintSourceCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldConstraintSource]
	return ok
}

// ResetConstraintSource resets all changes to the "constraint_source" field.
func (m *ClientVulnMutation) ResetConstraintSource() {
	m.constraint_source = nil
	delete(m.clearedFields, clientvuln.FieldConstraintSource)
}

// SetResolvedVersion sets the "resolved_version" field.
func (m *ClientVulnMutation) SetResolvedVersion(s string) {
	m.resolved_version = &s
}

// ResolvedVersion returns the value of the "resolved_version" field in the mutation.
func (m *ClientVulnMutation) ResolvedVersion() (r string, exists bool) {
	v := m.resolved_version
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedVersion returns the old "resolved_version" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldResolvedVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedVersion: %w", err)
	}
	return oldValue.ResolvedVersion, nil
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (m *ClientVulnMutation) ClearResolvedVersion() {
	m.resolved_version = nil
	m.clearedFields[clientvuln.FieldResolvedVersion] = struct{}{}
}

// ResolvedVersionCleared returns if the "resolved_version" field was cleared in this mutation.
func (m *ClientVulnMutation) ResolvedVersionCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldResolvedVersion]
	return ok
}

// ResetResolvedVersion resets all changes to the "resolved_version" field.
func (m *ClientVulnMutation) ResetResolvedVersion() {
	m.resolved_version = nil
	delete(m.clearedFields, clientvuln.FieldResolvedVersion)
}

// SetReachablePath sets the "reachable_path" field.
func (m *ClientVulnMutation) SetReachablePath(value map[string]interface{}) {
	m.reachable_path = &value
}

// ReachablePath returns the value of the "reachable_path" field in the mutation.
func (m *ClientVulnMutation) ReachablePath() (r map[string]interface{}, exists bool) {
	v := m.reachable_path
	if v == nil {
		return
	}
	return *v, true
}

// OldReachablePath returns the old "reachable_path" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldReachablePath(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReachablePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReachablePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReachablePath: %w", err)
	}
	return oldValue.ReachablePath, nil
}

// ClearReachablePath clears the value of the "reachable_path" field.
func (m *ClientVulnMutation) ClearReachablePath() {
	m.reachable_path = nil
	m.clearedFields[clientvuln.FieldReachablePath] = struct{}{}
}

// ReachablePathCleared returns if the "reachable_path" field was cleared in this mutation.
func (m *ClientVulnMutation) ReachablePathCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldReachablePath]
	return ok
}

// ResetReachablePath resets all changes to the "reachable_path" field.
func (m *ClientVulnMutation) ResetReachablePath() {
	m.reachable_path = nil
	delete(m.clearedFields, clientvuln.FieldReachablePath)
}

// SetPocResults sets the "poc_results" field.
func (m *ClientVulnMutation) SetPocResults(value map[string]interface{}) {
	m.poc_results = &value
}

// PocResults returns the value of the "poc_results" field in the mutation.
func (m *ClientVulnMutation) PocResults() (r map[string]interface{}, exists bool) {
	v := m.poc_results
	if v == nil {
		return
	}
	return *v, true
}

// OldPocResults returns the old "poc_results" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldPocResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPocResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPocResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPocResults: %w", err)
	}
	return oldValue.PocResults, nil
}

// ClearPocResults clears the value of the "poc_results" field.
func (m *ClientVulnMutation) ClearPocResults() {
	m.poc_results = nil
	m.clearedFields[clientvuln.FieldPocResults] = struct{}{}
}

// PocResultsCleared returns if the "poc_results" field was cleared in this mutation.
func (m *ClientVulnMutation) PocResultsCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldPocResults]
	return ok
}

// ResetPocResults resets all changes to the "poc_results" field.
func (m *ClientVulnMutation) ResetPocResults() {
	m.poc_results = nil
	delete(m.clearedFields, clientvuln.FieldPocResults)
}

// SetReport sets the "report" field.
func (m *ClientVulnMutation) SetReport(value map[string]interface{}) {
	m.report = &value
}

// Report returns the value of the "report" field in the mutation.
func (m *ClientVulnMutation) Report() (r map[string]interface{}, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ClearReport clears the value of the "report" field.
func (m *ClientVulnMutation) ClearReport() {
	m.report = nil
	m.clearedFields[clientvuln.FieldReport] = struct{}{}
}

// ReportCleared returns if the "report" field was cleared in this mutation.
func (m *ClientVulnMutation) ReportCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldReport]
	return ok
}

// ResetReport resets all changes to the "report" field.
func (m *ClientVulnMutation) ResetReport() {
	m.report = nil
	delete(m.clearedFields, clientvuln.FieldReport)
}

// SetErrorMessage sets the "error_message" field.
func (m *ClientVulnMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ClientVulnMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ClientVulnMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[clientvuln.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ClientVulnMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ClientVulnMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, clientvuln.FieldErrorMessage)
}

// SetAnalysisCompletedAt sets the "analysis_completed_at" field.
func (m *ClientVulnMutation) SetAnalysisCompletedAt(t time.Time) {
	m.analysis_completed_at = &t
}

// AnalysisCompletedAt returns the value of the "analysis_completed_at" field in the mutation.
func (m *ClientVulnMutation) AnalysisCompletedAt() (r time.Time, exists bool) {
	v := m.analysis_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisCompletedAt returns the old "analysis_completed_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldAnalysisCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisCompletedAt: %w", err)
	}
	return oldValue.AnalysisCompletedAt, nil
}

// ClearAnalysisCompletedAt clears the value of the "analysis_completed_at" field.
func (m *ClientVulnMutation) ClearAnalysisCompletedAt() {
	m.analysis_completed_at = nil
	m.clearedFields[clientvuln.FieldAnalysisCompletedAt] = struct{}{}
}

// AnalysisCompletedAtCleared returns if the "analysis_completed_at" field was cleared in this mutation.
func (m *ClientVulnMutation) AnalysisCompletedAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldAnalysisCompletedAt]
	return ok
}

// ResetAnalysisCompletedAt resets all changes to the "analysis_completed_at" field.
func (m *ClientVulnMutation) ResetAnalysisCompletedAt() {
	m.analysis_completed_at = nil
	delete(m.clearedFields, clientvuln.FieldAnalysisCompletedAt)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *ClientVulnMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *ClientVulnMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldRecordedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ClearRecordedAt clears the value of the "recorded_at" field.
func (m *ClientVulnMutation) ClearRecordedAt() {
	m.recorded_at = nil
	m.clearedFields[clientvuln.FieldRecordedAt] = struct{}{}
}

// RecordedAtCleared returns if the "recorded_at" field was cleared in this mutation.
func (m *ClientVulnMutation) RecordedAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldRecordedAt]
	return ok
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *ClientVulnMutation) ResetRecordedAt() {
	m.recorded_at = nil
	delete(m.clearedFields, clientvuln.FieldRecordedAt)
}

// SetReportedAt sets the "reported_at" field.
func (m *ClientVulnMutation) SetReportedAt(t time.Time) {
	m.reported_at = &t
}

// ReportedAt returns the value of the "reported_at" field in the mutation.
func (m *ClientVulnMutation) ReportedAt() (r time.Time, exists bool) {
	v := m.reported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReportedAt returns the old "reported_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldReportedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportedAt: %w", err)
	}
	return oldValue.ReportedAt, nil
}

// ClearReportedAt clears the value of the "reported_at" field.
func (m *ClientVulnMutation) ClearReportedAt() {
	m.reported_at = nil
	m.clearedFields[clientvuln.FieldReportedAt] = struct{}{}
}

// ReportedAtCleared returns if the "reported_at" field was cleared in this mutation.
func (m *ClientVulnMutation) ReportedAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldReportedAt]
	return ok
}

// ResetReportedAt resets all changes to the "reported_at" field.
func (m *ClientVulnMutation) ResetReportedAt() {
	m.reported_at = nil
	delete(m.clearedFields, clientvuln.FieldReportedAt)
}

// SetConfirmedAt sets the "confirmed_at" field.
func (m *ClientVulnMutation) SetConfirmedAt(t time.Time) {
	m.confirmed_at = &t
}

// ConfirmedAt returns the value of the "confirmed_at" field in the mutation.
func (m *ClientVulnMutation) ConfirmedAt() (r time.Time, exists bool) {
	v := m.confirmed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedAt returns the old "confirmed_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldConfirmedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedAt: %w", err)
	}
	return oldValue.ConfirmedAt, nil
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (m *ClientVulnMutation) ClearConfirmedAt() {
	m.confirmed_at = nil
	m.clearedFields[clientvuln.FieldConfirmedAt] = struct{}{}
}

// ConfirmedAtCleared returns if the "confirmed_at" field was cleared in this mutation.
func (m *ClientVulnMutation) ConfirmedAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldConfirmedAt]
	return ok
}

// ResetConfirmedAt resets all changes to the "confirmed_at" field.
func (m *ClientVulnMutation) ResetConfirmedAt() {
	m.confirmed_at = nil
	delete(m.clearedFields, clientvuln.FieldConfirmedAt)
}

// SetFixedAt sets the "fixed_at" field.
func (m *ClientVulnMutation) SetFixedAt(t time.Time) {
	m.fixed_at = &t
}

// FixedAt returns the value of the "fixed_at" field in the mutation.
func (m *ClientVulnMutation) FixedAt() (r time.Time, exists bool) {
	v := m.fixed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFixedAt returns the old "fixed_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldFixedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixedAt: %w", err)
	}
	return oldValue.FixedAt, nil
}

// ClearFixedAt clears the value of the "fixed_at" field.
func (m *ClientVulnMutation) ClearFixedAt() {
	m.fixed_at = nil
	m.clearedFields[clientvuln.FieldFixedAt] = struct{}{}
}

// FixedAtCleared returns if the "fixed_at" field was cleared in this mutation.
func (m *ClientVulnMutation) FixedAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldFixedAt]
	return ok
}

// ResetFixedAt resets all changes to the "fixed_at" field.
func (m *ClientVulnMutation) ResetFixedAt() {
	m.fixed_at = nil
	delete(m.clearedFields, clientvuln.FieldFixedAt)
}

// SetNotAffectAt sets the "not_affect_at" field.
func (m *ClientVulnMutation) SetNotAffectAt(t time.Time) {
	m.not_affect_at = &t
}

// NotAffectAt returns the value of the "not_affect_at" field in the mutation.
func (m *ClientVulnMutation) NotAffectAt() (r time.Time, exists bool) {
	v := m.not_affect_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNotAffectAt returns the old "not_affect_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldNotAffectAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotAffectAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotAffectAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotAffectAt: %w", err)
	}
	return oldValue.NotAffectAt, nil
}

// ClearNotAffectAt clears the value of the "not_affect_at" field.
func (m *ClientVulnMutation) ClearNotAffectAt() {
	m.not_affect_at = nil
	m.clearedFields[clientvuln.FieldNotAffectAt] = struct{}{}
}

// NotAffectAtCleared returns if the "not_affect_at" field was cleared in this mutation.
func (m *ClientVulnMutation) NotAffectAtCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldNotAffectAt]
	return ok
}

// ResetNotAffectAt resets all changes to the "not_affect_at" field.
func (m *ClientVulnMutation) ResetNotAffectAt() {
	m.not_affect_at = nil
	delete(m.clearedFields, clientvuln.FieldNotAffectAt)
}

// SetConfirmedMsg sets the "confirmed_msg" field.
func (m *ClientVulnMutation) SetConfirmedMsg(s string) {
	m.confirmed_msg = &s
}

// ConfirmedMsg returns the value of the "confirmed_msg" field in the mutation.
func (m *ClientVulnMutation) ConfirmedMsg() (r string, exists bool) {
	v := m.confirmed_msg
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmedMsg returns the old "confirmed_msg" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldConfirmedMsg(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmedMsg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmedMsg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmedMsg: %w", err)
	}
	return oldValue.ConfirmedMsg, nil
}

// ClearConfirmedMsg clears the value of the "confirmed_msg" field.
func (m *ClientVulnMutation) ClearConfirmedMsg() {
	m.confirmed_msg = nil
	m.clearedFields[clientvuln.FieldConfirmedMsg] = struct{}{}
}

// ConfirmedMsgCleared returns if the "confirmed_msg" field was cleared in this mutation.
func (m *ClientVulnMutation) ConfirmedMsgCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldConfirmedMsg]
	return ok
}

// ResetConfirmedMsg resets all changes to the "confirmed_msg" field.
func (m *ClientVulnMutation) ResetConfirmedMsg() {
	m.confirmed_msg = nil
	delete(m.clearedFields, clientvuln.FieldConfirmedMsg)
}

// SetFixedMsg sets the "fixed_msg" field.
func (m *ClientVulnMutation) SetFixedMsg(s string) {
	m.fixed_msg = &s
}

// FixedMsg returns the value of the "fixed_msg" field in the mutation.
func (m *ClientVulnMutation) FixedMsg() (r string, exists bool) {
	v := m.fixed_msg
	if v == nil {
		return
	}
	return *v, true
}

// OldFixedMsg returns the old "fixed_msg" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldFixedMsg(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixedMsg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixedMsg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixedMsg: %w", err)
	}
	return oldValue.FixedMsg, nil
}

// ClearFixedMsg clears the value of the "fixed_msg" field.
func (m *ClientVulnMutation) ClearFixedMsg() {
	m.fixed_msg = nil
	m.clearedFields[clientvuln.FieldFixedMsg] = struct{}{}
}

// FixedMsgCleared returns if the "fixed_msg" field was cleared in this mutation.
func (m *ClientVulnMutation) FixedMsgCleared() bool {
	_, ok := m.clearedFields[clientvuln.FieldFixedMsg]
	return ok
}

// ResetFixedMsg resets all changes to the "fixed_msg" field.
func (m *ClientVulnMutation) ResetFixedMsg() {
	m.fixed_msg = nil
	delete(m.clearedFields, clientvuln.FieldFixedMsg)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientVulnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientVulnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientVulnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientVulnMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientVulnMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientVuln entity.
// If the ClientVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientVulnMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClientVulnMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUpstreamVuln clears the "upstream_vuln" edge to the UpstreamVuln entity.
func (m *ClientVulnMutation) ClearUpstreamVuln() {
	m.clearedupstream_vuln = true
	m.clearedFields[clientvuln.FieldUpstreamVulnID] = struct{}{}
}

// UpstreamVulnCleared reports if the "upstream_vuln" edge to the UpstreamVuln entity was cleared.
func (m *ClientVulnMutation) UpstreamVulnCleared() bool {
	return m.clearedupstream_vuln
}

// UpstreamVulnIDs returns the "upstream_vuln" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UpstreamVulnID instead. It exists only for internal usage by the builders.
func (m *ClientVulnMutation) UpstreamVulnIDs() (ids []string) {
	if id := m.upstream_vuln; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUpstreamVuln resets all changes to the "upstream_vuln" edge.
func (m *ClientVulnMutation) ResetUpstreamVuln() {
	m.upstream_vuln = nil
	m.clearedupstream_vuln = false
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ClientVulnMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[clientvuln.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ClientVulnMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ClientVulnMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ClientVulnMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ClientVulnMutation builder.
func (m *ClientVulnMutation) Where(ps ...predicate.ClientVuln) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientVulnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientVulnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientVuln, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientVulnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientVulnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientVuln).
func (m *ClientVulnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientVulnMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.upstream_vuln != nil {
		fields = append(fields, clientvuln.FieldUpstreamVulnID)
	}
	if m.project != nil {
		fields = append(fields, clientvuln.FieldProjectID)
	}
	if m.pipeline_status != nil {
		fields = append(fields, clientvuln.FieldPipelineStatus)
	}
	if m.status != nil {
		fields = append(fields, clientvuln.FieldStatus)
	}
	if m.is_affected != nil {
		fields = append(fields, clientvuln.FieldIsAffected)
	}
	if m.constraint_expr != nil {
		fields = append(fields, clientvuln.FieldConstraintExpr)
	}
	if m.constraint_source != nil {
		fields = append(fields, clientvuln.FieldConstraintSource)
	}
	if m.resolved_version != nil {
		fields = append(fields, clientvuln.FieldResolvedVersion)
	}
	if m.reachable_path != nil {
		fields = append(fields, clientvuln.FieldReachablePath)
	}
	if m.poc_results != nil {
		fields = append(fields, clientvuln.FieldPocResults)
	}
	if m.report != nil {
		fields = append(fields, clientvuln.FieldReport)
	}
	if m.error_message != nil {
		fields = append(fields, clientvuln.FieldErrorMessage)
	}
	if m.analysis_completed_at != nil {
		fields = append(fields, clientvuln.FieldAnalysisCompletedAt)
	}
	if m.recorded_at != nil {
		fields = append(fields, clientvuln.FieldRecordedAt)
	}
	if m.reported_at != nil {
		fields = append(fields, clientvuln.FieldReportedAt)
	}
	if m.confirmed_at != nil {
		fields = append(fields, clientvuln.FieldConfirmedAt)
	}
	if m.fixed_at != nil {
		fields = append(fields, clientvuln.FieldFixedAt)
	}
	if m.not_affect_at != nil {
		fields = append(fields, clientvuln.FieldNotAffectAt)
	}
	if m.confirmed_msg != nil {
		fields = append(fields, clientvuln.FieldConfirmedMsg)
	}
	if m.fixed_msg != nil {
		fields = append(fields, clientvuln.FieldFixedMsg)
	}
	if m.created_at != nil {
		fields = append(fields, clientvuln.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clientvuln.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientVulnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientvuln.FieldUpstreamVulnID:
		return m.UpstreamVulnID()
	case clientvuln.FieldProjectID:
		return m.ProjectID()
	case clientvuln.FieldPipelineStatus:
		return m.PipelineStatus()
	case clientvuln.FieldStatus:
		return m.Status()
	case clientvuln.FieldIsAffected:
		return m.IsAffected()
	case clientvuln.FieldConstraintExpr:
		return m.ConstraintExpr()
	case clientvuln.FieldConstraintSource:
		return m.ConstraintSource()
	case clientvuln.FieldResolvedVersion:
		return m.ResolvedVersion()
	case clientvuln.FieldReachablePath:
		return m.ReachablePath()
	case clientvuln.FieldPocResults:
		return m.PocResults()
	case clientvuln.FieldReport:
		return m.Report()
	case clientvuln.FieldErrorMessage:
		return m.ErrorMessage()
	case clientvuln.FieldAnalysisCompletedAt:
		return m.AnalysisCompletedAt()
	case clientvuln.FieldRecordedAt:
		return m.RecordedAt()
	case clientvuln.FieldReportedAt:
		return m.ReportedAt()
	case clientvuln.FieldConfirmedAt:
		return m.ConfirmedAt()
	case clientvuln.FieldFixedAt:
		return m.FixedAt()
	case clientvuln.FieldNotAffectAt:
		return m.NotAffectAt()
	case clientvuln.FieldConfirmedMsg:
		return m.ConfirmedMsg()
	case clientvuln.FieldFixedMsg:
		return m.FixedMsg()
	case clientvuln.FieldCreatedAt:
		return m.CreatedAt()
	case clientvuln.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientVulnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientvuln.FieldUpstreamVulnID:
		return m.OldUpstreamVulnID(ctx)
	case clientvuln.FieldProjectID:
		return m.OldProjectID(ctx)
	case clientvuln.FieldPipelineStatus:
		return m.OldPipelineStatus(ctx)
	case clientvuln.FieldStatus:
		return m.OldStatus(ctx)
	case clientvuln.FieldIsAffected:
		return m.OldIsAffected(ctx)
	case clientvuln.FieldConstraintExpr:
		return m.OldConstraintExpr(ctx)
	case clientvuln.FieldConstraintSource:
		return m.OldConstraintSource(ctx)
	case clientvuln.FieldResolvedVersion:
		return m.OldResolvedVersion(ctx)
	case clientvuln.FieldReachablePath:
		return m.OldReachablePath(ctx)
	case clientvuln.FieldPocResults:
		return m.OldPocResults(ctx)
	case clientvuln.FieldReport:
		return m.OldReport(ctx)
	case clientvuln.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case clientvuln.FieldAnalysisCompletedAt:
		return m.OldAnalysisCompletedAt(ctx)
	case clientvuln.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	case clientvuln.FieldReportedAt:
		return m.OldReportedAt(ctx)
	case clientvuln.FieldConfirmedAt:
		return m.OldConfirmedAt(ctx)
	case clientvuln.FieldFixedAt:
		return m.OldFixedAt(ctx)
	case clientvuln.FieldNotAffectAt:
		return m.OldNotAffectAt(ctx)
	case clientvuln.FieldConfirmedMsg:
		return m.OldConfirmedMsg(ctx)
	case clientvuln.FieldFixedMsg:
		return m.OldFixedMsg(ctx)
	case clientvuln.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clientvuln.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientVuln field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientVulnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientvuln.FieldUpstreamVulnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamVulnID(v)
		return nil
	case clientvuln.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case clientvuln.FieldPipelineStatus:
		v, ok := value.(clientvuln.PipelineStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineStatus(v)
		return nil
	case clientvuln.FieldStatus:
		v, ok := value.(clientvuln.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case clientvuln.FieldIsAffected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAffected(v)
		return nil
	case clientvuln.FieldConstraintExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintExpr(v)
		return nil
	case clientvuln.FieldConstraintSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintSource(v)
		return nil
	case clientvuln.FieldResolvedVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedVersion(v)
		return nil
	case clientvuln.FieldReachablePath:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReachablePath(v)
		return nil
	case clientvuln.FieldPocResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPocResults(v)
		return nil
	case clientvuln.FieldReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case clientvuln.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case clientvuln.FieldAnalysisCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisCompletedAt(v)
		return nil
	case clientvuln.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	case clientvuln.FieldReportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportedAt(v)
		return nil
	case clientvuln.FieldConfirmedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedAt(v)
		return nil
	case clientvuln.FieldFixedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixedAt(v)
		return nil
	case clientvuln.FieldNotAffectAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotAffectAt(v)
		return nil
	case clientvuln.FieldConfirmedMsg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmedMsg(v)
		return nil
	case clientvuln.FieldFixedMsg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixedMsg(v)
		return nil
	case clientvuln.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clientvuln.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientVuln field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientVulnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientVulnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientVulnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClientVuln numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientVulnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientvuln.FieldStatus) {
		fields = append(fields, clientvuln.FieldStatus)
	}
	if m.FieldCleared(clientvuln.FieldIsAffected) {
		fields = append(fields, clientvuln.FieldIsAffected)
	}
	if m.FieldCleared(clientvuln.FieldConstraintExpr) {
		fields = append(fields, clientvuln.FieldConstraintExpr)
	}
	if m.FieldCleared(clientvuln.FieldConstraintSource) {
		fields = append(fields, clientvuln.FieldConstraintSource)
	}
	if m.FieldCleared(clientvuln.FieldResolvedVersion) {
		fields = append(fields, clientvuln.FieldResolvedVersion)
	}
	if m.FieldCleared(clientvuln.FieldReachablePath) {
		fields = append(fields, clientvuln.FieldReachablePath)
	}
	if m.FieldCleared(clientvuln.FieldPocResults) {
		fields = append(fields, clientvuln.FieldPocResults)
	}
	if m.FieldCleared(clientvuln.FieldReport) {
		fields = append(fields, clientvuln.FieldReport)
	}
	if m.FieldCleared(clientvuln.FieldErrorMessage) {
		fields = append(fields, clientvuln.FieldErrorMessage)
	}
	if m.FieldCleared(clientvuln.FieldAnalysisCompletedAt) {
		fields = append(fields, clientvuln.FieldAnalysisCompletedAt)
	}
	if m.FieldCleared(clientvuln.FieldRecordedAt) {
		fields = append(fields, clientvuln.FieldRecordedAt)
	}
	if m.FieldCleared(clientvuln.FieldReportedAt) {
		fields = append(fields, clientvuln.FieldReportedAt)
	}
	if m.FieldCleared(clientvuln.FieldConfirmedAt) {
		fields = append(fields, clientvuln.FieldConfirmedAt)
	}
	if m.FieldCleared(clientvuln.FieldFixedAt) {
		fields = append(fields, clientvuln.FieldFixedAt)
	}
	if m.FieldCleared(clientvuln.FieldNotAffectAt) {
		fields = append(fields, clientvuln.FieldNotAffectAt)
	}
	if m.FieldCleared(clientvuln.FieldConfirmedMsg) {
		fields = append(fields, clientvuln.FieldConfirmedMsg)
	}
	if m.FieldCleared(clientvuln.FieldFixedMsg) {
		fields = append(fields, clientvuln.FieldFixedMsg)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientVulnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientVulnMutation) ClearField(name string) error {
	switch name {
	case clientvuln.FieldStatus:
		m.ClearStatus()
		return nil
	case clientvuln.FieldIsAffected:
		m.ClearIsAffected()
		return nil
	case clientvuln.FieldConstraintExpr:
		m.ClearConstraintExpr()
		return nil
	case clientvuln.FieldConstraintSource:
		m.ClearConstraintSource()
		return nil
	case clientvuln.FieldResolvedVersion:
		m.ClearResolvedVersion()
		return nil
	case clientvuln.FieldReachablePath:
		m.ClearReachablePath()
		return nil
	case clientvuln.FieldPocResults:
		m.ClearPocResults()
		return nil
	case clientvuln.FieldReport:
		m.ClearReport()
		return nil
	case clientvuln.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case clientvuln.FieldAnalysisCompletedAt:
		m.ClearAnalysisCompletedAt()
		return nil
	case clientvuln.FieldRecordedAt:
		m.ClearRecordedAt()
		return nil
	case clientvuln.FieldReportedAt:
		m.ClearReportedAt()
		return nil
	case clientvuln.FieldConfirmedAt:
		m.ClearConfirmedAt()
		return nil
	case clientvuln.FieldFixedAt:
		m.ClearFixedAt()
		return nil
	case clientvuln.FieldNotAffectAt:
		m.ClearNotAffectAt()
		return nil
	case clientvuln.FieldConfirmedMsg:
		m.ClearConfirmedMsg()
		return nil
	case clientvuln.FieldFixedMsg:
		m.ClearFixedMsg()
		return nil
	}
	return fmt.Errorf("unknown ClientVuln nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientVulnMutation) ResetField(name string) error {
	switch name {
	case clientvuln.FieldUpstreamVulnID:
		m.ResetUpstreamVulnID()
		return nil
	case clientvuln.FieldProjectID:
		m.ResetProjectID()
		return nil
	case clientvuln.FieldPipelineStatus:
		m.ResetPipelineStatus()
		return nil
	case clientvuln.FieldStatus:
		m.ResetStatus()
		return nil
	case clientvuln.FieldIsAffected:
		m.ResetIsAffected()
		return nil
	case clientvuln.FieldConstraintExpr:
		m.ResetConstraintExpr()
		return nil
	case clientvuln.FieldConstraintSource:
		m.ResetConstraintSource()
		return nil
	case clientvuln.FieldResolvedVersion:
		m.ResetResolvedVersion()
		return nil
	case clientvuln.FieldReachablePath:
		m.ResetReachablePath()
		return nil
	case clientvuln.FieldPocResults:
		m.ResetPocResults()
		return nil
	case clientvuln.FieldReport:
		m.ResetReport()
		return nil
	case clientvuln.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case clientvuln.FieldAnalysisCompletedAt:
		m.ResetAnalysisCompletedAt()
		return nil
	case clientvuln.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	case clientvuln.FieldReportedAt:
		m.ResetReportedAt()
		return nil
	case clientvuln.FieldConfirmedAt:
		m.ResetConfirmedAt()
		return nil
	case clientvuln.FieldFixedAt:
		m.ResetFixedAt()
		return nil
	case clientvuln.FieldNotAffectAt:
		m.ResetNotAffectAt()
		return nil
	case clientvuln.FieldConfirmedMsg:
		m.ResetConfirmedMsg()
		return nil
	case clientvuln.FieldFixedMsg:
		m.ResetFixedMsg()
		return nil
	case clientvuln.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clientvuln.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientVuln field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientVulnMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.upstream_vuln != nil {
		edges = append(edges, clientvuln.EdgeUpstreamVuln)
	}
	if m.project != nil {
		edges = append(edges, clientvuln.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientVulnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clientvuln.EdgeUpstreamVuln:
		if id := m.upstream_vuln; id != nil {
			return []ent.Value{*id}
		}
	case clientvuln.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientVulnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientVulnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientVulnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedupstream_vuln {
		edges = append(edges, clientvuln.EdgeUpstreamVuln)
	}
	if m.clearedproject {
		edges = append(edges, clientvuln.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientVulnMutation) EdgeCleared(name string) bool {
	switch name {
	case clientvuln.EdgeUpstreamVuln:
		return m.clearedupstream_vuln
	case clientvuln.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientVulnMutation) ClearEdge(name string) error {
	switch name {
	case clientvuln.EdgeUpstreamVuln:
		m.ClearUpstreamVuln()
		return nil
	case clientvuln.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ClientVuln unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientVulnMutation) ResetEdge(name string) error {
	switch name {
	case clientvuln.EdgeUpstreamVuln:
		m.ResetUpstreamVuln()
		return nil
	case clientvuln.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ClientVuln edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	_type                 *event.Type
	ref                   *string
	title                 *string
	message               *string
	author                *string
	related_issue_ref     *string
	related_pr_ref        *string
	related_commit_sha    *string
	classification        *event.Classification
	confidence            *float64
	addconfidence         *float64
	is_bugfix             *bool
	occurred_at           *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	library               *string
	clearedlibrary        bool
	upstream_vulns        map[string]struct{}
	removedupstream_vulns map[string]struct{}
	clearedupstream_vulns bool
	done                  bool
	oldValue              func(context.Context) (*Event, error)
	predicates            []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id string) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLibraryID sets the "library_id" field.
func (m *EventMutation) SetLibraryID(s string) {
	m.library = &s
}

// LibraryID returns the value of the "library_id" field in the mutation.
func (m *EventMutation) LibraryID() (r string, exists bool) {
	v := m.library
	if v == nil {
		return
	}
	return *v, true
}

// OldLibraryID returns the old "library_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLibraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLibraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLibraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLibraryID: %w", err)
	}
	return oldValue.LibraryID, nil
}

// ResetLibraryID resets all changes to the "library_id" field.
func (m *EventMutation) ResetLibraryID() {
	m.library = nil
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(e event.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r event.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v event.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetRef sets the "ref" field.
func (m *EventMutation) SetRef(s string) {
	m.ref = &s
}

// Ref returns the value of the "ref" field in the mutation.
func (m *EventMutation) Ref() (r string, exists bool) {
	v := m.ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRef returns the old "ref" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRef: %w", err)
	}
	return oldValue.Ref, nil
}

// ResetRef resets all changes to the "ref" field.
func (m *EventMutation) ResetRef() {
	m.ref = nil
}

// SetTitle sets the "title" field.
func (m *EventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EventMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *EventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *EventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *EventMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[event.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *EventMutation) MessageCleared() bool {
	_, ok := m.clearedFields[event.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *EventMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, event.FieldMessage)
}

// SetAuthor sets the "author" field.
func (m *EventMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *EventMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *EventMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[event.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *EventMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[event.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *EventMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, event.FieldAuthor)
}

// SetRelatedIssueRef sets the "related_issue_ref" field.
func (m *EventMutation) SetRelatedIssueRef(s string) {
	m.related_issue_ref = &s
}

// RelatedIssueRef returns the value of the "related_issue_ref" field in the mutation.
func (m *EventMutation) RelatedIssueRef() (r string, exists bool) {
	v := m.related_issue_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedIssueRef returns the old "related_issue_ref" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRelatedIssueRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedIssueRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedIssueRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedIssueRef: %w", err)
	}
	return oldValue.RelatedIssueRef, nil
}

// ClearRelatedIssueRef clears the value of the "related_issue_ref" field.
func (m *EventMutation) ClearRelatedIssueRef() {
	m.related_issue_ref = nil
	m.clearedFields[event.FieldRelatedIssueRef] = struct{}{}
}

// RelatedIssueRefCleared returns if the "related_issue_ref" field was cleared in this mutation.
func (m *EventMutation) RelatedIssueRefCleared() bool {
	_, ok := m.clearedFields[event.FieldRelatedIssueRef]
	return ok
}

// ResetRelatedIssueRef resets all changes to the "related_issue_ref" field.
func (m *EventMutation) ResetRelatedIssueRef() {
	m.related_issue_ref = nil
	delete(m.clearedFields, event.FieldRelatedIssueRef)
}

// SetRelatedPrRef sets the "related_pr_ref" field.
func (m *EventMutation) SetRelatedPrRef(s string) {
	m.related_pr_ref = &s
}

// RelatedPrRef returns the value of the "related_pr_ref" field in the mutation.
func (m *EventMutation) RelatedPrRef() (r string, exists bool) {
	v := m.related_pr_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedPrRef returns the old "related_pr_ref" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRelatedPrRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedPrRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedPrRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedPrRef: %w", err)
	}
	return oldValue.RelatedPrRef, nil
}

// ClearRelatedPrRef clears the value of the "related_pr_ref" field.
func (m *EventMutation) ClearRelatedPrRef() {
	m.related_pr_ref = nil
	m.clearedFields[event.FieldRelatedPrRef] = struct{}{}
}

// RelatedPrRefCleared returns if the "related_pr_ref" field was cleared in this mutation.
func (m *EventMutation) RelatedPrRefCleared() bool {
	_, ok := m.clearedFields[event.FieldRelatedPrRef]
	return ok
}

// ResetRelatedPrRef resets all changes to the "related_pr_ref" field.
func (m *EventMutation) ResetRelatedPrRef() {
	m.related_pr_ref = nil
	delete(m.clearedFields, event.FieldRelatedPrRef)
}

// SetRelatedCommitSha sets the "related_commit_sha" field.
func (m *EventMutation) SetRelatedCommitSha(s string) {
	m.related_commit_sha = &s
}

// RelatedCommitSha returns the value of the "related_commit_sha" field in the mutation.
func (m *EventMutation) RelatedCommitSha() (r string, exists bool) {
	v := m.related_commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedCommitSha returns the old "related_commit_sha" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRelatedCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedCommitSha: %w", err)
	}
	return oldValue.RelatedCommitSha, nil
}

// ClearRelatedCommitSha clears the value of the "related_commit_sha" field.
func (m *EventMutation) ClearRelatedCommitSha() {
	m.related_commit_sha = nil
	m.clearedFields[event.FieldRelatedCommitSha] = struct{}{}
}

// RelatedCommitShaCleared returns if the "related_commit_sha" field was cleared in this mutation.
func (m *EventMutation) RelatedCommitShaCleared() bool {
	_, ok := m.clearedFields[event.FieldRelatedCommitSha]
	return ok
}

// ResetRelatedCommitSha resets all changes to the "related_commit_sha" field.
func (m *EventMutation) ResetRelatedCommitSha() {
	m.related_commit_sha = nil
	delete(m.clearedFields, event.FieldRelatedCommitSha)
}

// SetClassification sets the "classification" field.
func (m *EventMutation) SetClassification(e event.Classification) {
	m.classification = &e
}

// Classification returns the value of the "classification" field in the mutation.
func (m *EventMutation) Classification() (r event.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldClassification(ctx context.Context) (v *event.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *EventMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[event.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *EventMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[event.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *EventMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, event.FieldClassification)
}

// SetConfidence sets the "confidence" field.
func (m *EventMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EventMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EventMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EventMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *EventMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[event.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *EventMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[event.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EventMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, event.FieldConfidence)
}

// SetIsBugfix sets the "is_bugfix" field.
func (m *EventMutation) SetIsBugfix(b bool) {
	m.is_bugfix = &b
}

// IsBugfix returns the value of the "is_bugfix" field in the mutation.
func (m *EventMutation) IsBugfix() (r bool, exists bool) {
	v := m.is_bugfix
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBugfix returns the old "is_bugfix" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIsBugfix(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBugfix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBugfix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBugfix: %w", err)
	}
	return oldValue.IsBugfix, nil
}

// ResetIsBugfix resets all changes to the "is_bugfix" field.
func (m *EventMutation) ResetIsBugfix() {
	m.is_bugfix = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ClearOccurredAt clears the value of the "occurred_at" field.
func (m *EventMutation) ClearOccurredAt() {
	m.occurred_at = nil
	m.clearedFields[event.FieldOccurredAt] = struct{}{}
}

// OccurredAtCleared returns if the "occurred_at" field was cleared in this mutation.
func (m *EventMutation) OccurredAtCleared() bool {
	_, ok := m.clearedFields[event.FieldOccurredAt]
	return ok
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
	delete(m.clearedFields, event.FieldOccurredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLibrary clears the "library" edge to the Library entity.
func (m *EventMutation) ClearLibrary() {
	m.clearedlibrary = true
	m.clearedFields[event.FieldLibraryID] = struct{}{}
}

// LibraryCleared reports if the "library" edge to the Library entity was cleared.
func (m *EventMutation) LibraryCleared() bool {
	return m.clearedlibrary
}

// LibraryIDs returns the "library" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LibraryID instead. It exists only for internal usage by the builders.
func (m *EventMutation) LibraryIDs() (ids []string) {
	if id := m.library; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLibrary resets all changes to the "library" edge.
func (m *EventMutation) ResetLibrary() {
	m.library = nil
	m.clearedlibrary = false
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by ids.
func (m *EventMutation) AddUpstreamVulnIDs(ids ...string) {
	if m.upstream_vulns == nil {
		m.upstream_vulns = make(map[string]struct{})
	}
	for i := range ids {
		m.upstream_vulns[ids[i]] = struct{}{}
	}
}

// ClearUpstreamVulns clears the "upstream_vulns" edge to the UpstreamVuln entity.
func (m *EventMutation) ClearUpstreamVulns() {
	m.clearedupstream_vulns = true
}

// UpstreamVulnsCleared reports if the "upstream_vulns" edge to the UpstreamVuln entity was cleared.
func (m *EventMutation) UpstreamVulnsCleared() bool {
	return m.clearedupstream_vulns
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (m *EventMutation) RemoveUpstreamVulnIDs(ids ...string) {
	if m.removedupstream_vulns == nil {
		m.removedupstream_vulns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.upstream_vulns, ids[i])
		m.removedupstream_vulns[ids[i]] = struct{}{}
	}
}

// RemovedUpstreamVulns returns the removed IDs of the "upstream_vulns" edge to the UpstreamVuln entity.
func (m *EventMutation) RemovedUpstreamVulnsIDs() (ids []string) {
	for id := range m.removedupstream_vulns {
		ids = append(ids, id)
	}
	return
}

// UpstreamVulnsIDs returns the "upstream_vulns" edge IDs in the mutation.
func (m *EventMutation) UpstreamVulnsIDs() (ids []string) {
	for id := range m.upstream_vulns {
		ids = append(ids, id)
	}
	return
}

// ResetUpstreamVulns resets all changes to the "upstream_vulns" edge.
func (m *EventMutation) ResetUpstreamVulns() {
	m.upstream_vulns = nil
	m.clearedupstream_vulns = false
	m.removedupstream_vulns = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.library != nil {
		fields = append(fields, event.FieldLibraryID)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.ref != nil {
		fields = append(fields, event.FieldRef)
	}
	if m.title != nil {
		fields = append(fields, event.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, event.FieldMessage)
	}
	if m.author != nil {
		fields = append(fields, event.FieldAuthor)
	}
	if m.related_issue_ref != nil {
		fields = append(fields, event.FieldRelatedIssueRef)
	}
	if m.related_pr_ref != nil {
		fields = append(fields, event.FieldRelatedPrRef)
	}
	if m.related_commit_sha != nil {
		fields = append(fields, event.FieldRelatedCommitSha)
	}
	if m.classification != nil {
		fields = append(fields, event.FieldClassification)
	}
	if m.confidence != nil {
		fields = append(fields, event.FieldConfidence)
	}
	if m.is_bugfix != nil {
		fields = append(fields, event.FieldIsBugfix)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, event.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldLibraryID:
		return m.LibraryID()
	case event.FieldType:
		return m.GetType()
	case event.FieldRef:
		return m.Ref()
	case event.FieldTitle:
		return m.Title()
	case event.FieldMessage:
		return m.Message()
	case event.FieldAuthor:
		return m.Author()
	case event.FieldRelatedIssueRef:
		return m.RelatedIssueRef()
	case event.FieldRelatedPrRef:
		return m.RelatedPrRef()
	case event.FieldRelatedCommitSha:
		return m.RelatedCommitSha()
	case event.FieldClassification:
		return m.Classification()
	case event.FieldConfidence:
		return m.Confidence()
	case event.FieldIsBugfix:
		return m.IsBugfix()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	case event.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldLibraryID:
		return m.OldLibraryID(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldRef:
		return m.OldRef(ctx)
	case event.FieldTitle:
		return m.OldTitle(ctx)
	case event.FieldMessage:
		return m.OldMessage(ctx)
	case event.FieldAuthor:
		return m.OldAuthor(ctx)
	case event.FieldRelatedIssueRef:
		return m.OldRelatedIssueRef(ctx)
	case event.FieldRelatedPrRef:
		return m.OldRelatedPrRef(ctx)
	case event.FieldRelatedCommitSha:
		return m.OldRelatedCommitSha(ctx)
	case event.FieldClassification:
		return m.OldClassification(ctx)
	case event.FieldConfidence:
		return m.OldConfidence(ctx)
	case event.FieldIsBugfix:
		return m.OldIsBugfix(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case event.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldLibraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLibraryID(v)
		return nil
	case event.FieldType:
		v, ok := value.(event.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRef(v)
		return nil
	case event.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case event.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case event.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case event.FieldRelatedIssueRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedIssueRef(v)
		return nil
	case event.FieldRelatedPrRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedPrRef(v)
		return nil
	case event.FieldRelatedCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedCommitSha(v)
		return nil
	case event.FieldClassification:
		v, ok := value.(event.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case event.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case event.FieldIsBugfix:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBugfix(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case event.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, event.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldMessage) {
		fields = append(fields, event.FieldMessage)
	}
	if m.FieldCleared(event.FieldAuthor) {
		fields = append(fields, event.FieldAuthor)
	}
	if m.FieldCleared(event.FieldRelatedIssueRef) {
		fields = append(fields, event.FieldRelatedIssueRef)
	}
	if m.FieldCleared(event.FieldRelatedPrRef) {
		fields = append(fields, event.FieldRelatedPrRef)
	}
	if m.FieldCleared(event.FieldRelatedCommitSha) {
		fields = append(fields, event.FieldRelatedCommitSha)
	}
	if m.FieldCleared(event.FieldClassification) {
		fields = append(fields, event.FieldClassification)
	}
	if m.FieldCleared(event.FieldConfidence) {
		fields = append(fields, event.FieldConfidence)
	}
	if m.FieldCleared(event.FieldOccurredAt) {
		fields = append(fields, event.FieldOccurredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldMessage:
		m.ClearMessage()
		return nil
	case event.FieldAuthor:
		m.ClearAuthor()
		return nil
	case event.FieldRelatedIssueRef:
		m.ClearRelatedIssueRef()
		return nil
	case event.FieldRelatedPrRef:
		m.ClearRelatedPrRef()
		return nil
	case event.FieldRelatedCommitSha:
		m.ClearRelatedCommitSha()
		return nil
	case event.FieldClassification:
		m.ClearClassification()
		return nil
	case event.FieldConfidence:
		m.ClearConfidence()
		return nil
	case event.FieldOccurredAt:
		m.ClearOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldLibraryID:
		m.ResetLibraryID()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldRef:
		m.ResetRef()
		return nil
	case event.FieldTitle:
		m.ResetTitle()
		return nil
	case event.FieldMessage:
		m.ResetMessage()
		return nil
	case event.FieldAuthor:
		m.ResetAuthor()
		return nil
	case event.FieldRelatedIssueRef:
		m.ResetRelatedIssueRef()
		return nil
	case event.FieldRelatedPrRef:
		m.ResetRelatedPrRef()
		return nil
	case event.FieldRelatedCommitSha:
		m.ResetRelatedCommitSha()
		return nil
	case event.FieldClassification:
		m.ResetClassification()
		return nil
	case event.FieldConfidence:
		m.ResetConfidence()
		return nil
	case event.FieldIsBugfix:
		m.ResetIsBugfix()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case event.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.library != nil {
		edges = append(edges, event.EdgeLibrary)
	}
	if m.upstream_vulns != nil {
		edges = append(edges, event.EdgeUpstreamVulns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeLibrary:
		if id := m.library; id != nil {
			return []ent.Value{*id}
		}
	case event.EdgeUpstreamVulns:
		ids := make([]ent.Value, 0, len(m.upstream_vulns))
		for id := range m.upstream_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedupstream_vulns != nil {
		edges = append(edges, event.EdgeUpstreamVulns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeUpstreamVulns:
		ids := make([]ent.Value, 0, len(m.removedupstream_vulns))
		for id := range m.removedupstream_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlibrary {
		edges = append(edges, event.EdgeLibrary)
	}
	if m.clearedupstream_vulns {
		edges = append(edges, event.EdgeUpstreamVulns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeLibrary:
		return m.clearedlibrary
	case event.EdgeUpstreamVulns:
		return m.clearedupstream_vulns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeLibrary:
		m.ClearLibrary()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeLibrary:
		m.ResetLibrary()
		return nil
	case event.EdgeUpstreamVulns:
		m.ResetUpstreamVulns()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// LibraryMutation represents an operation that mutates the Library nodes in the graph.
type LibraryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	name                  *string
	repo_url              *string
	platform              *string
	ecosystem             *string
	default_branch        *string
	last_commit_sha       *string
	last_tag_name         *string
	last_scanned_at       *time.Time
	collector_health      *library.CollectorHealth
	collector_detail      *map[string]string
	collector_error       *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	events                map[string]struct{}
	removedevents         map[string]struct{}
	clearedevents         bool
	upstream_vulns        map[string]struct{}
	removedupstream_vulns map[string]struct{}
	clearedupstream_vulns bool
	dependencies          map[string]struct{}
	removeddependencies   map[string]struct{}
	cleareddependencies   bool
	done                  bool
	oldValue              func(context.Context) (*Library, error)
	predicates            []predicate.Library
}

var _ ent.Mutation = (*LibraryMutation)(nil)

// libraryOption allows management of the mutation configuration using functional options.
type libraryOption func(*LibraryMutation)

// newLibraryMutation creates new mutation for the Library entity.
func newLibraryMutation(c config, op Op, opts ...libraryOption) *LibraryMutation {
	m := &LibraryMutation{
		config:        c,
		op:            op,
		typ:           TypeLibrary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLibraryID sets the ID field of the mutation.
func withLibraryID(id string) libraryOption {
	return func(m *LibraryMutation) {
		var (
			err   error
			once  sync.Once
			value *Library
		)
		m.oldValue = func(ctx context.Context) (*Library, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Library.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLibrary sets the old Library of the mutation.
func withLibrary(node *Library) libraryOption {
	return func(m *LibraryMutation) {
		m.oldValue = func(context.Context) (*Library, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LibraryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LibraryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Library entities.
func (m *LibraryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LibraryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LibraryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Library.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LibraryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LibraryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LibraryMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *LibraryMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *LibraryMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *LibraryMutation) ResetRepoURL() {
	m.repo_url = nil
}

// SetPlatform sets the "platform" field.
func (m *LibraryMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *LibraryMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *LibraryMutation) ResetPlatform() {
	m.platform = nil
}

// SetEcosystem sets the "ecosystem" field.
func (m *LibraryMutation) SetEcosystem(s string) {
	m.ecosystem = &s
}

// Ecosystem returns the value of the "ecosystem" field in the mutation.
func (m *LibraryMutation) Ecosystem() (r string, exists bool) {
	v := m.ecosystem
	if v == nil {
		return
	}
	return *v, true
}

// OldEcosystem returns the old "ecosystem" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldEcosystem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEcosystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEcosystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEcosystem: %w", err)
	}
	return oldValue.Ecosystem, nil
}

// ClearEcosystem clears the value of the "ecosystem" field.
func (m *LibraryMutation) ClearEcosystem() {
	m.ecosystem = nil
	m.clearedFields[library.FieldEcosystem] = struct{}{}
}

// EcosystemCleared returns if the "ecosystem" field was cleared in this mutation.
func (m *LibraryMutation) EcosystemCleared() bool {
	_, ok := m.clearedFields[library.FieldEcosystem]
	return ok
}

// ResetEcosystem resets all changes to the "ecosystem" field.
func (m *LibraryMutation) ResetEcosystem() {
	m.ecosystem = nil
	delete(m.clearedFields, library.FieldEcosystem)
}

// SetDefaultBranch sets the "default_branch" field.
func (m *LibraryMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *LibraryMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *LibraryMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetLastCommitSha sets the "last_commit_sha" field.
func (m *LibraryMutation) SetLastCommitSha(s string) {
	m.last_commit_sha = &s
}

// LastCommitSha returns the value of the "last_commit_sha" field in the mutation.
func (m *LibraryMutation) LastCommitSha() (r string, exists bool) {
	v := m.last_commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCommitSha returns the old "last_commit_sha" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldLastCommitSha(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCommitSha: %w", err)
	}
	return oldValue.LastCommitSha, nil
}

// ClearLastCommitSha clears the value of the "last_commit_sha" field.
func (m *LibraryMutation) ClearLastCommitSha() {
	m.last_commit_sha = nil
	m.clearedFields[library.FieldLastCommitSha] = struct{}{}
}

// LastCommitShaCleared returns if the "last_commit_sha" field was cleared in this mutation.
func (m *LibraryMutation) LastCommitShaCleared() bool {
	_, ok := m.clearedFields[library.FieldLastCommitSha]
	return ok
}

// ResetLastCommitSha resets all changes to the "last_commit_sha" field.
func (m *LibraryMutation) ResetLastCommitSha() {
	m.last_commit_sha = nil
	delete(m.clearedFields, library.FieldLastCommitSha)
}

// SetLastTagName sets the "last_tag_name" field.
func (m *LibraryMutation) SetLastTagName(s string) {
	m.last_tag_name = &s
}

// LastTagName returns the value of the "last_tag_name" field in the mutation.
func (m *LibraryMutation) LastTagName() (r string, exists bool) {
	v := m.last_tag_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTagName returns the old "last_tag_name" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldLastTagName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTagName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTagName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTagName: %w", err)
	}
	return oldValue.LastTagName, nil
}

// ClearLastTagName clears the value of the "last_tag_name" field.
func (m *LibraryMutation) ClearLastTagName() {
	m.last_tag_name = nil
	m.clearedFields[library.FieldLastTagName] = struct{}{}
}

// LastTagNameCleared returns if the "last_tag_name" field was cleared in this mutation.
func (m *LibraryMutation) LastTagNameCleared() bool {
	_, ok := m.clearedFields[library.FieldLastTagName]
	return ok
}

// ResetLastTagName resets all changes to the "last_tag_name" field.
func (m *LibraryMutation) ResetLastTagName() {
	m.last_tag_name = nil
	delete(m.clearedFields, library.FieldLastTagName)
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (m *LibraryMutation) SetLastScannedAt(t time.Time) {
	m.last_scanned_at = &t
}

// LastScannedAt returns the value of the "last_scanned_at" field in the mutation.
func (m *LibraryMutation) LastScannedAt() (r time.Time, exists bool) {
	v := m.last_scanned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScannedAt returns the old "last_scanned_at" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldLastScannedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScannedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScannedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScannedAt: %w", err)
	}
	return oldValue.LastScannedAt, nil
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (m *LibraryMutation) ClearLastScannedAt() {
	m.last_scanned_at = nil
	m.clearedFields[library.FieldLastScannedAt] = struct{}{}
}

// LastScannedAtCleared returns if the "last_scanned_at" field was cleared in this mutation.
func (m *LibraryMutation) LastScannedAtCleared() bool {
	_, ok := m.clearedFields[library.FieldLastScannedAt]
	return ok
}

// ResetLastScannedAt resets all changes to the "last_scanned_at" field.
func (m *LibraryMutation) ResetLastScannedAt() {
	m.last_scanned_at = nil
	delete(m.clearedFields, library.FieldLastScannedAt)
}

// SetCollectorHealth sets the "collector_health" field.
func (m *LibraryMutation) SetCollectorHealth(lh library.CollectorHealth) {
	m.collector_health = &lh
}

// CollectorHealth returns the value of the "collector_health" field in the mutation.
func (m *LibraryMutation) CollectorHealth() (r library.CollectorHealth, exists bool) {
	v := m.collector_health
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectorHealth returns the old "collector_health" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldCollectorHealth(ctx context.Context) (v library.CollectorHealth, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectorHealth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectorHealth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectorHealth: %w", err)
	}
	return oldValue.CollectorHealth, nil
}

// ResetCollectorHealth resets all changes to the "collector_health" field.
func (m *LibraryMutation) ResetCollectorHealth() {
	m.collector_health = nil
}

// SetCollectorDetail sets the "collector_detail" field.
func (m *LibraryMutation) SetCollectorDetail(value map[string]string) {
	m.collector_detail = &value
}

// CollectorDetail returns the value of the "collector_detail" field in the mutation.
func (m *LibraryMutation) CollectorDetail() (r map[string]string, exists bool) {
	v := m.collector_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectorDetail returns the old "collector_detail" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldCollectorDetail(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectorDetail: %w", err)
	}
	return oldValue.CollectorDetail, nil
}

// ClearCollectorDetail clears the value of the "collector_detail" field.
func (m *LibraryMutation) ClearCollectorDetail() {
	m.collector_detail = nil
	m.clearedFields[library.FieldCollectorDetail] = struct{}{}
}

// CollectorDetailCleared returns if the "collector_detail" field was cleared in this mutation.
func (m *LibraryMutation) CollectorDetailCleared() bool {
	_, ok := m.clearedFields[library.FieldCollectorDetail]
	return ok
}

// ResetCollectorDetail resets all changes to the "collector_detail" field.
func (m *LibraryMutation) ResetCollectorDetail() {
	m.collector_detail = nil
	delete(m.clearedFields, library.FieldCollectorDetail)
}

// SetCollectorError sets the "collector_error" field.
func (m *LibraryMutation) SetCollectorError(s string) {
	m.collector_error = &s
}

// CollectorError returns the value of the "collector_error" field in the mutation.
func (m *LibraryMutation) CollectorError() (r string, exists bool) {
	v := m.collector_error
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectorError returns the old "collector_error" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldCollectorError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectorError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectorError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectorError: %w", err)
	}
	return oldValue.CollectorError, nil
}

// ClearCollectorError clears the value of the "collector_error" field.
func (m *LibraryMutation) ClearCollectorError() {
	m.collector_error = nil
	m.clearedFields[library.FieldCollectorError] = struct{}{}
}

// CollectorErrorCleared returns if the "collector_error" field was cleared in this mutation.
func (m *LibraryMutation) CollectorErrorCleared() bool {
	_, ok := m.clearedFields[library.FieldCollectorError]
	return ok
}

// ResetCollectorError resets all changes to the "collector_error" field.
func (m *LibraryMutation) ResetCollectorError() {
	m.collector_error = nil
	delete(m.clearedFields, library.FieldCollectorError)
}

// SetCreatedAt sets the "created_at" field.
func (m *LibraryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LibraryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LibraryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LibraryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LibraryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Library entity.
// If the Library object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LibraryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LibraryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *LibraryMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *LibraryMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *LibraryMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *LibraryMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *LibraryMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *LibraryMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *LibraryMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddUpstreamVulnIDs adds the "upstream_vulns" edge to the UpstreamVuln entity by ids.
func (m *LibraryMutation) AddUpstreamVulnIDs(ids ...string) {
	if m.upstream_vulns == nil {
		m.upstream_vulns = make(map[string]struct{})
	}
	for i := range ids {
		m.upstream_vulns[ids[i]] = struct{}{}
	}
}

// ClearUpstreamVulns clears the "upstream_vulns" edge to the UpstreamVuln entity.
func (m *LibraryMutation) ClearUpstreamVulns() {
	m.clearedupstream_vulns = true
}

// UpstreamVulnsCleared reports if the "upstream_vulns" edge to the UpstreamVuln entity was cleared.
func (m *LibraryMutation) UpstreamVulnsCleared() bool {
	return m.clearedupstream_vulns
}

// RemoveUpstreamVulnIDs removes the "upstream_vulns" edge to the UpstreamVuln entity by IDs.
func (m *LibraryMutation) RemoveUpstreamVulnIDs(ids ...string) {
	if m.removedupstream_vulns == nil {
		m.removedupstream_vulns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.upstream_vulns, ids[i])
		m.removedupstream_vulns[ids[i]] = struct{}{}
	}
}

// RemovedUpstreamVulns returns the removed IDs of the "upstream_vulns" edge to the UpstreamVuln entity.
func (m *LibraryMutation) RemovedUpstreamVulnsIDs() (ids []string) {
	for id := range m.removedupstream_vulns {
		ids = append(ids, id)
	}
	return
}

// UpstreamVulnsIDs returns the "upstream_vulns" edge IDs in the mutation.
func (m *LibraryMutation) UpstreamVulnsIDs() (ids []string) {
	for id := range m.upstream_vulns {
		ids = append(ids, id)
	}
	return
}

// ResetUpstreamVulns resets all changes to the "upstream_vulns" edge.
func (m *LibraryMutation) ResetUpstreamVulns() {
	m.upstream_vulns = nil
	m.clearedupstream_vulns = false
	m.removedupstream_vulns = nil
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by ids.
func (m *LibraryMutation) AddDependencyIDs(ids ...string) {
	if m.dependencies == nil {
		m.dependencies = make(map[string]struct{})
	}
	for i := range ids {
		m.dependencies[ids[i]] = struct{}{}
	}
}

// ClearDependencies clears the "dependencies" edge to the ProjectDependency entity.
func (m *LibraryMutation) ClearDependencies() {
	m.cleareddependencies = true
}

// DependenciesCleared reports if the "dependencies" edge to the ProjectDependency entity was cleared.
func (m *LibraryMutation) DependenciesCleared() bool {
	return m.cleareddependencies
}

// RemoveDependencyIDs removes the "dependencies" edge to the ProjectDependency entity by IDs.
func (m *LibraryMutation) RemoveDependencyIDs(ids ...string) {
	if m.removeddependencies == nil {
		m.removeddependencies = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependencies, ids[i])
		m.removeddependencies[ids[i]] = struct{}{}
	}
}

// RemovedDependencies returns the removed IDs of the "dependencies" edge to the ProjectDependency entity.
func (m *LibraryMutation) RemovedDependenciesIDs() (ids []string) {
	for id := range m.removeddependencies {
		ids = append(ids, id)
	}
	return
}

// DependenciesIDs returns the "dependencies" edge IDs in the mutation.
func (m *LibraryMutation) DependenciesIDs() (ids []string) {
	for id := range m.dependencies {
		ids = append(ids, id)
	}
	return
}

// ResetDependencies resets all changes to the "dependencies" edge.
func (m *LibraryMutation) ResetDependencies() {
	m.dependencies = nil
	m.cleareddependencies = false
	m.removeddependencies = nil
}

// Where appends a list predicates to the LibraryMutation builder.
func (m *LibraryMutation) Where(ps ...predicate.Library) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LibraryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LibraryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Library, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LibraryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LibraryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Library).
func (m *LibraryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LibraryMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, library.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, library.FieldRepoURL)
	}
	if m.platform != nil {
		fields = append(fields, library.FieldPlatform)
	}
	if m.ecosystem != nil {
		fields = append(fields, library.FieldEcosystem)
	}
	if m.default_branch != nil {
		fields = append(fields, library.FieldDefaultBranch)
	}
	if m.last_commit_sha != nil {
		fields = append(fields, library.FieldLastCommitSha)
	}
	if m.last_tag_name != nil {
		fields = append(fields, library.FieldLastTagName)
	}
	if m.last_scanned_at != nil {
		fields = append(fields, library.FieldLastScannedAt)
	}
	if m.collector_health != nil {
		fields = append(fields, library.FieldCollectorHealth)
	}
	if m.collector_detail != nil {
		fields = append(fields, library.FieldCollectorDetail)
	}
	if m.collector_error != nil {
		fields = append(fields, library.FieldCollectorError)
	}
	if m.created_at != nil {
		fields = append(fields, library.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, library.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LibraryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case library.FieldName:
		return m.Name()
	case library.FieldRepoURL:
		return m.RepoURL()
	case library.FieldPlatform:
		return m.Platform()
	case library.FieldEcosystem:
		return m.Ecosystem()
	case library.FieldDefaultBranch:
		return m.DefaultBranch()
	case library.FieldLastCommitSha:
		return m.LastCommitSha()
	case library.FieldLastTagName:
		return m.LastTagName()
	case library.FieldLastScannedAt:
		return m.LastScannedAt()
	case library.FieldCollectorHealth:
		return m.CollectorHealth()
	case library.FieldCollectorDetail:
		return m.CollectorDetail()
	case library.FieldCollectorError:
		return m.CollectorError()
	case library.FieldCreatedAt:
		return m.CreatedAt()
	case library.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LibraryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case library.FieldName:
		return m.OldName(ctx)
	case library.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case library.FieldPlatform:
		return m.OldPlatform(ctx)
	case library.FieldEcosystem:
		return m.OldEcosystem(ctx)
	case library.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case library.FieldLastCommitSha:
		return m.OldLastCommitSha(ctx)
	case library.FieldLastTagName:
		return m.OldLastTagName(ctx)
	case library.FieldLastScannedAt:
		return m.OldLastScannedAt(ctx)
	case library.FieldCollectorHealth:
		return m.OldCollectorHealth(ctx)
	case library.FieldCollectorDetail:
		return m.OldCollectorDetail(ctx)
	case library.FieldCollectorError:
		return m.OldCollectorError(ctx)
	case library.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case library.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Library field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LibraryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case library.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case library.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case library.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case library.FieldEcosystem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEcosystem(v)
		return nil
	case library.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case library.FieldLastCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCommitSha(v)
		return nil
	case library.FieldLastTagName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTagName(v)
		return nil
	case library.FieldLastScannedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScannedAt(v)
		return nil
	case library.FieldCollectorHealth:
		v, ok := value.(library.CollectorHealth)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectorHealth(v)
		return nil
	case library.FieldCollectorDetail:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectorDetail(v)
		return nil
	case library.FieldCollectorError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectorError(v)
		return nil
	case library.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case library.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Library field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LibraryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LibraryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LibraryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Library numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LibraryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(library.FieldEcosystem) {
		fields = append(fields, library.FieldEcosystem)
	}
	if m.FieldCleared(library.FieldLastCommitSha) {
		fields = append(fields, library.FieldLastCommitSha)
	}
	if m.FieldCleared(library.FieldLastTagName) {
		fields = append(fields, library.FieldLastTagName)
	}
	if m.FieldCleared(library.FieldLastScannedAt) {
		fields = append(fields, library.FieldLastScannedAt)
	}
	if m.FieldCleared(library.FieldCollectorDetail) {
		fields = append(fields, library.FieldCollectorDetail)
	}
	if m.FieldCleared(library.FieldCollectorError) {
		fields = append(fields, library.FieldCollectorError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LibraryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LibraryMutation) ClearField(name string) error {
	switch name {
	case library.FieldEcosystem:
		m.ClearEcosystem()
		return nil
	case library.FieldLastCommitSha:
		m.ClearLastCommitSha()
		return nil
	case library.FieldLastTagName:
		m.ClearLastTagName()
		return nil
	case library.FieldLastScannedAt:
		m.ClearLastScannedAt()
		return nil
	case library.FieldCollectorDetail:
		m.ClearCollectorDetail()
		return nil
	case library.FieldCollectorError:
		m.ClearCollectorError()
		return nil
	}
	return fmt.Errorf("unknown Library nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LibraryMutation) ResetField(name string) error {
	switch name {
	case library.FieldName:
		m.ResetName()
		return nil
	case library.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case library.FieldPlatform:
		m.ResetPlatform()
		return nil
	case library.FieldEcosystem:
		m.ResetEcosystem()
		return nil
	case library.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case library.FieldLastCommitSha:
		m.ResetLastCommitSha()
		return nil
	case library.FieldLastTagName:
		m.ResetLastTagName()
		return nil
	case library.FieldLastScannedAt:
		m.ResetLastScannedAt()
		return nil
	case library.FieldCollectorHealth:
		m.ResetCollectorHealth()
		return nil
	case library.FieldCollectorDetail:
		m.ResetCollectorDetail()
		return nil
	case library.FieldCollectorError:
		m.ResetCollectorError()
		return nil
	case library.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case library.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Library field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LibraryMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.events != nil {
		edges = append(edges, library.EdgeEvents)
	}
	if m.upstream_vulns != nil {
		edges = append(edges, library.EdgeUpstreamVulns)
	}
	if m.dependencies != nil {
		edges = append(edges, library.EdgeDependencies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LibraryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case library.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case library.EdgeUpstreamVulns:
		ids := make([]ent.Value, 0, len(m.upstream_vulns))
		for id := range m.upstream_vulns {
			ids = append(ids, id)
		}
		return ids
	case library.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.dependencies))
		for id := range m.dependencies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LibraryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedevents != nil {
		edges = append(edges, library.EdgeEvents)
	}
	if m.removedupstream_vulns != nil {
		edges = append(edges, library.EdgeUpstreamVulns)
	}
	if m.removeddependencies != nil {
		edges = append(edges, library.EdgeDependencies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LibraryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case library.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case library.EdgeUpstreamVulns:
		ids := make([]ent.Value, 0, len(m.removedupstream_vulns))
		for id := range m.removedupstream_vulns {
			ids = append(ids, id)
		}
		return ids
	case library.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.removeddependencies))
		for id := range m.removeddependencies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LibraryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevents {
		edges = append(edges, library.EdgeEvents)
	}
	if m.clearedupstream_vulns {
		edges = append(edges, library.EdgeUpstreamVulns)
	}
	if m.cleareddependencies {
		edges = append(edges, library.EdgeDependencies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LibraryMutation) EdgeCleared(name string) bool {
	switch name {
	case library.EdgeEvents:
		return m.clearedevents
	case library.EdgeUpstreamVulns:
		return m.clearedupstream_vulns
	case library.EdgeDependencies:
		return m.cleareddependencies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LibraryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Library unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LibraryMutation) ResetEdge(name string) error {
	switch name {
	case library.EdgeEvents:
		m.ResetEvents()
		return nil
	case library.EdgeUpstreamVulns:
		m.ResetUpstreamVulns()
		return nil
	case library.EdgeDependencies:
		m.ResetDependencies()
		return nil
	}
	return fmt.Errorf("unknown Library edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	organization        *string
	repo_url            *string
	default_branch      *string
	current_version     *string
	pinned_ref          *string
	auto_sync_deps      *bool
	scan_status         *string
	scan_error          *string
	last_scanned_at     *time.Time
	contact_email       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	dependencies        map[string]struct{}
	removeddependencies map[string]struct{}
	cleareddependencies bool
	client_vulns        map[string]struct{}
	removedclient_vulns map[string]struct{}
	clearedclient_vulns bool
	done                bool
	oldValue            func(context.Context) (*Project, error)
	predicates          []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetOrganization sets the "organization" field.
func (m *ProjectMutation) SetOrganization(s string) {
	m.organization = &s
}

// Organization returns the value of the "organization" field in the mutation.
func (m *ProjectMutation) Organization() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganization returns the old "organization" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOrganization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganization: %w", err)
	}
	return oldValue.Organization, nil
}

// ClearOrganization clears the value of the "organization" field.
func (m *ProjectMutation) ClearOrganization() {
	m.organization = nil
	m.clearedFields[project.FieldOrganization] = struct{}{}
}

// OrganizationCleared returns if the "organization" field was cleared in this mutation.
func (m *ProjectMutation) OrganizationCleared() bool {
	_, ok := m.clearedFields[project.FieldOrganization]
	return ok
}

// ResetOrganization resets all changes to the "organization" field.
func (m *ProjectMutation) ResetOrganization() {
	m.organization = nil
	delete(m.clearedFields, project.FieldOrganization)
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
}

// SetDefaultBranch sets the "default_branch" field.
func (m *ProjectMutation) SetDefaultBranch(s string) {
	m.default_branch = &s
}

// DefaultBranch returns the value of the "default_branch" field in the mutation.
func (m *ProjectMutation) DefaultBranch() (r string, exists bool) {
	v := m.default_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultBranch returns the old "default_branch" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDefaultBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultBranch: %w", err)
	}
	return oldValue.DefaultBranch, nil
}

// ResetDefaultBranch resets all changes to the "default_branch" field.
func (m *ProjectMutation) ResetDefaultBranch() {
	m.default_branch = nil
}

// SetCurrentVersion sets the "current_version" field.
func (m *ProjectMutation) SetCurrentVersion(s string) {
	m.current_version = &s
}

// CurrentVersion returns the value of the "current_version" field in the mutation.
func (m *ProjectMutation) CurrentVersion() (r string, exists bool) {
	v := m.current_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersion returns the old "current_version" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersion: %w", err)
	}
	return oldValue.CurrentVersion, nil
}

// ClearCurrentVersion clears the value of the "current_version" field.
func (m *ProjectMutation) ClearCurrentVersion() {
	m.current_version = nil
	m.clearedFields[project.FieldCurrentVersion] = struct{}{}
}

// CurrentVersionCleared returns if the "current_version" field was cleared in this mutation.
func (m *ProjectMutation) CurrentVersionCleared() bool {
	_, ok := m.clearedFields[project.FieldCurrentVersion]
	return ok
}

// ResetCurrentVersion resets all changes to the "current_version" field.
func (m *ProjectMutation) ResetCurrentVersion() {
	m.current_version = nil
	delete(m.clearedFields, project.FieldCurrentVersion)
}

// SetPinnedRef sets the "pinned_ref" field.
func (m *ProjectMutation) SetPinnedRef(s string) {
	m.pinned_ref = &s
}

// PinnedRef returns the value of the "pinned_ref" field in the mutation.
func (m *ProjectMutation) PinnedRef() (r string, exists bool) {
	v := m.pinned_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldPinnedRef returns the old "pinned_ref" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPinnedRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinnedRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinnedRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinnedRef: %w", err)
	}
	return oldValue.PinnedRef, nil
}

// ClearPinnedRef clears the value of the "pinned_ref" field.
func (m *ProjectMutation) ClearPinnedRef() {
	m.pinned_ref = nil
	m.clearedFields[project.FieldPinnedRef] = struct{}{}
}

// PinnedRefCleared returns if the "pinned_ref" field was cleared in this mutation.
func (m *ProjectMutation) PinnedRefCleared() bool {
	_, ok := m.clearedFields[project.FieldPinnedRef]
	return ok
}

// ResetPinnedRef resets all changes to the "pinned_ref" field.
func (m *ProjectMutation) ResetPinnedRef() {
	m.pinned_ref = nil
	delete(m.clearedFields, project.FieldPinnedRef)
}

// SetAutoSyncDeps sets the "auto_sync_deps" field.
func (m *ProjectMutation) SetAutoSyncDeps(b bool) {
	m.auto_sync_deps = &b
}

// AutoSyncDeps returns the value of the "auto_sync_deps" field in the mutation.
func (m *ProjectMutation) AutoSyncDeps() (r bool, exists bool) {
	v := m.auto_sync_deps
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoSyncDeps returns the old "auto_sync_deps" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldAutoSyncDeps(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoSyncDeps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoSyncDeps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoSyncDeps: %w", err)
	}
	return oldValue.AutoSyncDeps, nil
}

// ResetAutoSyncDeps resets all changes to the "auto_sync_deps" field.
func (m *ProjectMutation) ResetAutoSyncDeps() {
	m.auto_sync_deps = nil
}

// SetScanStatus sets the "scan_status" field.
func (m *ProjectMutation) SetScanStatus(s string) {
	m.scan_status = &s
}

// ScanStatus returns the value of the "scan_status" field in the mutation.
func (m *ProjectMutation) ScanStatus() (r string, exists bool) {
	v := m.scan_status
	if v == nil {
		return
	}
	return *v, true
}

// OldScanStatus returns the old "scan_status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldScanStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanStatus: %w", err)
	}
	return oldValue.ScanStatus, nil
}

// ClearScanStatus clears the value of the "scan_status" field.
func (m *ProjectMutation) ClearScanStatus() {
	m.scan_status = nil
	m.clearedFields[project.FieldScanStatus] = struct{}{}
}

// ScanStatusCleared returns if the "scan_status" field was cleared in this mutation.
func (m *ProjectMutation) ScanStatusCleared() bool {
	_, ok := m.clearedFields[project.FieldScanStatus]
	return ok
}

// ResetScanStatus resets all changes to the "scan_status" field.
func (m *ProjectMutation) ResetScanStatus() {
	m.scan_status = nil
	delete(m.clearedFields, project.FieldScanStatus)
}

// SetScanError sets the "scan_error" field.
func (m *ProjectMutation) SetScanError(s string) {
	m.scan_error = &s
}

// ScanError returns the value of the "scan_error" field in the mutation.
func (m *ProjectMutation) ScanError() (r string, exists bool) {
	v := m.scan_error
	if v == nil {
		return
	}
	return *v, true
}

// OldScanError returns the old "scan_error" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldScanError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanError: %w", err)
	}
	return oldValue.ScanError, nil
}

// ClearScanError clears the value of the "scan_error" field.
func (m *ProjectMutation) ClearScanError() {
	m.scan_error = nil
	m.clearedFields[project.FieldScanError] = struct{}{}
}

// ScanErrorCleared returns if the "scan_error" field was cleared in this mutation.
func (m *ProjectMutation) ScanErrorCleared() bool {
	_, ok := m.clearedFields[project.FieldScanError]
	return ok
}

// ResetScanError resets all changes to the "scan_error" field.
func (m *ProjectMutation) ResetScanError() {
	m.scan_error = nil
	delete(m.clearedFields, project.FieldScanError)
}

// SetLastScannedAt sets the "last_scanned_at" field.
func (m *ProjectMutation) SetLastScannedAt(t time.Time) {
	m.last_scanned_at = &t
}

// LastScannedAt returns the value of the "last_scanned_at" field in the mutation.
func (m *ProjectMutation) LastScannedAt() (r time.Time, exists bool) {
	v := m.last_scanned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScannedAt returns the old "last_scanned_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastScannedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScannedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScannedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScannedAt: %w", err)
	}
	return oldValue.LastScannedAt, nil
}

// ClearLastScannedAt clears the value of the "last_scanned_at" field.
func (m *ProjectMutation) ClearLastScannedAt() {
	m.last_scanned_at = nil
	m.clearedFields[project.FieldLastScannedAt] = struct{}{}
}

// LastScannedAtCleared returns if the "last_scanned_at" field was cleared in this mutation.
func (m *ProjectMutation) LastScannedAtCleared() bool {
	_, ok := m.clearedFields[project.FieldLastScannedAt]
	return ok
}

// ResetLastScannedAt resets all changes to the "last_scanned_at" field.
func (m *ProjectMutation) ResetLastScannedAt() {
	m.last_scanned_at = nil
	delete(m.clearedFields, project.FieldLastScannedAt)
}

// SetContactEmail sets the "contact_email" field.
func (m *ProjectMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *ProjectMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *ProjectMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[project.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *ProjectMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[project.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *ProjectMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, project.FieldContactEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDependencyIDs adds the "dependencies" edge to the ProjectDependency entity by ids.
func (m *ProjectMutation) AddDependencyIDs(ids ...string) {
	if m.dependencies == nil {
		m.dependencies = make(map[string]struct{})
	}
	for i := range ids {
		m.dependencies[ids[i]] = struct{}{}
	}
}

// ClearDependencies clears the "dependencies" edge to the ProjectDependency entity.
func (m *ProjectMutation) ClearDependencies() {
	m.cleareddependencies = true
}

// DependenciesCleared reports if the "dependencies" edge to the ProjectDependency entity was cleared.
func (m *ProjectMutation) DependenciesCleared() bool {
	return m.cleareddependencies
}

// RemoveDependencyIDs removes the "dependencies" edge to the ProjectDependency entity by IDs.
func (m *ProjectMutation) RemoveDependencyIDs(ids ...string) {
	if m.removeddependencies == nil {
		m.removeddependencies = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependencies, ids[i])
		m.removeddependencies[ids[i]] = struct{}{}
	}
}

// RemovedDependencies returns the removed IDs of the "dependencies" edge to the ProjectDependency entity.
func (m *ProjectMutation) RemovedDependenciesIDs() (ids []string) {
	for id := range m.removeddependencies {
		ids = append(ids, id)
	}
	return
}

// DependenciesIDs returns the "dependencies" edge IDs in the mutation.
func (m *ProjectMutation) DependenciesIDs() (ids []string) {
	for id := range m.dependencies {
		ids = append(ids, id)
	}
	return
}

// ResetDependencies resets all changes to the "dependencies" edge.
func (m *ProjectMutation) ResetDependencies() {
	m.dependencies = nil
	m.cleareddependencies = false
	m.removeddependencies = nil
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by ids.
func (m *ProjectMutation) AddClientVulnIDs(ids ...string) {
	if m.client_vulns == nil {
		m.client_vulns = make(map[string]struct{})
	}
	for i := range ids {
		m.client_vulns[ids[i]] = struct{}{}
	}
}

// ClearClientVulns clears the "client_vulns" edge to the ClientVuln entity.
func (m *ProjectMutation) ClearClientVulns() {
	m.clearedclient_vulns = true
}

// ClientVulnsCleared reports if the "client_vulns" edge to the ClientVuln entity was cleared.
func (m *ProjectMutation) ClientVulnsCleared() bool {
	return m.clearedclient_vulns
}

// RemoveClientVulnIDs removes the "client_vulns" edge to the ClientVuln entity by IDs.
func (m *ProjectMutation) RemoveClientVulnIDs(ids ...string) {
	if m.removedclient_vulns == nil {
		m.removedclient_vulns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.client_vulns, ids[i])
		m.removedclient_vulns[ids[i]] = struct{}{}
	}
}

// RemovedClientVulns returns the removed IDs of the "client_vulns" edge to the ClientVuln entity.
func (m *ProjectMutation) RemovedClientVulnsIDs() (ids []string) {
	for id := range m.removedclient_vulns {
		ids = append(ids, id)
	}
	return
}

// ClientVulnsIDs returns the "client_vulns" edge IDs in the mutation.
func (m *ProjectMutation) ClientVulnsIDs() (ids []string) {
	for id := range m.client_vulns {
		ids = append(ids, id)
	}
	return
}

// ResetClientVulns resets all changes to the "client_vulns" edge.
func (m *ProjectMutation) ResetClientVulns() {
	m.client_vulns = nil
	m.clearedclient_vulns = false
	m.removedclient_vulns = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.organization != nil {
		fields = append(fields, project.FieldOrganization)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.default_branch != nil {
		fields = append(fields, project.FieldDefaultBranch)
	}
	if m.current_version != nil {
		fields = append(fields, project.FieldCurrentVersion)
	}
	if m.pinned_ref != nil {
		fields = append(fields, project.FieldPinnedRef)
	}
	if m.auto_sync_deps != nil {
		fields = append(fields, project.FieldAutoSyncDeps)
	}
	if m.scan_status != nil {
		fields = append(fields, project.FieldScanStatus)
	}
	if m.scan_error != nil {
		fields = append(fields, project.FieldScanError)
	}
	if m.last_scanned_at != nil {
		fields = append(fields, project.FieldLastScannedAt)
	}
	if m.contact_email != nil {
		fields = append(fields, project.FieldContactEmail)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldOrganization:
		return m.Organization()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldDefaultBranch:
		return m.DefaultBranch()
	case project.FieldCurrentVersion:
		return m.CurrentVersion()
	case project.FieldPinnedRef:
		return m.PinnedRef()
	case project.FieldAutoSyncDeps:
		return m.AutoSyncDeps()
	case project.FieldScanStatus:
		return m.ScanStatus()
	case project.FieldScanError:
		return m.ScanError()
	case project.FieldLastScannedAt:
		return m.LastScannedAt()
	case project.FieldContactEmail:
		return m.ContactEmail()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldOrganization:
		return m.OldOrganization(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldDefaultBranch:
		return m.OldDefaultBranch(ctx)
	case project.FieldCurrentVersion:
		return m.OldCurrentVersion(ctx)
	case project.FieldPinnedRef:
		return m.OldPinnedRef(ctx)
	case project.FieldAutoSyncDeps:
		return m.OldAutoSyncDeps(ctx)
	case project.FieldScanStatus:
		return m.OldScanStatus(ctx)
	case project.FieldScanError:
		return m.OldScanError(ctx)
	case project.FieldLastScannedAt:
		return m.OldLastScannedAt(ctx)
	case project.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldOrganization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganization(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldDefaultBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultBranch(v)
		return nil
	case project.FieldCurrentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersion(v)
		return nil
	case project.FieldPinnedRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinnedRef(v)
		return nil
	case project.FieldAutoSyncDeps:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoSyncDeps(v)
		return nil
	case project.FieldScanStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanStatus(v)
		return nil
	case project.FieldScanError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanError(v)
		return nil
	case project.FieldLastScannedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScannedAt(v)
		return nil
	case project.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldOrganization) {
		fields = append(fields, project.FieldOrganization)
	}
	if m.FieldCleared(project.FieldCurrentVersion) {
		fields = append(fields, project.FieldCurrentVersion)
	}
	if m.FieldCleared(project.FieldPinnedRef) {
		fields = append(fields, project.FieldPinnedRef)
	}
	if m.FieldCleared(project.FieldScanStatus) {
		fields = append(fields, project.FieldScanStatus)
	}
	if m.FieldCleared(project.FieldScanError) {
		fields = append(fields, project.FieldScanError)
	}
	if m.FieldCleared(project.FieldLastScannedAt) {
		fields = append(fields, project.FieldLastScannedAt)
	}
	if m.FieldCleared(project.FieldContactEmail) {
		fields = append(fields, project.FieldContactEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldOrganization:
		m.ClearOrganization()
		return nil
	case project.FieldCurrentVersion:
		m.ClearCurrentVersion()
		return nil
	case project.FieldPinnedRef:
		m.ClearPinnedRef()
		return nil
	case project.FieldScanStatus:
		m.ClearScanStatus()
		return nil
	case project.FieldScanError:
		m.ClearScanError()
		return nil
	case project.FieldLastScannedAt:
		m.ClearLastScannedAt()
		return nil
	case project.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldOrganization:
		m.ResetOrganization()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldDefaultBranch:
		m.ResetDefaultBranch()
		return nil
	case project.FieldCurrentVersion:
		m.ResetCurrentVersion()
		return nil
	case project.FieldPinnedRef:
		m.ResetPinnedRef()
		return nil
	case project.FieldAutoSyncDeps:
		m.ResetAutoSyncDeps()
		return nil
	case project.FieldScanStatus:
		m.ResetScanStatus()
		return nil
	case project.FieldScanError:
		m.ResetScanError()
		return nil
	case project.FieldLastScannedAt:
		m.ResetLastScannedAt()
		return nil
	case project.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dependencies != nil {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.client_vulns != nil {
		edges = append(edges, project.EdgeClientVulns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.dependencies))
		for id := range m.dependencies {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeClientVulns:
		ids := make([]ent.Value, 0, len(m.client_vulns))
		for id := range m.client_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddependencies != nil {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.removedclient_vulns != nil {
		edges = append(edges, project.EdgeClientVulns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.removeddependencies))
		for id := range m.removeddependencies {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeClientVulns:
		ids := make([]ent.Value, 0, len(m.removedclient_vulns))
		for id := range m.removedclient_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddependencies {
		edges = append(edges, project.EdgeDependencies)
	}
	if m.clearedclient_vulns {
		edges = append(edges, project.EdgeClientVulns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeDependencies:
		return m.cleareddependencies
	case project.EdgeClientVulns:
		return m.clearedclient_vulns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeDependencies:
		m.ResetDependencies()
		return nil
	case project.EdgeClientVulns:
		m.ResetClientVulns()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectDependencyMutation represents an operation that mutates the ProjectDependency nodes in the graph.
type ProjectDependencyMutation struct {
	config
	op                Op
	typ               string
	id                *string
	constraint_expr   *string
	resolved_version  *string
	constraint_source *string
	notify_enabled    *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	project           *string
	clearedproject    bool
	library           *string
	clearedlibrary    bool
	done              bool
	oldValue          func(context.Context) (*ProjectDependency, error)
	predicates        []predicate.ProjectDependency
}

var _ ent.Mutation = (*ProjectDependencyMutation)(nil)

// projectdependencyOption allows management of the mutation configuration using functional options.
type projectdependencyOption func(*ProjectDependencyMutation)

// newProjectDependencyMutation creates new mutation for the ProjectDependency entity.
func newProjectDependencyMutation(c config, op Op, opts ...projectdependencyOption) *ProjectDependencyMutation {
	m := &ProjectDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectDependencyID sets the ID field of the mutation.
func withProjectDependencyID(id string) projectdependencyOption {
	return func(m *ProjectDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectDependency
		)
		m.oldValue = func(ctx context.Context) (*ProjectDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectDependency sets the old ProjectDependency of the mutation.
func withProjectDependency(node *ProjectDependency) projectdependencyOption {
	return func(m *ProjectDependencyMutation) {
		m.oldValue = func(context.Context) (*ProjectDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectDependency entities.
func (m *ProjectDependencyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectDependencyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectDependencyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectDependencyMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectDependencyMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectDependencyMutation) ResetProjectID() {
	m.project = nil
}

// SetLibraryID sets the "library_id" field.
func (m *ProjectDependencyMutation) SetLibraryID(s string) {
	m.library = &s
}

// LibraryID returns the value of the "library_id" field in the mutation.
func (m *ProjectDependencyMutation) LibraryID() (r string, exists bool) {
	v := m.library
	if v == nil {
		return
	}
	return *v, true
}

// OldLibraryID returns the old "library_id" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldLibraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLibraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLibraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLibraryID: %w", err)
	}
	return oldValue.LibraryID, nil
}

// ResetLibraryID resets all changes to the "library_id" field.
func (m *ProjectDependencyMutation) ResetLibraryID() {
	m.library = nil
}

// SetConstraintExpr sets the "constraint_expr" field.
func (m *ProjectDependencyMutation) SetConstraintExpr(s string) {
	m.constraint_expr = &s
}

// ConstraintExpr returns the value of the "constraint_expr" field in the mutation.
func (m *ProjectDependencyMutation) ConstraintExpr() (r string, exists bool) {
	v := m.constraint_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintExpr returns the old "constraint_expr" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldConstraintExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintExpr: %w", err)
	}
	return oldValue.ConstraintExpr, nil
}

// ResetConstraintExpr resets all changes to the "constraint_expr" field.
func (m *ProjectDependencyMutation) ResetConstraintExpr() {
	m.constraint_expr = nil
}

// SetResolvedVersion sets the "resolved_version" field.
func (m *ProjectDependencyMutation) SetResolvedVersion(s string) {
	m.resolved_version = &s
}

// ResolvedVersion returns the value of the "resolved_version" field in the mutation.
func (m *ProjectDependencyMutation) ResolvedVersion() (r string, exists bool) {
	v := m.resolved_version
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedVersion returns the old "resolved_version" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldResolvedVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedVersion: %w", err)
	}
	return oldValue.ResolvedVersion, nil
}

// ClearResolvedVersion clears the value of the "resolved_version" field.
func (m *ProjectDependencyMutation) ClearResolvedVersion() {
	m.resolved_version = nil
	m.clearedFields[projectdependency.FieldResolvedVersion] = struct{}{}
}

// ResolvedVersionCleared returns if the "resolved_version" field was cleared in this mutation.
func (m *ProjectDependencyMutation) ResolvedVersionCleared() bool {
	_, ok := m.clearedFields[projectdependency.FieldResolvedVersion]
	return ok
}

// ResetResolvedVersion resets all changes to the "resolved_version" field.
func (m *ProjectDependencyMutation) ResetResolvedVersion() {
	m.resolved_version = nil
	delete(m.clearedFields, projectdependency.FieldResolvedVersion)
}

// SetConstraintSource sets the "constraint_source" field.
func (m *ProjectDependencyMutation) SetConstraintSource(s string) {
	m.constraint_source = &s
}

// ConstraintSource returns the value of the "constraint_source" field in the mutation.
func (m *ProjectDependencyMutation) ConstraintSource() (r string, exists bool) {
	v := m.constraint_source
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintSource returns the old "constraint_source" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldConstraintSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintSource: %w", err)
	}
	return oldValue.ConstraintSource, nil
}

// ResetConstraintSource resets all changes to the "constraint_source" field.
func (m *ProjectDependencyMutation) ResetConstraintSource() {
	m.constraint_source = nil
}

// SetNotifyEnabled sets the "notify_enabled" field.
func (m *ProjectDependencyMutation) SetNotifyEnabled(b bool) {
	m.notify_enabled = &b
}

// NotifyEnabled returns the value of the "notify_enabled" field in the mutation.
func (m *ProjectDependencyMutation) NotifyEnabled() (r bool, exists bool) {
	v := m.notify_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldNotifyEnabled returns the old "notify_enabled" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldNotifyEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotifyEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotifyEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotifyEnabled: %w", err)
	}
	return oldValue.NotifyEnabled, nil
}

// ResetNotifyEnabled resets all changes to the "notify_enabled" field.
func (m *ProjectDependencyMutation) ResetNotifyEnabled() {
	m.notify_enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectDependencyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectDependencyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectDependencyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectDependencyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectDependencyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectDependency entity.
// If the ProjectDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectDependencyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectDependencyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectDependencyMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[projectdependency.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectDependencyMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectDependencyMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectDependencyMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearLibrary clears the "library" edge to the Library entity.
func (m *ProjectDependencyMutation) ClearLibrary() {
	m.clearedlibrary = true
	m.clearedFields[projectdependency.FieldLibraryID] = struct{}{}
}

// LibraryCleared reports if the "library" edge to the Library entity was cleared.
func (m *ProjectDependencyMutation) LibraryCleared() bool {
	return m.clearedlibrary
}

// LibraryIDs returns the "library" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LibraryID instead. It exists only for internal usage by the builders.
func (m *ProjectDependencyMutation) LibraryIDs() (ids []string) {
	if id := m.library; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLibrary resets all changes to the "library" edge.
func (m *ProjectDependencyMutation) ResetLibrary() {
	m.library = nil
	m.clearedlibrary = false
}

// Where appends a list predicates to the ProjectDependencyMutation builder.
func (m *ProjectDependencyMutation) Where(ps ...predicate.ProjectDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectDependency).
func (m *ProjectDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectDependencyMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, projectdependency.FieldProjectID)
	}
	if m.library != nil {
		fields = append(fields, projectdependency.FieldLibraryID)
	}
	if m.constraint_expr != nil {
		fields = append(fields, projectdependency.FieldConstraintExpr)
	}
	if m.resolved_version != nil {
		fields = append(fields, projectdependency.FieldResolvedVersion)
	}
	if m.constraint_source != nil {
		fields = append(fields, projectdependency.FieldConstraintSource)
	}
	if m.notify_enabled != nil {
		fields = append(fields, projectdependency.FieldNotifyEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, projectdependency.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectdependency.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectdependency.FieldProjectID:
		return m.ProjectID()
	case projectdependency.FieldLibraryID:
		return m.LibraryID()
	case projectdependency.FieldConstraintExpr:
		return m.ConstraintExpr()
	case projectdependency.FieldResolvedVersion:
		return m.ResolvedVersion()
	case projectdependency.FieldConstraintSource:
		return m.ConstraintSource()
	case projectdependency.FieldNotifyEnabled:
		return m.NotifyEnabled()
	case projectdependency.FieldCreatedAt:
		return m.CreatedAt()
	case projectdependency.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectdependency.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectdependency.FieldLibraryID:
		return m.OldLibraryID(ctx)
	case projectdependency.FieldConstraintExpr:
		return m.OldConstraintExpr(ctx)
	case projectdependency.FieldResolvedVersion:
		return m.OldResolvedVersion(ctx)
	case projectdependency.FieldConstraintSource:
		return m.OldConstraintSource(ctx)
	case projectdependency.FieldNotifyEnabled:
		return m.OldNotifyEnabled(ctx)
	case projectdependency.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectdependency.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectdependency.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectdependency.FieldLibraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLibraryID(v)
		return nil
	case projectdependency.FieldConstraintExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintExpr(v)
		return nil
	case projectdependency.FieldResolvedVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedVersion(v)
		return nil
	case projectdependency.FieldConstraintSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintSource(v)
		return nil
	case projectdependency.FieldNotifyEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotifyEnabled(v)
		return nil
	case projectdependency.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectdependency.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectDependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectDependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectDependencyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectdependency.FieldResolvedVersion) {
		fields = append(fields, projectdependency.FieldResolvedVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectDependencyMutation) ClearField(name string) error {
	switch name {
	case projectdependency.FieldResolvedVersion:
		m.ClearResolvedVersion()
		return nil
	}
	return fmt.Errorf("unknown ProjectDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectDependencyMutation) ResetField(name string) error {
	switch name {
	case projectdependency.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectdependency.FieldLibraryID:
		m.ResetLibraryID()
		return nil
	case projectdependency.FieldConstraintExpr:
		m.ResetConstraintExpr()
		return nil
	case projectdependency.FieldResolvedVersion:
		m.ResetResolvedVersion()
		return nil
	case projectdependency.FieldConstraintSource:
		m.ResetConstraintSource()
		return nil
	case projectdependency.FieldNotifyEnabled:
		m.ResetNotifyEnabled()
		return nil
	case projectdependency.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectdependency.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, projectdependency.EdgeProject)
	}
	if m.library != nil {
		edges = append(edges, projectdependency.EdgeLibrary)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectDependencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectdependency.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case projectdependency.EdgeLibrary:
		if id := m.library; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, projectdependency.EdgeProject)
	}
	if m.clearedlibrary {
		edges = append(edges, projectdependency.EdgeLibrary)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectDependencyMutation) EdgeCleared(name string) bool {
	switch name {
	case projectdependency.EdgeProject:
		return m.clearedproject
	case projectdependency.EdgeLibrary:
		return m.clearedlibrary
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectDependencyMutation) ClearEdge(name string) error {
	switch name {
	case projectdependency.EdgeProject:
		m.ClearProject()
		return nil
	case projectdependency.EdgeLibrary:
		m.ClearLibrary()
		return nil
	}
	return fmt.Errorf("unknown ProjectDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectDependencyMutation) ResetEdge(name string) error {
	switch name {
	case projectdependency.EdgeProject:
		m.ResetProject()
		return nil
	case projectdependency.EdgeLibrary:
		m.ResetLibrary()
		return nil
	}
	return fmt.Errorf("unknown ProjectDependency edge %s", name)
}

// UpstreamVulnMutation represents an operation that mutates the UpstreamVuln nodes in the graph.
type UpstreamVulnMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	commit_sha               *string
	vuln_type                *string
	severity                 *upstreamvuln.Severity
	affected_versions        *string
	summary                  *string
	reasoning                *string
	upstream_poc             *map[string]interface{}
	affected_functions       *[]string
	appendaffected_functions []string
	status                   *upstreamvuln.Status
	published_at             *time.Time
	error_message            *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	event                    *string
	clearedevent             bool
	library                  *string
	clearedlibrary           bool
	client_vulns             map[string]struct{}
	removedclient_vulns      map[string]struct{}
	clearedclient_vulns      bool
	done                     bool
	oldValue                 func(context.Context) (*UpstreamVuln, error)
	predicates               []predicate.UpstreamVuln
}

var _ ent.Mutation = (*UpstreamVulnMutation)(nil)

// upstreamvulnOption allows management of the mutation configuration using functional options.
type upstreamvulnOption func(*UpstreamVulnMutation)

// newUpstreamVulnMutation creates new mutation for the UpstreamVuln entity.
func newUpstreamVulnMutation(c config, op Op, opts ...upstreamvulnOption) *UpstreamVulnMutation {
	m := &UpstreamVulnMutation{
		config:        c,
		op:            op,
		typ:           TypeUpstreamVuln,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpstreamVulnID sets the ID field of the mutation.
func withUpstreamVulnID(id string) upstreamvulnOption {
	return func(m *UpstreamVulnMutation) {
		var (
			err   error
			once  sync.Once
			value *UpstreamVuln
		)
		m.oldValue = func(ctx context.Context) (*UpstreamVuln, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UpstreamVuln.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpstreamVuln sets the old UpstreamVuln of the mutation.
func withUpstreamVuln(node *UpstreamVuln) upstreamvulnOption {
	return func(m *UpstreamVulnMutation) {
		m.oldValue = func(context.Context) (*UpstreamVuln, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpstreamVulnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpstreamVulnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UpstreamVuln entities.
func (m *UpstreamVulnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpstreamVulnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpstreamVulnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UpstreamVuln.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *UpstreamVulnMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *UpstreamVulnMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *UpstreamVulnMutation) ResetEventID() {
	m.event = nil
}

// SetLibraryID sets the "library_id" field.
func (m *UpstreamVulnMutation) SetLibraryID(s string) {
	m.library = &s
}

// LibraryID returns the value of the "library_id" field in the mutation.
func (m *UpstreamVulnMutation) LibraryID() (r string, exists bool) {
	v := m.library
	if v == nil {
		return
	}
	return *v, true
}

// OldLibraryID returns the old "library_id" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldLibraryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLibraryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLibraryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLibraryID: %w", err)
	}
	return oldValue.LibraryID, nil
}

// ResetLibraryID resets all changes to the "library_id" field.
func (m *UpstreamVulnMutation) ResetLibraryID() {
	m.library = nil
}

// SetCommitSha sets the "commit_sha" field.
func (m *UpstreamVulnMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *UpstreamVulnMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldCommitSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (m *UpstreamVulnMutation) ClearCommitSha() {
	m.commit_sha = nil
	m.clearedFields[upstreamvuln.FieldCommitSha] = struct{}{}
}

// CommitShaCleared returns if the "commit_sha" field was cleared in this mutation.
func (m *UpstreamVulnMutation) CommitShaCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldCommitSha]
	return ok
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *UpstreamVulnMutation) ResetCommitSha() {
	m.commit_sha = nil
	delete(m.clearedFields, upstreamvuln.FieldCommitSha)
}

// SetVulnType sets the "vuln_type" field.
func (m *UpstreamVulnMutation) SetVulnType(s string) {
	m.vuln_type = &s
}

// VulnType returns the value of the "vuln_type" field in the mutation.
func (m *UpstreamVulnMutation) VulnType() (r string, exists bool) {
	v := m.vuln_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVulnType returns the old "vuln_type" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldVulnType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVulnType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVulnType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVulnType: %w", err)
	}
	return oldValue.VulnType, nil
}

// ClearVulnType clears the value of the "vuln_type" field.
func (m *UpstreamVulnMutation) ClearVulnType() {
	m.vuln_type = nil
	m.clearedFields[upstreamvuln.FieldVulnType] = struct{}{}
}

// VulnTypeCleared returns if the "vuln_type" field was cleared in this mutation.
func (m *UpstreamVulnMutation) VulnTypeCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldVulnType]
	return ok
}

// ResetVulnType resets all changes to the "vuln_type" field.
func (m *UpstreamVulnMutation) ResetVulnType() {
	m.vuln_type = nil
	delete(m.clearedFields, upstreamvuln.FieldVulnType)
}

// SetSeverity sets the "severity" field.
func (m *UpstreamVulnMutation) SetSeverity(u upstreamvuln.Severity) {
	m.severity = &u
}

// Severity returns the value of the "severity" field in the mutation.
func (m *UpstreamVulnMutation) Severity() (r upstreamvuln.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldSeverity(ctx context.Context) (v *upstreamvuln.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *UpstreamVulnMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[upstreamvuln.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *UpstreamVulnMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *UpstreamVulnMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, upstreamvuln.FieldSeverity)
}

// SetAffectedVersions sets the "affected_versions" field.
func (m *UpstreamVulnMutation) SetAffectedVersions(s string) {
	m.affected_versions = &s
}

// AffectedVersions returns the value of the "affected_versions" field in the mutation.
func (m *UpstreamVulnMutation) AffectedVersions() (r string, exists bool) {
	v := m.affected_versions
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedVersions returns the old "affected_versions" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldAffectedVersions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedVersions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedVersions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedVersions: %w", err)
	}
	return oldValue.AffectedVersions, nil
}

// ClearAffectedVersions clears the value of the "affected_versions" field.
func (m *UpstreamVulnMutation) ClearAffectedVersions() {
	m.affected_versions = nil
	m.clearedFields[upstreamvuln.FieldAffectedVersions] = struct{}{}
}

// AffectedVersionsCleared returns if the "affected_versions" field was cleared in this mutation.
func (m *UpstreamVulnMutation) AffectedVersionsCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldAffectedVersions]
	return ok
}

// ResetAffectedVersions resets all changes to the "affected_versions" field.
func (m *UpstreamVulnMutation) ResetAffectedVersions() {
	m.affected_versions = nil
	delete(m.clearedFields, upstreamvuln.FieldAffectedVersions)
}

// SetSummary sets the "summary" field.
func (m *UpstreamVulnMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *UpstreamVulnMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *UpstreamVulnMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[upstreamvuln.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *UpstreamVulnMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *UpstreamVulnMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, upstreamvuln.FieldSummary)
}

// SetReasoning sets the "reasoning" field.
func (m *UpstreamVulnMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *UpstreamVulnMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *UpstreamVulnMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[upstreamvuln.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *UpstreamVulnMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *UpstreamVulnMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, upstreamvuln.FieldReasoning)
}

// SetUpstreamPoc sets the "upstream_poc" field.
func (m *UpstreamVulnMutation) SetUpstreamPoc(value map[string]interface{}) {
	m.upstream_poc = &value
}

// UpstreamPoc returns the value of the "upstream_poc" field in the mutation.
func (m *UpstreamVulnMutation) UpstreamPoc() (r map[string]interface{}, exists bool) {
	v := m.upstream_poc
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamPoc returns the old "upstream_poc" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldUpstreamPoc(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamPoc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamPoc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamPoc: %w", err)
	}
	return oldValue.UpstreamPoc, nil
}

// ClearUpstreamPoc clears the value of the "upstream_poc" field.
func (m *UpstreamVulnMutation) ClearUpstreamPoc() {
	m.upstream_poc = nil
	m.clearedFields[upstreamvuln.FieldUpstreamPoc] = struct{}{}
}

// UpstreamPocCleared returns if the "upstream_poc" field was cleared in this mutation.
func (m *UpstreamVulnMutation) UpstreamPocCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldUpstreamPoc]
	return ok
}

// ResetUpstreamPoc resets all changes to the "upstream_poc" field.
func (m *UpstreamVulnMutation) ResetUpstreamPoc() {
	m.upstream_poc = nil
	delete(m.clearedFields, upstreamvuln.FieldUpstreamPoc)
}

// SetAffectedFunctions sets the "affected_functions" field.
func (m *UpstreamVulnMutation) SetAffectedFunctions(s []string) {
	m.affected_functions = &s
	m.appendaffected_functions = nil
}

// AffectedFunctions returns the value of the "affected_functions" field in the mutation.
func (m *UpstreamVulnMutation) AffectedFunctions() (r []string, exists bool) {
	v := m.affected_functions
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedFunctions returns the old "affected_functions" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldAffectedFunctions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedFunctions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedFunctions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedFunctions: %w", err)
	}
	return oldValue.AffectedFunctions, nil
}

// AppendAffectedFunctions adds s to the "affected_functions" field.
func (m *UpstreamVulnMutation) AppendAffectedFunctions(s []string) {
	m.appendaffected_functions = append(m.appendaffected_functions, s...)
}

// AppendedAffectedFunctions returns the list of values that were appended to the "affected_functions" field in this mutation.
func (m *UpstreamVulnMutation) AppendedAffectedFunctions() ([]string, bool) {
	if len(m.appendaffected_functions) == 0 {
		return nil, false
	}
	return m.appendaffected_functions, true
}

// ClearAffectedFunctions clears the value of the "affected_functions" field.
func (m *UpstreamVulnMutation) ClearAffectedFunctions() {
	m.affected_functions = nil
	m.appendaffected_functions = nil
	m.clearedFields[upstreamvuln.FieldAffectedFunctions] = struct{}{}
}

// AffectedFunctionsCleared returns if the "affected_functions" field was cleared in this mutation.
func (m *UpstreamVulnMutation) AffectedFunctionsCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldAffectedFunctions]
	return ok
}

// ResetAffectedFunctions resets all changes to the "affected_functions" field.
func (m *UpstreamVulnMutation) ResetAffectedFunctions() {
	m.affected_functions = nil
	m.appendaffected_functions = nil
	delete(m.clearedFields, upstreamvuln.FieldAffectedFunctions)
}

// SetStatus sets the "status" field.
func (m *UpstreamVulnMutation) SetStatus(u upstreamvuln.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UpstreamVulnMutation) Status() (r upstreamvuln.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldStatus(ctx context.Context) (v upstreamvuln.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UpstreamVulnMutation) ResetStatus() {
	m.status = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *UpstreamVulnMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *UpstreamVulnMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *UpstreamVulnMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[upstreamvuln.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *UpstreamVulnMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *UpstreamVulnMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, upstreamvuln.FieldPublishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *UpstreamVulnMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UpstreamVulnMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UpstreamVulnMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[upstreamvuln.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UpstreamVulnMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[upstreamvuln.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UpstreamVulnMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, upstreamvuln.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *UpstreamVulnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpstreamVulnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UpstreamVulnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UpstreamVulnMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UpstreamVulnMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UpstreamVuln entity.
// If the UpstreamVuln object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamVulnMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UpstreamVulnMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *UpstreamVulnMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[upstreamvuln.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *UpstreamVulnMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *UpstreamVulnMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *UpstreamVulnMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearLibrary clears the "library" edge to the Library entity.
func (m *UpstreamVulnMutation) ClearLibrary() {
	m.clearedlibrary = true
	m.clearedFields[upstreamvuln.FieldLibraryID] = struct{}{}
}

// LibraryCleared reports if the "library" edge to the Library entity was cleared.
func (m *UpstreamVulnMutation) LibraryCleared() bool {
	return m.clearedlibrary
}

// LibraryIDs returns the "library" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LibraryID instead. It exists only for internal usage by the builders.
func (m *UpstreamVulnMutation) LibraryIDs() (ids []string) {
	if id := m.library; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLibrary resets all changes to the "library" edge.
func (m *UpstreamVulnMutation) ResetLibrary() {
	m.library = nil
	m.clearedlibrary = false
}

// AddClientVulnIDs adds the "client_vulns" edge to the ClientVuln entity by ids.
func (m *UpstreamVulnMutation) AddClientVulnIDs(ids ...string) {
	if m.client_vulns == nil {
		m.client_vulns = make(map[string]struct{})
	}
	for i := range ids {
		m.client_vulns[ids[i]] = struct{}{}
	}
}

// ClearClientVulns clears the "client_vulns" edge to the ClientVuln entity.
func (m *UpstreamVulnMutation) ClearClientVulns() {
	m.clearedclient_vulns = true
}

// ClientVulnsCleared reports if the "client_vulns" edge to the ClientVuln entity was cleared.
func (m *UpstreamVulnMutation) ClientVulnsCleared() bool {
	return m.clearedclient_vulns
}

// RemoveClientVulnIDs removes the "client_vulns" edge to the ClientVuln entity by IDs.
func (m *UpstreamVulnMutation) RemoveClientVulnIDs(ids ...string) {
	if m.removedclient_vulns == nil {
		m.removedclient_vulns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.client_vulns, ids[i])
		m.removedclient_vulns[ids[i]] = struct{}{}
	}
}

// RemovedClientVulns returns the removed IDs of the "client_vulns" edge to the ClientVuln entity.
func (m *UpstreamVulnMutation) RemovedClientVulnsIDs() (ids []string) {
	for id := range m.removedclient_vulns {
		ids = append(ids, id)
	}
	return
}

// ClientVulnsIDs returns the "client_vulns" edge IDs in the mutation.
func (m *UpstreamVulnMutation) ClientVulnsIDs() (ids []string) {
	for id := range m.client_vulns {
		ids = append(ids, id)
	}
	return
}

// ResetClientVulns resets all changes to the "client_vulns" edge.
func (m *UpstreamVulnMutation) ResetClientVulns() {
	m.client_vulns = nil
	m.clearedclient_vulns = false
	m.removedclient_vulns = nil
}

// Where appends a list predicates to the UpstreamVulnMutation builder.
func (m *UpstreamVulnMutation) Where(ps ...predicate.UpstreamVuln) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpstreamVulnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpstreamVulnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UpstreamVuln, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpstreamVulnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpstreamVulnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UpstreamVuln).
func (m *UpstreamVulnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpstreamVulnMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.event != nil {
		fields = append(fields, upstreamvuln.FieldEventID)
	}
	if m.library != nil {
		fields = append(fields, upstreamvuln.FieldLibraryID)
	}
	if m.commit_sha != nil {
		fields = append(fields, upstreamvuln.FieldCommitSha)
	}
	if m.vuln_type != nil {
		fields = append(fields, upstreamvuln.FieldVulnType)
	}
	if m.severity != nil {
		fields = append(fields, upstreamvuln.FieldSeverity)
	}
	if m.affected_versions != nil {
		fields = append(fields, upstreamvuln.FieldAffectedVersions)
	}
	if m.summary != nil {
		fields = append(fields, upstreamvuln.FieldSummary)
	}
	if m.reasoning != nil {
		fields = append(fields, upstreamvuln.FieldReasoning)
	}
	if m.upstream_poc != nil {
		fields = append(fields, upstreamvuln.FieldUpstreamPoc)
	}
	if m.affected_functions != nil {
		fields = append(fields, upstreamvuln.FieldAffectedFunctions)
	}
	if m.status != nil {
		fields = append(fields, upstreamvuln.FieldStatus)
	}
	if m.published_at != nil {
		fields = append(fields, upstreamvuln.FieldPublishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, upstreamvuln.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, upstreamvuln.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, upstreamvuln.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpstreamVulnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upstreamvuln.FieldEventID:
		return m.EventID()
	case upstreamvuln.FieldLibraryID:
		return m.LibraryID()
	case upstreamvuln.FieldCommitSha:
		return m.CommitSha()
	case upstreamvuln.FieldVulnType:
		return m.VulnType()
	case upstreamvuln.FieldSeverity:
		return m.Severity()
	case upstreamvuln.FieldAffectedVersions:
		return m.AffectedVersions()
	case upstreamvuln.FieldSummary:
		return m.Summary()
	case upstreamvuln.FieldReasoning:
		return m.Reasoning()
	case upstreamvuln.FieldUpstreamPoc:
		return m.UpstreamPoc()
	case upstreamvuln.FieldAffectedFunctions:
		return m.AffectedFunctions()
	case upstreamvuln.FieldStatus:
		return m.Status()
	case upstreamvuln.FieldPublishedAt:
		return m.PublishedAt()
	case upstreamvuln.FieldErrorMessage:
		return m.ErrorMessage()
	case upstreamvuln.FieldCreatedAt:
		return m.CreatedAt()
	case upstreamvuln.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpstreamVulnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upstreamvuln.FieldEventID:
		return m.OldEventID(ctx)
	case upstreamvuln.FieldLibraryID:
		return m.OldLibraryID(ctx)
	case upstreamvuln.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case upstreamvuln.FieldVulnType:
		return m.OldVulnType(ctx)
	case upstreamvuln.FieldSeverity:
		return m.OldSeverity(ctx)
	case upstreamvuln.FieldAffectedVersions:
		return m.OldAffectedVersions(ctx)
	case upstreamvuln.FieldSummary:
		return m.OldSummary(ctx)
	case upstreamvuln.FieldReasoning:
		return m.OldReasoning(ctx)
	case upstreamvuln.FieldUpstreamPoc:
		return m.OldUpstreamPoc(ctx)
	case upstreamvuln.FieldAffectedFunctions:
		return m.OldAffectedFunctions(ctx)
	case upstreamvuln.FieldStatus:
		return m.OldStatus(ctx)
	case upstreamvuln.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case upstreamvuln.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case upstreamvuln.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case upstreamvuln.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UpstreamVuln field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamVulnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upstreamvuln.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case upstreamvuln.FieldLibraryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLibraryID(v)
		return nil
	case upstreamvuln.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case upstreamvuln.FieldVulnType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVulnType(v)
		return nil
	case upstreamvuln.FieldSeverity:
		v, ok := value.(upstreamvuln.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case upstreamvuln.FieldAffectedVersions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedVersions(v)
		return nil
	case upstreamvuln.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case upstreamvuln.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case upstreamvuln.FieldUpstreamPoc:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamPoc(v)
		return nil
	case upstreamvuln.FieldAffectedFunctions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedFunctions(v)
		return nil
	case upstreamvuln.FieldStatus:
		v, ok := value.(upstreamvuln.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case upstreamvuln.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case upstreamvuln.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case upstreamvuln.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case upstreamvuln.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UpstreamVuln field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpstreamVulnMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpstreamVulnMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamVulnMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UpstreamVuln numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpstreamVulnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upstreamvuln.FieldCommitSha) {
		fields = append(fields, upstreamvuln.FieldCommitSha)
	}
	if m.FieldCleared(upstreamvuln.FieldVulnType) {
		fields = append(fields, upstreamvuln.FieldVulnType)
	}
	if m.FieldCleared(upstreamvuln.FieldSeverity) {
		fields = append(fields, upstreamvuln.FieldSeverity)
	}
	if m.FieldCleared(upstreamvuln.FieldAffectedVersions) {
		fields = append(fields, upstreamvuln.FieldAffectedVersions)
	}
	if m.FieldCleared(upstreamvuln.FieldSummary) {
		fields = append(fields, upstreamvuln.FieldSummary)
	}
	if m.FieldCleared(upstreamvuln.FieldReasoning) {
		fields = append(fields, upstreamvuln.FieldReasoning)
	}
	if m.FieldCleared(upstreamvuln.FieldUpstreamPoc) {
		fields = append(fields, upstreamvuln.FieldUpstreamPoc)
	}
	if m.FieldCleared(upstreamvuln.FieldAffectedFunctions) {
		fields = append(fields, upstreamvuln.FieldAffectedFunctions)
	}
	if m.FieldCleared(upstreamvuln.FieldPublishedAt) {
		fields = append(fields, upstreamvuln.FieldPublishedAt)
	}
	if m.FieldCleared(upstreamvuln.FieldErrorMessage) {
		fields = append(fields, upstreamvuln.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpstreamVulnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpstreamVulnMutation) ClearField(name string) error {
	switch name {
	case upstreamvuln.FieldCommitSha:
		m.ClearCommitSha()
		return nil
	case upstreamvuln.FieldVulnType:
		m.ClearVulnType()
		return nil
	case upstreamvuln.FieldSeverity:
		m.ClearSeverity()
		return nil
	case upstreamvuln.FieldAffectedVersions:
		m.ClearAffectedVersions()
		return nil
	case upstreamvuln.FieldSummary:
		m.ClearSummary()
		return nil
	case upstreamvuln.FieldReasoning:
		m.ClearReasoning()
		return nil
	case upstreamvuln.FieldUpstreamPoc:
		m.ClearUpstreamPoc()
		return nil
	case upstreamvuln.FieldAffectedFunctions:
		m.ClearAffectedFunctions()
		return nil
	case upstreamvuln.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case upstreamvuln.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown UpstreamVuln nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpstreamVulnMutation) ResetField(name string) error {
	switch name {
	case upstreamvuln.FieldEventID:
		m.ResetEventID()
		return nil
	case upstreamvuln.FieldLibraryID:
		m.ResetLibraryID()
		return nil
	case upstreamvuln.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case upstreamvuln.FieldVulnType:
		m.ResetVulnType()
		return nil
	case upstreamvuln.FieldSeverity:
		m.ResetSeverity()
		return nil
	case upstreamvuln.FieldAffectedVersions:
		m.ResetAffectedVersions()
		return nil
	case upstreamvuln.FieldSummary:
		m.ResetSummary()
		return nil
	case upstreamvuln.FieldReasoning:
		m.ResetReasoning()
		return nil
	case upstreamvuln.FieldUpstreamPoc:
		m.ResetUpstreamPoc()
		return nil
	case upstreamvuln.FieldAffectedFunctions:
		m.ResetAffectedFunctions()
		return nil
	case upstreamvuln.FieldStatus:
		m.ResetStatus()
		return nil
	case upstreamvuln.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case upstreamvuln.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case upstreamvuln.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case upstreamvuln.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UpstreamVuln field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpstreamVulnMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.event != nil {
		edges = append(edges, upstreamvuln.EdgeEvent)
	}
	if m.library != nil {
		edges = append(edges, upstreamvuln.EdgeLibrary)
	}
	if m.client_vulns != nil {
		edges = append(edges, upstreamvuln.EdgeClientVulns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpstreamVulnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upstreamvuln.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case upstreamvuln.EdgeLibrary:
		if id := m.library; id != nil {
			return []ent.Value{*id}
		}
	case upstreamvuln.EdgeClientVulns:
		ids := make([]ent.Value, 0, len(m.client_vulns))
		for id := range m.client_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpstreamVulnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedclient_vulns != nil {
		edges = append(edges, upstreamvuln.EdgeClientVulns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpstreamVulnMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upstreamvuln.EdgeClientVulns:
		ids := make([]ent.Value, 0, len(m.removedclient_vulns))
		for id := range m.removedclient_vulns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpstreamVulnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedevent {
		edges = append(edges, upstreamvuln.EdgeEvent)
	}
	if m.clearedlibrary {
		edges = append(edges, upstreamvuln.EdgeLibrary)
	}
	if m.clearedclient_vulns {
		edges = append(edges, upstreamvuln.EdgeClientVulns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpstreamVulnMutation) EdgeCleared(name string) bool {
	switch name {
	case upstreamvuln.EdgeEvent:
		return m.clearedevent
	case upstreamvuln.EdgeLibrary:
		return m.clearedlibrary
	case upstreamvuln.EdgeClientVulns:
		return m.clearedclient_vulns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpstreamVulnMutation) ClearEdge(name string) error {
	switch name {
	case upstreamvuln.EdgeEvent:
		m.ClearEvent()
		return nil
	case upstreamvuln.EdgeLibrary:
		m.ClearLibrary()
		return nil
	}
	return fmt.Errorf("unknown UpstreamVuln unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpstreamVulnMutation) ResetEdge(name string) error {
	switch name {
	case upstreamvuln.EdgeEvent:
		m.ResetEvent()
		return nil
	case upstreamvuln.EdgeLibrary:
		m.ResetLibrary()
		return nil
	case upstreamvuln.EdgeClientVulns:
		m.ResetClientVulns()
		return nil
	}
	return fmt.Errorf("unknown UpstreamVuln edge %s", name)
}
