// Package agent provides the reusable turn-bounded tool-calling loop that
// the classifier and analyzer stages run their LLM work through.
package agent

import (
	"context"
	"encoding/json"

	"github.com/vulnsentinel/vulnsentinel/pkg/llm"
)

// Tool is one function exposed to the model. Run returns the textual result
// and whether it represents an error; tool errors are fed back to the model
// rather than aborting the run.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage // JSON Schema for the arguments object
	Run         func(ctx context.Context, args map[string]any) (string, bool)
}

// Spec defines one agent: its prompts, tool surface, knobs, and how to
// decide that the final content is usable.
type Spec struct {
	// AgentType tags AgentRun audit rows, e.g. "classifier" or "analyzer".
	AgentType string

	Model       string
	Temperature float64
	MaxTurns    int

	SystemPrompt string

	// UrgencyMessage, when non-empty, is injected as a user turn once two
	// turns remain, pushing the model toward a final answer.
	UrgencyMessage string

	Tools []Tool

	// EarlyStop reports that the assistant content already contains a
	// well-formed answer, allowing exit before the model stops on its own.
	EarlyStop func(content string) bool

	// Validate is consulted on turn exhaustion: a nil error marks the run
	// completed, an error marks it timeout. Nil Validate means exhaustion
	// is always a timeout.
	Validate func(content string) error

	// Context compression knobs.
	CompressionEnabled  bool
	MaxContextTokens    int
	CompressionCriteria string
}

// toolDefs converts the tool surface into the LLM wire representation.
func (s *Spec) toolDefs() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(s.Tools))
	for _, t := range s.Tools {
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}
	return defs
}

func (s *Spec) tool(name string) *Tool {
	for i := range s.Tools {
		if s.Tools[i].Name == name {
			return &s.Tools[i]
		}
	}
	return nil
}
