// Package classifier labels collected events, cheaply where rules suffice
// and through the LLM agent where they do not.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/pkg/agent"
	"github.com/vulnsentinel/vulnsentinel/pkg/github"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

const (
	batchLimit  = 20
	concurrency = 3

	model       = "gpt-4o-mini"
	temperature = 0.1
	maxTurns    = 8
)

// fallbackConfidence is stored when the LLM answer cannot be parsed; the
// event is labeled other instead of being retried forever.
const fallbackConfidence = 0.3

const systemPrompt = `You classify a single repository event (commit, merged pull request, or bug issue) from a C/C++ library.

Use the tools to inspect diffs, files, and linked issues as needed. Then answer with exactly one JSON object:
{"label": "...", "confidence": 0.0-1.0, "reasoning": "..."}

label must be one of: security_bugfix, normal_bugfix, refactor, feature, other.
security_bugfix means the change fixes a memory-safety, input-validation, or other security-relevant defect.`

const urgencyMessage = "You are nearly out of turns. Answer now with the single JSON object, using what you already know."

// labelAliases maps extended labels the model sometimes emits to the five
// canonical ones.
var labelAliases = map[string]event.Classification{
	"security":       event.ClassificationSecurityBugfix,
	"security_fix":   event.ClassificationSecurityBugfix,
	"vulnerability":  event.ClassificationSecurityBugfix,
	"bugfix":         event.ClassificationNormalBugfix,
	"bug_fix":        event.ClassificationNormalBugfix,
	"fix":            event.ClassificationNormalBugfix,
	"enhancement":    event.ClassificationFeature,
	"cleanup":        event.ClassificationRefactor,
	"refactoring":    event.ClassificationRefactor,
	"documentation":  event.ClassificationOther,
	"maintenance":    event.ClassificationOther,
	"chore":          event.ClassificationOther,
	"not_applicable": event.ClassificationOther,
}

// Classifier is the event classification stage.
type Classifier struct {
	events    *services.EventService
	libraries *services.LibraryService
	runner    *agent.Runner
	gh        *github.Client
	logger    *slog.Logger
}

// New creates a classifier stage.
func New(events *services.EventService, libraries *services.LibraryService, runner *agent.Runner, gh *github.Client) *Classifier {
	return &Classifier{
		events:    events,
		libraries: libraries,
		runner:    runner,
		gh:        gh,
		logger:    slog.Default().With("stage", "classifier"),
	}
}

// Run classifies a batch of unclassified events. Per-event failures are
// logged and left for the next poll.
func (c *Classifier) Run(ctx context.Context) (int, error) {
	batch, err := c.events.ListUnclassified(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list unclassified events: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	done := make([]bool, len(batch))

	for i, ev := range batch {
		i, ev := i, ev
		g.Go(func() error {
			if err := c.classify(ctx, ev); err != nil {
				c.logger.Error("Classification failed", "event_id", ev.ID, "error", err)
				return nil
			}
			done[i] = true
			return nil
		})
	}
	_ = g.Wait()

	classified := 0
	for _, ok := range done {
		if ok {
			classified++
		}
	}
	return classified, nil
}

func (c *Classifier) classify(ctx context.Context, ev *ent.Event) error {
	if label, confidence, ok := Prefilter(ev); ok {
		c.logger.Debug("Pre-filter classified event", "event_id", ev.ID, "label", label)
		return c.events.UpdateClassification(ctx, ev.ID, label, confidence)
	}

	label, confidence, err := c.classifyWithLLM(ctx, ev)
	if err != nil {
		return err
	}
	return c.events.UpdateClassification(ctx, ev.ID, label, confidence)
}

func (c *Classifier) classifyWithLLM(ctx context.Context, ev *ent.Event) (event.Classification, float64, error) {
	lib, err := c.libraries.Get(ctx, ev.LibraryID)
	if err != nil {
		return "", 0, fmt.Errorf("load library: %w", err)
	}
	slug, err := github.Slug(lib.RepoURL)
	if err != nil {
		return "", 0, err
	}

	spec := &agent.Spec{
		AgentType:      "classifier",
		Model:          model,
		Temperature:    temperature,
		MaxTurns:       maxTurns,
		SystemPrompt:   systemPrompt,
		UrgencyMessage: urgencyMessage,
		Tools:          agent.RepoTools(c.gh, slug),
		EarlyStop: func(content string) bool {
			_, _, err := ParseLabel(content)
			return err == nil
		},
		Validate: func(content string) error {
			_, _, err := ParseLabel(content)
			return err
		},
	}

	result, err := c.runner.Run(ctx, spec, ev.ID, userPrompt(ev))
	if err != nil {
		return "", 0, err
	}

	label, confidence, err := ParseLabel(result.Content)
	if err != nil {
		// Unparseable answer: label other with low confidence rather than
		// re-polling the event forever.
		c.logger.Warn("Unparseable classifier answer, falling back to other",
			"event_id", ev.ID, "error", err)
		return event.ClassificationOther, fallbackConfidence, nil
	}
	return label, confidence, nil
}

func userPrompt(ev *ent.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event type: %s\nRef: %s\nAuthor: %s\nTitle: %s\n", ev.Type, ev.Ref, ev.Author, ev.Title)
	if ev.Message != "" {
		fmt.Fprintf(&b, "Message:\n%s\n", ev.Message)
	}
	if ev.RelatedIssueRef != nil {
		fmt.Fprintf(&b, "Referenced issue: #%s\n", *ev.RelatedIssueRef)
	}
	if ev.RelatedPrRef != nil {
		fmt.Fprintf(&b, "Referenced pull request: #%s\n", *ev.RelatedPrRef)
	}
	return b.String()
}

// ParseLabel extracts and normalizes the classifier's JSON answer. Unknown
// labels become other.
func ParseLabel(content string) (event.Classification, float64, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return "", 0, err
	}
	var answer struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(raw, &answer); err != nil {
		return "", 0, fmt.Errorf("decode classifier answer: %w", err)
	}
	if answer.Label == "" {
		return "", 0, fmt.Errorf("classifier answer has no label")
	}

	label := normalizeLabel(answer.Label)
	confidence := answer.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return label, confidence, nil
}

func normalizeLabel(raw string) event.Classification {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch event.Classification(normalized) {
	case event.ClassificationSecurityBugfix,
		event.ClassificationNormalBugfix,
		event.ClassificationRefactor,
		event.ClassificationFeature,
		event.ClassificationOther:
		return event.Classification(normalized)
	}
	if mapped, ok := labelAliases[normalized]; ok {
		return mapped
	}
	return event.ClassificationOther
}

// extractJSONObject finds the first balanced top-level JSON object in text
// that may be wrapped in prose or a code fence.
func extractJSONObject(content string) (json.RawMessage, error) {
	start := strings.IndexByte(content, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in content")
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := content[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, fmt.Errorf("malformed JSON object in content")
				}
				return json.RawMessage(candidate), nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON object in content")
}
