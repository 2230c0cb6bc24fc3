// Package analyzer turns security-bugfix events into structured, published
// UpstreamVuln records via the LLM agent.
package analyzer

import (
	"context"
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
	batchLimit  = 10
	concurrency = 3

	model       = "gpt-4o"
	temperature = 0.2
	maxTurns    = 15

	maxContextTokens = 120000
)

const systemPrompt = `You analyze a security bugfix in a C/C++ library and produce structured vulnerability records.

Use the tools to read the fix diff, the surrounding code, and any linked issue or pull request. A single fix may address more than one distinct vulnerability; produce one record per vulnerability.

Answer with a JSON object for one vulnerability or a JSON array for several. Each record:
{
  "vuln_type": one of buffer_overflow, use_after_free, integer_overflow, null_deref, injection, auth_bypass, info_leak, dos, race_condition, memory_corruption, other,
  "severity": one of critical, high, medium, low,
  "affected_versions": version range expression, e.g. "<1.2.13",
  "summary": one-paragraph description of the defect,
  "reasoning": how the diff shows the defect and the fix,
  "affected_functions": names of the vulnerable functions,
  "upstream_poc": optional object with reproduction details
}`

const urgencyMessage = "You are nearly out of turns. Answer now with the JSON record(s), using what you already know."

const compressionCriteria = "Keep every finding about the vulnerable functions, the nature of the defect, affected versions, and severity evidence. Drop raw file listings already analyzed."

// Analyzer is the vulnerability analysis stage.
type Analyzer struct {
	events    *services.EventService
	libraries *services.LibraryService
	vulns     *services.VulnService
	runner    *agent.Runner
	gh        *github.Client
	logger    *slog.Logger
}

// New creates an analyzer stage.
func New(events *services.EventService, libraries *services.LibraryService, vulns *services.VulnService, runner *agent.Runner, gh *github.Client) *Analyzer {
	return &Analyzer{
		events:    events,
		libraries: libraries,
		vulns:     vulns,
		runner:    runner,
		gh:        gh,
		logger:    slog.Default().With("stage", "analyzer"),
	}
}

// Run analyzes a batch of security-bugfix events that have no UpstreamVuln
// yet. The placeholder row inserted before each LLM call keeps a failed
// event out of the next poll.
func (a *Analyzer) Run(ctx context.Context) (int, error) {
	batch, err := a.events.ListBugfixWithoutVuln(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list bugfix events: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	done := make([]bool, len(batch))

	for i, ev := range batch {
		i, ev := i, ev
		g.Go(func() error {
			if err := a.analyze(ctx, ev); err != nil {
				a.logger.Error("Analysis failed", "event_id", ev.ID, "error", err)
				return nil
			}
			done[i] = true
			return nil
		})
	}
	_ = g.Wait()

	analyzed := 0
	for _, ok := range done {
		if ok {
			analyzed++
		}
	}
	return analyzed, nil
}

func (a *Analyzer) analyze(ctx context.Context, ev *ent.Event) error {
	placeholder, err := a.vulns.CreatePlaceholder(ctx, ev.ID, ev.LibraryID, commitSHA(ev))
	if err != nil {
		return fmt.Errorf("create placeholder: %w", err)
	}

	analyses, err := a.runAgent(ctx, ev)
	if err != nil {
		if serr := a.vulns.SetError(ctx, placeholder.ID, err.Error()); serr != nil {
			a.logger.Error("Failed to record analysis error", "vuln_id", placeholder.ID, "error", serr)
		}
		return err
	}

	if _, err := a.vulns.Publish(ctx, placeholder.ID, analyses[0]); err != nil {
		return fmt.Errorf("publish vuln: %w", err)
	}
	for _, extra := range analyses[1:] {
		if _, err := a.vulns.CreatePublished(ctx, ev.ID, ev.LibraryID, commitSHA(ev), extra); err != nil {
			return fmt.Errorf("publish additional vuln: %w", err)
		}
	}
	a.logger.Info("Event analyzed", "event_id", ev.ID, "vulns", len(analyses))
	return nil
}

func (a *Analyzer) runAgent(ctx context.Context, ev *ent.Event) ([]services.VulnAnalysis, error) {
	lib, err := a.libraries.Get(ctx, ev.LibraryID)
	if err != nil {
		return nil, fmt.Errorf("load library: %w", err)
	}
	slug, err := github.Slug(lib.RepoURL)
	if err != nil {
		return nil, err
	}

	spec := &agent.Spec{
		AgentType:      "analyzer",
		Model:          model,
		Temperature:    temperature,
		MaxTurns:       maxTurns,
		SystemPrompt:   systemPrompt,
		UrgencyMessage: urgencyMessage,
		Tools:          agent.RepoTools(a.gh, slug),
		EarlyStop: func(content string) bool {
			_, err := ParseAnalysis(content)
			return err == nil
		},
		Validate: func(content string) error {
			_, err := ParseAnalysis(content)
			return err
		},
		CompressionEnabled:  true,
		MaxContextTokens:    maxContextTokens,
		CompressionCriteria: compressionCriteria,
	}

	result, err := a.runner.Run(ctx, spec, ev.ID, analysisPrompt(lib, ev))
	if err != nil {
		return nil, err
	}

	analyses, err := ParseAnalysis(result.Content)
	if err != nil {
		return nil, fmt.Errorf("unparseable analysis answer: %w", err)
	}
	return analyses, nil
}

func analysisPrompt(lib *ent.Library, ev *ent.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Library: %s (%s)\nEvent type: %s\nRef: %s\nTitle: %s\n",
		lib.Name, lib.RepoURL, ev.Type, ev.Ref, ev.Title)
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

// commitSHA picks the most specific commit for the fix: the event's own ref
// for commit events, the related commit (merge SHA) otherwise.
func commitSHA(ev *ent.Event) string {
	if ev.Type == event.TypeCommit {
		return ev.Ref
	}
	if ev.RelatedCommitSha != nil {
		return *ev.RelatedCommitSha
	}
	return ""
}
