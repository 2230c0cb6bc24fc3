// Package reachability decides whether a client project can actually reach
// the vulnerable functions of a published vulnerability, using call-graph
// snapshots from the external static-analysis store.
package reachability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vulnsentinel/vulnsentinel/ent"
)

const batchLimit = 10

// clientEntryFunction anchors the shortest-path fallback.
const clientEntryFunction = "main"

// Strategy labels stored in reachable_path.strategy.
const (
	StrategyFuzzerReaches = "fuzzer_reaches"
	StrategyShortestPath  = "shortest_path"
	StrategyExhausted     = "exhausted"
)

// Service slices, narrowed for fakes in tests.

type workQueue interface {
	ListForReachability(ctx context.Context, limit int) ([]*ent.ClientVuln, error)
	MarkPathSearching(ctx context.Context, id string) error
	Finalize(ctx context.Context, id string, affected bool, reachablePath map[string]any, errMsg string) error
}

type vulnGetter interface {
	Get(ctx context.Context, id string) (*ent.UpstreamVuln, error)
}

type libraryGetter interface {
	Get(ctx context.Context, id string) (*ent.Library, error)
}

type projectGetter interface {
	Get(ctx context.Context, id string) (*ent.Project, error)
}

type repoSlugger func(repoURL string) (string, error)

// Engine is the reachability stage.
type Engine struct {
	queue     workQueue
	vulns     vulnGetter
	libraries libraryGetter
	projects  projectGetter
	store     Store
	gh        diffFetcher
	slug      repoSlugger
	logger    *slog.Logger
}

// New creates a reachability engine.
func New(queue workQueue, vulns vulnGetter, libraries libraryGetter, projects projectGetter, store Store, gh diffFetcher, slug repoSlugger) *Engine {
	return &Engine{
		queue:     queue,
		vulns:     vulns,
		libraries: libraries,
		projects:  projects,
		store:     store,
		gh:        gh,
		slug:      slug,
		logger:    slog.Default().With("stage", "reachability"),
	}
}

// Run processes pending client vulns. Infrastructure failures leave the item
// in path_searching for the next poll; definitive negative answers (snapshot
// build failure, no targets, nothing reachable) finalize not_affect so the
// item never re-queues forever.
func (e *Engine) Run(ctx context.Context) (int, error) {
	batch, err := e.queue.ListForReachability(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list client vulns for reachability: %w", err)
	}

	processed := 0
	for _, cv := range batch {
		if err := e.process(ctx, cv); err != nil {
			e.logger.Error("Reachability check failed", "client_vuln_id", cv.ID, "error", err)
			continue
		}
		processed++
	}
	return processed, nil
}

func (e *Engine) process(ctx context.Context, cv *ent.ClientVuln) error {
	if err := e.queue.MarkPathSearching(ctx, cv.ID); err != nil {
		return err
	}

	vuln, err := e.vulns.Get(ctx, cv.UpstreamVulnID)
	if err != nil {
		return fmt.Errorf("load upstream vuln: %w", err)
	}
	lib, err := e.libraries.Get(ctx, vuln.LibraryID)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}
	project, err := e.projects.Get(ctx, cv.ProjectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	targets, err := e.targetFunctions(ctx, vuln, lib)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return e.queue.Finalize(ctx, cv.ID, false, map[string]any{
			"found":              false,
			"strategy":           StrategyExhausted,
			"searched_functions": []string{},
		}, "no affected functions identified")
	}

	clientSnap, err := e.ensureSnapshot(ctx, project.RepoURL, projectVersion(project))
	var bf *buildFailure
	if errors.As(err, &bf) {
		return e.finalizeBuildFailure(ctx, cv.ID, targets, bf)
	}
	if err != nil {
		return err
	}
	libSnap, err := e.ensureSnapshot(ctx, lib.RepoURL, libraryVersion(cv, vuln))
	if errors.As(err, &bf) {
		return e.finalizeBuildFailure(ctx, cv.ID, targets, bf)
	}
	if err != nil {
		return err
	}

	result := map[string]any{
		"searched_functions": targets,
		"client_snapshot_id": clientSnap,
		"library_snapshot_id": libSnap,
	}

	found, err := e.searchFuzzers(ctx, clientSnap, targets, result)
	if err != nil {
		return err
	}
	if !found {
		found, err = e.searchShortestPath(ctx, clientSnap, targets, result)
		if err != nil {
			return err
		}
	}
	if !found {
		result["found"] = false
		result["strategy"] = StrategyExhausted
	}

	e.logger.Info("Reachability decided", "client_vuln_id", cv.ID,
		"found", found, "strategy", result["strategy"])
	return e.queue.Finalize(ctx, cv.ID, found, result, "")
}

// searchFuzzers tries every fuzz harness of the client snapshot and stops at
// the first one whose reachable set contains a target function.
func (e *Engine) searchFuzzers(ctx context.Context, snapshotID string, targets []string, result map[string]any) (bool, error) {
	fuzzers, err := e.store.ListFuzzerInfo(ctx, snapshotID)
	if err != nil {
		return false, fmt.Errorf("list fuzzers: %w", err)
	}
	result["searched_fuzzers"] = len(fuzzers)

	targetSet := make(map[string]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	for _, fz := range fuzzers {
		reachable, err := e.store.ReachableFunctionsByFuzzer(ctx, snapshotID, fz.Name, 0)
		if err != nil {
			return false, fmt.Errorf("reachable set of fuzzer %s: %w", fz.Name, err)
		}
		for _, fn := range reachable {
			if targetSet[fn.Name] {
				result["found"] = true
				result["strategy"] = StrategyFuzzerReaches
				result["fuzzer"] = fz.Name
				result["target"] = fn.Name
				result["depth"] = fn.Depth
				return true, nil
			}
		}
	}
	return false, nil
}

// searchShortestPath queries a path from the client entry point to each
// target, taking the first hit.
func (e *Engine) searchShortestPath(ctx context.Context, snapshotID string, targets []string, result map[string]any) (bool, error) {
	for _, target := range targets {
		pr, err := e.store.ShortestPath(ctx, snapshotID, clientEntryFunction, target)
		if err != nil {
			return false, fmt.Errorf("shortest path to %s: %w", target, err)
		}
		if pr == nil || pr.PathsFound == 0 {
			continue
		}
		result["found"] = true
		result["strategy"] = StrategyShortestPath
		result["target"] = target
		result["depth"] = pr.Length
		if len(pr.Paths) > 0 {
			result["call_chain"] = pr.Paths[0].Nodes
		}
		return true, nil
	}
	return false, nil
}

// targetFunctions returns the vuln's affected functions, falling back to
// parsing the fix commit's diff hunk headers when the analyzer listed none.
func (e *Engine) targetFunctions(ctx context.Context, vuln *ent.UpstreamVuln, lib *ent.Library) ([]string, error) {
	if len(vuln.AffectedFunctions) > 0 {
		return vuln.AffectedFunctions, nil
	}
	if vuln.CommitSha == "" {
		return nil, nil
	}
	slug, err := e.slug(lib.RepoURL)
	if err != nil {
		return nil, err
	}
	names, err := functionsFromCommitDiff(ctx, e.gh, slug, vuln.CommitSha)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// buildFailure marks a definitive snapshot build failure. Find errors are
// plain errors: the store being unreachable is transient, and the item must
// stay in the queue instead of finalizing not_affect.
type buildFailure struct{ err error }

func (b *buildFailure) Error() string { return b.err.Error() }
func (b *buildFailure) Unwrap() error { return b.err }

// ensureSnapshot finds or builds the snapshot for one (repo, version).
func (e *Engine) ensureSnapshot(ctx context.Context, repoURL, version string) (string, error) {
	id, err := e.store.FindSnapshot(ctx, repoURL, version)
	if err != nil {
		return "", fmt.Errorf("find snapshot for %s@%s: %w", repoURL, version, err)
	}
	if id != "" {
		return id, nil
	}
	id, err = e.store.BuildSnapshot(ctx, repoURL, version)
	if err != nil {
		return "", &buildFailure{fmt.Errorf("build snapshot for %s@%s: %w", repoURL, version, err)}
	}
	return id, nil
}

// finalizeBuildFailure records a snapshot failure as a definitive not_affect
// instead of re-queuing forever.
func (e *Engine) finalizeBuildFailure(ctx context.Context, id string, targets []string, buildErr error) error {
	return e.queue.Finalize(ctx, id, false, map[string]any{
		"found":              false,
		"strategy":           StrategyExhausted,
		"searched_functions": targets,
	}, buildErr.Error())
}

func projectVersion(p *ent.Project) string {
	if p.CurrentVersion != nil && *p.CurrentVersion != "" {
		return *p.CurrentVersion
	}
	return p.DefaultBranch
}

func libraryVersion(cv *ent.ClientVuln, vuln *ent.UpstreamVuln) string {
	if cv.ResolvedVersion != nil && *cv.ResolvedVersion != "" {
		return *cv.ResolvedVersion
	}
	return vuln.CommitSha
}
