// Package collector turns upstream repository activity into append-only
// Event rows, one watermarked collection run per library.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/pkg/config"
	"github.com/vulnsentinel/vulnsentinel/pkg/github"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// fetcher is the slice of the GitHub client the collector needs; swapped for
// a fake in tests.
type fetcher interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	Paginate(ctx context.Context, path string, params url.Values, maxPages int, fn func(json.RawMessage) (bool, error)) error
}

// Collector is the event collection stage.
type Collector struct {
	libraries *services.LibraryService
	events    *services.EventService
	gh        fetcher
	cfg       config.CollectorConfig
	logger    *slog.Logger
}

// New creates a collector stage.
func New(libraries *services.LibraryService, events *services.EventService, gh fetcher, cfg config.CollectorConfig) *Collector {
	return &Collector{
		libraries: libraries,
		events:    events,
		gh:        gh,
		cfg:       cfg,
		logger:    slog.Default().With("stage", "collector"),
	}
}

// Run collects every tracked library, bounded by the configured concurrency.
// Per-library failures are recorded on the library row and absorbed.
func (c *Collector) Run(ctx context.Context) (int, error) {
	libs, err := c.libraries.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list libraries: %w", err)
	}

	sem := semaphore.NewWeighted(int64(c.cfg.Concurrency))
	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0

	for _, lib := range libs {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(lib *ent.Library) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := c.collectLibrary(ctx, lib)
			if err != nil {
				c.logger.Error("Library collection failed", "library", lib.Name, "error", err)
				return
			}
			mu.Lock()
			total += n
			mu.Unlock()
		}(lib)
	}
	wg.Wait()
	return total, nil
}

// collectLibrary runs the five sources for one library in parallel, writes
// the resulting events, and applies the watermark rules.
func (c *Collector) collectLibrary(ctx context.Context, lib *ent.Library) (int, error) {
	slug, err := github.Slug(lib.RepoURL)
	if err != nil {
		return 0, err
	}

	since, maxPages := c.window(lib)
	log := c.logger.With("library", lib.Name)

	var (
		commits, prs, tags, issues, ghsa sourceResult
		wg                               sync.WaitGroup
	)
	run := func(dst *sourceResult, fn func() sourceResult) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = fn()
		}()
	}
	run(&commits, func() sourceResult { return c.collectCommits(ctx, slug, lib, since, maxPages) })
	run(&prs, func() sourceResult { return c.collectMergedPRs(ctx, slug, since, maxPages) })
	run(&tags, func() sourceResult { return c.collectTags(ctx, slug, lib, maxPages) })
	run(&issues, func() sourceResult { return c.collectBugIssues(ctx, slug, since, maxPages) })
	run(&ghsa, func() sourceResult { return c.probeAdvisories(ctx, slug) })
	wg.Wait()

	var inputs []services.EventInput
	res := services.CollectResult{
		SourceDetail:  map[string]string{},
		LastCommitSHA: commits.newest,
		LastTagName:   tags.newest,
	}
	for name, sr := range map[string]sourceResult{
		"commits": commits, "prs": prs, "tags": tags, "issues": issues, "ghsa": ghsa,
	} {
		if sr.err != nil {
			res.SourceDetail[name] = "error: " + sr.err.Error()
			res.SourceErrors = append(res.SourceErrors, name+": "+sr.err.Error())
			continue
		}
		res.SourceDetail[name] = fmt.Sprintf("ok (%d)", len(sr.events))
		if len(sr.events) > 0 {
			res.SawData = true
		}
		inputs = append(inputs, sr.events...)
	}

	for i := range inputs {
		inputs[i].RelatedIssueRef = extractIssueRef(inputs[i].Title, inputs[i].Message)
		inputs[i].RelatedPRRef = extractPRRef(inputs[i].Title)
	}

	created := 0
	if len(inputs) > 0 {
		created, err = c.events.BatchCreate(ctx, lib.ID, inputs)
		if err != nil {
			return 0, fmt.Errorf("store events for %s: %w", lib.Name, err)
		}
	}

	if err := c.libraries.ApplyCollectResult(ctx, lib.ID, res); err != nil {
		return created, err
	}
	log.Info("Library collected", "events", created, "errors", len(res.SourceErrors))
	return created, nil
}

// window derives the since-window and page cap. A library that has never
// been collected gets a 30-day window and a reduced cap so onboarding an
// old repository cannot trigger an unbounded catch-up.
func (c *Collector) window(lib *ent.Library) (time.Time, int) {
	if lib.LastScannedAt == nil {
		return time.Now().Add(-c.cfg.FirstCollectWindow), c.cfg.FirstCollectMaxPages
	}
	return *lib.LastScannedAt, c.cfg.MaxPages
}
