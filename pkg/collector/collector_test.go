package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/pkg/config"
)

// fakeFetcher serves canned item lists per path prefix.
type fakeFetcher struct {
	items map[string][]string // path -> JSON items
	errs  map[string]error
	gets  map[string]string // path -> JSON body
}

func (f *fakeFetcher) Get(_ context.Context, path string, _ url.Values) (json.RawMessage, error) {
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	if body, ok := f.gets[path]; ok {
		return json.RawMessage(body), nil
	}
	return json.RawMessage(`[]`), nil
}

func (f *fakeFetcher) Paginate(_ context.Context, path string, _ url.Values, maxPages int, fn func(json.RawMessage) (bool, error)) error {
	if err := f.errs[path]; err != nil {
		return err
	}
	for _, item := range f.items[path] {
		cont, err := fn(json.RawMessage(item))
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

func testCollector(f *fakeFetcher) *Collector {
	return New(nil, nil, f, config.CollectorConfig{
		MaxPages:             10,
		FirstCollectMaxPages: 3,
		FirstCollectWindow:   30 * 24 * time.Hour,
		Concurrency:          3,
	})
}

func strp(s string) *string { return &s }

func commitJSON(sha, message, login string, parents int) string {
	p := "["
	for i := 0; i < parents; i++ {
		if i > 0 {
			p += ","
		}
		p += fmt.Sprintf(`{"sha":"p%d"}`, i)
	}
	p += "]"
	return fmt.Sprintf(`{"sha":%q,"commit":{"message":%q,"author":{"name":"Jo","date":"2026-08-01T10:00:00Z"}},"author":{"login":%q},"parents":%s}`,
		sha, message, login, p)
}

func TestCollectCommitsStopsAtWatermark(t *testing.T) {
	f := &fakeFetcher{items: map[string][]string{
		"/repos/o/r/commits": {
			commitJSON("c3", "third", "alice", 1),
			commitJSON("c2", "second", "alice", 1),
			commitJSON("c1", "first", "alice", 1),
		},
	}}
	c := testCollector(f)
	lib := &ent.Library{DefaultBranch: "main", LastCommitSha: strp("c1")}

	res := c.collectCommits(context.Background(), "o/r", lib, time.Now().Add(-time.Hour), 10)
	require.NoError(t, res.err)
	require.Len(t, res.events, 2)
	assert.Equal(t, "c3", res.events[0].Ref)
	assert.Equal(t, "c2", res.events[1].Ref)
	assert.Equal(t, "c3", res.newest)
}

func TestCollectCommitsExcludesMergeCommits(t *testing.T) {
	f := &fakeFetcher{items: map[string][]string{
		"/repos/o/r/commits": {
			commitJSON("m1", "Merge branch 'dev'", "alice", 2),
			commitJSON("c1", "fix: thing\n\nbody text", "bob", 1),
		},
	}}
	c := testCollector(f)
	lib := &ent.Library{DefaultBranch: "main"}

	res := c.collectCommits(context.Background(), "o/r", lib, time.Now().Add(-time.Hour), 10)
	require.NoError(t, res.err)
	require.Len(t, res.events, 1)
	assert.Equal(t, "c1", res.events[0].Ref)
	assert.Equal(t, "fix: thing", res.events[0].Title)
	assert.Equal(t, "body text", res.events[0].Message)
	// The merge commit still advances the watermark.
	assert.Equal(t, "m1", res.newest)
}

func TestCollectMergedPRsSkipsButDoesNotBreak(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	pr := func(n int, mergedAt string) string {
		m := "null"
		if mergedAt != "" {
			m = fmt.Sprintf("%q", mergedAt)
		}
		return fmt.Sprintf(`{"number":%d,"title":"pr %d","merged_at":%s,"merge_commit_sha":"s%d","user":{"login":"u"}}`, n, n, m, n)
	}
	f := &fakeFetcher{items: map[string][]string{
		"/repos/o/r/pulls": {
			pr(5, "2026-07-01T00:00:00Z"), // merged before window but updated recently
			pr(4, ""),                     // closed, never merged
			pr(3, "2026-08-10T00:00:00Z"), // in window, must not be missed
		},
	}}
	c := testCollector(f)

	res := c.collectMergedPRs(context.Background(), "o/r", since, 10)
	require.NoError(t, res.err)
	require.Len(t, res.events, 1)
	assert.Equal(t, "3", res.events[0].Ref)
	assert.Equal(t, event.TypePrMerge, res.events[0].Type)
	assert.Equal(t, "s3", res.events[0].RelatedCommitSHA)
}

func TestCollectTagsStopsAtWatermark(t *testing.T) {
	f := &fakeFetcher{items: map[string][]string{
		"/repos/o/r/tags": {
			`{"name":"v1.3.0","commit":{"sha":"t3"}}`,
			`{"name":"v1.2.0","commit":{"sha":"t2"}}`,
			`{"name":"v1.1.0","commit":{"sha":"t1"}}`,
		},
	}}
	c := testCollector(f)
	lib := &ent.Library{LastTagName: strp("v1.2.0")}

	res := c.collectTags(context.Background(), "o/r", lib, 10)
	require.NoError(t, res.err)
	require.Len(t, res.events, 1)
	assert.Equal(t, "v1.3.0", res.events[0].Ref)
	assert.Equal(t, "v1.3.0", res.newest)
}

func TestCollectBugIssuesExcludesPullRequests(t *testing.T) {
	f := &fakeFetcher{items: map[string][]string{
		"/repos/o/r/issues": {
			`{"number":10,"title":"crash on empty input","body":"segv","user":{"login":"u"},"created_at":"2026-08-12T00:00:00Z"}`,
			`{"number":11,"title":"a PR","body":"","user":{"login":"u"},"created_at":"2026-08-12T00:00:00Z","pull_request":{"url":"x"}}`,
		},
	}}
	c := testCollector(f)

	res := c.collectBugIssues(context.Background(), "o/r", time.Now().Add(-time.Hour), 10)
	require.NoError(t, res.err)
	require.Len(t, res.events, 1)
	assert.Equal(t, "10", res.events[0].Ref)
	assert.Equal(t, event.TypeBugIssue, res.events[0].Type)
}

func TestWindowFirstCollect(t *testing.T) {
	c := testCollector(&fakeFetcher{})

	since, pages := c.window(&ent.Library{}) // never collected
	assert.Equal(t, 3, pages)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)

	seen := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	since, pages = c.window(&ent.Library{LastScannedAt: &seen})
	assert.Equal(t, 10, pages)
	assert.Equal(t, seen, since)
}

func TestExtractIssueRef(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		message string
		want    string
	}{
		{"fixes in title", "fix overflow, fixes #123", "", "123"},
		{"fixed in message", "fix overflow", "This was broken.\nFixed #45", "45"},
		{"closes variant", "cleanup", "Closes: #7", "7"},
		{"resolves variant", "cleanup", "resolves #99", "99"},
		{"no reference", "just a change", "nothing here", ""},
		{"bare number not matched", "see #12 for context", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractIssueRef(tt.title, tt.message))
		})
	}
}

func TestExtractPRRef(t *testing.T) {
	assert.Equal(t, "456", extractPRRef("fix: bounds check (#456)"))
	assert.Equal(t, "", extractPRRef("fix: bounds check #456"))
	// Message text never populates the PR reference.
	assert.Equal(t, "", extractPRRef(""))
}
