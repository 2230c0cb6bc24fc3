package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// sourceResult is the outcome of one read-only source for one library.
type sourceResult struct {
	events []services.EventInput
	newest string // new watermark value (commit SHA or tag name)
	err    error
}

type commitItem struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Parents []struct {
		SHA string `json:"sha"`
	} `json:"parents"`
}

// collectCommits walks /commits newest-first, stopping at the previously
// seen SHA. Merge commits (two or more parents) are excluded.
func (c *Collector) collectCommits(ctx context.Context, slug string, lib *ent.Library, since time.Time, maxPages int) sourceResult {
	params := url.Values{}
	params.Set("sha", lib.DefaultBranch)
	params.Set("since", since.UTC().Format(time.RFC3339))

	var res sourceResult
	err := c.gh.Paginate(ctx, "/repos/"+slug+"/commits", params, maxPages, func(raw json.RawMessage) (bool, error) {
		var item commitItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return false, fmt.Errorf("decode commit: %w", err)
		}
		if lib.LastCommitSha != nil && item.SHA == *lib.LastCommitSha {
			return false, nil
		}
		if res.newest == "" {
			res.newest = item.SHA
		}
		if len(item.Parents) >= 2 {
			return true, nil
		}

		title, message, _ := strings.Cut(item.Commit.Message, "\n")
		author := item.Commit.Author.Name
		if item.Author != nil && item.Author.Login != "" {
			author = item.Author.Login
		}
		occurred := item.Commit.Author.Date
		res.events = append(res.events, services.EventInput{
			Type:       event.TypeCommit,
			Ref:        item.SHA,
			Title:      strings.TrimSpace(title),
			Message:    strings.TrimSpace(message),
			Author:     author,
			OccurredAt: &occurred,
		})
		return true, nil
	})
	res.err = err
	return res
}

type pullItem struct {
	Number   int        `json:"number"`
	Title    string     `json:"title"`
	Body     string     `json:"body"`
	MergedAt *time.Time `json:"merged_at"`
	MergeSHA string     `json:"merge_commit_sha"`
	User     struct {
		Login string `json:"login"`
	} `json:"user"`
}

// collectMergedPRs walks closed PRs sorted by update time. The pulls
// endpoint has no since parameter and updated_at is independent of
// merged_at, so out-of-window rows are skipped, never treated as a stop
// condition.
func (c *Collector) collectMergedPRs(ctx context.Context, slug string, since time.Time, maxPages int) sourceResult {
	params := url.Values{}
	params.Set("state", "closed")
	params.Set("sort", "updated")
	params.Set("direction", "desc")

	var res sourceResult
	err := c.gh.Paginate(ctx, "/repos/"+slug+"/pulls", params, maxPages, func(raw json.RawMessage) (bool, error) {
		var item pullItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return false, fmt.Errorf("decode pull: %w", err)
		}
		if item.MergedAt == nil || item.MergedAt.Before(since) {
			return true, nil
		}
		res.events = append(res.events, services.EventInput{
			Type:             event.TypePrMerge,
			Ref:              strconv.Itoa(item.Number),
			Title:            item.Title,
			Message:          item.Body,
			Author:           item.User.Login,
			RelatedCommitSHA: item.MergeSHA,
			OccurredAt:       item.MergedAt,
		})
		return true, nil
	})
	res.err = err
	return res
}

type tagItem struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// collectTags walks /tags newest-first, stopping at the previously seen tag.
func (c *Collector) collectTags(ctx context.Context, slug string, lib *ent.Library, maxPages int) sourceResult {
	var res sourceResult
	err := c.gh.Paginate(ctx, "/repos/"+slug+"/tags", nil, maxPages, func(raw json.RawMessage) (bool, error) {
		var item tagItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return false, fmt.Errorf("decode tag: %w", err)
		}
		if lib.LastTagName != nil && item.Name == *lib.LastTagName {
			return false, nil
		}
		if res.newest == "" {
			res.newest = item.Name
		}
		res.events = append(res.events, services.EventInput{
			Type:             event.TypeTag,
			Ref:              item.Name,
			Title:            item.Name,
			RelatedCommitSHA: item.Commit.SHA,
		})
		return true, nil
	})
	res.err = err
	return res
}

type issueItem struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	CreatedAt   time.Time       `json:"created_at"`
	PullRequest json.RawMessage `json:"pull_request"`
}

// collectBugIssues walks bug-labeled issues updated since the watermark.
// The issues endpoint also returns pull requests; those carry a
// pull_request field and are excluded.
func (c *Collector) collectBugIssues(ctx context.Context, slug string, since time.Time, maxPages int) sourceResult {
	params := url.Values{}
	params.Set("labels", "bug")
	params.Set("state", "all")
	params.Set("sort", "updated")
	params.Set("since", since.UTC().Format(time.RFC3339))

	var res sourceResult
	err := c.gh.Paginate(ctx, "/repos/"+slug+"/issues", params, maxPages, func(raw json.RawMessage) (bool, error) {
		var item issueItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return false, fmt.Errorf("decode issue: %w", err)
		}
		if len(item.PullRequest) > 0 {
			return true, nil
		}
		occurred := item.CreatedAt
		res.events = append(res.events, services.EventInput{
			Type:       event.TypeBugIssue,
			Ref:        strconv.Itoa(item.Number),
			Title:      item.Title,
			Message:    item.Body,
			Author:     item.User.Login,
			OccurredAt: &occurred,
		})
		return true, nil
	})
	res.err = err
	return res
}

// probeAdvisories checks that the security-advisories endpoint answers.
// Advisories are not ingested as events; this is a health probe only.
func (c *Collector) probeAdvisories(ctx context.Context, slug string) sourceResult {
	params := url.Values{}
	params.Set("per_page", "1")
	_, err := c.gh.Get(ctx, "/repos/"+slug+"/security-advisories", params)
	return sourceResult{err: err}
}
