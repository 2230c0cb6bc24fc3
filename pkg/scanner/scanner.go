// Package scanner keeps ProjectDependency rows in sync with the dependency
// manifests of each tracked project.
package scanner

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/pkg/github"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// manifestFetcher is the slice of the GitHub client the scanner needs.
type manifestFetcher interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}

// Scanner polls projects whose dependency scan is stale and reconciles their
// scanner-sourced ProjectDependency rows. Manual rows are never touched.
type Scanner struct {
	projects  *services.ProjectService
	libraries *services.LibraryService
	gh        manifestFetcher
	cutoff    time.Duration
	logger    *slog.Logger
}

// New creates a dependency scanner stage.
func New(projects *services.ProjectService, libraries *services.LibraryService, gh manifestFetcher, cutoff time.Duration) *Scanner {
	return &Scanner{
		projects:  projects,
		libraries: libraries,
		gh:        gh,
		cutoff:    cutoff,
		logger:    slog.Default().With("stage", "scanner"),
	}
}

// Run scans every due project. Per-project failures are recorded on the
// project row and do not block peers.
func (s *Scanner) Run(ctx context.Context) (int, error) {
	due, err := s.projects.ListScanDue(ctx, s.cutoff)
	if err != nil {
		return 0, fmt.Errorf("list scan-due projects: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	byName, err := s.libraryIndex(ctx)
	if err != nil {
		return 0, err
	}

	scanned := 0
	for _, p := range due {
		if err := s.scanProject(ctx, p, byName); err != nil {
			s.logger.Error("Project scan failed", "project", p.Name, "error", err)
			if serr := s.projects.SetScanResult(ctx, p.ID, "failed", err.Error()); serr != nil {
				s.logger.Error("Failed to record scan failure", "project", p.Name, "error", serr)
			}
			continue
		}
		scanned++
	}
	return scanned, nil
}

// scanProject fetches and parses the project's manifests, maps the entries to
// known libraries, and replaces the scanner-sourced dependency rows.
func (s *Scanner) scanProject(ctx context.Context, p *ent.Project, byName map[string]*ent.Library) error {
	slug, err := github.Slug(p.RepoURL)
	if err != nil {
		return err
	}

	var parsed []Dependency
	fetched := 0
	for _, manifest := range []struct {
		path  string
		parse func(string) []Dependency
	}{
		{SourceConanfile, ParseConanfile},
		{SourceCMake, ParseCMakeLists},
	} {
		content, err := s.fetchFile(ctx, slug, manifest.path, p.DefaultBranch)
		if errors.Is(err, github.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("fetch %s: %w", manifest.path, err)
		}
		fetched++
		parsed = append(parsed, manifest.parse(content)...)
	}
	if fetched == 0 {
		return fmt.Errorf("no dependency manifest found in %s", slug)
	}

	var deps []services.DependencyInput
	var warnings []string
	for _, d := range parsed {
		lib, ok := byName[strings.ToLower(d.Name)]
		if !ok {
			// Only tracked libraries materialize as dependency rows.
			continue
		}
		if err := ValidateConstraint(d.Constraint); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		deps = append(deps, services.DependencyInput{
			LibraryID:       lib.ID,
			ConstraintExpr:  d.Constraint,
			ResolvedVersion: d.Resolved,
			Source:          d.Source,
		})
	}

	if err := s.projects.ReplaceScannedDependencies(ctx, p.ID, deps); err != nil {
		return err
	}

	status := "completed"
	if err := s.projects.SetScanResult(ctx, p.ID, status, strings.Join(warnings, "; ")); err != nil {
		return err
	}
	s.logger.Info("Project scanned", "project", p.Name, "dependencies", len(deps), "warnings", len(warnings))
	return nil
}

func (s *Scanner) fetchFile(ctx context.Context, slug, path, ref string) (string, error) {
	params := url.Values{}
	if ref != "" {
		params.Set("ref", ref)
	}
	body, err := s.gh.Get(ctx, "/repos/"+slug+"/contents/"+path, params)
	if err != nil {
		return "", err
	}
	var payload struct {
		Encoding string `json:"encoding"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode contents of %s: %w", path, err)
	}
	if payload.Encoding != "base64" {
		return payload.Content, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode %s content: %w", path, err)
	}
	return string(raw), nil
}

// libraryIndex maps lowercase library name to row for manifest resolution.
func (s *Scanner) libraryIndex(ctx context.Context) (map[string]*ent.Library, error) {
	libs, err := s.libraries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	byName := make(map[string]*ent.Library, len(libs))
	for _, lib := range libs {
		byName[strings.ToLower(lib.Name)] = lib
	}
	return byName, nil
}
