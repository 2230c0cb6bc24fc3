package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
)

// ProjectService manages tracked client projects and their dependencies.
type ProjectService struct {
	client *ent.Client
	signer *cursor.Signer
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client, signer *cursor.Signer) *ProjectService {
	return &ProjectService{client: client, signer: signer}
}

// CreateProjectInput is the onboarding payload for a project.
type CreateProjectInput struct {
	Name          string
	Organization  string
	RepoURL       string
	DefaultBranch string
	ContactEmail  string
	AutoSyncDeps  *bool
}

// Create onboards a new project. Repo URL is unique.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*ent.Project, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.RepoURL == "" {
		return nil, NewValidationError("repo_url", "required")
	}

	builder := s.client.Project.Create().
		SetName(in.Name).
		SetRepoURL(in.RepoURL)
	if in.Organization != "" {
		builder.SetOrganization(in.Organization)
	}
	if in.DefaultBranch != "" {
		builder.SetDefaultBranch(in.DefaultBranch)
	}
	if in.ContactEmail != "" {
		builder.SetContactEmail(in.ContactEmail)
	}
	if in.AutoSyncDeps != nil {
		builder.SetAutoSyncDeps(*in.AutoSyncDeps)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// Get loads one project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// List returns one page of projects ordered by (created_at DESC, id DESC).
func (s *ProjectService) List(ctx context.Context, pageToken string, limit int) ([]*ent.Project, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := s.client.Project.Query()
	if pageToken != "" {
		createdAt, id, err := s.signer.Decode(pageToken)
		if err != nil {
			return nil, "", err
		}
		q = q.Where(
			project.Or(
				project.CreatedAtLT(createdAt),
				project.And(project.CreatedAtEQ(createdAt), project.IDLT(id)),
			),
		)
	}
	rows, err := q.
		Order(ent.Desc(project.FieldCreatedAt), ent.Desc(project.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list projects: %w", err)
	}

	var next string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = s.signer.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}

// ListScanDue returns projects whose dependency manifests should be
// re-scanned: auto-sync enabled, no pinned ref, last scan older than cutoff.
func (s *ProjectService) ListScanDue(ctx context.Context, cutoff time.Duration) ([]*ent.Project, error) {
	deadline := time.Now().Add(-cutoff)
	rows, err := s.client.Project.Query().
		Where(
			project.AutoSyncDeps(true),
			project.PinnedRefIsNil(),
			project.Or(
				project.LastScannedAtIsNil(),
				project.LastScannedAtLT(deadline),
			),
		).
		Order(ent.Asc(project.FieldLastScannedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan-due projects: %w", err)
	}
	return rows, nil
}

// DependencyInput is one scanner-discovered or manually-entered dependency.
type DependencyInput struct {
	LibraryID       string
	ConstraintExpr  string
	ResolvedVersion string
	Source          string
}

// AddDependency creates one dependency link. Duplicate
// (project, library, source) rows are rejected as already-exists.
func (s *ProjectService) AddDependency(ctx context.Context, projectID string, in DependencyInput) (*ent.ProjectDependency, error) {
	if in.LibraryID == "" {
		return nil, NewValidationError("library_id", "required")
	}
	if in.ConstraintExpr == "" {
		return nil, NewValidationError("constraint_expr", "required")
	}

	builder := s.client.ProjectDependency.Create().
		SetProjectID(projectID).
		SetLibraryID(in.LibraryID).
		SetConstraintExpr(in.ConstraintExpr)
	if in.ResolvedVersion != "" {
		builder.SetResolvedVersion(in.ResolvedVersion)
	}
	if in.Source != "" {
		builder.SetConstraintSource(in.Source)
	}

	dep, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create dependency: %w", err)
	}
	return dep, nil
}

// ReplaceScannedDependencies atomically swaps the scanner-sourced dependency
// rows of a project for the freshly discovered set. Rows with source
// "manual" are human input and always preserved.
func (s *ProjectService) ReplaceScannedDependencies(ctx context.Context, projectID string, deps []DependencyInput) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ProjectDependency.Delete().
		Where(
			projectdependency.ProjectIDEQ(projectID),
			projectdependency.ConstraintSourceNEQ("manual"),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear scanned dependencies: %w", err)
	}

	for _, in := range deps {
		builder := tx.ProjectDependency.Create().
			SetProjectID(projectID).
			SetLibraryID(in.LibraryID).
			SetConstraintExpr(in.ConstraintExpr).
			SetConstraintSource(in.Source)
		if in.ResolvedVersion != "" {
			builder.SetResolvedVersion(in.ResolvedVersion)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to create scanned dependency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dependency swap: %w", err)
	}
	return nil
}

// SetScanResult records the outcome of one dependency scan.
func (s *ProjectService) SetScanResult(ctx context.Context, projectID, status, scanErr string) error {
	update := s.client.Project.UpdateOneID(projectID).
		SetScanStatus(status).
		SetLastScannedAt(time.Now())
	if scanErr != "" {
		update.SetScanError(scanErr)
	} else {
		update.ClearScanError()
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set scan result: %w", err)
	}
	return nil
}

// DependenciesForLibrary lists every dependency row pointing at a library.
func (s *ProjectService) DependenciesForLibrary(ctx context.Context, libraryID string) ([]*ent.ProjectDependency, error) {
	rows, err := s.client.ProjectDependency.Query().
		Where(projectdependency.LibraryIDEQ(libraryID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies for library: %w", err)
	}
	return rows, nil
}
