package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
)

// LibraryService manages tracked upstream libraries.
type LibraryService struct {
	client *ent.Client
	signer *cursor.Signer
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(client *ent.Client, signer *cursor.Signer) *LibraryService {
	return &LibraryService{client: client, signer: signer}
}

// UpsertLibraryInput is the onboarding payload for a library.
type UpsertLibraryInput struct {
	Name          string
	RepoURL       string
	Platform      string
	Ecosystem     string
	DefaultBranch string
}

// UpsertByName creates a library or returns the existing one. Idempotent for
// identical input; a name reused with a different repo URL is rejected as a
// conflict (fork protection).
func (s *LibraryService) UpsertByName(ctx context.Context, in UpsertLibraryInput) (*ent.Library, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.RepoURL == "" {
		return nil, NewValidationError("repo_url", "required")
	}

	existing, err := s.client.Library.Query().
		Where(library.NameEQ(in.Name)).
		Only(ctx)
	switch {
	case err == nil:
		if existing.RepoURL != in.RepoURL {
			return nil, fmt.Errorf("%w: library %q already tracked with url %s",
				ErrConflict, in.Name, existing.RepoURL)
		}
		return existing, nil
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query library: %w", err)
	}

	builder := s.client.Library.Create().
		SetName(in.Name).
		SetRepoURL(in.RepoURL)
	if in.Platform != "" {
		builder.SetPlatform(in.Platform)
	}
	if in.Ecosystem != "" {
		builder.SetEcosystem(in.Ecosystem)
	}
	if in.DefaultBranch != "" {
		builder.SetDefaultBranch(in.DefaultBranch)
	}

	lib, err := builder.Save(ctx)
	if err != nil {
		// Lost a create race; re-read and re-check the URL.
		if ent.IsConstraintError(err) {
			return s.UpsertByName(ctx, in)
		}
		return nil, fmt.Errorf("failed to create library: %w", err)
	}
	return lib, nil
}

// Get loads one library by id.
func (s *LibraryService) Get(ctx context.Context, id string) (*ent.Library, error) {
	lib, err := s.client.Library.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get library: %w", err)
	}
	return lib, nil
}

// ListAll returns every tracked library (collector fan-out input).
func (s *LibraryService) ListAll(ctx context.Context) ([]*ent.Library, error) {
	libs, err := s.client.Library.Query().
		Order(ent.Asc(library.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list libraries: %w", err)
	}
	return libs, nil
}

// List returns one page of libraries ordered by (created_at DESC, id DESC).
func (s *LibraryService) List(ctx context.Context, pageToken string, limit int) ([]*ent.Library, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := s.client.Library.Query()
	if pageToken != "" {
		createdAt, id, err := s.signer.Decode(pageToken)
		if err != nil {
			return nil, "", err
		}
		q = q.Where(
			library.Or(
				library.CreatedAtLT(createdAt),
				library.And(library.CreatedAtEQ(createdAt), library.IDLT(id)),
			),
		)
	}
	rows, err := q.
		Order(ent.Desc(library.FieldCreatedAt), ent.Desc(library.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list libraries: %w", err)
	}

	var next string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = s.signer.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}

// CollectResult carries the collector's watermark and health updates.
type CollectResult struct {
	LastCommitSHA string
	LastTagName   string
	SourceDetail  map[string]string
	SourceErrors  []string
	SawData       bool
}

// ApplyCollectResult persists watermarks and health after one collection run.
// Rules: any source error marks the library unhealthy but still advances
// last_scanned_at if at least one source returned data; all-success always
// advances; the per-source detail map is always persisted.
func (s *LibraryService) ApplyCollectResult(ctx context.Context, libraryID string, res CollectResult) error {
	update := s.client.Library.UpdateOneID(libraryID).
		SetCollectorDetail(res.SourceDetail)

	if res.LastCommitSHA != "" {
		update.SetLastCommitSha(res.LastCommitSHA)
	}
	if res.LastTagName != "" {
		update.SetLastTagName(res.LastTagName)
	}

	if len(res.SourceErrors) > 0 {
		update.SetCollectorHealth(library.CollectorHealthUnhealthy).
			SetCollectorError(joinErrors(res.SourceErrors))
		if res.SawData {
			update.SetLastScannedAt(time.Now())
		}
	} else {
		update.SetCollectorHealth(library.CollectorHealthHealthy).
			ClearCollectorError().
			SetLastScannedAt(time.Now())
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to apply collect result: %w", err)
	}
	return nil
}

func joinErrors(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
