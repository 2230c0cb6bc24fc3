package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
)

// VulnService manages UpstreamVuln rows through their
// analyzing -> published lifecycle.
type VulnService struct {
	client *ent.Client
	signer *cursor.Signer
}

// NewVulnService creates a new VulnService.
func NewVulnService(client *ent.Client, signer *cursor.Signer) *VulnService {
	return &VulnService{client: client, signer: signer}
}

// CreatePlaceholder inserts an analyzing-status row before the LLM is
// called, so the source event leaves the analyzer queue even if analysis
// fails. This is the placeholder-before-call idiom used for every costly
// irreversible operation in the pipeline.
func (s *VulnService) CreatePlaceholder(ctx context.Context, eventID, libraryID, commitSHA string) (*ent.UpstreamVuln, error) {
	builder := s.client.UpstreamVuln.Create().
		SetEventID(eventID).
		SetLibraryID(libraryID)
	if commitSHA != "" {
		builder.SetCommitSha(commitSHA)
	}
	v, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder vuln: %w", err)
	}
	return v, nil
}

// VulnAnalysis is one structured vulnerability produced by the analyzer.
type VulnAnalysis struct {
	VulnType          string
	Severity          upstreamvuln.Severity
	AffectedVersions  string
	Summary           string
	Reasoning         string
	UpstreamPoc       map[string]any
	AffectedFunctions []string
}

// Publish applies one analysis result to a vuln row and transitions it to
// published, stamping published_at. A published vuln always has vuln_type,
// severity, affected-version range, and summary populated.
func (s *VulnService) Publish(ctx context.Context, vulnID string, a VulnAnalysis) (*ent.UpstreamVuln, error) {
	if a.VulnType == "" {
		return nil, NewValidationError("vuln_type", "required for publishing")
	}
	if a.Severity == "" {
		return nil, NewValidationError("severity", "required for publishing")
	}
	if a.AffectedVersions == "" {
		return nil, NewValidationError("affected_versions", "required for publishing")
	}
	if a.Summary == "" {
		return nil, NewValidationError("summary", "required for publishing")
	}

	update := s.client.UpstreamVuln.UpdateOneID(vulnID).
		SetVulnType(a.VulnType).
		SetSeverity(a.Severity).
		SetAffectedVersions(a.AffectedVersions).
		SetSummary(a.Summary).
		SetStatus(upstreamvuln.StatusPublished).
		SetPublishedAt(time.Now())
	if a.Reasoning != "" {
		update.SetReasoning(a.Reasoning)
	}
	if a.UpstreamPoc != nil {
		update.SetUpstreamPoc(a.UpstreamPoc)
	}
	if a.AffectedFunctions != nil {
		update.SetAffectedFunctions(a.AffectedFunctions)
	}

	v, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to publish vuln: %w", err)
	}
	return v, nil
}

// CreatePublished inserts an additional vuln row for an event that yielded
// more than one vulnerability, already in published status.
func (s *VulnService) CreatePublished(ctx context.Context, eventID, libraryID, commitSHA string, a VulnAnalysis) (*ent.UpstreamVuln, error) {
	placeholder, err := s.CreatePlaceholder(ctx, eventID, libraryID, commitSHA)
	if err != nil {
		return nil, err
	}
	return s.Publish(ctx, placeholder.ID, a)
}

// SetError records an analysis failure on the placeholder row. The row stays
// in analyzing status so operators can inspect it; the event is not re-polled.
func (s *VulnService) SetError(ctx context.Context, vulnID, msg string) error {
	err := s.client.UpstreamVuln.UpdateOneID(vulnID).
		SetErrorMessage(msg).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set vuln error: %w", err)
	}
	return nil
}

// Get loads one vuln by id.
func (s *VulnService) Get(ctx context.Context, id string) (*ent.UpstreamVuln, error) {
	v, err := s.client.UpstreamVuln.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vuln: %w", err)
	}
	return v, nil
}

// ListPublishedWithoutImpact is the impact matcher's work queue: published
// vulns with no ClientVuln fan-out yet, restricted to libraries that at
// least one project depends on. The dependency predicate keeps vulns in
// unused libraries from flooding the queue forever.
func (s *VulnService) ListPublishedWithoutImpact(ctx context.Context, limit int) ([]*ent.UpstreamVuln, error) {
	rows, err := s.client.UpstreamVuln.Query().
		Where(
			upstreamvuln.StatusEQ(upstreamvuln.StatusPublished),
			upstreamvuln.Not(upstreamvuln.HasClientVulns()),
			upstreamvuln.HasLibraryWith(library.HasDependencies()),
		).
		Order(ent.Asc(upstreamvuln.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published vulns without impact: %w", err)
	}
	return rows, nil
}

// List returns one page of vulns ordered by (created_at DESC, id DESC).
func (s *VulnService) List(ctx context.Context, pageToken string, limit int) ([]*ent.UpstreamVuln, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := s.client.UpstreamVuln.Query()
	if pageToken != "" {
		createdAt, id, err := s.signer.Decode(pageToken)
		if err != nil {
			return nil, "", err
		}
		q = q.Where(
			upstreamvuln.Or(
				upstreamvuln.CreatedAtLT(createdAt),
				upstreamvuln.And(upstreamvuln.CreatedAtEQ(createdAt), upstreamvuln.IDLT(id)),
			),
		)
	}
	rows, err := q.
		Order(ent.Desc(upstreamvuln.FieldCreatedAt), ent.Desc(upstreamvuln.FieldID)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list vulns: %w", err)
	}

	var next string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = s.signer.Encode(last.CreatedAt, last.ID)
	}
	return rows, next, nil
}
