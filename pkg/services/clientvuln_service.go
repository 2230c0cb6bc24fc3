package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
)

// ClientVulnService manages ClientVuln rows: the per-project fan-out of a
// published vulnerability, its pipeline progress, and its customer-facing
// lifecycle.
type ClientVulnService struct {
	client *ent.Client
}

// NewClientVulnService creates a new ClientVulnService.
func NewClientVulnService(client *ent.Client) *ClientVulnService {
	return &ClientVulnService{client: client}
}

// CreateBatchForVuln fans one published vuln out to its dependent projects
// in a single transaction: either every ClientVuln row lands or none do, so
// a mid-batch failure leaves the vuln in the matcher's queue for the next
// poll. A project holding several dependency rows for the same library
// (manual plus scanned) yields exactly one row, denormalized from the first
// dependency seen. Returns the number of rows created.
func (s *ClientVulnService) CreateBatchForVuln(ctx context.Context, upstreamVulnID string, deps []*ent.ProjectDependency) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := 0
	seen := make(map[string]bool, len(deps))
	for _, dep := range deps {
		if seen[dep.ProjectID] {
			continue
		}
		seen[dep.ProjectID] = true

		err := tx.ClientVuln.Create().
			SetUpstreamVulnID(upstreamVulnID).
			SetProjectID(dep.ProjectID).
			SetConstraintExpr(dep.ConstraintExpr).
			SetConstraintSource(dep.ConstraintSource).
			SetNillableResolvedVersion(dep.ResolvedVersion).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return 0, ErrAlreadyExists
			}
			return 0, fmt.Errorf("failed to create client vuln: %w", err)
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit client vuln fan-out: %w", err)
	}
	return created, nil
}

// Get loads one client vuln by id.
func (s *ClientVulnService) Get(ctx context.Context, id string) (*ent.ClientVuln, error) {
	cv, err := s.client.ClientVuln.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client vuln: %w", err)
	}
	return cv, nil
}

// ListForReachability is the reachability stage's work queue.
func (s *ClientVulnService) ListForReachability(ctx context.Context, limit int) ([]*ent.ClientVuln, error) {
	rows, err := s.client.ClientVuln.Query().
		Where(clientvuln.PipelineStatusIn(
			clientvuln.PipelineStatusPending,
			clientvuln.PipelineStatusPathSearching,
		)).
		Order(ent.Asc(clientvuln.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client vulns for reachability: %w", err)
	}
	return rows, nil
}

// MarkPathSearching moves a vuln into the path_searching pipeline state and
// clears any error from a previous attempt.
func (s *ClientVulnService) MarkPathSearching(ctx context.Context, id string) error {
	err := s.client.ClientVuln.UpdateOneID(id).
		SetPipelineStatus(clientvuln.PipelineStatusPathSearching).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark path searching: %w", err)
	}
	return nil
}

// Finalize concludes the automated pipeline for one client vuln.
// affected=true: pipeline verified, customer status recorded.
// affected=false: both statuses not_affect. Either way
// analysis_completed_at is stamped and the reachability result stored.
func (s *ClientVulnService) Finalize(ctx context.Context, id string, affected bool, reachablePath map[string]any, errMsg string) error {
	now := time.Now()
	update := s.client.ClientVuln.UpdateOneID(id).
		SetIsAffected(affected).
		SetAnalysisCompletedAt(now)
	if reachablePath != nil {
		update.SetReachablePath(reachablePath)
	}
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}

	if affected {
		update.SetPipelineStatus(clientvuln.PipelineStatusVerified).
			SetStatus(clientvuln.StatusRecorded).
			SetRecordedAt(now)
	} else {
		update.SetPipelineStatus(clientvuln.PipelineStatusNotAffect).
			SetStatus(clientvuln.StatusNotAffect).
			SetNotAffectAt(now)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finalize client vuln: %w", err)
	}
	return nil
}

// ListToNotify is the notification stage's work queue: recorded vulns that
// have not been reported yet.
func (s *ClientVulnService) ListToNotify(ctx context.Context, limit int) ([]*ent.ClientVuln, error) {
	rows, err := s.client.ClientVuln.Query().
		Where(
			clientvuln.StatusEQ(clientvuln.StatusRecorded),
			clientvuln.ReportedAtIsNil(),
		).
		Order(ent.Asc(clientvuln.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client vulns to notify: %w", err)
	}
	return rows, nil
}

// MarkReported transitions recorded -> reported and stores the rendered
// report record.
func (s *ClientVulnService) MarkReported(ctx context.Context, id string, report map[string]any) error {
	cv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(cv.Status, clientvuln.StatusReported) {
		return NewValidationError("status", fmt.Sprintf(
			"cannot transition from %s to reported", statusLabel(cv.Status)))
	}
	update := s.client.ClientVuln.UpdateOneID(id).
		SetStatus(clientvuln.StatusReported).
		SetReportedAt(time.Now())
	if report != nil {
		update.SetReport(report)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark reported: %w", err)
	}
	return nil
}

// AdvanceCustomerStatus applies a maintainer-driven transition
// (reported -> confirmed, confirmed -> fixed) with an optional feedback
// message. Disallowed transitions — skips, moves out of terminal states —
// are rejected with a validation error.
func (s *ClientVulnService) AdvanceCustomerStatus(ctx context.Context, id string, next clientvuln.Status, message string) error {
	cv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(cv.Status, next) {
		return NewValidationError("status", fmt.Sprintf(
			"cannot transition from %s to %s", statusLabel(cv.Status), next))
	}

	now := time.Now()
	update := s.client.ClientVuln.UpdateOneID(id).SetStatus(next)
	switch next {
	case clientvuln.StatusReported:
		update.SetReportedAt(now)
	case clientvuln.StatusConfirmed:
		update.SetConfirmedAt(now)
		if message != "" {
			update.SetConfirmedMsg(message)
		}
	case clientvuln.StatusFixed:
		update.SetFixedAt(now)
		if message != "" {
			update.SetFixedMsg(message)
		}
	case clientvuln.StatusNotAffect:
		update.SetNotAffectAt(now)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to advance customer status: %w", err)
	}
	return nil
}

func statusLabel(s *clientvuln.Status) string {
	if s == nil {
		return "null"
	}
	return string(*s)
}
