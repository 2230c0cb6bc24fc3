package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
)

// EventService manages upstream repository events. Event rows are append-only:
// the collector inserts, the classifier updates classification in place, and
// nothing ever deletes them.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventInput is one observation produced by the collector.
type EventInput struct {
	Type             event.Type
	Ref              string
	Title            string
	Message          string
	Author           string
	RelatedIssueRef  string
	RelatedPRRef     string
	RelatedCommitSHA string
	OccurredAt       *time.Time
}

// BatchCreate inserts events for one library, skipping rows that already
// exist under the (library_id, type, ref) unique key. Returns the number of
// newly inserted rows; repeated identical calls therefore report zero.
func (s *EventService) BatchCreate(ctx context.Context, libraryID string, inputs []EventInput) (int, error) {
	created := 0
	for _, in := range inputs {
		builder := s.client.Event.Create().
			SetLibraryID(libraryID).
			SetType(in.Type).
			SetRef(in.Ref).
			SetTitle(in.Title)
		if in.Message != "" {
			builder.SetMessage(in.Message)
		}
		if in.Author != "" {
			builder.SetAuthor(in.Author)
		}
		if in.RelatedIssueRef != "" {
			builder.SetRelatedIssueRef(in.RelatedIssueRef)
		}
		if in.RelatedPRRef != "" {
			builder.SetRelatedPrRef(in.RelatedPRRef)
		}
		if in.RelatedCommitSHA != "" {
			builder.SetRelatedCommitSha(in.RelatedCommitSHA)
		}
		if in.OccurredAt != nil {
			builder.SetOccurredAt(*in.OccurredAt)
		}

		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue // already collected on a previous run
			}
			return created, fmt.Errorf("failed to create event %s/%s: %w", in.Type, in.Ref, err)
		}
		created++
	}
	return created, nil
}

// Get loads one event by id.
func (s *EventService) Get(ctx context.Context, id string) (*ent.Event, error) {
	ev, err := s.client.Event.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return ev, nil
}

// UpdateClassification stores the classifier's verdict. is_bugfix is derived
// here and nowhere else, keeping the invariant
// is_bugfix == (classification == security_bugfix) in one place.
// Deterministic: re-running classification overwrites prior values.
func (s *EventService) UpdateClassification(ctx context.Context, eventID string, classification event.Classification, confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return NewValidationError("confidence", "must be within [0, 1]")
	}
	err := s.client.Event.UpdateOneID(eventID).
		SetClassification(classification).
		SetConfidence(confidence).
		SetIsBugfix(classification == event.ClassificationSecurityBugfix).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update classification: %w", err)
	}
	return nil
}

// ListUnclassified returns the classifier's work queue, oldest first.
func (s *EventService) ListUnclassified(ctx context.Context, limit int) ([]*ent.Event, error) {
	rows, err := s.client.Event.Query().
		Where(event.ClassificationIsNil()).
		Order(ent.Asc(event.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclassified events: %w", err)
	}
	return rows, nil
}

// ListBugfixWithoutVuln returns the analyzer's work queue: security bugfix
// events with no UpstreamVuln yet. The eager placeholder row inserted by the
// analyzer removes an event from this queue even if its analysis later fails.
func (s *EventService) ListBugfixWithoutVuln(ctx context.Context, limit int) ([]*ent.Event, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.IsBugfix(true),
			event.Not(event.HasUpstreamVulns()),
		).
		Order(ent.Asc(event.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bugfix events without vulns: %w", err)
	}
	return rows, nil
}
