// Package notify renders and delivers one report email per verified
// impacted project.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vulnsentinel/vulnsentinel/ent"
)

const batchLimit = 20

// Service slices, narrowed for fakes in tests.

type workQueue interface {
	ListToNotify(ctx context.Context, limit int) ([]*ent.ClientVuln, error)
	MarkReported(ctx context.Context, id string, report map[string]any) error
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

// Sender delivers one rendered message.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Notifier is the notification stage.
type Notifier struct {
	queue     workQueue
	vulns     vulnGetter
	libraries libraryGetter
	projects  projectGetter
	sender    Sender

	// overrideTo redirects every notification to one address when set.
	overrideTo string
	logger     *slog.Logger
}

// New creates a notifier stage.
func New(queue workQueue, vulns vulnGetter, libraries libraryGetter, projects projectGetter, sender Sender, overrideTo string) *Notifier {
	return &Notifier{
		queue:      queue,
		vulns:      vulns,
		libraries:  libraries,
		projects:   projects,
		sender:     sender,
		overrideTo: overrideTo,
		logger:     slog.Default().With("stage", "notify"),
	}
}

// Run sends a report for each recorded-but-unreported client vuln. A failed
// send leaves the row in recorded for the next poll.
func (n *Notifier) Run(ctx context.Context) (int, error) {
	batch, err := n.queue.ListToNotify(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list client vulns to notify: %w", err)
	}

	sent := 0
	for _, cv := range batch {
		if err := n.notify(ctx, cv); err != nil {
			n.logger.Error("Notification failed", "client_vuln_id", cv.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (n *Notifier) notify(ctx context.Context, cv *ent.ClientVuln) error {
	vuln, err := n.vulns.Get(ctx, cv.UpstreamVulnID)
	if err != nil {
		return fmt.Errorf("load upstream vuln: %w", err)
	}
	lib, err := n.libraries.Get(ctx, vuln.LibraryID)
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}
	project, err := n.projects.Get(ctx, cv.ProjectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	to := project.ContactEmail
	if n.overrideTo != "" {
		to = n.overrideTo
	}
	if to == "" {
		// No recipient is a definitive condition: record the report with an
		// empty address so the row does not re-queue forever.
		n.logger.Warn("Project has no contact email, marking reported without delivery",
			"client_vuln_id", cv.ID, "project", project.Name)
		return n.queue.MarkReported(ctx, cv.ID, map[string]any{
			"type":    "email",
			"to":      "",
			"subject": "",
			"skipped": "no contact email",
		})
	}

	subject, body, err := renderEmail(cv, vuln, lib, project)
	if err != nil {
		return err
	}
	if err := n.sender.Send(ctx, to, subject, body); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	if err := n.queue.MarkReported(ctx, cv.ID, map[string]any{
		"type":    "email",
		"to":      to,
		"subject": subject,
	}); err != nil {
		return fmt.Errorf("mark reported: %w", err)
	}
	n.logger.Info("Report sent", "client_vuln_id", cv.ID, "to", to)
	return nil
}
