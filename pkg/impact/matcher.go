// Package impact fans published upstream vulnerabilities out to every
// project that depends on the affected library.
package impact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vulnsentinel/vulnsentinel/ent"
)

const batchLimit = 20

// Narrow service slices so the fan-out logic is testable with fakes.

type vulnLister interface {
	ListPublishedWithoutImpact(ctx context.Context, limit int) ([]*ent.UpstreamVuln, error)
}

type dependencyLister interface {
	DependenciesForLibrary(ctx context.Context, libraryID string) ([]*ent.ProjectDependency, error)
}

type clientVulnCreator interface {
	CreateBatchForVuln(ctx context.Context, upstreamVulnID string, deps []*ent.ProjectDependency) (int, error)
}

// Matcher is the impact matching stage. Version-range checking is deferred
// to the reachability stage; every dependent project becomes a candidate.
type Matcher struct {
	vulns       vulnLister
	projects    dependencyLister
	clientVulns clientVulnCreator
	logger      *slog.Logger
}

// New creates an impact matcher stage.
func New(vulns vulnLister, projects dependencyLister, clientVulns clientVulnCreator) *Matcher {
	return &Matcher{
		vulns:       vulns,
		projects:    projects,
		clientVulns: clientVulns,
		logger:      slog.Default().With("stage", "impact"),
	}
}

// Run fans out each newly published vuln to its dependent projects. The
// poll query already excludes libraries no project depends on, so a vuln in
// an unused library never enters this loop. Per-vuln failures are absorbed.
func (m *Matcher) Run(ctx context.Context) (int, error) {
	batch, err := m.vulns.ListPublishedWithoutImpact(ctx, batchLimit)
	if err != nil {
		return 0, fmt.Errorf("list published vulns without impact: %w", err)
	}

	matched := 0
	for _, vuln := range batch {
		created, err := m.matchVuln(ctx, vuln)
		if err != nil {
			m.logger.Error("Impact matching failed", "vuln_id", vuln.ID, "error", err)
			continue
		}
		m.logger.Info("Vuln matched to projects", "vuln_id", vuln.ID, "client_vulns", created)
		matched++
	}
	return matched, nil
}

// matchVuln fans one vuln out to every dependent project. The fan-out runs
// in a single transaction, so a mid-batch failure leaves no ClientVuln rows
// and the vuln stays in the poll queue.
func (m *Matcher) matchVuln(ctx context.Context, vuln *ent.UpstreamVuln) (int, error) {
	deps, err := m.projects.DependenciesForLibrary(ctx, vuln.LibraryID)
	if err != nil {
		return 0, fmt.Errorf("list dependencies: %w", err)
	}
	if len(deps) == 0 {
		return 0, nil
	}
	return m.clientVulns.CreateBatchForVuln(ctx, vuln.ID, deps)
}
