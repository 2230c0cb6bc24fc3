package impact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent"
)

type fakeVulns struct {
	vulns []*ent.UpstreamVuln
}

func (f *fakeVulns) ListPublishedWithoutImpact(_ context.Context, _ int) ([]*ent.UpstreamVuln, error) {
	return f.vulns, nil
}

type fakeDeps struct {
	byLibrary map[string][]*ent.ProjectDependency
}

func (f *fakeDeps) DependenciesForLibrary(_ context.Context, libraryID string) ([]*ent.ProjectDependency, error) {
	return f.byLibrary[libraryID], nil
}

// fakeClientVulns mirrors the service's transactional contract: a failing
// batch records nothing.
type fakeClientVulns struct {
	created []string // "vulnID/projectID"
	failOn  string
}

func (f *fakeClientVulns) CreateBatchForVuln(_ context.Context, vulnID string, deps []*ent.ProjectDependency) (int, error) {
	var batch []string
	seen := map[string]bool{}
	for _, dep := range deps {
		key := vulnID + "/" + dep.ProjectID
		if key == f.failOn {
			return 0, errors.New("insert failed")
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		batch = append(batch, key)
	}
	f.created = append(f.created, batch...)
	return len(batch), nil
}

func TestMatcherFansOutToAllDependents(t *testing.T) {
	vulns := &fakeVulns{vulns: []*ent.UpstreamVuln{{ID: "v1", LibraryID: "lib1"}}}
	deps := &fakeDeps{byLibrary: map[string][]*ent.ProjectDependency{
		"lib1": {
			{ProjectID: "p1", LibraryID: "lib1"},
			{ProjectID: "p2", LibraryID: "lib1"},
		},
	}}
	cv := &fakeClientVulns{}

	n, err := New(vulns, deps, cv).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"v1/p1", "v1/p2"}, cv.created)
}

func TestMatcherSkipsDuplicateProjectRows(t *testing.T) {
	// One project with manual and scanned dependency rows for the same
	// library yields exactly one ClientVuln.
	vulns := &fakeVulns{vulns: []*ent.UpstreamVuln{{ID: "v1", LibraryID: "lib1"}}}
	deps := &fakeDeps{byLibrary: map[string][]*ent.ProjectDependency{
		"lib1": {
			{ProjectID: "p1", LibraryID: "lib1", ConstraintSource: "manual"},
			{ProjectID: "p1", LibraryID: "lib1", ConstraintSource: "conanfile.txt"},
		},
	}}
	cv := &fakeClientVulns{}

	n, err := New(vulns, deps, cv).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"v1/p1"}, cv.created)
}

func TestMatcherNoDependencyNoClientVuln(t *testing.T) {
	vulns := &fakeVulns{vulns: []*ent.UpstreamVuln{{ID: "v1", LibraryID: "unused-lib"}}}
	cv := &fakeClientVulns{}

	n, err := New(vulns, &fakeDeps{}, cv).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, cv.created)
}

func TestMatcherFanOutIsAtomic(t *testing.T) {
	// A failure partway through a vuln's fan-out must leave no rows behind:
	// partial fan-out would remove the vuln from the poll queue with some
	// dependent projects never getting a ClientVuln.
	vulns := &fakeVulns{vulns: []*ent.UpstreamVuln{{ID: "v1", LibraryID: "lib1"}}}
	deps := &fakeDeps{byLibrary: map[string][]*ent.ProjectDependency{
		"lib1": {
			{ProjectID: "p1", LibraryID: "lib1"},
			{ProjectID: "p2", LibraryID: "lib1"},
			{ProjectID: "p3", LibraryID: "lib1"},
		},
	}}
	cv := &fakeClientVulns{failOn: "v1/p2"}

	n, err := New(vulns, deps, cv).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, cv.created)
}

func TestMatcherOneFailureDoesNotPoisonBatch(t *testing.T) {
	vulns := &fakeVulns{vulns: []*ent.UpstreamVuln{
		{ID: "v1", LibraryID: "lib1"},
		{ID: "v2", LibraryID: "lib1"},
	}}
	deps := &fakeDeps{byLibrary: map[string][]*ent.ProjectDependency{
		"lib1": {{ProjectID: "p1", LibraryID: "lib1"}},
	}}
	cv := &fakeClientVulns{failOn: "v1/p1"}

	n, err := New(vulns, deps, cv).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"v2/p1"}, cv.created)
}
