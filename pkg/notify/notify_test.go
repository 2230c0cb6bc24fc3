package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

type fakeQueue struct {
	items    []*ent.ClientVuln
	reported map[string]map[string]any
}

func (f *fakeQueue) ListToNotify(context.Context, int) ([]*ent.ClientVuln, error) {
	return f.items, nil
}

func (f *fakeQueue) MarkReported(_ context.Context, id string, report map[string]any) error {
	if f.reported == nil {
		f.reported = map[string]map[string]any{}
	}
	f.reported[id] = report
	return nil
}

type fakeVulns struct{ vuln *ent.UpstreamVuln }

func (f *fakeVulns) Get(context.Context, string) (*ent.UpstreamVuln, error) { return f.vuln, nil }

type fakeLibraries struct{ lib *ent.Library }

func (f *fakeLibraries) Get(context.Context, string) (*ent.Library, error) { return f.lib, nil }

type fakeProjects struct{ project *ent.Project }

func (f *fakeProjects) Get(context.Context, string) (*ent.Project, error) { return f.project, nil }

type fakeSender struct {
	to, subject, body string
	err               error
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.body = to, subject, body
	return nil
}

func testVuln() *ent.UpstreamVuln {
	vulnType := "use_after_free"
	severity := upstreamvuln.SeverityCritical
	affected := "<2.5.0"
	summary := "Freed connection reused in cleanup path."
	return &ent.UpstreamVuln{
		ID:                "v1",
		LibraryID:         "lib1",
		VulnType:          &vulnType,
		Severity:          &severity,
		CommitSha:         "abc1234",
		AffectedVersions:  &affected,
		Summary:           &summary,
		AffectedFunctions: []string{"conn_close"},
	}
}

func testClientVuln() *ent.ClientVuln {
	return &ent.ClientVuln{
		ID:             "cv1",
		UpstreamVulnID: "v1",
		ProjectID:      "p1",
		ReachablePath: map[string]any{
			"strategy":   "shortest_path",
			"call_chain": []any{"main", "run", "conn_close"},
		},
	}
}

func TestNotifySendsAndMarksReported(t *testing.T) {
	queue := &fakeQueue{items: []*ent.ClientVuln{testClientVuln()}}
	sender := &fakeSender{}
	n := New(queue,
		&fakeVulns{vuln: testVuln()},
		&fakeLibraries{lib: &ent.Library{Name: "libconn"}},
		&fakeProjects{project: &ent.Project{Name: "webapp", ContactEmail: "dev@example.com"}},
		sender, "")

	sent, err := n.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	assert.Equal(t, "dev@example.com", sender.to)
	assert.Contains(t, sender.subject, "critical")
	assert.Contains(t, sender.subject, "use_after_free")
	assert.Contains(t, sender.subject, "libconn")
	assert.Contains(t, sender.subject, "webapp")

	assert.Contains(t, sender.body, "Freed connection reused")
	assert.Contains(t, sender.body, "conn_close")
	assert.Contains(t, sender.body, "shortest_path")
	assert.Contains(t, sender.body, "main -&gt; run -&gt; conn_close")
	assert.Contains(t, sender.body, severityColors[upstreamvuln.SeverityCritical])

	report := queue.reported["cv1"]
	require.NotNil(t, report)
	assert.Equal(t, "email", report["type"])
	assert.Equal(t, "dev@example.com", report["to"])
	assert.Equal(t, sender.subject, report["subject"])
}

func TestNotifyOverrideRecipient(t *testing.T) {
	queue := &fakeQueue{items: []*ent.ClientVuln{testClientVuln()}}
	sender := &fakeSender{}
	n := New(queue,
		&fakeVulns{vuln: testVuln()},
		&fakeLibraries{lib: &ent.Library{Name: "libconn"}},
		&fakeProjects{project: &ent.Project{Name: "webapp", ContactEmail: "dev@example.com"}},
		sender, "oncall@example.com")

	_, err := n.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "oncall@example.com", sender.to)
}

func TestNotifySendFailureLeavesRowUnreported(t *testing.T) {
	queue := &fakeQueue{items: []*ent.ClientVuln{testClientVuln()}}
	sender := &fakeSender{err: errors.New("relay down")}
	n := New(queue,
		&fakeVulns{vuln: testVuln()},
		&fakeLibraries{lib: &ent.Library{Name: "libconn"}},
		&fakeProjects{project: &ent.Project{Name: "webapp", ContactEmail: "dev@example.com"}},
		sender, "")

	sent, err := n.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Empty(t, queue.reported)
}

func TestNotifyNoContactEmailSkips(t *testing.T) {
	queue := &fakeQueue{items: []*ent.ClientVuln{testClientVuln()}}
	sender := &fakeSender{}
	n := New(queue,
		&fakeVulns{vuln: testVuln()},
		&fakeLibraries{lib: &ent.Library{Name: "libconn"}},
		&fakeProjects{project: &ent.Project{Name: "webapp"}},
		sender, "")

	sent, err := n.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Empty(t, sender.to)

	report := queue.reported["cv1"]
	require.NotNil(t, report)
	assert.Equal(t, "no contact email", report["skipped"])
}

func TestRenderEmailWithMissingAnalysisFields(t *testing.T) {
	vuln := &ent.UpstreamVuln{ID: "v1", LibraryID: "lib1", CommitSha: "abc1234"}
	subject, body, err := renderEmail(testClientVuln(), vuln, &ent.Library{Name: "libconn"}, &ent.Project{Name: "webapp"})
	require.NoError(t, err)
	assert.Contains(t, subject, "medium")
	assert.Contains(t, body, "abc1234")
}

func TestRenderEmailWithoutReachablePath(t *testing.T) {
	cv := testClientVuln()
	cv.ReachablePath = nil
	subject, body, err := renderEmail(cv, testVuln(), &ent.Library{Name: "libconn"}, &ent.Project{Name: "webapp"})
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.False(t, strings.Contains(body, "Reachability"))
}
