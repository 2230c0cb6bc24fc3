package reachability

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent"
)

type fakeQueue struct {
	items []*ent.ClientVuln

	searching []string
	finalized map[string]finalization
}

type finalization struct {
	affected bool
	path     map[string]any
	errMsg   string
}

func (f *fakeQueue) ListForReachability(context.Context, int) ([]*ent.ClientVuln, error) {
	return f.items, nil
}

func (f *fakeQueue) MarkPathSearching(_ context.Context, id string) error {
	f.searching = append(f.searching, id)
	return nil
}

func (f *fakeQueue) Finalize(_ context.Context, id string, affected bool, path map[string]any, errMsg string) error {
	if f.finalized == nil {
		f.finalized = map[string]finalization{}
	}
	f.finalized[id] = finalization{affected: affected, path: path, errMsg: errMsg}
	return nil
}

type fakeVulns struct{ vuln *ent.UpstreamVuln }

func (f *fakeVulns) Get(context.Context, string) (*ent.UpstreamVuln, error) { return f.vuln, nil }

type fakeLibraries struct{ lib *ent.Library }

func (f *fakeLibraries) Get(context.Context, string) (*ent.Library, error) { return f.lib, nil }

type fakeProjects struct{ project *ent.Project }

func (f *fakeProjects) Get(context.Context, string) (*ent.Project, error) { return f.project, nil }

type fakeStore struct {
	snapshots map[string]string // repoURL@version -> id
	findErr   error
	buildErr  error
	fuzzers   []FuzzerInfo
	reachable map[string][]ReachableFunction // fuzzer name -> set
	paths     map[string]*PathResult         // target -> result
	storeErr  error
}

func (f *fakeStore) FindSnapshot(_ context.Context, repoURL, version string) (string, error) {
	if f.findErr != nil {
		return "", f.findErr
	}
	return f.snapshots[repoURL+"@"+version], nil
}

func (f *fakeStore) BuildSnapshot(_ context.Context, repoURL, version string) (string, error) {
	if f.buildErr != nil {
		return "", f.buildErr
	}
	return "built-" + repoURL + "@" + version, nil
}

func (f *fakeStore) ListFuzzerInfo(context.Context, string) ([]FuzzerInfo, error) {
	return f.fuzzers, f.storeErr
}

func (f *fakeStore) ReachableFunctionsByFuzzer(_ context.Context, _ string, fuzzer string, _ int) ([]ReachableFunction, error) {
	return f.reachable[fuzzer], nil
}

func (f *fakeStore) ShortestPath(_ context.Context, _ string, _, to string) (*PathResult, error) {
	return f.paths[to], nil
}

type fakeDiff struct{ body string }

func (f *fakeDiff) Get(context.Context, string, url.Values) (json.RawMessage, error) {
	return json.RawMessage(f.body), nil
}

func fixedSlug(string) (string, error) { return "o/r", nil }

func version(s string) *string { return &s }

func testSetup(vuln *ent.UpstreamVuln, store *fakeStore) (*Engine, *fakeQueue) {
	queue := &fakeQueue{items: []*ent.ClientVuln{{
		ID:              "cv1",
		UpstreamVulnID:  "v1",
		ProjectID:       "p1",
		ResolvedVersion: version("1.2.0"),
	}}}
	e := New(
		queue,
		&fakeVulns{vuln: vuln},
		&fakeLibraries{lib: &ent.Library{RepoURL: "https://github.com/o/lib"}},
		&fakeProjects{project: &ent.Project{RepoURL: "https://github.com/o/app", CurrentVersion: version("3.0.0")}},
		store,
		&fakeDiff{body: `{"files":[]}`},
		fixedSlug,
	)
	return e, queue
}

func TestFuzzerReachPositive(t *testing.T) {
	store := &fakeStore{
		fuzzers: []FuzzerInfo{{Name: "fuzz_url"}},
		reachable: map[string][]ReachableFunction{
			"fuzz_url": {
				{Name: "init", Depth: 1},
				{Name: "parse_url", Depth: 3},
			},
		},
	}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
		AffectedFunctions: []string{"parse_url"},
	}, store)

	n, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"cv1"}, queue.searching)

	fin := queue.finalized["cv1"]
	assert.True(t, fin.affected)
	assert.Equal(t, true, fin.path["found"])
	assert.Equal(t, StrategyFuzzerReaches, fin.path["strategy"])
	assert.Equal(t, 3, fin.path["depth"])
	assert.Equal(t, "fuzz_url", fin.path["fuzzer"])
}

func TestShortestPathPositive(t *testing.T) {
	store := &fakeStore{
		paths: map[string]*PathResult{
			"parse_url": {
				Length:     5,
				PathsFound: 1,
				Paths:      []Path{{Nodes: []string{"main", "run", "load", "fetch", "decode", "parse_url"}}},
			},
		},
	}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
		AffectedFunctions: []string{"parse_url"},
	}, store)

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	fin := queue.finalized["cv1"]
	assert.True(t, fin.affected)
	assert.Equal(t, StrategyShortestPath, fin.path["strategy"])
	assert.Equal(t, 5, fin.path["depth"])
	assert.Len(t, fin.path["call_chain"], 6)
}

func TestNotReachable(t *testing.T) {
	store := &fakeStore{
		fuzzers: []FuzzerInfo{{Name: "fuzz_other"}},
		reachable: map[string][]ReachableFunction{
			"fuzz_other": {{Name: "something_else", Depth: 2}},
		},
	}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
		AffectedFunctions: []string{"parse_url"},
	}, store)

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	fin := queue.finalized["cv1"]
	assert.False(t, fin.affected)
	assert.Equal(t, false, fin.path["found"])
	assert.Equal(t, StrategyExhausted, fin.path["strategy"])
}

func TestBuildFailureFinalizesNotAffect(t *testing.T) {
	store := &fakeStore{buildErr: errors.New("compile failed: missing toolchain")}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
		AffectedFunctions: []string{"parse_url"},
	}, store)

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	fin := queue.finalized["cv1"]
	assert.False(t, fin.affected)
	assert.Contains(t, fin.errMsg, "compile failed")
	assert.Equal(t, StrategyExhausted, fin.path["strategy"])
}

func TestStoreErrorLeavesItemForRetry(t *testing.T) {
	// A snapshot lookup failing for infrastructure reasons is not a verdict:
	// the item must stay unfinalized so the next poll retries it.
	store := &fakeStore{findErr: errors.New("connection refused")}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
		AffectedFunctions: []string{"parse_url"},
	}, store)

	n, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, queue.finalized)
}

func TestEmptyAffectedFunctionsUsesDiffFallback(t *testing.T) {
	store := &fakeStore{
		fuzzers: []FuzzerInfo{{Name: "fz"}},
		reachable: map[string][]ReachableFunction{
			"fz": {{Name: "png_read_row", Depth: 4}},
		},
	}
	e, queue := testSetup(&ent.UpstreamVuln{
		ID: "v1", LibraryID: "lib1", CommitSha: "abc",
	}, store)
	e.gh = &fakeDiff{body: `{"files":[
		{"filename":"pngread.c","patch":"@@ -10,6 +10,8 @@ static int png_read_row(png_structp ptr)\n context"},
		{"filename":"README.md","patch":"@@ -1,2 +1,2 @@ not_code()"}
	]}`}

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	fin := queue.finalized["cv1"]
	assert.True(t, fin.affected)
	assert.Equal(t, []string{"png_read_row"}, fin.path["searched_functions"])
}

func TestNoTargetsFinalizesNotAffect(t *testing.T) {
	e, queue := testSetup(&ent.UpstreamVuln{ID: "v1", LibraryID: "lib1"}, &fakeStore{})

	_, err := e.Run(context.Background())
	require.NoError(t, err)

	fin := queue.finalized["cv1"]
	assert.False(t, fin.affected)
	assert.Equal(t, "no affected functions identified", fin.errMsg)
}

func TestFunctionsFromPatch(t *testing.T) {
	patch := "@@ -100,7 +100,9 @@ int parse_url(const char *url, size_t len)\n" +
		"-  if (len > MAX)\n+  if (len >= MAX)\n" +
		"@@ -200,3 +202,3 @@ static void cleanup(void)\n context\n" +
		"@@ -300,1 +302,1 @@\n headerless hunk"
	assert.Equal(t, []string{"parse_url", "cleanup"}, functionsFromPatch(patch))
}
