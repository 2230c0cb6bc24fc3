package reachability

import "context"

// FuzzerInfo describes one fuzz harness found in a snapshot.
type FuzzerInfo struct {
	Name          string   `json:"name"`
	EntryFunction string   `json:"entry_function"`
	Files         []string `json:"files"`
}

// ReachableFunction is one function transitively callable from a fuzzer
// entry point.
type ReachableFunction struct {
	Name       string `json:"name"`
	FilePath   string `json:"file_path"`
	Depth      int    `json:"depth"`
	IsExternal bool   `json:"is_external"`
}

// Path is one call chain through the graph.
type Path struct {
	Nodes []string `json:"path"`
}

// PathResult is the outcome of a shortest-path query.
type PathResult struct {
	Length     int    `json:"length"`
	PathsFound int    `json:"paths_found"`
	Paths      []Path `json:"paths"`
}

// Store is the read-only call-graph snapshot store owned by the external
// static-analysis engine. Snapshots are keyed by (repo_url, version).
type Store interface {
	// FindSnapshot returns the snapshot id, or "" when none exists.
	FindSnapshot(ctx context.Context, repoURL, version string) (string, error)

	// BuildSnapshot builds a snapshot. May be slow; failures carry the
	// engine's reason.
	BuildSnapshot(ctx context.Context, repoURL, version string) (string, error)

	ListFuzzerInfo(ctx context.Context, snapshotID string) ([]FuzzerInfo, error)

	// ReachableFunctionsByFuzzer lists the fuzzer's transitive call set.
	// maxDepth <= 0 means unlimited.
	ReachableFunctionsByFuzzer(ctx context.Context, snapshotID, fuzzerName string, maxDepth int) ([]ReachableFunction, error)

	// ShortestPath returns nil when no path exists.
	ShortestPath(ctx context.Context, snapshotID, from, to string) (*PathResult, error)
}
