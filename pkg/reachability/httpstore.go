package reachability

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPStore talks to the static-analysis engine's snapshot API. Snapshot
// builds can take minutes, so the build call gets a long client timeout.
type HTTPStore struct {
	baseURL     string
	httpClient  *http.Client
	buildClient *http.Client
}

// NewHTTPStore creates a store client for the given base URL.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		buildClient: &http.Client{Timeout: 15 * time.Minute},
	}
}

func (s *HTTPStore) FindSnapshot(ctx context.Context, repoURL, version string) (string, error) {
	params := url.Values{}
	params.Set("repo_url", repoURL)
	params.Set("version", version)

	var out struct {
		SnapshotID string `json:"snapshot_id"`
	}
	err := s.get(ctx, s.httpClient, "/snapshots/find?"+params.Encode(), &out)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return out.SnapshotID, nil
}

func (s *HTTPStore) BuildSnapshot(ctx context.Context, repoURL, version string) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"repo_url": repoURL,
		"version":  version,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/snapshots", strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("callgraph: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.buildClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("callgraph: build snapshot: %w", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// The engine reports build failures with a textual reason.
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return "", fmt.Errorf("callgraph: build failed: %s", failure.Error)
		}
		return "", fmt.Errorf("callgraph: build failed with HTTP %d", resp.StatusCode)
	}

	var out struct {
		SnapshotID string `json:"snapshot_id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("callgraph: decode build response: %w", err)
	}
	return out.SnapshotID, nil
}

func (s *HTTPStore) ListFuzzerInfo(ctx context.Context, snapshotID string) ([]FuzzerInfo, error) {
	var out []FuzzerInfo
	err := s.get(ctx, s.httpClient, "/snapshots/"+url.PathEscape(snapshotID)+"/fuzzers", &out)
	return out, err
}

func (s *HTTPStore) ReachableFunctionsByFuzzer(ctx context.Context, snapshotID, fuzzerName string, maxDepth int) ([]ReachableFunction, error) {
	params := url.Values{}
	params.Set("fuzzer", fuzzerName)
	if maxDepth > 0 {
		params.Set("max_depth", fmt.Sprint(maxDepth))
	}
	var out []ReachableFunction
	err := s.get(ctx, s.httpClient, "/snapshots/"+url.PathEscape(snapshotID)+"/reachable?"+params.Encode(), &out)
	return out, err
}

func (s *HTTPStore) ShortestPath(ctx context.Context, snapshotID, from, to string) (*PathResult, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)

	var out PathResult
	err := s.get(ctx, s.httpClient, "/snapshots/"+url.PathEscape(snapshotID)+"/shortest-path?"+params.Encode(), &out)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (s *HTTPStore) get(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("callgraph: create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("callgraph: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errStoreNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("callgraph: HTTP %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("callgraph: decode %s: %w", path, err)
	}
	return nil
}

var errStoreNotFound = fmt.Errorf("callgraph: not found")

func isNotFound(err error) bool {
	return err == errStoreNotFound
}
