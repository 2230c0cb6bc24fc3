package reachability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreServer(t *testing.T, handler http.HandlerFunc) *HTTPStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPStore(srv.URL)
}

func TestHTTPStoreFindSnapshot(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/snapshots/find", r.URL.Path)
		assert.Equal(t, "https://github.com/acme/libfoo", r.URL.Query().Get("repo_url"))
		assert.Equal(t, "1.2.3", r.URL.Query().Get("version"))
		json.NewEncoder(w).Encode(map[string]string{"snapshot_id": "snap-42"})
	})

	id, err := store.FindSnapshot(context.Background(), "https://github.com/acme/libfoo", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "snap-42", id)
}

func TestHTTPStoreFindSnapshotAbsent(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	id, err := store.FindSnapshot(context.Background(), "https://github.com/acme/libfoo", "1.2.3")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestHTTPStoreBuildSnapshotFailure(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "cmake configure failed"})
	})

	_, err := store.BuildSnapshot(context.Background(), "https://github.com/acme/libfoo", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmake configure failed")
}

func TestHTTPStoreShortestPath(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("from"))
		assert.Equal(t, "parse_header", r.URL.Query().Get("to"))
		json.NewEncoder(w).Encode(PathResult{
			Length:     2,
			PathsFound: 1,
			Paths:      []Path{{Nodes: []string{"main", "read_input", "parse_header"}}},
		})
	})

	res, err := store.ShortestPath(context.Background(), "snap-1", "main", "parse_header")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, []string{"main", "read_input", "parse_header"}, res.Paths[0].Nodes)
}

func TestHTTPStoreShortestPathNone(t *testing.T) {
	store := newStoreServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	res, err := store.ShortestPath(context.Background(), "snap-1", "main", "parse_header")
	require.NoError(t, err)
	assert.Nil(t, res)
}
