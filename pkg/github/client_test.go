package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at srv with sleeps recorded instead of slept.
func newTestClient(srv *httptest.Server) (*Client, *[]time.Duration) {
	var slept []time.Duration
	c := NewClient("", WithBaseURL(srv.URL))
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestGetSingleResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/o/r/commits/abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"sha":"abc"}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	body, err := c.Get(context.Background(), "/repos/o/r/commits/abc", nil)
	require.NoError(t, err)

	var out struct {
		SHA string `json:"sha"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "abc", out.SHA)
}

func TestGetSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("tok-123", WithBaseURL(srv.URL))
	_, err := c.Get(context.Background(), "/user", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestPaginateFollowsLinkHeader(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		// First page carries caller params; next pages are driven by Link.
		switch r.URL.Query().Get("page") {
		case "", "1":
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next"`, srvURL))
			_, _ = w.Write([]byte(`[{"n":1},{"n":2}]`))
		case "2":
			_, _ = w.Write([]byte(`[{"n":3}]`))
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	c, _ := newTestClient(srv)
	var got []int
	err := c.Paginate(context.Background(), "/items", nil, 10, func(item json.RawMessage) (bool, error) {
		var v struct {
			N int `json:"n"`
		}
		if err := json.Unmarshal(item, &v); err != nil {
			return false, err
		}
		got = append(got, v.N)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestPaginateHonorsPageCap(t *testing.T) {
	var pages atomic.Int32
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages.Add(1)
		w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=next>; rel="next"`, srvURL))
		_, _ = w.Write([]byte(`[{}]`))
	}))
	defer srv.Close()
	srvURL = srv.URL

	c, _ := newTestClient(srv)
	err := c.Paginate(context.Background(), "/items", nil, 3, func(json.RawMessage) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), pages.Load())
}

func TestPaginateEarlyStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", `<http://unreachable/next>; rel="next"`)
		_, _ = w.Write([]byte(`[{"n":1},{"n":2},{"n":3}]`))
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	var seen int
	err := c.Paginate(context.Background(), "/items", nil, 10, func(json.RawMessage) (bool, error) {
		seen++
		return seen < 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}

func TestRetryOn500(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, slept := newTestClient(srv)
	_, err := c.Get(context.Background(), "/flaky", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	// Exponential backoff: 1s then 2s.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *slept)
}

func TestRetryExhaustion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	_, err := c.Get(context.Background(), "/down", nil)
	assert.ErrorContains(t, err, "attempts exhausted")
}

func TestForbiddenWithoutRateHeadersIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	_, err := c.Get(context.Background(), "/private", nil)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, int32(1), calls.Load(), "terminal 403 must not retry")
}

func TestForbiddenWithRateHeadersSleepsAndRetries(t *testing.T) {
	now := time.Now()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", now.Add(30*time.Second).Unix()))
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, slept := newTestClient(srv)
	c.now = func() time.Time { return now }
	_, err := c.Get(context.Background(), "/limited", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.NotEmpty(t, *slept)
	// First sleep is the rate-limit wait (~30s), not backoff.
	assert.InDelta(t, float64(30*time.Second), float64((*slept)[0]), float64(2*time.Second))
}

func TestRetryAfterHeaderWins(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "7")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "0")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, slept := newTestClient(srv)
	_, err := c.Get(context.Background(), "/limited", nil)
	require.NoError(t, err)
	require.NotEmpty(t, *slept)
	assert.Equal(t, 7*time.Second, (*slept)[0])
}

func TestBadRequestDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	_, err := c.Get(context.Background(), "/bad", nil)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{
			"next only",
			`<https://api.github.com/repos/o/r/commits?page=2>; rel="next"`,
			"https://api.github.com/repos/o/r/commits?page=2",
		},
		{
			"next and last",
			`<https://x/p?page=2>; rel="next", <https://x/p?page=9>; rel="last"`,
			"https://x/p?page=2",
		},
		{
			"prev only",
			`<https://x/p?page=1>; rel="prev"`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextLink(tt.header))
		})
	}
}

func TestPaginateFirstPageParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := newTestClient(srv)
	params := url.Values{"state": {"closed"}, "sort": {"updated"}}
	err := c.Paginate(context.Background(), "/pulls", params, 5, func(json.RawMessage) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", gotQuery.Get("state"))
	assert.Equal(t, "updated", gotQuery.Get("sort"))
	assert.Equal(t, "100", gotQuery.Get("per_page"))
}
