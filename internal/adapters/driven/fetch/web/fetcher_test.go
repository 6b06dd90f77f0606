package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/expenditures.csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Entity,Amount\nAcme,$10\n"))
	}))
	defer server.Close()

	f := NewFetcher(Config{BaseURL: server.URL + "/data/"})
	data, err := f.Fetch(context.Background(), "expenditures.csv")

	require.NoError(t, err)
	assert.Equal(t, "Entity,Amount\nAcme,$10\n", string(data))
}

func TestFetcher_Fetch_NonSuccessStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(Config{BaseURL: server.URL})
	_, err := f.Fetch(context.Background(), "missing.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), calls.Load(), "fetch must not retry")
}

func TestFetcher_Fetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewFetcher(Config{BaseURL: url}).Fetch(context.Background(), "x.csv")

	assert.Error(t, err)
}

func TestFetcher_Fetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFetcher(Config{BaseURL: "http://127.0.0.1:1"}).Fetch(ctx, "x.csv")

	assert.Error(t, err)
}

func TestFetcher_Location(t *testing.T) {
	f := NewFetcher(Config{BaseURL: "https://example.org/data/"})

	assert.Equal(t, "https://example.org/data/a.csv", f.Location("a.csv"))
	assert.Equal(t, "https://example.org/data/a.csv", f.Location("/a.csv"))
	assert.Equal(t, "https://cdn.example.org/b.csv", f.Location("https://cdn.example.org/b.csv"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(0)

	for range burst {
		require.NoError(t, r.Wait(context.Background()))
	}
	assert.Equal(t, burst, r.limiter.Burst())
}
