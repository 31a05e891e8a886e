package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)

	records := []Record{
		{Author: "alice", Text: "hello", Timestamp: time.Date(2018, time.January, 3, 9, 0, 0, 0, time.UTC)},
		{Author: "bob", Text: "world", Timestamp: time.Date(2018, time.January, 4, 10, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, cache.Put("tweets", records))

	got, err := cache.Get("tweets")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCacheMissIsEmpty(t *testing.T) {
	cache := openTestCache(t)
	got, err := cache.Get("nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCachePutIsIdempotent(t *testing.T) {
	cache := openTestCache(t)

	records := []Record{
		{Author: "alice", Text: "hello", Timestamp: time.Date(2018, time.January, 3, 9, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, cache.Put("tweets", records))
	require.NoError(t, cache.Put("tweets", records))

	got, err := cache.Get("tweets")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLoadDatasetUsesCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	cache := openTestCache(t)
	src := NewHTTPSource(cache)

	first, err := src.LoadDataset(context.Background(), "tweets", server.URL)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := src.LoadDataset(context.Background(), "tweets", server.URL)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	assert.Equal(t, int64(1), hits.Load())
}
