package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdpolicano/go-corpustat/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDatasetNoSource(t *testing.T) {
	_, err := LoadDataset(context.Background(), config.Config{},
		config.DatasetConfig{Name: "tweets"}, false, testLogger())
	assert.ErrorIs(t, err, ErrorNoSource)
}

func TestLoadDatasetFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("author,text,timestamp\nalice,hello world,2018-01-03\n"))
	}))
	defer server.Close()

	cfg := config.Config{
		Cache: config.CacheConfig{Path: filepath.Join(t.TempDir(), "cache.db")},
	}
	ds := config.DatasetConfig{Name: "tweets", URL: server.URL}

	c, err := LoadDataset(context.Background(), cfg, ds, false, testLogger())
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	doc := c.Documents()[0]
	assert.Equal(t, "alice", doc.Author)
	assert.Equal(t, "hello world", doc.Text)
	assert.Empty(t, doc.Language)
}
