package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrorBadStatus is returned when a dataset URL does not answer 200.
var ErrorBadStatus = errors.New("unexpected response status")

// timestampLayouts are tried in order when parsing the CSV timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// HTTPSource fetches (author, text, timestamp) CSV datasets from remote
// URLs, consulting a local cache first when one is configured.
type HTTPSource struct {
	client *http.Client
	cache  *Cache
}

// NewHTTPSource builds a source. cache may be nil to always hit the network.
func NewHTTPSource(cache *Cache) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: 30 * time.Second},
		cache:  cache,
	}
}

// LoadDataset returns the cached documents for a dataset, or fetches and
// parses the CSV at url, populating the cache on the way out.
func (s *HTTPSource) LoadDataset(ctx context.Context, dataset, url string) ([]Record, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(dataset)
		if err != nil {
			return nil, fmt.Errorf("cache read for %s: %w", dataset, err)
		}
		if len(cached) > 0 {
			return cached, nil
		}
	}

	records, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(dataset, records); err != nil {
			return nil, fmt.Errorf("cache write for %s: %w", dataset, err)
		}
	}
	return records, nil
}

func (s *HTTPSource) fetch(ctx context.Context, url string) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d: %w", url, resp.StatusCode, ErrorBadStatus)
	}

	return ParseCSV(resp.Body)
}

// Record is one raw dataset row before corpus construction.
type Record struct {
	Author    string
	Text      string
	Timestamp time.Time
}

// ParseCSV reads rows of (author, text, timestamp). A first row carrying the
// column labels is skipped; a data row with a malformed timestamp is an
// error, never silently dropped.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	var records []Record
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if isHeaderRow(row) {
				continue
			}
		}

		ts, tsErr := parseTimestamp(row[2])
		if tsErr != nil {
			return nil, tsErr
		}

		records = append(records, Record{
			Author:    strings.TrimSpace(row[0]),
			Text:      row[1],
			Timestamp: ts,
		})
	}

	return records, nil
}

// isHeaderRow reports whether a first CSV row holds column labels rather
// than data. The timestamp column label is the discriminator: no data row
// can carry one of these names where a timestamp belongs.
func isHeaderRow(row []string) bool {
	label := strings.TrimSpace(row[2])
	return strings.EqualFold(label, "timestamp") || strings.EqualFold(label, "created_at")
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
