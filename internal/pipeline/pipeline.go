// Package pipeline orchestrates the metric runner, reference-row extraction,
// and aggregation into long-format result tables.
package pipeline

import (
	"log/slog"
	"math"
	"time"

	"github.com/jdpolicano/go-corpustat/internal/corpus"
	"github.com/jdpolicano/go-corpustat/internal/dfm"
	"github.com/jdpolicano/go-corpustat/internal/metric"
	"github.com/jdpolicano/go-corpustat/internal/stats"
)

// Runner executes metric evaluations over grouped corpora. Each metric is
// evaluated independently: a failure for one records missing rows and never
// aborts the rest.
type Runner struct {
	logger *slog.Logger
}

// NewRunner constructs a Runner.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger}
}

// CompareSimilarity groups documents by author, builds one document-feature
// matrix, and for each named metric scores every author against the
// reference author. Output rows are tagged with the metric name for
// downstream faceting. Unsupported metric names produce missing rows for
// every non-reference author.
func (r *Runner) CompareSimilarity(c corpus.Corpus, reference string, metricNames []string) (stats.Table, error) {
	groups, err := c.GroupByAuthor()
	if err != nil {
		return stats.Table{}, err
	}

	matrix, err := dfm.Build(groups)
	if err != nil {
		return stats.Table{}, err
	}

	otherLabels := make([]string, 0, len(groups))
	for _, label := range matrix.Labels() {
		if label != reference {
			otherLabels = append(otherLabels, label)
		}
	}

	var table stats.Table
	for _, name := range metricNames {
		m, parseErr := metric.ParseSimilarity(name)
		if parseErr != nil {
			r.logger.Warn("Skipping metric", "metric", name, "error", parseErr)
			table = table.Append(missingRows(otherLabels, name)...)
			continue
		}

		pairwise := metric.ComputePairwise(matrix, m)
		row, extractErr := pairwise.ReferenceRow(reference)
		if extractErr != nil {
			// The reference is absent from the matrix, so no metric can score
			// against it. Nothing to record; surface the error.
			return stats.Table{}, extractErr
		}

		obs := make([]stats.Observation, len(row))
		for i, scored := range row {
			obs[i] = stats.Observation{Label: scored.Label, Value: scored.Value}
		}
		table = table.Append(stats.Aggregate(obs, m.String())...)
		r.logger.Info("Computed similarity metric", "metric", m.String(), "groups", len(row))
	}

	return table, nil
}

// CompareReadability scores every document with each named formula and
// aggregates by author. When language is non-empty, documents tagged with a
// different language are skipped: the formulas are calibrated for one
// language at a time.
func (r *Runner) CompareReadability(c corpus.Corpus, metricNames []string, language string) (stats.Table, error) {
	docs := c.Documents()
	if len(docs) == 0 {
		return stats.Table{}, corpus.ErrorEmptyCorpus
	}

	scorable := make([]corpus.Document, 0, len(docs))
	for _, d := range docs {
		if language != "" && d.Language != "" && d.Language != language {
			continue
		}
		scorable = append(scorable, d)
	}
	if len(scorable) == 0 {
		return stats.Table{}, corpus.ErrorEmptyCorpus
	}

	authors := uniqueAuthors(scorable)

	var table stats.Table
	for _, name := range metricNames {
		formula, parseErr := metric.ParseReadability(name)
		if parseErr != nil {
			r.logger.Warn("Skipping formula", "formula", name, "error", parseErr)
			table = table.Append(missingRows(authors, name)...)
			continue
		}

		obs := make([]stats.Observation, len(scorable))
		for i, d := range scorable {
			obs[i] = stats.Observation{Label: d.Author, Value: formula.Score(d.Text)}
		}
		table = table.Append(stats.Aggregate(obs, formula.String())...)
		r.logger.Info("Computed readability formula", "formula", formula.String(), "documents", len(obs))
	}

	return table, nil
}

// TrendPoint is one (author, week) score against the reference author's
// same-week group.
type TrendPoint struct {
	Author string
	Week   time.Time
	Value  float64
}

// WeeklyTrend groups documents by (author, week) and scores each author's
// weekly group against the reference author's group for the same week. Weeks
// where the reference did not publish are skipped. Returns the per-author
// aggregate table plus the raw weekly series for trend charts.
func (r *Runner) WeeklyTrend(c corpus.Corpus, reference string, metricName string, weekStart time.Weekday) (stats.Table, []TrendPoint, error) {
	m, err := metric.ParseSimilarity(metricName)
	if err != nil {
		return stats.Table{}, nil, err
	}

	groups, err := c.GroupByAuthorWeek(weekStart)
	if err != nil {
		return stats.Table{}, nil, err
	}

	matrix, err := dfm.Build(groups)
	if err != nil {
		return stats.Table{}, nil, err
	}

	// Index matrix rows by their structured key; the label round-trip exists
	// only for legacy exports.
	rowByKey := make(map[corpus.GroupKey]int, len(groups))
	refWeeks := false
	for i, g := range groups {
		rowByKey[g.Key] = i
		if g.Key.Author == reference {
			refWeeks = true
		}
	}
	if !refWeeks {
		return stats.Table{}, nil, metric.ErrorReferenceNotFound
	}

	dense := make(map[int][]float64, len(groups))
	row := func(i int) []float64 {
		if v, exists := dense[i]; exists {
			return v
		}
		v := matrix.Row(i)
		dense[i] = v
		return v
	}

	points := make([]TrendPoint, 0, len(groups))
	obs := make([]stats.Observation, 0, len(groups))
	for _, g := range groups {
		if g.Key.Author == reference {
			continue
		}
		refIdx, exists := rowByKey[corpus.GroupKey{Author: reference, Week: g.Key.Week}]
		if !exists {
			continue
		}
		value := m.Compute(row(rowByKey[g.Key]), row(refIdx))
		points = append(points, TrendPoint{Author: g.Key.Author, Week: g.Key.Week, Value: value})
		obs = append(obs, stats.Observation{Label: g.Key.Author, Value: value})
	}

	var table stats.Table
	table = table.Append(stats.Aggregate(obs, m.String())...)
	r.logger.Info("Computed weekly trend", "metric", m.String(), "points", len(points))
	return table, points, nil
}

// missingRows produces one NaN-summary row per label for a metric that could
// not be evaluated, so the output table still carries the metric identity.
func missingRows(labels []string, metricName string) []stats.Row {
	nan := math.NaN()
	rows := make([]stats.Row, len(labels))
	for i, label := range labels {
		rows[i] = stats.Row{
			Label:  label,
			Metric: metricName,
			Summary: stats.Summary{
				Mean: nan, SD: nan, SE: nan, Lower: nan, Upper: nan,
			},
		}
	}
	return rows
}

func uniqueAuthors(docs []corpus.Document) []string {
	seen := make(map[string]any, 16)
	authors := make([]string, 0, 16)
	for _, d := range docs {
		if _, exists := seen[d.Author]; !exists {
			seen[d.Author] = nil
			authors = append(authors, d.Author)
		}
	}
	return authors
}
