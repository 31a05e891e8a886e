// Package stats aggregates labeled scores into per-group summary rows with
// normal-approximation confidence intervals.
package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrorUndefinedStatistic is returned when a caller demands a defined SD/CI
// from a sample too small to have one.
var ErrorUndefinedStatistic = errors.New("statistic undefined for sample size < 2")

// zCritical is the two-sided 95% critical value of the standard normal.
const zCritical = 1.96

// Summary holds the per-group aggregate statistics. SD, SE, and the CI
// bounds are NaN when the sample has fewer than two defined values; they are
// never coerced to zero.
type Summary struct {
	Mean  float64
	SD    float64
	Count int
	SE    float64
	Lower float64
	Upper float64
}

// Defined reports whether the confidence interval exists for this sample.
func (s Summary) Defined() bool {
	return !math.IsNaN(s.SD)
}

// Interval returns the CI bounds, or ErrorUndefinedStatistic when the sample
// was too small to define them.
func (s Summary) Interval() (float64, float64, error) {
	if !s.Defined() {
		return 0, 0, ErrorUndefinedStatistic
	}
	return s.Lower, s.Upper, nil
}

// Summarize computes mean, sample SD (N−1 denominator), SE = SD/√N, and the
// 95% CI. NaN inputs are dropped before summarizing; a sample with no defined
// values yields an all-NaN summary with Count 0.
func Summarize(values []float64) Summary {
	defined := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}

	n := len(defined)
	if n == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, SD: nan, SE: nan, Lower: nan, Upper: nan}
	}

	var sum float64
	for _, v := range defined {
		sum += v
	}
	mean := sum / float64(n)

	if n < 2 {
		nan := math.NaN()
		return Summary{Mean: mean, SD: nan, Count: n, SE: nan, Lower: nan, Upper: nan}
	}

	var sq float64
	for _, v := range defined {
		d := v - mean
		sq += d * d
	}
	sd := math.Sqrt(sq / float64(n-1))
	se := sd / math.Sqrt(float64(n))

	return Summary{
		Mean:  mean,
		SD:    sd,
		Count: n,
		SE:    se,
		Lower: mean - zCritical*se,
		Upper: mean + zCritical*se,
	}
}

// Observation is one labeled score feeding the aggregator.
type Observation struct {
	Label string
	Value float64
}

// Row is one line of the long-format result table: a (group, metric) pair
// with its summary.
type Row struct {
	Label  string
	Metric string
	Summary
}

// Table is an immutable long-format collection of aggregate rows. Append
// returns a new table, so repeated pipeline passes fold rather than mutate.
type Table struct {
	rows []Row
}

// Rows returns the accumulated rows. Callers must not mutate the slice.
func (t Table) Rows() []Row {
	return t.rows
}

// Append returns a new table extended with rows; the receiver is unchanged.
func (t Table) Append(rows ...Row) Table {
	combined := make([]Row, 0, len(t.rows)+len(rows))
	combined = append(combined, t.rows...)
	combined = append(combined, rows...)
	return Table{combined}
}

// Metrics returns the distinct metric names present, sorted.
func (t Table) Metrics() []string {
	seen := make(map[string]any)
	names := make([]string, 0, 8)
	for _, r := range t.rows {
		if _, exists := seen[r.Metric]; !exists {
			seen[r.Metric] = nil
			names = append(names, r.Metric)
		}
	}
	sort.Strings(names)
	return names
}

// Select returns the rows for one metric, sorted by label.
func (t Table) Select(metric string) []Row {
	rows := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if r.Metric == metric {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}

// Aggregate groups observations by label and produces one row per (label,
// metric) pair, sorted by label.
func Aggregate(obs []Observation, metric string) []Row {
	byLabel := make(map[string][]float64)
	for _, o := range obs {
		byLabel[o.Label] = append(byLabel[o.Label], o.Value)
	}

	rows := make([]Row, 0, len(byLabel))
	for label, values := range byLabel {
		rows = append(rows, Row{
			Label:   label,
			Metric:  metric,
			Summary: Summarize(values),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}
