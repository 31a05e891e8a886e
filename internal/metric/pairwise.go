package metric

import (
	"errors"
	"fmt"

	"github.com/jdpolicano/go-corpustat/internal/dfm"
)

// ErrorReferenceNotFound is returned when the distinguished reference label
// is absent from a pairwise matrix.
var ErrorReferenceNotFound = errors.New("reference label not found in matrix")

// Pairwise is a square score matrix keyed by group label on both axes.
// Similarities are symmetric; distances are too for the supported set, but
// the full matrix is materialized rather than half of it because the inputs
// are tiny.
type Pairwise struct {
	Metric Similarity
	Labels []string
	Values [][]float64
}

// ScoredLabel pairs a group label with its score against the reference.
type ScoredLabel struct {
	Label string
	Value float64
}

// ComputePairwise evaluates the measure between every pair of matrix rows.
func ComputePairwise(m *dfm.Matrix, s Similarity) *Pairwise {
	labels := m.Labels()
	n := len(labels)

	dense := make([][]float64, n)
	for i := 0; i < n; i++ {
		dense[i] = m.Row(i)
	}

	values := make([][]float64, n)
	for i := 0; i < n; i++ {
		values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			values[i][j] = s.Compute(dense[i], dense[j])
		}
	}

	return &Pairwise{
		Metric: s,
		Labels: append([]string(nil), labels...),
		Values: values,
	}
}

// ReferenceRow selects the row for the reference label and drops the
// self-comparison entry, preserving the remaining labels in matrix order.
func (p *Pairwise) ReferenceRow(ref string) ([]ScoredLabel, error) {
	refIdx := -1
	for i, label := range p.Labels {
		if label == ref {
			refIdx = i
			break
		}
	}
	if refIdx < 0 {
		return nil, fmt.Errorf("label %q: %w", ref, ErrorReferenceNotFound)
	}

	row := make([]ScoredLabel, 0, len(p.Labels)-1)
	for j, label := range p.Labels {
		if j == refIdx {
			continue
		}
		row = append(row, ScoredLabel{Label: label, Value: p.Values[refIdx][j]})
	}
	return row, nil
}
