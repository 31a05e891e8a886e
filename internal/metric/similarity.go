// Package metric implements the pairwise similarity/distance measures and
// readability formulas used by the comparison pipelines. Measures are closed
// enumerations bound to pure kernels, so an unsupported name can only enter
// through parsing, never through dispatch.
package metric

import (
	"errors"
	"fmt"
	"math"
)

// ErrorUnsupportedMetric is returned when a metric name is not recognized.
var ErrorUnsupportedMetric = errors.New("unsupported metric")

// Similarity enumerates the supported pairwise measures. The first four are
// normalized similarities (self-comparison is 1), the last two are distances
// (self-comparison is 0).
type Similarity int

const (
	Correlation Similarity = iota
	Cosine
	Dice
	EDice
	Euclidean
	Manhattan
)

// Similarities returns the full supported set in canonical order.
func Similarities() []Similarity {
	return []Similarity{Correlation, Cosine, Dice, EDice, Euclidean, Manhattan}
}

func (s Similarity) String() string {
	switch s {
	case Correlation:
		return "correlation"
	case Cosine:
		return "cosine"
	case Dice:
		return "dice"
	case EDice:
		return "edice"
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// ParseSimilarity maps a metric name to its enum value.
func ParseSimilarity(name string) (Similarity, error) {
	for _, s := range Similarities() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("similarity %q: %w", name, ErrorUnsupportedMetric)
}

// IsDistance reports whether larger values mean less alike.
func (s Similarity) IsDistance() bool {
	return s == Euclidean || s == Manhattan
}

// Identity is the value of comparing a non-degenerate vector with itself.
func (s Similarity) Identity() float64 {
	if s.IsDistance() {
		return 0
	}
	return 1
}

// Compute applies the measure to two equal-length count vectors. Degenerate
// inputs (zero magnitude, zero variance, empty presence sets) yield NaN, the
// pipeline's missing value, never a silent zero.
func (s Similarity) Compute(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	switch s {
	case Correlation:
		return pearson(a, b)
	case Cosine:
		return cosine(a, b)
	case Dice:
		return dice(a, b)
	case EDice:
		return edice(a, b)
	case Euclidean:
		return euclidean(a, b)
	case Manhattan:
		return manhattan(a, b)
	default:
		return math.NaN()
	}
}

func pearson(a, b []float64) float64 {
	n := float64(len(a))
	if n == 0 {
		return math.NaN()
	}
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return math.NaN()
	}
	return cov / denom
}

func cosine(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	denom := math.Sqrt(magA) * math.Sqrt(magB)
	if denom == 0 {
		return math.NaN()
	}
	return dot / denom
}

// dice operates on term presence: 2|A∩B| / (|A|+|B|).
func dice(a, b []float64) float64 {
	var sizeA, sizeB, both float64
	for i := range a {
		inA, inB := a[i] > 0, b[i] > 0
		if inA {
			sizeA++
		}
		if inB {
			sizeB++
		}
		if inA && inB {
			both++
		}
	}
	if sizeA+sizeB == 0 {
		return math.NaN()
	}
	return 2 * both / (sizeA + sizeB)
}

// edice extends dice to counts: 2·Σ min(aᵢ,bᵢ) / Σ (aᵢ+bᵢ).
func edice(a, b []float64) float64 {
	var overlap, total float64
	for i := range a {
		overlap += math.Min(a[i], b[i])
		total += a[i] + b[i]
	}
	if total == 0 {
		return math.NaN()
	}
	return 2 * overlap / total
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
