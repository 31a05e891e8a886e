// Package dfm builds sparse document-feature matrices over grouped corpora.
// Rows are document groups, columns are vocabulary terms, cells are counts.
package dfm

import (
	"github.com/jdpolicano/go-corpustat/internal/corpus"
	"github.com/jdpolicano/go-corpustat/internal/text"
)

// Matrix is a sparse term-count matrix with a shared vocabulary index.
type Matrix struct {
	labels []string
	vocab  map[string]int
	rows   []map[int]float64
}

// Build tokenizes each group's combined text and assembles the matrix. Group
// order is preserved so row indices line up with the input.
func Build(groups []corpus.Group) (*Matrix, error) {
	if len(groups) == 0 {
		return nil, corpus.ErrorEmptyCorpus
	}

	m := &Matrix{
		labels: make([]string, len(groups)),
		vocab:  make(map[string]int, 4096),
		rows:   make([]map[int]float64, len(groups)),
	}

	for i, g := range groups {
		m.labels[i] = g.Key.Label()
		words, err := text.ScanWordsFromString(text.StripMarkup(g.Text()))
		if err != nil {
			return nil, err
		}

		row := make(map[int]float64, len(words))
		for _, w := range words {
			id, exists := m.vocab[w]
			if !exists {
				id = len(m.vocab)
				m.vocab[w] = id
			}
			row[id] += 1
		}
		m.rows[i] = row
	}

	return m, nil
}

// Labels returns the row labels in matrix order.
func (m *Matrix) Labels() []string {
	return m.labels
}

// NumTerms reports the vocabulary size.
func (m *Matrix) NumTerms() int {
	return len(m.vocab)
}

// Row materializes the dense count vector for row i over the full vocabulary.
func (m *Matrix) Row(i int) []float64 {
	dense := make([]float64, len(m.vocab))
	for id, cnt := range m.rows[i] {
		dense[id] = cnt
	}
	return dense
}

// BinaryRow materializes row i with counts collapsed to term presence.
func (m *Matrix) BinaryRow(i int) []float64 {
	dense := make([]float64, len(m.vocab))
	for id := range m.rows[i] {
		dense[id] = 1
	}
	return dense
}

// Count returns the raw count of term in row i, 0 when absent.
func (m *Matrix) Count(i int, term string) float64 {
	id, exists := m.vocab[term]
	if !exists {
		return 0
	}
	return m.rows[i][id]
}
