package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdpolicano/go-corpustat/internal/corpus"
	"github.com/jdpolicano/go-corpustat/internal/dfm"
)

func toyMatrix(t *testing.T) *dfm.Matrix {
	t.Helper()
	groups := []corpus.Group{
		{Key: corpus.GroupKey{Author: "alice"}, Documents: []corpus.Document{
			{Author: "alice", Text: "economy budget tax"},
		}},
		{Key: corpus.GroupKey{Author: "bob"}, Documents: []corpus.Document{
			{Author: "bob", Text: "football cricket rugby"},
		}},
		{Key: corpus.GroupKey{Author: "pm"}, Documents: []corpus.Document{
			{Author: "pm", Text: "economy budget tax"},
		}},
	}
	m, err := dfm.Build(groups)
	require.NoError(t, err)
	return m
}

func TestComputePairwiseDiagonal(t *testing.T) {
	m := toyMatrix(t)
	for _, s := range Similarities() {
		p := ComputePairwise(m, s)
		for i := range p.Labels {
			assert.InDelta(t, s.Identity(), p.Values[i][i], 1e-12,
				"%s diagonal at %s", s.String(), p.Labels[i])
		}
	}
}

func TestReferenceRowExcludesReference(t *testing.T) {
	p := ComputePairwise(toyMatrix(t), Cosine)

	row, err := p.ReferenceRow("pm")
	require.NoError(t, err)
	require.Len(t, row, 2)

	assert.Equal(t, "alice", row[0].Label)
	assert.Equal(t, "bob", row[1].Label)

	// alice shares pm's exact term distribution; bob shares nothing.
	assert.InDelta(t, 1, row[0].Value, 1e-12)
	assert.InDelta(t, 0, row[1].Value, 1e-12)
}

func TestReferenceRowNotFound(t *testing.T) {
	p := ComputePairwise(toyMatrix(t), Cosine)
	_, err := p.ReferenceRow("nobody")
	assert.ErrorIs(t, err, ErrorReferenceNotFound)
}
