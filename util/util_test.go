package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMesh(t *testing.T) {
	m := NewRNG(1).GenerateMesh(10, 4, 8)

	require.NoError(t, m.Validate())
	assert.Equal(t, 10, m.NumCells())

	for i := 0; i < m.NumCells(); i++ {
		_, size := m.Cells.CellRange(i)
		assert.GreaterOrEqual(t, size, 4)
		assert.LessOrEqual(t, size, 8)
	}
}

func TestGenerateMeshDeterministic(t *testing.T) {
	a := NewRNG(7).GenerateMesh(5, 4, 6)
	b := NewRNG(7).GenerateMesh(5, 4, 6)

	assert.Equal(t, a, b)
}

func TestGenerateChangedCells(t *testing.T) {
	changed := NewRNG(3).GenerateChangedCells(4, 10)

	require.Len(t, changed, 4)
	seen := map[int]bool{}
	for _, ci := range changed {
		assert.GreaterOrEqual(t, ci, 0)
		assert.Less(t, ci, 10)
		assert.False(t, seen[ci])
		seen[ci] = true
	}
}

func TestPerturbCell(t *testing.T) {
	rng := NewRNG(5)
	m := rng.GenerateMesh(3, 4, 4)

	before := append([]float32(nil), m.Vertices...)
	rng.PerturbCell(m, 1, 0.1)

	start, size := m.Cells.CellRange(1)
	changed := false
	for i := range m.Vertices {
		inCell := i >= 3*start && i < 3*(start+size)
		if !inCell {
			assert.Equal(t, before[i], m.Vertices[i])
		} else if before[i] != m.Vertices[i] {
			changed = true
		}
	}
	assert.True(t, changed)
}
