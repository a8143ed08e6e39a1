package acumesh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/acumesh/mesh"
	"github.com/hupe1980/acumesh/util"
)

func unitSquare() mesh.Mesh {
	return mesh.Mesh{
		Vertices: mesh.VertexBuffer{
			0, 0, 0,
			1, 0, 0,
			0, 1, 0,
			1, 1, 0,
		},
		Cells: mesh.CellTable{0, 12},
	}
}

func TestEngineScore(t *testing.T) {
	ctx := context.Background()
	e := New()

	scores, err := e.Score(ctx, unitSquare())
	require.NoError(t, err)
	assert.Equal(t, mesh.ScoreTable{2}, scores)
}

func TestEngineScoreParallel(t *testing.T) {
	ctx := context.Background()
	m := util.NewRNG(9).GenerateMesh(120, 2, 10)

	want, err := New().Score(ctx, m)
	require.NoError(t, err)

	got, err := New(WithNumWorkers(4)).Score(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEngineScoreMalformedMesh(t *testing.T) {
	ctx := context.Background()
	m := mesh.Mesh{
		Vertices: make(mesh.VertexBuffer, 12),
		Cells:    mesh.CellTable{0, 7},
	}

	_, err := New().Score(ctx, m)
	assert.ErrorIs(t, err, ErrMalformedMesh)

	_, err = New().Rescore(ctx, m, []int{0}, mesh.ScoreTable{0})
	assert.ErrorIs(t, err, ErrMalformedMesh)
}

func TestEngineRescore(t *testing.T) {
	ctx := context.Background()
	e := New()
	m := unitSquare()

	scores := mesh.ScoreTable{-1}
	got, err := e.Rescore(ctx, m, []int{0}, scores)
	require.NoError(t, err)
	assert.Equal(t, mesh.ScoreTable{2}, got)
	assert.Same(t, &scores[0], &got[0])
}

func TestEngineRescoreOutOfRangeNoop(t *testing.T) {
	ctx := context.Background()
	m := util.NewRNG(2).GenerateMesh(2, 4, 4)

	scores, err := New().Rescore(ctx, m, []int{7}, mesh.ScoreTable{2, 5})
	require.NoError(t, err)
	assert.Equal(t, mesh.ScoreTable{2, 5}, scores)
}

func TestEngineRescoreTableSizeMismatch(t *testing.T) {
	ctx := context.Background()

	_, err := New().Rescore(ctx, unitSquare(), []int{0}, mesh.ScoreTable{1, 2})
	assert.ErrorIs(t, err, ErrScoreTableSize)
}

func TestEngineWithoutValidation(t *testing.T) {
	ctx := context.Background()
	e := New(WithoutValidation())

	// Structurally valid mesh still scores correctly with the check off.
	scores, err := e.Score(ctx, unitSquare())
	require.NoError(t, err)
	assert.Equal(t, mesh.ScoreTable{2}, scores)
}

func TestEngineOptions(t *testing.T) {
	assert.Equal(t, DefaultK, New().K())
	assert.Equal(t, 4, New(WithK(4)).K())
	assert.Equal(t, DefaultK, New(WithK(0)).K(), "non-positive k falls back to default")
	assert.Equal(t, DefaultK, New(WithK(-2)).K())
}

func TestEngineMetrics(t *testing.T) {
	ctx := context.Background()
	mc := &BasicMetricsCollector{}
	e := New(WithMetricsCollector(mc))
	m := unitSquare()

	scores, err := e.Score(ctx, m)
	require.NoError(t, err)

	_, err = e.Rescore(ctx, m, []int{0}, scores)
	require.NoError(t, err)

	_, err = e.Score(ctx, mesh.Mesh{Vertices: make(mesh.VertexBuffer, 4), Cells: mesh.CellTable{0, 3}})
	require.Error(t, err)

	assert.Equal(t, int64(2), mc.FullPassCount.Load())
	assert.Equal(t, int64(1), mc.FullPassErrors.Load())
	assert.Equal(t, int64(1), mc.IncrementalCount.Load())
	assert.Equal(t, int64(0), mc.IncrementalErrors.Load())
	assert.Equal(t, int64(1), mc.IncrementalCells.Load())
}
