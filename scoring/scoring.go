// Package scoring implements the cell acuteness engine: bounded
// nearest-neighbor selection within a cell, pairwise angle classification
// and per-cell score aggregation, with a full pass over every cell and an
// incremental pass over a caller-supplied subset.
//
// The package assumes structurally well-formed input (see mesh.Mesh.Validate);
// the acumesh facade validates by default before calling in here.
package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/acumesh/mesh"
)

// DefaultK is the default neighbor count for nearest-neighbor selection.
const DefaultK = 6

// FullPass scores every cell of m sequentially and returns a fresh score
// table in cell order. k values <= 0 fall back to DefaultK.
func FullPass(m mesh.Mesh, k int) mesh.ScoreTable {
	if k <= 0 {
		k = DefaultK
	}

	scores := make(mesh.ScoreTable, m.NumCells())

	s := getScratch()
	defer putScratch(s)

	for i := range scores {
		start, size := m.Cells.CellRange(i)
		scores[i] = scoreCell(s, m.Vertices, start, size, k)
	}

	return scores
}

// FullPassParallel scores cells across at most workers goroutines. Cells
// are independent and each task writes a disjoint range of the score table,
// so no locking is needed. The context is consulted between cells only; a
// cell's computation is never abandoned midway.
func FullPassParallel(ctx context.Context, m mesh.Mesh, k, workers int) (mesh.ScoreTable, error) {
	if k <= 0 {
		k = DefaultK
	}

	n := m.NumCells()
	if workers <= 1 || n <= 1 {
		return FullPass(m, k), nil
	}
	if workers > n {
		workers = n
	}

	scores := make(mesh.ScoreTable, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)

		g.Go(func() error {
			s := getScratch()
			defer putScratch(s)

			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				start, size := m.Cells.CellRange(i)
				scores[i] = scoreCell(s, m.Vertices, start, size, k)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

// Update rescores exactly the cells listed in changed with the same per-cell
// routine as FullPass, writing into scores in place and returning the same
// slice. Entries for unlisted cells are untouched. Indices outside
// [0, NumCells) are skipped, so a host editor racing mesh regeneration
// cannot trip the pass with stale indices.
func Update(m mesh.Mesh, k int, changed []int, scores mesh.ScoreTable) mesh.ScoreTable {
	if k <= 0 {
		k = DefaultK
	}

	n := m.NumCells()

	s := getScratch()
	defer putScratch(s)

	for _, ci := range changed {
		if ci < 0 || ci >= n {
			continue
		}
		start, size := m.Cells.CellRange(ci)
		scores[ci] = scoreCell(s, m.Vertices, start, size, k)
	}

	return scores
}
