package acumesh

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/acumesh/mesh"
	"github.com/hupe1980/acumesh/scoring"
)

// DefaultK is the default neighbor count for nearest-neighbor selection.
const DefaultK = scoring.DefaultK

// Engine computes per-cell acuteness scores. It holds configuration only;
// all scoring state is call-scoped, so an Engine is safe for concurrent use
// as long as each call's mesh is not mutated while the call runs.
type Engine struct {
	opts options
}

// New creates an Engine with the given options.
func New(optFns ...Option) *Engine {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{opts: opts}
}

// K returns the configured neighbor count.
func (e *Engine) K() int {
	return e.opts.k
}

// Score runs a full pass over every cell of m and returns a fresh score
// table in cell order. The mesh is read-only for the duration of the call.
func (e *Engine) Score(ctx context.Context, m mesh.Mesh) (mesh.ScoreTable, error) {
	start := time.Now()

	scores, err := e.score(ctx, m)

	e.opts.metrics.RecordFullPass(m.NumCells(), time.Since(start), err)
	e.opts.logger.LogFullPass(ctx, m.NumCells(), e.opts.k, time.Since(start), err)

	return scores, err
}

func (e *Engine) score(ctx context.Context, m mesh.Mesh) (mesh.ScoreTable, error) {
	if e.opts.validate {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMesh, err)
		}
	}

	if e.opts.numWorkers > 1 {
		return scoring.FullPassParallel(ctx, m, e.opts.k, e.opts.numWorkers)
	}

	return scoring.FullPass(m, e.opts.k), nil
}

// Rescore recomputes only the cells listed in changed, writing into scores
// in place with the identical per-cell routine as Score. The same table is
// returned; entries for unlisted cells are untouched. Changed indices
// outside the cell range are silently skipped, keeping the path robust to
// stale indices from a host editor racing mesh regeneration.
func (e *Engine) Rescore(ctx context.Context, m mesh.Mesh, changed []int, scores mesh.ScoreTable) (mesh.ScoreTable, error) {
	start := time.Now()

	scores, err := e.rescore(m, changed, scores)

	e.opts.metrics.RecordIncremental(len(changed), time.Since(start), err)
	e.opts.logger.LogIncremental(ctx, len(changed), e.opts.k, time.Since(start), err)

	return scores, err
}

func (e *Engine) rescore(m mesh.Mesh, changed []int, scores mesh.ScoreTable) (mesh.ScoreTable, error) {
	if e.opts.validate {
		if err := m.Validate(); err != nil {
			return scores, fmt.Errorf("%w: %v", ErrMalformedMesh, err)
		}
	}

	if len(scores) != m.NumCells() {
		return scores, fmt.Errorf("%w: table has %d entries, mesh has %d cells",
			ErrScoreTableSize, len(scores), m.NumCells())
	}

	return scoring.Update(m, e.opts.k, changed, scores), nil
}
