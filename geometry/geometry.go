// Package geometry defines the boundary to the external triangulation
// engine that produces meshes for scoring. The engine itself lives outside
// this module; this package holds the contract it must satisfy and the
// guarded one-time initialization such engines typically require.
package geometry

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/acumesh/mesh"
)

// Triangulator produces cell topology from a flat point cloud.
// Implementations wrap an external geometry engine and are expected to hand
// back meshes that already satisfy the mesh contract: periodicity resolved,
// duplicate cells eliminated, 3-aligned nondecreasing offsets, and every
// vertex owned by exactly one cell.
type Triangulator interface {
	// Tetrahedralize computes cells for the given flat coordinate sequence
	// (length divisible by 3, coordinates already domain-normalized).
	Tetrahedralize(ctx context.Context, points []float32) (mesh.Mesh, error)
}

// Bootstrap guards process-wide one-time initialization of an external
// geometry engine. The zero value is ready to use.
type Bootstrap struct {
	once sync.Once
	err  error
	done atomic.Bool
}

// Init runs fn at most once per Bootstrap. Every caller, including later
// ones, receives the first run's result; a failed initialization is not
// retried.
func (b *Bootstrap) Init(fn func() error) error {
	b.once.Do(func() {
		b.err = fn()
		if b.err == nil {
			b.done.Store(true)
		}
	})
	return b.err
}

// Initialized reports whether Init has completed successfully.
func (b *Bootstrap) Initialized() bool {
	return b.done.Load()
}

// Default is the process-wide bootstrap shared by engines that only ever
// need a single global initialization.
var Default Bootstrap

// Init initializes the process-wide default bootstrap.
func Init(fn func() error) error {
	return Default.Init(fn)
}

// Initialized reports whether the process-wide default bootstrap completed.
func Initialized() bool {
	return Default.Initialized()
}
