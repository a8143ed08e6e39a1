// Package acumesh provides live per-cell acuteness scoring for interactively
// edited volumetric meshes.
//
// For each topological cell, the engine produces a single integer score
// summarizing how many locally sharp (acute) angles occur among each
// vertex's nearest geometric neighbors inside that cell. Scoring stays
// responsive at interactive rates for meshes of hundreds to thousands of
// cells via an incremental dirty-cell-only rescoring path.
//
// # Quick Start
//
// Full pass:
//
//	ctx := context.Background()
//	e := acumesh.New(acumesh.WithK(6))
//	scores, _ := e.Score(ctx, m)          // one int per cell
//
// Incremental pass after an edit (mutates scores in place):
//
//	scores, _ = e.Rescore(ctx, m, changedCells, scores)
//
// Live editing session with dirty-set coalescing and throttled flushes:
//
//	s, _ := acumesh.NewSession(ctx, e, m, acumesh.WithMaxFlushRate(30))
//	s.MarkDirty(5, 9)
//	flushed, _ := s.Flush(ctx)
//
// # Mesh Contract
//
// Vertex buffers are flat []float32 triples; cell tables are nondecreasing,
// 3-aligned offsets partitioning the buffer, with every vertex owned by
// exactly one cell. An upstream triangulation engine (see the geometry
// package) is responsible for producing well-formed meshes; Score and
// Rescore fail fast with ErrMalformedMesh on structural violations unless
// WithoutValidation is set.
//
// Geometric degeneracies are never errors: cells with fewer than 4 vertices
// score 0, zero-length displacement vectors classify as acute, and tied
// neighbor distances resolve deterministically to the lower vertex index.
package acumesh
