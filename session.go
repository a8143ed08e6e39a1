package acumesh

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/time/rate"

	"github.com/hupe1980/acumesh/mesh"
)

type sessionOptions struct {
	limiter *rate.Limiter
}

// SessionOption configures Session construction.
type SessionOption func(*sessionOptions)

// WithMaxFlushRate caps rescore flushes at perSec per second. Edits keep
// accumulating in the dirty set while flushes are throttled, so nothing is
// lost; a later Flush picks them all up in one pass. perSec <= 0 leaves
// flushing unthrottled.
func WithMaxFlushRate(perSec float64) SessionOption {
	return func(o *sessionOptions) {
		if perSec > 0 {
			o.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

// Session drives the live-editing feedback loop: it owns the score table
// for one mesh, accumulates dirty cell indices between edits, and flushes
// them through the engine's incremental pass, optionally rate-limited so a
// fast editor cannot saturate scoring.
//
// A Session is safe for a UI goroutine marking cells while a timer
// goroutine flushes.
type Session struct {
	mu      sync.Mutex
	engine  *Engine
	mesh    mesh.Mesh
	scores  mesh.ScoreTable
	dirty   *roaring.Bitmap
	limiter *rate.Limiter
}

// NewSession runs an initial full pass over m and returns a live session
// holding its score table.
func NewSession(ctx context.Context, e *Engine, m mesh.Mesh, optFns ...SessionOption) (*Session, error) {
	var opts sessionOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	scores, err := e.Score(ctx, m)
	if err != nil {
		return nil, err
	}

	return &Session{
		engine:  e,
		mesh:    m,
		scores:  scores,
		dirty:   roaring.New(),
		limiter: opts.limiter,
	}, nil
}

// MarkDirty records cells whose vertices changed since the last flush.
// Duplicate and negative indices are absorbed by the dirty set; indices
// beyond the cell range are kept and later skipped by the incremental pass,
// matching its stale-index tolerance.
func (s *Session) MarkDirty(cells ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ci := range cells {
		if ci < 0 {
			continue
		}
		s.dirty.Add(uint32(ci))
	}
}

// Dirty returns the number of cells awaiting a flush.
func (s *Session) Dirty() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int(s.dirty.GetCardinality())
}

// Flush rescores all dirty cells in one incremental pass. It reports false
// without flushing when the dirty set is empty or the flush rate limit has
// not replenished; dirty cells are retained for the next attempt.
func (s *Session) Flush(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirty.IsEmpty() {
		return false, nil
	}
	if s.limiter != nil && !s.limiter.Allow() {
		s.engine.opts.logger.LogSessionFlush(ctx, int(s.dirty.GetCardinality()), false, nil)
		return false, nil
	}

	changed := make([]int, 0, s.dirty.GetCardinality())
	for _, ci := range s.dirty.ToArray() {
		changed = append(changed, int(ci))
	}
	s.dirty.Clear()

	_, err := s.engine.Rescore(ctx, s.mesh, changed, s.scores)
	s.engine.opts.logger.LogSessionFlush(ctx, len(changed), err == nil, err)
	if err != nil {
		// Keep the cells dirty so a later flush can retry them.
		for _, ci := range changed {
			s.dirty.Add(uint32(ci))
		}
		return false, err
	}

	return true, nil
}

// Reset replaces the session's mesh after a topology change and re-runs the
// full pass, discarding any pending dirty cells; their indices would be
// meaningless against the new cell table.
func (s *Session) Reset(ctx context.Context, m mesh.Mesh) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.engine.Score(ctx, m)
	if err != nil {
		return err
	}

	s.mesh = m
	s.scores = scores
	s.dirty.Clear()

	return nil
}

// Scores returns the session's live score table. The slice is mutated in
// place by Flush and Reset; callers must not resize it.
func (s *Session) Scores() mesh.ScoreTable {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scores
}
