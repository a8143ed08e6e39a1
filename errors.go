package acumesh

import "errors"

// ErrMalformedMesh is returned when a mesh violates the structural
// contract: offsets not nondecreasing, not 3-aligned, or out of bounds.
// Well-formedness is the caller's responsibility; validation exists to turn
// an out-of-bounds read into a diagnosable error and can be disabled with
// WithoutValidation.
var ErrMalformedMesh = errors.New("acumesh: malformed mesh")

// ErrScoreTableSize is returned by Rescore when the supplied score table is
// not index-aligned with the mesh's cell table.
var ErrScoreTableSize = errors.New("acumesh: score table size mismatch")
