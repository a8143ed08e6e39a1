// Package mesh defines the passive data model shared by the scoring engine
// and its collaborators: flat vertex buffers, cell offset tables and score
// tables. All types are plain slices or small value structs; ownership stays
// with the caller for the duration of a scoring call.
package mesh

// VertexBuffer is a flat, ordered sequence of float32 coordinates. Its
// length must be divisible by 3; the triple starting at index 3v is vertex
// v's coordinate.
type VertexBuffer []float32

// Len returns the number of vertices in the buffer.
func (b VertexBuffer) Len() int {
	return len(b) / 3
}

// Vertex returns vertex v's coordinate.
func (b VertexBuffer) Vertex(v int) Vec3 {
	i := 3 * v
	return Vec3{b[i], b[i+1], b[i+2]}
}

// CellTable partitions a VertexBuffer into cells. It holds N+1 float-index
// offsets for N cells, each divisible by 3 and nondecreasing; cell i covers
// vertices [offset[i]/3, offset[i+1]/3).
type CellTable []int

// NumCells returns the number of cells described by the table.
func (t CellTable) NumCells() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// CellRange returns cell i's first vertex index and its vertex count.
func (t CellTable) CellRange(i int) (start, size int) {
	return t[i] / 3, (t[i+1] - t[i]) / 3
}

// ScoreTable holds one acuteness score per cell, index-aligned with the
// CellTable that produced it. After a full pass the caller owns the table;
// incremental passes mutate it in place and never resize it.
type ScoreTable []int

// Mesh bundles a vertex buffer with the cell table partitioning it. Both
// are read-only inputs for the duration of a scoring call.
type Mesh struct {
	Vertices VertexBuffer
	Cells    CellTable
}

// NumCells returns the number of cells in the mesh.
func (m Mesh) NumCells() int {
	return m.Cells.NumCells()
}
