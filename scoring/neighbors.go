package scoring

import (
	"sync"

	"github.com/hupe1980/acumesh/internal/queue"
	"github.com/hupe1980/acumesh/mesh"
)

// scratch holds the per-vertex working set for neighbor selection. It is
// pooled so repeated live scoring calls do not allocate per vertex.
type scratch struct {
	heap      *queue.NeighborQueue
	neighbors []queue.Item
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{
			heap:      queue.New(DefaultK),
			neighbors: make([]queue.Item, 0, DefaultK),
		}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(s *scratch) {
	scratchPool.Put(s)
}

// nearestNeighbors selects up to k nearest other vertices of the cell
// [start, start+size) as seen from the cell-local vertex center, nearest
// first. Indices in the result are cell-local. Distances are squared; on
// exact ties the lower index wins, keeping selection deterministic.
//
// Cells with fewer than k+1 vertices simply yield all others.
func nearestNeighbors(s *scratch, vb mesh.VertexBuffer, start, size, center, k int) []queue.Item {
	s.heap.Reset()
	cv := vb.Vertex(start + center)

	for other := 0; other < size; other++ {
		if other == center {
			continue
		}
		d := vb.Vertex(start + other).Sub(cv).LengthSquared()
		s.heap.PushBounded(queue.Item{DistSq: d, Index: int32(other)}, k)
	}

	s.neighbors = s.heap.Ascending(s.neighbors)
	return s.neighbors
}
