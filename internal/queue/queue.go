// Package queue provides a bounded max-heap used for nearest-neighbor
// partial selection: push every candidate, keep only the K nearest.
package queue

// Item represents one neighbor candidate.
// Optimized: value-based (no pointers) for cache locality and zero allocations.
type Item struct {
	DistSq float32 // Squared distance from the center vertex
	Index  int32   // Candidate's vertex index within its cell
}

// worse reports whether a is a worse candidate than b: farther away, or at
// equal distance with the higher index. The index tie-break keeps selection
// deterministic across runs, not just within one call.
func worse(a, b Item) bool {
	if a.DistSq != b.DistSq {
		return a.DistSq > b.DistSq
	}
	return a.Index > b.Index
}

// NeighborQueue is a max-heap of candidates keyed by squared distance.
// The root is always the worst retained candidate, so a bounded push can
// evict it in O(log n) when a better one arrives.
type NeighborQueue struct {
	items []Item
}

// New creates a NeighborQueue with the given initial capacity.
func New(capacity int) *NeighborQueue {
	return &NeighborQueue{
		items: make([]Item, 0, capacity),
	}
}

// Len returns the number of retained candidates.
func (q *NeighborQueue) Len() int {
	return len(q.items)
}

// Reset empties the queue while keeping its backing storage.
func (q *NeighborQueue) Reset() {
	q.items = q.items[:0]
}

// PushBounded offers a candidate, retaining at most capacity items.
// When full, the candidate replaces the current worst only if it is better.
func (q *NeighborQueue) PushBounded(it Item, capacity int) {
	if len(q.items) < capacity {
		q.items = append(q.items, it)
		q.siftUp(len(q.items) - 1)
		return
	}

	if worse(q.items[0], it) {
		q.items[0] = it
		q.siftDown(0)
	}
}

// Ascending drains the heap into dst, nearest candidate first, reusing
// dst's backing storage when it is large enough. The queue is empty
// afterwards.
func (q *NeighborQueue) Ascending(dst []Item) []Item {
	n := len(q.items)
	if cap(dst) < n {
		dst = make([]Item, n)
	} else {
		dst = dst[:n]
	}

	// Popping a max-heap yields worst-first; fill dst back to front.
	for i := n - 1; i >= 0; i-- {
		dst[i] = q.items[0]
		last := len(q.items) - 1
		q.items[0] = q.items[last]
		q.items = q.items[:last]
		if last > 0 {
			q.siftDown(0)
		}
	}

	return dst
}

func (q *NeighborQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !worse(q.items[i], q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *NeighborQueue) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		largest := left
		if right := left + 1; right < n && worse(q.items[right], q.items[left]) {
			largest = right
		}
		if !worse(q.items[largest], q.items[i]) {
			return
		}
		q.items[i], q.items[largest] = q.items[largest], q.items[i]
		i = largest
	}
}
