package scoring

import "github.com/hupe1980/acumesh/mesh"

// minCellSize is the smallest cell worth scoring. Smaller cells cannot form
// a meaningful neighborhood and score 0 without any neighbor work.
const minCellSize = 4

// scoreCell computes the acuteness score for the cell covering vertices
// [start, start+size): for every vertex, count acute angles over every
// unordered pair of its nearest neighbors, then normalize the total by the
// cell's vertex count with truncating integer division.
func scoreCell(s *scratch, vb mesh.VertexBuffer, start, size, k int) int {
	if size < minCellSize {
		return 0
	}

	acuteCount := 0

	for v := 0; v < size; v++ {
		center := vb.Vertex(start + v)
		neighbors := nearestNeighbors(s, vb, start, size, v, k)

		for j := 0; j < len(neighbors); j++ {
			d1 := vb.Vertex(start + int(neighbors[j].Index)).Sub(center)

			for l := j + 1; l < len(neighbors); l++ {
				d2 := vb.Vertex(start + int(neighbors[l].Index)).Sub(center)
				if Acute(d1, d2) {
					acuteCount++
				}
			}
		}
	}

	return acuteCount / size
}
