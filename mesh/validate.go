package mesh

import "fmt"

// Validate checks the structural contract an upstream geometry engine is
// expected to honor: a 3-aligned vertex buffer and a nondecreasing,
// 3-aligned cell table whose offsets stay inside the buffer. Geometric
// degeneracies (tiny cells, coincident vertices) are not errors; the
// scoring engine resolves those with deterministic fallbacks.
func (m Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("vertex buffer length %d is not divisible by 3", len(m.Vertices))
	}

	if len(m.Cells) == 0 {
		return nil
	}

	prev := m.Cells[0]
	for i, off := range m.Cells {
		if off%3 != 0 {
			return fmt.Errorf("cell offset[%d] = %d is not divisible by 3", i, off)
		}
		if off < prev {
			return fmt.Errorf("cell offset[%d] = %d decreases below %d", i, off, prev)
		}
		prev = off
	}

	if m.Cells[0] < 0 {
		return fmt.Errorf("cell offset[0] = %d is negative", m.Cells[0])
	}
	if last := m.Cells[len(m.Cells)-1]; last > len(m.Vertices) {
		return fmt.Errorf("cell offset[%d] = %d exceeds vertex buffer length %d",
			len(m.Cells)-1, last, len(m.Vertices))
	}

	return nil
}
