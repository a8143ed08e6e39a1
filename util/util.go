// Package util provides seeded random mesh fixtures for tests and
// benchmarks.
package util

import (
	"math/rand"

	"github.com/hupe1980/acumesh/mesh"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateMesh generates a mesh of numCells cells, each holding between
// minVerts and maxVerts vertices with coordinates in the unit cube.
func (r *RNG) GenerateMesh(numCells, minVerts, maxVerts int) mesh.Mesh {
	cells := make(mesh.CellTable, 0, numCells+1)
	cells = append(cells, 0)

	var vertices mesh.VertexBuffer
	for i := 0; i < numCells; i++ {
		size := minVerts
		if maxVerts > minVerts {
			size += r.rand.Intn(maxVerts - minVerts + 1)
		}
		for v := 0; v < size; v++ {
			vertices = append(vertices, r.rand.Float32(), r.rand.Float32(), r.rand.Float32())
		}
		cells = append(cells, len(vertices))
	}

	return mesh.Mesh{Vertices: vertices, Cells: cells}
}

// GenerateChangedCells picks n distinct cell indices in [0, numCells),
// simulating the dirty list a host editor would hand to the incremental
// pass.
func (r *RNG) GenerateChangedCells(n, numCells int) []int {
	if n > numCells {
		n = numCells
	}
	return r.rand.Perm(numCells)[:n]
}

// PerturbCell nudges every coordinate of cell ci by up to ±scale,
// simulating an interactive edit. The mesh is modified in place.
func (r *RNG) PerturbCell(m mesh.Mesh, ci int, scale float32) {
	start, size := m.Cells.CellRange(ci)
	for i := 3 * start; i < 3*(start+size); i++ {
		m.Vertices[i] += (r.rand.Float32()*2 - 1) * scale
	}
}
