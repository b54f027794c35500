// Package workorder holds the per-worker scratch state a Sudoku batch
// solver reuses across every puzzle it claims: one Dancing Links mesh,
// the occupancy masks derived from a puzzle's givens, and a non-owning
// pointer into the shared output buffer.
package workorder

import (
	"github.com/kpitt/sudokubatch/internal/dlx"
	"github.com/kpitt/sudokubatch/internal/exactcover"
)

// Order is created once per worker and reused across every claim; it is
// never allocated per puzzle.
type Order struct {
	Mesh  dlx.Mesh
	Masks exactcover.OccupancyMasks
	Slot  []byte // 81-byte window into the shared output buffer
}

// New allocates a worker's scratch order. Reset must be called before
// the first Solve.
func New() *Order {
	o := &Order{}
	o.Mesh.Reset()
	return o
}

// Reset rebinds the order to a new output slot and clears the mesh and
// masks for a fresh puzzle.
func (o *Order) Reset(slot []byte) {
	o.Masks.Reset()
	o.Mesh.Reset()
	o.Slot = slot
}

// Solve builds the exact-cover matrix for the 81 bytes currently sitting
// in Slot, runs Algorithm X, and on success overwrites Slot in place
// with the solved digits. It reports whether a solution was found and
// how many candidate rows were dropped due to arena exhaustion (always
// 0 for a well-formed 9x9 board).
func (o *Order) Solve() (solved bool, skippedRows int) {
	board := (*[exactcover.Cells]byte)(o.Slot)

	skippedRows = exactcover.BuildRows(&o.Mesh, &o.Masks, board)

	if !o.Mesh.Solve() {
		return false, skippedRows
	}

	exactcover.DecodeSolution(board, o.Mesh.Solution())
	return true, skippedRows
}
