package exactcover

import "github.com/kpitt/sudokubatch/internal/dlx"

// BuildRows translates an 81-byte board into candidate rows of the mesh
// and pre-selects any given cells. masks must already be zeroed (the
// caller's work order owns that as part of its per-puzzle reset); mesh
// must already have its column headers freshly linked.
//
// It returns the number of candidate rows silently dropped because the
// node arena was exhausted. That can only happen on a malformed (non
// proper 9x9) board; the caller is expected to log it and let Algorithm
// X report the puzzle unsolvable rather than treat it as fatal.
func BuildRows(mesh *dlx.Mesh, masks *OccupancyMasks, board *[Cells]byte) (skipped int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			ch := board[r*BoardSize+c]
			if ch == Unknown {
				continue
			}
			d := int(ch - '0')
			masks.setRow(r, d)
			masks.setCol(c, d)
			masks.setBox(Box(r, c), d)
		}
	}

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			ch := board[r*BoardSize+c]
			if ch == Unknown {
				skipped += buildCandidates(mesh, masks, r, c)
				continue
			}

			d := int(ch - '0')
			if !addGiven(mesh, r, c, d) {
				skipped++
			}
		}
	}

	return skipped
}

func buildCandidates(mesh *dlx.Mesh, masks *OccupancyMasks, r, c int) (skipped int) {
	box := Box(r, c)
	for d := 1; d <= BoardSize; d++ {
		if masks.hasRow(r, d) || masks.hasCol(c, d) || masks.hasBox(box, d) {
			continue
		}
		if !mesh.AddRow(RowID(r, c, d), columnsForCandidate(r, c, d)) {
			skipped++
		}
	}
	return skipped
}

// addGiven appends the candidate row for a given cell and immediately
// pre-selects it: the row id is pushed straight onto the solution stack
// and each of its four columns is covered, guarded by IsColumnLinked so
// a column is never covered twice.
func addGiven(mesh *dlx.Mesh, r, c, d int) bool {
	cols := columnsForCandidate(r, c, d)
	rowID := RowID(r, c, d)
	if !mesh.AddRow(rowID, cols) {
		return false
	}

	mesh.PushGiven(rowID)
	for _, col := range cols {
		if mesh.IsColumnLinked(col) {
			mesh.Cover(col)
		}
	}
	return true
}
