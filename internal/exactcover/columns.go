// Package exactcover translates a 9x9 Sudoku board into rows of the
// Sudoku exact-cover matrix and decodes a Dancing Links solution back
// onto board cells. It has no knowledge of how the matrix is searched;
// that lives in internal/dlx.
package exactcover

const (
	// BoardSize is the width and height of a Sudoku board.
	BoardSize = 9
	// BoxSize is the width and height of a 3x3 box.
	BoxSize = 3
	// Cells is the total number of board cells.
	Cells = BoardSize * BoardSize

	// Unknown is the ASCII byte marking an unfilled cell.
	Unknown = '0'

	cellBlock = 0
	rowBlock  = 81
	colBlock  = 162
	boxBlock  = 243
)

// CellColumn returns the block-0 constraint column for cell (r,c): cell
// (r,c) holds some digit.
func CellColumn(r, c int) int32 {
	return int32(cellBlock + r*BoardSize + c)
}

// RowColumn returns the block-1 constraint column: row r contains digit
// d.
func RowColumn(r, d int) int32 {
	return int32(rowBlock + r*BoardSize + (d - 1))
}

// ColColumn returns the block-2 constraint column: column c contains
// digit d.
func ColColumn(c, d int) int32 {
	return int32(colBlock + c*BoardSize + (d - 1))
}

// BoxColumn returns the block-3 constraint column: 3x3 box b contains
// digit d.
func BoxColumn(b, d int) int32 {
	return int32(boxBlock + b*BoardSize + (d - 1))
}

// Box returns the index of the 3x3 box containing cell (r,c), numbered
// left-to-right, top-to-bottom.
func Box(r, c int) int {
	return (r/BoxSize)*BoxSize + c/BoxSize
}

// RowID returns the exact-cover row id for candidate (r, c, d).
func RowID(r, c, d int) int32 {
	return int32(r*Cells + c*BoardSize + (d - 1))
}

// columnsForCandidate returns the four constraint columns a candidate
// (r, c, d) intersects, in column-block order.
func columnsForCandidate(r, c, d int) [4]int32 {
	box := Box(r, c)
	return [4]int32{
		CellColumn(r, c),
		RowColumn(r, d),
		ColColumn(c, d),
		BoxColumn(box, d),
	}
}
