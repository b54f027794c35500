package exactcover

// DecodeSolution writes the digits encoded by rowIDs onto board. Row ids
// come from a Dancing Links solution stack and include both pre-selected
// givens and search-chosen rows; decoding order does not matter since
// every row targets a distinct cell.
func DecodeSolution(board *[Cells]byte, rowIDs []int32) {
	for _, id := range rowIDs {
		d := id%BoardSize + 1
		id /= BoardSize
		c := id % BoardSize
		r := id / BoardSize
		board[int(r)*BoardSize+int(c)] = byte('0' + d)
	}
}
