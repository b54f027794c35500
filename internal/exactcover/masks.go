package exactcover

// OccupancyMasks tracks, per row/column/box, which digits a puzzle's
// given cells already fixed before any search begins. Bit d of a mask
// means "digit d is already present"; bit 0 is always unused.
type OccupancyMasks struct {
	Row [BoardSize]uint16
	Col [BoardSize]uint16
	Box [BoardSize]uint16
}

// Reset clears all three masks for reuse on the next puzzle.
func (m *OccupancyMasks) Reset() {
	*m = OccupancyMasks{}
}

func (m *OccupancyMasks) setRow(r, d int) { m.Row[r] |= 1 << uint(d) }
func (m *OccupancyMasks) setCol(c, d int) { m.Col[c] |= 1 << uint(d) }
func (m *OccupancyMasks) setBox(b, d int) { m.Box[b] |= 1 << uint(d) }

func (m *OccupancyMasks) hasRow(r, d int) bool { return m.Row[r]&(1<<uint(d)) != 0 }
func (m *OccupancyMasks) hasCol(c, d int) bool { return m.Col[c]&(1<<uint(d)) != 0 }
func (m *OccupancyMasks) hasBox(b, d int) bool { return m.Box[b]&(1<<uint(d)) != 0 }
