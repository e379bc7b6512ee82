package janggi

// Horse: one orthogonal step, then one diagonal step outward. The leg cell
// must be empty.
var horseLegMoves = [8]struct {
	Dr, Dc int // destination
	Br, Bc int // leg
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

// Elephant: one orthogonal step, then two diagonal steps outward. Both the
// orthogonal cell and the first diagonal cell must be empty.
var elephantLegMoves = [8]struct {
	Dr, Dc   int // destination
	B1r, B1c int // orthogonal leg
	B2r, B2c int // first diagonal leg
}{
	{-3, -2, -1, 0, -2, -1},
	{-3, +2, -1, 0, -2, +1},
	{-2, -3, 0, -1, -1, -2},
	{-2, +3, 0, +1, -1, +2},
	{+2, -3, 0, -1, +1, -2},
	{+2, +3, 0, +1, +1, +2},
	{+3, -2, +1, 0, +2, -1},
	{+3, +2, +1, 0, +2, +1},
}

func horseReach(from, to Coord, b *Board) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, m := range horseLegMoves {
		if m.Dr != dr || m.Dc != dc {
			continue
		}
		return b.at(from.Row+m.Br, from.Col+m.Bc).IsEmpty()
	}
	return false
}

func elephantReach(from, to Coord, b *Board) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, m := range elephantLegMoves {
		if m.Dr != dr || m.Dc != dc {
			continue
		}
		if !b.at(from.Row+m.B1r, from.Col+m.B1c).IsEmpty() {
			return false // 멱
		}
		return b.at(from.Row+m.B2r, from.Col+m.B2c).IsEmpty()
	}
	return false
}
