package janggi

// General returns a copy of the team's general, if it is still on the board.
func (g *Game) General(t Team) (Piece, bool) {
	p := g.general(t)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (g *Game) general(t Team) *Piece {
	if t != Red && t != Blue {
		return nil
	}
	for _, p := range g.roster[t] {
		if p.Kind == General && g.standing(p) {
			return p
		}
	}
	return nil
}

// standing reports whether p is the occupant of its own cell. A piece that
// a provisional move has landed on is still in its roster but not standing.
func (g *Game) standing(p *Piece) bool {
	id, ok := g.board.At(p.Pos).PieceID()
	return ok && id == p.ID
}

// IsAttacked reports whether any standing piece of bySide can reach c.
func (g *Game) IsAttacked(c Coord, bySide Team) bool {
	if bySide != Red && bySide != Blue {
		return false
	}
	for _, p := range g.roster[bySide] {
		if !g.standing(p) {
			continue
		}
		if p.CanReach(p.Pos, c, &g.board) {
			return true
		}
	}
	return false
}

// IsInCheck reports whether t's general can be reached by an opposing piece.
// A team without a general is not in check.
func (g *Game) IsInCheck(t Team) bool {
	gen := g.general(t)
	if gen == nil {
		return false
	}
	return g.IsAttacked(gen.Pos, t.Opponent())
}

// IsCheckmate reports whether t is in check and no move of any of its pieces
// gets it out. Every live piece is tried against every cell in row-major
// order; each probe is rolled back before the next, so the position is
// unchanged when IsCheckmate returns.
func (g *Game) IsCheckmate(t Team) bool {
	if !g.IsInCheck(t) {
		return false
	}
	for _, p := range g.roster[t] {
		if !g.standing(p) {
			continue
		}
		if g.hasEscape(p) {
			return false
		}
	}
	return true
}

func (g *Game) hasEscape(p *Piece) bool {
	from := p.Pos
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			to := Coord{Row: row, Col: col}
			if !p.CanReach(from, to, &g.board) {
				continue
			}
			if !g.leavesInCheck(p, to) {
				return true
			}
		}
	}
	return false
}

// leavesInCheck tries p on to and reports whether p's team is then in check.
func (g *Game) leavesInCheck(p *Piece, to Coord) bool {
	u := g.relocate(p, to)
	inCheck := g.IsInCheck(p.Team)
	g.restore(u)
	return inCheck
}
