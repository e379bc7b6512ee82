package janggi

// CanReach reports whether p, standing on from, may move to to on board b.
// It only reads b. Landing on a piece of p's own team is never reachable,
// and neither is from itself (a pass is handled by the game, not the piece).
func (p Piece) CanReach(from, to Coord, b *Board) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if dst := b.At(to); !dst.IsEmpty() && dst.Team() == p.Team {
		return false
	}
	switch p.Kind {
	case Chariot:
		return chariotReach(from, to, b)
	case Horse:
		return horseReach(from, to, b)
	case Elephant:
		return elephantReach(from, to, b)
	case Guard, General:
		return palaceStepReach(p.Team, from, to)
	case Cannon:
		return cannonReach(from, to, b)
	case Soldier:
		return soldierReach(p.Team, from, to)
	}
	return false
}

// between visits the cells strictly between from and to on a straight or
// diagonal line. It stops early when visit returns false.
func between(from, to Coord, b *Board, visit func(Cell) bool) {
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	r, c := from.Row+dr, from.Col+dc
	for r != to.Row || c != to.Col {
		if !visit(b.at(r, c)) {
			return
		}
		r += dr
		c += dc
	}
}

func pathClear(from, to Coord, b *Board) bool {
	open := true
	between(from, to, b, func(cell Cell) bool {
		open = cell.IsEmpty()
		return open
	})
	return open
}

func straight(from, to Coord) bool {
	return (from.Row == to.Row) != (from.Col == to.Col)
}

// Chariot: any distance along a rank or file, or along a palace diagonal,
// with nothing in between.
func chariotReach(from, to Coord, b *Board) bool {
	if !straight(from, to) && !palaceDiagonal(from, to) {
		return false
	}
	return pathClear(from, to, b)
}

// Guard and General: one step inside the own palace, diagonally only along
// the palace lines.
func palaceStepReach(t Team, from, to Coord) bool {
	if !inPalace(t, from) || !inPalace(t, to) {
		return false
	}
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if dr+dc == 1 {
		return true
	}
	return dr == 1 && dc == 1 && palaceDiagonal(from, to)
}

// Cannon: jumps exactly one screen along a rank or file. Neither the screen
// nor the captured piece may be a cannon. Inside a palace it may also jump
// corner to opposite corner over an occupied center.
func cannonReach(from, to Coord, b *Board) bool {
	if b.At(to).Kind() == Cannon {
		return false
	}
	if palaceDiagonal(from, to) && abs(to.Row-from.Row) == 2 {
		t, _ := palaceOf(from)
		screen := b.At(palaceCenter(t))
		return !screen.IsEmpty() && screen.Kind() != Cannon
	}
	if !straight(from, to) {
		return false
	}
	screens := 0
	ok := true
	between(from, to, b, func(cell Cell) bool {
		if cell.IsEmpty() {
			return true
		}
		if cell.Kind() == Cannon {
			ok = false
			return false
		}
		screens++
		return screens <= 1
	})
	return ok && screens == 1
}
