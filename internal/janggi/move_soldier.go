package janggi

// Soldiers advance toward the enemy: Red up the rows, Blue down.
func soldierForward(t Team) int {
	if t == Red {
		return +1
	}
	if t == Blue {
		return -1
	}
	return 0
}

// Soldier: one step forward or sideways, never back. Inside the enemy palace
// it may also step diagonally forward along the palace lines.
func soldierReach(t Team, from, to Coord) bool {
	fwd := soldierForward(t)
	dr, dc := to.Row-from.Row, to.Col-from.Col

	if dr == fwd && dc == 0 {
		return true
	}
	if dr == 0 && abs(dc) == 1 {
		return true
	}

	enemy := t.Opponent()
	if dr == fwd && abs(dc) == 1 && inPalace(enemy, from) && inPalace(enemy, to) {
		return palaceDiagonal(from, to)
	}
	return false
}
