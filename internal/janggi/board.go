package janggi

const (
	Rows     = 10
	Cols     = 9
	NumCells = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Cell is one board square: empty, or occupied by the piece with a given id.
// The occupant's kind and team are carried alongside the id so movement
// rules can read the board without going back to the rosters.
type Cell struct {
	id   int16
	kind Kind
	team Team
}

// Empty is the unoccupied cell.
var Empty = Cell{kind: KindNone, team: NoTeam}

func occupied(p *Piece) Cell {
	return Cell{id: int16(p.ID), kind: p.Kind, team: p.Team}
}

func (c Cell) IsEmpty() bool { return c.kind == KindNone }

// PieceID returns the id of the occupant, or false for an empty cell.
func (c Cell) PieceID() (int, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	return int(c.id), true
}

func (c Cell) Kind() Kind { return c.kind }

func (c Cell) Team() Team {
	if c.IsEmpty() {
		return NoTeam
	}
	return c.team
}

// Board is the 10x9 occupancy grid. The zero value is not usable; use NewBoard.
type Board struct {
	cells [NumCells]Cell
}

func NewBoard() Board {
	var b Board
	b.Clear()
	return b
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// At returns the cell at c. Off-board coordinates read as empty.
func (b *Board) At(c Coord) Cell {
	if !c.Valid() {
		return Empty
	}
	return b.cells[indexOf(c.Row, c.Col)]
}

func (b *Board) at(row, col int) Cell { return b.cells[indexOf(row, col)] }

func (b *Board) set(c Coord, cell Cell) { b.cells[indexOf(c.Row, c.Col)] = cell }

// palaceTop is the first row of the team's palace.
func palaceTop(t Team) int {
	if t == Blue {
		return 7
	}
	return 0
}

func inPalace(t Team, c Coord) bool {
	if t != Red && t != Blue {
		return false
	}
	top := palaceTop(t)
	return c.Row >= top && c.Row <= top+2 && c.Col >= 3 && c.Col <= 5
}

// palaceOf reports which palace c lies in, if any.
func palaceOf(c Coord) (Team, bool) {
	switch {
	case inPalace(Red, c):
		return Red, true
	case inPalace(Blue, c):
		return Blue, true
	}
	return NoTeam, false
}

func palaceCenter(t Team) Coord {
	return Coord{Row: palaceTop(t) + 1, Col: 4}
}

// onPalaceLine reports whether c is a palace corner or center, the points
// joined by the two diagonal lines.
func onPalaceLine(c Coord) bool {
	t, ok := palaceOf(c)
	if !ok {
		return false
	}
	return (c.Row-palaceTop(t)+c.Col-3)%2 == 0
}

// palaceDiagonal reports whether from and to lie on the same palace diagonal.
// Intermediate cells are not inspected.
func palaceDiagonal(from, to Coord) bool {
	pf, ok := palaceOf(from)
	if !ok {
		return false
	}
	if pt, ok := palaceOf(to); !ok || pt != pf {
		return false
	}
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr == 0 || abs(dr) != abs(dc) {
		return false
	}
	return onPalaceLine(from) && onPalaceLine(to)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
