package janggi

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// InitialPosition is the standard layout: ranks 10 down to 1, Blue to move.
const InitialPosition = "reha1aehr/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/REHA1AEHR b"

var letterToKind = map[rune]Kind{
	'r': Chariot,
	'h': Horse,
	'e': Elephant,
	'a': Guard,
	'k': General,
	'c': Cannon,
	'p': Soldier,
}

// Per-team piece limits of a full set.
var kindLimit = map[Kind]int{
	Chariot:  2,
	Horse:    2,
	Elephant: 2,
	Guard:    2,
	General:  1,
	Cannon:   2,
	Soldier:  5,
}

var kindLetters = [...]rune{
	KindNone: '.',
	Chariot:  'r',
	Horse:    'h',
	Elephant: 'e',
	Guard:    'a',
	General:  'k',
	Cannon:   'c',
	Soldier:  'p',
}

// Letter returns the position-code letter: upper case Red, lower case Blue.
func (c Cell) Letter() rune {
	if c.IsEmpty() {
		return '.'
	}
	if c.kind < 0 || int(c.kind) >= len(kindLetters) {
		return '?'
	}
	if c.team == Red {
		return unicode.ToUpper(kindLetters[c.kind])
	}
	return kindLetters[c.kind]
}

func teamLetter(t Team) byte {
	if t == Red {
		return 'r'
	}
	return 'b'
}

// Encode writes the position code: ten ranks from rank 10 down to rank 1
// separated by '/', digits for runs of empty cells, then the team to move.
func (g *Game) Encode() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		if row < Rows-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < Cols; col++ {
			cell := g.board.at(row, col)
			if cell.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(cell.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(teamLetter(g.turn))
	return sb.String()
}

// Decode builds a game from a position code. A code whose side to move is
// already mated decodes as a finished game.
func Decode(code string, opts ...Option) (*Game, error) {
	parts := strings.Fields(code)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want ranks and side, got %d fields", ErrInvalidPosition, len(parts))
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Rows {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidPosition, Rows, len(ranks))
	}

	g := newGame(opts)
	switch parts[1] {
	case "r":
		g.turn = Red
	case "b":
		g.turn = Blue
	default:
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidPosition, parts[1])
	}

	var counts [2]map[Kind]int
	counts[Red], counts[Blue] = map[Kind]int{}, map[Kind]int{}
	for i, rank := range ranks {
		row := Rows - 1 - i
		col := 0
		for _, ch := range rank {
			if col >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidPosition, row+1)
			}
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			k, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidPosition, ch)
			}
			t := Blue
			if unicode.IsUpper(ch) {
				t = Red
			}
			c := Coord{Row: row, Col: col}
			if (k == General || k == Guard) && !inPalace(t, c) {
				return nil, fmt.Errorf("%w: %s %s outside its palace at %s", ErrInvalidPosition, t, k, c)
			}
			counts[t][k]++
			if counts[t][k] > kindLimit[k] {
				return nil, fmt.Errorf("%w: too many %s %s", ErrInvalidPosition, t, k)
			}
			g.place(t, k, c)
			col++
		}
		if col != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidPosition, row+1, col)
		}
	}
	for _, t := range []Team{Red, Blue} {
		if counts[t][General] != 1 {
			return nil, fmt.Errorf("%w: %s has no general", ErrInvalidPosition, t)
		}
	}

	g.orderRosters()
	g.sync()
	if g.IsCheckmate(g.turn) {
		g.state = wonBy(g.turn.Opponent())
	}
	return g, nil
}

// orderRosters puts each roster in row-major order of the pieces' cells.
func (g *Game) orderRosters() {
	for _, live := range g.roster {
		slices.SortFunc(live, func(a, b *Piece) int {
			return cmp.Compare(indexOf(a.Pos.Row, a.Pos.Col), indexOf(b.Pos.Row, b.Pos.Col))
		})
	}
}
