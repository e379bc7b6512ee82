package janggi

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoord converts a square name such as "a1" or "e10" into a Coord.
// Files a..i map to columns 0..8 and ranks 1..10 to rows 0..9.
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	file := s[0]
	if file < 'a' || file >= 'a'+Cols {
		return Coord{}, fmt.Errorf("%w: file %q", ErrInvalidCoord, file)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > Rows || s[1] == '0' || s[1] == '+' {
		return Coord{}, fmt.Errorf("%w: rank %q", ErrInvalidCoord, s[1:])
	}
	return Coord{Row: rank - 1, Col: int(file - 'a')}, nil
}

// MustParseCoord is ParseCoord for constants; it panics on bad input.
func MustParseCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('a'+c.Col)) + strconv.Itoa(c.Row+1)
}

// ParseMove parses "from to" with the two squares separated by whitespace,
// '-' or ','.
func ParseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == ','
	})
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: move %q needs two squares", ErrInvalidCoord, s)
	}
	from, err := ParseCoord(fields[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCoord(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
