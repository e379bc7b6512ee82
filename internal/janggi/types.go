package janggi

import "fmt"

type Team int8

const (
	NoTeam Team = -1
	Red    Team = 0
	Blue   Team = 1
)

// Opponent returns the other team; NoTeam has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoTeam
}

func (t Team) String() string {
	switch t {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	Chariot       // 車
	Horse         // 馬
	Elephant      // 象
	Guard         // 士
	General       // 將 / 漢 / 楚
	Cannon        // 包
	Soldier       // 卒 / 兵
)

var kindNames = [...]string{
	KindNone: "none",
	Chariot:  "chariot",
	Horse:    "horse",
	Elephant: "elephant",
	Guard:    "guard",
	General:  "general",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int8(k))
	}
	return kindNames[k]
}

// Coord is a board coordinate. Row 0 is rank 1 (Red's back rank), column 0 is file a.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) Valid() bool { return onBoard(c.Row, c.Col) }

// Piece is a live or captured piece. ID is stable for the whole game.
type Piece struct {
	ID   int   `json:"id"`
	Kind Kind  `json:"kind"`
	Team Team  `json:"team"`
	Pos  Coord `json:"pos"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Team, p.Kind, p.Pos)
}

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string { return m.From.String() + "-" + m.To.String() }

// Result is the game outcome. Once it leaves Unfinished it never changes again.
type Result int8

const (
	Unfinished Result = iota
	RedWon
	BlueWon
)

func (r Result) String() string {
	switch r {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	}
	return "UNFINISHED"
}

func wonBy(t Team) Result {
	if t == Red {
		return RedWon
	}
	return BlueWon
}
