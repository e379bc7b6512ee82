package janggi

import "testing"

func mustDecode(t *testing.T, code string) *Game {
	t.Helper()
	g, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode(%q): %v", code, err)
	}
	return g
}

func sq(s string) Coord { return MustParseCoord(s) }

func TestCanReach(t *testing.T) {
	const (
		cannonRow      = "9/4k4/9/9/9/9/9/1C2P4/4K4/9 r"
		cannonOnCannon = "9/4k4/9/9/9/9/9/1C2P1c2/4K4/9 r"
		cannonScreen   = "9/4k4/9/9/9/9/9/1C2c4/4K4/9 r"
		twoScreens     = "9/4k4/9/9/9/9/9/1C1PP4/4K4/9 r"
		redLeap        = "9/4k4/9/9/9/9/9/9/4K4/3C5 r"
		blueLeap       = "9/4k4/3c5/9/9/9/9/9/4K4/9 b"
		emptyCenter    = "4k4/9/3C5/9/9/9/9/9/4K4/9 r"
		cannonCenter   = "4k4/4c4/3C5/9/9/9/9/9/4K4/9 r"
		chariotCorner  = "4k4/9/3R5/9/9/9/9/9/4K4/9 r"
		chariotBlocked = "4k4/4a4/3R5/9/9/9/9/9/4K4/9 r"
		chariotEdge    = "4k4/9/4R4/9/9/9/9/9/4K4/9 r"
		redSoldierIn   = "5k3/4P4/9/9/9/9/9/9/4K4/9 r"
		redSoldierCnr  = "4k4/9/3P5/9/9/9/9/9/4K4/9 r"
		redSoldierEdge = "3k5/9/4P4/9/9/9/9/9/4K4/9 r"
		blueSoldierIn  = "4k4/9/9/9/9/9/9/9/4p4/5K3 b"
		guardEdge      = "4k4/9/9/9/9/9/9/9/5K3/4A4 r"
		elephantFree   = "4k4/9/9/9/9/9/9/9/4K4/1E7 r"
		elephantBlock  = "4k4/9/9/9/9/9/9/2P6/4K4/1E7 r"
	)

	tests := []struct {
		name     string
		code     string
		from, to string
		want     bool
	}{
		{"chariot one step", InitialPosition, "a1", "a2", true},
		{"chariot two steps", InitialPosition, "a1", "a3", true},
		{"chariot onto own soldier", InitialPosition, "a1", "a4", false},
		{"chariot through own soldier", InitialPosition, "a1", "a5", false},
		{"chariot onto own elephant", InitialPosition, "a1", "b1", false},
		{"chariot diagonal outside palace", InitialPosition, "a1", "b2", false},
		{"chariot palace center step", chariotCorner, "d8", "e9", true},
		{"chariot palace corner to corner", chariotCorner, "d8", "f10", true},
		{"chariot palace file", chariotCorner, "d8", "d10", true},
		{"chariot palace diagonal blocked", chariotBlocked, "d8", "f10", false},
		{"chariot palace diagonal capture", chariotBlocked, "d8", "e9", true},
		{"chariot off palace line", chariotEdge, "e8", "f9", false},

		{"horse open leg", InitialPosition, "c1", "d3", true},
		{"horse onto own cannon", InitialPosition, "c1", "b3", false},
		{"horse blocked leg", InitialPosition, "c1", "a2", false},
		{"horse not a horse move", InitialPosition, "c1", "c3", false},

		{"elephant open", InitialPosition, "b1", "d4", true},
		{"elephant blocked first leg", InitialPosition, "b1", "e3", false},
		{"elephant onto own soldier", InitialPosition, "g1", "e4", false},
		{"elephant free board", elephantFree, "b1", "d4", true},
		{"elephant blocked diagonal leg", elephantBlock, "b1", "d4", false},

		{"guard step up", InitialPosition, "d1", "d2", true},
		{"guard leaves palace", InitialPosition, "d1", "c2", false},
		{"guard onto own general", InitialPosition, "d1", "e2", false},
		{"guard diagonal off line", guardEdge, "e1", "d2", false},
		{"guard orthogonal", guardEdge, "e1", "e2", true},
		{"guard sideways", guardEdge, "e1", "f1", true},

		{"general diagonal from center", InitialPosition, "e2", "f3", true},
		{"general forward", InitialPosition, "e2", "e3", true},
		{"general leaves palace", InitialPosition, "e2", "e4", false},
		{"general diagonal off line", guardEdge, "f2", "e3", false},
		{"general orthogonal edge", guardEdge, "f2", "f3", true},

		{"cannon without screen", InitialPosition, "b3", "d3", false},
		{"cannon over cannon", InitialPosition, "b3", "b10", false},
		{"cannon one screen", cannonRow, "b3", "f3", true},
		{"cannon one screen far", cannonRow, "b3", "i3", true},
		{"cannon before screen", cannonRow, "b3", "d3", false},
		{"cannon captures cannon", cannonOnCannon, "b3", "g3", false},
		{"cannon screen is cannon", cannonScreen, "b3", "f3", false},
		{"cannon two screens", twoScreens, "b3", "f3", false},
		{"cannon red palace leap", redLeap, "d1", "f3", true},
		{"cannon blue palace leap", blueLeap, "d8", "f10", true},
		{"cannon leap over empty center", emptyCenter, "d8", "f10", false},
		{"cannon leap over cannon", cannonCenter, "d8", "f10", false},
		{"cannon one diagonal step", redLeap, "d1", "e2", false},

		{"red soldier forward", InitialPosition, "a4", "a5", true},
		{"red soldier sideways", InitialPosition, "a4", "b4", true},
		{"red soldier backward", InitialPosition, "a4", "a3", false},
		{"red soldier diagonal outside palace", InitialPosition, "a4", "b5", false},
		{"blue soldier forward", InitialPosition, "a7", "a6", true},
		{"blue soldier backward", InitialPosition, "a7", "a8", false},
		{"soldier palace corner to center", redSoldierCnr, "d8", "e9", true},
		{"soldier palace edge diagonal", redSoldierEdge, "e8", "d9", false},
		{"soldier palace center to corner", redSoldierIn, "e9", "d10", true},
		{"soldier palace forward", redSoldierIn, "e9", "e10", true},
		{"soldier palace backward diagonal", redSoldierIn, "e9", "d8", false},
		{"soldier palace backward", redSoldierIn, "e9", "e8", false},
		{"blue soldier red palace diagonal", blueSoldierIn, "e2", "d1", true},
		{"blue soldier red palace backward diagonal", blueSoldierIn, "e2", "d3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustDecode(t, tt.code)
			from, to := sq(tt.from), sq(tt.to)
			p, ok := g.PieceAt(from)
			if !ok {
				t.Fatalf("no piece on %s in %q", from, tt.code)
			}
			if got := p.CanReach(from, to, &g.board); got != tt.want {
				t.Fatalf("%s CanReach(%s, %s) got=%v want=%v", p, from, to, got, tt.want)
			}
		})
	}
}

func TestCanReachRejectsStandingStill(t *testing.T) {
	g := NewGame()
	for _, team := range []Team{Red, Blue} {
		for _, p := range g.Pieces(team) {
			if p.CanReach(p.Pos, p.Pos, &g.board) {
				t.Fatalf("%s reaches its own cell", p)
			}
		}
	}
}

func TestCanReachIsPure(t *testing.T) {
	for _, code := range []string{
		InitialPosition,
		"4k4/4a4/3R5/9/9/9/9/9/4K4/9 r",
		"9/4k4/9/9/9/9/9/1C2P1c2/4K4/9 r",
	} {
		g := mustDecode(t, code)
		before := g.board
		for _, team := range []Team{Red, Blue} {
			for _, p := range g.Pieces(team) {
				for row := 0; row < Rows; row++ {
					for col := 0; col < Cols; col++ {
						to := Coord{Row: row, Col: col}
						first := p.CanReach(p.Pos, to, &g.board)
						second := p.CanReach(p.Pos, to, &g.board)
						if first != second {
							t.Fatalf("%s CanReach(%s) not deterministic", p, to)
						}
					}
				}
			}
		}
		if g.board != before {
			t.Fatalf("CanReach mutated the board of %q", code)
		}
	}
}
