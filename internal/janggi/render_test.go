package janggi

import (
	"strings"
	"testing"
)

func TestRenderInitial(t *testing.T) {
	want := strings.Join([]string{
		"10  r e h a . a e h r",
		" 9  . . . . k . . . .",
		" 8  . c . . . . . c .",
		" 7  p . p . p . p . p",
		" 6  . . . . . . . . .",
		" 5  . . . . . . . . .",
		" 4  P . P . P . P . P",
		" 3  . C . . . . . C .",
		" 2  . . . . K . . . .",
		" 1  R E H A . A E H R",
		"    a b c d e f g h i",
		"turn: blue  state: UNFINISHED",
		"",
	}, "\n")

	var sb strings.Builder
	if err := NewGame().Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := sb.String(); got != want {
		t.Fatalf("render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderCheck(t *testing.T) {
	g := mustDecode(t, "9/4k4/9/9/8r/9/9/7H1/r8/4K4 b")
	if err := g.Move(sq("i6"), sq("i1")); err != nil {
		t.Fatalf("Move: %v", err)
	}
	var sb strings.Builder
	if err := g.Render(&sb); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(sb.String(), "turn: red (check)  state: UNFINISHED\n") {
		t.Fatalf("status line missing check:\n%s", sb.String())
	}
}
