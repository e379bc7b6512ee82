package janggi

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render writes the board with rank 10 at the top and file letters below.
// Red pieces are upper case, Blue lower case, empty cells '.'.
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for row := Rows - 1; row >= 0; row-- {
		fmt.Fprintf(bw, "%2d ", row+1)
		for col := 0; col < Cols; col++ {
			bw.WriteByte(' ')
			bw.WriteRune(b.at(row, col).Letter())
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("   ")
	for col := 0; col < Cols; col++ {
		bw.WriteByte(' ')
		bw.WriteByte(byte('a' + col))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func (b Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}

// Render writes the board followed by the team to move and the result.
func (g *Game) Render(w io.Writer) error {
	if err := g.board.Render(w); err != nil {
		return err
	}
	status := ""
	if g.state == Unfinished && g.IsInCheck(g.turn) {
		status = " (check)"
	}
	_, err := fmt.Fprintf(w, "turn: %s%s  state: %s\n", g.turn, status, g.state)
	return err
}
