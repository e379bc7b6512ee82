package janggi

// LegalMoves lists every move of t's pieces that Move would accept if it were
// t's turn and the game were undecided. Passes are not listed. Order is
// placement order of the pieces, then row-major destination order.
func (g *Game) LegalMoves(t Team) []Move {
	if t != Red && t != Blue {
		return nil
	}
	var moves []Move
	for _, p := range g.roster[t] {
		if !g.standing(p) {
			continue
		}
		g.genMoves(p, &moves)
	}
	return moves
}

// LegalMovesFrom lists the legal moves of the piece standing on c.
func (g *Game) LegalMovesFrom(c Coord) []Move {
	id, ok := g.board.At(c).PieceID()
	if !ok {
		return nil
	}
	var moves []Move
	g.genMoves(g.pieces[id], &moves)
	return moves
}

func (g *Game) genMoves(p *Piece, moves *[]Move) {
	from := p.Pos
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			to := Coord{Row: row, Col: col}
			if !p.CanReach(from, to, &g.board) {
				continue
			}
			if g.leavesInCheck(p, to) {
				continue
			}
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
