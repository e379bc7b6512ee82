package janggi

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game owns the pieces, the board, the turn and the result. It is not safe
// for concurrent use; callers that share a game serialise access themselves.
type Game struct {
	id     string
	board  Board
	pieces []*Piece    // every piece ever placed, indexed by ID
	roster [2][]*Piece // live pieces per team, in placement order
	turn   Team
	state  Result
	logger *zap.Logger
}

type Option func(*Game)

// WithLogger sets the logger used for move diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithID overrides the generated game id.
func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}

// NewGame returns a game in the standard starting layout with Blue to move.
func NewGame(opts ...Option) *Game {
	g, err := Decode(InitialPosition, opts...)
	if err != nil {
		panic("janggi: initial position does not decode: " + err.Error())
	}
	return g
}

func newGame(opts []Option) *Game {
	g := &Game{
		id:     uuid.NewString(),
		board:  NewBoard(),
		turn:   Blue,
		state:  Unfinished,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game_id", g.id))
	return g
}

func (g *Game) place(t Team, k Kind, c Coord) *Piece {
	p := &Piece{ID: len(g.pieces), Kind: k, Team: t, Pos: c}
	g.pieces = append(g.pieces, p)
	g.roster[t] = append(g.roster[t], p)
	return p
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Turn() Team    { return g.turn }
func (g *Game) State() Result { return g.state }
func (g *Game) Board() Board  { return g.board }

// GetGameState is State under the name the rules driver expects.
func (g *Game) GetGameState() Result { return g.state }

// PieceAt returns a copy of the piece on c.
func (g *Game) PieceAt(c Coord) (Piece, bool) {
	id, ok := g.board.At(c).PieceID()
	if !ok {
		return Piece{}, false
	}
	return *g.pieces[id], true
}

// Pieces returns copies of the team's live pieces.
func (g *Game) Pieces(t Team) []Piece {
	if t != Red && t != Blue {
		return nil
	}
	out := make([]Piece, len(g.roster[t]))
	for i, p := range g.roster[t] {
		out[i] = *p
	}
	return out
}

// MakeMove moves the piece on from to to on behalf of the team to move and
// reports whether the move was accepted. from == to is a pass.
func (g *Game) MakeMove(from, to Coord) bool {
	return g.Move(from, to) == nil
}

// Move is MakeMove with the rejection reason. A rejected move changes nothing.
func (g *Game) Move(from, to Coord) error {
	if err := g.move(from, to); err != nil {
		g.logger.Debug("move rejected",
			zap.Stringer("team", g.turn),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.NamedError("reason", err),
		)
		return err
	}
	return nil
}

func (g *Game) move(from, to Coord) error {
	if !from.Valid() || !to.Valid() {
		return ErrOffBoard
	}
	src := g.board.At(from)
	if src.IsEmpty() {
		return ErrNoPiece
	}
	if src.Team() != g.turn {
		return ErrNotYourTurn
	}
	if g.state != Unfinished {
		return ErrGameOver
	}

	mover := g.turn
	if from == to {
		if g.IsInCheck(mover) {
			return ErrPassInCheck
		}
		g.logger.Debug("pass", zap.Stringer("team", mover))
		g.endTurn(mover)
		return nil
	}

	if dst := g.board.At(to); !dst.IsEmpty() && dst.Team() == mover {
		return ErrOwnPiece
	}
	id, _ := src.PieceID()
	p := g.pieces[id]
	if !p.CanReach(from, to, &g.board) {
		return ErrUnreachable
	}

	u := g.relocate(p, to)
	if g.IsInCheck(mover) {
		g.restore(u)
		return ErrSelfCheck
	}
	g.commit(u)
	g.endTurn(mover)
	return nil
}

// undo records what a provisional relocation overwrote.
type undo struct {
	piece    *Piece
	from, to Coord
	captured Cell
}

// relocate moves p to to on the board and on the piece, without touching the
// rosters. A piece standing on to is hidden by the mover until restore.
func (g *Game) relocate(p *Piece, to Coord) undo {
	u := undo{piece: p, from: p.Pos, to: to, captured: g.board.At(to)}
	g.board.set(u.from, Empty)
	g.board.set(to, occupied(p))
	p.Pos = to
	return u
}

func (g *Game) restore(u undo) {
	u.piece.Pos = u.from
	g.board.set(u.to, u.captured)
	g.board.set(u.from, occupied(u.piece))
}

// commit turns a provisional relocation into a real move: the captured piece,
// if any, leaves its roster and the board is resynchronised.
func (g *Game) commit(u undo) {
	if id, ok := u.captured.PieceID(); ok {
		g.removeFromRoster(g.pieces[id])
	}
	g.sync()
}

func (g *Game) removeFromRoster(p *Piece) {
	live := g.roster[p.Team]
	for i, q := range live {
		if q == p {
			g.roster[p.Team] = append(live[:i:i], live[i+1:]...)
			return
		}
	}
}

// sync rebuilds the board from the live rosters.
func (g *Game) sync() {
	g.board.Clear()
	for _, live := range g.roster {
		for _, p := range live {
			g.board.set(p.Pos, occupied(p))
		}
	}
}

// endTurn hands the move to the opponent and settles the result if the
// opponent has been mated or has lost its general.
func (g *Game) endTurn(mover Team) {
	opp := mover.Opponent()
	g.turn = opp

	if _, ok := g.General(opp); !ok {
		g.state = wonBy(mover)
		g.logger.Info("general captured", zap.Stringer("winner", mover))
		return
	}
	if !g.IsInCheck(opp) {
		return
	}
	g.logger.Info("check", zap.Stringer("team", opp))
	if g.IsCheckmate(opp) {
		g.state = wonBy(mover)
		g.logger.Info("checkmate",
			zap.Stringer("winner", mover),
			zap.Stringer("result", g.state),
		)
	}
}
