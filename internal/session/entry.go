package session

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// Entry is one game held by a Manager. Its mutex serialises every request on
// the game, including the provisional moves made while judging a request.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *janggi.Game
	updatedAt time.Time
	plies     int
}

// Snapshot is a read-only copy of an entry's public state.
type Snapshot struct {
	ID        string
	Position  string
	Hash      uint64
	Turn      janggi.Team
	State     janggi.Result
	InCheck   bool
	Plies     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Entry) snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		ID:        e.ID,
		Position:  e.game.Encode(),
		Hash:      e.game.Hash(),
		Turn:      e.game.Turn(),
		State:     e.game.State(),
		InCheck:   e.game.IsInCheck(e.game.Turn()),
		Plies:     e.plies,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.updatedAt,
	}
}

// View runs fn with the entry locked. fn must not keep g.
func (e *Entry) View(fn func(g *janggi.Game)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.game)
}
