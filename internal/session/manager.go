package session

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"janggi/internal/janggi"
)

var ErrNotFound = errors.New("game not found")

type Manager struct {
	mu     sync.RWMutex
	games  map[string]*Entry
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games:  make(map[string]*Entry),
		logger: logger,
		now:    time.Now,
	}
}

// New starts a game from the initial position.
func (m *Manager) New(opts ...janggi.Option) *Entry {
	opts = append([]janggi.Option{janggi.WithLogger(m.logger)}, opts...)
	return m.add(janggi.NewGame(opts...))
}

// NewFromPosition starts a game from a position code.
func (m *Manager) NewFromPosition(code string, opts ...janggi.Option) (*Entry, error) {
	opts = append([]janggi.Option{janggi.WithLogger(m.logger)}, opts...)
	g, err := janggi.Decode(code, opts...)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *janggi.Game) *Entry {
	now := m.now()
	e := &Entry{
		ID:        g.ID(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[e.ID] = e
	m.logger.Debug("game created", zap.String("game_id", e.ID))
	return e
}

func (m *Manager) Get(id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Play submits a move for the team to move. The returned error is the
// rejection reason from janggi.Game.Move, or ErrNotFound.
func (m *Manager) Play(id string, from, to janggi.Coord) error {
	e, err := m.Get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return m.apply(e, from, to)
}

// Pass passes the turn of the team to move by moving its general onto itself.
func (m *Manager) Pass(id string) error {
	e, err := m.Get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	gen, ok := e.game.General(e.game.Turn())
	if !ok {
		return janggi.ErrGameOver
	}
	return m.apply(e, gen.Pos, gen.Pos)
}

func (m *Manager) apply(e *Entry, from, to janggi.Coord) error {
	if err := e.game.Move(from, to); err != nil {
		return err
	}
	e.plies++
	e.updatedAt = m.now()
	if st := e.game.State(); st != janggi.Unfinished {
		m.logger.Info("game decided",
			zap.String("game_id", e.ID),
			zap.Stringer("result", st),
			zap.Int("plies", e.plies),
		)
	}
	return nil
}

func (m *Manager) Snapshot(id string) (Snapshot, error) {
	e, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return e.snapshot(), nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// List returns snapshots of every game, oldest first.
func (m *Manager) List() []Snapshot {
	m.mu.RLock()
	entries := make([]*Entry, 0, len(m.games))
	for _, e := range m.games {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	out := make([]Snapshot, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.snapshot())
	}
	slices.SortFunc(out, func(a, b Snapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
