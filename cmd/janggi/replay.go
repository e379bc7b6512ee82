package main

import (
	"fmt"
	"io"

	"janggi/internal/janggi"
	"janggi/internal/script"
	"janggi/internal/session"
)

// replay plays every step of s in a fresh session and writes a report to w.
// Rejected moves are part of the report, not errors.
func replay(m *session.Manager, s *script.Script, w io.Writer, showBoard bool) error {
	var (
		e   *session.Entry
		err error
	)
	if s.Position != "" {
		e, err = m.NewFromPosition(s.Position)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	} else {
		e = m.New()
	}
	defer func() { _ = m.Remove(e.ID) }()

	fmt.Fprintf(w, "== %s\n", s.Name)
	for _, st := range s.Steps {
		if st.Pass {
			err = m.Pass(e.ID)
		} else {
			err = m.Play(e.ID, st.Move.From, st.Move.To)
		}
		status := "ok"
		if err != nil {
			status = "rejected: " + err.Error()
		}
		fmt.Fprintf(w, "%4d  %-7s %s\n", st.Line, st, status)
	}

	snap, err := m.Snapshot(e.ID)
	if err != nil {
		return err
	}
	if showBoard {
		e.View(func(g *janggi.Game) {
			b := g.Board()
			err = b.Render(w)
		})
		if err != nil {
			return err
		}
	}
	check := ""
	if snap.InCheck && snap.State == janggi.Unfinished {
		check = " (check)"
	}
	var mobility int
	e.View(func(g *janggi.Game) { mobility = len(g.LegalMoves(g.Turn())) })
	fmt.Fprintf(w, "turn: %s%s  state: %s  plies: %d  legal: %d\n", snap.Turn, check, snap.State, snap.Plies, mobility)
	fmt.Fprintf(w, "position: %s\nhash: %016x\n\n", snap.Position, snap.Hash)
	return nil
}
