package janggi

import "sync"

const zobristKinds = int(Soldier) + 1 // Kind range [1..7], 0 unused

const zobristSeed = 0x6A616E6767690000 // "janggi"

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumCells]uint64
	zobristSide   uint64
)

// fmix64 is the murmur3 finalizer. It is a bijection, so distinct inputs
// give distinct keys.
func fmix64(z uint64) uint64 {
	z ^= z >> 33
	z *= 0xFF51AFD7ED558CCD
	z ^= z >> 33
	z *= 0xC4CEB9FE1A85EC53
	z ^= z >> 33
	return z
}

// zobristInput packs (team, kind, cell) into one word; team 2 is the side key.
func zobristInput(team, kind, cell int) uint64 {
	return zobristSeed ^ (uint64(team)<<24 | uint64(kind)<<16 | uint64(cell))
}

func initZobrist() {
	zobristOnce.Do(func() {
		for _, t := range []Team{Red, Blue} {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumCells; sq++ {
					zobristPieces[t][k][sq] = fmix64(zobristInput(int(t), k, sq))
				}
			}
		}
		zobristSide = fmix64(zobristInput(2, 0, 0))
	})
}

func cellHashKey(c Cell, sq int) uint64 {
	if c.IsEmpty() || sq < 0 || sq >= NumCells {
		return 0
	}
	k := int(c.Kind())
	if k <= 0 || k >= zobristKinds {
		return 0
	}
	switch c.Team() {
	case Red:
		return zobristPieces[Red][k][sq]
	case Blue:
		return zobristPieces[Blue][k][sq]
	}
	return 0
}

// Hash is the Zobrist hash of the board and the team to move. Equal
// positions hash equal regardless of how they were reached.
func (g *Game) Hash() uint64 {
	initZobrist()

	var h uint64
	for sq, cell := range g.board.cells {
		h ^= cellHashKey(cell, sq)
	}
	if g.turn == Red {
		h ^= zobristSide
	}
	return h
}
