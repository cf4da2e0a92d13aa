package game

import (
	"time"

	"alex/internal/alex"
)

// GameState is a snapshot of one game. Positions are never mutated in place,
// so a snapshot stays valid after the game moves on.
type GameState struct {
	ID        string
	Pos       *alex.Position
	History   []string // moves applied since the last reset, in notation
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) snapshot() GameState {
	s := *g
	s.History = append([]string(nil), g.History...)
	return s
}
