package state

import (
	"blockfall/pkg/game/board"
	"blockfall/pkg/game/piece"
	"blockfall/pkg/game/shapes"
)

// Phase is the stage of the piece lifecycle the session last completed
type Phase int

// Lifecycle phases. A session cycles through them forever.
const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	default:
		return "unknown"
	}
}

// Game represents one falling-block session
type Game struct {
	Board *board.Board

	// Active is the piece under player control. A session always has one.
	Active *piece.Piece

	Spawner shapes.Spawner

	Score int

	Phase Phase

	Ticks uint64 // Ticks run so far
}

// NewGame creates a session on an empty board and spawns the first piece
func NewGame(width, height int, spawner shapes.Spawner) *Game {
	g := &Game{
		Board:   board.New(width, height),
		Spawner: spawner,
	}
	g.SpawnNext()
	return g
}

// SpawnNext replaces the active piece with a fresh one from the spawner
func (g *Game) SpawnNext() {
	g.Active = g.Spawner.Spawn(g.Board.Width())
	g.Phase = PhaseSpawning
}

// LockActive settles the active piece into the board and spawns the next one
func (g *Game) LockActive() {
	g.Phase = PhaseLocking
	g.Board.Lock(g.Active.Cells())
	g.SpawnNext()
}

// AddScore awards points for cleared rows
func (g *Game) AddScore(rows int) {
	g.Score += rows
}
