package gameplay

import (
	"context"
	"errors"
	"log"
	"time"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/game/renderer"
	"blockfall/pkg/game/state"
)

// ErrQuit is returned when the player asks to stop
var ErrQuit = errors.New("player quit")

// DefaultTickInterval is the fall period of the terminal front end
const DefaultTickInterval = 150 * time.Millisecond

// Session ties a game to the collaborators that feed and display it
type Session struct {
	Game  *state.Game
	Input engineinput.Source
	Frame renderer.Frame
}

// NewSession creates a session; input and frame may be nil
func NewSession(g *state.Game, input engineinput.Source, frame renderer.Frame) *Session {
	return &Session{Game: g, Input: input, Frame: frame}
}

// Tick polls one intent and advances the game. A quit intent returns
// ErrQuit and leaves the game untouched.
func (s *Session) Tick() (Outcome, error) {
	intent := engineinput.None
	if s.Input != nil {
		intent = s.Input.Poll()
	}
	if intent.Action == engineinput.ActionQuit {
		return Outcome{ClearedRow: -1}, ErrQuit
	}
	return Tick(s.Game, intent, s.Frame), nil
}

// Run ticks the session every interval until ctx is done or the player
// quits. Quitting is not reported as an error.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("session started: board %s, tick %s", s.Game.Board.Grid(), interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("session stopped after %d ticks: %v", s.Game.Ticks, ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Tick(); err != nil {
				if errors.Is(err, ErrQuit) {
					log.Printf("session quit after %d ticks, score %d", s.Game.Ticks, s.Game.Score)
					return nil
				}
				return err
			}
		}
	}
}
