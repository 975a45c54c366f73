package shapes

import (
	"math/rand"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/piece"
)

// Spawner produces the next piece to enter play
type Spawner interface {
	Spawn(width int) *piece.Piece
}

// RandomSpawner picks a random template, color and anchor for every piece
type RandomSpawner struct {
	catalogue *Catalogue
	rand      *rand.Rand
}

// NewRandomSpawner creates a spawner over the catalogue seeded with seed
func NewRandomSpawner(catalogue *Catalogue, seed int64) *RandomSpawner {
	if catalogue == nil {
		catalogue = Default()
	}
	return &RandomSpawner{
		catalogue: catalogue,
		rand:      rand.New(rand.NewSource(seed)),
	}
}

// Spawn builds a piece with a random anchor in [0, width-AnchorSpan].
// Boards narrower than AnchorSpan only get templates that fit, and a
// single cell if none do.
func (s *RandomSpawner) Spawn(width int) *piece.Piece {
	color := palette.Random(s.rand)

	candidates := s.catalogue.templates
	if width < AnchorSpan {
		candidates = s.catalogue.Fitting(width)
		if len(candidates) == 0 {
			return piece.New([]world.Cell{world.NewCell(-1, s.rand.Intn(width))}, piece.NoPivot, color)
		}
	}

	t := candidates[s.rand.Intn(len(candidates))]
	maxAnchor := width - t.Span()
	if width >= AnchorSpan {
		maxAnchor = width - AnchorSpan
	}
	anchor := 0
	if maxAnchor > 0 {
		anchor = s.rand.Intn(maxAnchor + 1)
	}
	return Instantiate(t, anchor, color)
}

// ScriptedSpawner hands out a fixed sequence of pieces, repeating the last
// one once exhausted. Useful for demos and deterministic play.
type ScriptedSpawner struct {
	pieces []*piece.Piece
	next   int
}

// NewScriptedSpawner creates a spawner that returns clones of pieces in order
func NewScriptedSpawner(pieces ...*piece.Piece) *ScriptedSpawner {
	if len(pieces) == 0 {
		panic("scripted spawner needs at least one piece")
	}
	return &ScriptedSpawner{pieces: pieces}
}

// Spawn returns a clone of the next scripted piece; width is ignored
func (s *ScriptedSpawner) Spawn(width int) *piece.Piece {
	p := s.pieces[s.next]
	if s.next < len(s.pieces)-1 {
		s.next++
	}
	return p.Clone()
}
