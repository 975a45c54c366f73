// Package shapes holds the fixed catalogue of piece blueprints and the
// spawner that turns them into pieces.
package shapes

import (
	"errors"
	"fmt"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/piece"
)

// AnchorSpan is the number of columns every template fits inside. Spawn
// anchors are chosen from [0, width-AnchorSpan].
const AnchorSpan = 3

// Template is a piece blueprint: cell offsets relative to the spawn anchor
// plus the pivot index (piece.NoPivot for shapes that never rotate).
type Template struct {
	Name    string
	Offsets []world.Cell
	Pivot   int
}

// Catalogue is a validated, immutable list of templates
type Catalogue struct {
	templates []Template
}

// ErrEmptyCatalogue is returned when no templates are supplied
var ErrEmptyCatalogue = errors.New("shape catalogue has no templates")

// Blueprints of the four distinct shapes. Offsets start above the grid.
var (
	ShapeL = Template{
		Name:    "L",
		Offsets: []world.Cell{{Row: -2, Col: 0}, {Row: -2, Col: 1}, {Row: -2, Col: 2}, {Row: -1, Col: 2}},
		Pivot:   1,
	}
	ShapeLine = Template{
		Name:    "Line",
		Offsets: []world.Cell{{Row: -3, Col: 1}, {Row: -2, Col: 1}, {Row: -1, Col: 1}},
		Pivot:   1,
	}
	ShapeS = Template{
		Name:    "S",
		Offsets: []world.Cell{{Row: -3, Col: 1}, {Row: -2, Col: 1}, {Row: -2, Col: 2}, {Row: -1, Col: 2}},
		Pivot:   1,
	}
	ShapeSquare = Template{
		Name:    "Square",
		Offsets: []world.Cell{{Row: -3, Col: 0}, {Row: -3, Col: 1}, {Row: -2, Col: 0}, {Row: -2, Col: 1}},
		Pivot:   piece.NoPivot,
	}
)

var defaultCatalogue = MustCatalogue(ShapeL, ShapeLine, ShapeS, ShapeSquare)

// Default returns the standard four-shape catalogue
func Default() *Catalogue {
	return defaultCatalogue
}

// NewCatalogue validates the templates and builds a catalogue
func NewCatalogue(templates ...Template) (*Catalogue, error) {
	if len(templates) == 0 {
		return nil, ErrEmptyCatalogue
	}

	owned := make([]Template, len(templates))
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		owned[i] = t.clone()
	}
	return &Catalogue{templates: owned}, nil
}

// MustCatalogue is NewCatalogue that panics on an invalid template
func MustCatalogue(templates ...Template) *Catalogue {
	c, err := NewCatalogue(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks a template for defects that would break a piece in play
func (t Template) Validate() error {
	if len(t.Offsets) == 0 {
		return fmt.Errorf("%q has no cells", t.Name)
	}
	if t.Pivot != piece.NoPivot && (t.Pivot < 0 || t.Pivot >= len(t.Offsets)) {
		return fmt.Errorf("%q pivot %d outside %d cells", t.Name, t.Pivot, len(t.Offsets))
	}
	seen := world.NewCellSet()
	for _, c := range t.Offsets {
		if seen.Has(c) {
			return fmt.Errorf("%q repeats cell %v", t.Name, c)
		}
		seen.Put(c)
		if c.Col < 0 || c.Col >= AnchorSpan {
			return fmt.Errorf("%q column %d outside [0, %d)", t.Name, c.Col, AnchorSpan)
		}
	}
	return nil
}

// Span returns the number of columns the template occupies from the anchor
func (t Template) Span() int {
	span := 0
	for _, c := range t.Offsets {
		if c.Col+1 > span {
			span = c.Col + 1
		}
	}
	return span
}

// Len returns the number of templates
func (c *Catalogue) Len() int {
	return len(c.templates)
}

func (t Template) clone() Template {
	offsets := make([]world.Cell, len(t.Offsets))
	copy(offsets, t.Offsets)
	return Template{Name: t.Name, Offsets: offsets, Pivot: t.Pivot}
}

// Template returns a copy of the i-th template
func (c *Catalogue) Template(i int) Template {
	return c.templates[i].clone()
}

// Fitting returns the templates that fit inside a board of the given width
func (c *Catalogue) Fitting(width int) []Template {
	var out []Template
	for _, t := range c.templates {
		if t.Span() <= width {
			out = append(out, t.clone())
		}
	}
	return out
}

// Instantiate clones the template into a new piece with every offset
// shifted right by anchor columns
func Instantiate(t Template, anchor int, color palette.Color) *piece.Piece {
	cells := make([]world.Cell, len(t.Offsets))
	for i, off := range t.Offsets {
		cells[i] = off.Offset(0, anchor)
	}
	return piece.New(cells, t.Pivot, color)
}
