package devtools

import (
	"strings"
	"testing"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/piece"
	"blockfall/pkg/game/shapes"
	"blockfall/pkg/game/state"
)

func TestDumpBoard(t *testing.T) {
	p := piece.New([]world.Cell{world.NewCell(-1, 0), world.NewCell(0, 0)}, piece.NoPivot, palette.Blue)
	g := state.NewGame(3, 2, shapes.NewScriptedSpawner(p))
	g.Board.Lock([]world.Cell{world.NewCell(1, 1), world.NewCell(1, 2)})

	var sb strings.Builder
	DumpBoard(&sb, g)
	out := sb.String()

	wantBoard := strings.Join([]string{
		" -1 @..",
		"    ---",
		"  0 @..",
		"  1 .##",
		"",
	}, "\n")
	if !strings.HasSuffix(out, wantBoard) {
		t.Errorf("DumpBoard board section =\n%s\nwant suffix\n%s", out, wantBoard)
	}
	for _, want := range []string{"board: 3x2", "score: 0", "locked_cells: 2", "active: blue"} {
		if !strings.Contains(out, want) {
			t.Errorf("DumpBoard output missing %q", want)
		}
	}
}

func TestWriteBindings(t *testing.T) {
	engineinput.ResetBindings()
	var sb strings.Builder
	WriteBindings(&sb)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("WriteBindings wrote %d lines, want 4:\n%s", len(lines), sb.String())
	}
	if want := "Move Left:   a, arrow_left, h"; lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if !strings.Contains(lines[3], "ctrl_c") {
		t.Errorf("quit line = %q, want it to list ctrl_c", lines[3])
	}
}
