package tui

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/i18n"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/piece"
	"blockfall/pkg/game/shapes"
	"blockfall/pkg/game/state"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// plain strips escape sequences so frames can be compared as text
func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func makeGame(t *testing.T, width, height int, active ...world.Cell) *state.Game {
	t.Helper()
	p := piece.New(active, piece.NoPivot, palette.Red)
	return state.NewGame(width, height, shapes.NewScriptedSpawner(p))
}

func TestDraw_Layout(t *testing.T) {
	i18n.Use("en")
	g := makeGame(t, 3, 3, world.NewCell(0, 2), world.NewCell(-1, 2))
	g.Board.Lock([]world.Cell{world.NewCell(2, 0)})
	g.Score = 4

	r := New(&bytes.Buffer{})
	r.ShowControls = false

	want := strings.Join([]string{
		"┌───┐",
		"│  ▓│",
		"│   │",
		"│▓  │",
		"└───┘",
		"Score: 4",
		"",
	}, "\r\n")
	if got := plain(r.Draw(g)); got != want {
		t.Errorf("Draw() =\n%q\nwant\n%q", got, want)
	}
}

func TestDraw_ToppedOutBanner(t *testing.T) {
	i18n.Use("en")
	banner := i18n.T("TOPPED_OUT")
	r := New(&bytes.Buffer{})
	r.ShowControls = false

	g := makeGame(t, 3, 4, world.NewCell(-1, 0))
	g.Board.Lock([]world.Cell{world.NewCell(3, 0), world.NewCell(2, 0)})
	if got := plain(r.Draw(g)); strings.Contains(got, banner) {
		t.Errorf("Draw() showed %q for a low stack:\n%s", banner, got)
	}

	g.Board.Lock([]world.Cell{world.NewCell(1, 0)})
	got := plain(r.Draw(g))
	lines := strings.Split(got, "\r\n")
	if len(lines) < 2 || lines[len(lines)-2] != banner {
		t.Errorf("Draw() with a cell on row 1 =\n%q\nwant last line %q", got, banner)
	}
}

func TestDraw_HidesCellsAboveGrid(t *testing.T) {
	g := makeGame(t, 2, 2, world.NewCell(-2, 0), world.NewCell(-1, 1))
	r := New(&bytes.Buffer{})
	if got := plain(r.Draw(g)); strings.Contains(got, "▓") {
		t.Errorf("Draw() drew a piece that is still above the grid:\n%s", got)
	}
}

func TestDraw_Controls(t *testing.T) {
	i18n.Use("en")
	g := makeGame(t, 2, 2, world.NewCell(-1, 0))
	r := New(&bytes.Buffer{})
	if got := plain(r.Draw(g)); !strings.Contains(got, i18n.T("CONTROLS")) {
		t.Errorf("Draw() with ShowControls missing controls line:\n%s", got)
	}
}

func TestRenderFrame_Idempotent(t *testing.T) {
	g := makeGame(t, 4, 3, world.NewCell(1, 1))
	g.Board.Lock([]world.Cell{world.NewCell(2, 0), world.NewCell(2, 3)})

	var first, second bytes.Buffer
	New(&first).RenderFrame(g)
	New(&second).RenderFrame(g)
	if first.String() != second.String() {
		t.Error("RenderFrame produced different bytes for the same state")
	}
	if !strings.HasPrefix(first.String(), "\x1b[H") {
		t.Errorf("RenderFrame output does not start at home: %q", first.String()[:8])
	}
}

func TestInitClose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	if err := r.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[?25l") {
		t.Error("Init() did not hide the cursor")
	}
	buf.Reset()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\x1b[?25h") {
		t.Errorf("Close() output = %q, want it to end by showing the cursor", buf.String())
	}
}
