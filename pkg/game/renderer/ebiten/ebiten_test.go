package ebiten

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "blockfall/pkg/engine/input"
	"blockfall/pkg/engine/world"
	"blockfall/pkg/game/palette"
	"blockfall/pkg/game/piece"
	"blockfall/pkg/game/shapes"
	"blockfall/pkg/game/state"
)

func makeGame(t *testing.T, width, height int, active ...world.Cell) *state.Game {
	t.Helper()
	return state.NewGame(width, height, shapes.NewScriptedSpawner(piece.New(active, piece.NoPivot, palette.Magenta)))
}

func TestTicksForInterval(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{150 * time.Millisecond, 9},
		{time.Second, 60},
		{time.Millisecond, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := ticksForInterval(tt.interval, 60); got != tt.want {
			t.Errorf("ticksForInterval(%s, 60) = %d, want %d", tt.interval, got, tt.want)
		}
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyArrowLeft, "arrow_left"},
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyEscape, "escape"},
		{ebiten.KeyH, "h"},
		{ebiten.KeyQ, "q"},
		{ebiten.KeyShiftLeft, ""},
	}
	for _, tt := range tests {
		if got := keyCode(tt.key); got != tt.want {
			t.Errorf("keyCode(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStep_TicksOncePerInterval(t *testing.T) {
	g := makeGame(t, 4, 10, world.NewCell(0, 1))
	e := New(g, 50*time.Millisecond)

	for i := 0; i < 2; i++ {
		if err := e.step(); err != nil {
			t.Fatalf("step() = %v", err)
		}
	}
	if g.Ticks != 0 {
		t.Fatalf("Ticks after 2 updates = %d, want 0", g.Ticks)
	}
	if err := e.step(); err != nil {
		t.Fatalf("step() = %v", err)
	}
	if g.Ticks != 1 {
		t.Errorf("Ticks after 3 updates = %d, want 1", g.Ticks)
	}
}

func TestStep_QueuedInputApplied(t *testing.T) {
	engineinput.ResetBindings()
	g := makeGame(t, 4, 10, world.NewCell(0, 1))
	e := New(g, time.Millisecond)

	e.queue.PushCode(engineinput.DeviceKeyboard, keyCode(ebiten.KeyArrowRight))
	if err := e.step(); err != nil {
		t.Fatalf("step() = %v", err)
	}
	if got := g.Active.Cells()[0]; got != world.NewCell(1, 2) {
		t.Errorf("active cell = %v, want (1,2)", got)
	}
}

func TestStep_QuitTerminates(t *testing.T) {
	engineinput.ResetBindings()
	g := makeGame(t, 4, 10, world.NewCell(0, 1))
	e := New(g, time.Millisecond)

	e.queue.PushCode(engineinput.DeviceKeyboard, "q")
	if err := e.step(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step() = %v, want ebiten.Termination", err)
	}
}

func TestRenderFrame_Snapshot(t *testing.T) {
	g := makeGame(t, 3, 5, world.NewCell(-1, 0), world.NewCell(0, 0))
	g.Board.Lock([]world.Cell{world.NewCell(4, 2), world.NewCell(-1, 1)})
	g.Score = 3
	e := New(g, time.Second)

	e.RenderFrame(g)
	snap := e.currentSnapshot()

	if !snap.valid || snap.width != 3 || snap.height != 5 || snap.score != 3 {
		t.Fatalf("snapshot = %+v, want valid 3x5 with score 3", snap)
	}
	if len(snap.locked) != 1 || snap.locked[0] != world.NewCell(4, 2) {
		t.Errorf("snapshot locked = %v, want [(4,2)]", snap.locked)
	}
	if len(snap.active) != 1 || snap.active[0] != world.NewCell(0, 0) {
		t.Errorf("snapshot active = %v, want [(0,0)]", snap.active)
	}
	if !snap.toppedOut {
		t.Error("snapshot toppedOut = false with a settled cell above the board")
	}
	if snap.activeColor != palette.Magenta {
		t.Errorf("snapshot color = %v, want magenta", snap.activeColor)
	}
}

func TestRenderFrame_RefreshesLockedOnBoardChange(t *testing.T) {
	g := makeGame(t, 2, 4, world.NewCell(0, 0))
	e := New(g, time.Second)

	e.RenderFrame(g)
	if got := e.currentSnapshot().locked; len(got) != 0 {
		t.Fatalf("snapshot locked = %v, want none", got)
	}

	g.Board.Lock([]world.Cell{world.NewCell(3, 1)})
	e.RenderFrame(g)
	snap := e.currentSnapshot()
	if len(snap.locked) != 1 || snap.locked[0] != world.NewCell(3, 1) {
		t.Errorf("snapshot locked after Lock = %v, want [(3,1)]", snap.locked)
	}
	if snap.toppedOut {
		t.Error("snapshot toppedOut = true for a stack on the bottom row")
	}
	if snap.boardVersion != g.Board.Version() {
		t.Errorf("snapshot boardVersion = %d, want %d", snap.boardVersion, g.Board.Version())
	}
}

func TestLayout(t *testing.T) {
	g := makeGame(t, 10, 20, world.NewCell(-1, 0))
	e := New(g, time.Second)
	w, h := e.Layout(1920, 1080)
	if w != 10*defaultTileSize+2*boardMargin || h != 20*defaultTileSize+2*boardMargin+footerHeight {
		t.Errorf("Layout() = %d, %d", w, h)
	}
}
