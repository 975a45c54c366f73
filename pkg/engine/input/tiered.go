package input

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveLeft
	ActionMoveRight
	ActionRotate

	// Meta
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// None is the intent of a tick with no input
var None = Intent{Action: ActionNone}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_left", "h", "ctrl_c").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key repeat is left to the terminal and Ebiten, so every RawInput passes
// through unchanged.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reservedCodes can never be rebound or unbound
var reservedCodes = map[string]bool{
	"arrow_left":  true,
	"arrow_right": true,
	"arrow_up":    true,
	"ctrl_c":      true,
}

var defaultBindings = map[string]Action{
	// Movement (arrows, vim, wasd)
	"arrow_left":  ActionMoveLeft,
	"h":           ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"l":           ActionMoveRight,
	"d":           ActionMoveRight,
	"arrow_up":    ActionRotate,
	"k":           ActionRotate,
	"w":           ActionRotate,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. The key reader goroutine
// and the tick loop both read it, so access goes through mu.
var (
	mu       sync.RWMutex
	bindings = copyBindings(defaultBindings)
)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for code, act := range src {
		dst[code] = act
	}
	return dst
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	mu.RLock()
	defer mu.RUnlock()
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return None
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionRotate:
		return "Rotate"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction resolves a config-file action name such as "left" or
// "rotate" to its Action.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "move_left", "moveleft":
		return ActionMoveLeft, nil
	case "right", "move_right", "moveright":
		return ActionMoveRight, nil
	case "rotate", "up":
		return ActionRotate, nil
	case "quit", "exit":
		return ActionQuit, nil
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	mu.RLock()
	defer mu.RUnlock()
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes (arrows and ctrl_c) are kept and cannot be reassigned.
func SetSingleBinding(action Action, code string) {
	mu.Lock()
	defer mu.Unlock()
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings
func ResetBindings() {
	mu.Lock()
	defer mu.Unlock()
	bindings = copyBindings(defaultBindings)
}
