package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Source hands the game loop at most one intent per tick.
// Poll never blocks; it returns None when nothing is pending.
type Source interface {
	Poll() Intent
}

// Queue is a Source fed programmatically, one intent delivered per Poll.
type Queue struct {
	mu      sync.Mutex
	pending []Intent
}

// NewQueue creates an empty queue
func NewQueue(intents ...Intent) *Queue {
	return &Queue{pending: append([]Intent(nil), intents...)}
}

// Push appends an intent
func (q *Queue) Push(i Intent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, i)
}

// PushCode maps a device code through the current bindings and queues the
// result. Unbound codes are dropped.
func (q *Queue) PushCode(device Device, code string) {
	intent := MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
	if intent.Action == ActionNone {
		return
	}
	q.Push(intent)
}

// Poll pops the oldest pending intent
func (q *Queue) Poll() Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return None
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	return next
}

// Len returns the number of pending intents
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// keyBuffer is the number of decoded intents held between ticks
const keyBuffer = 16

// KeyReader decodes key presses from a byte stream on its own goroutine.
// When opened on a terminal it switches it to raw mode until Close.
type KeyReader struct {
	intents chan Intent

	fd       int
	oldState *term.State

	closeOnce sync.Once
	closed    chan struct{}
}

// OpenTerminal puts stdin into raw mode and starts reading keys from it
func OpenTerminal() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	kr := NewKeyReader(os.Stdin)
	kr.fd = fd
	kr.oldState = oldState
	return kr, nil
}

// NewKeyReader starts decoding keys from r without touching any terminal
func NewKeyReader(r io.Reader) *KeyReader {
	kr := &KeyReader{
		intents: make(chan Intent, keyBuffer),
		closed:  make(chan struct{}),
	}
	go kr.run(bufio.NewReader(r))
	return kr
}

func (kr *KeyReader) run(r *bufio.Reader) {
	for {
		code, err := readKey(r)
		if err != nil {
			return
		}
		if code == "" {
			continue
		}
		intent := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}))
		if intent.Action == ActionNone {
			continue
		}
		select {
		case <-kr.closed:
			return
		default:
		}
		select {
		case kr.intents <- intent:
		default:
			// Player is typing faster than the tick rate; drop the key.
		}
	}
}

// Poll returns the oldest decoded intent without blocking
func (kr *KeyReader) Poll() Intent {
	select {
	case i := <-kr.intents:
		return i
	default:
		return None
	}
}

// Close restores the terminal mode. It is safe to call more than once.
// A reader goroutine blocked on the underlying stream stays blocked until
// the next byte arrives or the process exits; it delivers nothing after Close.
func (kr *KeyReader) Close() error {
	var err error
	kr.closeOnce.Do(func() {
		close(kr.closed)
		if kr.oldState != nil {
			err = term.Restore(kr.fd, kr.oldState)
		}
	})
	return err
}

// readKey reads one key press and returns its code.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences. An ESC with
// nothing buffered behind it is the escape key itself. Unknown escape
// sequences yield an empty code.
func readKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		return readEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

func readEscape(r *bufio.Reader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		if err := r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}
