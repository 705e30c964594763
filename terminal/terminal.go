package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Driver is the terminal collaborator used by the game loop
type Driver interface {
	// Init enters raw mode, clears the screen, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (rows, cols int)

	// PollKey returns at most one pending key without blocking, KeyNone if idle
	PollKey() (Key, error)

	// Flush writes the buffer to the terminal
	Flush(buf *Buffer) error
}

// BackendKind selects a Driver implementation
type BackendKind uint8

const (
	BackendANSI BackendKind = iota
	BackendTcell
)

// ParseBackend maps a flag value to a BackendKind
func ParseBackend(s string) (BackendKind, bool) {
	switch s {
	case "ansi":
		return BackendANSI, true
	case "tcell":
		return BackendTcell, true
	}
	return BackendANSI, false
}

// Options configures a Driver
type Options struct {
	Backend    BackendKind
	ColorMode  ColorMode
	RenderMode RenderMode
}

// New creates a Driver for the selected backend
func New(opts Options) Driver {
	if opts.Backend == BackendTcell {
		return newTcellDriver()
	}
	b := newBackend()
	return &ansiTerminal{
		backend:  b,
		renderer: NewRenderer(b, opts.ColorMode, opts.RenderMode),
		input:    NewInputReader(b),
	}
}

// ansiTerminal drives a raw tty with direct ANSI output
type ansiTerminal struct {
	backend  Backend
	renderer *Renderer
	input    *InputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// Init enters raw mode and sets up terminal
func (t *ansiTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	// Clear screen, hide cursor, home; no auto-wrap so the last cell cannot scroll
	if err := t.renderer.writeRaw(csiClear, csiCursorHide, csiAutoWrapOff, csiHome); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}
	// The screen was just cleared, so nothing from an earlier frame is on it
	t.renderer.Invalidate()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *ansiTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.renderer.writeRaw(csiSGR0, csiClear, csiCursorShow, csiAutoWrapOn, csiHome)
	t.backend.Fini()

	t.finalized = true
}

// Size returns current terminal dimensions
func (t *ansiTerminal) Size() (int, int) {
	return t.backend.Size()
}

// PollKey reads at most one key without blocking
func (t *ansiTerminal) PollKey() (Key, error) {
	return t.input.PollKey()
}

// Flush writes the whole buffer
func (t *ansiTerminal) Flush(buf *Buffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	return t.renderer.Flush(buf)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Write(csiCursorShow)
	w.Write(csiAutoWrapOn)
	w.Write(csiHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
