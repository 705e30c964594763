package terminal

import "time"

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw, non-echo input mode
	Init() error
	// Fini restores the saved terminal mode. Safe to call multiple times
	Fini()

	// Size returns the terminal dimensions
	Size() (rows, cols int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits up to timeout for input; (nil, nil) on timeout, zero timeout never blocks
	Read(timeout time.Duration) ([]byte, error)
}
