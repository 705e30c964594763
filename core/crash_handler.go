// Package core holds process-level crash handling shared by the binaries
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/vi-snake/terminal"
)

// Finisher restores a terminal it put into raw mode
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher

	// Replaced in tests
	crashStdout io.Writer = os.Stdout
	crashStderr io.Writer = os.Stderr
	exit                  = os.Exit
)

// RegisterTerminal makes HandleCrash restore t instead of sending a blind reset.
// Passing nil unregisters.
func RegisterTerminal(t Finisher) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// HandleCrash is the unified panic handler: it restores the terminal, prints the
// panic value and stack trace to stderr and exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(crashStdout)
	}

	fmt.Fprintf(crashStderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashStderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}
