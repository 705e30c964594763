//go:build !unix

package terminal

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("terminal: ansi backend requires a unix tty, use -backend tcell")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                        { return errUnsupported }
func (unsupportedBackend) Fini()                              {}
func (unsupportedBackend) Size() (int, int)                   { return 24, 80 }
func (unsupportedBackend) Write(p []byte) (int, error)        { return 0, errUnsupported }
func (unsupportedBackend) Read(time.Duration) ([]byte, error) { return nil, errUnsupported }
