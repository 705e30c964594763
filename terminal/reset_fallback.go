//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// resetTerminalMode has no termios access on this platform
func resetTerminalMode() {}
