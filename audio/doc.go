// Package audio plays the game's short sound effects through beep.
// Failure to open an output device is never fatal: callers fall back to Silent.
package audio
