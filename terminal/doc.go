// @focus: #sys { term }
// Package terminal provides a small virtual terminal for full-screen games.
//
// Features:
//   - Screen Buffer: fixed rows x cols grid of glyphs with 24-bit colors
//   - Drawing primitives: glyph, text, multiline text, bordered rect
//   - Renderer emitting raw ANSI color, cursor-position and character output
//   - Non-blocking single-key input with ESC vs CSI/SS3 disambiguation
//   - Drivers: direct ANSI over a raw tty, or tcell
//   - Clean terminal restoration on exit/panic
//
// Buffer coordinates are 1-based terminal coordinates: row 0 and column 0
// form an unused gutter so that a glyph at (row, col) is emitted with ESC[row;colH.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
