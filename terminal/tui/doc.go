// Package tui provides layout helpers for full-screen text boxes on a terminal.Buffer.
//
// Boxes are centred on the buffer and sized by display width, so text with
// wide runes lines up with its frame:
//
//	frame := tui.DrawTextBox(buf, lines, textFg, frameFg, bg)
//	buf.SetGlyph(frame.R1+1, frame.C1+4, '>', fg, bg)
package tui
