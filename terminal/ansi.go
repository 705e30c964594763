// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiSGR0       = []byte("\x1b[0m")
	csiClear      = []byte("\x1b[2J")
	csiHome       = []byte("\x1b[H")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// DECAWM: writing the bottom-right cell must not scroll the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [10]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes the cursor positioning sequence.
// Buffer coordinates are already 1-based terminal coordinates, no offset is applied.
func writeCursorPos(w *bufio.Writer, row, col int) {
	w.Write(csiCursorPos)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}

// writeFg writes a complete foreground color sequence
func writeFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(c)))
		w.WriteByte('m')
		return
	}
	w.Write(csiFgRGB)
	writeRGB(w, c)
	w.WriteByte('m')
}

// writeBg writes a complete background color sequence
func writeBg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorMode256 {
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(c)))
		w.WriteByte('m')
		return
	}
	w.Write(csiBgRGB)
	writeRGB(w, c)
	w.WriteByte('m')
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
}
