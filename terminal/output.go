// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// RenderMode selects how much of the buffer is written per frame
type RenderMode uint8

const (
	// RenderFull emits every cell every frame
	RenderFull RenderMode = iota
	// RenderDiff emits only cells that changed since the previous frame
	RenderDiff
)

// ParseRenderMode maps a flag value to a RenderMode
func ParseRenderMode(s string) (RenderMode, bool) {
	switch s {
	case "full":
		return RenderFull, true
	case "diff":
		return RenderDiff, true
	}
	return RenderFull, false
}

// Renderer flushes a Buffer to the terminal as raw ANSI output.
// Each emitted cell is: foreground color, background color, cursor position, character.
type Renderer struct {
	writer    *bufio.Writer
	colorMode ColorMode
	mode      RenderMode

	// front holds the last flushed frame for RenderDiff
	front      []Cell
	frontRows  int
	frontCols  int
	frontValid bool
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer, colorMode ColorMode, mode RenderMode) *Renderer {
	return &Renderer{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
		mode:      mode,
	}
}

// Flush writes the buffer in row-major order and flushes the underlying writer
func (r *Renderer) Flush(buf *Buffer) error {
	rows, cols := buf.Rows(), buf.Cols()
	cells := buf.Cells()

	diff := r.mode == RenderDiff && r.frontValid && r.frontRows == rows && r.frontCols == cols

	for row := 0; row < rows; row++ {
		rowStart := row * cols
		for col := 0; col < cols; col++ {
			idx := rowStart + col
			c := cells[idx]
			if diff && r.front[idx] == c {
				continue
			}
			r.writeCell(row, col, c)
		}
	}

	if r.mode == RenderDiff {
		r.remember(cells, rows, cols)
	}

	if err := r.writer.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// writeCell emits one cell's color, position and character
func (r *Renderer) writeCell(row, col int, c Cell) {
	w := r.writer
	writeFg(w, c.Fg, r.colorMode)
	writeBg(w, c.Bg, r.colorMode)
	writeCursorPos(w, row, col)

	ch := c.Rune
	if ch == 0 {
		ch = ' '
	}
	if ch < 0x80 {
		w.WriteByte(byte(ch))
	} else {
		w.WriteRune(ch)
	}
}

// remember copies the flushed frame into the front buffer
func (r *Renderer) remember(cells []Cell, rows, cols int) {
	size := rows * cols
	if cap(r.front) < size {
		r.front = make([]Cell, size)
	} else {
		r.front = r.front[:size]
	}
	copy(r.front, cells)
	r.frontRows = rows
	r.frontCols = cols
	r.frontValid = true
}

// Invalidate forces the next flush to emit every cell
func (r *Renderer) Invalidate() {
	r.frontValid = false
}

// writeRaw writes a control sequence and flushes it immediately
func (r *Renderer) writeRaw(seqs ...[]byte) error {
	for _, s := range seqs {
		r.writer.Write(s)
	}
	return r.writer.Flush()
}
