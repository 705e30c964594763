// @focus: #sys { term } #render { buffer }
package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Cell represents a single terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// BoundsError reports a draw outside the buffer grid.
// Draw primitives panic with *BoundsError; the crash handler restores the terminal and exits.
type BoundsError struct {
	Op    string // primitive that failed, e.g. "SetGlyph"
	Arg   string // offending argument, e.g. "row"
	Value int
	Limit int // exclusive upper bound
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("terminal: '%s' is out of bounds in %s (%d not in [0,%d))", e.Arg, e.Op, e.Value, e.Limit)
}

// Buffer is a fixed-size grid of cells, row-major: cells[row*cols + col]
type Buffer struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBuffer allocates a rows x cols grid of zero cells
func NewBuffer(rows, cols int) *Buffer {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Errorf("terminal: invalid buffer size %dx%d", rows, cols))
	}
	return &Buffer{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows in the grid
func (b *Buffer) Rows() int { return b.rows }

// Cols returns the number of columns in the grid
func (b *Buffer) Cols() int { return b.cols }

// Cells exposes the row-major backing slice; callers must not resize it
func (b *Buffer) Cells() []Cell { return b.cells }

// Cell returns the cell at row, col
func (b *Buffer) Cell(row, col int) Cell {
	b.check("Cell", row, col)
	return b.cells[row*b.cols+col]
}

func (b *Buffer) check(op string, row, col int) {
	if row < 0 || row >= b.rows {
		panic(&BoundsError{Op: op, Arg: "row", Value: row, Limit: b.rows})
	}
	if col < 0 || col >= b.cols {
		panic(&BoundsError{Op: op, Arg: "col", Value: col, Limit: b.cols})
	}
}

// Reset overwrites every cell
func (b *Buffer) Reset(ch rune, fg, bg RGB) {
	c := Cell{Rune: ch, Fg: fg, Bg: bg}
	for i := range b.cells {
		b.cells[i] = c
	}
}

// SetGlyph writes a single cell
func (b *Buffer) SetGlyph(row, col int, ch rune, fg, bg RGB) {
	b.check("SetGlyph", row, col)
	b.cells[row*b.cols+col] = Cell{Rune: ch, Fg: fg, Bg: bg}
}

// SetText writes consecutive glyphs starting at row, col.
// Wide runes advance by their display width, zero-width runes are dropped.
func (b *Buffer) SetText(row, col int, text string, fg, bg RGB) {
	b.check("SetText", row, col)

	x := col
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetGlyph(row, x, r, fg, bg)
		x += w
	}
}

// SetMultilineText writes each line on successive rows, all starting at col
func (b *Buffer) SetMultilineText(row, col int, lines []string, fg, bg RGB) {
	b.check("SetMultilineText", row, col)

	for i, line := range lines {
		b.SetText(row+i, col, line, fg, bg)
	}
}

// SetRect draws a bordered box with corners at (r1, c1) and (r2, c2), interior untouched
func (b *Buffer) SetRect(r1, c1, r2, c2 int, fg, bg RGB) {
	b.check("SetRect", r1, c1)
	b.check("SetRect", r2, c2)

	// Corners
	b.SetGlyph(r1, c1, boxCorner, fg, bg)
	b.SetGlyph(r2, c1, boxCorner, fg, bg)
	b.SetGlyph(r1, c2, boxCorner, fg, bg)
	b.SetGlyph(r2, c2, boxCorner, fg, bg)

	// Horizontal edges
	for c := c1 + 1; c < c2; c++ {
		b.SetGlyph(r1, c, boxHorizontal, fg, bg)
		b.SetGlyph(r2, c, boxHorizontal, fg, bg)
	}

	// Vertical edges
	for r := r1 + 1; r < r2; r++ {
		b.SetGlyph(r, c1, boxVertical, fg, bg)
		b.SetGlyph(r, c2, boxVertical, fg, bg)
	}
}

const (
	boxCorner     = '+'
	boxHorizontal = '-'
	boxVertical   = '|'
)
