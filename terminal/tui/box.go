package tui

import (
	"github.com/lixenwraith/vi-snake/terminal"
)

// Frame is the corner pair of a bordered box, inclusive
type Frame struct {
	R1, C1 int // top-left corner
	R2, C2 int // bottom-right corner
}

// Centered computes the frame for a w x h text block centred in a rows x cols grid.
// Text starts at (R1+1, C1+1).
func Centered(rows, cols, w, h int) Frame {
	return Frame{
		R1: (rows - h) / 2,
		C1: (cols - w) / 2,
		R2: (rows+h)/2 + 1,
		C2: (cols+w)/2 + 1,
	}
}

// Fits reports whether the frame lies inside a rows x cols grid
func (f Frame) Fits(rows, cols int) bool {
	return f.R1 >= 0 && f.C1 >= 0 && f.R2 < rows && f.C2 < cols && f.R1 < f.R2 && f.C1 < f.C2
}

// DrawTextBox draws lines inside a centred bordered box and returns its frame.
// When the box does not fit the grid the frame is skipped and lines are clipped to the grid.
func DrawTextBox(buf *terminal.Buffer, lines []string, textFg, frameFg, bg terminal.RGB) Frame {
	rows, cols := buf.Rows(), buf.Cols()
	f := Centered(rows, cols, MaxWidth(lines), len(lines))
	if !f.Fits(rows, cols) {
		drawClipped(buf, lines, textFg, bg)
		return f
	}

	buf.SetRect(f.R1, f.C1, f.R2, f.C2, frameFg, bg)
	buf.SetMultilineText(f.R1+1, f.C1+1, lines, textFg, bg)
	return f
}

// drawClipped writes lines centred where possible, cut at the grid edge
func drawClipped(buf *terminal.Buffer, lines []string, fg, bg terminal.RGB) {
	rows, cols := buf.Rows(), buf.Cols()
	row := max(1, (rows-len(lines))/2)
	col := max(1, (cols-MaxWidth(lines))/2)
	if col >= cols {
		return
	}

	for i, line := range lines {
		r := row + i
		if r >= rows {
			return
		}
		buf.SetText(r, col, Clip(line, cols-col), fg, bg)
	}
}
