package engine

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/terminal"
	"github.com/lixenwraith/vi-snake/terminal/tui"
)

// Minimum buffer size; the help box is the largest screen
const (
	MinRows = 25
	MinCols = 42
)

var (
	colorRed        = terminal.RGB{R: 245, G: 0, B: 0}
	colorGreen      = terminal.RGB{R: 0, G: 245, B: 0}
	colorWhite      = terminal.RGB{R: 25, G: 25, B: 25}
	colorBackground = terminal.RGB{R: 0, G: 64, B: 64}

	// colorTail is where the body gradient ends
	colorTail = terminal.RGB{R: 0, G: 110, B: 40}
)

// FitsMinimum reports whether a rows x cols buffer can hold every screen.
// Buffer dimensions include the row and column 0 gutter, so a 24x41 terminal passes.
func FitsMinimum(rows, cols int) bool {
	return rows >= MinRows && cols >= MinCols
}

// DrawSizeWarning fills buf with the window-too-small notice
func DrawSizeWarning(buf *terminal.Buffer) {
	buf.Reset(' ', colorBackground, colorBackground)
	tui.DrawTextBox(buf, sizeWarningText, colorWhite, colorWhite, colorBackground)
}

func drawMenu(buf *terminal.Buffer, m *Menu) {
	f := tui.DrawTextBox(buf, m.lines, colorWhite, colorWhite, colorBackground)
	row := f.R1 + 1 + 2*m.cursor
	buf.SetGlyph(row, f.C1+4, '>', colorWhite, colorBackground)
	buf.SetGlyph(row, f.C2-4, '<', colorWhite, colorBackground)
}

func drawPlay(buf *terminal.Buffer, s *State) {
	rows, cols := buf.Rows(), buf.Cols()

	buf.SetRect(2, 2, rows-1, cols-2, colorWhite, colorBackground)

	score := fmt.Sprintf("Score: %d Best score: %d", s.Stats.Score, s.Stats.Best)
	buf.SetText(3, 4, score, colorWhite, colorBackground)
	lives := "Lives: " + strings.Repeat("@ ", s.Stats.Lives)
	buf.SetText(3, cols-16, lives, colorWhite, colorBackground)

	buf.SetGlyph(s.Food.Row, s.Food.Col, '*', colorRed, colorBackground)

	segs := s.Snake.Segments()
	for i, seg := range segs {
		ch := '#'
		if seg.Head {
			ch = '@'
		}
		buf.SetGlyph(seg.Row, seg.Col, ch, bodyColor(i, len(segs)), colorBackground)
	}
}

// bodyColor blends from green at the head toward colorTail at the last segment
func bodyColor(i, n int) terminal.RGB {
	if i == 0 || n < 2 {
		return colorGreen
	}
	t := float64(i) / float64(n-1)
	r, g, b := toColorful(colorGreen).BlendLab(toColorful(colorTail), t).Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
