package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTcellKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), KeyD},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), KeyS},
		{tcell.NewEventKey(tcell.KeyRune, '#', tcell.ModNone), KeyUnknown},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyInterrupt},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyLeft},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyUnknown},
	}
	for _, tt := range tests {
		if got := tcellKey(tt.ev); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.ev.Name(), tt.want, got)
		}
	}
}

func TestTcellStyleColors(t *testing.T) {
	st := tcellStyle(Cell{Rune: 'x', Fg: RGB{245, 0, 0}, Bg: RGB{0, 64, 64}})
	fg, bg, _ := st.Decompose()

	if r, g, b := fg.RGB(); r != 245 || g != 0 || b != 0 {
		t.Errorf("Expected fg (245,0,0), got (%d,%d,%d)", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 0 || g != 64 || b != 64 {
		t.Errorf("Expected bg (0,64,64), got (%d,%d,%d)", r, g, b)
	}
}
