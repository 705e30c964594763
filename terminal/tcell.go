package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellDriver renders the Buffer through tcell instead of raw ANSI output
type tcellDriver struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func newTcellDriver() Driver {
	return &tcellDriver{
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// Init creates and initializes the tcell screen and starts event delivery
func (d *tcellDriver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.HideCursor()
	s.Clear()

	d.screen = s
	go s.ChannelEvents(d.events, d.quit)

	d.initialized = true
	return nil
}

// Fini stops event delivery and restores the terminal
func (d *tcellDriver) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return
	}
	close(d.quit)
	d.screen.Fini()
	d.finalized = true
}

// Size returns terminal rows, cols
func (d *tcellDriver) Size() (int, int) {
	if d.screen == nil {
		return 0, 0
	}
	w, h := d.screen.Size()
	return h, w
}

// PollKey drains at most one key event without blocking
func (d *tcellDriver) PollKey() (Key, error) {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return KeyNone, nil
			}
			kev, isKey := ev.(*tcell.EventKey)
			if !isKey {
				// Resize and mouse events are not game input
				continue
			}
			return tcellKey(kev), nil
		default:
			return KeyNone, nil
		}
	}
}

// tcellKey maps a tcell key event to a logical key
func tcellKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyFromRune(ev.Rune())
	case tcell.KeyEnter, tcell.KeyLF:
		return KeyEnter
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyInterrupt
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	}
	return KeyUnknown
}

// Flush copies every cell into tcell and shows the frame.
// Gutter row 0 and column 0 have no screen position and are skipped.
func (d *tcellDriver) Flush(buf *Buffer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.finalized {
		return nil
	}

	rows, cols := buf.Rows(), buf.Cols()
	cells := buf.Cells()
	for row := 1; row < rows; row++ {
		for col := 1; col < cols; col++ {
			c := cells[row*cols+col]
			ch := c.Rune
			if ch == 0 {
				ch = ' '
			}
			d.screen.SetContent(col-1, row-1, ch, nil, tcellStyle(c))
		}
	}
	d.screen.Show()
	return nil
}

func tcellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
}
