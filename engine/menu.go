package engine

import "github.com/lixenwraith/vi-snake/terminal"

// menuAction is what confirming a menu entry does
type menuAction uint8

const (
	actionPlay menuAction = iota
	actionContinue
	actionNewGame
	actionHelp
	actionQuit
)

var menuActionNames = [...]string{
	actionPlay:     "play",
	actionContinue: "continue",
	actionNewGame:  "new_game",
	actionHelp:     "help",
	actionQuit:     "quit",
}

func (a menuAction) String() string {
	return menuActionNames[a]
}

// Menu is a vertical list of entries drawn two text lines apart with a
// wrapping cursor
type Menu struct {
	lines   []string
	actions []menuAction
	cursor  int
}

func newStartMenu() *Menu {
	return &Menu{
		lines:   startMenuText,
		actions: []menuAction{actionPlay, actionHelp, actionQuit},
	}
}

func newPauseMenu() *Menu {
	return &Menu{
		lines:   pauseMenuText,
		actions: []menuAction{actionContinue, actionNewGame, actionHelp, actionQuit},
	}
}

// Cursor is the index of the highlighted entry
func (m *Menu) Cursor() int {
	return m.cursor
}

func (m *Menu) Up() {
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.actions) - 1
	}
}

func (m *Menu) Down() {
	m.cursor++
	if m.cursor >= len(m.actions) {
		m.cursor = 0
	}
}

func (m *Menu) Reset() {
	m.cursor = 0
}

func (m *Menu) selected() menuAction {
	return m.actions[m.cursor]
}

// handle moves the cursor and reports the confirmed action, if any
func (m *Menu) handle(key terminal.Key) (menuAction, bool) {
	switch key {
	case terminal.KeyW, terminal.KeyUp:
		m.Up()
	case terminal.KeyS, terminal.KeyDown:
		m.Down()
	case terminal.KeyEnter:
		return m.selected(), true
	}
	return 0, false
}
