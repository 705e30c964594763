package engine

import (
	"errors"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestMachineTransitions verifies the table accepts listed successors
func TestMachineTransitions(t *testing.T) {
	m := NewMachine(epoch)
	if m.Current() != SceneStartMenu {
		t.Fatalf("Expected start menu, got %s", m.Current())
	}

	steps := []Scene{ScenePlay, ScenePauseMenu, ScenePlay, SceneLose, SceneStartMenu, ScenePlay, SceneWin, SceneStartMenu, SceneExit}
	for i, to := range steps {
		now := epoch.Add(time.Duration(i+1) * time.Second)
		m.Transition(to, now)
		if m.Current() != to {
			t.Fatalf("Step %d: expected %s, got %s", i, to, m.Current())
		}
		if !m.EnteredAt().Equal(now) {
			t.Errorf("Step %d: expected enteredAt %v, got %v", i, now, m.EnteredAt())
		}
	}
}

// TestMachineIllegalTransition verifies a missing edge panics with *TransitionError
func TestMachineIllegalTransition(t *testing.T) {
	tests := []struct {
		from, to Scene
	}{
		{SceneStartMenu, SceneWin},
		{SceneStartMenu, ScenePauseMenu},
		{SceneWin, ScenePlay},
		{SceneExit, SceneStartMenu},
	}
	for _, tt := range tests {
		m := &Machine{current: tt.from}
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var te *TransitionError
				if !ok || !errors.As(err, &te) {
					t.Fatalf("%s -> %s: expected *TransitionError panic, got %v", tt.from, tt.to, r)
				}
				if te.From != tt.from || te.To != tt.to {
					t.Errorf("Expected %s -> %s, got %s -> %s", tt.from, tt.to, te.From, te.To)
				}
			}()
			m.Transition(tt.to, epoch)
		}()
		if m.Current() != tt.from {
			t.Errorf("Expected scene to stay %s, got %s", tt.from, m.Current())
		}
	}
}

// TestMachineHelpReturn verifies Help goes back to whichever menu opened it
func TestMachineHelpReturn(t *testing.T) {
	m := NewMachine(epoch)
	m.EnterHelp(epoch)
	if m.Current() != SceneHelp || m.HelpReturn() != SceneStartMenu {
		t.Fatalf("Expected help returning to start menu, got %s/%s", m.Current(), m.HelpReturn())
	}
	m.LeaveHelp(epoch)
	if m.Current() != SceneStartMenu {
		t.Errorf("Expected start menu, got %s", m.Current())
	}

	m.Transition(ScenePlay, epoch)
	m.Transition(ScenePauseMenu, epoch)
	m.EnterHelp(epoch)
	m.LeaveHelp(epoch)
	if m.Current() != ScenePauseMenu {
		t.Errorf("Expected pause menu, got %s", m.Current())
	}
}

// TestMachineHelpFromPlayPanics verifies Help is only reachable from menus
func TestMachineHelpFromPlayPanics(t *testing.T) {
	m := NewMachine(epoch)
	m.Transition(ScenePlay, epoch)
	defer func() {
		if _, ok := recover().(*TransitionError); !ok {
			t.Error("Expected *TransitionError panic")
		}
		if m.HelpReturn() != SceneStartMenu {
			t.Errorf("Expected help return untouched, got %s", m.HelpReturn())
		}
	}()
	m.EnterHelp(epoch)
}

// TestMenuWrap verifies the cursor wraps both ways
func TestMenuWrap(t *testing.T) {
	m := newPauseMenu()
	m.Up()
	if m.Cursor() != 3 {
		t.Errorf("Expected cursor 3 after wrapping up, got %d", m.Cursor())
	}
	m.Down()
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor 0 after wrapping down, got %d", m.Cursor())
	}
	m.Down()
	m.Down()
	if m.selected() != actionHelp {
		t.Errorf("Expected help selected, got %s", m.selected())
	}
	m.Reset()
	if m.Cursor() != 0 {
		t.Errorf("Expected cursor reset, got %d", m.Cursor())
	}
}
