package engine

import (
	"fmt"
	"time"
)

// Scene is one top-level game state
type Scene uint8

const (
	SceneStartMenu Scene = iota
	ScenePauseMenu
	ScenePlay
	SceneHelp
	SceneWin
	SceneLose
	// SceneExit is terminal: the loop returns once it is entered
	SceneExit
)

var sceneNames = [...]string{
	SceneStartMenu: "start_menu",
	ScenePauseMenu: "pause_menu",
	ScenePlay:      "play",
	SceneHelp:      "help",
	SceneWin:       "win",
	SceneLose:      "lose",
	SceneExit:      "exit",
}

func (s Scene) String() string {
	if int(s) < len(sceneNames) {
		return sceneNames[s]
	}
	return fmt.Sprintf("scene(%d)", uint8(s))
}

// transitions lists the legal successors of every scene
var transitions = map[Scene][]Scene{
	SceneStartMenu: {ScenePlay, SceneHelp, SceneExit},
	ScenePauseMenu: {ScenePlay, SceneHelp, SceneExit},
	ScenePlay:      {ScenePauseMenu, SceneWin, SceneLose, SceneExit},
	SceneHelp:      {SceneStartMenu, ScenePauseMenu, SceneExit},
	SceneWin:       {SceneStartMenu, SceneExit},
	SceneLose:      {SceneStartMenu, SceneExit},
}

// TransitionError is the panic value of a transition missing from the table
type TransitionError struct {
	From, To Scene
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("engine: illegal scene transition %s -> %s", e.From, e.To)
}

// Machine tracks the active scene and the scene Help returns to
type Machine struct {
	current    Scene
	helpReturn Scene
	enteredAt  time.Time
}

// NewMachine starts in SceneStartMenu
func NewMachine(now time.Time) *Machine {
	return &Machine{
		current:    SceneStartMenu,
		helpReturn: SceneStartMenu,
		enteredAt:  now,
	}
}

func (m *Machine) Current() Scene {
	return m.current
}

// EnteredAt is when the active scene was entered
func (m *Machine) EnteredAt() time.Time {
	return m.enteredAt
}

// HelpReturn is the scene Help goes back to
func (m *Machine) HelpReturn() Scene {
	return m.helpReturn
}

// Allowed reports whether the table permits current -> to
func (m *Machine) Allowed(to Scene) bool {
	for _, s := range transitions[m.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to scene to, panicking with *TransitionError when the
// table does not allow it
func (m *Machine) Transition(to Scene, now time.Time) {
	if !m.Allowed(to) {
		panic(&TransitionError{From: m.current, To: to})
	}
	m.current = to
	m.enteredAt = now
}

// EnterHelp opens Help and records the current scene as its return target
func (m *Machine) EnterHelp(now time.Time) {
	from := m.current
	m.Transition(SceneHelp, now)
	m.helpReturn = from
}

// LeaveHelp returns to the scene that opened Help
func (m *Machine) LeaveHelp(now time.Time) {
	m.Transition(m.helpReturn, now)
}
