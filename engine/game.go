package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/vi-snake/terminal"
	"github.com/lixenwraith/vi-snake/terminal/tui"
)

// ErrInterrupted is returned by Run when the player presses Ctrl+C
var ErrInterrupted = errors.New("engine: interrupted")

// KeySource yields at most one key per call without blocking
type KeySource interface {
	PollKey() (terminal.Key, error)
}

// Screen is what the loop needs from a terminal driver
type Screen interface {
	KeySource
	Flush(buf *terminal.Buffer) error
}

// Options configures a Game. Zero durations take the defaults below.
type Options struct {
	Tick    time.Duration
	Poll    time.Duration
	Lockout time.Duration
	Seed    uint64

	Logger *log.Logger
	Sounds Sounds
	Clock  Clock
}

const (
	DefaultTick    = 30 * time.Millisecond
	DefaultPoll    = 10 * time.Millisecond
	DefaultLockout = time.Second
)

// Game owns the buffer, the field state and the scene machine, and runs the
// single poll/update/draw/flush/sleep loop
type Game struct {
	opts   Options
	logger *log.Logger
	sounds Sounds
	clock  Clock

	buf     *terminal.Buffer
	state   *State
	machine *Machine

	startMenu *Menu
	pauseMenu *Menu
}

// NewGame creates a game for a rows x cols buffer, starting at the start menu
func NewGame(rows, cols int, opts Options) *Game {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Poll <= 0 {
		opts.Poll = DefaultPoll
	}
	if opts.Lockout <= 0 {
		opts.Lockout = DefaultLockout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sounds == nil {
		opts.Sounds = noSounds{}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}

	g := &Game{
		opts:      opts,
		logger:    opts.Logger,
		sounds:    opts.Sounds,
		clock:     opts.Clock,
		buf:       terminal.NewBuffer(rows, cols),
		state:     NewState(rows, cols, NewFoodSpawner(opts.Seed)),
		machine:   NewMachine(opts.Clock.Now()),
		startMenu: newStartMenu(),
		pauseMenu: newPauseMenu(),
	}
	g.logger.Debug("game created", "rows", rows, "cols", cols, "food", g.state.Food)
	return g
}

func (g *Game) Scene() Scene {
	return g.machine.Current()
}

func (g *Game) State() *State {
	return g.state
}

func (g *Game) Buffer() *terminal.Buffer {
	return g.buf
}

// FrameDelay is the sleep after a frame of the active scene
func (g *Game) FrameDelay() time.Duration {
	if g.machine.Current() == ScenePlay {
		return g.opts.Tick
	}
	return g.opts.Poll
}

// Run loops until the player quits, presses Ctrl+C or ctx is cancelled.
// Returns nil on Quit and ErrInterrupted on Ctrl+C.
func (g *Game) Run(ctx context.Context, screen Screen) error {
	defer g.sounds.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		key, err := screen.PollKey()
		if err != nil {
			return fmt.Errorf("poll key: %w", err)
		}
		if key == terminal.KeyInterrupt {
			g.logger.Info("interrupted", "scene", g.Scene())
			return ErrInterrupted
		}

		g.Update(key, g.clock.Now())
		if g.Scene() == SceneExit {
			return nil
		}

		g.Draw()
		if err := screen.Flush(g.buf); err != nil {
			return err
		}

		g.clock.Sleep(ctx, g.FrameDelay())
	}
}

// Update applies one key to the active scene at time now
func (g *Game) Update(key terminal.Key, now time.Time) {
	switch scene := g.machine.Current(); scene {
	case SceneStartMenu:
		g.updateMenu(g.startMenu, key, now)
	case ScenePauseMenu:
		g.updateMenu(g.pauseMenu, key, now)
	case ScenePlay:
		g.updatePlay(key, now)
	case SceneHelp:
		if key != terminal.KeyNone {
			g.leaveHelp(now)
		}
	case SceneWin, SceneLose:
		g.updateMessage(scene, key, now)
	}
}

func (g *Game) updateMenu(m *Menu, key terminal.Key, now time.Time) {
	action, ok := m.handle(key)
	if !ok {
		return
	}
	g.logger.Debug("menu selected", "scene", g.Scene(), "action", action)

	switch action {
	case actionPlay, actionContinue:
		g.enter(ScenePlay, now)
	case actionNewGame:
		g.state.Reset(true)
		g.enter(ScenePlay, now)
	case actionHelp:
		g.machine.EnterHelp(now)
		g.logger.Debug("scene", "to", SceneHelp, "return", g.machine.HelpReturn())
	case actionQuit:
		g.enter(SceneExit, now)
	}
}

func (g *Game) updatePlay(key terminal.Key, now time.Time) {
	switch key {
	case terminal.KeyW, terminal.KeyUp:
		g.state.Steer(DirUp)
	case terminal.KeyS, terminal.KeyDown:
		g.state.Steer(DirDown)
	case terminal.KeyA, terminal.KeyLeft:
		g.state.Steer(DirLeft)
	case terminal.KeyD, terminal.KeyRight:
		g.state.Steer(DirRight)
	case terminal.KeyQ, terminal.KeyEscape:
		g.enter(ScenePauseMenu, now)
		return
	}

	res := g.state.Tick()
	if res.Ate {
		g.sounds.Eat()
		g.logger.Debug("food eaten", "score", g.state.Stats.Score, "next", g.state.Food)
	}
	if res.Chopped > 0 {
		g.sounds.Chop()
		g.logger.Debug("snake chopped", "index", res.Chopped, "lives", g.state.Stats.Lives)
	}

	switch res.Outcome {
	case OutcomeWallHit, OutcomeOutOfLives:
		g.logger.Info("round lost", "reason", res.Outcome, "score", g.state.Stats.Score)
		g.sounds.Lose()
		g.enter(SceneLose, now)
	case OutcomeWin:
		g.logger.Info("round won", "best", g.state.Stats.Best)
		g.sounds.Win()
		g.enter(SceneWin, now)
	}
}

// updateMessage waits out the lockout, then any key resets the field.
// Only a win clears the best score.
func (g *Game) updateMessage(scene Scene, key terminal.Key, now time.Time) {
	if now.Sub(g.machine.EnteredAt()) < g.opts.Lockout || key == terminal.KeyNone {
		return
	}
	g.state.Reset(scene == SceneWin)
	g.enter(SceneStartMenu, now)
}

func (g *Game) leaveHelp(now time.Time) {
	g.machine.LeaveHelp(now)
	g.resetMenuFor(g.Scene())
	g.logger.Debug("scene", "to", g.Scene())
}

func (g *Game) enter(scene Scene, now time.Time) {
	g.machine.Transition(scene, now)
	g.resetMenuFor(scene)
	g.logger.Debug("scene", "to", scene)
}

func (g *Game) resetMenuFor(scene Scene) {
	switch scene {
	case SceneStartMenu:
		g.startMenu.Reset()
	case ScenePauseMenu:
		g.pauseMenu.Reset()
	}
}

// Draw renders the active scene into the buffer
func (g *Game) Draw() {
	g.buf.Reset(' ', colorBackground, colorBackground)

	switch g.machine.Current() {
	case SceneStartMenu:
		drawMenu(g.buf, g.startMenu)
	case ScenePauseMenu:
		drawMenu(g.buf, g.pauseMenu)
	case ScenePlay:
		drawPlay(g.buf, g.state)
	case SceneHelp:
		tui.DrawTextBox(g.buf, helpText, colorWhite, colorWhite, colorBackground)
	case SceneWin:
		tui.DrawTextBox(g.buf, winText, colorGreen, colorWhite, colorBackground)
	case SceneLose:
		tui.DrawTextBox(g.buf, loseText, colorRed, colorWhite, colorBackground)
	}
}
