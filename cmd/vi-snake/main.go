package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	errWindowTooSmall = errors.New("window too small")
	errSignalled      = errors.New("terminated by signal")
)

func main() {
	// Panic recovery: out-of-bounds draws and illegal scene transitions end here
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(runMain(os.Args[1:]))
}

func runMain(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := newRootCommand(run).ParseAndRun(ctx, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}
	return 0
}

// newRootCommand parses flags, environment and config file into a validated Config for exec
func newRootCommand(exec func(context.Context, config.Config) error) *ffcli.Command {
	cfg := config.Default()
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       "vi-snake",
		ShortUsage: "vi-snake [flags]",
		ShortHelp:  "Snake in the terminal",
		LongHelp: "Flags may also be set through VI_SNAKE_* environment variables " +
			"or a config file given with -config.",
		FlagSet: fs,
		Options: config.Options(),
		Exec: func(ctx context.Context, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return exec(ctx, cfg)
		},
	}
}

func run(ctx context.Context, cfg config.Config) error {
	termOpts, err := cfg.TerminalOptions()
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	term := terminal.New(termOpts)
	if err := term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	core.RegisterTerminal(term)
	defer term.Fini()

	// Buffer coordinates are 1-based terminal coordinates plus an unused row and column 0
	rows, cols := term.Size()
	rows, cols = rows+1, cols+1
	logger.Info("terminal ready", "rows", rows-1, "cols", cols-1, "backend", cfg.Backend, "render", cfg.Render)

	if !engine.FitsMinimum(rows, cols) {
		logger.Warn("window too small", "rows", rows-1, "cols", cols-1)
		return sizeWarning(ctx, term, rows, cols, cfg.Poll)
	}

	opts := cfg.GameOptions()
	opts.Logger = logger
	opts.Sounds = audio.Open(cfg.Mute, logger)

	game := engine.NewGame(rows, cols, opts)
	err = game.Run(ctx, term)
	if ctx.Err() != nil {
		logger.Info("stopped by signal")
		return errSignalled
	}
	if err != nil {
		logger.Error("game loop ended", "err", err)
	}
	return err
}

// sizeWarning shows the too-small notice until a key is pressed and always fails
func sizeWarning(ctx context.Context, term terminal.Driver, rows, cols int, poll time.Duration) error {
	buf := terminal.NewBuffer(rows, cols)
	engine.DrawSizeWarning(buf)
	if err := term.Flush(buf); err != nil {
		return err
	}

	clock := engine.SystemClock{}
	for ctx.Err() == nil {
		key, err := term.PollKey()
		if err != nil {
			return fmt.Errorf("poll key: %w", err)
		}
		if key != terminal.KeyNone {
			break
		}
		clock.Sleep(ctx, poll)
	}

	return fmt.Errorf("%w: window must be at least %dx%d (rows X cols), have %dx%d",
		errWindowTooSmall, engine.MinRows, engine.MinCols, rows-1, cols-1)
}
