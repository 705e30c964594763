// Package config holds the command-line, environment and config-file settings
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/peterbourgon/ff/v3"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/terminal"
)

// EnvPrefix prefixes every environment override, e.g. VI_SNAKE_TICK=50ms
const EnvPrefix = "VI_SNAKE"

// Config is the resolved runtime configuration
type Config struct {
	Tick    time.Duration
	Poll    time.Duration
	Lockout time.Duration
	Seed    uint64

	Backend string
	Render  string
	Color   string

	Mute   bool
	Debug  bool
	LogDir string

	// ConfigFile is read by ff, not by the game
	ConfigFile string
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Tick:    engine.DefaultTick,
		Poll:    engine.DefaultPoll,
		Lockout: engine.DefaultLockout,
		Backend: "ansi",
		Render:  "full",
		Color:   "truecolor",
		LogDir:  "logs",
	}
}

// RegisterFlags binds every field to fs with the current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.Tick, "tick", c.Tick, "frame delay while playing")
	fs.DurationVar(&c.Poll, "poll", c.Poll, "frame delay in menus and message screens")
	fs.DurationVar(&c.Lockout, "lockout", c.Lockout, "input lockout after win or lose")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food RNG seed, 0 for time-based")
	fs.StringVar(&c.Backend, "backend", c.Backend, "terminal backend: ansi, tcell")
	fs.StringVar(&c.Render, "render", c.Render, "ansi render mode: full, diff")
	fs.StringVar(&c.Color, "color", c.Color, "color mode: truecolor, 256, auto")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log")
	fs.StringVar(&c.LogDir, "log-dir", c.LogDir, "debug log directory")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "config file (flag value per line)")
}

// Options are the ff parse options for a flag set built by RegisterFlags.
// Flags win over VI_SNAKE_* variables, which win over the config file.
func Options() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithAllowMissingConfigFile(true),
	}
}

// Validate rejects non-positive durations and unknown mode names
func (c Config) Validate() error {
	var errs []error
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", c.Tick))
	}
	if c.Poll <= 0 {
		errs = append(errs, fmt.Errorf("poll must be positive, got %v", c.Poll))
	}
	if c.Lockout <= 0 {
		errs = append(errs, fmt.Errorf("lockout must be positive, got %v", c.Lockout))
	}
	if _, err := c.TerminalOptions(); err != nil {
		errs = append(errs, err)
	}
	if c.Debug && c.LogDir == "" {
		errs = append(errs, errors.New("log-dir must be set when debug is on"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// TerminalOptions maps the backend, render and color names to driver options.
// Color "auto" is resolved from the environment.
func (c Config) TerminalOptions() (terminal.Options, error) {
	var opts terminal.Options
	var ok bool

	if opts.Backend, ok = terminal.ParseBackend(c.Backend); !ok {
		return opts, fmt.Errorf("unknown backend %q", c.Backend)
	}
	if opts.RenderMode, ok = terminal.ParseRenderMode(c.Render); !ok {
		return opts, fmt.Errorf("unknown render mode %q", c.Render)
	}
	if c.Color == "auto" {
		opts.ColorMode = terminal.DetectColorMode()
	} else if opts.ColorMode, ok = terminal.ParseColorMode(c.Color); !ok {
		return opts, fmt.Errorf("unknown color mode %q", c.Color)
	}
	return opts, nil
}

// GameOptions carries the timing settings into engine options
func (c Config) GameOptions() engine.Options {
	return engine.Options{
		Tick:    c.Tick,
		Poll:    c.Poll,
		Lockout: c.Lockout,
		Seed:    c.Seed,
	}
}
