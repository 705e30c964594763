package config

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/terminal"
)

// TestDefault verifies defaults match the engine and pass validation
func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Tick != 30*time.Millisecond || cfg.Poll != 10*time.Millisecond || cfg.Lockout != time.Second {
		t.Errorf("Unexpected default timings: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

// TestTerminalOptions verifies mode names map to driver options
func TestTerminalOptions(t *testing.T) {
	cfg := Default()
	cfg.Backend, cfg.Render, cfg.Color = "tcell", "diff", "256"

	opts, err := cfg.TerminalOptions()
	if err != nil {
		t.Fatalf("TerminalOptions failed: %v", err)
	}
	want := terminal.Options{Backend: terminal.BackendTcell, ColorMode: terminal.ColorMode256, RenderMode: terminal.RenderDiff}
	if opts != want {
		t.Errorf("Expected %+v, got %+v", want, opts)
	}
}

// TestValidate verifies bad values are rejected with a useful message
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick must be positive"},
		{"negative poll", func(c *Config) { c.Poll = -time.Millisecond }, "poll must be positive"},
		{"negative lockout", func(c *Config) { c.Lockout = -time.Second }, "lockout must be positive"},
		{"backend", func(c *Config) { c.Backend = "curses" }, `unknown backend "curses"`},
		{"render", func(c *Config) { c.Render = "partial" }, `unknown render mode "partial"`},
		{"color", func(c *Config) { c.Color = "16" }, `unknown color mode "16"`},
		{"log dir", func(c *Config) { c.Debug = true; c.LogDir = "" }, "log-dir must be set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// TestGameOptions verifies timings are carried into the engine
func TestGameOptions(t *testing.T) {
	cfg := Default()
	cfg.Seed = 3
	got := cfg.GameOptions()
	want := engine.Options{Tick: cfg.Tick, Poll: cfg.Poll, Lockout: cfg.Lockout, Seed: 3}
	if got.Tick != want.Tick || got.Poll != want.Poll || got.Lockout != want.Lockout || got.Seed != want.Seed {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
