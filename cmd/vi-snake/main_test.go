package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/terminal"
)

type fakeDriver struct {
	keys    []terminal.Key
	flushed []*terminal.Buffer
}

func (d *fakeDriver) Init() error            { return nil }
func (d *fakeDriver) Fini()                  {}
func (d *fakeDriver) Size() (rows, cols int) { return 10, 20 }
func (d *fakeDriver) Flush(buf *terminal.Buffer) error {
	d.flushed = append(d.flushed, buf)
	return nil
}
func (d *fakeDriver) PollKey() (terminal.Key, error) {
	if len(d.keys) == 0 {
		return terminal.KeyNone, nil
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, nil
}

func TestSizeWarningWaitsForKey(t *testing.T) {
	d := &fakeDriver{keys: []terminal.Key{terminal.KeyNone, terminal.KeyNone, terminal.KeyEnter}}

	err := sizeWarning(context.Background(), d, 11, 21, time.Millisecond)
	if !errors.Is(err, errWindowTooSmall) {
		t.Fatalf("Expected errWindowTooSmall, got %v", err)
	}
	if !strings.Contains(err.Error(), "have 10x20") {
		t.Errorf("Expected terminal size in message, got %v", err)
	}
	if !strings.Contains(err.Error(), "at least 25x42 (rows X cols)") {
		t.Errorf("Expected the on-screen minimum in message, got %v", err)
	}
	if len(d.flushed) != 1 {
		t.Errorf("Expected one frame, got %d", len(d.flushed))
	}
	if len(d.keys) != 0 {
		t.Errorf("Expected every key consumed, %d left", len(d.keys))
	}
}

func TestSizeWarningCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sizeWarning(ctx, &fakeDriver{}, 11, 21, time.Millisecond)
	if !errors.Is(err, errWindowTooSmall) {
		t.Errorf("Expected errWindowTooSmall, got %v", err)
	}
}

func TestRootCommandRejectsBadConfig(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-backend", "curses"}, "unknown backend"},
		{[]string{"-tick", "0s"}, "tick must be positive"},
	}
	for _, tt := range tests {
		called := false
		err := newRootCommand(func(context.Context, config.Config) error {
			called = true
			return nil
		}).ParseAndRun(context.Background(), tt.args)
		if called {
			t.Errorf("%v: expected exec not to run", tt.args)
		}
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%v: expected error containing %q, got %v", tt.args, tt.want, err)
		}
	}
}

// parseRoot runs the root command with args and returns the Config handed to exec
func parseRoot(t *testing.T, args ...string) config.Config {
	t.Helper()
	var got config.Config
	called := false
	err := newRootCommand(func(_ context.Context, cfg config.Config) error {
		got = cfg
		called = true
		return nil
	}).ParseAndRun(context.Background(), args)
	if err != nil {
		t.Fatalf("ParseAndRun failed: %v", err)
	}
	if !called {
		t.Fatal("Expected exec to run")
	}
	return got
}

func TestRootCommandFlags(t *testing.T) {
	cfg := parseRoot(t, "-tick", "50ms", "-seed", "7", "-backend", "tcell", "-render", "diff", "-color", "256", "-mute")
	if cfg.Tick != 50*time.Millisecond || cfg.Seed != 7 || !cfg.Mute {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.Backend != "tcell" || cfg.Render != "diff" || cfg.Color != "256" {
		t.Errorf("Mode flags not applied: %+v", cfg)
	}
}

func TestRootCommandEnv(t *testing.T) {
	t.Setenv("VI_SNAKE_POLL", "25ms")
	t.Setenv("VI_SNAKE_LOG_DIR", "/tmp/snake-logs")
	t.Setenv("VI_SNAKE_TICK", "80ms")

	cfg := parseRoot(t, "-tick", "40ms")
	if cfg.Poll != 25*time.Millisecond {
		t.Errorf("Expected poll from env, got %v", cfg.Poll)
	}
	if cfg.LogDir != "/tmp/snake-logs" {
		t.Errorf("Expected log dir from env, got %q", cfg.LogDir)
	}
	if cfg.Tick != 40*time.Millisecond {
		t.Errorf("Expected flag to win over env, got %v", cfg.Tick)
	}
}

func TestRootCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vi-snake.conf")
	content := "lockout 2s\nrender diff\ndebug true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := parseRoot(t, "-config", path)
	if cfg.Lockout != 2*time.Second || cfg.Render != "diff" || !cfg.Debug {
		t.Errorf("Config file not applied: %+v", cfg)
	}
}

func TestRootCommandMissingConfigFile(t *testing.T) {
	cfg := parseRoot(t, "-config", filepath.Join(t.TempDir(), "absent.conf"))
	if cfg.Tick != config.Default().Tick {
		t.Errorf("Expected default tick, got %v", cfg.Tick)
	}
}
