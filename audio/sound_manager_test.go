package audio

import (
	"testing"
)

// TestPlayerGracefulDegradation verifies effects are safe without an open speaker
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	p.Eat()
	p.Chop()
	p.Win()
	p.Lose()
	p.Close()
	p.Close()
}

// TestOpenMuted verifies mute never touches the speaker
func TestOpenMuted(t *testing.T) {
	if _, ok := Open(true, nil).(Silent); !ok {
		t.Error("Expected Silent when muted")
	}
}

// TestSilent verifies the silent implementation is inert
func TestSilent(t *testing.T) {
	var s Silent
	s.Eat()
	s.Chop()
	s.Win()
	s.Lose()
	s.Close()
}
