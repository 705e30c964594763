package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/engine"
)

const (
	sampleRate = beep.SampleRate(48000)
	// speakerBuffer trades latency for underrun safety
	speakerBuffer = 100 * time.Millisecond
)

var (
	_ engine.Sounds = (*Player)(nil)
	_ engine.Sounds = Silent{}
)

// Player mixes effects into the system speaker. Playback is asynchronous:
// effects are appended to a mixer the speaker goroutine drains.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player; nothing is heard until Initialize succeeds
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. A second call is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Eat()  { p.play(EffectEat) }
func (p *Player) Chop() { p.play(EffectChop) }
func (p *Player) Win()  { p.play(EffectWin) }
func (p *Player) Lose() { p.play(EffectLose) }

// Close stops every effect and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := BuildEffect(e, sampleRate)
	if err != nil {
		p.logger.Warn("sound effect dropped", "effect", e, "err", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Silent discards every effect
type Silent struct{}

func (Silent) Eat()   {}
func (Silent) Chop()  {}
func (Silent) Win()   {}
func (Silent) Lose()  {}
func (Silent) Close() {}

// Open returns an initialised Player, or Silent when muted or when no
// output device is available
func Open(mute bool, logger *log.Logger) engine.Sounds {
	if mute {
		return Silent{}
	}
	p := NewPlayer(logger)
	if err := p.Initialize(); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}
	}
	return p
}
