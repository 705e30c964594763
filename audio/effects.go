package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"golang.org/x/exp/rand"
)

// Effect identifies one game sound
type Effect uint8

const (
	EffectEat Effect = iota
	EffectChop
	EffectWin
	EffectLose
	effectCount
)

var effectNames = [...]string{
	EffectEat:  "eat",
	EffectChop: "chop",
	EffectWin:  "win",
	EffectLose: "lose",
}

func (e Effect) String() string {
	if e < effectCount {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// note is one step of an effect
type note struct {
	freq   float64
	dur    time.Duration
	wave   WaveType
	volume float64
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 20 * time.Millisecond
)

// effectNotes are played back to back
var effectNotes = [effectCount][]note{
	EffectEat: {
		{freq: 880, dur: 40 * time.Millisecond, wave: WaveSine, volume: 0.5},
		{freq: 1320, dur: 50 * time.Millisecond, wave: WaveSine, volume: 0.4},
	},
	EffectChop: {
		{freq: 120, dur: 150 * time.Millisecond, wave: WaveSquare, volume: 0.25},
		{dur: 60 * time.Millisecond, wave: WaveNoise, volume: 0.2},
	},
	EffectWin: {
		{freq: 523.25, dur: 90 * time.Millisecond, wave: WaveSine, volume: 0.5},
		{freq: 659.25, dur: 90 * time.Millisecond, wave: WaveSine, volume: 0.5},
		{freq: 783.99, dur: 90 * time.Millisecond, wave: WaveSine, volume: 0.5},
		{freq: 1046.5, dur: 200 * time.Millisecond, wave: WaveSine, volume: 0.5},
	},
	EffectLose: {
		{freq: 392, dur: 150 * time.Millisecond, wave: WaveSquare, volume: 0.2},
		{freq: 330, dur: 150 * time.Millisecond, wave: WaveSquare, volume: 0.2},
		{freq: 262, dur: 300 * time.Millisecond, wave: WaveSquare, volume: 0.2},
	},
}

// oscillator generates square and noise waves; sines come from beep's generators
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite square or noise stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(uint64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which must last duration, to avoid clicks at note edges
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol <= 0 silences it since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// buildNote renders one note as a finite, shaped stream
func buildNote(n note, rate beep.SampleRate) (beep.Streamer, error) {
	var src beep.Streamer
	switch n.wave {
	case WaveSine:
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sine %.0fHz: %w", n.freq, err)
		}
		src = beep.Take(rate.N(n.dur), tone)
	default:
		src = NewOscillator(n.freq, n.dur, n.wave, rate)
	}
	return newVolume(NewEnvelope(src, n.dur, noteAttack, noteRelease, rate), n.volume), nil
}

// BuildEffect renders e at rate as one finite stream
func BuildEffect(e Effect, rate beep.SampleRate) (beep.Streamer, error) {
	if e >= effectCount {
		return nil, fmt.Errorf("unknown effect %s", e)
	}

	notes := effectNotes[e]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := buildNote(n, rate)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", e, err)
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}
