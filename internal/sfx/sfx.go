// Package sfx synthesizes the game's sound effects as beep streamers. It
// does no playback; hosts hand the streamers (or their encoded bytes) to
// whatever audio device they own.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"dodge/internal/engine"
)

const (
	SampleRate   = beep.SampleRate(44100)
	ChannelCount = 2
)

// Kind identifies a sound effect.
type Kind int

const (
	Hit Kind = iota
	Miss
	Win
	Lose
	Start
)

// Kinds lists every effect, for hosts that pre-render them.
var Kinds = []Kind{Hit, Miss, Win, Lose, Start}

func (k Kind) String() string {
	switch k {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Start:
		return "start"
	}
	return "unknown"
}

// Streamer returns a fresh, finite streamer for kind. Each call starts from
// the beginning, so the result can be played concurrently with others.
func Streamer(kind Kind) beep.Streamer {
	switch kind {
	case Hit:
		// Snappy pop: rising sweep with a bell attack.
		return NewEnvelope(NewSweep(SampleRate, 480, 1200), SampleRate.N(90*time.Millisecond), 0.5, 9)
	case Miss:
		return NewEnvelope(NewThud(SampleRate, 11111), SampleRate.N(140*time.Millisecond), 0.45, 7)
	case Win:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 110*time.Millisecond, 0.35)
	case Lose:
		return arpeggio([]float64{392.0, 311.13, 261.63, 196.0}, 160*time.Millisecond, 0.35)
	case Start:
		return NewEnvelope(NewSweep(SampleRate, 660, 880), SampleRate.N(60*time.Millisecond), 0.3, 5)
	}
	return beep.Silence(0)
}

// arpeggio plays one enveloped sine note per frequency, back to back.
func arpeggio(freqs []float64, note time.Duration, gain float64) beep.Streamer {
	n := SampleRate.N(note)
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(SampleRate, f)
		if err != nil {
			continue
		}
		notes = append(notes, NewEnvelope(tone, n, gain, 4))
	}
	return beep.Seq(notes...)
}

// Sweep is a sine whose frequency glides linearly from one pitch to another
// over its lifetime. Length is set by the wrapping Envelope.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	span     int
}

func NewSweep(sr beep.SampleRate, from, to float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, span: sr.N(100 * time.Millisecond)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(float64(g.pos)/float64(g.span), 1)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		s := math.Sin(g.phase)
		// Thin third harmonic for clarity.
		s += 0.12 * math.Sin(3*g.phase)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error { return nil }

// Thud is low-passed noise over a falling low sine.
type Thud struct {
	sr    beep.SampleRate
	seed  uint64
	lp    float64
	phase float64
	pos   int
}

func NewThud(sr beep.SampleRate, seed uint64) *Thud {
	return &Thud{sr: sr, seed: seed}
}

func (g *Thud) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.seed = g.seed*6364136223846793005 + 1442695040888963407
		noise := float64(int64(g.seed>>33)-int64(1<<30)) / float64(1<<30)
		g.lp = g.lp*0.88 + noise*0.12
		freq := 140 - 260*t
		if freq < 40 {
			freq = 40
		}
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		s := 0.7*math.Sin(g.phase) + 1.6*g.lp
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Thud) Err() error { return nil }

// Envelope limits a streamer to length samples, applies a short linear
// attack and an exponential decay, and scales by gain.
type Envelope struct {
	s      beep.Streamer
	length int
	gain   float64
	decay  float64
	pos    int
}

func NewEnvelope(s beep.Streamer, length int, gain, decay float64) *Envelope {
	return &Envelope{s: s, length: length, gain: gain, decay: decay}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.length {
		return 0, false
	}
	if rem := e.length - e.pos; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.s.Stream(samples)
	attack := e.length / 50
	for i := 0; i < n; i++ {
		p := float64(e.pos) / float64(e.length)
		env := math.Exp(-p * e.decay)
		if e.pos < attack {
			env *= float64(e.pos) / float64(attack)
		}
		samples[i][0] *= env * e.gain
		samples[i][1] *= env * e.gain
		e.pos++
	}
	return n, ok || n > 0
}

func (e *Envelope) Err() error { return e.s.Err() }

// Bind subscribes play to the round events that have a sound. play is
// called on the emitting goroutine and must not block.
func Bind(bus *engine.EventBus, play func(Kind)) {
	bus.Subscribe(engine.EventBallHit, func(engine.Event) { play(Hit) })
	bus.Subscribe(engine.EventMiss, func(engine.Event) { play(Miss) })
	bus.Subscribe(engine.EventRoundWon, func(engine.Event) { play(Win) })
	bus.Subscribe(engine.EventRoundLost, func(engine.Event) { play(Lose) })
	bus.Subscribe(engine.EventRestart, func(engine.Event) { play(Start) })
}
