// Package scene holds the host-side view of a round: the menu/playing
// session, layout of the arena from the framebuffer, and the sprite buffers
// every renderer draws. It has no GL or platform dependencies.
package scene

import (
	"dodge/internal/engine"
)

type State int

const (
	StateMenu State = iota
	StatePlaying
)

// Session wraps a round with the host's menu screen. The round keeps
// animating behind the menu; the first tap starts play.
type Session struct {
	State     State
	Round     *engine.Round
	Bus       *engine.EventBus
	Particles *ParticleSystem
	Time      float64 // seconds of frames seen, drives UI pulses
}

func NewSession(cfg engine.Config, seed uint64) (*Session, error) {
	bus := engine.NewEventBus()
	round, err := engine.NewRound(cfg, engine.NewRand(seed), bus)
	if err != nil {
		return nil, err
	}
	s := &Session{
		State:     StateMenu,
		Round:     round,
		Bus:       bus,
		Particles: NewParticleSystem(MaxParticles, seed^0xBEAD),
	}
	bus.Subscribe(engine.EventBallHit, func(e engine.Event) {
		s.Particles.SpawnBurst(e.X, e.Y, BallColor(e.Index))
	})
	bus.Subscribe(engine.EventMiss, func(e engine.Event) {
		s.Particles.SpawnRipple(e.X, e.Y)
	})
	bus.Subscribe(engine.EventRestart, func(engine.Event) {
		s.Particles.Clear()
	})
	return s, nil
}

// ClampDT bounds a frame's elapsed time to [0, engine.MaxFrameDT].
func ClampDT(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > engine.MaxFrameDT {
		return engine.MaxFrameDT
	}
	return dt
}

// Frame advances the session by one render frame.
func (s *Session) Frame(a engine.Arena, dt float64) {
	dt = ClampDT(dt)
	s.Time += dt
	s.Round.Advance(a, dt)
	s.Particles.Update(dt)
}

// Tap forwards a touch-down. On the menu it starts a fresh round instead.
func (s *Session) Tap(a engine.Arena, x, y float64) engine.TouchResult {
	if s.State == StateMenu {
		if !a.Ready() {
			return engine.TouchResult{Outcome: engine.TouchIgnored, Index: -1}
		}
		s.State = StatePlaying
		s.Round.Restart(a)
		return engine.TouchResult{Outcome: engine.TouchRestart, Index: -1}
	}
	return s.Round.OnTouch(a, x, y)
}
