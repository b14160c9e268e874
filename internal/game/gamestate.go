package game

import (
	"log"

	"dodge/internal/engine"
	"dodge/internal/scene"
	"dodge/internal/sfx"
)

// hostGame is the part of a frame loop both GL hosts share: the session,
// the arena derived from the current framebuffer, and the sprite buffer.
type hostGame struct {
	session *scene.Session
	arena   engine.Arena
	sprites []float32
}

func newHostGame(settings scene.Settings) (*hostGame, error) {
	session, err := scene.NewSession(settings.Config, settings.Seed)
	if err != nil {
		return nil, err
	}
	g := &hostGame{session: session}
	if !settings.Mute {
		sfx.Bind(session.Bus, PlaySound)
	}
	return g, nil
}

// resize re-derives the arena. Balls keep their positions; the step's
// wall clamp pulls any that are now outside back in.
func (g *hostGame) resize(fbW, fbH int) {
	a := scene.Layout(fbW, fbH)
	if a != g.arena {
		log.Printf("surface %dx%d, ball radius %.0f", fbW, fbH, a.Radius)
	}
	g.arena = a
}

func (g *hostGame) tap(x, y float64) engine.TouchResult {
	return g.session.Tap(g.arena, x, y)
}

// idle reports whether the next tap only starts or restarts a round.
func (g *hostGame) idle() bool {
	return g.session.State == scene.StateMenu || g.session.Round.IsGameOver()
}

func (g *hostGame) step(dt float64) {
	g.session.Frame(g.arena, dt)
}

func (g *hostGame) buildSprites() []float32 {
	g.sprites = scene.Sprites(g.sprites, g.session, g.arena)
	return g.sprites
}
