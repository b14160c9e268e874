package scene

import (
	"math"

	"dodge/internal/engine"
)

const (
	// BallRadiusFrac sizes balls from the short side of the surface; a
	// 1080 px wide phone gets 60 px balls.
	BallRadiusFrac = 0.0555
	MinBallRadius  = 6.0
	Gravity        = 2000.0 // px/s², collapse phase only
)

// Layout derives the arena for a framebuffer of fbW x fbH pixels. A zero
// size yields an arena that is not Ready.
func Layout(fbW, fbH int) engine.Arena {
	if fbW <= 0 || fbH <= 0 {
		return engine.Arena{}
	}
	short := math.Min(float64(fbW), float64(fbH))
	return engine.Arena{
		Width:   float64(fbW),
		Height:  float64(fbH),
		Radius:  math.Max(MinBallRadius, math.Round(short*BallRadiusFrac)),
		Gravity: Gravity,
	}
}

// HUDScale returns the glyph pixel size for HUD text on this surface.
func HUDScale(a engine.Arena) float64 {
	short := math.Min(a.Width, a.Height)
	return math.Max(2, math.Floor(short/180))
}
