package engine

import (
	"errors"
	"fmt"
)

// Config carries the per-process tuning of a round. It is fixed once the
// round is built; the ball count in particular never changes afterwards.
type Config struct {
	BallCount    int
	TouchPadding float64

	WinHits    int
	LoseMisses int

	StartMultiplier float64
	MaxMultiplier   float64
	StartIncrement  float64
	IncrementDecay  float64

	RespawnSpeedMin float64
	RespawnSpeedMax float64
	ScatterSpeed    float64

	FloorDamping float64

	// CollapseWalls keeps balls inside the side walls during the collapse
	// phase. Off by default: after game over only the floor is solid.
	CollapseWalls bool
}

func DefaultConfig() Config {
	return Config{
		BallCount:       DefaultBallCount,
		TouchPadding:    TouchPadding,
		WinHits:         WinHits,
		LoseMisses:      LoseMisses,
		StartMultiplier: StartMultiplier,
		MaxMultiplier:   MaxMultiplier,
		StartIncrement:  StartIncrement,
		IncrementDecay:  IncrementDecay,
		RespawnSpeedMin: RespawnSpeedMin,
		RespawnSpeedMax: RespawnSpeedMax,
		ScatterSpeed:    ScatterSpeed,
		FloorDamping:    FloorDamping,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.BallCount < 1 || c.BallCount > MaxBalls:
		return fmt.Errorf("%w: ball count %d not in [1,%d]", ErrInvalidConfig, c.BallCount, MaxBalls)
	case c.TouchPadding < 0:
		return fmt.Errorf("%w: touch padding %g", ErrInvalidConfig, c.TouchPadding)
	case c.WinHits <= 0 || c.LoseMisses <= 0:
		return fmt.Errorf("%w: thresholds win=%d lose=%d", ErrInvalidConfig, c.WinHits, c.LoseMisses)
	case c.StartMultiplier <= 0 || c.MaxMultiplier < c.StartMultiplier:
		return fmt.Errorf("%w: multiplier start=%g cap=%g", ErrInvalidConfig, c.StartMultiplier, c.MaxMultiplier)
	case c.StartIncrement < 0:
		return fmt.Errorf("%w: increment %g", ErrInvalidConfig, c.StartIncrement)
	case c.IncrementDecay <= 0 || c.IncrementDecay > 1:
		return fmt.Errorf("%w: increment decay %g not in (0,1]", ErrInvalidConfig, c.IncrementDecay)
	case c.RespawnSpeedMin <= 0 || c.RespawnSpeedMax < c.RespawnSpeedMin:
		return fmt.Errorf("%w: respawn speed [%g,%g)", ErrInvalidConfig, c.RespawnSpeedMin, c.RespawnSpeedMax)
	case c.FloorDamping < 0 || c.FloorDamping >= 1:
		return fmt.Errorf("%w: floor damping %g not in [0,1)", ErrInvalidConfig, c.FloorDamping)
	}
	return nil
}
