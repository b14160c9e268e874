package scene

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"dodge/internal/engine"
)

// DefaultVolume is the sound effect gain when DODGE_VOLUME is unset.
const DefaultVolume = 0.6

// Settings are the process-level overrides every host reads at start.
type Settings struct {
	Seed   uint64
	Mute   bool
	Volume float64
	Config engine.Config
}

// ParseSettings reads DODGE_SEED, DODGE_MUTE, DODGE_VOLUME and DODGE_BALLS
// through getenv. An unset seed falls back to the clock.
func ParseSettings(getenv func(string) string) (Settings, error) {
	s := Settings{
		Seed:   uint64(time.Now().UnixNano()),
		Mute:   getenv("DODGE_MUTE") != "",
		Volume: DefaultVolume,
		Config: engine.DefaultConfig(),
	}
	if v := getenv("DODGE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("DODGE_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v := getenv("DODGE_VOLUME"); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return s, fmt.Errorf("DODGE_VOLUME: %w", err)
		}
		if vol < 0 || vol > 1 || math.IsNaN(vol) {
			return s, fmt.Errorf("DODGE_VOLUME: %v outside [0, 1]", vol)
		}
		s.Volume = vol
	}
	if v := getenv("DODGE_BALLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("DODGE_BALLS: %w", err)
		}
		s.Config.BallCount = n
	}
	if err := s.Config.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
