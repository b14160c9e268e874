package tty

import (
	"time"

	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"dodge/internal/sfx"
)

// initAudio opens the default output through beep's speaker.
func initAudio() error {
	return speaker.Init(sfx.SampleRate, sfx.SampleRate.N(time.Second/10))
}

// soundPlayer returns a bus handler playing every effect at vol.
func soundPlayer(vol float64) func(sfx.Kind) {
	return func(kind sfx.Kind) {
		speaker.Play(&effects.Gain{Streamer: sfx.Streamer(kind), Gain: vol - 1})
	}
}
