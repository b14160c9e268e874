package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// maxEncodeSamples bounds EncodeF32 against an accidentally endless streamer.
var maxEncodeSamples = SampleRate.N(4 * time.Second)

// EncodeF32 drains s into interleaved stereo float32 little-endian PCM, the
// layout oto.FormatFloat32LE expects. Samples are soft-saturated into [-1,1].
func EncodeF32(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	total := 0
	for total < maxEncodeSamples {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = putStereoF32LR(out, softSat(buf[i][0]), softSat(buf[i][1]))
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// Render is EncodeF32(Streamer(kind)).
func Render(kind Kind) []byte {
	return EncodeF32(Streamer(kind))
}

func putStereoF32LR(buf []byte, left, right float64) []byte {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	return append(buf,
		byte(lv), byte(lv>>8), byte(lv>>16), byte(lv>>24),
		byte(rv), byte(rv>>8), byte(rv>>16), byte(rv>>24),
	)
}

// softSat applies gentle tanh-like saturation; no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
