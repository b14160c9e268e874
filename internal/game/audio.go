//go:build !(android && audio_stub)

package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"dodge/internal/scene"
	"dodge/internal/sfx"
)

const (
	SampleRate   = int(sfx.SampleRate)
	ChannelCount = sfx.ChannelCount
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AudioSystem plays pre-rendered sound effects through oto.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	clips  map[sfx.Kind][]byte
	volume float64
}

var globalAudio *AudioSystem

// activeVoices caps overlapping effects; rapid taps would otherwise stack
// enough players to clip.
var activeVoices int32

// InitAudio opens the output device and renders every effect once.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	clips := make(map[sfx.Kind][]byte, len(sfx.Kinds))
	for _, k := range sfx.Kinds {
		clips[k] = sfx.Render(k)
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready, clips: clips, volume: scene.DefaultVolume}
	return nil
}

// PlaySound starts kind on its own player and returns immediately.
func PlaySound(kind sfx.Kind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := globalAudio.clips[kind]
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&activeVoices, 1) > MaxVoices {
		atomic.AddInt32(&activeVoices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&activeVoices, -1)
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(globalAudio.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// SetSFXVolume sets the gain for effects started after the call, clamped to [0, 1].
func SetSFXVolume(vol float64) {
	if globalAudio == nil {
		return
	}
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	globalAudio.volume = vol
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
