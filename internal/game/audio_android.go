//go:build android && audio_stub

package game

import "dodge/internal/sfx"

func InitAudio() error         { return nil }
func PlaySound(kind sfx.Kind)  {}
func SetSFXVolume(vol float64) {}
