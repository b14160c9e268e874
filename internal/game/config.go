package game

import (
	"os"

	"dodge/internal/scene"
)

// Window defaults. Portrait, like the phone the game was made for.
const (
	WindowWidth  = 540
	WindowHeight = 960
	WindowTitle  = "Dodge"
)

// MaxSpriteRender bounds one sprite upload. Text is drawn one sprite per
// glyph pixel, so this is well above what a frame needs.
const MaxSpriteRender = 8192

// MaxVoices bounds concurrently playing effects.
const MaxVoices = 6

// LoadSettings reads the process environment.
func LoadSettings() (scene.Settings, error) {
	return scene.ParseSettings(os.Getenv)
}
