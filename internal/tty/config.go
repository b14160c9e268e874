package tty

import (
	"os"
	"time"

	"dodge/internal/scene"
)

// A terminal cell covers CellW x CellH arena units. Cells are about twice
// as tall as wide, so balls stay round and the engine keeps its pixel tuning.
const (
	CellW = 20.0
	CellH = 40.0
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	eventBuffer   = 100
	ballRune      = '█'
	ballEdgeRune  = '▓'
)

// LoadSettings reads the process environment.
func LoadSettings() (scene.Settings, error) {
	return scene.ParseSettings(os.Getenv)
}
