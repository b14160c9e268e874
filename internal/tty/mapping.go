package tty

import (
	"math"

	"dodge/internal/engine"
	"dodge/internal/scene"
)

// ArenaFor returns the arena behind a cols x rows terminal.
func ArenaFor(cols, rows int) engine.Arena {
	return scene.Layout(int(float64(cols)*CellW), int(float64(rows)*CellH))
}

// CellCenter returns the arena point at the centre of cell (x, y).
func CellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * CellW, (float64(y) + 0.5) * CellH
}

// CellAt returns the cell containing arena point (ax, ay).
func CellAt(ax, ay float64) (int, int) {
	return int(math.Floor(ax / CellW)), int(math.Floor(ay / CellH))
}
