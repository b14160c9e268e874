package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"dodge/internal/engine"
	"dodge/internal/scene"
)

func rgb(c scene.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var background = tcell.StyleDefault.Background(rgb(scene.Palette.Background))

// draw renders the whole frame. The screen is not shown; callers do that.
func draw(screen tcell.Screen, s *scene.Session, a engine.Arena) {
	screen.Fill(' ', background)
	if !a.Ready() {
		return
	}
	if s.Round.LaidOut() {
		drawBalls(screen, s.Round, a)
	}
	drawParticles(screen, s.Particles)
	drawHUD(screen, s)
}

// drawParticles puts one character per particle; bursts read as a spray of
// shards, a missed tap as a single ring.
func drawParticles(screen tcell.Screen, ps *scene.ParticleSystem) {
	cols, rows := screen.Size()
	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		x, y := CellAt(p.X, p.Y)
		if x < 0 || y < 0 || x >= cols || y >= rows {
			continue
		}
		ch := '*'
		switch p.Kind {
		case scene.ParticleSpark:
			ch = '+'
		case scene.ParticleWave:
			ch = 'o'
		}
		screen.SetContent(x, y, ch, nil, background.Foreground(rgb(p.Col)))
	}
}

// drawBalls fills every cell whose centre lies inside an alive ball. Cells
// near the rim get a lighter shade.
func drawBalls(screen tcell.Screen, round *engine.Round, a engine.Arena) {
	cols, rows := screen.Size()
	r2 := a.Radius * a.Radius
	rim := (a.Radius - CellW) * (a.Radius - CellW)
	for i := 0; i < round.BallCount(); i++ {
		b := round.Ball(i)
		if !b.Alive {
			continue
		}
		style := background.Foreground(rgb(scene.BallColor(i)))
		x0, y0 := CellAt(b.Pos.X-a.Radius, b.Pos.Y-a.Radius)
		x1, y1 := CellAt(b.Pos.X+a.Radius, b.Pos.Y+a.Radius)
		for y := max(y0, 0); y <= min(y1, rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				cx, cy := CellCenter(x, y)
				d := b.Pos.DistSq(engine.Vec2{X: cx, Y: cy})
				switch {
				case d > r2:
				case a.Radius > CellW && d > rim:
					screen.SetContent(x, y, ballEdgeRune, nil, style)
				default:
					screen.SetContent(x, y, ballRune, nil, style)
				}
			}
		}
	}
}

// drawText writes text starting at cell (x, y), clipped to the screen.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	cols, rows := screen.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, ch := range text {
		if x >= 0 && x < cols {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func drawCentered(screen tcell.Screen, y int, text string, style tcell.Style) {
	cols, _ := screen.Size()
	drawText(screen, (cols-len(text))/2, y, text, style)
}

func drawHUD(screen tcell.Screen, s *scene.Session) {
	cols, rows := screen.Size()
	cfg := s.Round.Config()
	text := func(c scene.RGB) tcell.Style { return background.Foreground(rgb(c)).Bold(true) }

	if s.State == scene.StateMenu {
		drawCentered(screen, rows/2-2, "D O D G E", text(scene.Palette.Title))
		drawCentered(screen, rows/2, "CLICK TO START", text(scene.Palette.Text))
		drawCentered(screen, rows/2+2, fmt.Sprintf("hit %d before you miss %d", cfg.WinHits, cfg.LoseMisses), text(scene.Palette.Win))
		return
	}

	hits := fmt.Sprintf("HITS %d/%d", s.Round.HitCount(), cfg.WinHits)
	misses := fmt.Sprintf("MISS %d/%d", s.Round.MissCount(), cfg.LoseMisses)
	drawText(screen, 1, 0, hits, text(scene.Palette.Hits))
	drawText(screen, cols-len(misses)-1, 0, misses, text(scene.Palette.Misses))

	if s.Round.IsGameOver() {
		banner, col := "YOU LOSE", scene.Palette.Lose
		if s.Round.DidPlayerWin() {
			banner, col = "YOU WIN!", scene.Palette.Win
		}
		drawCentered(screen, rows/3, banner, text(col))
		drawCentered(screen, rows/3+2, "CLICK TO RESTART", text(scene.Palette.Text))
	}
}
