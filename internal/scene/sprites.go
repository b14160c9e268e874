package scene

import (
	"fmt"
	"math"

	"dodge/internal/engine"
)

// Sprite buffers hold SpriteFloats floats per sprite:
// x, y, size, r, g, b, a, shape. Coordinates and size are screen pixels.
const SpriteFloats = 8

// Shape values, stored in the last sprite slot.
const (
	ShapeCircle float32 = 0
	ShapeSquare float32 = 1
	ShapeRing   float32 = 2
)

func appendSprite(buf []float32, x, y, size float64, col RGB, alpha float32, shape float32) []float32 {
	r, g, b := col.Floats()
	return append(buf, float32(x), float32(y), float32(size), r, g, b, alpha, shape)
}

// BallSprites appends one circle per alive ball.
func BallSprites(buf []float32, round *engine.Round, a engine.Arena) []float32 {
	for i := 0; i < round.BallCount(); i++ {
		b := round.Ball(i)
		if !b.Alive {
			continue
		}
		buf = appendSprite(buf, b.Pos.X, b.Pos.Y, a.Radius*2, BallColor(i), 1, ShapeCircle)
	}
	return buf
}

// TextSprites appends text with its top-left corner at (x, y). Each lit
// glyph pixel becomes one square sprite px wide.
func TextSprites(buf []float32, text string, x, y, px float64, col RGB, alpha float32) []float32 {
	cx := x
	for _, ch := range text {
		if g, ok := Glyph(ch); ok {
			for row := 0; row < GlyphH; row++ {
				for column := 0; column < GlyphW; column++ {
					if g[row][column] != '#' {
						continue
					}
					sx := cx + (float64(column)+0.5)*px
					sy := y + (float64(row)+0.5)*px
					buf = appendSprite(buf, sx, sy, px, col, alpha, ShapeSquare)
				}
			}
		}
		cx += GlyphAdvance * px
	}
	return buf
}

// centeredText appends text horizontally centred on the surface.
func centeredText(buf []float32, a engine.Arena, text string, y, px float64, col RGB, alpha float32) []float32 {
	x := math.Floor((a.Width - TextWidth(text, px)) / 2)
	return TextSprites(buf, text, x, y, px, col, alpha)
}

// HUDSprites appends the overlay for the session's current state: title
// and prompt on the menu, counters while playing, and the end banner.
func HUDSprites(buf []float32, s *Session, a engine.Arena) []float32 {
	if !a.Ready() {
		return buf
	}
	px := HUDScale(a)
	pulse := float32(0.65 + 0.35*math.Sin(s.Time*4))
	cfg := s.Round.Config()

	if s.State == StateMenu {
		buf = centeredText(buf, a, "DODGE", a.Height/2-TextHeight(px*3)*1.5, px*3, Palette.Title, 1)
		buf = centeredText(buf, a, "TAP TO START", a.Height/2+TextHeight(px), px, Palette.Text, pulse)
		hint := fmt.Sprintf("HIT %d BEFORE YOU MISS %d", cfg.WinHits, cfg.LoseMisses)
		return centeredText(buf, a, hint, a.Height/2+TextHeight(px)*3, math.Max(1, px/2+0.5), Palette.Win, 1)
	}

	margin := px * 3
	hits := fmt.Sprintf("HITS %d/%d", s.Round.HitCount(), cfg.WinHits)
	misses := fmt.Sprintf("MISS %d/%d", s.Round.MissCount(), cfg.LoseMisses)
	buf = TextSprites(buf, hits, margin, margin, px, Palette.Hits, 1)
	buf = TextSprites(buf, misses, a.Width-margin-TextWidth(misses, px), margin, px, Palette.Misses, 1)

	if s.Round.IsGameOver() {
		banner, col := "YOU LOSE", Palette.Lose
		if s.Round.DidPlayerWin() {
			banner, col = "YOU WIN!", Palette.Win
		}
		buf = centeredText(buf, a, banner, a.Height/3, px*2.5, col, 1)
		buf = centeredText(buf, a, "TAP TO RESTART", a.Height/3+TextHeight(px*2.5)+px*4, px, Palette.Text, pulse)
	}
	return buf
}

// Sprites builds the whole frame's sprites: balls, then particles, with
// the HUD on top.
func Sprites(buf []float32, s *Session, a engine.Arena) []float32 {
	buf = buf[:0]
	if s.Round.LaidOut() {
		buf = BallSprites(buf, s.Round, a)
	}
	if a.Ready() {
		buf = s.Particles.RenderData(buf, a.Radius)
	}
	return HUDSprites(buf, s, a)
}
