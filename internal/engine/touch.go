package engine

// Edge identifies the side of the arena a ball respawns from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// HitTest returns the first alive ball, in index order, whose centre lies
// within radius+padding of p. The lowest index wins ties, not the nearest.
func (r Roster) HitTest(p Vec2, radius, padding float64) (int, bool) {
	reach := radius + padding
	reachSq := reach * reach
	for i := range r {
		if !r[i].Alive {
			continue
		}
		if r[i].Pos.DistSq(p) <= reachSq {
			return i, true
		}
	}
	return -1, false
}

// respawnBall places b one radius outside a random edge with an inward
// velocity. Per-axis speed is drawn from [minSpeed,maxSpeed) and scaled by
// mult; the component along the edge is randomized in either direction.
func respawnBall(b *Ball, a Arena, mult, minSpeed, maxSpeed float64, src Source) Edge {
	edge := Edge(src.IntN(4))

	speedX := rangeF(src, minSpeed, maxSpeed) * mult
	speedY := rangeF(src, minSpeed, maxSpeed) * mult

	switch edge {
	case EdgeTop:
		b.Pos = Vec2{X: src.Float64() * a.Width, Y: -a.Radius}
		b.Vel = Vec2{X: (src.Float64() - 0.5) * speedX, Y: speedY}
	case EdgeBottom:
		b.Pos = Vec2{X: src.Float64() * a.Width, Y: a.Height + a.Radius}
		b.Vel = Vec2{X: (src.Float64() - 0.5) * speedX, Y: -speedY}
	case EdgeLeft:
		b.Pos = Vec2{X: -a.Radius, Y: src.Float64() * a.Height}
		b.Vel = Vec2{X: speedX, Y: (src.Float64() - 0.5) * speedY}
	case EdgeRight:
		b.Pos = Vec2{X: a.Width + a.Radius, Y: src.Float64() * a.Height}
		b.Vel = Vec2{X: -speedX, Y: (src.Float64() - 0.5) * speedY}
	}
	b.Alive = true
	return edge
}

// scatterBall drops b anywhere on the arena with a random velocity whose
// components span (-span/2, span/2).
func scatterBall(b *Ball, a Arena, span float64, src Source) {
	b.Pos = Vec2{X: src.Float64() * a.Width, Y: src.Float64() * a.Height}
	b.Vel = Vec2{X: (src.Float64() - 0.5) * span, Y: (src.Float64() - 0.5) * span}
	b.Alive = true
}
