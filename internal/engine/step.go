package engine

// StepActive advances every alive ball by dt with elastic bounces off all
// four edges. A ball crossing an edge (shrunk by the radius) while moving
// outward has that velocity component flipped and its position clamped back
// to the edge. Balls entering from within one radius outside an edge are left
// alone so respawned balls can fly in. A ball further out than that, as after
// the arena shrinks, is clamped back to the edge whatever its direction.
func (r Roster) StepActive(a Arena, dt float64) {
	if !a.Ready() {
		return
	}
	minX, maxX := a.Radius, a.Width-a.Radius
	minY, maxY := a.Radius, a.Height-a.Radius

	for i := range r {
		b := &r[i]
		if !b.Alive {
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Pos.X, b.Vel.X = bounceAxis(b.Pos.X, b.Vel.X, minX, maxX, a.Radius)
		b.Pos.Y, b.Vel.Y = bounceAxis(b.Pos.Y, b.Vel.Y, minY, maxY, a.Radius)
	}
}

// bounceAxis reflects one axis against [lo, hi]. Positions more than margin
// outside the range are clamped even when moving inward.
func bounceAxis(pos, vel, lo, hi, margin float64) (float64, float64) {
	switch {
	case pos < lo && vel < 0:
		return lo, -vel
	case pos > hi && vel > 0:
		return hi, -vel
	case pos < lo-2*margin:
		return lo, vel
	case pos > hi+2*margin:
		return hi, vel
	}
	return pos, vel
}

// StepCollapse pulls every alive ball down under gravity. The floor is
// inelastic: on contact the ball is clamped to it and keeps only damping of
// its vertical speed. Side walls apply only when walls is set.
func (r Roster) StepCollapse(a Arena, dt, damping float64, walls bool) {
	if !a.Ready() {
		return
	}
	floor := a.Height - a.Radius

	for i := range r {
		b := &r[i]
		if !b.Alive {
			continue
		}
		b.Vel.Y += a.Gravity * dt
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if b.Pos.Y > floor {
			b.Pos.Y = floor
			b.Vel.Y *= -damping
		}
		if walls {
			if b.Pos.X < a.Radius && b.Vel.X < 0 {
				b.Pos.X = a.Radius
				b.Vel.X = -b.Vel.X
			} else if b.Pos.X > a.Width-a.Radius && b.Vel.X > 0 {
				b.Pos.X = a.Width - a.Radius
				b.Vel.X = -b.Vel.X
			}
		}
	}
}
