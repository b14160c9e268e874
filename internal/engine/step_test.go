package engine

import (
	"math"
	"testing"
)

func testArena() Arena {
	return Arena{Width: 1080, Height: 1920, Radius: 60, Gravity: 2000}
}

func TestStepActiveIntegratesPosition(t *testing.T) {
	a := testArena()
	r := Roster{{Pos: Vec2{X: 500, Y: 500}, Vel: Vec2{X: 100, Y: -200}, Alive: true}}

	r.StepActive(a, 0.01)

	if r[0].Pos.X != 501 || r[0].Pos.Y != 498 {
		t.Fatalf("pos after step = %+v, want {501 498}", r[0].Pos)
	}
}

func TestStepActiveSkipsDeadBalls(t *testing.T) {
	a := testArena()
	r := Roster{{Pos: Vec2{X: 500, Y: 500}, Vel: Vec2{X: 100, Y: 100}}}

	r.StepActive(a, 0.5)

	if r[0].Pos != (Vec2{X: 500, Y: 500}) {
		t.Fatalf("dead ball moved to %+v", r[0].Pos)
	}
}

func TestStepActiveNoopOnUnreadyArena(t *testing.T) {
	r := Roster{{Pos: Vec2{X: 5, Y: 5}, Vel: Vec2{X: 100, Y: 100}, Alive: true}}

	r.StepActive(Arena{Radius: 60}, 0.1)
	r.StepActive(Arena{Width: 100, Radius: 60}, 0.1)

	if r[0].Pos != (Vec2{X: 5, Y: 5}) {
		t.Fatalf("ball moved on unready arena: %+v", r[0].Pos)
	}
}

func TestWallBounceFlipsOnlyPerpendicular(t *testing.T) {
	a := testArena()
	cases := []struct {
		name    string
		ball    Ball
		wantVel Vec2
		wantPos func(Vec2) bool
	}{
		{
			name:    "right",
			ball:    Ball{Pos: Vec2{X: a.Width - a.Radius - 1, Y: 900}, Vel: Vec2{X: 3000, Y: 250}, Alive: true},
			wantVel: Vec2{X: -3000, Y: 250},
			wantPos: func(p Vec2) bool { return p.X == a.Width-a.Radius },
		},
		{
			name:    "left",
			ball:    Ball{Pos: Vec2{X: a.Radius + 1, Y: 900}, Vel: Vec2{X: -3000, Y: -250}, Alive: true},
			wantVel: Vec2{X: 3000, Y: -250},
			wantPos: func(p Vec2) bool { return p.X == a.Radius },
		},
		{
			name:    "top",
			ball:    Ball{Pos: Vec2{X: 500, Y: a.Radius + 1}, Vel: Vec2{X: 125, Y: -3000}, Alive: true},
			wantVel: Vec2{X: 125, Y: 3000},
			wantPos: func(p Vec2) bool { return p.Y == a.Radius },
		},
		{
			name:    "bottom",
			ball:    Ball{Pos: Vec2{X: 500, Y: a.Height - a.Radius - 1}, Vel: Vec2{X: -125, Y: 3000}, Alive: true},
			wantVel: Vec2{X: -125, Y: -3000},
			wantPos: func(p Vec2) bool { return p.Y == a.Height-a.Radius },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Roster{tc.ball}
			r.StepActive(a, MaxFrameDT)
			if r[0].Vel != tc.wantVel {
				t.Fatalf("vel = %+v, want %+v", r[0].Vel, tc.wantVel)
			}
			if !tc.wantPos(r[0].Pos) {
				t.Fatalf("pos not clamped to edge: %+v", r[0].Pos)
			}
		})
	}
}

func TestStepActiveStaysWithinRadiusMargin(t *testing.T) {
	a := testArena()
	src := NewRand(7)
	r := make(Roster, 8)
	for i := range r {
		scatterBall(&r[i], a, ScatterSpeed, src)
	}
	// Respawned balls start one radius outside.
	respawnBall(&r[0], a, MaxMultiplier, RespawnSpeedMin, RespawnSpeedMax, src)
	respawnBall(&r[1], a, MaxMultiplier, RespawnSpeedMin, RespawnSpeedMax, src)

	for frame := 0; frame < 2000; frame++ {
		dt := MaxFrameDT * float64(frame%5+1) / 5
		r.StepActive(a, dt)
		for i, b := range r {
			if b.Pos.X < -a.Radius || b.Pos.X > a.Width+a.Radius ||
				b.Pos.Y < -a.Radius || b.Pos.Y > a.Height+a.Radius {
				t.Fatalf("frame %d ball %d escaped: %+v", frame, i, b.Pos)
			}
		}
	}
}

func TestStepActiveLetsRespawnedBallEnter(t *testing.T) {
	a := testArena()
	r := Roster{{Pos: Vec2{X: -a.Radius, Y: 900}, Vel: Vec2{X: 1500, Y: 0}, Alive: true}}

	r.StepActive(a, 0.01)

	if r[0].Vel.X != 1500 {
		t.Fatalf("inbound ball was reflected: vx=%f", r[0].Vel.X)
	}
	if r[0].Pos.X != -a.Radius+15 {
		t.Fatalf("inbound ball pos x=%f, want %f", r[0].Pos.X, -a.Radius+15)
	}
}

func TestStepActiveFollowsResizedArena(t *testing.T) {
	a := testArena()
	r := Roster{{Pos: Vec2{X: 900, Y: 900}, Vel: Vec2{X: 100, Y: 0}, Alive: true}}

	small := a
	small.Width = 800
	r.StepActive(small, 0.01)

	if r[0].Pos.X != small.Width-small.Radius || r[0].Vel.X != -100 {
		t.Fatalf("ball not bounced by shrunk arena: pos=%+v vel=%+v", r[0].Pos, r[0].Vel)
	}
}

func TestStepCollapseFloorBounceIsDamped(t *testing.T) {
	a := testArena()
	a.Gravity = 2000
	floor := a.Height - a.Radius
	r := Roster{{Pos: Vec2{X: 500, Y: floor - 1}, Vel: Vec2{}, Alive: true}}

	const dt = 0.01
	for i := 0; i < 100; i++ {
		before := r[0].Vel.Y + a.Gravity*dt
		r.StepCollapse(a, dt, FloorDamping, false)
		if r[0].Vel.Y < 0 {
			if r[0].Pos.Y != floor {
				t.Fatalf("ball not clamped to floor: y=%f want %f", r[0].Pos.Y, floor)
			}
			want := -before * FloorDamping
			if math.Abs(r[0].Vel.Y-want) > 1e-9 {
				t.Fatalf("rebound vy=%f, want %f", r[0].Vel.Y, want)
			}
			if math.Abs(r[0].Vel.Y) >= before {
				t.Fatalf("rebound not damped: |%f| >= %f", r[0].Vel.Y, before)
			}
			return
		}
		if r[0].Vel.Y <= 0 {
			t.Fatalf("step %d: ball not falling, vy=%f", i, r[0].Vel.Y)
		}
	}
	t.Fatalf("ball never rebounded off the floor")
}

func TestStepCollapseIgnoresSideWallsByDefault(t *testing.T) {
	a := testArena()
	r := Roster{{Pos: Vec2{X: a.Width - a.Radius, Y: 500}, Vel: Vec2{X: 1000}, Alive: true}}

	r.StepCollapse(a, 0.1, FloorDamping, false)
	if r[0].Vel.X != 1000 || r[0].Pos.X <= a.Width-a.Radius {
		t.Fatalf("side wall applied without walls: pos=%+v vel=%+v", r[0].Pos, r[0].Vel)
	}

	r = Roster{{Pos: Vec2{X: a.Width - a.Radius, Y: 500}, Vel: Vec2{X: 1000}, Alive: true}}
	r.StepCollapse(a, 0.1, FloorDamping, true)
	if r[0].Vel.X != -1000 || r[0].Pos.X != a.Width-a.Radius {
		t.Fatalf("side wall not applied with walls: pos=%+v vel=%+v", r[0].Pos, r[0].Vel)
	}
}

func TestStepActiveClampsInboundBallOutsideShrunkArena(t *testing.T) {
	a := testArena()
	r := Roster{
		{Pos: Vec2{X: 1000, Y: 900}, Vel: Vec2{X: -100, Y: 0}, Alive: true},
		{Pos: Vec2{X: 200, Y: 1800}, Vel: Vec2{X: 0, Y: -100}, Alive: true},
	}

	small := a
	small.Width = 500
	small.Height = 1000
	r.StepActive(small, 0.01)

	if r[0].Pos.X != small.Width-small.Radius || r[0].Vel.X != -100 {
		t.Fatalf("inbound ball left outside arena: pos=%+v vel=%+v", r[0].Pos, r[0].Vel)
	}
	if r[1].Pos.Y != small.Height-small.Radius || r[1].Vel.Y != -100 {
		t.Fatalf("inbound ball left below arena: pos=%+v vel=%+v", r[1].Pos, r[1].Vel)
	}
}
