package scene

import (
	"math"

	"dodge/internal/engine"
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota // shards of a popped ball
	ParticleSpark                      // bright, short-lived
	ParticleWave                       // expanding ring where a tap missed
)

// Particle sizes are fractions of the ball radius, so effects scale with
// the surface.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

const (
	MaxParticles    = 512
	particleAirDrag = 3.2
	particleGravity = 900.0 // px/s², debris only
)

type ParticleSystem struct {
	Max    int
	P      []Particle
	rnd    *engine.Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rnd: engine.NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst scatters debris and sparks from a popped ball at (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB) {
	r := ps.rnd
	for range 24 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(250, 900)
		ps.Add(Particle{
			X: x + math.Cos(ang)*4, Y: y + math.Sin(ang)*4,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(0.14, 0.28), MaxLife: r.RangeF(0.35, 0.7),
			Col: col, Kind: ParticleDebris,
		})
	}
	for range 10 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(600, 1400)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(0.08, 0.14), MaxLife: r.RangeF(0.12, 0.25),
			Col: Palette.Text, Kind: ParticleSpark,
		})
	}
}

// SpawnRipple marks a missed tap with one expanding ring.
func (ps *ParticleSystem) SpawnRipple(x, y float64) {
	ps.Add(Particle{
		X: x, Y: y,
		Size: 0.6, MaxLife: 0.35,
		Col: Palette.Misses, Kind: ParticleWave,
	})
}

// Update advances every particle and drops expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Exp(-particleAirDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		if p.Life < 0 {
			i++
			continue
		}

		if p.Kind == ParticleDebris {
			p.VY += particleGravity * dt
		}
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData appends one sprite per live particle. radius converts
// particle sizes to pixels.
func (ps *ParticleSystem) RenderData(buf []float32, radius float64) []float32 {
	for _, p := range ps.P {
		if p.Life < 0 {
			continue
		}
		t := math.Min(p.Life/p.MaxLife, 1)
		a := float32(1 - t)
		size := p.Size * radius * 2
		shape := ShapeCircle

		switch p.Kind {
		case ParticleDebris:
			size *= 1 - 0.5*t
			shape = ShapeSquare
		case ParticleWave:
			size *= 1 + 2.5*t
			shape = ShapeRing
		}
		if a <= 0 || size < 1 {
			continue
		}
		buf = appendSprite(buf, math.Round(p.X), math.Round(p.Y), size, p.Col, a, shape)
	}
	return buf
}
