package engine

// Difficulty tracks the speed multiplier applied to respawned balls. Each
// respawn raises the multiplier by the current increment, then shrinks the
// increment, so difficulty climbs fast early and flattens toward the cap.
type Difficulty struct {
	multiplier float64
	increment  float64

	start, cap, step, decay float64
}

func NewDifficulty(cfg Config) Difficulty {
	d := Difficulty{
		start: cfg.StartMultiplier,
		cap:   cfg.MaxMultiplier,
		step:  cfg.StartIncrement,
		decay: cfg.IncrementDecay,
	}
	d.Reset()
	return d
}

func (d *Difficulty) Reset() {
	d.multiplier = d.start
	d.increment = d.step
}

// OnRespawnEvent applies one escalation step. The multiplier never exceeds
// the cap; once it is reached the increment stops decaying.
func (d *Difficulty) OnRespawnEvent() {
	if d.multiplier >= d.cap {
		return
	}
	d.multiplier += d.increment
	if d.multiplier > d.cap {
		d.multiplier = d.cap
	}
	d.increment *= d.decay
}

func (d *Difficulty) CurrentMultiplier() float64 { return d.multiplier }

func (d *Difficulty) Increment() float64 { return d.increment }
