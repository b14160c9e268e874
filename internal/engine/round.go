// Package engine is the ball simulation and round state of the game. It has
// no platform dependencies and never logs. Hosts feed it frame times and
// touches and read its state back to draw.
package engine

type Phase int

const (
	PhaseActive Phase = iota // balls in flight, taps score
	PhaseEnded               // collapse animation, next tap restarts
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "active"
}

// TouchOutcome is what a single tap did to the round.
type TouchOutcome int

const (
	TouchIgnored TouchOutcome = iota // arena not laid out yet
	TouchHit
	TouchMiss
	TouchRestart
)

type TouchResult struct {
	Outcome TouchOutcome
	Index   int // hit ball, -1 unless Outcome == TouchHit
}

// Round owns every piece of mutable game state: the roster, counters, end
// flags and difficulty. It is not safe for concurrent use; hosts serialize
// frame and touch calls onto one goroutine.
type Round struct {
	cfg  Config
	src  Source
	bus  *EventBus
	diff Difficulty

	balls Roster

	hits, misses int
	gameOver     bool
	playerWon    bool

	// laidOut is false until the balls have been scattered over a real
	// arena; the first ready Advance does that.
	laidOut bool
}

// NewRound builds a round with cfg.BallCount balls. bus may be nil.
func NewRound(cfg Config, src Source, bus *EventBus) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Round{
		cfg:   cfg,
		src:   src,
		bus:   bus,
		diff:  NewDifficulty(cfg),
		balls: make(Roster, cfg.BallCount),
	}, nil
}

// Advance runs one frame. dt must already be clamped by the caller (see
// MaxFrameDT). While active, the end condition is evaluated after the step.
func (r *Round) Advance(a Arena, dt float64) {
	if !a.Ready() {
		return
	}
	if !r.laidOut {
		r.scatter(a)
	}
	if r.gameOver {
		r.balls.StepCollapse(a, dt, r.cfg.FloorDamping, r.cfg.CollapseWalls)
		return
	}
	r.balls.StepActive(a, dt)
	r.checkEnd()
}

// checkEnd ends the round once a threshold is reached. Win is checked first.
func (r *Round) checkEnd() {
	switch {
	case r.hits >= r.cfg.WinHits:
		r.gameOver, r.playerWon = true, true
		r.bus.Emit(Event{Type: EventRoundWon, Index: -1})
	case r.misses >= r.cfg.LoseMisses:
		r.gameOver, r.playerWon = true, false
		r.bus.Emit(Event{Type: EventRoundLost, Index: -1})
	}
}

// OnTouch resolves a tap at (x, y). A tap on an ended round restarts it and
// does nothing else.
func (r *Round) OnTouch(a Arena, x, y float64) TouchResult {
	if !a.Ready() {
		return TouchResult{Outcome: TouchIgnored, Index: -1}
	}
	if r.gameOver {
		r.Restart(a)
		return TouchResult{Outcome: TouchRestart, Index: -1}
	}
	if !r.laidOut {
		r.scatter(a)
	}

	p := Vec2{X: x, Y: y}
	idx, ok := r.balls.HitTest(p, a.Radius, r.cfg.TouchPadding)
	if !ok {
		r.misses++
		r.bus.Emit(Event{Type: EventMiss, X: x, Y: y, Index: -1})
		return TouchResult{Outcome: TouchMiss, Index: -1}
	}

	r.hits++
	hit := r.balls[idx].Pos
	r.balls[idx].Alive = false
	r.Respawn(a, idx)
	r.bus.Emit(Event{Type: EventBallHit, X: hit.X, Y: hit.Y, Index: idx})
	return TouchResult{Outcome: TouchHit, Index: idx}
}

// Respawn relocates ball i to just outside a random edge with a fresh inward
// velocity, escalating difficulty first. Out-of-range indices and balls that
// are still alive are ignored.
func (r *Round) Respawn(a Arena, i int) {
	if i < 0 || i >= len(r.balls) || r.balls[i].Alive || !a.Ready() {
		return
	}
	r.diff.OnRespawnEvent()
	respawnBall(&r.balls[i], a, r.diff.CurrentMultiplier(), r.cfg.RespawnSpeedMin, r.cfg.RespawnSpeedMax, r.src)
}

// Restart resets counters, flags and difficulty and re-randomizes every ball.
// On an unready arena the balls are scattered by the first ready Advance.
func (r *Round) Restart(a Arena) {
	r.hits, r.misses = 0, 0
	r.gameOver, r.playerWon = false, false
	r.diff.Reset()
	if a.Ready() {
		r.scatter(a)
	} else {
		r.laidOut = false
	}
	r.bus.Emit(Event{Type: EventRestart, Index: -1})
}

func (r *Round) scatter(a Arena) {
	for i := range r.balls {
		scatterBall(&r.balls[i], a, r.cfg.ScatterSpeed, r.src)
	}
	r.laidOut = true
}

func (r *Round) Phase() Phase {
	if r.gameOver {
		return PhaseEnded
	}
	return PhaseActive
}

func (r *Round) HitCount() int            { return r.hits }
func (r *Round) MissCount() int           { return r.misses }
func (r *Round) IsGameOver() bool         { return r.gameOver }
func (r *Round) DidPlayerWin() bool       { return r.gameOver && r.playerWon }
func (r *Round) SpeedMultiplier() float64 { return r.diff.CurrentMultiplier() }
func (r *Round) Config() Config           { return r.cfg }
func (r *Round) BallCount() int           { return len(r.balls) }

// Ball returns a copy of ball i for drawing, or the zero Ball when i is out
// of range.
func (r *Round) Ball(i int) Ball {
	if i < 0 || i >= len(r.balls) {
		return Ball{}
	}
	return r.balls[i]
}

// LaidOut reports whether the balls have been placed on a real arena.
func (r *Round) LaidOut() bool { return r.laidOut }
