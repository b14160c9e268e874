package engine

import (
	"errors"
	"testing"
)

func newTestRound(t *testing.T, bus *EventBus) *Round {
	t.Helper()
	r, err := NewRound(DefaultConfig(), NewRand(1234), bus)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	return r
}

// tapBall taps the centre of the first alive ball.
func tapBall(t *testing.T, r *Round, a Arena) TouchResult {
	t.Helper()
	for i := 0; i < r.BallCount(); i++ {
		b := r.Ball(i)
		if b.Alive {
			return r.OnTouch(a, b.Pos.X, b.Pos.Y)
		}
	}
	t.Fatalf("no alive ball to tap")
	return TouchResult{}
}

// onArena reports whether p lies inside the visible rectangle.
func onArena(a Arena, p Vec2) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// tapNothing taps a point far outside every ball's reach.
func tapNothing(r *Round, a Arena) TouchResult {
	return r.OnTouch(a, -100000, -100000)
}

func TestNewRoundRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BallCount = 0
	if _, err := NewRound(cfg, NewRand(1), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewRound err = %v, want ErrInvalidConfig", err)
	}
}

func TestRoundLaysOutOnFirstReadyFrame(t *testing.T) {
	r := newTestRound(t, nil)
	r.Advance(Arena{}, MaxFrameDT)
	if r.LaidOut() {
		t.Fatalf("round laid out on a zero-size arena")
	}

	a := testArena()
	r.Advance(a, 0)
	if !r.LaidOut() {
		t.Fatalf("round not laid out after first ready frame")
	}
	for i := 0; i < r.BallCount(); i++ {
		b := r.Ball(i)
		if !b.Alive || !onArena(a, b.Pos) {
			t.Fatalf("ball %d after layout: %+v", i, b)
		}
	}
}

func TestRoundTouchIgnoredBeforeLayout(t *testing.T) {
	r := newTestRound(t, nil)
	res := r.OnTouch(Arena{}, 10, 10)
	if res.Outcome != TouchIgnored || r.HitCount() != 0 || r.MissCount() != 0 {
		t.Fatalf("touch on unready arena: %+v hits=%d misses=%d", res, r.HitCount(), r.MissCount())
	}
}

func TestRoundHitIncrementsAndRespawns(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)

	res := tapBall(t, r, a)
	if res.Outcome != TouchHit {
		t.Fatalf("outcome = %v, want hit", res.Outcome)
	}
	if r.HitCount() != 1 || r.MissCount() != 0 {
		t.Fatalf("hits=%d misses=%d, want 1/0", r.HitCount(), r.MissCount())
	}
	b := r.Ball(res.Index)
	if !b.Alive {
		t.Fatalf("hit ball not alive after respawn")
	}
	if onArena(a, b.Pos) {
		t.Fatalf("respawned ball still on screen at %+v", b.Pos)
	}
	if r.SpeedMultiplier() <= StartMultiplier {
		t.Fatalf("multiplier %f did not rise after respawn", r.SpeedMultiplier())
	}
}

func TestRoundMissIncrements(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)

	res := tapNothing(r, a)
	if res.Outcome != TouchMiss || res.Index != -1 {
		t.Fatalf("result = %+v, want miss", res)
	}
	if r.MissCount() != 1 || r.HitCount() != 0 {
		t.Fatalf("hits=%d misses=%d, want 0/1", r.HitCount(), r.MissCount())
	}
}

func TestRoundTenHitsWins(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)

	for i := 0; i < WinHits; i++ {
		if res := tapBall(t, r, a); res.Outcome != TouchHit {
			t.Fatalf("tap %d outcome = %v", i, res.Outcome)
		}
	}
	if r.IsGameOver() {
		t.Fatalf("game over before the frame's end check")
	}
	r.Advance(a, MaxFrameDT)

	if !r.IsGameOver() || !r.DidPlayerWin() {
		t.Fatalf("after %d hits: gameOver=%v won=%v", WinHits, r.IsGameOver(), r.DidPlayerWin())
	}
	if r.Phase() != PhaseEnded {
		t.Fatalf("phase = %v, want ended", r.Phase())
	}
}

func TestRoundTenMissesLoses(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)

	for i := 0; i < LoseMisses; i++ {
		tapNothing(r, a)
	}
	r.Advance(a, MaxFrameDT)

	if !r.IsGameOver() || r.DidPlayerWin() {
		t.Fatalf("after %d misses: gameOver=%v won=%v", LoseMisses, r.IsGameOver(), r.DidPlayerWin())
	}
}

func TestRoundWinTakesPriority(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)

	for i := 0; i < LoseMisses; i++ {
		tapNothing(r, a)
	}
	for i := 0; i < WinHits; i++ {
		tapBall(t, r, a)
	}
	r.Advance(a, MaxFrameDT)

	if !r.DidPlayerWin() {
		t.Fatalf("both thresholds crossed in one frame: won=%v, want true", r.DidPlayerWin())
	}
}

func TestRoundEndedTapRestartsOnly(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)
	for i := 0; i < LoseMisses; i++ {
		tapNothing(r, a)
	}
	r.Advance(a, MaxFrameDT)

	res := tapNothing(r, a)
	if res.Outcome != TouchRestart {
		t.Fatalf("outcome = %v, want restart", res.Outcome)
	}
	if r.IsGameOver() || r.DidPlayerWin() || r.HitCount() != 0 || r.MissCount() != 0 {
		t.Fatalf("after restart: over=%v won=%v hits=%d misses=%d",
			r.IsGameOver(), r.DidPlayerWin(), r.HitCount(), r.MissCount())
	}
}

func TestRoundRestartResetsEverything(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)
	for i := 0; i < 4; i++ {
		tapBall(t, r, a)
	}
	tapNothing(r, a)

	before := make([]Ball, r.BallCount())
	for i := range before {
		before[i] = r.Ball(i)
	}
	r.Restart(a)

	if r.HitCount() != 0 || r.MissCount() != 0 {
		t.Fatalf("counters after restart: %d/%d", r.HitCount(), r.MissCount())
	}
	if r.SpeedMultiplier() != StartMultiplier {
		t.Fatalf("multiplier after restart = %f", r.SpeedMultiplier())
	}
	for i := range before {
		b := r.Ball(i)
		if !b.Alive {
			t.Fatalf("ball %d not alive after restart", i)
		}
		if b == before[i] {
			t.Fatalf("ball %d not re-randomized", i)
		}
		if !onArena(a, b.Pos) {
			t.Fatalf("ball %d placed off arena: %+v", i, b.Pos)
		}
		if b.Vel.X < -ScatterSpeed/2 || b.Vel.X > ScatterSpeed/2 || b.Vel.Y < -ScatterSpeed/2 || b.Vel.Y > ScatterSpeed/2 {
			t.Fatalf("ball %d restart velocity out of range: %+v", i, b.Vel)
		}
	}
}

func TestRoundCollapsePhaseSkipsEndCheckAndFalls(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)
	for i := 0; i < LoseMisses; i++ {
		tapNothing(r, a)
	}
	r.Advance(a, MaxFrameDT)

	for i := 0; i < 600; i++ {
		r.Advance(a, MaxFrameDT)
	}
	if !r.IsGameOver() || r.DidPlayerWin() {
		t.Fatalf("collapse changed end state: over=%v won=%v", r.IsGameOver(), r.DidPlayerWin())
	}
	floor := a.Height - a.Radius
	for i := 0; i < r.BallCount(); i++ {
		b := r.Ball(i)
		if b.Pos.Y > floor {
			t.Fatalf("ball %d below floor: y=%f", i, b.Pos.Y)
		}
		if floor-b.Pos.Y > a.Radius {
			t.Fatalf("ball %d did not settle near floor: y=%f", i, b.Pos.Y)
		}
	}
}

func TestRoundRespawnIgnoresBadIndex(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)
	r.Respawn(a, -1)
	r.Respawn(a, r.BallCount())
	if r.SpeedMultiplier() != StartMultiplier {
		t.Fatalf("bad index respawn touched difficulty: %f", r.SpeedMultiplier())
	}
}

func TestRoundRespawnIgnoresAliveBall(t *testing.T) {
	a := testArena()
	r := newTestRound(t, nil)
	r.Advance(a, 0)
	before := r.Ball(0)
	r.Respawn(a, 0)
	if r.Ball(0) != before {
		t.Fatalf("alive ball respawned: %+v -> %+v", before, r.Ball(0))
	}
	if r.SpeedMultiplier() != StartMultiplier {
		t.Fatalf("alive ball respawn touched difficulty: %f", r.SpeedMultiplier())
	}
}

func TestRoundBallOutOfRangeIsZero(t *testing.T) {
	r := newTestRound(t, nil)
	r.Advance(testArena(), 0)
	for _, i := range []int{-1, r.BallCount()} {
		if b := r.Ball(i); b != (Ball{}) {
			t.Fatalf("Ball(%d) = %+v, want zero", i, b)
		}
	}
}

func TestRoundRestartOnUnreadyArenaResetsState(t *testing.T) {
	a := testArena()
	bus := NewEventBus()
	restarts := 0
	bus.Subscribe(EventRestart, func(Event) { restarts++ })
	r := newTestRound(t, bus)
	r.Advance(a, 0)
	tapBall(t, r, a)
	for i := 0; i < LoseMisses; i++ {
		tapNothing(r, a)
	}
	r.Advance(a, MaxFrameDT)
	if !r.IsGameOver() {
		t.Fatalf("round did not end")
	}

	r.Restart(Arena{})
	if r.IsGameOver() || r.HitCount() != 0 || r.MissCount() != 0 {
		t.Fatalf("state after restart: over=%v hits=%d misses=%d", r.IsGameOver(), r.HitCount(), r.MissCount())
	}
	if r.SpeedMultiplier() != StartMultiplier {
		t.Fatalf("multiplier after restart = %f", r.SpeedMultiplier())
	}
	if restarts != 1 {
		t.Fatalf("restart events = %d, want 1", restarts)
	}
	if r.LaidOut() {
		t.Fatalf("round laid out on a zero-size arena")
	}

	r.Advance(a, 0)
	if !r.LaidOut() {
		t.Fatalf("round not laid out after restart and ready frame")
	}
	for i := 0; i < r.BallCount(); i++ {
		if b := r.Ball(i); !b.Alive || !onArena(a, b.Pos) {
			t.Fatalf("ball %d after relayout: %+v", i, b)
		}
	}
}

func TestRoundEmitsEvents(t *testing.T) {
	a := testArena()
	bus := NewEventBus()
	got := map[EventType]int{}
	var hitIdx []int
	for _, et := range []EventType{EventBallHit, EventMiss, EventRoundWon, EventRoundLost, EventRestart} {
		bus.Subscribe(et, func(e Event) {
			got[e.Type]++
			if e.Type == EventBallHit {
				hitIdx = append(hitIdx, e.Index)
			}
		})
	}
	r := newTestRound(t, bus)
	r.Advance(a, 0)

	res := tapBall(t, r, a)
	tapNothing(r, a)
	for i := 1; i < WinHits; i++ {
		tapBall(t, r, a)
	}
	r.Advance(a, MaxFrameDT)
	r.Advance(a, MaxFrameDT)
	tapNothing(r, a)

	want := map[EventType]int{EventBallHit: WinHits, EventMiss: 1, EventRoundWon: 1, EventRestart: 1}
	for et, n := range want {
		if got[et] != n {
			t.Fatalf("%v events = %d, want %d", et, got[et], n)
		}
	}
	if got[EventRoundLost] != 0 {
		t.Fatalf("unexpected round-lost event")
	}
	if hitIdx[0] != res.Index {
		t.Fatalf("hit event index = %d, want %d", hitIdx[0], res.Index)
	}
}
