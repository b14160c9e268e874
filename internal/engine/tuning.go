package engine

// Default tuning, in arena units (pixels) and seconds.
const (
	DefaultBallCount = 5
	MaxBalls         = 16

	MaxFrameDT = 1.0 / 30.0 // hosts clamp dt to this before Advance

	TouchPadding = 75.0 // forgiving touch target beyond the ball radius

	WinHits    = 10
	LoseMisses = 10

	StartMultiplier = 1.0
	MaxMultiplier   = 2.0
	StartIncrement  = 0.1
	IncrementDecay  = 0.8

	RespawnSpeedMin = 1000.0
	RespawnSpeedMax = 3000.0
	ScatterSpeed    = 4000.0 // restart velocity span: (u-0.5)*ScatterSpeed

	FloorDamping = 0.3 // collapse-phase floor bounce keeps this fraction of vy
)
