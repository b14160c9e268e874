package engine

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2  { return Vec2{X: v.X * k, Y: v.Y * k} }
func (v Vec2) Dot(o Vec2) float64    { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LenSq() float64        { return v.Dot(v) }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

type Ball struct {
	Pos   Vec2
	Vel   Vec2
	Alive bool
}

// Roster is the fixed set of balls in a round. Index is identity.
type Roster []Ball

// Arena is the play surface as the host currently sees it. Width and Height
// are zero until the first layout.
type Arena struct {
	Width, Height float64
	Radius        float64
	Gravity       float64
}

func (a Arena) Ready() bool { return a.Width > 0 && a.Height > 0 }
