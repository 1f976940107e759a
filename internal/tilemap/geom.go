package tilemap

// Vec2 is a point or extent in world units.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

func (v Vec2) rotate(sin, cos float64) Vec2 {
	return Vec2{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r Rect) Contains(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Range is a half-open integer interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

func (r Range) Empty() bool         { return r.Hi <= r.Lo }
func (r Range) Contains(i int) bool { return i >= r.Lo && i < r.Hi }
