package tilemap

import "math"

// Camera is the view the map is drawn for. Zoom uses the reciprocal
// convention: the view spans 1/Zoom world units either side of Target.
// Rotation is in degrees.
type Camera struct {
	Target   Vec2
	Zoom     Vec2
	Rotation float64
}

// WorldToScreen maps a world point to normalised device coordinates
// (x right, y up, [-1,1] across the view).
func (c Camera) WorldToScreen(w Vec2) Vec2 {
	sin, cos := sincosDeg(c.Rotation)
	p := w.Sub(c.Target).rotate(sin, cos)
	return Vec2{X: p.X * c.Zoom.X, Y: -p.Y * c.Zoom.Y}
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c Camera) ScreenToWorld(ndc Vec2) Vec2 {
	sin, cos := sincosDeg(-c.Rotation)
	p := Vec2{X: ndc.X / c.Zoom.X, Y: -ndc.Y / c.Zoom.Y}
	return p.rotate(sin, cos).Add(c.Target)
}

// ViewHalfExtent returns the half size of the axis-aligned world box
// enclosing the rotated view.
func ViewHalfExtent(c Camera) Vec2 {
	sin, cos := sincosDeg(-c.Rotation)
	cosMul, sinMul := math.Abs(cos), math.Abs(sin)
	h := Vec2{X: 1 / c.Zoom.X, Y: 1 / c.Zoom.Y}
	return Vec2{
		X: h.X*cosMul + h.Y*sinMul,
		Y: h.X*sinMul + h.Y*cosMul,
	}
}

// ViewRect returns the world-space box covering everything the camera sees.
func ViewRect(c Camera) Rect {
	e := ViewHalfExtent(c)
	lo, hi := c.Target.Sub(e), c.Target.Add(e)
	return Rect{X0: lo.X, Y0: lo.Y, X1: hi.X, Y1: hi.Y}
}

// sincosDeg is exact at multiples of 90 degrees.
func sincosDeg(deg float64) (sin, cos float64) {
	if math.Mod(deg, 90) == 0 {
		switch (int(math.Mod(deg/90, 4)) + 4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	rad := deg * math.Pi / 180
	return math.Sin(rad), math.Cos(rad)
}
