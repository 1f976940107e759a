package view

import "image"

// Line returns the tiles on the integer line from a to b, both ends
// included. Consecutive tiles are 8-connected.
func Line(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy

	pts := make([]image.Point, 0, max(dx, dy)+1)
	p := a
	for {
		pts = append(pts, p)
		if p == b {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
}

// Stroke joins successive cursor samples of a held button into a
// continuous run of tiles.
type Stroke struct {
	last   image.Point
	active bool
}

// To returns the tiles between the previous sample and p. The first sample
// of a stroke yields p alone.
func (s *Stroke) To(p image.Point) []image.Point {
	from := p
	if s.active {
		from = s.last
	}
	s.last, s.active = p, true
	return Line(from, p)
}

// Lift ends the stroke; the next sample starts a new one.
func (s *Stroke) Lift() { s.active = false }

func (s *Stroke) Active() bool { return s.active }
