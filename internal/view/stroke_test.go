package view

import (
	"image"
	"testing"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{"single", image.Pt(3, 3), image.Pt(3, 3), []image.Point{{3, 3}}},
		{"horizontal", image.Pt(10, 5), image.Pt(14, 5),
			[]image.Point{{10, 5}, {11, 5}, {12, 5}, {13, 5}, {14, 5}}},
		{"reversed", image.Pt(2, 0), image.Pt(0, 0), []image.Point{{2, 0}, {1, 0}, {0, 0}}},
		{"vertical", image.Pt(1, 4), image.Pt(1, 1), []image.Point{{1, 4}, {1, 3}, {1, 2}, {1, 1}}},
		{"diagonal", image.Pt(0, 0), image.Pt(3, 3), []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"shallow", image.Pt(0, 0), image.Pt(4, 2),
			[]image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("Line(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Line(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	ends := []image.Point{{0, 0}, {7, 2}, {-3, 9}, {12, -5}, {-8, -8}, {0, 11}}
	for _, a := range ends {
		for _, b := range ends {
			pts := Line(a, b)
			if pts[0] != a || pts[len(pts)-1] != b {
				t.Fatalf("Line(%v, %v) runs %v..%v", a, b, pts[0], pts[len(pts)-1])
			}
			if want := max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1; len(pts) != want {
				t.Errorf("Line(%v, %v) has %d tiles, want %d", a, b, len(pts), want)
			}
			for i := 1; i < len(pts); i++ {
				d := pts[i].Sub(pts[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
					t.Fatalf("Line(%v, %v) jumps from %v to %v", a, b, pts[i-1], pts[i])
				}
			}
		}
	}
}

func TestStrokeFillsGapsBetweenSamples(t *testing.T) {
	var s Stroke
	if got := s.To(image.Pt(10, 5)); len(got) != 1 || got[0] != image.Pt(10, 5) {
		t.Fatalf("first sample = %v, want [(10,5)]", got)
	}
	got := s.To(image.Pt(14, 5))
	painted := map[image.Point]bool{}
	for _, p := range got {
		painted[p] = true
	}
	for x := 10; x <= 14; x++ {
		if !painted[image.Pt(x, 5)] {
			t.Errorf("tile (%d,5) skipped; stroke gave %v", x, got)
		}
	}
	if !s.Active() {
		t.Error("stroke should stay active while sampling")
	}
}

func TestStrokeLiftStartsOver(t *testing.T) {
	var s Stroke
	s.To(image.Pt(0, 0))
	s.Lift()
	if s.Active() {
		t.Fatal("Lift left the stroke active")
	}
	if got := s.To(image.Pt(6, 6)); len(got) != 1 || got[0] != image.Pt(6, 6) {
		t.Errorf("sample after Lift = %v, want [(6,6)]", got)
	}
}
