package worldgen

import (
	"image"
	"testing"

	"chunkview/internal/tilemap"
)

func snapshot(m *tilemap.TileMap) []uint16 {
	tiles := m.Tiles()
	out := make([]uint16, 0, tiles.X*tiles.Y)
	for y := 0; y < tiles.Y; y++ {
		for x := 0; x < tiles.X; x++ {
			out = append(out, m.Tile(image.Pt(x, y)).AtlasIndex)
		}
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	a := tilemap.New(image.Pt(3, 2), 8, nil)
	b := tilemap.New(image.Pt(3, 2), 8, nil)
	Generate(a, 42, 5)
	Generate(b, 42, 5)

	sa, sb := snapshot(a), snapshot(b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("tile %d differs between runs: %d vs %d", i, sa[i], sb[i])
		}
	}
}

func TestGenerateStaysInAtlas(t *testing.T) {
	m := tilemap.New(image.Pt(4, 4), 8, nil)
	const kinds = 3
	Generate(m, 7, kinds)
	for i, v := range snapshot(m) {
		if v > kinds {
			t.Fatalf("tile %d has atlas index %d > %d", i, v, kinds)
		}
	}
}

func TestGenerateNoKindsClears(t *testing.T) {
	m := tilemap.New(image.Pt(1, 1), 4, nil)
	m.Fill(tilemap.Tile{AtlasIndex: 3})
	Generate(m, 1, 0)
	for i, v := range snapshot(m) {
		if v != 0 {
			t.Fatalf("tile %d = %d, want empty", i, v)
		}
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		v     float64
		kinds int
		want  uint16
	}{
		{-1, 4, 0},
		{-0.2, 4, 1},
		{0, 4, 2},
		{0.3, 4, 3},
		{0.6, 4, 4},
		{1, 4, 4},
		{5, 4, 4},
		{-5, 4, 0},
		{0, 1, 1},
		{5, 70000, tilemap.MaxAtlasIndex},
		{0.99, 70000, tilemap.MaxAtlasIndex},
	}
	for _, tt := range tests {
		if got := Band(tt.v, tt.kinds); got != tt.want {
			t.Errorf("Band(%v, %d) = %d, want %d", tt.v, tt.kinds, got, tt.want)
		}
	}
}

func TestChecker(t *testing.T) {
	m := tilemap.New(image.Pt(3, 2), 4, nil)
	Checker(m, 2)

	tests := []struct {
		p    image.Point
		want uint16
	}{
		{image.Pt(0, 0), 0}, // border
		{image.Pt(1, 1), 1}, // chunk (0,0)
		{image.Pt(5, 2), 2}, // chunk (1,0)
		{image.Pt(9, 1), 1}, // chunk (2,0)
		{image.Pt(6, 6), 1}, // chunk (1,1)
		{image.Pt(7, 5), 0}, // border
	}
	for _, tt := range tests {
		if got := m.Tile(tt.p).AtlasIndex; got != tt.want {
			t.Errorf("Tile(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestCheckerCapsKindsAtMaxIndex(t *testing.T) {
	const n = 3
	m := tilemap.New(image.Pt(tilemap.MaxAtlasIndex+1, 1), n, nil)
	Checker(m, 70000)

	tests := []struct {
		chunkX int
		want   uint16
	}{
		{0, 1},
		{tilemap.MaxAtlasIndex - 1, tilemap.MaxAtlasIndex},
		{tilemap.MaxAtlasIndex, 1},
	}
	for _, tt := range tests {
		p := image.Pt(tt.chunkX*n+1, 1)
		if got := m.Tile(p).AtlasIndex; got != tt.want {
			t.Errorf("chunk %d centre = %d, want %d", tt.chunkX, got, tt.want)
		}
	}
}
