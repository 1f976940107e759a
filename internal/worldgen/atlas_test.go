package worldgen

import (
	"image/color"
	"testing"

	"chunkview/internal/tilemap"
)

func TestAtlasLayout(t *testing.T) {
	const n = 12
	img := Atlas(n)
	b := img.Bounds()
	if b.Dx() != n*tilemap.TilePixelSize || b.Dy() != tilemap.TilePixelSize {
		t.Fatalf("atlas bounds = %v", b)
	}

	centre := func(k int) color.NRGBA {
		src := tilemap.Tile{AtlasIndex: uint16(k)}.Source()
		return img.NRGBAAt(src.Min.X+4, src.Min.Y+4)
	}
	for k := 1; k < n; k++ {
		if centre(k) == centre(k+1) {
			t.Errorf("atlas entries %d and %d share colour %v", k, k+1, centre(k))
		}
	}
	// Palette repeats darker after one full cycle.
	if centre(1) == centre(1+len(atlasPalette)) {
		t.Errorf("entry %d repeats entry 1", 1+len(atlasPalette))
	}
	for x := 0; x < b.Dx(); x++ {
		if a := img.NRGBAAt(x, 0).A; a != 255 {
			t.Fatalf("pixel (%d,0) alpha %d, want opaque", x, a)
		}
	}
}

func TestAtlasCapacityMatches(t *testing.T) {
	img := Atlas(5)
	tex := sizeOnly{img.Bounds().Dx(), img.Bounds().Dy()}
	if got := tilemap.AtlasCapacity(tex); got != 5 {
		t.Errorf("AtlasCapacity = %d, want 5", got)
	}
}

type sizeOnly struct{ w, h int }

func (s sizeOnly) Size() (int, int) { return s.w, s.h }
