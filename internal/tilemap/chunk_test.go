package tilemap

import (
	"image"
	"testing"

	"golang.org/x/image/colornames"
)

func TestTileSource(t *testing.T) {
	tests := []struct {
		index uint16
		want  image.Rectangle
	}{
		{1, image.Rect(0, 0, 8, 8)},
		{2, image.Rect(8, 0, 16, 8)},
		{5, image.Rect(32, 0, 40, 8)},
	}
	for _, tt := range tests {
		if got := (Tile{AtlasIndex: tt.index}).Source(); got != tt.want {
			t.Errorf("Tile{%d}.Source() = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestEmptyChunkDrawsNothing(t *testing.T) {
	var rec recorder
	NewChunk(16, Tile{}).DrawAt(V(0, 0), fakeTexture{w: 64, h: 8}, &rec)
	if len(rec.quads) != 0 || len(rec.lines) != 0 {
		t.Fatalf("empty chunk emitted %d quads, %d lines", len(rec.quads), len(rec.lines))
	}
}

func TestChunkDrawOrder(t *testing.T) {
	atlas := fakeTexture{w: 32, h: 8}
	c := NewChunk(3, Tile{})
	c.Set(2, 0, Tile{AtlasIndex: 1})
	c.Set(0, 1, Tile{AtlasIndex: 2})
	c.Set(1, 2, Tile{AtlasIndex: 3})
	c.Set(0, 0, Tile{AtlasIndex: 4})

	var rec recorder
	c.DrawAt(V(30, 60), atlas, &rec)

	want := []quadCall{
		{atlas, V(30, 60), V(1, 1), image.Rect(24, 0, 32, 8)},
		{atlas, V(32, 60), V(1, 1), image.Rect(0, 0, 8, 8)},
		{atlas, V(30, 61), V(1, 1), image.Rect(8, 0, 16, 8)},
		{atlas, V(31, 62), V(1, 1), image.Rect(16, 0, 24, 8)},
	}
	if len(rec.quads) != len(want) {
		t.Fatalf("got %d quads, want %d", len(rec.quads), len(want))
	}
	for i := range want {
		if rec.quads[i] != want[i] {
			t.Errorf("quad %d = %+v, want %+v", i, rec.quads[i], want[i])
		}
	}
}

func TestChunkDebugOutline(t *testing.T) {
	var rec recorder
	NewChunk(16, Tile{}).DrawDebugAt(V(16, 0), &rec)
	if len(rec.lines) != 1 {
		t.Fatalf("got %d outlines, want 1", len(rec.lines))
	}
	got := rec.lines[0]
	if got.pos != V(16, 0) || got.size != V(16, 16) || got.thickness != DebugLineThickness || got.col != colornames.Green {
		t.Errorf("outline = %+v", got)
	}
}

func TestDrawAroundVisitsOnlyVisibleChunks(t *testing.T) {
	m := New(image.Pt(4, 4), 4, fakeTexture{w: 16, h: 8})
	m.Fill(Tile{AtlasIndex: 1})

	// View [1,3]x[1,3] lies inside chunk (0,0).
	cam := Camera{Target: V(2, 2), Zoom: V(1, 1)}
	var rec recorder
	m.DrawAround(cam, &rec, false)

	if len(rec.quads) != 16 {
		t.Fatalf("got %d quads, want 16", len(rec.quads))
	}
	for _, q := range rec.quads {
		if q.pos.X < 0 || q.pos.X >= 4 || q.pos.Y < 0 || q.pos.Y >= 4 {
			t.Errorf("quad at %v outside chunk (0,0)", q.pos)
		}
	}
	if len(rec.lines) != 0 {
		t.Errorf("got %d outlines without debug", len(rec.lines))
	}
}

func TestDrawAroundChunkOrigins(t *testing.T) {
	m := New(image.Pt(3, 2), 2, fakeTexture{w: 8, h: 8})
	// One tile at local (1,1) of every chunk.
	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 3; cx++ {
			m.SetTile(image.Pt(cx*2+1, cy*2+1), Tile{AtlasIndex: 1})
		}
	}
	cam := Camera{Target: V(3, 2), Zoom: V(0.1, 0.1)}
	var rec recorder
	m.DrawAround(cam, &rec, false)

	want := []Vec2{V(1, 1), V(3, 1), V(5, 1), V(1, 3), V(3, 3), V(5, 3)}
	if len(rec.quads) != len(want) {
		t.Fatalf("got %d quads, want %d", len(rec.quads), len(want))
	}
	for i, w := range want {
		if rec.quads[i].pos != w {
			t.Errorf("quad %d at %v, want %v", i, rec.quads[i].pos, w)
		}
	}
}

func TestDrawAroundDebugDoesNotChangeTiles(t *testing.T) {
	m := New(image.Pt(2, 2), 2, fakeTexture{w: 16, h: 8})
	m.Fill(Tile{AtlasIndex: 2})
	m.SetTile(image.Pt(3, 3), Tile{})
	cam := Camera{Target: V(2, 2), Zoom: V(0.25, 0.25), Rotation: 30}

	var plain, debug recorder
	m.DrawAround(cam, &plain, false)
	m.DrawAround(cam, &debug, true)

	if len(plain.quads) != 15 {
		t.Fatalf("got %d quads, want 15", len(plain.quads))
	}
	if len(debug.quads) != len(plain.quads) {
		t.Fatalf("debug drew %d quads, plain drew %d", len(debug.quads), len(plain.quads))
	}
	for i := range plain.quads {
		if debug.quads[i] != plain.quads[i] {
			t.Errorf("quad %d differs: %+v vs %+v", i, debug.quads[i], plain.quads[i])
		}
	}

	// One outline per visited chunk plus the map bounds.
	if len(debug.lines) != 5 {
		t.Fatalf("got %d outlines, want 5", len(debug.lines))
	}
	last := debug.lines[4]
	if last.pos != V(0, 0) || last.size != V(4, 4) || last.col != colornames.Yellow {
		t.Errorf("map outline = %+v", last)
	}
	for _, l := range debug.lines[:4] {
		if l.col != colornames.Green || l.size != V(2, 2) {
			t.Errorf("chunk outline = %+v", l)
		}
	}
}

func TestDrawAroundOffMapDrawsOnlyMapOutline(t *testing.T) {
	m := New(image.Pt(2, 2), 4, fakeTexture{w: 8, h: 8})
	m.Fill(Tile{AtlasIndex: 1})
	cam := Camera{Target: V(10000, 10000), Zoom: V(0.125, 0.125)}

	var rec recorder
	m.DrawAround(cam, &rec, true)
	if len(rec.quads) != 0 {
		t.Errorf("got %d quads, want 0", len(rec.quads))
	}
	if len(rec.lines) != 1 {
		t.Errorf("got %d outlines, want 1", len(rec.lines))
	}
}
