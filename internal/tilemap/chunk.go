package tilemap

import (
	"fmt"

	"golang.org/x/image/colornames"
)

// DebugLineThickness is the stroke width of debug outlines in world units.
const DebugLineThickness = 0.05

// Chunk is an n x n block of tiles, stored row-major.
// It owns no texture; the atlas is shared through the map.
type Chunk struct {
	n     int
	tiles []Tile
}

func NewChunk(n int, fill Tile) *Chunk {
	if n <= 0 {
		panic(fmt.Sprintf("tilemap: chunk size %d must be positive", n))
	}
	c := &Chunk{n: n, tiles: make([]Tile, n*n)}
	c.Fill(fill)
	return c
}

// Size returns the chunk edge length in tiles.
func (c *Chunk) Size() int { return c.n }

func (c *Chunk) WorldSize() float64 { return float64(c.n) * TileWorldSize }

func (c *Chunk) idx(x, y int) int {
	if x < 0 || y < 0 || x >= c.n || y >= c.n {
		panic(fmt.Sprintf("tilemap: local tile (%d,%d) outside chunk of size %d", x, y, c.n))
	}
	return y*c.n + x
}

func (c *Chunk) At(x, y int) Tile { return c.tiles[c.idx(x, y)] }

func (c *Chunk) Ref(x, y int) *Tile { return &c.tiles[c.idx(x, y)] }

func (c *Chunk) Set(x, y int, t Tile) { c.tiles[c.idx(x, y)] = t }

func (c *Chunk) Fill(t Tile) {
	for i := range c.tiles {
		c.tiles[i] = t
	}
}

// DrawAt emits one textured quad per non-empty tile, row by row,
// with the chunk's top-left corner at origin.
func (c *Chunk) DrawAt(origin Vec2, atlas Texture, d Drawer) {
	size := V(TileWorldSize, TileWorldSize)
	for y := 0; y < c.n; y++ {
		row := c.tiles[y*c.n : (y+1)*c.n]
		for x, t := range row {
			if t.Empty() {
				continue
			}
			pos := origin.Add(V(float64(x), float64(y)).Scale(TileWorldSize))
			d.DrawTexturedQuad(atlas, pos, size, t.Source())
		}
	}
}

// DrawDebugAt outlines the chunk bounds.
func (c *Chunk) DrawDebugAt(origin Vec2, d Drawer) {
	s := c.WorldSize()
	d.DrawRectangleLines(origin, V(s, s), DebugLineThickness, colornames.Green)
}
