// Package tilemap is a fixed grid of square tile chunks drawn through a
// shared texture atlas. Each frame only the chunks intersecting the camera
// view are visited.
package tilemap

import (
	"fmt"
	"image"

	"golang.org/x/image/colornames"
)

// TileMap is a size.X x size.Y grid of chunks, each chunkSize x chunkSize
// tiles. Coordinates outside the map are programming errors and panic.
type TileMap struct {
	size      image.Point
	chunkSize int
	chunks    []*Chunk
	atlas     Texture
}

// New allocates a map of size chunks with every tile empty.
func New(size image.Point, chunkSize int, atlas Texture) *TileMap {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("tilemap: map size %v must be positive", size))
	}
	chunks := make([]*Chunk, size.X*size.Y)
	for i := range chunks {
		chunks[i] = NewChunk(chunkSize, Tile{})
	}
	return &TileMap{size: size, chunkSize: chunkSize, chunks: chunks, atlas: atlas}
}

// Size returns the map size in chunks.
func (m *TileMap) Size() image.Point { return m.size }

// ChunkSize returns the chunk edge length in tiles.
func (m *TileMap) ChunkSize() int { return m.chunkSize }

// Tiles returns the map size in tiles.
func (m *TileMap) Tiles() image.Point { return m.size.Mul(m.chunkSize) }

func (m *TileMap) ChunkPixelSize() int { return m.chunkSize * TilePixelSize }

func (m *TileMap) ChunkWorldSize() float64 { return float64(m.chunkSize) * TileWorldSize }

// WorldSize returns the map extent in world units.
func (m *TileMap) WorldSize() Vec2 {
	s := m.ChunkWorldSize()
	return V(float64(m.size.X)*s, float64(m.size.Y)*s)
}

func (m *TileMap) Atlas() Texture { return m.atlas }

// SetAtlas swaps the texture later draws sample from.
func (m *TileMap) SetAtlas(t Texture) { m.atlas = t }

// ChunkCoords splits an absolute tile coordinate into the chunk holding it
// and the tile position inside that chunk.
func (m *TileMap) ChunkCoords(p image.Point) (chunk, local image.Point) {
	n := m.chunkSize
	return p.Div(n), image.Point{X: p.X % n, Y: p.Y % n}
}

func (m *TileMap) Tile(p image.Point) Tile {
	return *m.TileRef(p)
}

// TileRef returns the tile at p for in-place modification.
func (m *TileMap) TileRef(p image.Point) *Tile {
	if !p.In(image.Rectangle{Max: m.Tiles()}) {
		panic(fmt.Sprintf("tilemap: tile %v outside map of %v tiles", p, m.Tiles()))
	}
	chunk, local := m.ChunkCoords(p)
	return m.Chunk(chunk).Ref(local.X, local.Y)
}

func (m *TileMap) SetTile(p image.Point, t Tile) {
	*m.TileRef(p) = t
}

func (m *TileMap) Chunk(c image.Point) *Chunk {
	if !c.In(image.Rectangle{Max: m.size}) {
		panic(fmt.Sprintf("tilemap: chunk %v outside map of %v chunks", c, m.size))
	}
	return m.chunks[c.X+c.Y*m.size.X]
}

// Fill overwrites every tile of the map with t.
func (m *TileMap) Fill(t Tile) {
	for _, c := range m.chunks {
		c.Fill(t)
	}
}

// TileAtWorld returns the tile under world point w, or false when w lies
// outside the map.
func (m *TileMap) TileAtWorld(w Vec2) (image.Point, bool) {
	if w.X < 0 || w.Y < 0 {
		return image.Point{}, false
	}
	p := image.Point{X: int(w.X / TileWorldSize), Y: int(w.Y / TileWorldSize)}
	if !p.In(image.Rectangle{Max: m.Tiles()}) {
		return image.Point{}, false
	}
	return p, true
}

// AreaAround returns the chunk index ranges visible from cam, clamped to the map.
func (m *TileMap) AreaAround(cam Camera) (xs, ys Range) {
	return VisibleChunks(cam, m.ChunkWorldSize(), m.size)
}

// DrawAround draws every chunk visible from cam. With debug set, each
// visited chunk and the map bounds are outlined as well.
func (m *TileMap) DrawAround(cam Camera, d Drawer, debug bool) {
	xs, ys := m.AreaAround(cam)
	cs := m.ChunkWorldSize()
	for y := ys.Lo; y < ys.Hi; y++ {
		offset := y * m.size.X
		for x := xs.Lo; x < xs.Hi; x++ {
			c := m.chunks[x+offset]
			origin := V(float64(x), float64(y)).Scale(cs)
			c.DrawAt(origin, m.atlas, d)
			if debug {
				c.DrawDebugAt(origin, d)
			}
		}
	}
	if debug {
		d.DrawRectangleLines(Vec2{}, m.WorldSize(), DebugLineThickness, colornames.Yellow)
	}
}
