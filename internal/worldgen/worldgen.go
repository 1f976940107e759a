// Package worldgen fills a preallocated tile map with atlas indices.
package worldgen

import (
	"image"

	"github.com/aquilax/go-perlin"

	"chunkview/internal/tilemap"
)

// Noise parameters.
const (
	Alpha    = 2.0
	Beta     = 2.0
	Octaves  = 3
	Scale    = 0.045 // noise units per tile
	Contrast = 1.6   // stretches the narrow perlin output over all bands
)

// Generate assigns every tile an atlas index in [0, kinds] from 2D perlin
// noise. The lowest band is left empty. The same seed always produces the
// same map; kinds <= 0 clears the map.
func Generate(m *tilemap.TileMap, seed int64, kinds int) {
	if kinds <= 0 {
		m.Fill(tilemap.Tile{})
		return
	}
	p := perlin.NewPerlin(Alpha, Beta, Octaves, seed)
	tiles := m.Tiles()
	for y := 0; y < tiles.Y; y++ {
		for x := 0; x < tiles.X; x++ {
			v := p.Noise2D(float64(x)*Scale, float64(y)*Scale)
			m.SetTile(image.Pt(x, y), tilemap.Tile{AtlasIndex: Band(v, kinds)})
		}
	}
}

// capKinds limits kinds to what a tile can address.
func capKinds(kinds int) int { return min(kinds, tilemap.MaxAtlasIndex) }

// Band maps a noise sample to one of kinds+1 equal bands, 0 being empty.
// kinds above MaxAtlasIndex are capped.
func Band(v float64, kinds int) uint16 {
	kinds = capKinds(kinds)
	t := (v*Contrast + 1) / 2
	i := int(t * float64(kinds+1))
	if i < 0 {
		i = 0
	}
	if i > kinds {
		i = kinds
	}
	return uint16(i)
}

// Checker paints each chunk a single atlas entry, cycling through kinds
// along the diagonals, with the chunk's border tiles left empty.
func Checker(m *tilemap.TileMap, kinds int) {
	if kinds <= 0 {
		m.Fill(tilemap.Tile{})
		return
	}
	kinds = capKinds(kinds)
	n := m.ChunkSize()
	tiles := m.Tiles()
	for y := 0; y < tiles.Y; y++ {
		for x := 0; x < tiles.X; x++ {
			p := image.Pt(x, y)
			chunk, local := m.ChunkCoords(p)
			var t tilemap.Tile
			if local.X != 0 && local.Y != 0 && local.X != n-1 && local.Y != n-1 {
				t.AtlasIndex = uint16(1 + (chunk.X+chunk.Y)%kinds)
			}
			m.SetTile(p, t)
		}
	}
}
