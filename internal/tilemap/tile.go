package tilemap

import (
	"image"
	"math"
)

const (
	// TilePixelSize is the edge length of one atlas entry in pixels.
	TilePixelSize = 8
	// TileWorldSize is the edge length of one tile in world units.
	TileWorldSize = 1.0
	// MaxAtlasIndex is the largest entry a Tile can address.
	MaxAtlasIndex = math.MaxUint16
)

// Tile is a single grid cell. AtlasIndex 0 means empty; k >= 1 selects
// the k-th entry of a horizontally strided atlas.
type Tile struct {
	AtlasIndex uint16
}

func (t Tile) Empty() bool { return t.AtlasIndex == 0 }

// Source returns the atlas sub-rectangle for the tile. Entries are laid out
// left to right on a single row; the result is not checked against the image.
func (t Tile) Source() image.Rectangle {
	x := (int(t.AtlasIndex) - 1) * TilePixelSize
	return image.Rect(x, 0, x+TilePixelSize, TilePixelSize)
}
