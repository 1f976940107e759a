package tilemap

import (
	"image"
	"image/color"
)

// Texture is a read-only image handle shared by every chunk of a map.
type Texture interface {
	Size() (w, h int)
}

// Drawer is the rendering backend the map emits draw calls into.
type Drawer interface {
	// DrawTexturedQuad draws the src sub-rectangle of tex at pos with the given size.
	DrawTexturedQuad(tex Texture, pos, size Vec2, src image.Rectangle)
	// DrawRectangleLines strokes the outline of the rectangle at pos with the given size.
	DrawRectangleLines(pos, size Vec2, thickness float64, col color.RGBA)
}

// AtlasCapacity returns how many atlas entries in tex a Tile can address.
func AtlasCapacity(tex Texture) int {
	if tex == nil {
		return 0
	}
	w, _ := tex.Size()
	return min(w/TilePixelSize, MaxAtlasIndex)
}
