package tilemap

import (
	"image"
	"math"
)

// AreaInGrid converts a world rectangle into the cell range [lo, hi) of a
// grid with cells of gridSize world units and dim cells per axis.
// Both corners are clamped to [0, dim].
func AreaInGrid(gridSize float64, dim image.Point, area Rect) (lo, hi image.Point) {
	lo = image.Point{
		X: clampCell(math.Floor(area.X0/gridSize), dim.X),
		Y: clampCell(math.Floor(area.Y0/gridSize), dim.Y),
	}
	hi = image.Point{
		X: clampCell(math.Ceil(area.X1/gridSize), dim.X),
		Y: clampCell(math.Ceil(area.Y1/gridSize), dim.Y),
	}
	return lo, hi
}

func clampCell(v float64, max int) int {
	if v < 0 {
		return 0
	}
	if v > float64(max) {
		return max
	}
	return int(v)
}

// VisibleChunks returns the chunk index ranges covering the camera view on a
// map of dim chunks, each chunkWorldSize world units wide.
func VisibleChunks(cam Camera, chunkWorldSize float64, dim image.Point) (xs, ys Range) {
	lo, hi := AreaInGrid(chunkWorldSize, dim, ViewRect(cam))
	return Range{Lo: lo.X, Hi: hi.X}, Range{Lo: lo.Y, Hi: hi.Y}
}
