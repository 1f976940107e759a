package worldgen

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"chunkview/internal/tilemap"
)

var atlasPalette = []color.RGBA{
	colornames.Seagreen,
	colornames.Sandybrown,
	colornames.Steelblue,
	colornames.Slategray,
	colornames.Darkkhaki,
	colornames.Forestgreen,
	colornames.Peru,
	colornames.Lightsteelblue,
	colornames.Indianred,
	colornames.Olivedrab,
}

// Atlas draws a placeholder atlas of n entries laid out left to right, each
// TilePixelSize square: a flat palette colour with a darker rim and a light
// corner pixel so neighbouring tiles stay distinguishable.
func Atlas(n int) *image.NRGBA {
	n = capKinds(n)
	ps := tilemap.TilePixelSize
	img := image.NewNRGBA(image.Rect(0, 0, n*ps, ps))
	for i := 0; i < n; i++ {
		base := atlasPalette[i%len(atlasPalette)]
		// Later cycles through the palette get progressively darker.
		base = shade(base, 255-uint8(min(i/len(atlasPalette), 4)*40))
		rim := shade(base, 170)
		hi := shade(base, 255)
		hi.R, hi.G, hi.B = lighten(hi.R), lighten(hi.G), lighten(hi.B)

		src := tilemap.Tile{AtlasIndex: uint16(i + 1)}.Source()
		for y := src.Min.Y; y < src.Max.Y; y++ {
			for x := src.Min.X; x < src.Max.X; x++ {
				c := base
				lx, ly := x-src.Min.X, y-src.Min.Y
				switch {
				case lx == 1 && ly == 1:
					c = hi
				case lx == 0 || ly == 0 || lx == ps-1 || ly == ps-1:
					c = rim
				}
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
	}
	return img
}

func shade(c color.RGBA, k uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(k) / 255),
		G: uint8(uint16(c.G) * uint16(k) / 255),
		B: uint8(uint16(c.B) * uint16(k) / 255),
		A: c.A,
	}
}

func lighten(v uint8) uint8 {
	return v + (255-v)/2
}
