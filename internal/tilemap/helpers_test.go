package tilemap

import (
	"image"
	"image/color"
	"testing"
)

type fakeTexture struct{ w, h int }

func (t fakeTexture) Size() (int, int) { return t.w, t.h }

type quadCall struct {
	tex       Texture
	pos, size Vec2
	src       image.Rectangle
}

type lineCall struct {
	pos, size Vec2
	thickness float64
	col       color.RGBA
}

// recorder captures draw calls in emission order.
type recorder struct {
	quads []quadCall
	lines []lineCall
}

func (r *recorder) DrawTexturedQuad(tex Texture, pos, size Vec2, src image.Rectangle) {
	r.quads = append(r.quads, quadCall{tex: tex, pos: pos, size: size, src: src})
}

func (r *recorder) DrawRectangleLines(pos, size Vec2, thickness float64, col color.RGBA) {
	r.lines = append(r.lines, lineCall{pos: pos, size: size, thickness: thickness, col: col})
}

func mustPanic(t testing.TB, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
