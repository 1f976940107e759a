package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"chunkview/internal/tilemap"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// FrameStats counts the work submitted during one frame.
type FrameStats struct {
	Quads     int
	Outlines  int
	DrawCalls int
}

// batch is a streamed vertex buffer drawn with one program.
type batch struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uTarget   int32
	uZoom     int32
	uRotation int32

	buf []float32
}

func newBatch(fragSrc string) (*batch, error) {
	prog, err := linkProgram(quadVertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	b := &batch{prog: prog, buf: make([]float32, 0, batchQuads*quadFloats)}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	gl.UseProgram(prog)
	b.uTarget = gl.GetUniformLocation(prog, gl.Str("uTarget\x00"))
	b.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	b.uRotation = gl.GetUniformLocation(prog, gl.Str("uRotation\x00"))
	gl.BindVertexArray(0)
	return b, nil
}

func (b *batch) setCamera(cam tilemap.Camera) {
	gl.UseProgram(b.prog)
	gl.Uniform2f(b.uTarget, float32(cam.Target.X), float32(cam.Target.Y))
	gl.Uniform2f(b.uZoom, float32(cam.Zoom.X), float32(cam.Zoom.Y))
	gl.Uniform1f(b.uRotation, float32(cam.Rotation*math.Pi/180))
}

// quad appends two triangles covering (x0,y0)-(x1,y1): TL, TR, BL then TR, BR, BL.
func (b *batch) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, c [4]float32) {
	b.buf = append(b.buf,
		x0, y0, u0, v0, c[0], c[1], c[2], c[3],
		x1, y0, u1, v0, c[0], c[1], c[2], c[3],
		x0, y1, u0, v1, c[0], c[1], c[2], c[3],
		x1, y0, u1, v0, c[0], c[1], c[2], c[3],
		x1, y1, u1, v1, c[0], c[1], c[2], c[3],
		x0, y1, u0, v1, c[0], c[1], c[2], c[3],
	)
}

// flush draws the buffered quads and reports whether a draw call was issued.
func (b *batch) flush() bool {
	if len(b.buf) == 0 {
		return false
	}
	gl.UseProgram(b.prog)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.buf)*4, gl.Ptr(b.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(b.buf)/vertexFloats))
	b.buf = b.buf[:0]
	return true
}

func (b *batch) destroy() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.prog)
}

// Renderer implements tilemap.Drawer on top of OpenGL. Quads are batched
// per texture and flushed on texture change or at EndFrame; outlines are
// drawn after all tiles.
type Renderer struct {
	tiles *batch
	lines *batch

	uAtlas   int32
	batchTex *Texture

	stats FrameStats
}

var white = [4]float32{1, 1, 1, 1}

func NewRenderer() (*Renderer, error) {
	tiles, err := newBatch(tileFragSrc)
	if err != nil {
		return nil, fmt.Errorf("tile program: %w", err)
	}
	lines, err := newBatch(lineFragSrc)
	if err != nil {
		tiles.destroy()
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{tiles: tiles, lines: lines}
	gl.UseProgram(tiles.prog)
	r.uAtlas = gl.GetUniformLocation(tiles.prog, gl.Str("uAtlas\x00"))
	gl.Uniform1i(r.uAtlas, 0)
	return r, nil
}

func (r *Renderer) Destroy() {
	r.tiles.destroy()
	r.lines.destroy()
}

// BeginFrame clears the framebuffer and loads the camera transform.
func (r *Renderer) BeginFrame(cam tilemap.Camera, fbW, fbH int, clear color.RGBA) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(float32(clear.R)/255, float32(clear.G)/255, float32(clear.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.tiles.setCamera(cam)
	r.lines.setCamera(cam)
	r.stats = FrameStats{}
}

// EndFrame flushes pending tiles, then outlines, and returns the frame's stats.
func (r *Renderer) EndFrame() FrameStats {
	r.flushTiles()
	if r.lines.flush() {
		r.stats.DrawCalls++
	}
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
	return r.stats
}

func (r *Renderer) flushTiles() {
	if r.batchTex == nil {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.batchTex.ID)
	if r.tiles.flush() {
		r.stats.DrawCalls++
	}
}

func (r *Renderer) DrawTexturedQuad(tex tilemap.Texture, pos, size tilemap.Vec2, src image.Rectangle) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.W == 0 || t.H == 0 {
		return
	}
	if r.batchTex != t {
		r.flushTiles()
		r.batchTex = t
	}

	w, h := float32(t.W), float32(t.H)
	x0, y0 := float32(pos.X), float32(pos.Y)
	r.tiles.quad(
		x0, y0, x0+float32(size.X), y0+float32(size.Y),
		float32(src.Min.X)/w, float32(src.Min.Y)/h,
		float32(src.Max.X)/w, float32(src.Max.Y)/h,
		white,
	)
	r.stats.Quads++
}

// DrawRectangleLines strokes the rectangle with four strips inset by thickness.
func (r *Renderer) DrawRectangleLines(pos, size tilemap.Vec2, thickness float64, col color.RGBA) {
	c := [4]float32{float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, float32(col.A) / 255}
	x0, y0 := float32(pos.X), float32(pos.Y)
	x1, y1 := x0+float32(size.X), y0+float32(size.Y)
	t := float32(thickness)

	r.lines.quad(x0, y0, x1, y0+t, 0, 0, 0, 0, c)
	r.lines.quad(x0, y1-t, x1, y1, 0, 0, 0, 0, c)
	r.lines.quad(x0, y0+t, x0+t, y1-t, 0, 0, 0, 0, c)
	r.lines.quad(x1-t, y0+t, x1, y1-t, 0, 0, 0, 0, c)
	r.stats.Outlines++
}
