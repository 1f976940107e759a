package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"chunkview/internal/tilemap"
	"chunkview/internal/view"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool

	// Stroke follows the tile under a held paint button between frames.
	Stroke view.Stroke
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func down(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// CursorNDC returns the cursor in normalised device coordinates (y up).
func CursorNDC(window *glfw.Window) (tilemap.Vec2, bool) {
	cx, cy := window.GetCursorPos()
	w, h := window.GetSize()
	if w <= 0 || h <= 0 {
		return tilemap.Vec2{}, false
	}
	return tilemap.V(cx/float64(w)*2-1, 1-cy/float64(h)*2), true
}

// BrushKey returns the atlas index selected by a digit key pressed this
// frame; 0 selects the eraser.
func (in *Input) BrushKey(window *glfw.Window) (uint16, bool) {
	var brush uint16
	picked := false
	for i := 0; i <= 9; i++ {
		if in.JustPressed(window, glfw.Key0+glfw.Key(i)) {
			brush, picked = uint16(i), true
		}
	}
	return brush, picked
}

// UpdateCamera maps held keys onto the rig: WASD/arrows pan, E/R zoom in
// and out, Q/Z rotate. It reports whether zoom hit a limit this frame.
func UpdateCamera(rig *view.CameraRig, window *glfw.Window, dt float64) bool {
	dx := view.Axis(down(window, glfw.KeyA, glfw.KeyLeft), down(window, glfw.KeyD, glfw.KeyRight))
	dy := view.Axis(down(window, glfw.KeyW, glfw.KeyUp), down(window, glfw.KeyS, glfw.KeyDown))
	rig.Pan(dx, dy, dt)
	rig.Rotate(view.Axis(down(window, glfw.KeyZ), down(window, glfw.KeyQ)), dt)
	return rig.Zoom(view.Axis(down(window, glfw.KeyR), down(window, glfw.KeyE)), dt)
}
