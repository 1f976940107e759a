// Package view holds the camera controls and paint strokes of the viewer.
// Nothing here touches GL, so it is tested without a window.
package view

import (
	"math"

	"chunkview/internal/config"
	"chunkview/internal/tilemap"
)

// CameraRig owns the tilemap camera and applies pan, zoom and rotation
// input to it. Zoom.Y is the controlled value; Zoom.X follows the
// framebuffer aspect ratio.
type CameraRig struct {
	Cam tilemap.Camera

	cfg   config.Camera
	world tilemap.Vec2
}

func NewCameraRig(cfg config.Camera, world tilemap.Vec2) *CameraRig {
	c := &CameraRig{cfg: cfg, world: world}
	c.Reset()
	return c
}

// Reset centres the camera on the map at the configured zoom, unrotated.
func (c *CameraRig) Reset() {
	z := clampF(c.cfg.Zoom, c.cfg.MinZoom, c.cfg.MaxZoom)
	c.Cam = tilemap.Camera{
		Target: c.world.Scale(0.5),
		Zoom:   tilemap.V(z, z),
	}
}

// Pan moves the target by (dx, dy) screen directions (x right, y down),
// scaled so a full second covers PanSpeed half extents whatever the zoom.
func (c *CameraRig) Pan(dx, dy, dt float64) {
	if dx == 0 && dy == 0 {
		return
	}
	k := c.cfg.PanSpeed * dt / c.Cam.Zoom.Y
	ndc := tilemap.V(dx*k*c.Cam.Zoom.X, -dy*k*c.Cam.Zoom.Y)
	c.Cam.Target = c.Cam.ScreenToWorld(ndc)
	c.clampTarget()
}

// Zoom scales the vertical zoom exponentially; dir > 0 zooms in.
// It reports whether the zoom hit a configured limit.
func (c *CameraRig) Zoom(dir, dt float64) bool {
	if dir == 0 {
		return false
	}
	z := c.Cam.Zoom.Y * math.Exp(dir*c.cfg.ZoomRate*dt)
	clamped := clampF(z, c.cfg.MinZoom, c.cfg.MaxZoom)
	ratio := clamped / c.Cam.Zoom.Y
	c.Cam.Zoom.Y = clamped
	c.Cam.Zoom.X *= ratio
	return clamped != z
}

// Rotate turns the view; dir > 0 increases the rotation angle.
func (c *CameraRig) Rotate(dir, dt float64) {
	c.Cam.Rotation = math.Mod(c.Cam.Rotation+dir*c.cfg.RotateSpeed*dt, 360)
}

// FitAspect keeps world units square on a fbW x fbH framebuffer.
func (c *CameraRig) FitAspect(fbW, fbH int) {
	if fbW <= 0 || fbH <= 0 {
		return
	}
	c.Cam.Zoom.X = c.Cam.Zoom.Y * float64(fbH) / float64(fbW)
}

func (c *CameraRig) clampTarget() {
	c.Cam.Target.X = clampF(c.Cam.Target.X, 0, c.world.X)
	c.Cam.Target.Y = clampF(c.Cam.Target.Y, 0, c.world.Y)
}
