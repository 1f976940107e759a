package game

import (
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"chunkview/internal/config"
	"chunkview/internal/tilemap"
	"chunkview/internal/view"
	"chunkview/internal/worldgen"
)

// RunDesktop opens the window and runs the viewer until it is closed.
func RunDesktop(cfg config.Config, log *logrus.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithFields(logrus.Fields{
		"width":  cfg.Window.Width,
		"height": cfg.Window.Height,
		"gl":     gl.GoStr(gl.GetString(gl.VERSION)),
	}).Info("window ready")

	var audio *Audio
	if cfg.Audio {
		if audio, err = NewAudio(); err != nil {
			log.WithError(err).Warn("audio init failed, continuing without sound")
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	atlas, source, err := openAtlas(cfg.Atlas)
	if err != nil {
		return err
	}
	defer func() { atlas.Delete() }()
	kinds := tilemap.AtlasCapacity(atlas)
	log.WithFields(logrus.Fields{
		"source": source,
		"width":  atlas.W,
		"height": atlas.H,
		"tiles":  kinds,
	}).Info("atlas loaded")

	m := tilemap.New(image.Pt(cfg.Map.ChunksX, cfg.Map.ChunksY), cfg.Map.ChunkSize, atlas)
	if cfg.Map.Seed != 0 {
		worldgen.Generate(m, cfg.Map.Seed, kinds)
	} else {
		worldgen.Checker(m, kinds)
	}
	log.WithFields(logrus.Fields{
		"chunks":     m.Size(),
		"chunk_size": m.ChunkSize(),
		"chunk_px":   m.ChunkPixelSize(),
		"tiles":      m.Tiles(),
		"seed":       cfg.Map.Seed,
	}).Info("map generated")

	rig := view.NewCameraRig(cfg.Camera, m.WorldSize())
	input := NewInput()
	debug := cfg.Debug
	brush := tilemap.Tile{AtlasIndex: 1}
	atLimit := false

	var frames int
	var stats FrameStats
	statsAt := time.Now()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimised: block until something happens.
			glfw.WaitEvents()
			last = glfw.GetTime()
			continue
		}

		// Update.
		if input.JustPressed(window, glfw.KeyF1) {
			debug = !debug
			audio.Play(CueOverlay)
			log.WithField("debug", debug).Info("chunk overlay toggled")
		}
		if k, ok := input.BrushKey(window); ok {
			if int(k) > kinds {
				log.WithFields(logrus.Fields{"brush": k, "tiles": kinds}).Warn("brush outside atlas")
			} else {
				brush = tilemap.Tile{AtlasIndex: k}
				log.WithField("brush", k).Debug("brush selected")
			}
		}
		if input.JustPressed(window, glfw.KeyF5) && cfg.Atlas.Path != "" {
			tex, err := LoadAtlas(cfg.Atlas.Path)
			if err != nil {
				log.WithError(err).Warn("atlas reload failed, keeping current atlas")
			} else {
				m.SetAtlas(tex)
				atlas.Delete()
				atlas, kinds = tex, tilemap.AtlasCapacity(tex)
				if int(brush.AtlasIndex) > kinds {
					brush = tilemap.Tile{}
				}
				log.WithFields(logrus.Fields{"width": tex.W, "height": tex.H, "tiles": kinds}).Info("atlas reloaded")
			}
		}
		if input.JustPressed(window, glfw.KeyHome) {
			rig.Reset()
		}
		limit := UpdateCamera(rig, window, dt)
		if limit && !atLimit {
			audio.Play(CueLimit)
		}
		atLimit = limit
		rig.FitAspect(fbW, fbH)

		if input.JustClicked(window, glfw.MouseButtonMiddle) {
			if p, ok := cursorTile(m, rig.Cam, window); ok {
				brush = m.Tile(p)
				log.WithField("brush", brush.AtlasIndex).Debug("brush picked")
			}
		}
		switch {
		case window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press:
			paint(m, rig.Cam, window, &input.Stroke, brush, audio, log)
		case window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press:
			paint(m, rig.Cam, window, &input.Stroke, tilemap.Tile{}, audio, log)
		default:
			input.Stroke.Lift()
		}

		// Draw.
		rend.BeginFrame(rig.Cam, fbW, fbH, colornames.Midnightblue)
		m.DrawAround(rig.Cam, rend, debug)
		fs := rend.EndFrame()
		stats.Quads += fs.Quads
		stats.Outlines += fs.Outlines
		stats.DrawCalls += fs.DrawCalls
		frames++

		if elapsed := time.Since(statsAt); elapsed >= StatsInterval {
			xs, ys := m.AreaAround(rig.Cam)
			log.WithFields(logrus.Fields{
				"fps":        float64(frames) / elapsed.Seconds(),
				"chunks":     xs.Len() * ys.Len(),
				"quads":      stats.Quads / frames,
				"outlines":   stats.Outlines / frames,
				"draw_calls": stats.DrawCalls / frames,
				"zoom":       rig.Cam.Zoom.Y,
				"rotation":   rig.Cam.Rotation,
			}).Debug("frame stats")
			frames, stats, statsAt = 0, FrameStats{}, time.Now()
		}

		window.SwapBuffers()
	}
	return nil
}

// openAtlas decodes the configured PNG or generates a placeholder atlas.
func openAtlas(cfg config.Atlas) (*Texture, string, error) {
	if cfg.Path != "" {
		tex, err := LoadAtlas(cfg.Path)
		if err != nil {
			return nil, "", err
		}
		return tex, cfg.Path, nil
	}
	return NewTexture(worldgen.Atlas(cfg.Tiles)), "generated", nil
}

// paint writes t into every tile the cursor crossed since the previous
// frame. Leaving the map ends the stroke. Tiles that already match are
// skipped.
func paint(m *tilemap.TileMap, cam tilemap.Camera, window *glfw.Window, stroke *view.Stroke, t tilemap.Tile, audio *Audio, log *logrus.Logger) {
	p, ok := cursorTile(m, cam, window)
	if !ok {
		stroke.Lift()
		return
	}
	changed := 0
	for _, q := range stroke.To(p) {
		if m.Tile(q) != t {
			m.SetTile(q, t)
			changed++
		}
	}
	if changed == 0 {
		return
	}
	audio.Play(CuePaint)
	log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "tile": t.AtlasIndex, "changed": changed}).Debug("tiles painted")
}

func cursorTile(m *tilemap.TileMap, cam tilemap.Camera, window *glfw.Window) (image.Point, bool) {
	ndc, ok := CursorNDC(window)
	if !ok {
		return image.Point{}, false
	}
	return m.TileAtWorld(cam.ScreenToWorld(ndc))
}
