// Package app wires the window, renderer and viewer together and drives
// the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/bunnylight/internal/config"
	"github.com/Faultbox/bunnylight/internal/controls"
	"github.com/Faultbox/bunnylight/internal/engine/debug"
	"github.com/Faultbox/bunnylight/internal/engine/input"
	"github.com/Faultbox/bunnylight/internal/engine/lighting"
	"github.com/Faultbox/bunnylight/internal/engine/renderer"
	"github.com/Faultbox/bunnylight/internal/engine/window"
	"github.com/Faultbox/bunnylight/internal/logger"
	"github.com/Faultbox/bunnylight/internal/mesh"
	"github.com/Faultbox/bunnylight/internal/viewer"
)

// App is the running viewer instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.GL
	input    *input.Input
	viewer   *viewer.Viewer
	capture  *debug.ScreenshotCapture
	pending  frameRequests
}

// New performs one-time setup. Any failure, including a missing OpenGL
// context, aborts setup and releases what was already created.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("mesh", cfg.Mesh.Name),
	)

	m, err := mesh.Builtin(cfg.Mesh.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	if cfg.Mesh.Fit > 0 {
		m.Fit(cfg.Mesh.Fit)
		lo, hi := m.Bounds()
		logger.Debug("mesh fitted",
			zap.Float32("extent", cfg.Mesh.Fit),
			zap.Any("min", lo),
			zap.Any("max", hi),
		)
	}

	a := &App{
		config:  cfg,
		input:   input.New(),
		capture: debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
	}

	// Window also creates the OpenGL context
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.NewGL(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: cfg.Window.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.renderer.UploadMesh(m); err != nil {
		a.Close()
		return nil, err
	}

	// Mouse events arrive in window coordinates, not drawable pixels
	ww, wh := a.window.Size()
	a.viewer, err = viewer.New(viewer.Options{
		Device:      a.renderer,
		Panel:       controls.NewPanel(cfg.Controls),
		Orbit:       lighting.NewOrbit(cfg.Lighting.PhaseStep, cfg.Lighting.OrbitSpeed),
		Pointer:     lighting.NewPointerLight(cfg.Lighting.PointerZ, ww, wh),
		Params:      lighting.ParamsFromConfig(cfg.Lighting),
		VertexCount: m.VertexCount(),
		Status:      a.setStatus,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("viewer initialized",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return a, nil
}

// Run renders frames until Stop is called or the window closes.
// With vsync enabled the buffer swap paces the loop to the display.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()
	lastTime := fpsTimer

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch dispatch(event, a.viewer.Panel(), a.viewer.Pointer()) {
			case actionQuit:
				a.Stop()
			case actionResize:
				a.renderer.Viewport(a.window.DrawableSize())
			case actionScreenshot:
				a.pending.requestScreenshot()
			case actionSave:
				a.save()
			}
		}
		if !a.running {
			break
		}

		a.viewer.RenderFrame()
		// The back buffer only holds this frame until the swap
		a.pending.flush(a.screenshot)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Float64("phase", a.viewer.Phase()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop stopped", zap.Uint64("frames", a.viewer.Frames()))
	return nil
}

// Stop ends the loop after the current iteration.
func (a *App) Stop() {
	a.running = false
}

// Close releases GPU and window resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

func (a *App) setStatus(status string) {
	a.window.SetTitle(a.config.Window.Title + " | " + status)
}

func (a *App) save() {
	changed := a.viewer.Panel().Commit(&a.config.Controls)
	if len(changed) == 0 {
		logger.Info("no control changes to save")
		return
	}
	if err := a.config.Save(); err != nil {
		logger.Error("failed to save config", zap.Error(err))
		return
	}
	logger.Info("control values saved as initial values", zap.Strings("controls", changed))
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}
