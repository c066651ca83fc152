// Package gui runs the molecule viewer in a desktop window.
package gui

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/viewer"
)

// HUD colours
var (
	ColText    = rl.NewColor(180, 180, 180, 255)
	ColTextDim = rl.NewColor(90, 90, 90, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

const keyOrbitStep = 0.05

type App struct {
	Viewer *viewer.Viewer
	Window *Window
}

// initWindow opens a resizable window sized and titled from cfg.
func initWindow(cfg *config.Config) {
	var flags uint32 = rl.FlagWindowResizable
	if cfg.Window.Antialias {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, logger *log.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	w := NewWindow()
	v, err := viewer.New(cfg, w, rl.GetScreenWidth(), rl.GetScreenHeight())
	if err != nil {
		return fmt.Errorf("start viewer: %w", err)
	}
	v.SetLogger(logger)

	app := &App{Viewer: v, Window: w}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()

		rl.BeginDrawing()
		a.Viewer.Tick()
		a.DrawHUD()
		rl.EndDrawing()
	}
}

// Update feeds window and input events to the viewer. A minimised window
// reports a zero size, which the viewer ignores.
func (a *App) Update() {
	if rl.IsWindowResized() {
		_ = a.Viewer.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	c := a.Viewer.Controls
	_, h := a.Window.Size()
	delta := rl.GetMouseDelta()
	switch {
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		c.Drag(float64(delta.X), float64(delta.Y), h)
	case rl.IsMouseButtonDown(rl.MouseRightButton):
		c.Pan(float64(delta.X), float64(delta.Y), h)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Dolly(float64(wheel))
	}

	if rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA) {
		c.RotateLeft(keyOrbitStep)
	}
	if rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD) {
		c.RotateLeft(-keyOrbitStep)
	}
	if rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW) {
		c.RotateUp(keyOrbitStep)
	}
	if rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS) {
		c.RotateUp(-keyOrbitStep)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Viewer.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Viewer.ResetView()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.Window.SetShadows(!a.Window.Shadows())
	}
}

func (a *App) DrawHUD() {
	w, h := a.Window.Size()
	rl.DrawText("molview", 20, 20, 24, ColSelect)

	status, col := "SPINNING", ColText
	if a.Viewer.Paused {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, int32(w)-130, 24, 16, col)

	rl.DrawText(fmt.Sprintf("%d FPS  tick %d", rl.GetFPS(), a.Viewer.Ticks()), 20, int32(h)-30, 14, ColTextDim)
	rl.DrawText("[DRAG] ORBIT  [RMB] PAN  [WHEEL] ZOOM  [SPACE] PAUSE  [R] RESET  [H] SHADOWS", 20, int32(h)-50, 14, ColTextDim)
}
