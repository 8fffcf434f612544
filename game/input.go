package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	g.handleCameraInput()
}

// handleResize propagates new window dimensions to the camera.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenW && h == g.screenH {
		return
	}
	g.screenW = w
	g.screenH = h
	g.cam.Resize(w, h)
}

// handleCameraInput processes pan and zoom controls.
func (g *Game) handleCameraInput() {
	// Arrow pan in screen pixels; Pan converts by the current zoom
	panSpeed := float32(8.0)

	if rl.IsKeyDown(rl.KeyRight) {
		g.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.cam.Pan(0, -panSpeed)
	}

	// Drag panning: the world follows the cursor
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		g.cam.Pan(-delta.X, -delta.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.cam.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.cam.Reset()
	}
}
