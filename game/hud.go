package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHUD renders the stats readout, the control panel and the cell tooltip.
func (g *Game) drawHUD() {
	alive, tick := g.world.Stats()

	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("bots: %d", alive), 10, 34, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("tick: %d", tick), 10, 58, 20, rl.RayWhite)

	g.drawControls()
	g.drawCellTooltip()
}

// drawControls renders pause, view reset and the speed slider.
func (g *Game) drawControls() {
	x := g.screenW - 220
	y := g.screenH - 110

	label := "Pause"
	if g.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 28}, label) {
		g.paused = !g.paused
	}
	if gui.Button(rl.Rectangle{X: x + 110, Y: y, Width: 100, Height: 28}, "Reset View") {
		g.cam.Reset()
	}

	y += 38
	rl.DrawText("Speed (ticks per frame)", int32(x), int32(y), 14, rl.Gray)
	y += 18
	speed := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 170, Height: 20},
		"1", "10",
		float32(g.stepsPerUpdate), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%dx", g.stepsPerUpdate), int32(x+178), int32(y+2), 16, rl.Gray)
	g.stepsPerUpdate = int(speed + 0.5)
}

// drawCellTooltip shows the cell under the cursor: bot state if one lives
// there, organic level otherwise.
func (g *Game) drawCellTooltip() {
	mouse := rl.GetMousePosition()
	wx, wy := g.cam.ScreenToWorld(mouse.X, mouse.Y)
	x, y := int(wx), int(wy)

	var text string
	if bot, ok := g.world.BotAt(x, y); ok {
		text = fmt.Sprintf("(%d,%d) bot  energy %d  dir %d  ip %d", x, y, bot.Energy, bot.Dir, bot.IP)
	} else {
		text = fmt.Sprintf("(%d,%d) organic %d", x, y, g.world.OrganicAt(x, y))
	}

	const fontSize = 10
	width := rl.MeasureText(text, fontSize)
	tx := int32(mouse.X) + 14
	ty := int32(mouse.Y) + 14
	rl.DrawRectangle(tx-4, ty-3, width+8, fontSize+6, rl.Color{R: 20, G: 25, B: 30, A: 230})
	rl.DrawText(text, tx, ty, fontSize, rl.LightGray)
}
