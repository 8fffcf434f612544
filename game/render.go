package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Draw renders the current frame: world texture, then HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.drawWorld()
	g.drawHUD()

	rl.EndDrawing()
}

// drawWorld uploads the engine's frame buffer to the streaming texture and
// draws it through the camera. Copies are tiled around the camera origin so
// the toroidal wrap shows no seams.
func (g *Game) drawWorld() {
	frame := g.world.Frame()
	for i := range g.pixels {
		o := i * 4
		g.pixels[i] = rl.Color{R: frame[o], G: frame[o+1], B: frame[o+2], A: frame[o+3]}
	}
	rl.UpdateTexture(g.texture, g.pixels)

	ox, oy := g.cam.Origin()
	worldPxW := float32(g.world.Width()) * g.cam.Zoom
	worldPxH := float32(g.world.Height()) * g.cam.Zoom

	for ty := -1; ty <= 1; ty++ {
		for tx := -1; tx <= 1; tx++ {
			x := ox + float32(tx)*worldPxW
			y := oy + float32(ty)*worldPxH
			if x >= g.screenW || y >= g.screenH || x+worldPxW <= 0 || y+worldPxH <= 0 {
				continue
			}
			rl.DrawTextureEx(g.texture, rl.Vector2{X: x, Y: y}, 0, g.cam.Zoom, rl.White)
		}
	}
}
