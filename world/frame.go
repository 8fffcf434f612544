package world

// Frame projects the authoritative buffer into a W*H*4 RGBA byte buffer:
// live bots render their color, empty cells render brown with intensity
// proportional to organic level. The returned slice is reused across calls
// and is valid until the next Step.
func (w *World) Frame() []byte {
	cur := w.cells[w.cur]
	px := w.frame

	for i := range cur {
		o := i * 4
		if cur[i].Bot.Alive {
			c := cur[i].Bot.Color
			px[o+0] = c.R
			px[o+1] = c.G
			px[o+2] = c.B
			px[o+3] = c.A
		} else {
			v := cur[i].Organic * 2
			if v > 255 {
				v = 255
			}
			px[o+0] = byte(v)
			px[o+1] = byte(v / 2)
			px[o+2] = 0
			px[o+3] = 255
		}
	}
	return px
}
