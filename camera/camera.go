// Package camera provides a 2D pan/zoom viewport onto the toroidal world
// grid. One world unit is one cell, so the zoom is the on-screen pixel size
// of a cell.
package camera

import "math"

// Camera maps world cell coordinates to screen pixels.
type Camera struct {
	// Position is the camera center in world coordinates.
	X, Y float32

	// Zoom is screen pixels per cell.
	Zoom float32

	// Viewport dimensions in screen pixels.
	ViewportW, ViewportH float32

	// World dimensions in cells, for toroidal wrapping.
	WorldW, WorldH float32

	// Zoom constraints. MinZoom keeps the viewport from exceeding the
	// world, so there is never dead space beyond the wrap.
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world. The initial zoom fills the
// viewport; MaxZoom allows magnifying down to individual cells.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
	c.updateZoomBounds()
	c.Zoom = c.MinZoom
	return c
}

// updateZoomBounds recomputes the zoom clamps from viewport and world size.
// MinZoom is where the limiting world axis exactly fills the viewport.
func (c *Camera) updateZoomBounds() {
	minZoom := c.ViewportW / c.WorldW
	if z := c.ViewportH / c.WorldH; z > minZoom {
		minZoom = z
	}
	c.MinZoom = minZoom
	c.MaxZoom = minZoom * 16
	if c.Zoom != 0 {
		c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxZoom)
	}
}

// WorldToScreen converts world coordinates to screen coordinates, taking the
// shortest toroidal path to the viewport center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X, c.WorldW)
	dy := toroidalDelta(wy, c.Y, c.WorldH)
	return c.ViewportW/2 + dx*c.Zoom, c.ViewportH/2 + dy*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates, wrapped to
// world bounds.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (sy - c.ViewportH/2) / c.Zoom
	return mod(c.X+dx, c.WorldW), mod(c.Y+dy, c.WorldH)
}

// Origin returns the screen position of world cell (0,0) along the shortest
// toroidal path. The renderer tiles full-world copies around this point to
// cover the wrap seams.
func (c *Camera) Origin() (sx, sy float32) {
	return c.WorldToScreen(0, 0)
}

// Pan moves the camera by the given delta in screen pixels, wrapping around
// world boundaries.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx/c.Zoom, c.WorldW)
	c.Y = mod(c.Y+dy/c.Zoom, c.WorldH)
}

// SetZoom sets the zoom level, clamped to the camera's bounds.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Resize updates viewport dimensions and re-clamps the zoom.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.updateZoomBounds()
}

// Reset recenters the camera and fits the world to the viewport.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to' in
// a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
