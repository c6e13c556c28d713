// Package camera maps the simulation square onto the screen.
package camera

// Camera controls the viewport into the simulation.
// Simulation coordinates have y pointing up; screen coordinates have y pointing down.
type Camera struct {
	// Position is the view center in simulation units
	X, Y float32

	// Zoom level (1.0 = the whole [-Bound, Bound] square fits the shorter viewport side)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Half-width of the simulation square
	Bound float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the origin with the simulation square in view.
func New(viewportW, viewportH, bound float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		Bound:     bound,
		MinZoom:   0.5,
		MaxZoom:   8.0,
	}
}

// Scale returns pixels per simulation unit at the current zoom.
func (c *Camera) Scale() float32 {
	side := c.ViewportW
	if c.ViewportH < side {
		side = c.ViewportH
	}
	return side / (2 * c.Bound) * c.Zoom
}

// WorldToScreen converts simulation coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 - (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to simulation coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y - (sy-c.ViewportH/2)/s
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with the given radius in
// simulation units could be on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx >= minX-radius && wx <= maxX+radius && wy >= minY-radius && wy <= maxY+radius
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
// The view center stays inside the simulation square.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X = clamp(c.X+dx/s, -c.Bound, c.Bound)
	c.Y = clamp(c.Y-dy/s, -c.Bound, c.Bound)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the simulation-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	s := c.Scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
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
