package sim

import "math"

// Camera is the top-left corner of the viewport in world units.
type Camera struct {
	X, Y      float64
	ViewW     float64
	ViewH     float64
	Smoothing float64 // Fraction of the gap closed per reference frame

	limitX  bool
	boundsW float64
}

// NewCamera creates a camera for a viewport.
func NewCamera(viewW, viewH, smoothing float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, Smoothing: smoothing}
}

// LimitX keeps the viewport inside [0, width]. Zero removes the limit.
func (c *Camera) LimitX(width float64) {
	c.limitX = width > 0
	c.boundsW = width
}

// Follow moves the camera towards centring (px, py).
func (c *Camera) Follow(px, py, dt float64) {
	tx, ty := c.target(px, py)
	k := 1 - math.Pow(1-c.Smoothing, dt)
	c.X += (tx - c.X) * k
	c.Y += (ty - c.Y) * k
	c.clamp()
}

// Snap centres the camera on (px, py) immediately.
func (c *Camera) Snap(px, py float64) {
	c.X, c.Y = c.target(px, py)
	c.clamp()
}

func (c *Camera) target(px, py float64) (float64, float64) {
	return px - c.ViewW/2, py - c.ViewH/2
}

func (c *Camera) clamp() {
	// Never show below the world bottom
	if c.Y > 0 {
		c.Y = 0
	}
	if c.limitX {
		c.X = math.Max(0, math.Min(c.boundsW-c.ViewW, c.X))
	}
}

// Visible reports whether a horizontal span intersects the viewport.
func (c *Camera) Visible(x, w float64) bool {
	return x+w > c.X && x < c.X+c.ViewW
}
