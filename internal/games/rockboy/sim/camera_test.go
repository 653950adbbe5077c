package sim

import (
	"math"
	"testing"
)

func TestCameraApproachesTarget(t *testing.T) {
	c := NewCamera(800, 600, 0.1)
	c.Snap(400, 300)

	c.Follow(1400, 300, 1)

	// Target x is 1000; one reference frame closes 10% of the 1000 gap.
	if math.Abs(c.X-100) > 1e-9 {
		t.Errorf("X = %v, want 100", c.X)
	}

	prev := c.X
	for i := 0; i < 100; i++ {
		c.Follow(1400, 300, 1)
		if c.X <= prev || c.X >= 1000 {
			t.Fatalf("step %d: X = %v, want strictly between %v and 1000", i, c.X, prev)
		}
		prev = c.X
	}
}

func TestCameraDeltaScaling(t *testing.T) {
	a := NewCamera(800, 600, 0.1)
	b := NewCamera(800, 600, 0.1)

	a.Follow(1400, 300, 2)
	b.Follow(1400, 300, 1)
	b.Follow(1400, 300, 1)

	if math.Abs(a.X-b.X) > 1e-9 {
		t.Errorf("dt=2 gave %v, two dt=1 steps gave %v", a.X, b.X)
	}
}

func TestCameraNeverBelowWorld(t *testing.T) {
	c := NewCamera(800, 600, 0.5)

	c.Snap(400, 550)
	if c.Y != 0 {
		t.Errorf("Y = %v, want clamp to 0", c.Y)
	}

	c.Snap(400, -500)
	if c.Y != -800 {
		t.Errorf("Y = %v, want -800 when the rock is high", c.Y)
	}
}

func TestCameraArenaLimit(t *testing.T) {
	c := NewCamera(800, 600, 1)
	c.LimitX(2400)

	c.Snap(100, 300)
	if c.X != 0 {
		t.Errorf("X = %v, want 0 at the left edge", c.X)
	}
	c.Snap(2350, 300)
	if c.X != 1600 {
		t.Errorf("X = %v, want 1600 at the right edge", c.X)
	}
}

func TestCameraVisible(t *testing.T) {
	c := NewCamera(800, 600, 0.1)
	c.Snap(400, 300)

	if !c.Visible(790, 20) {
		t.Error("span crossing the right edge should be visible")
	}
	if c.Visible(800, 20) {
		t.Error("span starting at the right edge should not be visible")
	}
}
