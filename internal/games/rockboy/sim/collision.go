package sim

import (
	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

// Platform is a static ledge the rock can land on from above.
type Platform struct {
	core.RectF
}

// Spike is a static hazard. Ground spikes point up, hanging spikes point
// down from the underside of a platform.
type Spike struct {
	core.RectF
	Hanging bool
}

// LandOnPlatforms snaps a falling body onto every platform it overlaps.
// It reports whether any landing happened.
func LandOnPlatforms(b *Body, platforms []Platform) bool {
	if b.VY < 0 {
		return false
	}
	landed := false
	for _, p := range platforms {
		if !b.Bounds().Overlaps(p.RectF) {
			continue
		}
		b.Y = p.Y - b.Radius
		b.VY = 0
		b.Grounded = true
		b.CanJump = true
		landed = true
	}
	return landed
}

// HitSpike returns the first spike the body overlaps.
func HitSpike(b *Body, spikes []Spike) (Spike, bool) {
	box := b.Bounds()
	for _, s := range spikes {
		if box.Overlaps(s.RectF) {
			return s, true
		}
	}
	return Spike{}, false
}

// SpikeBounce throws the body up and away from the spike centre.
func SpikeBounce(b *Body, s Spike, spikes config.SpikeConfig, jumpForce float64) {
	b.VY = jumpForce * spikes.BounceFactor
	if b.X < s.CenterX() {
		b.VX = -spikes.BounceSpeed
	} else {
		b.VX = spikes.BounceSpeed
	}
	b.Grounded = false
	b.CanJump = false
}

// Stomps reports whether a falling body lands on the top third of a miner.
func Stomps(b *Body, m *Miner) bool {
	if b.VY <= 0 {
		return false
	}
	if !b.Bounds().Overlaps(m.Rect()) {
		return false
	}
	return b.Y < m.Y+m.H/3
}
