package sim

import "github.com/vovakirdan/rock-boy/internal/config"

// Health tracks hit points and the invulnerability window after a hit.
// GameOver is one-way; build a new Health to revive.
type Health struct {
	Current        float64
	Max            float64
	FlashFrames    int // Ticks left of the damage flash
	ImmunityFrames int // Ticks left of invulnerability
	GameOver       bool

	flashDuration    int
	immunityDuration int
}

// NewHealth creates a full Health with the given cap.
func NewHealth(max float64, cfg config.HealthConfig) *Health {
	return &Health{
		Current:          max,
		Max:              max,
		flashDuration:    cfg.FlashFrames,
		immunityDuration: cfg.ImmunityFrames,
	}
}

// Vulnerable reports whether a hit would register now.
func (h *Health) Vulnerable() bool {
	return !h.GameOver && h.ImmunityFrames == 0
}

// TakeDamage applies a hit and reports whether it registered.
func (h *Health) TakeDamage(amount float64) bool {
	if !h.Vulnerable() || amount <= 0 {
		return false
	}

	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.GameOver = true
	}
	h.FlashFrames = h.flashDuration
	h.ImmunityFrames = h.immunityDuration
	return true
}

// Tick counts both windows down by one frame.
func (h *Health) Tick() {
	if h.FlashFrames > 0 {
		h.FlashFrames--
	}
	if h.ImmunityFrames > 0 {
		h.ImmunityFrames--
	}
}

// SetMax changes the cap, optionally refilling, and keeps Current within it.
func (h *Health) SetMax(max float64, refill bool) {
	if h.GameOver {
		return
	}
	h.Max = max
	if refill || h.Current > h.Max {
		h.Current = h.Max
	}
}

// Flashing reports whether the damage flash is showing.
func (h *Health) Flashing() bool {
	return h.FlashFrames > 0
}

// Fraction returns Current/Max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// MaxHealth is the cap for a level and stage strength.
func MaxHealth(base float64, level int, sizePerLevel, strength float64) float64 {
	return base * strength * (1 + float64(level)*sizePerLevel)
}
