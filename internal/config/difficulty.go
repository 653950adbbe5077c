package config

import "math"

// DifficultyManager calculates world generation parameters based on the world level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a world level (1-based).
func (d *DifficultyManager) Level(worldLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "world":
		progress = float64(worldLevel-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MinerSpeed returns the miner walking speed for a world level.
func (d *DifficultyManager) MinerSpeed(base float64, worldLevel int) float64 {
	return base * (1.0 + d.Level(worldLevel)*d.cfg.Scaling.SpeedMultiplier)
}

// MinerDamage returns the miner attack damage for a world level.
func (d *DifficultyManager) MinerDamage(base float64, worldLevel int) float64 {
	return base * (1.0 + d.Level(worldLevel)*d.cfg.Scaling.DamageMultiplier)
}

// MinerChance returns the per-segment miner spawn probability for a world level.
func (d *DifficultyManager) MinerChance(base float64, worldLevel int) float64 {
	return clampF(base+d.Level(worldLevel)*d.cfg.Scaling.MinerChanceBonus, 0.0, 1.0)
}

// SpikeChance returns the ground spike probability for a world level.
func (d *DifficultyManager) SpikeChance(base float64, worldLevel int) float64 {
	return clampF(base+d.Level(worldLevel)*d.cfg.Scaling.SpikeChanceBonus, 0.0, 1.0)
}

// MaxMiners returns the miner count cap per segment for a world level.
func (d *DifficultyManager) MaxMiners(base int, worldLevel int) int {
	return base + int(math.Round(d.Level(worldLevel)*float64(d.cfg.Scaling.ExtraMiners)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
