package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

// MinerState is the behaviour state of a miner.
type MinerState int

const (
	MinerPatrol MinerState = iota
	MinerAttacking
)

// String returns the state name.
func (s MinerState) String() string {
	if s == MinerAttacking {
		return "attacking"
	}
	return "patrol"
}

// Miner is a walking NPC that swings a pickaxe at the rock.
type Miner struct {
	X, Y, W, H     float64 // Top-left corner and size
	Facing         float64 // -1 or 1
	Speed          float64
	Health         float64
	AttackRange    float64
	AttackDamage   float64
	AttackCooldown int
	AttackDuration int
	AttackTimer    int
	CooldownTimer  int
	WalkPhase      float64
	State          MinerState
	Home           float64 // Start of the segment that spawned it

	turnChance float64
}

// Strike is a landed pickaxe swing.
type Strike struct {
	Damage     float64
	DirX, DirY float64 // Unit vector from the miner towards the target
}

// NewMiner creates a miner standing on the ground at x.
func NewMiner(x, groundY, facing float64, cfg config.MinerConfig, speed, damage float64) *Miner {
	return &Miner{
		X:              x,
		Y:              groundY - cfg.Height,
		W:              cfg.Width,
		H:              cfg.Height,
		Facing:         facing,
		Speed:          speed,
		Health:         cfg.Health,
		AttackRange:    cfg.AttackRange,
		AttackDamage:   damage,
		AttackCooldown: cfg.AttackCooldown,
		AttackDuration: cfg.AttackDuration,
		turnChance:     cfg.TurnChance,
	}
}

// Rect returns the miner's box.
func (m *Miner) Rect() core.RectF {
	return core.RectF{X: m.X, Y: m.Y, W: m.W, H: m.H}
}

// Center returns the miner's centre point.
func (m *Miner) Center() (float64, float64) {
	return m.X + m.W/2, m.Y + m.H/2
}

// Attacking reports whether a swing is in progress.
func (m *Miner) Attacking() bool {
	return m.State == MinerAttacking
}

// Update advances the miner one tick towards a target at (tx, ty).
// A non-nil Strike is returned on the tick the swing connects.
func (m *Miner) Update(dt, tx, ty float64, rng *rand.Rand) *Strike {
	if m.CooldownTimer > 0 {
		m.CooldownTimer--
	}

	cx, cy := m.Center()
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)

	switch m.State {
	case MinerPatrol:
		if dist <= m.AttackRange && m.CooldownTimer == 0 {
			m.State = MinerAttacking
			m.AttackTimer = m.AttackDuration
			m.CooldownTimer = m.AttackCooldown
			if dx != 0 {
				m.Facing = math.Copysign(1, dx)
			}
			return nil
		}
		m.X += m.Facing * m.Speed * dt
		m.WalkPhase += m.Speed * dt * 0.2
		if rng.Float64() < m.turnChance {
			m.Facing = -m.Facing
		}

	case MinerAttacking:
		m.AttackTimer--
		var hit *Strike
		if m.AttackTimer == m.AttackDuration/2 {
			hit = &Strike{Damage: m.AttackDamage, DirX: m.Facing}
			if dist > 0 {
				hit.DirX, hit.DirY = dx/dist, dy/dist
			}
		}
		if m.AttackTimer <= 0 {
			m.AttackTimer = 0
			m.State = MinerPatrol
		}
		return hit
	}
	return nil
}

// SwingProgress returns how far through the swing the miner is, 0 to 1.
func (m *Miner) SwingProgress() float64 {
	if !m.Attacking() || m.AttackDuration <= 0 {
		return 0
	}
	return 1 - float64(m.AttackTimer)/float64(m.AttackDuration)
}
