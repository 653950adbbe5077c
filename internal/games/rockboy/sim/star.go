package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

const starSpin = 0.1

// Star is the roaming collectible.
type Star struct {
	X, Y         float64
	VX, VY       float64
	Rotation     float64
	Collected    bool
	RespawnTimer int
	Bounds       core.RectF // Area the star bounces around in

	cfg config.StarConfig
}

// NewStar creates a collected star that appears once its timer is respawned.
func NewStar(cfg config.StarConfig) *Star {
	return &Star{cfg: cfg, Collected: true}
}

// Size returns the star's collision radius.
func (s *Star) Size() float64 {
	return s.cfg.Size
}

// Update moves the star and bounces it inside its bounds.
func (s *Star) Update(dt float64, trail *Pool) {
	if s.Collected {
		return
	}

	s.X += s.VX * dt
	s.Y += s.VY * dt
	s.Rotation += starSpin * dt

	m := s.cfg.Margin
	if s.X < s.Bounds.X+m {
		s.X = s.Bounds.X + m
		s.VX = math.Abs(s.VX)
	} else if s.X > s.Bounds.Right()-m {
		s.X = s.Bounds.Right() - m
		s.VX = -math.Abs(s.VX)
	}
	if s.Y < s.Bounds.Y+m {
		s.Y = s.Bounds.Y + m
		s.VY = math.Abs(s.VY)
	} else if s.Y > s.Bounds.Bottom()-m {
		s.Y = s.Bounds.Bottom() - m
		s.VY = -math.Abs(s.VY)
	}

	trail.Spawn(Particle{X: s.X, Y: s.Y, Life: s.cfg.TrailLife, Size: s.cfg.Size / 3, Color: "#FFD700"})
}

// Touches reports a circle-circle hit with the body.
func (s *Star) Touches(b *Body) bool {
	if s.Collected {
		return false
	}
	dx, dy := b.X-s.X, b.Y-s.Y
	reach := b.Radius + s.cfg.Size
	return dx*dx+dy*dy < reach*reach
}

// Collect marks the star taken and starts the respawn countdown.
func (s *Star) Collect() {
	s.Collected = true
	s.RespawnTimer = s.cfg.RespawnTicks
}

// TickRespawn counts down while collected and reports when the star is due.
func (s *Star) TickRespawn() bool {
	if !s.Collected {
		return false
	}
	if s.RespawnTimer > 0 {
		s.RespawnTimer--
	}
	return s.RespawnTimer == 0
}

// Respawn places the star at a random point in bounds that is far from the
// player and clear of platforms. After MaxSpawnAttempts misses it uses
// fallbackX, fallbackY. It reports whether a random point was found.
func (s *Star) Respawn(rng *rand.Rand, bounds core.RectF, b *Body, platforms []Platform, fallbackX, fallbackY float64) bool {
	s.Bounds = bounds
	s.Collected = false
	s.RespawnTimer = 0

	angle := rng.Float64() * 2 * math.Pi
	s.VX = math.Cos(angle) * s.cfg.Speed
	s.VY = math.Sin(angle) * s.cfg.Speed

	m := s.cfg.Margin
	spanX := math.Max(0, bounds.W-2*m)
	spanY := math.Max(0, bounds.H-2*m)
	for i := 0; i < s.cfg.MaxSpawnAttempts; i++ {
		x := bounds.X + m + rng.Float64()*spanX
		y := bounds.Y + m + rng.Float64()*spanY
		if s.validSpawn(x, y, b, platforms) {
			s.X, s.Y = x, y
			return true
		}
	}

	s.X, s.Y = fallbackX, fallbackY
	return false
}

func (s *Star) validSpawn(x, y float64, b *Body, platforms []Platform) bool {
	if math.Hypot(x-b.X, y-b.Y) <= s.cfg.MinPlayerDistance {
		return false
	}
	for _, p := range platforms {
		if p.Expand(s.cfg.SpawnPadding).ContainsPoint(x, y) {
			return false
		}
	}
	return true
}
