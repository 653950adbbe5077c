package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rock-boy/internal/config"
)

// Physics integrates the rock body one tick at a time.
type Physics struct {
	cfg     config.PhysicsConfig
	groundY float64
}

// NewPhysics creates a physics integrator for a ground line.
func NewPhysics(cfg config.PhysicsConfig, groundY float64) Physics {
	return Physics{cfg: cfg, groundY: groundY}
}

// Step advances the body by dt reference frames. It reports whether a jump started.
func (p Physics) Step(b *Body, c Controls, dt float64, rng *rand.Rand) (jumped bool) {
	dir := c.Horizontal()

	// Horizontal acceleration only while a direction is held
	if dir != 0 {
		accel := b.Acceleration
		if !b.Grounded {
			accel *= p.cfg.AirControl
		}
		b.VX += dir * accel * dt
		b.VX = math.Max(-b.MaxSpeedX, math.Min(b.MaxSpeedX, b.VX))
	}

	if c.JumpPressed && b.CanJump {
		b.VY = p.cfg.JumpForce
		b.CanJump = false
		b.Grounded = false
		jumped = true
	}

	b.VY += p.cfg.Gravity * dt

	if b.Grounded && dir == 0 {
		b.VX *= math.Pow(b.Friction, dt)
		if math.Abs(b.VX) < p.cfg.StopThreshold {
			b.VX = 0
			b.RotationVel = 0
		}
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Grounded {
		b.RotationVel = b.VX * p.cfg.RotationFactor
	} else {
		b.RotationVel *= math.Pow(p.cfg.RotationFriction, dt)
	}
	if math.Abs(b.VX) < p.cfg.StopThreshold {
		b.RotationVel = 0
	}
	b.Rotation += b.RotationVel * dt

	p.collideGround(b, rng)
	return jumped
}

// collideGround clamps the body to the ground line and resolves the landing.
func (p Physics) collideGround(b *Body, rng *rand.Rand) {
	if b.Bottom() < p.groundY {
		b.Grounded = false
		return
	}

	b.Y = p.groundY - b.Radius
	if b.VY > p.cfg.HardLanding {
		b.RotationVel += (rng.Float64() - 0.5) * b.VY * 0.1
		b.VY = -b.VY * p.cfg.Restitution
	} else if math.Abs(b.VX) < p.cfg.StopThreshold {
		b.VX, b.VY = 0, 0
		b.RotationVel = 0
	}
	b.Grounded = true
	b.CanJump = true
}

// ClampX keeps the body inside [minX, maxX], bouncing off the walls.
func (p Physics) ClampX(b *Body, minX, maxX float64) {
	if b.X-b.Radius < minX {
		b.X = minX + b.Radius
		b.VX = math.Abs(b.VX) * p.cfg.WallDamping
		b.RotationVel *= p.cfg.WallSpin
	} else if b.X+b.Radius > maxX {
		b.X = maxX - b.Radius
		b.VX = -math.Abs(b.VX) * p.cfg.WallDamping
		b.RotationVel *= p.cfg.WallSpin
	}
}

// GroundY returns the ground line.
func (p Physics) GroundY() float64 {
	return p.groundY
}
