package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rock-boy/internal/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestPhysics() (Physics, config.RockConfig) {
	cfg := config.DefaultRockConfig()
	return NewPhysics(cfg.Physics, cfg.World.GroundY()), cfg
}

// groundedBody returns a body at rest on the ground at x.
func groundedBody(cfg config.RockConfig, x float64) *Body {
	b := NewBody(cfg.Player, cfg.Physics, 21, testRNG())
	b.X = x
	b.Y = cfg.World.GroundY() - b.Radius
	b.Grounded = true
	b.CanJump = true
	return b
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	var tracker inputTracker

	jumped := p.Step(b, tracker.update(InputState{Up: true}), 1, testRNG())
	require.True(t, jumped)
	assert.False(t, b.CanJump)
	assert.InDelta(t, cfg.Physics.JumpForce+cfg.Physics.Gravity, b.VY, 1e-9)

	// Holding the key through the landing must not jump again.
	for i := 0; i < 120; i++ {
		if p.Step(b, tracker.update(InputState{Up: true}), 1, testRNG()) {
			t.Fatalf("held jump re-triggered on tick %d", i)
		}
	}
	assert.True(t, b.Grounded)

	p.Step(b, tracker.update(InputState{}), 1, testRNG())
	assert.True(t, p.Step(b, tracker.update(InputState{JumpHeld: true}), 1, testRNG()))
}

func TestNoJumpInAir(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.Y = 100
	b.Grounded = false
	b.CanJump = false

	jumped := p.Step(b, Controls{JumpPressed: true}, 1, testRNG())

	assert.False(t, jumped)
	assert.InDelta(t, cfg.Physics.Gravity, b.VY, 1e-9)
}

func TestHorizontalAcceleration(t *testing.T) {
	p, cfg := newTestPhysics()

	b := groundedBody(cfg, 400)
	p.Step(b, Controls{InputState: InputState{Right: true}}, 1, testRNG())
	assert.InDelta(t, cfg.Physics.MoveSpeed, b.VX, 1e-9)

	air := groundedBody(cfg, 400)
	air.Y = 100
	air.Grounded = false
	p.Step(air, Controls{InputState: InputState{Right: true}}, 1, testRNG())
	assert.InDelta(t, cfg.Physics.MoveSpeed*cfg.Physics.AirControl, air.VX, 1e-9)
}

func TestSpeedClamped(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)

	for i := 0; i < 100; i++ {
		p.Step(b, Controls{InputState: InputState{Left: true}}, 3, testRNG())
		require.GreaterOrEqual(t, b.VX, -cfg.Physics.MaxSpeedX)
	}
	assert.Equal(t, -cfg.Physics.MaxSpeedX, b.VX)
}

func TestFrictionSnapsToZero(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.VX = 6

	for i := 0; i < 200; i++ {
		p.Step(b, Controls{}, 1, testRNG())
	}

	assert.Equal(t, 0.0, b.VX)
	assert.Equal(t, 0.0, b.RotationVel)
	assert.True(t, b.Grounded)
}

func TestFrictionScalesWithDelta(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.VX = 4

	p.Step(b, Controls{}, 2, testRNG())

	assert.InDelta(t, 4*math.Pow(cfg.Physics.GroundFriction, 2), b.VX, 1e-9)
}

func TestNoFrictionWhileSteering(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.VX = 4

	p.Step(b, Controls{InputState: InputState{Right: true}}, 1, testRNG())

	assert.InDelta(t, 4+cfg.Physics.MoveSpeed, b.VX, 1e-9)
}

func TestHardLandingBounces(t *testing.T) {
	p, cfg := newTestPhysics()
	ground := cfg.World.GroundY()
	b := groundedBody(cfg, 400)
	b.Grounded = false
	b.Y = ground - b.Radius - 5
	b.VY = 10

	p.Step(b, Controls{}, 1, testRNG())

	assert.InDelta(t, -(10+cfg.Physics.Gravity)*cfg.Physics.Restitution, b.VY, 1e-9)
	assert.Equal(t, ground-b.Radius, b.Y)
	assert.True(t, b.Grounded)
	assert.True(t, b.CanJump)
}

func TestSoftLandingStops(t *testing.T) {
	p, cfg := newTestPhysics()
	ground := cfg.World.GroundY()
	b := groundedBody(cfg, 400)
	b.Grounded = false
	b.Y = ground - b.Radius - 1
	b.VY = 1
	b.VX = 0.05
	b.RotationVel = 0.2

	p.Step(b, Controls{}, 1, testRNG())

	assert.Equal(t, 0.0, b.VX)
	assert.Equal(t, 0.0, b.VY)
	assert.Equal(t, 0.0, b.RotationVel)
}

func TestRollingLandingKeepsVerticalSpeed(t *testing.T) {
	p, cfg := newTestPhysics()
	ground := cfg.World.GroundY()
	b := groundedBody(cfg, 400)
	b.Grounded = false
	b.Y = ground - b.Radius - 1
	b.VY = 1
	b.VX = 4

	p.Step(b, Controls{}, 1, testRNG())

	assert.InDelta(t, 1+cfg.Physics.Gravity, b.VY, 1e-9)
	assert.Equal(t, ground-b.Radius, b.Y)
	assert.True(t, b.Grounded)
	assert.NotZero(t, b.VX)
}

func TestRotationFollowsVelocityOnGround(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.VX = 5

	p.Step(b, Controls{InputState: InputState{Right: true}}, 1, testRNG())

	assert.InDelta(t, b.VX*cfg.Physics.RotationFactor, b.RotationVel, 1e-9)
}

func TestRotationDecaysInAir(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 400)
	b.Y = 100
	b.Grounded = false
	b.VX = 5
	b.RotationVel = 0.5

	p.Step(b, Controls{}, 1, testRNG())

	assert.InDelta(t, 0.5*cfg.Physics.RotationFriction, b.RotationVel, 1e-9)
	assert.Equal(t, 5.0, b.VX, "no friction in the air")
}

func TestClampXBouncesOffWalls(t *testing.T) {
	p, cfg := newTestPhysics()
	b := groundedBody(cfg, 5)
	b.VX = -6
	b.RotationVel = 1

	p.ClampX(b, 0, 2400)

	assert.Equal(t, b.Radius, b.X)
	assert.Equal(t, 3.0, b.VX)
	assert.InDelta(t, -0.8, b.RotationVel, 1e-9)

	b.X = 2399
	b.VX = 4
	p.ClampX(b, 0, 2400)
	assert.Equal(t, 2400-b.Radius, b.X)
	assert.Equal(t, -2.0, b.VX)
}

func TestBodyRadiusFormula(t *testing.T) {
	assert.InDelta(t, 21.0, BodyRadius(20, 1, 0.05, 1.0), 1e-9)
	assert.InDelta(t, 20*1.5*1.5, BodyRadius(20, 10, 0.05, 1.5), 1e-9)
}

func TestResizeRegeneratesOutline(t *testing.T) {
	cfg := config.DefaultRockConfig()
	rng := testRNG()
	b := NewBody(cfg.Player, cfg.Physics, 21, rng)
	require.Len(t, b.Points, outlinePoints)

	b.Resize(40, rng)

	assert.Equal(t, 40.0, b.Radius)
	assert.Len(t, b.Points, outlinePoints)
	assert.GreaterOrEqual(t, len(b.Details), minDetails)
	assert.LessOrEqual(t, len(b.Details), maxDetails)
	for _, pt := range b.Points {
		r := math.Hypot(pt.X, pt.Y)
		assert.True(t, r >= 40*0.8-1e-9 && r <= 40*1.2+1e-9, "outline point radius %v", r)
	}
}
