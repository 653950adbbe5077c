package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

func TestStarTouchesIsCircleTest(t *testing.T) {
	cfg := config.DefaultRockConfig()
	s := NewStar(cfg.Star)
	s.Collected = false
	b := groundedBody(cfg, 400)
	b.Y = 300
	reach := b.Radius + cfg.Star.Size

	s.X, s.Y = 400+reach-0.01, 300
	assert.True(t, s.Touches(b))

	s.X = 400 + reach
	assert.False(t, s.Touches(b), "exact reach is not a hit")

	// Inside the box corner but outside the circle.
	d := reach * 0.75
	s.X, s.Y = 400+d, 300+d
	assert.False(t, s.Touches(b))
}

func TestStarCollectStartsTimer(t *testing.T) {
	cfg := config.DefaultRockConfig()
	s := NewStar(cfg.Star)
	s.Collected = false

	s.Collect()

	assert.True(t, s.Collected)
	assert.Equal(t, 180, s.RespawnTimer)
	for i := 0; i < 179; i++ {
		assert.False(t, s.TickRespawn())
	}
	assert.True(t, s.TickRespawn())
}

func TestStarRespawnAvoidsPlayerAndPlatforms(t *testing.T) {
	cfg := config.DefaultRockConfig()
	b := groundedBody(cfg, 400)
	b.Y = 300
	bounds := core.RectF{X: 0, Y: 0, W: 800, H: 550}
	platforms := []Platform{
		{RectF: core.RectF{X: 100, Y: 200, W: 200, H: 20}},
		{RectF: core.RectF{X: 500, Y: 350, W: 150, H: 20}},
	}
	rng := testRNG()

	for i := 0; i < 500; i++ {
		s := NewStar(cfg.Star)
		ok := s.Respawn(rng, bounds, b, platforms, -1, -1)
		if !ok {
			continue
		}
		assert.Greater(t, math.Hypot(s.X-b.X, s.Y-b.Y), cfg.Star.MinPlayerDistance)
		for _, p := range platforms {
			assert.False(t, p.Expand(cfg.Star.SpawnPadding).ContainsPoint(s.X, s.Y))
		}
		assert.InDelta(t, cfg.Star.Speed, math.Hypot(s.VX, s.VY), 1e-9)
		assert.False(t, s.Collected)
	}
}

func TestStarRespawnFallsBack(t *testing.T) {
	cfg := config.DefaultRockConfig()
	b := groundedBody(cfg, 400)
	b.Y = 300
	// Every candidate lies within the platform padding.
	bounds := core.RectF{X: 0, Y: 0, W: 800, H: 550}
	wall := []Platform{{RectF: core.RectF{X: -100, Y: -100, W: 1000, H: 800}}}
	s := NewStar(cfg.Star)

	ok := s.Respawn(testRNG(), bounds, b, wall, 200, 150)

	assert.False(t, ok)
	assert.Equal(t, 200.0, s.X)
	assert.Equal(t, 150.0, s.Y)
	assert.False(t, s.Collected)
}

func TestStarBouncesInsideBounds(t *testing.T) {
	cfg := config.DefaultRockConfig()
	s := NewStar(cfg.Star)
	s.Collected = false
	s.Bounds = core.RectF{X: 0, Y: 0, W: 800, H: 550}
	s.X, s.Y = 25, 300
	s.VX, s.VY = -3, 0
	trail := NewPool(cfg.Star.TrailLength, 0)

	for i := 0; i < 10; i++ {
		s.Update(1, trail)
	}

	assert.Greater(t, s.VX, 0.0)
	assert.GreaterOrEqual(t, s.X, 20.0)
	assert.Equal(t, 10, trail.Len())
	assert.InDelta(t, 1.0, s.Rotation, 1e-9)
}
