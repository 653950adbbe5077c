package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolSpawnAndExpire(t *testing.T) {
	p := NewPool(4, 0)
	p.Spawn(Particle{X: 1, VX: 1, Life: 2})
	p.Spawn(Particle{X: 5, Life: 5})
	assert.Equal(t, 2, p.Len())

	p.Step(1)
	alive := p.Alive()
	assert.Len(t, alive, 2)
	assert.Equal(t, 2.0, alive[0].X)

	p.Step(1)
	assert.Equal(t, 1, p.Len(), "first particle should expire at zero life")

	p.Step(3)
	assert.Equal(t, 0, p.Len())
}

func TestPoolFullReplacesShortestLife(t *testing.T) {
	p := NewPool(3, 0)
	p.Spawn(Particle{Color: "a", Life: 10})
	p.Spawn(Particle{Color: "b", Life: 3})
	p.Spawn(Particle{Color: "c", Life: 7})

	p.Spawn(Particle{Color: "d", Life: 9})

	assert.Equal(t, 3, p.Len())
	colors := map[string]bool{}
	for _, pt := range p.Alive() {
		colors[pt.Color] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "c": true, "d": true}, colors)
}

func TestPoolTrailActsAsRing(t *testing.T) {
	p := NewPool(20, 0)
	for i := 0; i < 100; i++ {
		p.Spawn(Particle{X: float64(i), Life: 20})
		p.Step(1)
	}
	assert.Equal(t, 19, p.Len())
	for _, pt := range p.Alive() {
		assert.GreaterOrEqual(t, pt.X, 81.0)
	}
}

func TestPoolGravityAndAlpha(t *testing.T) {
	p := NewPool(1, 0.2)
	p.Spawn(Particle{VY: -2, Life: 10})

	p.Step(1)

	pt := p.Alive()[0]
	assert.InDelta(t, -2.0, pt.Y, 1e-9)
	assert.InDelta(t, -1.8, pt.VY, 1e-9)
	assert.InDelta(t, 0.9, pt.Alpha(), 1e-9)
}

func TestBurstSpawnsCount(t *testing.T) {
	p := NewPool(64, 0)
	p.Burst(testRNG(), 10, 10, BurstSpec{Count: 20, MinSpeed: 3, MaxSpeed: 3, MinLife: 60, MaxLife: 60, Color: "#808080"})

	assert.Equal(t, 20, p.Len())
	for _, pt := range p.Alive() {
		assert.Equal(t, 60.0, pt.Life)
		assert.Equal(t, "#808080", pt.Color)
	}
}

func TestEffectsClear(t *testing.T) {
	fx := NewEffects(20)
	fx.Sparks.Spawn(Particle{Life: 5})
	fx.Trail.Spawn(Particle{Life: 5})

	fx.Clear()

	assert.Equal(t, 0, fx.Sparks.Len()+fx.Trail.Len())
	assert.Equal(t, 20, fx.Trail.Cap())
	assert.Equal(t, 8, fx.Debris.Cap())
}
