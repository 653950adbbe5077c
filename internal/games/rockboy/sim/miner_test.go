package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rock-boy/internal/config"
)

func newTestMiner() *Miner {
	cfg := config.DefaultRockConfig()
	m := NewMiner(1000, cfg.World.GroundY(), 1, cfg.Miners, cfg.Miners.Speed, cfg.Miners.AttackDamage)
	m.turnChance = 0
	return m
}

func TestMinerAttacksAtExactRange(t *testing.T) {
	m := newTestMiner()
	cx, cy := m.Center()
	require.Equal(t, MinerPatrol, m.State)
	require.Equal(t, 0, m.CooldownTimer)

	hit := m.Update(1, cx+m.AttackRange, cy, testRNG())

	assert.Nil(t, hit)
	assert.Equal(t, MinerAttacking, m.State)
	assert.Equal(t, m.AttackDuration, m.AttackTimer)
	assert.Equal(t, m.AttackCooldown, m.CooldownTimer)
}

func TestMinerIgnoresTargetOutOfRange(t *testing.T) {
	m := newTestMiner()
	cx, cy := m.Center()

	m.Update(1, cx+m.AttackRange+0.01, cy, testRNG())

	assert.Equal(t, MinerPatrol, m.State)
	assert.InDelta(t, 1000+m.Speed, m.X, 1e-9)
}

func TestMinerStrikesOnceAtMidpoint(t *testing.T) {
	m := newTestMiner()
	cx, cy := m.Center()
	tx, ty := cx+30, cy
	m.Update(1, tx, ty, testRNG())
	require.True(t, m.Attacking())

	strikes := 0
	strikeTick := 0
	for tick := 1; tick <= m.AttackDuration; tick++ {
		if hit := m.Update(1, tx, ty, testRNG()); hit != nil {
			strikes++
			strikeTick = tick
			assert.InDelta(t, 1.0, hit.DirX, 1e-9)
			assert.InDelta(t, 0.0, hit.DirY, 1e-9)
			assert.Equal(t, m.AttackDamage, hit.Damage)
		}
	}

	assert.Equal(t, 1, strikes)
	assert.Equal(t, m.AttackDuration/2, strikeTick)
	assert.Equal(t, MinerPatrol, m.State)
}

func TestMinerCooldownBlocksNextAttack(t *testing.T) {
	m := newTestMiner()
	cx, cy := m.Center()
	for i := 0; i <= m.AttackDuration; i++ {
		m.Update(1, cx, cy-10, testRNG())
	}
	require.Equal(t, MinerPatrol, m.State)

	m.Update(1, m.X+m.W/2, cy-10, testRNG())
	assert.Equal(t, MinerPatrol, m.State, "cooldown should still be running")

	for m.CooldownTimer > 1 {
		m.Update(1, m.X+m.W/2, cy-10, testRNG())
	}
	m.Update(1, m.X+m.W/2, cy-10, testRNG())
	assert.Equal(t, MinerAttacking, m.State)
}

func TestMinerKnockbackAtZeroDistance(t *testing.T) {
	m := newTestMiner()
	m.Facing = -1
	cx, cy := m.Center()
	m.Update(1, cx, cy, testRNG())
	require.True(t, m.Attacking())

	var hit *Strike
	for hit == nil && m.Attacking() {
		hit = m.Update(1, cx, cy, testRNG())
	}

	require.NotNil(t, hit)
	assert.Equal(t, -1.0, hit.DirX)
	assert.Equal(t, 0.0, hit.DirY)
}

func TestMinerFacesTarget(t *testing.T) {
	m := newTestMiner()
	cx, cy := m.Center()

	m.Update(1, cx-20, cy, testRNG())

	assert.Equal(t, -1.0, m.Facing)
}

func TestMinerTurnsRandomly(t *testing.T) {
	m := newTestMiner()
	m.turnChance = 1

	m.Update(1, -5000, 0, testRNG())

	assert.Equal(t, -1.0, m.Facing)
}
