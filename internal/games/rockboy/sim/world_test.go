package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

func newTestWorld(seed int64, mutate func(*config.RockConfig)) *World {
	cfg := config.DefaultRockConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWorld(cfg, config.NewDifficultyManager(cfg.Difficulty), rand.New(rand.NewSource(seed)))
}

// checkWindow asserts both frontier and retention invariants for a player position.
func checkWindow(t *testing.T, w *World, px float64) {
	t.Helper()
	la := w.gen.LookAhead
	cd := w.gen.CleanupDistance
	if w.Right < px+la {
		t.Fatalf("px=%v: right frontier %v < %v", px, w.Right, px+la)
	}
	if w.Left > px-la {
		t.Fatalf("px=%v: left frontier %v > %v", px, w.Left, px-la)
	}
	strictlyOutside := func(r core.RectF) bool {
		return r.Right() < px-cd || r.X > px+cd
	}
	for _, p := range w.Platforms {
		if strictlyOutside(p.RectF) {
			t.Fatalf("px=%v: platform %+v retained outside window", px, p.RectF)
		}
	}
	for _, s := range w.Spikes {
		if strictlyOutside(s.RectF) {
			t.Fatalf("px=%v: spike %+v retained outside window", px, s.RectF)
		}
	}
	for _, m := range w.Miners {
		if strictlyOutside(m.Rect()) {
			t.Fatalf("px=%v: miner at %v retained outside window", px, m.X)
		}
	}
}

func TestFrontiersFollowContinuousMovement(t *testing.T) {
	w := newTestWorld(7, nil)
	w.Reset(400, 1)

	px := 400.0
	require.NoError(t, w.Update(px))
	checkWindow(t, w, px)

	for ; px < 12000; px += 7.5 {
		require.NoError(t, w.Update(px))
		checkWindow(t, w, px)
	}
	for ; px > -12000; px -= 11 {
		require.NoError(t, w.Update(px))
		checkWindow(t, w, px)
	}
}

func TestFrontiersRetractBehindPlayer(t *testing.T) {
	w := newTestWorld(7, nil)
	w.Reset(0, 1)
	require.NoError(t, w.Update(0))

	require.NoError(t, w.Update(5000))
	// Walked far right: the left frontier follows instead of staying at -1200.
	assert.GreaterOrEqual(t, w.Left, 5000-w.gen.CleanupDistance-w.gen.Step)
	assert.LessOrEqual(t, w.Left, 5000-w.gen.LookAhead)
}

func TestWalkingBackRegeneratesWithoutDuplicates(t *testing.T) {
	w := newTestWorld(11, nil)
	w.Reset(0, 1)
	for px := 0.0; px <= 6000; px += 10 {
		require.NoError(t, w.Update(px))
	}
	for px := 6000.0; px >= 0; px -= 10 {
		require.NoError(t, w.Update(px))
	}

	for i := range w.Platforms {
		for j := i + 1; j < len(w.Platforms); j++ {
			if w.Platforms[i].Overlaps(w.Platforms[j].RectF) {
				t.Fatalf("platforms overlap: %+v and %+v", w.Platforms[i].RectF, w.Platforms[j].RectF)
			}
		}
	}
}

func TestCleanupWindowBoundaries(t *testing.T) {
	w := newTestWorld(1, nil)
	w.Reset(0, 1)
	cd := w.gen.CleanupDistance

	w.Platforms = []Platform{
		{RectF: core.RectF{X: -cd - 100, Y: 300, W: 100, H: 20}},   // touches left edge
		{RectF: core.RectF{X: -cd - 100.5, Y: 300, W: 100, H: 20}}, // strictly left
		{RectF: core.RectF{X: cd, Y: 300, W: 100, H: 20}},          // touches right edge
		{RectF: core.RectF{X: cd + 0.5, Y: 300, W: 100, H: 20}},    // strictly right
		{RectF: core.RectF{X: -50, Y: 300, W: 100, H: 20}},         // centre
	}
	w.Spikes = []Spike{
		{RectF: core.RectF{X: cd - 10, Y: 530, W: 30, H: 20}},
		{RectF: core.RectF{X: cd + 1, Y: 530, W: 30, H: 20}},
	}
	w.Miners = []*Miner{
		NewMiner(-cd-24, 550, 1, config.DefaultRockConfig().Miners, 1, 15),
		NewMiner(-cd-25, 550, 1, config.DefaultRockConfig().Miners, 1, 15),
	}

	w.cleanup(0)

	require.Len(t, w.Platforms, 3)
	assert.Equal(t, -cd-100, w.Platforms[0].X)
	assert.Equal(t, cd, w.Platforms[1].X)
	assert.Equal(t, -50.0, w.Platforms[2].X)
	require.Len(t, w.Spikes, 1)
	assert.Equal(t, cd-10, w.Spikes[0].X)
	require.Len(t, w.Miners, 1)
	assert.Equal(t, -cd-24, w.Miners[0].X)
}

func TestRetractedSegmentTakesItsMiners(t *testing.T) {
	w := newTestWorld(5, func(c *config.RockConfig) { c.Generator.MinerChance = 0 })
	w.Reset(0, 1)
	require.NoError(t, w.Update(0))
	right := w.Right
	step := w.gen.Step

	// Spawned by the last segment, then walked back into the window
	px := right - step - w.gen.CleanupDistance - 1
	wanderer := NewMiner(px, 550, -1, config.DefaultRockConfig().Miners, 1, 15)
	wanderer.Home = right - step
	local := NewMiner(px, 550, 1, config.DefaultRockConfig().Miners, 1, 15)
	local.Home = px
	w.Miners = []*Miner{wanderer, local}

	w.cleanup(px)

	assert.Equal(t, right-step, w.Right)
	require.Len(t, w.Miners, 1)
	assert.Same(t, local, w.Miners[0])
}

func TestNonPositiveStepSkipsPass(t *testing.T) {
	for _, step := range []float64{0, -400} {
		w := newTestWorld(3, func(c *config.RockConfig) { c.Generator.Step = step })
		w.Reset(400, 1)

		err := w.Update(400)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNonPositiveStep))
		assert.Empty(t, w.Platforms)
		assert.Equal(t, 400.0, w.Right)
	}
}

func TestMaxIterationsBoundsGeneration(t *testing.T) {
	w := newTestWorld(3, func(c *config.RockConfig) { c.Generator.MaxIterations = 2 })
	w.Reset(0, 1)

	require.NoError(t, w.Update(0))

	assert.Equal(t, 2*w.gen.Step, w.Right)
	assert.Equal(t, -2*w.gen.Step, w.Left)
}

func TestSafeZoneAroundSpawn(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(seed, func(c *config.RockConfig) {
			c.Generator.GroundSpikeChance = 1
			c.Generator.MinerChance = 1
		})
		w.Reset(400, 1)
		require.NoError(t, w.Update(400))

		for _, s := range w.Spikes {
			if s.Hanging {
				continue
			}
			if s.Right() > 400-w.gen.SafeZone && s.X < 400+w.gen.SafeZone {
				t.Fatalf("seed %d: ground spike at %v inside safe zone", seed, s.X)
			}
		}
		for _, m := range w.Miners {
			if m.X+m.W > 400-w.gen.SafeZone && m.X < 400+w.gen.SafeZone {
				t.Fatalf("seed %d: miner at %v inside safe zone", seed, m.X)
			}
		}
	}
}

func TestSegmentContent(t *testing.T) {
	w := newTestWorld(5, nil)
	w.Reset(0, 1)
	ground := config.DefaultRockConfig().World.GroundY()

	for i := 0; i < 50; i++ {
		x0 := 10000 + float64(i)*w.gen.Step
		before := len(w.Platforms)
		w.generateSegment(x0, w.gen.Step)
		added := w.Platforms[before:]

		assert.GreaterOrEqual(t, len(added), 1)
		assert.LessOrEqual(t, len(added), 3)
		for _, p := range added {
			assert.GreaterOrEqual(t, p.X, x0)
			assert.LessOrEqual(t, p.Right(), x0+w.gen.Step+1e-9)
			assert.GreaterOrEqual(t, p.W, w.gen.PlatformMinWidth)
			assert.LessOrEqual(t, p.W, w.gen.PlatformMaxWidth)
			rise := ground - p.Y
			assert.GreaterOrEqual(t, rise, w.gen.PlatformMinRise)
			assert.LessOrEqual(t, rise, w.gen.PlatformMaxRise)
		}
	}

	for _, s := range w.Spikes {
		if s.Hanging {
			assert.True(t, hasPlatformAbove(w.Platforms, s), "hanging spike %+v without platform", s.RectF)
		} else {
			assert.Equal(t, ground, s.Bottom())
		}
	}
}

func hasPlatformAbove(platforms []Platform, s Spike) bool {
	for _, p := range platforms {
		if p.Bottom() == s.Y && s.X >= p.X && s.Right() <= p.Right()+1e-9 {
			return true
		}
	}
	return false
}

func TestGenerationIsDeterministic(t *testing.T) {
	a := newTestWorld(99, nil)
	b := newTestWorld(99, nil)
	a.Reset(400, 1)
	b.Reset(400, 1)

	for px := 400.0; px < 3000; px += 25 {
		require.NoError(t, a.Update(px))
		require.NoError(t, b.Update(px))
	}

	assert.Equal(t, a.Platforms, b.Platforms)
	assert.Equal(t, a.Spikes, b.Spikes)
	assert.Equal(t, len(a.Miners), len(b.Miners))
}

func TestDifficultyScalesMiners(t *testing.T) {
	count := func(world int) int {
		w := newTestWorld(13, nil)
		w.Reset(0, world)
		for i := 0; i < 200; i++ {
			w.generateSegment(5000+float64(i)*w.gen.Step, w.gen.Step)
		}
		return len(w.Miners)
	}

	assert.Greater(t, count(5), count(1))
}

func TestGenerateRangeIsFinite(t *testing.T) {
	w := newTestWorld(2, nil)
	w.Reset(400, 1)

	require.NoError(t, w.GenerateRange(0, 2400))

	assert.True(t, w.Finite())
	assert.Equal(t, 0.0, w.Left)
	assert.Equal(t, 2400.0, w.Right)
	for _, p := range w.Platforms {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.Right(), 2400.0)
	}

	platforms := len(w.Platforms)
	require.NoError(t, w.Update(10000))
	assert.Len(t, w.Platforms, platforms, "finite worlds are never cleaned up")
}
