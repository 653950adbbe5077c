package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

// ErrNonPositiveStep is returned when the generator cannot advance its frontiers.
var ErrNonPositiveStep = errors.New("generator step must be positive")

const platformGap = 20 // Minimum horizontal space between platforms in one segment

// World holds the generated level content and the generation frontiers.
type World struct {
	Platforms []Platform
	Spikes    []Spike
	Miners    []*Miner

	Right float64 // Content exists up to here
	Left  float64 // and down to here

	gen        config.GeneratorConfig
	spikes     config.SpikeConfig
	miners     config.MinerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	groundY    float64
	spawnX     float64
	worldLevel int
	finite     bool
}

// NewWorld creates an empty world.
func NewWorld(cfg config.RockConfig, diff *config.DifficultyManager, rng *rand.Rand) *World {
	return &World{
		Platforms:  make([]Platform, 0, 32),
		Spikes:     make([]Spike, 0, 32),
		Miners:     make([]*Miner, 0, 8),
		gen:        cfg.Generator,
		spikes:     cfg.Spikes,
		miners:     cfg.Miners,
		difficulty: diff,
		rng:        rng,
		groundY:    cfg.World.GroundY(),
		worldLevel: 1,
	}
}

// Reset clears all content and centres the empty frontier on spawnX.
func (w *World) Reset(spawnX float64, worldLevel int) {
	w.Platforms = w.Platforms[:0]
	w.Spikes = w.Spikes[:0]
	w.Miners = w.Miners[:0]
	w.spawnX = spawnX
	w.worldLevel = worldLevel
	w.finite = false

	origin := spawnX
	if w.gen.Step > 0 {
		origin = math.Floor(spawnX/w.gen.Step) * w.gen.Step
	}
	w.Right = origin
	w.Left = origin
}

// GenerateRange fills [minX, maxX) with content once, for finite levels.
// Update is a no-op afterwards.
func (w *World) GenerateRange(minX, maxX float64) error {
	if w.gen.Step <= 0 {
		return fmt.Errorf("world: generate range: %w (step=%v)", ErrNonPositiveStep, w.gen.Step)
	}
	for x := minX; x < maxX; x += w.gen.Step {
		w.generateSegment(x, math.Min(w.gen.Step, maxX-x))
	}
	w.Left = minX
	w.Right = maxX
	w.finite = true
	return nil
}

// Update extends the frontiers to cover playerX ± LookAhead and drops content
// outside playerX ± CleanupDistance. A non-positive step skips the whole pass.
func (w *World) Update(playerX float64) error {
	if w.finite {
		return nil
	}
	step := w.gen.Step
	if step <= 0 {
		return fmt.Errorf("world: update: %w (step=%v)", ErrNonPositiveStep, step)
	}

	for i := 0; i < w.gen.MaxIterations && playerX+w.gen.LookAhead > w.Right; i++ {
		w.generateSegment(w.Right, step)
		w.Right += step
	}
	for i := 0; i < w.gen.MaxIterations && playerX-w.gen.LookAhead < w.Left; i++ {
		w.Left -= step
		w.generateSegment(w.Left, step)
	}

	w.cleanup(playerX)
	return nil
}

// cleanup removes content entirely outside the retention window and pulls
// back frontiers whose whole last segment lies beyond it.
func (w *World) cleanup(playerX float64) {
	minX := playerX - w.gen.CleanupDistance
	maxX := playerX + w.gen.CleanupDistance
	outside := func(r core.RectF) bool {
		return r.Right() < minX || r.X > maxX
	}

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if !outside(p.RectF) {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	spikes := w.Spikes[:0]
	for _, s := range w.Spikes {
		if !outside(s.RectF) {
			spikes = append(spikes, s)
		}
	}
	w.Spikes = spikes

	miners := w.Miners[:0]
	for _, m := range w.Miners {
		if !outside(m.Rect()) {
			miners = append(miners, m)
		}
	}
	w.Miners = miners

	// Miners leave with their segment even if they walked out of it,
	// so regenerating the segment cannot duplicate them.
	for w.Right-w.gen.Step > maxX {
		w.Right -= w.gen.Step
		w.dropMinersFrom(w.Right)
	}
	for w.Left+w.gen.Step < minX {
		w.dropMinersFrom(w.Left)
		w.Left += w.gen.Step
	}
}

// dropMinersFrom removes the miners spawned by the segment starting at x0.
func (w *World) dropMinersFrom(x0 float64) {
	half := w.gen.Step / 2
	miners := w.Miners[:0]
	for _, m := range w.Miners {
		if m.Home < x0-half || m.Home >= x0+half {
			miners = append(miners, m)
		}
	}
	w.Miners = miners
}

// generateSegment populates [x0, x0+width) with platforms, spikes and miners.
func (w *World) generateSegment(x0, width float64) {
	w.generatePlatforms(x0, width)

	spikeChance := w.difficulty.SpikeChance(w.gen.GroundSpikeChance, w.worldLevel)
	if width > w.spikes.Width && w.rng.Float64() < spikeChance {
		x := x0 + w.rng.Float64()*(width-w.spikes.Width)
		if !w.inSafeZone(x, w.spikes.Width) {
			w.Spikes = append(w.Spikes, Spike{
				RectF: core.RectF{X: x, Y: w.groundY - w.spikes.Height, W: w.spikes.Width, H: w.spikes.Height},
			})
		}
	}

	minerChance := w.difficulty.MinerChance(w.gen.MinerChance, w.worldLevel)
	if width > w.miners.Width && w.rng.Float64() < minerChance {
		count := 1
		if maxMiners := w.difficulty.MaxMiners(w.gen.MaxMiners, w.worldLevel); maxMiners > 1 {
			count += w.rng.Intn(maxMiners)
		}
		speed := w.difficulty.MinerSpeed(w.miners.Speed, w.worldLevel)
		damage := w.difficulty.MinerDamage(w.miners.AttackDamage, w.worldLevel)
		for i := 0; i < count; i++ {
			x := x0 + w.rng.Float64()*(width-w.miners.Width)
			if w.inSafeZone(x, w.miners.Width) {
				continue
			}
			facing := 1.0
			if w.rng.Intn(2) == 0 {
				facing = -1
			}
			m := NewMiner(x, w.groundY, facing, w.miners, speed, damage)
			m.Home = x0
			w.Miners = append(w.Miners, m)
		}
	}
}

func (w *World) generatePlatforms(x0, width float64) {
	count := w.gen.MinPlatforms
	if w.gen.MaxPlatforms > w.gen.MinPlatforms {
		count += w.rng.Intn(w.gen.MaxPlatforms - w.gen.MinPlatforms + 1)
	}

	placed := make([]core.RectF, 0, count)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < w.gen.PlacementAttempts; attempt++ {
			pw := w.gen.PlatformMinWidth + w.rng.Float64()*(w.gen.PlatformMaxWidth-w.gen.PlatformMinWidth)
			pw = math.Min(pw, width)
			rise := w.gen.PlatformMinRise + w.rng.Float64()*(w.gen.PlatformMaxRise-w.gen.PlatformMinRise)
			r := core.RectF{
				X: x0 + w.rng.Float64()*(width-pw),
				Y: w.groundY - rise,
				W: pw,
				H: w.gen.PlatformHeight,
			}
			if overlapsAny(r.Expand(platformGap), placed) {
				continue
			}
			placed = append(placed, r)
			w.Platforms = append(w.Platforms, Platform{RectF: r})

			if r.W > w.spikes.Width && w.rng.Float64() < w.gen.HangingSpikeChance {
				w.Spikes = append(w.Spikes, Spike{
					RectF: core.RectF{
						X: r.X + w.rng.Float64()*(r.W-w.spikes.Width),
						Y: r.Bottom(),
						W: w.spikes.Width,
						H: w.spikes.Height,
					},
					Hanging: true,
				})
			}
			break
		}
	}
}

// inSafeZone reports whether a span starting at x comes near the spawn point.
func (w *World) inSafeZone(x, width float64) bool {
	return x+width > w.spawnX-w.gen.SafeZone && x < w.spawnX+w.gen.SafeZone
}

func overlapsAny(r core.RectF, others []core.RectF) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// Finite reports whether the world was generated once for a bounded level.
func (w *World) Finite() bool {
	return w.finite
}

// WorldLevel returns the world level content is scaled for.
func (w *World) WorldLevel() int {
	return w.worldLevel
}
