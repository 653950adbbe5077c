// Package sim is the Super Rock Boy simulation core: rock physics, hazards,
// leveling and evolution, procedural world generation, miners, camera and
// particle effects. It has no presentation dependencies; rendering, sound,
// input and time are injected through the interfaces in collaborators.go.
package sim

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

// Mode is the top-level state of a run.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
	ModeInterstitial
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	case ModeInterstitial:
		return "interstitial"
	default:
		return "unknown"
	}
}

// Options configures a Sim. Zero values pick defaults.
type Options struct {
	Config     config.RockConfig
	Arena      bool // Finite level of Config.World.ArenaWidth instead of endless
	Seed       int64
	Rand       *rand.Rand // Overrides Seed when set
	Logger     *log.Logger
	Difficulty *config.DifficultyManager

	Renderer Renderer
	Sound    SoundPlayer
	Input    InputSource
	Clock    Clock
}

// Sim owns the whole game world and advances it one frame at a time.
type Sim struct {
	cfg   config.RockConfig
	arena bool
	rng   *rand.Rand
	log   *log.Logger
	diff  *config.DifficultyManager

	renderer Renderer
	sound    SoundPlayer
	input    InputSource
	clock    Clock

	physics  Physics
	body     *Body
	health   *Health
	prog     *Progression
	world    *World
	star     *Star
	camera   *Camera
	fx       Effects
	controls inputTracker

	mode         Mode
	interstitial int  // Ticks left before advancing the world
	finalWorld   bool // Interstitial waits for primary instead of advancing
	tick         int
	debug        bool

	lastMillis float64
	started    bool
	lastDT     float64
}

// New builds a Sim and resets it to the start of a run.
func New(opts Options) *Sim {
	cfg := opts.Config
	if len(cfg.Stages) == 0 {
		cfg = config.DefaultRockConfig()
	}

	s := &Sim{
		cfg:      cfg,
		arena:    opts.Arena,
		rng:      opts.Rand,
		log:      opts.Logger,
		diff:     opts.Difficulty,
		renderer: opts.Renderer,
		sound:    opts.Sound,
		input:    opts.Input,
		clock:    opts.Clock,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(opts.Seed))
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	if s.diff == nil {
		s.diff = config.NewDifficultyManager(cfg.Difficulty)
	}
	if s.renderer == nil {
		s.renderer = NopRenderer{}
	}
	if s.sound == nil {
		s.sound = NopSound{}
	}
	if s.input == nil {
		s.input = StaticInput{}
	}
	if s.clock == nil {
		s.clock = NewSystemClock()
	}

	s.physics = NewPhysics(cfg.Physics, cfg.World.GroundY())
	s.camera = NewCamera(cfg.World.Width, cfg.World.Height, cfg.Camera.Smoothing)
	if s.arena {
		s.camera.LimitX(cfg.World.ArenaWidth)
	}
	s.fx = NewEffects(cfg.Star.TrailLength)
	s.world = NewWorld(cfg, s.diff, s.rng)
	s.star = NewStar(cfg.Star)

	s.Reset()
	return s
}

// Reset starts a fresh run from world 1.
func (s *Sim) Reset() {
	s.prog = NewProgression(s.cfg.Leveling, s.cfg.Stages)
	s.fx.Clear()
	s.controls.reset()
	s.tick = 0
	s.started = false
	s.startWorld()
	s.log.Debug("run reset", "arena", s.arena)
}

// startWorld places the rock at the spawn point of the current world level.
func (s *Sim) startWorld() {
	s.prog.ResetLevel()
	strength := s.prog.Stage.Strength

	s.body = NewBody(s.cfg.Player, s.cfg.Physics, s.radius(), s.rng)
	s.health = NewHealth(MaxHealth(s.cfg.Health.Base, s.prog.Level, s.cfg.Player.SizePerLevel, strength), s.cfg.Health)

	s.world.Reset(s.body.X, s.prog.WorldLevel)
	var err error
	if s.arena {
		err = s.world.GenerateRange(0, s.cfg.World.ArenaWidth)
	} else {
		err = s.world.Update(s.body.X)
	}
	if err != nil {
		s.log.Error("world generation skipped", "err", err)
	}

	s.camera.Snap(s.body.X, s.body.Y)
	s.respawnStar()

	s.mode = ModePlaying
	s.interstitial = 0
	s.finalWorld = false
}

func (s *Sim) radius() float64 {
	return BodyRadius(s.cfg.Player.BaseRadius, s.prog.Level, s.cfg.Player.SizePerLevel, s.prog.Stage.Strength)
}

// Frame runs one host frame: poll input, advance by wall-clock delta, render.
func (s *Sim) Frame() {
	now := s.clock.NowMillis()
	dt := 1.0
	if s.started {
		dt = DeltaMultiplier(now-s.lastMillis, s.cfg.Physics.ReferenceFrameMs, s.cfg.Physics.MaxDelta)
	}
	s.started = true
	s.lastMillis = now

	s.Step(s.input.ReadInput(), dt)

	if err := s.renderer.RenderFrame(s.View()); err != nil {
		s.log.Warn("render failed", "tick", s.tick, "err", err)
	}
}

// DeltaMultiplier converts elapsed milliseconds into reference frames, capped at limit.
func DeltaMultiplier(elapsedMs, frameMs, limit float64) float64 {
	if elapsedMs <= 0 || frameMs <= 0 {
		return 0
	}
	return math.Min(elapsedMs/frameMs, limit)
}

// Step advances the simulation by dt reference frames with the given input.
func (s *Sim) Step(in InputState, dt float64) {
	c := s.controls.update(in)
	s.tick++
	s.lastDT = dt

	switch s.mode {
	case ModeGameOver:
		s.fx.Step(dt)
		if c.PrimaryPressed {
			s.Reset()
		}
	case ModeInterstitial:
		s.fx.Step(dt)
		s.stepInterstitial(c)
	default:
		s.stepPlaying(c, dt)
	}
}

func (s *Sim) stepPlaying(c Controls, dt float64) {
	b := s.body

	// Movement
	if s.physics.Step(b, c, dt, s.rng) {
		s.play(SoundJump)
	}
	if s.arena {
		s.physics.ClampX(b, 0, s.cfg.World.ArenaWidth)
	}

	// Collision
	LandOnPlatforms(b, s.world.Platforms)
	if s.health.Vulnerable() {
		if spike, ok := HitSpike(b, s.world.Spikes); ok {
			s.damage(s.cfg.Spikes.Damage)
			SpikeBounce(b, spike, s.cfg.Spikes, s.cfg.Physics.JumpForce)
		}
	}
	if s.health.GameOver {
		s.gameOver()
		return
	}
	s.stompMiners()
	if s.mode != ModePlaying {
		return
	}

	// Survival XP
	if s.applyLevel(s.prog.AddXP(s.cfg.Leveling.SurvivalXP * dt)) {
		return
	}

	// Star
	if s.star.Collected {
		if s.star.TickRespawn() {
			s.respawnStar()
		}
	} else {
		if !s.arena {
			s.star.Bounds.X = s.camera.X
		}
		s.star.Update(dt, s.fx.Trail)
		if s.star.Touches(b) {
			s.collectStar()
			if s.mode != ModePlaying {
				return
			}
		}
	}

	s.camera.Follow(b.X, b.Y, dt)

	if err := s.world.Update(b.X); err != nil {
		s.log.Error("world generation skipped", "tick", s.tick, "err", err)
	}

	s.updateMiners(dt)

	s.health.Tick()
	s.fx.Step(dt)

	if s.health.GameOver {
		s.gameOver()
	}
}

func (s *Sim) collectStar() {
	s.star.Collect()
	s.fx.Collect.Burst(s.rng, s.star.X, s.star.Y, BurstSpec{
		Count:    s.cfg.Effects.CollectParticles,
		MinSpeed: 2, MaxSpeed: 5,
		MinLife: 60, MaxLife: 80,
		Size:  3,
		Color: "#FFD700",
	})
	s.play(SoundStarCollect)
	s.applyLevel(s.prog.AddXP(s.cfg.Leveling.StarXP))
}

func (s *Sim) respawnStar() {
	ground := s.cfg.World.GroundY()
	bounds := core.RectF{X: s.camera.X, Y: 0, W: s.cfg.World.Width, H: ground}
	if s.arena {
		bounds.X, bounds.W = 0, s.cfg.World.ArenaWidth
	}
	fx := s.camera.X + s.cfg.World.Width/4
	fy := s.cfg.World.Height / 4
	if !s.star.Respawn(s.rng, bounds, s.body, s.world.Platforms, fx, fy) {
		s.log.Debug("star spawn fell back to default", "x", fx, "y", fy)
	}
}

func (s *Sim) updateMiners(dt float64) {
	for _, m := range s.world.Miners {
		hit := m.Update(dt, s.body.X, s.body.Y, s.rng)
		if hit == nil || !s.health.Vulnerable() {
			continue
		}
		s.damage(hit.Damage)
		force := s.cfg.Miners.KnockbackForce
		s.body.VX = hit.DirX * force
		s.body.VY = hit.DirY * force
		s.body.Grounded = false
	}
}

func (s *Sim) stompMiners() {
	strength := s.prog.Stage.Strength
	alive := s.world.Miners[:0]
	for _, m := range s.world.Miners {
		if Stomps(s.body, m) {
			m.Health -= s.cfg.Miners.StompDamage * strength
			s.body.VY = s.cfg.Physics.JumpForce * s.cfg.Miners.StompBounce
			s.body.Grounded = false
			cx, cy := m.Center()
			s.sparks(cx, m.Y, "#C0C0C0")
			if m.Health <= 0 {
				s.fx.Sparks.Burst(s.rng, cx, cy, BurstSpec{
					Count:    s.cfg.Effects.SparkParticles * 2,
					MinSpeed: 1, MaxSpeed: 4,
					MinLife: 20, MaxLife: 40,
					Size:  2,
					Color: "#8B4513",
				})
				s.applyLevel(s.prog.AddXP(s.cfg.Leveling.MinerXP))
				continue
			}
		}
		alive = append(alive, m)
	}
	s.world.Miners = alive
}

// damage applies a hit through the health component and plays feedback.
func (s *Sim) damage(amount float64) {
	if !s.health.TakeDamage(amount) {
		return
	}
	s.play(SoundDamage)
	s.sparks(s.body.X, s.body.Y, "#FF4040")
}

func (s *Sim) sparks(x, y float64, color string) {
	s.fx.Sparks.Burst(s.rng, x, y, BurstSpec{
		Count:    s.cfg.Effects.SparkParticles,
		MinSpeed: 1, MaxSpeed: 3,
		MinLife: 15, MaxLife: 25,
		Size:  2,
		Color: color,
	})
}

// applyLevel reacts to a level transition. It reports whether the run left
// the Playing mode.
func (s *Sim) applyLevel(ch LevelChange) bool {
	if !ch.Changed() {
		return false
	}

	strength := s.prog.Stage.Strength
	s.body.Resize(s.radius(), s.rng)
	s.health.SetMax(MaxHealth(s.cfg.Health.Base, s.prog.Level, s.cfg.Player.SizePerLevel, strength), true)
	s.log.Debug("level changed", "from", ch.From, "to", ch.To, "stage", ch.Stage.Name)

	if !ch.StageChanged {
		return false
	}
	s.fx.Evolution.Burst(s.rng, s.body.X, s.body.Y, BurstSpec{
		Count:    s.cfg.Effects.EvolutionParticles,
		MinSpeed: 3, MaxSpeed: 3,
		MinLife: 60, MaxLife: 60,
		Size:  4,
		Color: ch.Stage.Color,
	})

	// A dead rock never clears the world
	if ch.To > ch.From && s.prog.Terminal() && !s.health.GameOver {
		s.enterInterstitial()
		return true
	}
	return false
}

func (s *Sim) enterInterstitial() {
	s.mode = ModeInterstitial
	s.interstitial = s.cfg.World.InterstitialTicks
	last := s.cfg.World.MaxWorldLevel
	s.finalWorld = last > 0 && s.prog.WorldLevel >= last

	cx := s.camera.X + s.cfg.World.Width/2
	cy := s.cfg.World.Height / 2
	s.fx.Celebration.Burst(s.rng, cx, cy, BurstSpec{
		Count:    s.cfg.Effects.CelebrationParticles,
		MinSpeed: 1, MaxSpeed: 6,
		MinLife: 120, MaxLife: 180,
		Size:  3,
		Color: s.prog.Stage.Color,
		Spin:  0.2,
	})
	s.log.Info("world cleared", "world", s.prog.WorldLevel, "final", s.finalWorld, "score", s.prog.Score())
}

func (s *Sim) stepInterstitial(c Controls) {
	if s.finalWorld {
		if c.PrimaryPressed {
			s.Reset()
		}
		return
	}

	if s.interstitial > 0 {
		s.interstitial--
	}
	if s.interstitial == 0 {
		s.advanceWorld()
	}
}

func (s *Sim) advanceWorld() {
	s.prog.WorldLevel++
	s.startWorld()
	s.log.Info("world advanced", "world", s.prog.WorldLevel)
}

func (s *Sim) gameOver() {
	s.mode = ModeGameOver
	n := s.cfg.Effects.DebrisPieces
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		s.fx.Debris.Spawn(Particle{
			X:        s.body.X,
			Y:        s.body.Y,
			VX:       math.Cos(angle) * 5,
			VY:       math.Sin(angle)*5 - 2,
			Life:     120,
			Size:     s.body.BaseRadius / 2,
			Rotation: s.rng.Float64() * 2 * math.Pi,
			Spin:     (s.rng.Float64() - 0.5) * 0.3,
			Color:    s.prog.Stage.Color,
		})
	}
	s.log.Info("game over", "world", s.prog.WorldLevel, "level", s.prog.Level, "score", s.prog.Score())
}

func (s *Sim) play(snd Sound) {
	if err := s.sound.Play(snd); err != nil {
		s.log.Warn("sound failed", "sound", snd, "err", err)
	}
}

// DebugLevelUp fills the XP bar and levels up.
func (s *Sim) DebugLevelUp() {
	if s.mode != ModePlaying {
		return
	}
	s.applyLevel(s.prog.AddXP(float64(s.prog.XPToNext) - s.prog.XP))
}

// DebugLevelDown drops one level.
func (s *Sim) DebugLevelDown() {
	if s.mode != ModePlaying {
		return
	}
	s.applyLevel(s.prog.LevelDown())
}

// ToggleDebug switches the debug overlay.
func (s *Sim) ToggleDebug() {
	s.debug = !s.debug
}

// Mode returns the current mode.
func (s *Sim) Mode() Mode {
	return s.mode
}

// Finished reports whether the run has ended: game over or the last world cleared.
func (s *Sim) Finished() bool {
	return s.mode == ModeGameOver || (s.mode == ModeInterstitial && s.finalWorld)
}

// Score returns lifetime XP for the run.
func (s *Sim) Score() int {
	return s.prog.Score()
}

// Tick returns the number of steps since the last reset.
func (s *Sim) Tick() int {
	return s.tick
}

// Body returns the player rock.
func (s *Sim) Body() *Body { return s.body }

// Health returns the player's health.
func (s *Sim) Health() *Health { return s.health }

// Progression returns the level and evolution state.
func (s *Sim) Progression() *Progression { return s.prog }

// World returns the generated content.
func (s *Sim) World() *World { return s.world }

// Star returns the collectible.
func (s *Sim) Star() *Star { return s.star }

// Camera returns the camera.
func (s *Sim) Camera() *Camera { return s.camera }

// Effects returns the particle pools.
func (s *Sim) Effects() Effects { return s.fx }

// Config returns the active configuration.
func (s *Sim) Config() config.RockConfig { return s.cfg }
