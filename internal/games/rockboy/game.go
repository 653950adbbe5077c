// Package rockboy adapts the Super Rock Boy simulation to the game
// registry. Two modes are registered: the endless world and a finite arena.
package rockboy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
	"github.com/vovakirdan/rock-boy/internal/games/rockboy/sim"
	"github.com/vovakirdan/rock-boy/internal/registry"
)

// Registered game IDs
const (
	IDEndless = "rockboy"
	IDArena   = "rockboy_arena"
)

// Game implements registry.Game on top of a sim.Sim.
// Each Step is one host frame; simulated time follows the runtime tick rate.
type Game struct {
	id      string
	title   string
	arena   bool
	runtime core.RuntimeConfig
	cfg     config.RockConfig

	sim    *sim.Sim
	clock  *tickClock
	input  sim.InputState
	frame  *sim.View // Last frame handed to the renderer
	paused bool
}

// tickClock advances a fixed amount per host frame so runs are reproducible.
type tickClock struct {
	now     float64
	frameMs float64
}

func (c *tickClock) NowMillis() float64 { return c.now }

func (c *tickClock) advance() { c.now += c.frameMs }

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
	sound            sim.SoundPlayer = sim.NopSound{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to new simulations.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetSound sets the sound player handed to new simulations.
func SetSound(p sim.SoundPlayer) {
	if p == nil {
		p = sim.NopSound{}
	}
	sound = p
}

func init() {
	registry.Register(IDEndless, func() registry.Game { return New(false) })
	registry.Register(IDArena, func() registry.Game { return New(true) })
}

// New creates a game instance. The simulation is built on Reset.
func New(arena bool) *Game {
	g := &Game{id: IDEndless, title: "Super Rock Boy", arena: arena}
	if arena {
		g.id = IDArena
		g.title = "Super Rock Boy: Arena"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadRock(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg = config.DefaultRockConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRockPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = &tickClock{frameMs: 1000.0 / float64(runtime.TickRate)}
	g.input = sim.InputState{}
	g.paused = false

	g.sim = sim.New(sim.Options{
		Config:     cfg,
		Arena:      g.arena,
		Seed:       runtime.Seed,
		Logger:     logger.With("game", g.id),
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Renderer:   sim.RendererFunc(g.capture),
		Sound:      sound,
		Input:      sim.InputFunc(func() sim.InputState { return g.input }),
		Clock:      g.clock,
	})
	g.frame = g.sim.View()
}

func (g *Game) capture(v *sim.View) error {
	g.frame = v
	return nil
}

// Step advances the simulation by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) && g.sim.Mode() == sim.ModePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLevelUp) {
		g.sim.DebugLevelUp()
	}
	if in.Has(core.ActionLevelDown) {
		g.sim.DebugLevelDown()
	}
	if in.Has(core.ActionToggleDebug) {
		g.sim.ToggleDebug()
	}

	g.input = InputFromFrame(in)
	g.clock.advance()
	g.sim.Frame()

	return core.StepResult{State: g.State()}
}

// InputFromFrame converts platform actions into held simulation input.
func InputFromFrame(in core.InputFrame) sim.InputState {
	return sim.InputState{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Up:      in.Has(core.ActionJump),
		Primary: in.Has(core.ActionPrimary) || in.Has(core.ActionConfirm),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.frame == nil {
		return
	}
	if err := NewScreenRenderer(dst).RenderFrame(g.frame); err != nil {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}
	if g.paused {
		dst.SetPen(core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2, "  PAUSED - press P  ")
		dst.SetPen(core.ColorDefault)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	p := g.sim.Progression()
	return core.GameState{
		Score:      g.sim.Score(),
		GameOver:   g.sim.Mode() == sim.ModeGameOver,
		Paused:     g.paused,
		Finished:   g.sim.Finished() && g.sim.Mode() == sim.ModeInterstitial,
		WorldLevel: p.WorldLevel,
		Level:      p.Level,
		Stage:      p.Stage.Name,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Sim {
	return g.sim
}

// Config returns the config the current run was built from.
func (g *Game) Config() config.RockConfig {
	return g.cfg
}
