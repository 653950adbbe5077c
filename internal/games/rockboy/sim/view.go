package sim

import "github.com/vovakirdan/rock-boy/internal/core"

// ParticleKind tags which pool a particle came from.
type ParticleKind int

const (
	ParticleEvolution ParticleKind = iota
	ParticleTrail
	ParticleCollect
	ParticleSpark
	ParticleCelebration
	ParticleDebris
)

// View is a read-only snapshot of one frame for renderers.
type View struct {
	Mode    Mode
	Tick    int
	DT      float64
	Debug   bool
	Arena   bool
	GroundY float64
	WorldW  float64 // Level width in arena mode, 0 when endless

	Camera CameraView
	Rock   RockView
	Health HealthView
	Stats  StatsView
	Star   StarView

	Platforms []core.RectF
	Spikes    []SpikeView
	Miners    []MinerView
	Particles []ParticleView

	Interstitial InterstitialView
	Frontier     FrontierView
}

// CameraView is the viewport rectangle in world units.
type CameraView struct {
	X, Y, W, H float64
}

// RockView is the player rock.
type RockView struct {
	X, Y, Radius float64
	Rotation     float64
	VX, VY       float64
	Grounded     bool
	Color        string
	Points       []Point
	Details      []Detail
	Broken       bool // Shattered on game over
}

// HealthView is the health bar state.
type HealthView struct {
	Current, Max float64
	Flashing     bool
	Immune       bool
}

// StatsView is the leveling HUD.
type StatsView struct {
	Level      int
	XP         float64
	XPToNext   int
	Stage      string
	StageColor string
	WorldLevel int
	MaxWorld   int
	Score      int
}

// StarView is the collectible.
type StarView struct {
	X, Y, Size   float64
	Rotation     float64
	Visible      bool
	RespawnTimer int
}

// SpikeView is a spike hazard.
type SpikeView struct {
	core.RectF
	Hanging bool
}

// MinerView is a miner NPC.
type MinerView struct {
	core.RectF
	Facing    float64
	Attacking bool
	Swing     float64 // 0..1 through the swing
	WalkPhase float64
}

// ParticleView is one live particle.
type ParticleView struct {
	Kind     ParticleKind
	X, Y     float64
	Size     float64
	Rotation float64
	Alpha    float64
	Color    string
}

// InterstitialView describes the world-clear screen.
type InterstitialView struct {
	Remaining int
	Final     bool // Waiting for primary to restart
}

// FrontierView exposes generation state for the debug overlay.
type FrontierView struct {
	Left, Right float64
	Entities    int
}

// View builds a snapshot of the current state.
func (s *Sim) View() *View {
	b := s.body
	v := &View{
		Mode:    s.mode,
		Tick:    s.tick,
		DT:      s.lastDT,
		Debug:   s.debug,
		Arena:   s.arena,
		GroundY: s.cfg.World.GroundY(),
		Camera:  CameraView{X: s.camera.X, Y: s.camera.Y, W: s.camera.ViewW, H: s.camera.ViewH},
		Rock: RockView{
			X:        b.X,
			Y:        b.Y,
			Radius:   b.Radius,
			Rotation: b.Rotation,
			VX:       b.VX,
			VY:       b.VY,
			Grounded: b.Grounded,
			Color:    s.prog.Stage.Color,
			Points:   append([]Point(nil), b.Points...),
			Details:  append([]Detail(nil), b.Details...),
			Broken:   s.mode == ModeGameOver,
		},
		Health: HealthView{
			Current:  s.health.Current,
			Max:      s.health.Max,
			Flashing: s.health.Flashing(),
			Immune:   s.health.ImmunityFrames > 0,
		},
		Stats: StatsView{
			Level:      s.prog.Level,
			XP:         s.prog.XP,
			XPToNext:   s.prog.XPToNext,
			Stage:      s.prog.Stage.Name,
			StageColor: s.prog.Stage.Color,
			WorldLevel: s.prog.WorldLevel,
			MaxWorld:   s.cfg.World.MaxWorldLevel,
			Score:      s.prog.Score(),
		},
		Star: StarView{
			X:            s.star.X,
			Y:            s.star.Y,
			Size:         s.star.Size(),
			Rotation:     s.star.Rotation,
			Visible:      !s.star.Collected,
			RespawnTimer: s.star.RespawnTimer,
		},
		Interstitial: InterstitialView{
			Remaining: s.interstitial,
			Final:     s.finalWorld,
		},
		Frontier: FrontierView{
			Left:     s.world.Left,
			Right:    s.world.Right,
			Entities: len(s.world.Platforms) + len(s.world.Spikes) + len(s.world.Miners),
		},
	}
	if s.arena {
		v.WorldW = s.cfg.World.ArenaWidth
	}

	v.Platforms = make([]core.RectF, 0, len(s.world.Platforms))
	for _, p := range s.world.Platforms {
		v.Platforms = append(v.Platforms, p.RectF)
	}
	v.Spikes = make([]SpikeView, 0, len(s.world.Spikes))
	for _, sp := range s.world.Spikes {
		v.Spikes = append(v.Spikes, SpikeView{RectF: sp.RectF, Hanging: sp.Hanging})
	}
	v.Miners = make([]MinerView, 0, len(s.world.Miners))
	for _, m := range s.world.Miners {
		v.Miners = append(v.Miners, MinerView{
			RectF:     m.Rect(),
			Facing:    m.Facing,
			Attacking: m.Attacking(),
			Swing:     m.SwingProgress(),
			WalkPhase: m.WalkPhase,
		})
	}

	pools := []struct {
		kind ParticleKind
		pool *Pool
	}{
		{ParticleTrail, s.fx.Trail},
		{ParticleEvolution, s.fx.Evolution},
		{ParticleCollect, s.fx.Collect},
		{ParticleSpark, s.fx.Sparks},
		{ParticleCelebration, s.fx.Celebration},
		{ParticleDebris, s.fx.Debris},
	}
	for _, p := range pools {
		for _, pt := range p.pool.Alive() {
			v.Particles = append(v.Particles, ParticleView{
				Kind:     p.kind,
				X:        pt.X,
				Y:        pt.Y,
				Size:     pt.Size,
				Rotation: pt.Rotation,
				Alpha:    pt.Alpha(),
				Color:    pt.Color,
			})
		}
	}
	return v
}
