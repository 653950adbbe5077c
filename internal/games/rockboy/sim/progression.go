package sim

import (
	"math"

	"github.com/vovakirdan/rock-boy/internal/config"
)

// Stage is one evolution tier.
type Stage struct {
	Name     string
	MinLevel int
	Color    string
	Strength float64
}

// LevelChange describes the outcome of a level transition.
type LevelChange struct {
	From, To     int
	StageChanged bool
	Stage        Stage
}

// Changed reports whether the level moved.
func (c LevelChange) Changed() bool {
	return c.From != c.To
}

// Progression is the level, XP and evolution state of the rock.
type Progression struct {
	Level      int
	XP         float64
	XPToNext   int
	Stage      Stage
	WorldLevel int
	TotalXP    float64 // Lifetime XP across worlds, used as the score

	stages   []Stage
	baseNext int
	growth   float64
}

// NewProgression starts at level 1 in world 1.
// The stage table must be non-empty and ordered by MinLevel.
func NewProgression(cfg config.LevelingConfig, table []config.StageConfig) *Progression {
	stages := make([]Stage, 0, len(table))
	for _, st := range table {
		stages = append(stages, Stage{Name: st.Name, MinLevel: st.MinLevel, Color: st.Color, Strength: st.Strength})
	}
	p := &Progression{
		WorldLevel: 1,
		stages:     stages,
		baseNext:   cfg.XPToNext,
		growth:     cfg.Growth,
	}
	p.ResetLevel()
	return p
}

// ResetLevel returns to level 1 without touching the world level or score.
func (p *Progression) ResetLevel() {
	p.Level = 1
	p.XP = 0
	p.XPToNext = p.baseNext
	p.Stage = p.StageFor(p.Level)
}

// StageFor returns the highest stage whose MinLevel is at most level.
func (p *Progression) StageFor(level int) Stage {
	stage := p.stages[0]
	for _, st := range p.stages {
		if st.MinLevel <= level {
			stage = st
		}
	}
	return stage
}

// Stages returns the evolution table.
func (p *Progression) Stages() []Stage {
	return p.stages
}

// Terminal reports whether the current stage is the last one.
func (p *Progression) Terminal() bool {
	return p.Stage.Name == p.stages[len(p.stages)-1].Name
}

// AddXP grants experience and levels up once if the threshold is reached.
func (p *Progression) AddXP(amount float64) LevelChange {
	if amount > 0 {
		p.XP += amount
		p.TotalXP += amount
	}
	if p.XP >= float64(p.XPToNext) {
		return p.LevelUp()
	}
	return LevelChange{From: p.Level, To: p.Level, Stage: p.Stage}
}

// LevelUp advances one level, clears XP and grows the threshold.
func (p *Progression) LevelUp() LevelChange {
	from := p.Level
	p.Level++
	p.XP = 0
	next := math.Floor(float64(p.XPToNext) * p.growth)
	if next >= float64(math.MaxInt) {
		p.XPToNext = math.MaxInt
	} else {
		p.XPToNext = int(next)
	}
	return p.restage(from)
}

// LevelDown drops one level without touching XP.
func (p *Progression) LevelDown() LevelChange {
	from := p.Level
	if p.Level > 1 {
		p.Level--
	}
	return p.restage(from)
}

func (p *Progression) restage(from int) LevelChange {
	prev := p.Stage
	p.Stage = p.StageFor(p.Level)
	return LevelChange{
		From:         from,
		To:           p.Level,
		StageChanged: prev.Name != p.Stage.Name,
		Stage:        p.Stage,
	}
}

// Score returns lifetime XP as an integer.
func (p *Progression) Score() int {
	return int(p.TotalXP)
}
