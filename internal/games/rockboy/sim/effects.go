package sim

import (
	"math"
	"math/rand"
)

// Particle is one short-lived visual effect element.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Life     float64 // Remaining life in reference frames
	MaxLife  float64
	Size     float64
	Rotation float64
	Spin     float64
	Color    string
	alive    bool
}

// Expired reports whether the particle has run out of life.
func (p *Particle) Expired() bool {
	return !p.alive || p.Life <= 0
}

// Alpha returns the remaining life fraction for fading.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, p.Life/p.MaxLife)
}

// Pool is a fixed-capacity particle arena. Spawning into a full pool
// replaces the particle closest to expiry.
type Pool struct {
	slots   []Particle
	gravity float64
	drag    float64 // Velocity multiplier per reference frame, 1 = none
}

// NewPool creates a pool with the given capacity and per-frame gravity.
func NewPool(capacity int, gravity float64) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		slots:   make([]Particle, capacity),
		gravity: gravity,
		drag:    1,
	}
}

// WithDrag sets the velocity damping applied each reference frame.
func (p *Pool) WithDrag(drag float64) *Pool {
	p.drag = drag
	return p
}

// Spawn adds a particle.
func (p *Pool) Spawn(pt Particle) {
	if pt.MaxLife == 0 {
		pt.MaxLife = pt.Life
	}
	pt.alive = true

	victim := 0
	for i := range p.slots {
		if p.slots[i].Expired() {
			p.slots[i] = pt
			return
		}
		if p.slots[i].Life < p.slots[victim].Life {
			victim = i
		}
	}
	p.slots[victim] = pt
}

// Step advances every live particle and retires the expired ones.
func (p *Pool) Step(dt float64) {
	damp := 1.0
	if p.drag != 1 {
		damp = math.Pow(p.drag, dt)
	}
	for i := range p.slots {
		pt := &p.slots[i]
		if !pt.alive {
			continue
		}
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.VY += p.gravity * dt
		pt.VX *= damp
		pt.VY *= damp
		pt.Rotation += pt.Spin * dt
		pt.Life -= dt
		if pt.Life <= 0 {
			pt.alive = false
		}
	}
}

// Alive returns copies of the live particles.
func (p *Pool) Alive() []Particle {
	out := make([]Particle, 0, len(p.slots))
	for _, pt := range p.slots {
		if !pt.Expired() {
			out = append(out, pt)
		}
	}
	return out
}

// Len returns the number of live particles.
func (p *Pool) Len() int {
	n := 0
	for i := range p.slots {
		if !p.slots[i].Expired() {
			n++
		}
	}
	return n
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Clear retires every particle.
func (p *Pool) Clear() {
	for i := range p.slots {
		p.slots[i].alive = false
	}
}

// BurstSpec describes a radial burst of particles.
type BurstSpec struct {
	Count              int
	MinSpeed, MaxSpeed float64
	MinLife, MaxLife   float64
	Size               float64
	Color              string
	Spin               float64
}

// Burst spawns Count particles flying out from (x, y) at random angles.
func (p *Pool) Burst(rng *rand.Rand, x, y float64, spec BurstSpec) {
	for i := 0; i < spec.Count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := spec.MinSpeed + rng.Float64()*(spec.MaxSpeed-spec.MinSpeed)
		life := spec.MinLife + rng.Float64()*(spec.MaxLife-spec.MinLife)
		p.Spawn(Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  life,
			Size:  spec.Size,
			Color: spec.Color,
			Spin:  (rng.Float64() - 0.5) * spec.Spin,
		})
	}
}

// Effects groups the particle pools owned by the simulation.
type Effects struct {
	Evolution   *Pool // Stage change burst
	Trail       *Pool // Star trail
	Collect     *Pool // Star pickup burst
	Sparks      *Pool // Hit sparks
	Celebration *Pool // World clear fireworks
	Debris      *Pool // Rock fragments on game over
}

// NewEffects creates the pools with their fixed capacities.
func NewEffects(trailLength int) Effects {
	return Effects{
		Evolution:   NewPool(64, 0).WithDrag(0.95),
		Trail:       NewPool(trailLength, 0),
		Collect:     NewPool(64, 0).WithDrag(0.95),
		Sparks:      NewPool(64, 0.3),
		Celebration: NewPool(64, 0.05),
		Debris:      NewPool(8, 0.2),
	}
}

func (e Effects) pools() []*Pool {
	return []*Pool{e.Evolution, e.Trail, e.Collect, e.Sparks, e.Celebration, e.Debris}
}

// Step advances every pool.
func (e Effects) Step(dt float64) {
	for _, p := range e.pools() {
		p.Step(dt)
	}
}

// Clear empties every pool.
func (e Effects) Clear() {
	for _, p := range e.pools() {
		p.Clear()
	}
}
