package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rock-boy/internal/config"
	"github.com/vovakirdan/rock-boy/internal/core"
)

const (
	outlinePoints = 12
	minDetails    = 3
	maxDetails    = 5
)

// Point is an offset from the body centre.
type Point struct {
	X, Y float64
}

// Detail is a crack stroke drawn on the rock, relative to its centre.
type Detail struct {
	X1, Y1, X2, Y2 float64
}

// Body is the player rock.
type Body struct {
	X, Y        float64 // Centre position
	VX, VY      float64
	Rotation    float64
	RotationVel float64
	BaseRadius  float64
	Radius      float64
	Grounded    bool
	CanJump     bool

	Acceleration float64
	MaxSpeedX    float64
	Friction     float64

	Points  []Point  // Jittered outline, regenerated on Resize
	Details []Detail // Cracks, regenerated on Resize
}

// NewBody creates a body at the configured start position with the given radius.
func NewBody(pc config.PlayerConfig, phys config.PhysicsConfig, radius float64, rng *rand.Rand) *Body {
	b := &Body{
		X:            pc.StartX,
		Y:            pc.StartY,
		BaseRadius:   pc.BaseRadius,
		Acceleration: phys.MoveSpeed,
		MaxSpeedX:    phys.MaxSpeedX,
		Friction:     phys.GroundFriction,
	}
	b.Resize(radius, rng)
	return b
}

// BodyRadius is the radius for a level and stage strength.
func BodyRadius(base float64, level int, sizePerLevel, strength float64) float64 {
	return base * (1 + float64(level)*sizePerLevel) * strength
}

// Resize sets the radius and regenerates the decorative outline.
func (b *Body) Resize(radius float64, rng *rand.Rand) {
	b.Radius = radius

	b.Points = b.Points[:0]
	for i := 0; i < outlinePoints; i++ {
		angle := float64(i) / outlinePoints * 2 * math.Pi
		r := radius * (0.8 + rng.Float64()*0.4)
		b.Points = append(b.Points, Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r})
	}

	b.Details = b.Details[:0]
	n := minDetails + rng.Intn(maxDetails-minDetails+1)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		start := radius * rng.Float64() * 0.5
		length := radius * (0.3 + rng.Float64()*0.3)
		x1, y1 := math.Cos(angle)*start, math.Sin(angle)*start
		b.Details = append(b.Details, Detail{
			X1: x1,
			Y1: y1,
			X2: x1 + math.Cos(angle)*length,
			Y2: y1 + math.Sin(angle)*length,
		})
	}
}

// Bounds returns the axis-aligned box around the body circle.
func (b *Body) Bounds() core.RectF {
	return core.CircleBox(b.X, b.Y, b.Radius)
}

// Bottom returns the lowest point of the body.
func (b *Body) Bottom() float64 {
	return b.Y + b.Radius
}

// MoveTo places the body at rest at the given position.
func (b *Body) MoveTo(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Rotation, b.RotationVel = 0, 0
	b.Grounded = false
	b.CanJump = false
}
