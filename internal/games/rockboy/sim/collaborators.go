package sim

import "time"

// Sound names a sound effect.
type Sound string

const (
	SoundJump        Sound = "jump"
	SoundDamage      Sound = "damage"
	SoundStarCollect Sound = "starCollect"
)

// Renderer draws a finished frame. It must not mutate the view.
type Renderer interface {
	RenderFrame(v *View) error
}

// SoundPlayer plays effects fire-and-forget.
type SoundPlayer interface {
	Play(s Sound) error
}

// InputSource is polled once per frame.
type InputSource interface {
	ReadInput() InputState
}

// Clock reports monotonic time in milliseconds.
type Clock interface {
	NowMillis() float64
}

// NopRenderer discards frames.
type NopRenderer struct{}

// RenderFrame implements Renderer.
func (NopRenderer) RenderFrame(*View) error { return nil }

// NopSound discards sounds.
type NopSound struct{}

// Play implements SoundPlayer.
func (NopSound) Play(Sound) error { return nil }

// StaticInput always reports the same state.
type StaticInput struct {
	State InputState
}

// ReadInput implements InputSource.
func (s StaticInput) ReadInput() InputState { return s.State }

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis implements Clock.
func (c *SystemClock) NowMillis() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v *View) error

// RenderFrame implements Renderer.
func (f RendererFunc) RenderFrame(v *View) error { return f(v) }

// InputFunc adapts a function to InputSource.
type InputFunc func() InputState

// ReadInput implements InputSource.
func (f InputFunc) ReadInput() InputState { return f() }
