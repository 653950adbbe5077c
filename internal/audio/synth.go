package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sweep is an oscillator gliding linearly from one frequency to another.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates a tone that glides from one frequency to another over d.
// A constant tone is a sweep with from == to.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), wave: wave, rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(s.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream out exponentially.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	speed    float64 // Envelope falls by e every 1/speed seconds
	pos      int
}

// NewDecay wraps s with an exponential fade.
func NewDecay(s beep.Streamer, speed float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, speed: speed}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		env := math.Exp(-t * d.speed)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// jumpSound is a short rising chirp.
func jumpSound(rate beep.SampleRate) beep.Streamer {
	return NewDecay(NewSweep(280, 620, 120*time.Millisecond, WaveSquare, rate), 12, rate)
}

// damageSound is a low falling thud.
func damageSound(rate beep.SampleRate) beep.Streamer {
	return NewDecay(NewSweep(180, 60, 220*time.Millisecond, WaveTriangle, rate), 10, rate)
}

// starSound is a two-note chime.
func starSound(rate beep.SampleRate) (beep.Streamer, error) {
	n1, err := generators.SineTone(rate, 987.77)
	if err != nil {
		return nil, fmt.Errorf("audio: star tone: %w", err)
	}
	n2, err := generators.SineTone(rate, 1318.51)
	if err != nil {
		return nil, fmt.Errorf("audio: star tone: %w", err)
	}
	return beep.Seq(
		NewDecay(beep.Take(rate.N(80*time.Millisecond), n1), 8, rate),
		beep.Silence(rate.N(20*time.Millisecond)),
		NewDecay(beep.Take(rate.N(220*time.Millisecond), n2), 8, rate),
	), nil
}
