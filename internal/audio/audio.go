// Package audio plays the game's sound effects through the system speaker.
// Effects are synthesised on the fly, so no asset files are needed.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/rock-boy/internal/games/rockboy/sim"
)

const sampleRate = beep.SampleRate(44100)

// ErrUnknownSound is returned by Play for names with no effect.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Effect builds the streamer for a sound at the given volume (0 to 1).
func Effect(s sim.Sound, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	var st beep.Streamer
	switch s {
	case sim.SoundJump:
		st = jumpSound(rate)
	case sim.SoundDamage:
		st = damageSound(rate)
	case sim.SoundStarCollect:
		var err error
		if st, err = starSound(rate); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, s)
	}
	return newVolume(st, volume*0.3), nil
}

// BeepPlayer implements sim.SoundPlayer on top of a beep mixer.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewBeepPlayer creates a player. Nothing is audible until Init succeeds.
func NewBeepPlayer(volume float64, logger *log.Logger) *BeepPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger,
	}
}

// Init opens the speaker. Failure leaves the player silent.
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Play queues a sound effect. Unknown sounds are an error even when silent.
func (p *BeepPlayer) Play(s sim.Sound) error {
	st, err := Effect(s, p.volume, sampleRate)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return nil
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	return nil
}

// Close silences everything still playing.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.mixer.Clear()
	p.initialized = false
}

// Open returns a speaker-backed player, or a silent one when the device is
// unavailable or muted. The error, if any, is informational.
func Open(muted bool, volume float64, logger *log.Logger) (sim.SoundPlayer, func(), error) {
	if muted {
		return sim.NopSound{}, func() {}, nil
	}
	p := NewBeepPlayer(volume, logger)
	if err := p.Init(); err != nil {
		return sim.NopSound{}, func() {}, err
	}
	return p, p.Close, nil
}
