package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation relies on.
func (c RockConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.GroundOffset < 0 || c.World.GroundOffset >= c.World.Height {
		fail("ground_offset %v outside world height", c.World.GroundOffset)
	}
	if c.World.ArenaWidth < c.World.Width {
		fail("arena_width %v smaller than viewport width %v", c.World.ArenaWidth, c.World.Width)
	}
	if c.Player.BaseRadius <= 0 {
		fail("player base_radius must be positive")
	}
	if c.Health.Base <= 0 {
		fail("health base must be positive")
	}
	if c.Health.FlashFrames > c.Health.ImmunityFrames {
		fail("flash_frames %d exceeds immunity_frames %d", c.Health.FlashFrames, c.Health.ImmunityFrames)
	}
	if c.Leveling.XPToNext <= 0 {
		fail("xp_to_next must be positive")
	}
	if c.Physics.MaxDelta <= 0 || c.Physics.ReferenceFrameMs <= 0 {
		fail("max_delta and reference_frame_ms must be positive")
	}

	if len(c.Stages) == 0 {
		fail("stage table is empty")
	}
	for i, st := range c.Stages {
		if st.Strength <= 0 {
			fail("stage %q strength must be positive", st.Name)
		}
		if i == 0 && st.MinLevel > 1 {
			fail("first stage %q must start at level 1, got %d", st.Name, st.MinLevel)
		}
		if i > 0 && st.MinLevel <= c.Stages[i-1].MinLevel {
			fail("stage %q min_level %d not above %q", st.Name, st.MinLevel, c.Stages[i-1].Name)
		}
	}

	g := c.Generator
	if g.Step <= 0 {
		fail("generator step must be positive, got %v", g.Step)
	}
	if g.LookAhead <= 0 {
		fail("generator look_ahead must be positive, got %v", g.LookAhead)
	}
	if g.CleanupDistance < g.LookAhead+g.Step {
		fail("cleanup_distance %v must be >= look_ahead+step (%v)", g.CleanupDistance, g.LookAhead+g.Step)
	}
	if g.MaxIterations <= 0 {
		fail("generator max_iterations must be positive")
	}
	if g.MinPlatforms < 0 || g.MaxPlatforms < g.MinPlatforms {
		fail("platform count range [%d, %d] invalid", g.MinPlatforms, g.MaxPlatforms)
	}
	if g.PlatformMinWidth <= 0 || g.PlatformMaxWidth < g.PlatformMinWidth {
		fail("platform width range [%v, %v] invalid", g.PlatformMinWidth, g.PlatformMaxWidth)
	}
	if g.PlatformMaxRise < g.PlatformMinRise {
		fail("platform rise range [%v, %v] invalid", g.PlatformMinRise, g.PlatformMaxRise)
	}

	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		fail("camera smoothing must be in (0, 1], got %v", c.Camera.Smoothing)
	}

	return errors.Join(errs...)
}
