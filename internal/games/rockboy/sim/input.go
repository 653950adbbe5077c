package sim

// InputState is the raw intent reported by an InputSource for one tick.
type InputState struct {
	Left     bool // Move left held
	Right    bool // Move right held
	Up       bool // Jump key down
	JumpHeld bool // Alternate jump key down
	Primary  bool // Restart / confirm
}

// Controls is InputState plus the edges derived from the previous tick.
type Controls struct {
	InputState
	JumpPressed    bool // Jump went down this tick
	PrimaryPressed bool // Primary went down this tick
}

// Horizontal reports -1, 0 or 1 for the held direction.
func (c Controls) Horizontal() float64 {
	switch {
	case c.Left && !c.Right:
		return -1
	case c.Right && !c.Left:
		return 1
	default:
		return 0
	}
}

// inputTracker remembers last tick's keys for edge detection.
type inputTracker struct {
	jump    bool
	primary bool
}

func (t *inputTracker) update(in InputState) Controls {
	jump := in.Up || in.JumpHeld
	c := Controls{
		InputState:     in,
		JumpPressed:    jump && !t.jump,
		PrimaryPressed: in.Primary && !t.primary,
	}
	t.jump = jump
	t.primary = in.Primary
	return c
}

func (t *inputTracker) reset() {
	*t = inputTracker{}
}
