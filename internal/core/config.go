package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Current score
	GameOver   bool   // Whether the run has ended
	Paused     bool   // Whether the game is paused
	Finished   bool   // Run reached a full reset point (won)
	WorldLevel int    // Highest world reached in this run
	Level      int    // Current rock level
	Stage      string // Current evolution stage name
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
