package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its terminal output and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState is the coarse status the platform needs after every tick.
type GameState struct {
	Score    int    // Current score
	Level    int    // Zero-based level index
	Phase    string // Level phase name (playing, cleared, victory, gameover)
	GameOver bool   // Whether the run has ended in defeat
	Victory  bool   // Whether the run has ended in victory
	Paused   bool   // Whether the game is paused
}

// Finished reports whether the run reached a terminal phase.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the audio cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
