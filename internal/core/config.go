package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second; queued input is applied once per tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LevelID   string
	LevelName string
	Moves     int  // accepted transitions since the level was loaded
	Solved    bool // every target of the current level is covered
	Finished  bool // the last level of the campaign is solved
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State    GameState
	Applied  int  // commands that changed the game
	Rejected int  // commands refused by the rules
	Solved   bool // the level became solved during this step
}
