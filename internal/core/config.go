package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed
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
	Score    int  // Current score
	Wave     int  // Current enemy wave
	Kills    int  // Enemies defeated this run
	Tick     int  // Simulation ticks elapsed this run
	InMenu   bool // Waiting on the title screen
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies what happened inside a simulation tick.
type EventKind int

const (
	EventStateChanged EventKind = iota // Label holds the new state name
	EventCast                          // Label holds the ability name
	EventFusion                        // Value holds the number of fusions this tick
	EventWaveAdvanced                  // Value holds the new wave number
	EventEnemyKilled                   // Value holds the score awarded, Label the variant
	EventGameOver                      // Value holds the final score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventCast:
		return "cast"
	case EventFusion:
		return "fusion"
	case EventWaveAdvanced:
		return "wave_advanced"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the simulation for loggers and UIs.
type Event struct {
	Kind  EventKind
	Value int
	Label string
}
