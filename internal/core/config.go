package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW     int // Screen width in characters
	ScreenH     int // Screen height in characters
	TickRate    int // Presentation frames per second (default 60)
	PhysicsRate int // Fixed physics steps per second (default 50)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    60,
		PhysicsRate: 50,
	}
}

// FixedDelta returns the physics step length in seconds.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.PhysicsRate <= 0 {
		return 1.0 / 50
	}
	return 1.0 / float64(c.PhysicsRate)
}

// GameState is a read-only summary the platform uses for its HUD and bookkeeping.
type GameState struct {
	Score   int  // Points collected in the current or last round
	Lives   int  // Remaining lives
	Playing bool // A round is in progress
	Drained bool // Ball is below the drain line
}
