package core

// RuntimeConfig is the per-session configuration handed to a match at reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic serves (0 = time-based, set by platform)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Side identifies one half of the playfield.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other side, or SideNone for SideNone.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// ScoreEvent is emitted once per goal: which edge the ball crossed, the score
// after the award, and whether the point ended the match. External sinks
// (audio, UI) consume these from StepResult.
type ScoreEvent struct {
	CrossedSide Side // the edge the ball left through
	Scorer      Side // the player awarded the point
	ScoreLeft   int
	ScoreRight  int
	MatchOver   bool
}

// GameState is the externally visible state of the match.
type GameState struct {
	ScoreLeft  int
	ScoreRight int
	GameOver   bool
	Paused     bool
	Winner     Side // SideNone until the match is over
}

// StepResult is returned by Match.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []ScoreEvent // score events produced this tick, in order
}
