package sim

import "kickup/internal/geom"

// Phase is the run-level state machine value. The simulation only
// advances while PhasePlaying; the side phases are menu screens.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseStore
	PhaseLeaderboard
	PhaseAchievements
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseStore:
		return "store"
	case PhaseLeaderboard:
		return "leaderboard"
	case PhaseAchievements:
		return "achievements"
	default:
		return "unknown"
	}
}

// TicksPerSecond is the nominal simulation rate. Score accumulates one
// unit per tick; the displayed score divides by this.
const TicksPerSecond = 60

// World is the complete per-run simulation state. It holds no
// cross-run progression; that belongs to the ledger.
type World struct {
	Ball      Ball
	Obstacles []Obstacle
	Coins     []Coin
	Score     int // Ticks survived
	RunCoins  int // Coin value collected this run
	Phase     Phase
}

// NewWorld creates a world in the menu phase with the ball parked at
// the pitch center.
func NewWorld(cfg Tuning) World {
	return World{
		Ball:      centeredBall(cfg),
		Obstacles: make([]Obstacle, 0, 16),
		Coins:     make([]Coin, 0, 8),
		Phase:     PhaseMenu,
	}
}

// DisplayScore converts the tick counter to whole survived seconds.
func (w *World) DisplayScore() int {
	return w.Score / TicksPerSecond
}

func centeredBall(cfg Tuning) Ball {
	return Ball{
		Position: geom.V(cfg.ScreenW/2, cfg.ScreenH/2),
		Radius:   cfg.BallRadius,
	}
}
