package sim

import (
	"math/rand"

	"kickup/internal/geom"
)

// Session owns one world and drives the run-level state machine:
//
//	menu -> playing -> gameOver -> (playing | menu)
//
// plus the store/leaderboard/achievements side screens reachable from
// the menu. There is no terminal state; the menu is the idle anchor.
//
// A Session is confined to a single goroutine. Taps arrive between
// ticks and mutate only the ball's velocity.
type Session struct {
	cfg    Tuning
	rng    *rand.Rand
	world  World
	paused bool

	// One watch-ad continue per run.
	adContinue bool
}

// NewSession creates a session in the menu phase. The seed drives all
// spawn randomness for the session's runs.
func NewSession(cfg Tuning, seed int64) *Session {
	return &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		world: NewWorld(cfg),
	}
}

// World returns a snapshot of the current world state for rendering.
func (s *Session) World() World {
	return s.world
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.world.Phase
}

// Paused reports whether the current run is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// AdContinueAvailable reports whether the one-time watch-ad continue
// is still unclaimed for this run.
func (s *Session) AdContinueAvailable() bool {
	return s.adContinue
}

// Tuning returns the session's tuning constants.
func (s *Session) Tuning() Tuning {
	return s.cfg
}

// StartRun begins a fresh run from the menu or after a game over:
// ball recentered with zero velocity, entity lists cleared, score reset.
// The caller is responsible for telling the ledger a run started.
func (s *Session) StartRun() {
	s.world.Ball = centeredBall(s.cfg)
	s.world.Obstacles = s.world.Obstacles[:0]
	s.world.Coins = s.world.Coins[:0]
	s.world.Score = 0
	s.world.RunCoins = 0
	s.world.Phase = PhasePlaying
	s.paused = false
	s.adContinue = true
}

// Step advances the simulation by one tick. Outside the playing phase
// or while paused it is a no-op returning no events.
func (s *Session) Step() []Event {
	if s.world.Phase != PhasePlaying || s.paused {
		return nil
	}
	return Step(&s.world, s.cfg, s.rng)
}

// Tap applies a tap at world coordinates. Ignored outside active play;
// phase-transition taps are wired explicitly by the platform layer.
func (s *Session) Tap(x, y float64) {
	if s.world.Phase != PhasePlaying || s.paused {
		return
	}
	s.world.Ball.Velocity = ApplyTap(s.world.Ball, x, y, s.cfg)
}

// TogglePause pauses or resumes the current run.
func (s *Session) TogglePause() {
	if s.world.Phase == PhasePlaying {
		s.paused = !s.paused
	}
}

// ContinueWithAd resumes a finished run after a rewarded ad: the ball
// is recentered with an upward boost while score, obstacles and coins
// are kept. Consumes the run's one-time eligibility. Returns false if
// the continue is not available.
func (s *Session) ContinueWithAd() bool {
	if s.world.Phase != PhaseGameOver || !s.adContinue {
		return false
	}
	s.adContinue = false
	s.world.Ball.Position = geom.V(s.cfg.ScreenW/2, s.cfg.ScreenH/2)
	s.world.Ball.Velocity = geom.V(0, s.cfg.ContinueImpulse)
	s.world.Phase = PhasePlaying
	return true
}

// ToMenu returns to the menu from any phase, abandoning the run.
func (s *Session) ToMenu() {
	s.world.Phase = PhaseMenu
	s.paused = false
}

// Navigate moves between the menu and a side screen. Side screens are
// only reachable from the menu and only return to it; the simulation
// never runs in them.
func (s *Session) Navigate(to Phase) bool {
	switch to {
	case PhaseStore, PhaseLeaderboard, PhaseAchievements:
		if s.world.Phase != PhaseMenu {
			return false
		}
	case PhaseMenu:
		switch s.world.Phase {
		case PhaseStore, PhaseLeaderboard, PhaseAchievements:
		default:
			return false
		}
	default:
		return false
	}
	s.world.Phase = to
	return true
}
