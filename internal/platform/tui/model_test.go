package tui

import (
	"path/filepath"
	"testing"
	"time"

	"kickup/internal/monetize"
	"kickup/internal/progression"
	"kickup/internal/sim"
	"kickup/internal/storage"
)

func press(m Model, key string) Model {
	mi, _ := m.Update(keyMsg(key))
	return mi.(Model)
}

// tickUntilGameOver steps the model until the run ends. With no taps
// the ball drops to the ground within a couple hundred ticks.
func tickUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if m.session.Phase() == sim.PhaseGameOver {
			return m
		}
		mi, _ := m.Update(TickMsg(time.Now()))
		m = mi.(Model)
	}
	t.Fatal("run did not end")
	return m
}

func TestContinuedRunRecordedOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	store, err := storage.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	ledger := progression.NewLedger(store, nil)
	ledger.Load()
	ledger.SetPlayerName("sasha")

	session := sim.NewSession(sim.DefaultTuning(), 1)
	m := NewModel(session, ledger, monetize.StubProvider{}, monetize.Config{}, Options{}, nil)

	// Start a run from the menu, die, continue by watching an ad, die
	// again and leave for the menu. That is one run, not two.
	m = press(m, "enter")
	if m.session.Phase() != sim.PhasePlaying {
		t.Fatal("selecting Play should start a run")
	}
	m = tickUntilGameOver(t, m)

	m = press(m, "a")
	if m.session.Phase() != sim.PhasePlaying {
		t.Fatal("watching an ad should resume the run")
	}
	m = tickUntilGameOver(t, m)

	m = press(m, "m")
	if m.session.Phase() != sim.PhaseMenu {
		t.Fatal("m should return to the menu")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	store2, err := storage.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store2.Close()

	runs, err := store2.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("an ad-extended run should be recorded once, got %d rows", len(runs))
	}
}

func TestRestartRecordsPreviousRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")
	store, err := storage.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	ledger := progression.NewLedger(store, nil)
	ledger.Load()
	ledger.SetPlayerName("sasha")

	session := sim.NewSession(sim.DefaultTuning(), 1)
	m := NewModel(session, ledger, monetize.StubProvider{}, monetize.Config{}, Options{}, nil)

	m = press(m, "enter")
	m = tickUntilGameOver(t, m)
	m = press(m, "r")
	if m.session.Phase() != sim.PhasePlaying {
		t.Fatal("r should restart")
	}

	if got := ledger.Snapshot().TotalGamesPlayed; got != 2 {
		t.Errorf("games played should be 2 after restart, got %d", got)
	}
	runs, err := store.TopRuns("sasha", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("first run should be recorded before the restart, got %d rows", len(runs))
	}
}
