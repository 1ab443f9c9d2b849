package sim

import "testing"

func TestDifficultyStartsAtOne(t *testing.T) {
	m := Difficulty(0)
	if m.Speed != 1.0 {
		t.Errorf("Speed at t=0 should be 1.0, got %f", m.Speed)
	}
	if m.Spawn != 1.0 {
		t.Errorf("Spawn at t=0 should be 1.0, got %f", m.Spawn)
	}
}

func TestDifficultyMonotonicAndCapped(t *testing.T) {
	prev := Difficulty(0)
	// Walk ten minutes of ticks; both curves must never decrease and
	// never exceed their caps.
	for ticks := 0; ticks <= 10*60*TicksPerSecond; ticks += 30 {
		m := Difficulty(ticks)

		if m.Speed < prev.Speed {
			t.Fatalf("Speed decreased at ticks=%d: %f -> %f", ticks, prev.Speed, m.Speed)
		}
		if m.Spawn < prev.Spawn {
			t.Fatalf("Spawn decreased at ticks=%d: %f -> %f", ticks, prev.Spawn, m.Spawn)
		}
		if m.Speed > 2.2 {
			t.Fatalf("Speed exceeded cap at ticks=%d: %f", ticks, m.Speed)
		}
		if m.Spawn > 3.5 {
			t.Fatalf("Spawn exceeded cap at ticks=%d: %f", ticks, m.Spawn)
		}

		prev = m
	}
}

func TestDifficultyReachesCaps(t *testing.T) {
	// Both curves saturate well within an hour of survival.
	m := Difficulty(60 * 60 * TicksPerSecond)
	if m.Speed != 2.2 {
		t.Errorf("Speed should saturate at 2.2, got %f", m.Speed)
	}
	if m.Spawn != 3.5 {
		t.Errorf("Spawn should saturate at 3.5, got %f", m.Spawn)
	}
}

func TestDifficultyKnownPoints(t *testing.T) {
	// At 120 seconds the speed multiplier has gained the full 0.8.
	m := Difficulty(120 * TicksPerSecond)
	if m.Speed < 1.799 || m.Speed > 1.801 {
		t.Errorf("Speed at 120s should be 1.8, got %f", m.Speed)
	}
	// At 90 seconds the spawn multiplier has gained the full 2.0.
	m = Difficulty(90 * TicksPerSecond)
	if m.Spawn < 2.999 || m.Spawn > 3.001 {
		t.Errorf("Spawn at 90s should be 3.0, got %f", m.Spawn)
	}
}
