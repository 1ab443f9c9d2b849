package sim

// Difficulty scaling caps. Both curves are monotonically non-decreasing
// in elapsed time until they hit their cap.
const (
	maxSpeedMultiplier = 2.2
	maxSpawnMultiplier = 3.5
)

// Multipliers holds the difficulty scaling applied to obstacle speed and
// spawn probability at a given point in a run.
type Multipliers struct {
	Speed float64
	Spawn float64
}

// Difficulty maps elapsed survival time (in ticks at 60 Hz) to the
// current speed and spawn multipliers. Pure function, defined for all
// non-negative inputs.
func Difficulty(scoreTicks int) Multipliers {
	t := float64(scoreTicks) / 60.0

	speed := 1 + (t/120)*0.8
	if speed > maxSpeedMultiplier {
		speed = maxSpeedMultiplier
	}

	spawn := 1 + (t/90)*2
	if spawn > maxSpawnMultiplier {
		spawn = maxSpawnMultiplier
	}

	return Multipliers{Speed: speed, Spawn: spawn}
}
