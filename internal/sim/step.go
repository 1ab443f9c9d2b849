package sim

import (
	"math/rand"

	"github.com/google/uuid"

	"kickup/internal/geom"
)

// Step advances the world by one fixed tick. It mutates w in place and
// returns the discrete events that occurred, in order of occurrence.
//
// The update order is load-bearing: gravity, integration, damping, wall
// bounce, ground check, obstacle advance/cull, obstacle spawn, obstacle
// collision, score, coin advance/cull, coin spawn, coin collection.
// Reordering changes observable behavior.
//
// The rng is the only source of nondeterminism and is used solely for
// spawn decisions, so a seeded generator makes runs reproducible.
// Callers must only invoke Step while w.Phase == PhasePlaying.
func Step(w *World, cfg Tuning, rng *rand.Rand) []Event {
	var events []Event

	ball := &w.Ball

	// Gravity, then integrate with the pre-damping velocity.
	ball.Velocity.Y += cfg.Gravity
	ball.Position = ball.Position.Add(ball.Velocity)
	ball.Velocity.X *= cfg.DampingX
	ball.Velocity.Y *= cfg.DampingY

	// Wall bounce: clamp to the boundary and reflect with restitution,
	// sign forced back toward the pitch interior.
	if ball.Position.X < ball.Radius {
		ball.Position.X = ball.Radius
		ball.Velocity.X = abs(ball.Velocity.X) * cfg.WallRestitution
	} else if ball.Position.X > cfg.ScreenW-ball.Radius {
		ball.Position.X = cfg.ScreenW - ball.Radius
		ball.Velocity.X = -abs(ball.Velocity.X) * cfg.WallRestitution
	}

	// Ground check ends the run, but the rest of the tick still runs so
	// entity updates and the event list stay on a single code path.
	if ball.Position.Y >= cfg.ScreenH-ball.Radius {
		ball.Position.Y = cfg.ScreenH - ball.Radius
		w.Phase = PhaseGameOver
		events = append(events, Event{Kind: EventGroundHit})
	}

	mult := Difficulty(w.Score)

	// Advance obstacles and drop the ones outside the cull window.
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.Position = o.Position.Add(o.Velocity)
		if inCullWindow(o.Position, cfg) {
			kept = append(kept, o)
		}
	}
	w.Obstacles = kept

	if rng.Float64() < cfg.ObstacleSpawnRate*mult.Spawn {
		w.Obstacles = append(w.Obstacles, spawnObstacle(cfg, mult.Speed, rng))
	}

	// Circle vs inscribed-circle approximation of the obstacle box.
	for _, o := range w.Obstacles {
		if ball.Position.Dist(o.Position) < ball.Radius+o.CollisionRadius() {
			w.Phase = PhaseGameOver
			events = append(events, Event{Kind: EventCollision})
			break
		}
	}

	w.Score++

	keptCoins := w.Coins[:0]
	for _, c := range w.Coins {
		c.Position = c.Position.Add(c.Velocity)
		if inCullWindow(c.Position, cfg) {
			keptCoins = append(keptCoins, c)
		}
	}
	w.Coins = keptCoins

	// Coin spawn rolls independently of the obstacle spawn.
	if rng.Float64() < cfg.CoinSpawnRate {
		w.Coins = append(w.Coins, spawnCoin(cfg, mult.Speed, rng))
	}

	// Collection is terminal for the coin and credits the run total
	// immediately, not at run end.
	remaining := w.Coins[:0]
	for _, c := range w.Coins {
		if ball.Position.Dist(c.Position) < ball.Radius+c.Radius {
			w.RunCoins += c.Value
			events = append(events, Event{Kind: EventCoinCollected, Value: c.Value})
			continue
		}
		remaining = append(remaining, c)
	}
	w.Coins = remaining

	return events
}

// spawnObstacle creates an obstacle at a random off-screen edge moving
// toward the pitch interior at the difficulty-scaled speed.
func spawnObstacle(cfg Tuning, speedMult float64, rng *rand.Rand) Obstacle {
	kind := ObstacleKind(rng.Intn(3))
	w, h := kind.Size()

	x, vx := spawnEdge(cfg, cfg.BaseObstacleSpeed*speedMult, rng)
	y := spawnOffset(cfg, rng)

	return Obstacle{
		ID:       uuid.New(),
		Position: geom.V(x, y),
		Velocity: geom.V(vx, 0),
		Kind:     kind,
		Width:    w,
		Height:   h,
	}
}

// spawnCoin creates a coin with the same edge-entry geometry as
// obstacles but no kind-dependent sizing.
func spawnCoin(cfg Tuning, speedMult float64, rng *rand.Rand) Coin {
	x, vx := spawnEdge(cfg, cfg.BaseObstacleSpeed*speedMult, rng)
	y := spawnOffset(cfg, rng)

	value := 1
	if rng.Float64() < 0.2 {
		value = 5
	}

	return Coin{
		ID:       uuid.New(),
		Position: geom.V(x, y),
		Velocity: geom.V(vx, 0),
		Radius:   CoinRadius,
		Value:    value,
	}
}

// spawnEdge picks a side uniformly and returns the off-screen spawn x
// plus the horizontal velocity signed toward the interior.
func spawnEdge(cfg Tuning, speed float64, rng *rand.Rand) (x, vx float64) {
	if rng.Intn(2) == 0 {
		return -cfg.CullMargin, speed
	}
	return cfg.ScreenW + cfg.CullMargin, -speed
}

// spawnOffset returns a random vertical position inside the spawn band.
func spawnOffset(cfg Tuning, rng *rand.Rand) float64 {
	low := cfg.SpawnEdgeInset
	high := cfg.ScreenH - cfg.SpawnEdgeInset
	return low + rng.Float64()*(high-low)
}

// inCullWindow reports whether p is within the extended retention
// window: CullMargin units beyond every screen edge.
func inCullWindow(p geom.Vec2, cfg Tuning) bool {
	return p.X > -cfg.CullMargin && p.X < cfg.ScreenW+cfg.CullMargin &&
		p.Y > -cfg.CullMargin && p.Y < cfg.ScreenH+cfg.CullMargin
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
