package sim

import (
	"math"
	"math/rand"
	"testing"

	"kickup/internal/geom"
)

// quietTuning disables spawning so physics can be asserted in isolation.
func quietTuning() Tuning {
	cfg := DefaultTuning()
	cfg.ObstacleSpawnRate = 0
	cfg.CoinSpawnRate = 0
	return cfg
}

func playingWorld(cfg Tuning) World {
	w := NewWorld(cfg)
	w.Phase = PhasePlaying
	return w
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStepGravityIntegrationOrder(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(187, 400)
	w.Ball.Velocity = geom.V(0, 0)

	rng := rand.New(rand.NewSource(1))
	Step(&w, cfg, rng)

	// Gravity is applied first, the position integrates the pre-damping
	// velocity, then damping scales it down.
	if !almostEqual(w.Ball.Position.Y, 400.3) {
		t.Errorf("position.y after one tick should be 400.3, got %f", w.Ball.Position.Y)
	}
	if !almostEqual(w.Ball.Velocity.Y, 0.3*0.99) {
		t.Errorf("velocity.y after damping should be 0.297, got %f", w.Ball.Velocity.Y)
	}
	if w.Ball.Position.X != 187 {
		t.Errorf("position.x should be unchanged, got %f", w.Ball.Position.X)
	}
}

func TestStepScoreIncrementsPerTick(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 90; i++ {
		if w.Phase != PhasePlaying {
			t.Fatalf("run ended unexpectedly at tick %d", i)
		}
		// Keep the ball airborne.
		w.Ball.Velocity = ApplyTap(w.Ball, w.Ball.Position.X, 0, cfg)
		Step(&w, cfg, rng)
	}

	if w.Score != 90 {
		t.Errorf("score should be 90 after 90 ticks, got %d", w.Score)
	}
	if w.DisplayScore() != 1 {
		t.Errorf("display score should be 1 second, got %d", w.DisplayScore())
	}
}

func TestStepBallRadiusConstant(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	radius := w.Ball.Radius

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		Step(&w, cfg, rng)
		if w.Ball.Radius != radius {
			t.Fatalf("ball radius changed at tick %d: %f", i, w.Ball.Radius)
		}
	}
}

func TestStepWallBounceLeft(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(cfg.BallRadius+1, 300)
	w.Ball.Velocity = geom.V(-4, 0)

	rng := rand.New(rand.NewSource(1))
	Step(&w, cfg, rng)

	if w.Ball.Position.X != cfg.BallRadius {
		t.Errorf("ball should be clamped to left wall at %f, got %f", cfg.BallRadius, w.Ball.Position.X)
	}
	if w.Ball.Velocity.X <= 0 {
		t.Errorf("velocity should point back into the pitch, got %f", w.Ball.Velocity.X)
	}
	// Incoming -4 damps to -3.8, then reflects with 0.7 restitution.
	want := 4 * cfg.DampingX * cfg.WallRestitution
	if !almostEqual(w.Ball.Velocity.X, want) {
		t.Errorf("restitution: expected %f, got %f", want, w.Ball.Velocity.X)
	}
}

func TestStepWallBounceRight(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(cfg.ScreenW-cfg.BallRadius-1, 300)
	w.Ball.Velocity = geom.V(4, 0)

	rng := rand.New(rand.NewSource(1))
	Step(&w, cfg, rng)

	if w.Ball.Position.X != cfg.ScreenW-cfg.BallRadius {
		t.Errorf("ball should be clamped to right wall, got %f", w.Ball.Position.X)
	}
	if w.Ball.Velocity.X >= 0 {
		t.Errorf("velocity should point back into the pitch, got %f", w.Ball.Velocity.X)
	}
}

func TestStepGroundHitEndsRun(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(187, cfg.ScreenH-cfg.BallRadius-1)
	w.Ball.Velocity = geom.V(0, 5)

	rng := rand.New(rand.NewSource(1))
	events := Step(&w, cfg, rng)

	if w.Phase != PhaseGameOver {
		t.Error("ground hit should transition to game over")
	}
	if len(events) != 1 || events[0].Kind != EventGroundHit {
		t.Errorf("expected a single ground hit event, got %v", events)
	}
	if w.Ball.Position.Y != cfg.ScreenH-cfg.BallRadius {
		t.Errorf("ball should rest on the ground, got y=%f", w.Ball.Position.Y)
	}
}

func TestStepObstacleCollision(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(187, 300)
	w.Ball.Velocity = geom.V(0, -cfg.Gravity) // cancel this tick's gravity

	// A defender sitting on top of the ball. min(40, 60)/2 = 20.
	w.Obstacles = append(w.Obstacles, Obstacle{
		Position: geom.V(187, 300),
		Kind:     KindDefender,
		Width:    40,
		Height:   60,
	})

	rng := rand.New(rand.NewSource(1))
	events := Step(&w, cfg, rng)

	if w.Phase != PhaseGameOver {
		t.Error("obstacle collision should transition to game over")
	}
	if len(events) != 1 || events[0].Kind != EventCollision {
		t.Errorf("expected a single collision event, got %v", events)
	}
}

func TestStepCollisionUsesInscribedCircle(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(100, 300)
	w.Ball.Velocity = geom.V(0, -cfg.Gravity)

	// Goalpost is 20x80: the collision circle has radius 10 even though
	// the box extends 40 units vertically. A ball 30 units above the
	// center overlaps the box but not the inscribed circle.
	w.Obstacles = append(w.Obstacles, Obstacle{
		Position: geom.V(100, 330),
		Kind:     KindGoalpost,
		Width:    20,
		Height:   80,
	})

	rng := rand.New(rand.NewSource(1))
	events := Step(&w, cfg, rng)

	if w.Phase != PhasePlaying {
		t.Error("ball outside the inscribed circle should not collide")
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestObstacleKindSizes(t *testing.T) {
	cases := []struct {
		kind ObstacleKind
		w, h float64
	}{
		{KindCone, 30, 40},
		{KindGoalpost, 20, 80},
		{KindDefender, 40, 60},
	}
	for _, c := range cases {
		w, h := c.kind.Size()
		if w != c.w || h != c.h {
			t.Errorf("%s: expected %fx%f, got %fx%f", c.kind, c.w, c.h, w, h)
		}
	}
}

func TestSpawnedObstacleDimensionsFixed(t *testing.T) {
	cfg := DefaultTuning()
	rng := rand.New(rand.NewSource(99))

	// Regardless of side or roll, a goalpost is always 20x80.
	for i := 0; i < 1000; i++ {
		o := spawnObstacle(cfg, 1.0, rng)
		w, h := o.Kind.Size()
		if o.Width != w || o.Height != h {
			t.Fatalf("spawned %s with %fx%f, want %fx%f", o.Kind, o.Width, o.Height, w, h)
		}
		if o.Velocity.Y != 0 {
			t.Fatalf("obstacle velocity should be horizontal only, got vy=%f", o.Velocity.Y)
		}
		if o.Position.X < 0 && o.Velocity.X <= 0 {
			t.Fatal("left-spawned obstacle should move right")
		}
		if o.Position.X > cfg.ScreenW && o.Velocity.X >= 0 {
			t.Fatal("right-spawned obstacle should move left")
		}
		if o.Position.Y < cfg.SpawnEdgeInset || o.Position.Y > cfg.ScreenH-cfg.SpawnEdgeInset {
			t.Fatalf("spawn offset %f outside band", o.Position.Y)
		}
	}
}

func TestStepCullWindow(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(50, 200)
	w.Ball.Velocity = geom.V(0, -1) // stay off the ground

	// One obstacle moving out, one staying in.
	w.Obstacles = append(w.Obstacles,
		Obstacle{Position: geom.V(-99, 300), Velocity: geom.V(-5, 0), Kind: KindCone, Width: 30, Height: 40},
		Obstacle{Position: geom.V(200, 300), Velocity: geom.V(-2, 0), Kind: KindCone, Width: 30, Height: 40},
	)
	w.Coins = append(w.Coins,
		Coin{Position: geom.V(cfg.ScreenW + 99, 300), Velocity: geom.V(5, 0), Radius: CoinRadius, Value: 1},
	)

	rng := rand.New(rand.NewSource(1))
	Step(&w, cfg, rng)

	if len(w.Obstacles) != 1 {
		t.Fatalf("expected 1 surviving obstacle, got %d", len(w.Obstacles))
	}
	if len(w.Coins) != 0 {
		t.Fatalf("expected coin to be culled, got %d", len(w.Coins))
	}

	// Nothing retained outside the window after a cull pass.
	for _, o := range w.Obstacles {
		if o.Position.X <= -cfg.CullMargin || o.Position.X >= cfg.ScreenW+cfg.CullMargin {
			t.Errorf("obstacle retained outside cull window at x=%f", o.Position.X)
		}
	}
}

func TestStepCoinCollection(t *testing.T) {
	cfg := quietTuning()
	w := playingWorld(cfg)
	w.Ball.Position = geom.V(187, 300)
	w.Ball.Velocity = geom.V(0, -cfg.Gravity)

	w.Coins = append(w.Coins,
		Coin{Position: geom.V(190, 302), Velocity: geom.V(0, 0), Radius: CoinRadius, Value: 5},
		Coin{Position: geom.V(300, 300), Velocity: geom.V(0, 0), Radius: CoinRadius, Value: 1},
	)

	rng := rand.New(rand.NewSource(1))
	events := Step(&w, cfg, rng)

	if len(events) != 1 || events[0].Kind != EventCoinCollected || events[0].Value != 5 {
		t.Fatalf("expected one coin_collected event with value 5, got %v", events)
	}
	if w.RunCoins != 5 {
		t.Errorf("run total should accumulate immediately, got %d", w.RunCoins)
	}
	if len(w.Coins) != 1 {
		t.Errorf("collected coin should be removed, %d coins remain", len(w.Coins))
	}
	if w.Phase != PhasePlaying {
		t.Error("coin collection should not end the run")
	}
}

func TestSpawnCoinValueDistribution(t *testing.T) {
	cfg := DefaultTuning()
	rng := rand.New(rand.NewSource(2024))

	const n = 10000
	fives := 0
	for i := 0; i < n; i++ {
		c := spawnCoin(cfg, 1.0, rng)
		switch c.Value {
		case 5:
			fives++
		case 1:
		default:
			t.Fatalf("unexpected coin value %d", c.Value)
		}
		if c.Radius != CoinRadius {
			t.Fatalf("coin radius should be %f, got %f", CoinRadius, c.Radius)
		}
	}

	// 20% nominal; allow a generous band for the seeded sample.
	ratio := float64(fives) / n
	if ratio < 0.17 || ratio > 0.23 {
		t.Errorf("value=5 frequency %f outside tolerance of 0.2", ratio)
	}
}

func TestStepDeterministicWithSeed(t *testing.T) {
	cfg := DefaultTuning()

	run := func(seed int64) (World, int) {
		w := playingWorld(cfg)
		rng := rand.New(rand.NewSource(seed))
		ticks := 0
		for i := 0; i < 600; i++ {
			if w.Phase != PhasePlaying {
				break
			}
			if i%20 == 0 {
				w.Ball.Velocity = ApplyTap(w.Ball, w.Ball.Position.X+50, 0, cfg)
			}
			Step(&w, cfg, rng)
			ticks++
		}
		return w, ticks
	}

	w1, t1 := run(42)
	w2, t2 := run(42)

	if t1 != t2 {
		t.Fatalf("tick counts differ: %d vs %d", t1, t2)
	}
	if w1.Score != w2.Score || w1.RunCoins != w2.RunCoins {
		t.Errorf("world state diverged: score %d/%d coins %d/%d", w1.Score, w2.Score, w1.RunCoins, w2.RunCoins)
	}
	if len(w1.Obstacles) != len(w2.Obstacles) || len(w1.Coins) != len(w2.Coins) {
		t.Errorf("entity counts diverged")
	}
}
