package sim

// Tuning holds the physics and spawn constants for a run. It is passed
// explicitly into the simulation instead of living in package-level
// globals so tests can run with deterministic, custom values.
//
// The damping and tap-force constants follow the "simple" tuning set:
// per-axis damping (0.95 horizontal, 0.99 vertical) and a fixed
// directional tap force. See DESIGN.md for the choice rationale.
type Tuning struct {
	ScreenW float64 // Pitch width in world units
	ScreenH float64 // Pitch height in world units

	Gravity         float64 // Downward acceleration per tick
	DampingX        float64 // Horizontal velocity retention per tick
	DampingY        float64 // Vertical velocity retention per tick
	WallRestitution float64 // Velocity reversal factor on wall bounce

	BallRadius float64

	FlapImpulse  float64 // Vertical velocity set on tap (negative = up)
	TapForce     float64 // Horizontal force magnitude selected by tap side
	TapRetention float64 // Fraction of prior horizontal velocity kept on tap
	MaxVelX      float64 // Horizontal speed cap after a tap
	MaxVelY      float64 // Vertical speed cap after a tap

	BaseObstacleSpeed float64 // Obstacle speed before difficulty scaling
	ObstacleSpawnRate float64 // Per-tick spawn probability before scaling
	CoinSpawnRate     float64 // Per-tick coin spawn probability (unscaled)

	CullMargin      float64 // Off-screen retention window beyond each edge
	SpawnEdgeInset  float64 // Vertical inset for spawn offsets
	ContinueImpulse float64 // Upward boost granted on watch-ad continue
}

// DefaultTuning returns the canonical constants. The pitch is a fixed
// 375x667 logical area; the terminal layer projects it to cells.
func DefaultTuning() Tuning {
	return Tuning{
		ScreenW: 375,
		ScreenH: 667,

		Gravity:         0.3,
		DampingX:        0.95,
		DampingY:        0.99,
		WallRestitution: 0.7,

		BallRadius: 16,

		FlapImpulse:  -5,
		TapForce:     2,
		TapRetention: 0.7,
		MaxVelX:      4,
		MaxVelY:      8,

		BaseObstacleSpeed: 2.5,
		ObstacleSpawnRate: 0.02,
		CoinSpawnRate:     0.005,

		CullMargin:      100,
		SpawnEdgeInset:  100,
		ContinueImpulse: -6,
	}
}
