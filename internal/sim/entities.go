package sim

import (
	"github.com/google/uuid"

	"kickup/internal/geom"
)

// Ball is the player-controlled football. One exists per run.
// Radius stays constant for the lifetime of a run.
type Ball struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Radius   float64
}

// ObstacleKind identifies one of the three obstacle variants.
// The set is closed; every switch over it is exhaustive.
type ObstacleKind int

const (
	KindCone ObstacleKind = iota
	KindGoalpost
	KindDefender
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindCone:
		return "cone"
	case KindGoalpost:
		return "goalpost"
	case KindDefender:
		return "defender"
	default:
		return "unknown"
	}
}

// Size returns the fixed width and height for the kind.
// Dimensions are chosen at spawn and never change.
func (k ObstacleKind) Size() (w, h float64) {
	switch k {
	case KindCone:
		return 30, 40
	case KindGoalpost:
		return 20, 80
	case KindDefender:
		return 40, 60
	default:
		return 30, 40
	}
}

// Obstacle is a hazard sweeping horizontally across the pitch.
type Obstacle struct {
	ID       uuid.UUID
	Position geom.Vec2 // Geometric center
	Velocity geom.Vec2 // Horizontal only
	Kind     ObstacleKind
	Width    float64
	Height   float64
}

// CollisionRadius returns the radius of the circle inscribed in the
// obstacle's bounding box. Collision uses circle-vs-inscribed-circle,
// not exact rectangle intersection.
func (o Obstacle) CollisionRadius() float64 {
	if o.Width < o.Height {
		return o.Width / 2
	}
	return o.Height / 2
}

// CoinRadius is the fixed radius of every coin.
const CoinRadius = 15.0

// Coin is a collectible. Collection removes it from the world immediately.
type Coin struct {
	ID       uuid.UUID
	Position geom.Vec2
	Velocity geom.Vec2
	Radius   float64
	Value    int // 1 or 5
}
