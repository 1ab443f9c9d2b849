// Package config provides YAML-based tuning configuration for kickup.
package config

import (
	"kickup/internal/monetize"
	"kickup/internal/sim"
)

// Config is the full game configuration file.
type Config struct {
	Pitch    Pitch           `yaml:"pitch"`
	Physics  Physics         `yaml:"physics"`
	Input    Input           `yaml:"input"`
	Spawning Spawning        `yaml:"spawning"`
	Monetize monetize.Config `yaml:"monetize"`
}

// Pitch defines the logical play area. The terminal layer projects
// these world units onto cells.
type Pitch struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the per-tick ball kinematics constants.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	DampingX        float64 `yaml:"damping_x"`
	DampingY        float64 `yaml:"damping_y"`
	WallRestitution float64 `yaml:"wall_restitution"`
	BallRadius      float64 `yaml:"ball_radius"`
}

// Input defines the tap-to-impulse mapping constants.
type Input struct {
	FlapImpulse     float64 `yaml:"flap_impulse"`
	TapForce        float64 `yaml:"tap_force"`
	TapRetention    float64 `yaml:"tap_retention"`
	MaxVelX         float64 `yaml:"max_vel_x"`
	MaxVelY         float64 `yaml:"max_vel_y"`
	ContinueImpulse float64 `yaml:"continue_impulse"`
}

// Spawning defines obstacle and coin spawn behavior before difficulty
// scaling.
type Spawning struct {
	BaseObstacleSpeed float64 `yaml:"base_obstacle_speed"`
	ObstacleSpawnRate float64 `yaml:"obstacle_spawn_rate"`
	CoinSpawnRate     float64 `yaml:"coin_spawn_rate"`
	CullMargin        float64 `yaml:"cull_margin"`
	SpawnEdgeInset    float64 `yaml:"spawn_edge_inset"`
}

// Tuning converts the file values into the simulation's tuning struct.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		ScreenW: c.Pitch.Width,
		ScreenH: c.Pitch.Height,

		Gravity:         c.Physics.Gravity,
		DampingX:        c.Physics.DampingX,
		DampingY:        c.Physics.DampingY,
		WallRestitution: c.Physics.WallRestitution,
		BallRadius:      c.Physics.BallRadius,

		FlapImpulse:     c.Input.FlapImpulse,
		TapForce:        c.Input.TapForce,
		TapRetention:    c.Input.TapRetention,
		MaxVelX:         c.Input.MaxVelX,
		MaxVelY:         c.Input.MaxVelY,
		ContinueImpulse: c.Input.ContinueImpulse,

		BaseObstacleSpeed: c.Spawning.BaseObstacleSpeed,
		ObstacleSpawnRate: c.Spawning.ObstacleSpawnRate,
		CoinSpawnRate:     c.Spawning.CoinSpawnRate,
		CullMargin:        c.Spawning.CullMargin,
		SpawnEdgeInset:    c.Spawning.SpawnEdgeInset,
	}
}
