package config

import (
	_ "embed"

	"kickup/internal/monetize"
	"kickup/internal/sim"
)

//go:embed defaults/kickup.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. Kept in sync
// with defaults/kickup.yaml and the simulation's DefaultTuning; used as
// the last-resort fallback if the embedded YAML fails to parse.
func Default() Config {
	t := sim.DefaultTuning()
	return Config{
		Pitch: Pitch{
			Width:  t.ScreenW,
			Height: t.ScreenH,
		},
		Physics: Physics{
			Gravity:         t.Gravity,
			DampingX:        t.DampingX,
			DampingY:        t.DampingY,
			WallRestitution: t.WallRestitution,
			BallRadius:      t.BallRadius,
		},
		Input: Input{
			FlapImpulse:     t.FlapImpulse,
			TapForce:        t.TapForce,
			TapRetention:    t.TapRetention,
			MaxVelX:         t.MaxVelX,
			MaxVelY:         t.MaxVelY,
			ContinueImpulse: t.ContinueImpulse,
		},
		Spawning: Spawning{
			BaseObstacleSpeed: t.BaseObstacleSpeed,
			ObstacleSpawnRate: t.ObstacleSpawnRate,
			CoinSpawnRate:     t.CoinSpawnRate,
			CullMargin:        t.CullMargin,
			SpawnEdgeInset:    t.SpawnEdgeInset,
		},
		Monetize: monetize.Config{
			OfferContinueWhenAdsRemoved: true,
		},
	}
}
