package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CellSize: 20,
			Width:    800,
			Height:   600,
		},
		TickRate: 30,
		Difficulty: DifficultySpeeds{
			Easy:   10,
			Medium: 12,
			Hard:   15,
		},
		Movement: MovementConfig{
			BaseThreshold: 30,
			SpeedFactor:   2,
			MinThreshold:  1,
			SlowmoFactor:  2,
		},
		Snake: SnakeStart{
			StartX:          100,
			StartY:          100,
			StartLength:     3,
			ShrinkMinLength: 3,
		},
		PowerUps: PowerUpDurations{
			SpeedBoost:      300, // 10 seconds at 30 ticks/s
			ScoreMultiplier: 300,
			Shrink:          200,
			Slowmo:          250,
			DoubleScore:     300,
			Ghost:           200,
		},
		Food: FoodConfig{
			SpecialEvery:  5,
			SpawnAttempts: 100,
			Points: FoodPoints{
				Normal:      10,
				Special:     25,
				Super:       50,
				Shrink:      15,
				Slowmo:      20,
				DoubleScore: 30,
				Ghost:       40,
			},
			Lifetimes: FoodLifetimes{
				Special:     300,
				Super:       150,
				Shrink:      200,
				Slowmo:      200,
				DoubleScore: 200,
				Ghost:       150,
			},
			Weights: []FoodWeight{
				{Kind: "special", Weight: 35},
				{Kind: "super", Weight: 15},
				{Kind: "shrink", Weight: 12},
				{Kind: "slowmo", Weight: 12},
				{Kind: "double_score", Weight: 13},
				{Kind: "ghost", Weight: 13},
			},
		},
		Obstacles: ObstacleConfig{
			Max:               15,
			MoveCooldown:      60, // 2 seconds at 30 ticks/s
			MovingChance:      0.3,
			PlacementAttempts: 50,
			ClassicEvery:      100,
			ChallengeLayout: []ObstacleSpec{
				{X: 200, Y: 200, Kind: "static"},
				{X: 400, Y: 300, Kind: "static"},
				{X: 600, Y: 200, Kind: "static"},
				{X: 300, Y: 400, Kind: "moving"},
				{X: 500, Y: 440, Kind: "moving"},
			},
		},
		TimeAttack: TimeAttackConfig{
			DurationSeconds: 120,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
