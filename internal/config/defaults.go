package config

import (
	_ "embed"
)

//go:embed defaults/racers.yaml
var defaultRacersYAML []byte

// DefaultRacersConfig returns the built-in configuration.
// It mirrors defaults/racers.yaml and is used if the embedded file fails to parse.
func DefaultRacersConfig() RacersConfig {
	return RacersConfig{
		Road: RoadConfig{
			Lanes:        3,
			LaneWidth:    9,
			UnitsPerCell: 16,
		},
		Player: PlayerConfig{
			Width:      3,
			Height:     3,
			StartLane:  1,
			StartSpeed: 4,
			MinSpeed:   2,
			MaxSpeed:   12,
			SteerStep:  2,
		},
		Traffic: TrafficConfig{
			Width:  3,
			Height: 3,
			MinGap: 4,
			MaxGap: 16,
			Cars: []SpawnDef{
				{Lane: 0, Y: -3, Speed: 3},
				{Lane: 1, Y: -9, Speed: 2},
				{Lane: 2, Y: -15, Speed: 4},
			},
		},
		Obstacles: ObstacleConfig{
			Size:   2,
			MinGap: 6,
			MaxGap: 24,
			Spawns: []SpawnDef{
				{Lane: 0, Y: -6},
				{Lane: 1, Y: -18},
				{Lane: 2, Y: -30},
			},
		},
		Points: PointsConfig{
			DistancePerPoint: 16,
			CarPass:          10,
			ObstacleAvoided:  5,
		},
		Collision: CollisionConfig{
			SpeedPenalty: 3,
			ScorePenalty: 50,
		},
		Race: RaceConfig{
			ForceWin: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    8,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRacersYAML
}
