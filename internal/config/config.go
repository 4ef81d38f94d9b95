// Package config provides YAML-based race configuration loading and
// difficulty management for Pixel Racers.
package config

import "fmt"

// RacersConfig contains all tunable parameters of a race.
type RacersConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Player     PlayerConfig     `yaml:"player"`
	Traffic    TrafficConfig    `yaml:"traffic"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Points     PointsConfig     `yaml:"points"`
	Collision  CollisionConfig  `yaml:"collision"`
	Race       RaceConfig       `yaml:"race"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the road layout.
// Positions along the road are tracked in sub-cell units.
type RoadConfig struct {
	Lanes        int `yaml:"lanes"`
	LaneWidth    int `yaml:"lane_width"`
	UnitsPerCell int `yaml:"units_per_cell"`
}

// PlayerConfig defines the player car.
type PlayerConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	StartLane  int `yaml:"start_lane"`
	StartSpeed int `yaml:"start_speed"`
	MinSpeed   int `yaml:"min_speed"`
	MaxSpeed   int `yaml:"max_speed"`
	SteerStep  int `yaml:"steer_step"`
}

// TrafficConfig defines the AI cars.
type TrafficConfig struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Cars   []SpawnDef `yaml:"cars"`
	// MinGap is the smallest respawn distance above the screen, in cells.
	MinGap int `yaml:"min_gap"`
	MaxGap int `yaml:"max_gap"`
}

// ObstacleConfig defines the road hazards.
type ObstacleConfig struct {
	Size   int        `yaml:"size"`
	Spawns []SpawnDef `yaml:"spawns"`
	MinGap int        `yaml:"min_gap"`
	MaxGap int        `yaml:"max_gap"`
}

// SpawnDef is the initial placement of one entity.
// Y is in cells and is normally negative (above the screen).
type SpawnDef struct {
	Lane  int `yaml:"lane"`
	Y     int `yaml:"y"`
	Speed int `yaml:"speed"`
}

// PointsConfig defines the score accumulator.
type PointsConfig struct {
	DistancePerPoint int `yaml:"distance_per_point"` // units travelled per point
	CarPass          int `yaml:"car_pass"`
	ObstacleAvoided  int `yaml:"obstacle_avoided"`
}

// CollisionConfig defines the consequences of a crash.
type CollisionConfig struct {
	SpeedPenalty int `yaml:"speed_penalty"`
	ScorePenalty int `yaml:"score_penalty"`
}

// RaceConfig holds race rules that are not part of the lap logic.
type RaceConfig struct {
	ForceWin bool `yaml:"force_win"` // Q ends the race as a win
}

// DifficultyConfig defines how AI traffic speeds up as the race goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Cells or frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to AI speed factor at max difficulty
	GapReduction    int     `yaml:"gap_reduction"`    // Respawn gap reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. An empty value means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
