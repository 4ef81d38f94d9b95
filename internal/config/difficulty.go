package config

import "math"

// DifficultyManager calculates AI traffic parameters from race progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for the given progress.
// distance is in cells travelled, frames counts race frames.
func (d *DifficultyManager) Level(distance, frames int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = float64(distance) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales an AI base speed by the current level, never below baseSpeed.
func (d *DifficultyManager) Speed(baseSpeed, distance, frames int) int {
	level := d.Level(distance, frames)
	return int(math.Round(float64(baseSpeed) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
}

// Gap shrinks a respawn gap as difficulty rises, keeping at least minGap.
func (d *DifficultyManager) Gap(baseGap, minGap, distance, frames int) int {
	level := d.Level(distance, frames)
	reduction := int(level * float64(d.cfg.Scaling.GapReduction))
	return max(baseGap-reduction, minGap)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
