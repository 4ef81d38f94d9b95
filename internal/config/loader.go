package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that supply defaults for the CLI flags.
const (
	EnvConfig     = "RACERS_CONFIG"
	EnvDifficulty = "RACERS_DIFFICULTY"
	EnvLogLevel   = "RACERS_LOG_LEVEL"
	EnvFPS        = "RACERS_FPS"
)

// LoadRacers loads the race configuration.
// Search order: customPath -> ~/.racers/configs/racers.yaml -> ./configs/racers.yaml -> embedded default
func LoadRacers(customPath string) (RacersConfig, error) {
	cfg := DefaultRacersConfig()

	// A custom path must load, the other locations are optional
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("racers.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	if data, err := os.ReadFile("configs/racers.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	var embedded RacersConfig
	if err := yaml.Unmarshal(defaultRacersYAML, &embedded); err != nil {
		return DefaultRacersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// Validate rejects configurations the race cannot run with.
func (c RacersConfig) Validate() error {
	var errs []error
	if c.Road.Lanes < 1 {
		errs = append(errs, errors.New("road.lanes must be at least 1"))
	}
	if c.Road.LaneWidth < c.Player.Width {
		errs = append(errs, errors.New("road.lane_width must fit the player car"))
	}
	if c.Road.UnitsPerCell < 1 {
		errs = append(errs, errors.New("road.units_per_cell must be positive"))
	}
	if c.Player.MinSpeed < 0 || c.Player.MinSpeed > c.Player.MaxSpeed {
		errs = append(errs, fmt.Errorf("player speed range [%d, %d] is invalid", c.Player.MinSpeed, c.Player.MaxSpeed))
	}
	if c.Points.DistancePerPoint < 1 {
		errs = append(errs, errors.New("points.distance_per_point must be positive"))
	}
	if c.Collision.SpeedPenalty < 0 || c.Collision.ScorePenalty < 0 {
		errs = append(errs, errors.New("collision penalties must not be negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RacersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Collision.ScorePenalty = 25
		cfg.Collision.SpeedPenalty = 2
	case DifficultyHard:
		cfg.Collision.ScorePenalty = 100
		cfg.Collision.SpeedPenalty = 4
	}
}

// LoadEnv reads an optional .env file into the process environment.
// A missing file is not an error.
func LoadEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return nil
}

// EnvString returns the environment value for key, or def when unset.
func EnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// EnvInt returns the integer environment value for key, or def when unset or malformed.
func EnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racers", "configs", filename)
}
