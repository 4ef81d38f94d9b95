package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded RacersConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultRacersConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRacersConfig():\n%+v\n%+v", embedded, DefaultRacersConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadRacersCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racers.yaml")
	data := []byte("collision:\n  score_penalty: 75\nrace:\n  force_win: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRacers(path)
	if err != nil {
		t.Fatalf("LoadRacers() failed: %v", err)
	}
	if cfg.Collision.ScorePenalty != 75 {
		t.Errorf("score_penalty = %d, expected 75", cfg.Collision.ScorePenalty)
	}
	if cfg.Race.ForceWin {
		t.Error("force_win should be overridden to false")
	}
	// Unset fields keep their defaults
	if cfg.Player.MaxSpeed != DefaultRacersConfig().Player.MaxSpeed {
		t.Errorf("max_speed = %d, expected default", cfg.Player.MaxSpeed)
	}
}

func TestLoadRacersErrors(t *testing.T) {
	if _, err := LoadRacers(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("road: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRacers(path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  min_speed: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRacers(invalid); err == nil {
		t.Error("expected validation error for min_speed > max_speed")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		scorePenalty int
	}{
		{DifficultyEasy, true, 0.0, 25},
		{DifficultyNormal, true, 0.3, 50},
		{DifficultyHard, true, 0.7, 100},
		{DifficultyFixed, false, 0.0, 50},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRacersConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Collision.ScorePenalty != tc.scorePenalty {
				t.Errorf("ScorePenalty = %d, expected %d", cfg.Collision.ScorePenalty, tc.scorePenalty)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
		{"Hard", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultRacersConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if d.Level(0, 0) != 0 {
		t.Errorf("Level at start = %v, expected 0", d.Level(0, 0))
	}
	if d.Level(cfg.Progression.MaxAt*2, 0) != 1 {
		t.Errorf("Level past max_at should clamp to 1, got %v", d.Level(cfg.Progression.MaxAt*2, 0))
	}
	if got := d.Speed(3, 0, 0); got != 3 {
		t.Errorf("Speed at level 0 = %d, expected 3", got)
	}
	if got := d.Speed(3, cfg.Progression.MaxAt, 0); got != 6 {
		t.Errorf("Speed at max level = %d, expected 6", got)
	}
	if got := d.Gap(10, 4, cfg.Progression.MaxAt, 0); got != 4 {
		t.Errorf("Gap at max level = %d, expected floor 4", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() {
		t.Error("disabled manager should report IsEnabled() == false")
	}
	if fixed.Level(cfg.Progression.MaxAt, 0) != cfg.InitialLevel {
		t.Error("disabled manager should stay at the initial level")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvDifficulty, "hard")

	if EnvInt(EnvFPS, 60) != 30 {
		t.Error("EnvInt should read RACERS_FPS")
	}
	if EnvString(EnvDifficulty, "") != "hard" {
		t.Error("EnvString should read RACERS_DIFFICULTY")
	}
	if EnvString("RACERS_UNSET_FOR_TEST", "fallback") != "fallback" {
		t.Error("EnvString should fall back when unset")
	}

	t.Setenv(EnvFPS, "fast")
	if EnvInt(EnvFPS, 60) != 60 {
		t.Error("EnvInt should fall back on malformed values")
	}
}

func TestLoadEnv(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should not be an error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("RACERS_TEST_LOADENV=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("RACERS_TEST_LOADENV") })
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if os.Getenv("RACERS_TEST_LOADENV") != "yes" {
		t.Error("LoadEnv should populate the environment")
	}
}
