// racers is Pixel Racers, a top-down lane racer for the terminal.
//
// Usage:
//
//	racers play      - Race in this terminal
//	racers serve     - Start SSH server for remote play
//	racers sim       - Run a scripted race headless and print the score
//	racers version   - Print the version
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible races
//	--config <path>       - Custom race config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/telemetry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagEnvFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racers",
	Short: "Pixel Racers - Dodge traffic in your terminal",
	Long: `Pixel Racers is a top-down lane racer for the terminal.

Steer around AI traffic and road hazards, finish three laps to win,
or switch to infinite mode and drive until you crash.

Available commands:
  play     - Race in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a scripted race without a terminal
  version  - Print the version

Examples:
  racers play
  racers play --difficulty hard
  racers serve --ssh :2222
  racers sim --keys S,LEFT,UP,UP --frames 600`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom race config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Optional .env file with RACERS_* defaults")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnvironment reads the .env file and fills flags the user did not set
// from RACERS_* variables.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(flagEnvFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = config.EnvInt(config.EnvFPS, flagFPS)
	}
	if !flags.Changed("config") {
		flagConfig = config.EnvString(config.EnvConfig, flagConfig)
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = config.EnvString(config.EnvDifficulty, flagDifficulty)
	}
	if !flags.Changed("log-level") {
		flagLogLevel = config.EnvString(config.EnvLogLevel, flagLogLevel)
	}
	return nil
}

// loadRacersConfig loads the race config and applies the difficulty preset.
func loadRacersConfig() (config.RacersConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RacersConfig{}, err
	}
	cfg, err := config.LoadRacers(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates a logger writing to --log-file, or to fallback when no file is set.
// The returned function closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// newTracer installs OTLP tracing when an endpoint is configured.
// The returned function flushes pending spans.
func newTracer(logger *log.Logger) (trace.Tracer, func()) {
	if !telemetry.Enabled() {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(context.Background())
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		return telemetry.NoopTracer(), func() {}
	}
	return telemetry.Tracer("racers"), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("could not flush traces", "error", err)
		}
	}
}
