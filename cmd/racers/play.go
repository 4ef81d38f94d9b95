package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/platform/tui"
	"github.com/vovakirdan/pixel-racers/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in this terminal",
	Long: `Start Pixel Racers in this terminal.

Controls:
  Up/Down     - Accelerate/Brake
  Left/Right  - Steer
  S           - Start race
  I           - Instructions
  M           - Toggle infinite mode
  P           - Pause/Resume
  B           - Back (abandons a paused race)
  Q           - End the race as a win
  C           - Continue after game over or win
  Tab         - Results of this session
  Esc/Ctrl+C  - Quit

Difficulty options:
  easy   - Start at lowest difficulty, lighter crash penalties
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, heavier crash penalties
  fixed  - No progression, stays at config's initial level

Examples:
  racers play
  racers play --difficulty easy
  racers play --seed 42 --log-file racers.log --log-level debug
  racers play --config ./my-racers.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRacersConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard, "racers")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tracer, flush := newTracer(logger)
	defer flush()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open the results ledger for this run
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results ledger", "error", err)
		// Continue without results - the race still works
		store = nil
	}

	score, runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Tracer: tracer,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final Score: %d\n", score)
}
