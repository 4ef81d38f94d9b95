package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/game"
	"github.com/vovakirdan/pixel-racers/internal/race"
	"github.com/vovakirdan/pixel-racers/internal/storage"
)

var (
	flagKeys     string
	flagEvery    int
	flagFrames   int
	flagWidth    int
	flagHeight   int
	flagRealtime bool
	flagShow     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted race without a terminal",
	Long: `Run the race loop headless with a scripted key sequence and print the
final score. With a fixed --seed the result is reproducible.

Keys are comma-separated: single letters (S, P, M, Q, C, ...), arrows
(UP, DOWN, LEFT, RIGHT) and "_" for a frame without input. One key is
delivered every --every frames.

Examples:
  racers sim --seed 1 --keys S --frames 600
  racers sim --seed 7 --keys M,S,LEFT,UP,UP --every 10 --frames 3000
  racers sim --keys S,_,_,Q --show`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagKeys, "keys", "S", "Comma-separated key script")
	simCmd.Flags().IntVar(&flagEvery, "every", 1, "Frames between scripted keys")
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Sleep between frames at --fps")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the last frame")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadRacersConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	keys, err := game.ParseKeys(flagKeys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "racers-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tracer, flush := newTracer(logger)
	defer flush()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results ledger", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	rt := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	session := uuid.NewString()
	opts := []game.Option{
		game.WithLogger(logger.With("session", session)),
		game.WithTracer(tracer),
	}
	if store != nil {
		opts = append(opts, game.WithRaceEndHook(func(res game.RaceResult) {
			if _, err := store.SaveResult(session, res); err != nil {
				logger.Warn("could not save race result", "error", err)
			}
		}))
	}
	machine := game.NewMachine(race.Factory(cfg, &rt), game.RulesFromConfig(cfg), opts...)

	// The loop stops itself after the requested number of frames
	var loop *game.Loop
	frames := 0
	loop = game.NewLoop(machine, game.NewScriptedInput(keys, flagEvery), rt,
		game.WithSleep(func(d time.Duration) {
			frames++
			if frames >= flagFrames {
				loop.RequestQuit()
			}
			if flagRealtime {
				time.Sleep(d)
			}
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	score := loop.Run(ctx)

	if flagShow {
		fmt.Println(loop.Screen().String())
	}
	fmt.Printf("State: %s\n", machine.State())
	fmt.Printf("Frames: %d\n", frames)

	// A race still on the track is closed so its span and result are recorded
	machine.Abandon()
	if store != nil {
		printSessionResults(store, session)
	}
	fmt.Printf("Final Score: %d\n", score)
}

// printSessionResults lists the races finished during the run.
func printSessionResults(store *storage.Store, session string) {
	entries, err := store.SessionResults(session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load results: %v\n", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	fmt.Println("Races:")
	for i, e := range entries {
		fmt.Printf("  %d. %-9s %-8s score %-6d lap %d\n", i+1, e.Outcome, e.Mode, e.Score, e.Lap)
	}
}
