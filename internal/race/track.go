// Package race implements the things a race runs on: the road, the player's
// car, AI traffic, obstacles, the score accumulator and collision detection.
package race

import (
	"math/rand"

	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/game"
)

var trafficColors = []core.Color{core.ColorAIBlue, core.ColorAIGreen, core.ColorAIYellow}

// NewTrack builds a track in its initial spawn configuration.
// The same config, screen size and seed always produce the same race.
func NewTrack(cfg config.RacersConfig, rt core.RuntimeConfig) game.Track {
	layout := NewLayout(cfg.Road, rt.ScreenW, rt.ScreenH)
	road := NewRoad(layout)
	sp := &spawner{
		rng:        rand.New(rand.NewSource(rt.Seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		road:       road,
		layout:     layout,
	}

	cars := make([]game.AICar, 0, len(cfg.Traffic.Cars))
	for i, def := range cfg.Traffic.Cars {
		color := trafficColors[i%len(trafficColors)]
		cars = append(cars, newAICar(def, cfg.Traffic, cfg.Player.MaxSpeed-1, color, sp))
	}

	obstacles := make([]game.Obstacle, 0, len(cfg.Obstacles.Spawns))
	for _, def := range cfg.Obstacles.Spawns {
		obstacles = append(obstacles, newObstacle(def, cfg.Obstacles, sp))
	}

	return game.Track{
		Road:      road,
		Player:    NewPlayerCar(cfg.Player, layout),
		Cars:      cars,
		Obstacles: obstacles,
		Points:    NewPoints(cfg.Points),
		Collider:  Collision{},
	}
}

// Factory returns a track factory for the state machine.
// rt is read on every call, so a resize applies from the next race on.
// Each race gets the next seed so restarts do not replay the same traffic.
func Factory(cfg config.RacersConfig, rt *core.RuntimeConfig) game.TrackFactory {
	races := int64(0)
	return func() game.Track {
		r := *rt
		r.Seed += races
		races++
		return NewTrack(cfg, r)
	}
}
