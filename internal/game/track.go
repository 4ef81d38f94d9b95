package game

import (
	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// ScoreKeeper accumulates the race score.
type ScoreKeeper interface {
	Score() int
	UpdateSpeed(speed int)
	Update()
	AddCarPass()
	AddObstacleAvoided()
	// Deduct removes points, never going below zero.
	Deduct(points int)
}

// Road is the scrolling background. Offset is the total distance travelled.
type Road interface {
	Update(speed int)
	Offset() int
	Render(dst *core.Screen)
}

// Player is the car the user drives.
type Player interface {
	core.Bounded
	Speed() int
	SetSpeed(v int)
	Move(direction core.Key)
	Update(offset int)
	Render(dst *core.Screen)
}

// AICar is a computer-driven car sharing the road.
type AICar interface {
	core.Bounded
	Update(offset int, obstacles []Obstacle)
	OffScreen() bool
	Respawn()
	Render(dst *core.Screen)
}

// Obstacle is a static hazard on the road.
type Obstacle interface {
	core.Bounded
	Update(speed int)
	OffScreen() bool
	Respawn()
	Render(dst *core.Screen)
}

// Collider reports what the player is touching.
type Collider interface {
	CheckAll(player Player, cars []AICar, obstacles []Obstacle) (hitAI, hitObstacle bool)
}

// Track is everything a single race runs on.
type Track struct {
	Road      Road
	Player    Player
	Cars      []AICar
	Obstacles []Obstacle
	Points    ScoreKeeper
	Collider  Collider
}

// TrackFactory builds a track in its initial spawn configuration.
type TrackFactory func() Track

// Rules are the collision consequences and race switches.
type Rules struct {
	MinSpeed     int  // floor for the speed penalty
	SpeedPenalty int  // speed lost on a crash
	ScorePenalty int  // points lost on a crash
	ForceWin     bool // Q ends a race as a win
}

// RulesFromConfig extracts the rules from a race configuration.
func RulesFromConfig(cfg config.RacersConfig) Rules {
	return Rules{
		MinSpeed:     cfg.Player.MinSpeed,
		SpeedPenalty: cfg.Collision.SpeedPenalty,
		ScorePenalty: cfg.Collision.ScorePenalty,
		ForceWin:     cfg.Race.ForceWin,
	}
}
