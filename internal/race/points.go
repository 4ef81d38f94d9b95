package race

import "github.com/vovakirdan/pixel-racers/internal/config"

// Points is the race score accumulator.
// Distance is converted to points at a fixed rate; the remainder carries over.
type Points struct {
	cfg   config.PointsConfig
	score int
	speed int
	carry int // units not yet converted to points
}

// NewPoints creates an accumulator at zero.
func NewPoints(cfg config.PointsConfig) *Points {
	cfg.DistancePerPoint = max(1, cfg.DistancePerPoint)
	return &Points{cfg: cfg}
}

// Score returns the current score.
func (p *Points) Score() int {
	return p.score
}

// UpdateSpeed sets the speed used by the next Update.
func (p *Points) UpdateSpeed(speed int) {
	p.speed = max(0, speed)
}

// Update adds the points for one frame at the current speed.
func (p *Points) Update() {
	p.carry += p.speed
	p.score += p.carry / p.cfg.DistancePerPoint
	p.carry %= p.cfg.DistancePerPoint
}

// AddCarPass awards an overtaken car.
func (p *Points) AddCarPass() {
	p.score += p.cfg.CarPass
}

// AddObstacleAvoided awards an obstacle left behind.
func (p *Points) AddObstacleAvoided() {
	p.score += p.cfg.ObstacleAvoided
}

// Deduct removes points, never going below zero.
func (p *Points) Deduct(points int) {
	p.score = max(0, p.score-max(0, points))
}
