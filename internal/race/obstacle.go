package race

import (
	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// ObstacleChar fills an obstacle's box.
const ObstacleChar = '▓'

// Obstacle is a static hazard. It scrolls down at the player's speed.
type Obstacle struct {
	cfg    config.ObstacleConfig
	layout Layout
	spawn  *spawner
	x      int // cells
	y      int // units
}

func newObstacle(def config.SpawnDef, cfg config.ObstacleConfig, sp *spawner) *Obstacle {
	return &Obstacle{
		cfg:    cfg,
		layout: sp.layout,
		spawn:  sp,
		x:      sp.layout.LaneX(def.Lane, cfg.Size),
		y:      def.Y * sp.layout.Units,
	}
}

// Update scrolls the obstacle by speed units.
func (o *Obstacle) Update(speed int) {
	o.y += max(0, speed)
}

// OffScreen reports whether the obstacle has scrolled past the bottom.
func (o *Obstacle) OffScreen() bool {
	return o.layout.Cell(o.y) >= o.layout.ScreenH
}

// Respawn places the obstacle in a random lane above the screen.
func (o *Obstacle) Respawn() {
	gap := o.spawn.gap(o.cfg.MinGap, o.cfg.MaxGap)
	o.x = o.layout.LaneX(o.spawn.lane(), o.cfg.Size)
	o.y = -(gap + o.cfg.Size) * o.layout.Units
}

// Bounds returns the collision box.
func (o *Obstacle) Bounds() core.Rect {
	return core.NewRect(o.x, o.layout.Cell(o.y), o.cfg.Size, o.cfg.Size)
}

// Render draws the obstacle.
func (o *Obstacle) Render(dst *core.Screen) {
	dst.DrawRect(o.Bounds(), ObstacleChar, core.ColorObstacle)
}
