package race

import (
	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
	"github.com/vovakirdan/pixel-racers/internal/game"
)

var aiSprite = []string{
	"╔═╗",
	"███",
	"╚▼╝",
}

// AICar is a computer-driven car. It drives forward at its own speed, so
// on screen it moves by the difference between the player's speed and its own.
type AICar struct {
	cfg      config.TrafficConfig
	def      config.SpawnDef
	layout   Layout
	spawn    *spawner
	color    core.Color
	maxSpeed int

	x, targetX int // cells
	y          int // units
	speed      int
	lastOffset int
}

func newAICar(def config.SpawnDef, cfg config.TrafficConfig, maxSpeed int, color core.Color, sp *spawner) *AICar {
	c := &AICar{
		cfg:      cfg,
		def:      def,
		layout:   sp.layout,
		spawn:    sp,
		color:    color,
		maxSpeed: max(1, maxSpeed),
	}
	c.x = c.layout.LaneX(def.Lane, cfg.Width)
	c.targetX = c.x
	c.y = def.Y * c.layout.Units
	c.speed = min(max(1, def.Speed), c.maxSpeed)
	return c
}

// Update moves the car relative to the player and steers around obstacles.
// offset is the road offset; its change since the last call is the player's speed.
func (c *AICar) Update(offset int, obstacles []game.Obstacle) {
	delta := offset - c.lastOffset
	c.lastOffset = offset
	c.y += delta - c.speed

	// Cars pulling away wait just out of sight.
	if limit := -(c.cfg.MaxGap + c.cfg.Height) * c.layout.Units; c.y < limit {
		c.y = limit
	}

	c.avoid(obstacles)
	switch {
	case c.x < c.targetX:
		c.x++
	case c.x > c.targetX:
		c.x--
	}
}

// avoid retargets to a free adjacent lane when an obstacle is just ahead.
func (c *AICar) avoid(obstacles []game.Obstacle) {
	lane := c.layout.LaneOf(c.targetX, c.cfg.Width)
	top := c.layout.Cell(c.y)
	lookahead := 2 * c.cfg.Height

	if !c.laneBlocked(lane, top-lookahead, top, obstacles) {
		return
	}
	for _, next := range []int{lane - 1, lane + 1} {
		if next < 0 || next >= c.layout.Lanes {
			continue
		}
		if !c.laneBlocked(next, top-lookahead, top+c.cfg.Height, obstacles) {
			c.targetX = c.layout.LaneX(next, c.cfg.Width)
			return
		}
	}
}

// laneBlocked reports whether an obstacle in lane overlaps rows [from, to).
func (c *AICar) laneBlocked(lane, from, to int, obstacles []game.Obstacle) bool {
	for _, o := range obstacles {
		b := o.Bounds()
		if c.layout.LaneOf(b.X, b.W) != lane {
			continue
		}
		if b.Bottom() > from && b.Y < to {
			return true
		}
	}
	return false
}

// OffScreen reports whether the player has left the car behind.
func (c *AICar) OffScreen() bool {
	return c.layout.Cell(c.y) >= c.layout.ScreenH
}

// Respawn places the car in a random lane above the screen with a speed
// scaled by difficulty, kept below the player's top speed.
func (c *AICar) Respawn() {
	gap := c.spawn.gap(c.cfg.MinGap, c.cfg.MaxGap)
	c.x = c.layout.LaneX(c.spawn.lane(), c.cfg.Width)
	c.targetX = c.x
	c.y = -(gap + c.cfg.Height) * c.layout.Units
	c.speed = min(max(1, c.spawn.speed(c.def.Speed)), c.maxSpeed)
}

// Speed returns the car's own speed in units per frame.
func (c *AICar) Speed() int {
	return c.speed
}

// Bounds returns the collision box.
func (c *AICar) Bounds() core.Rect {
	return core.NewRect(c.x, c.layout.Cell(c.y), c.cfg.Width, c.cfg.Height)
}

// Render draws the car.
func (c *AICar) Render(dst *core.Screen) {
	b := c.Bounds()
	drawSprite(dst, b.X, b.Y, b.W, b.H, aiSprite, c.color)
}
