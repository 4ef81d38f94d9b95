package race

import (
	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
)

var playerSprite = []string{
	"╔▲╗",
	"███",
	"╚═╝",
}

// PlayerCar is the car the user drives. It stays on a fixed row near the
// bottom of the screen and moves sideways within the road.
type PlayerCar struct {
	cfg    config.PlayerConfig
	layout Layout
	x, y   int // cells
	speed  int // units per frame
	flame  bool
}

// NewPlayerCar creates the car in its start lane at start speed.
func NewPlayerCar(cfg config.PlayerConfig, layout Layout) *PlayerCar {
	p := &PlayerCar{cfg: cfg, layout: layout}
	p.Respawn()
	return p
}

// Respawn puts the car back in its start lane at start speed.
func (p *PlayerCar) Respawn() {
	p.x = p.layout.LaneX(p.cfg.StartLane, p.cfg.Width)
	p.y = max(0, p.layout.ScreenH-p.cfg.Height-1)
	p.speed = core.Clamp(p.cfg.StartSpeed, p.cfg.MinSpeed, p.cfg.MaxSpeed)
	p.flame = false
}

// Speed returns the current speed in units per frame.
func (p *PlayerCar) Speed() int {
	return p.speed
}

// SetSpeed sets the speed, clamped to the configured range.
func (p *PlayerCar) SetSpeed(v int) {
	p.speed = core.Clamp(v, p.cfg.MinSpeed, p.cfg.MaxSpeed)
}

// Move accelerates, brakes or steers. Other keys are ignored.
func (p *PlayerCar) Move(direction core.Key) {
	switch direction {
	case core.KeyUp:
		p.SetSpeed(p.speed + 1)
	case core.KeyDown:
		p.SetSpeed(p.speed - 1)
	case core.KeyLeft:
		p.x = max(p.layout.MinX(), p.x-p.cfg.SteerStep)
	case core.KeyRight:
		p.x = min(p.layout.MaxX(p.cfg.Width), p.x+p.cfg.SteerStep)
	}
}

// Update animates the exhaust from the road offset.
func (p *PlayerCar) Update(offset int) {
	p.flame = (offset/p.layout.Units)%2 == 0
}

// Bounds returns the collision box.
func (p *PlayerCar) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.cfg.Width, p.cfg.Height)
}

// Render draws the car and its exhaust.
func (p *PlayerCar) Render(dst *core.Screen) {
	drawSprite(dst, p.x, p.y, p.cfg.Width, p.cfg.Height, playerSprite, core.ColorPlayer)
	if p.flame && p.speed > p.cfg.MinSpeed {
		dst.SetColor(p.x+p.cfg.Width/2, p.y+p.cfg.Height, '░', core.ColorOrange)
	}
}
