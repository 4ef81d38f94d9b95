package race

import (
	"github.com/vovakirdan/pixel-racers/internal/config"
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// Layout places the road on the screen.
// Vertical positions are kept in sub-cell units so slow speeds still move.
type Layout struct {
	RoadX     int // first column inside the road
	Lanes     int
	LaneWidth int
	ScreenW   int
	ScreenH   int
	Units     int // units per cell
}

// NewLayout centers the road horizontally on a screen of the given size.
func NewLayout(cfg config.RoadConfig, screenW, screenH int) Layout {
	roadW := cfg.Lanes * cfg.LaneWidth
	return Layout{
		RoadX:     max(1, (screenW-roadW)/2),
		Lanes:     cfg.Lanes,
		LaneWidth: cfg.LaneWidth,
		ScreenW:   screenW,
		ScreenH:   screenH,
		Units:     max(1, cfg.UnitsPerCell),
	}
}

// RoadW returns the road width in cells, borders excluded.
func (l Layout) RoadW() int {
	return l.Lanes * l.LaneWidth
}

// LaneX returns the x of an entity of the given width centered in lane.
func (l Layout) LaneX(lane, width int) int {
	lane = core.Clamp(lane, 0, l.Lanes-1)
	return l.RoadX + lane*l.LaneWidth + (l.LaneWidth-width)/2
}

// LaneOf returns the lane holding the center of an entity at x.
func (l Layout) LaneOf(x, width int) int {
	center := x + width/2 - l.RoadX
	return core.Clamp(center/l.LaneWidth, 0, l.Lanes-1)
}

// MinX returns the leftmost x an entity can take on the road.
func (l Layout) MinX() int { return l.RoadX }

// MaxX returns the rightmost x an entity of the given width can take on the road.
func (l Layout) MaxX(width int) int { return l.RoadX + l.RoadW() - width }

// Cell converts a unit position to a cell, rounding toward negative infinity.
func (l Layout) Cell(units int) int {
	c := units / l.Units
	if units < 0 && units%l.Units != 0 {
		c--
	}
	return c
}

// drawSprite draws rows of runes at (x, y), or a solid block when the
// sprite does not match the requested size. Spaces are transparent.
func drawSprite(dst *core.Screen, x, y, w, h int, sprite []string, c core.Color) {
	if len(sprite) != h || len([]rune(sprite[0])) != w {
		dst.DrawRect(core.NewRect(x, y, w, h), '█', c)
		return
	}
	for dy, row := range sprite {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetColor(x+dx, y+dy, r, c)
			}
			dx++
		}
	}
}
