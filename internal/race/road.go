package race

import "github.com/vovakirdan/pixel-racers/internal/core"

// Road visual characters.
const (
	BorderLeft  = '▐'
	BorderRight = '▌'
	LaneMark    = '¦'
	GrassChar   = '░'
)

// dashPeriod is the length in cells of one lane marking plus its gap.
const dashPeriod = 4

// Road is the scrolling background. It also keeps the race clock
// (distance and frames) that difficulty scaling reads.
type Road struct {
	layout Layout
	offset int // units travelled
	frames int
}

// NewRoad creates a road at offset zero.
func NewRoad(layout Layout) *Road {
	return &Road{layout: layout}
}

// Update advances the road by speed units.
func (r *Road) Update(speed int) {
	r.offset += max(0, speed)
	r.frames++
}

// Offset returns the total distance travelled in units.
func (r *Road) Offset() int {
	return r.offset
}

// Distance returns the total distance travelled in cells.
func (r *Road) Distance() int {
	return r.offset / r.layout.Units
}

// Frames returns the number of frames the road has advanced.
func (r *Road) Frames() int {
	return r.frames
}

// Render draws grass, borders and scrolling lane markings.
func (r *Road) Render(dst *core.Screen) {
	l := r.layout
	left := l.RoadX - 1
	right := l.RoadX + l.RoadW()
	scroll := r.Distance()

	dst.DrawVLine(left, 0, dst.Height(), BorderLeft, core.ColorRoad)
	dst.DrawVLine(right, 0, dst.Height(), BorderRight, core.ColorRoad)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < left; x++ {
			dst.SetColor(x, y, GrassChar, core.ColorGreen)
		}
		for x := right + 1; x < dst.Width(); x++ {
			dst.SetColor(x, y, GrassChar, core.ColorGreen)
		}
		// Markings move down the screen as the offset grows.
		if ((y-scroll)%dashPeriod+dashPeriod)%dashPeriod < dashPeriod/2 {
			for lane := 1; lane < l.Lanes; lane++ {
				dst.SetColor(l.RoadX+lane*l.LaneWidth, y, LaneMark, core.ColorWhite)
			}
		}
	}
}
