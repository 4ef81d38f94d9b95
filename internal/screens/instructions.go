package screens

import (
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// ScrollResetValue is where the instructions marquee wraps back to zero.
const ScrollResetValue = 100

var controls = []string{
	"UP: Accelerate",
	"DOWN: Brake",
	"LEFT/RIGHT: Steer",
	"Pass cars = 10pts",
	"Obstacles = CRASH",
	"",
	"INFINITE MODE:",
	"M at start: Infinite Mode",
	"Q while playing: End Game",
}

const marquee = "  Three laps to win - every 500 points is a lap  "

// InstructionsScreen lists the controls with a scrolling hint line.
type InstructionsScreen struct {
	base
	scrollOffset int
}

// NewInstructionsScreen creates the controls screen.
func NewInstructionsScreen() *InstructionsScreen {
	return &InstructionsScreen{}
}

// Update advances the marquee, wrapping past ScrollResetValue.
func (s *InstructionsScreen) Update() {
	s.tick()
	s.scrollOffset++
	if s.scrollOffset > ScrollResetValue {
		s.scrollOffset = 0
	}
}

// ScrollOffset returns the marquee position.
func (s *InstructionsScreen) ScrollOffset() int {
	return s.scrollOffset
}

// HandleInput matches the start key, which begins a race from here.
func (s *InstructionsScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyStart)
}

// Draw renders the controls list and menu hints.
func (s *InstructionsScreen) Draw(dst *core.Screen) {
	drawPanel(dst, core.ColorCyan)

	dst.DrawTextCentered(2, "CONTROLS", core.ColorCyan)
	for i, line := range controls {
		dst.DrawTextCentered(4+i, line, core.ColorBrightWhite)
	}

	// The marquee scrolls one rune per frame through a window as wide as the panel.
	runes := []rune(marquee)
	width := max(dst.Width()-4, 0)
	line := make([]rune, width)
	for i := range line {
		line[i] = runes[(s.scrollOffset+i)%len(runes)]
	}
	dst.DrawTextColor(2, dst.Height()-5, string(line), core.ColorGray)

	dst.DrawTextCentered(dst.Height()-3, "Press S to START", core.ColorCyan)
	dst.DrawTextCentered(dst.Height()-2, "Press B to go BACK", core.ColorCyan)
}
