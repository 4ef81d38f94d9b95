package screens

import (
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// PauseScreen is shown while a race is suspended.
type PauseScreen struct {
	base
}

// NewPauseScreen creates the pause screen.
func NewPauseScreen() *PauseScreen {
	return &PauseScreen{}
}

// Update advances the flash animation.
func (s *PauseScreen) Update() {
	s.tick()
}

// HandleInput matches the resume key.
func (s *PauseScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyPause)
}

// Draw renders the pause banner.
func (s *PauseScreen) Draw(dst *core.Screen) {
	drawPanel(dst, core.ColorYellow)

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "PAUSED", core.ColorBrightYellow)
	s.drawFlashing(dst, mid, "Press P to Resume", core.ColorYellow)
	s.drawFlashing(dst, mid+2, "Press B to go BACK", core.ColorCyan)
}
