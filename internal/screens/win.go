package screens

import (
	"fmt"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

// WinScreen shows the result of a finished race.
type WinScreen struct {
	base
}

// NewWinScreen creates the victory screen.
func NewWinScreen() *WinScreen {
	return &WinScreen{}
}

// SetWin records the final score.
func (s *WinScreen) SetWin(score int) {
	s.finalScore = score
}

// Update advances the flash animation.
func (s *WinScreen) Update() {
	s.tick()
}

// HandleInput matches the restart key.
func (s *WinScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyRestart)
}

// Draw renders the victory banner and final score.
func (s *WinScreen) Draw(dst *core.Screen) {
	drawPanel(dst, core.ColorGreen)

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "YOU WIN!", core.ColorBrightGreen)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Final Score: %d", s.finalScore), core.ColorBrightWhite)
	s.drawFlashing(dst, dst.Height()-3, "Press C to Restart", core.ColorCyan)
}
