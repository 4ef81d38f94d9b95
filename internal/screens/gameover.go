package screens

import (
	"fmt"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

// GameOverScreen shows the result of a crash.
type GameOverScreen struct {
	base
	hitAI       bool
	hitObstacle bool
}

// NewGameOverScreen creates the game over screen.
func NewGameOverScreen() *GameOverScreen {
	return &GameOverScreen{}
}

// SetGameOver records the final score and what the player hit.
// Both causes may be set when the player hit a car and an obstacle at once.
func (s *GameOverScreen) SetGameOver(score int, hitAI, hitObstacle bool) {
	s.finalScore = score
	s.hitAI = hitAI
	s.hitObstacle = hitObstacle
}

// HitAI reports whether an AI car caused the crash.
func (s *GameOverScreen) HitAI() bool {
	return s.hitAI
}

// HitObstacle reports whether an obstacle caused the crash.
func (s *GameOverScreen) HitObstacle() bool {
	return s.hitObstacle
}

// Update advances the flash animation.
func (s *GameOverScreen) Update() {
	s.tick()
}

// HandleInput matches the restart key.
func (s *GameOverScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyRestart)
}

// Draw renders the final score and crash causes.
func (s *GameOverScreen) Draw(dst *core.Screen) {
	drawPanel(dst, core.ColorRed)

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Final Score: %d", s.finalScore), core.ColorBrightWhite)

	y := mid
	if s.hitAI {
		s.drawFlashing(dst, y, "Hit AI Car!", core.ColorAIBlue)
		y++
	}
	if s.hitObstacle {
		s.drawFlashing(dst, y, "Hit Obstacle!", core.ColorObstacle)
	}

	s.drawFlashing(dst, dst.Height()-3, "Press C to Restart", core.ColorBrightWhite)
}
