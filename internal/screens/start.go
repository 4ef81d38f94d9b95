package screens

import (
	"fmt"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

var titleArt = []string{
	` ___ _         _   ___                    `,
	`| _ (_)_ _____| | | _ \__ _ __ ___ _ _ ___`,
	`|  _/ \ \ / -_) | |   / _' / _/ -_) '_(_-<`,
	`|_| |_/_\_\___|_| |_|_\__,_\__\___|_| /__/`,
}

// StartScreen is the title menu. It shows which race mode the next race uses.
type StartScreen struct {
	base
	infiniteMode bool
	bestScore    int
}

// NewStartScreen creates the title screen in normal mode.
func NewStartScreen() *StartScreen {
	return &StartScreen{}
}

// Update advances the flash animation.
func (s *StartScreen) Update() {
	s.tick()
}

// HandleInput matches the start key.
func (s *StartScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyStart)
}

// SetInfiniteMode changes the displayed race mode.
func (s *StartScreen) SetInfiniteMode(enable bool) {
	s.infiniteMode = enable
}

// InfiniteMode returns the displayed race mode.
func (s *StartScreen) InfiniteMode() bool {
	return s.infiniteMode
}

// SetBestScore sets the best score shown under the title. Zero hides it.
func (s *StartScreen) SetBestScore(score int) {
	s.bestScore = score
}

// BestScore returns the best score shown under the title.
func (s *StartScreen) BestScore() int {
	return s.bestScore
}

// Draw renders the title, menu hints and the current mode.
func (s *StartScreen) Draw(dst *core.Screen) {
	drawPanel(dst, core.ColorYellow)

	y := dst.Height()/2 - 6
	if dst.Width() > len(titleArt[0])+2 {
		for i, line := range titleArt {
			dst.DrawTextCentered(y+i, line, core.ColorYellow)
		}
		y += len(titleArt) + 1
	} else {
		dst.DrawTextCentered(y, "PIXEL RACERS", core.ColorYellow)
		y += 2
	}

	if s.infiniteMode {
		dst.DrawTextCentered(y, "INFINITE MODE", core.ColorBrightGreen)
	} else {
		dst.DrawTextCentered(y, "NORMAL MODE", core.ColorOrange)
	}
	y += 2

	s.drawFlashing(dst, y, "Press I for Instructions", core.ColorBrightWhite)
	s.drawFlashing(dst, y+1, "Press S to START", core.ColorBrightWhite)
	s.drawFlashing(dst, y+3, "Press M for Infinite Mode", core.ColorCyan)

	if s.bestScore > 0 {
		dst.DrawTextCentered(dst.Height()-2, fmt.Sprintf("BEST: %d", s.bestScore), core.ColorGray)
	}
}
