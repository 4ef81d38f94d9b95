// Package screens implements the six mutually exclusive screens of a race:
// start menu, instructions, playing HUD, pause, game over and victory.
//
// Screens only animate and draw themselves. Deciding which screen is active,
// and what a matched key leads to, is the job of the game state machine.
package screens

import (
	"github.com/vovakirdan/pixel-racers/internal/core"
)

// Screen is the contract every game state's screen satisfies.
type Screen interface {
	// Update advances the screen's own animation counters by one frame.
	Update()

	// Draw renders the screen into dst. It never changes game data.
	Draw(dst *core.Screen)

	// HandleInput reports whether k is this screen's forward key.
	// Matching is case-insensitive; unmatched keys return false.
	HandleInput(k core.Key) bool
}

// Keys understood by the screens and the state machine.
const (
	KeyStart        core.Key = 'S'
	KeyInstructions core.Key = 'I'
	KeyMode         core.Key = 'M'
	KeyBack         core.Key = 'B'
	KeyPause        core.Key = 'P'
	KeyForceWin     core.Key = 'Q'
	KeyRestart      core.Key = 'C'
)

// flashPeriod is how many frames flashing text stays visible, then hidden.
const flashPeriod = 30

// base holds the fields shared by all screens.
type base struct {
	flashTimer int
	finalScore int
}

// FlashTimer returns the number of frames this screen has been updated.
func (b *base) FlashTimer() int {
	return b.flashTimer
}

// FinalScore returns the captured score, meaningful for game over and win.
func (b *base) FinalScore() int {
	return b.finalScore
}

func (b *base) tick() {
	b.flashTimer++
}

// flashOn reports whether flashing text is visible on this frame.
func (b *base) flashOn() bool {
	return (b.flashTimer/flashPeriod)%2 == 0
}

// matches compares a key against a screen's forward key, ignoring case.
func matches(k, want core.Key) bool {
	return core.NormalizeKey(rune(k)) == want
}

// drawFlashing draws centered text that blinks with the screen's flash timer.
func (b *base) drawFlashing(dst *core.Screen, y int, text string, c core.Color) {
	if b.flashOn() {
		dst.DrawTextCentered(y, text, c)
	}
}

// drawPanel clears the screen and frames it, the common backdrop for menus.
func drawPanel(dst *core.Screen, border core.Color) {
	dst.Clear()
	if dst.Width() >= 4 && dst.Height() >= 4 {
		dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), border)
	}
}
