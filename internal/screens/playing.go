package screens

import (
	"fmt"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

// Lap rules.
const (
	LapPoints    = 500 // score needed per lap
	NormalLaps   = 3
	InfiniteLaps = -1 // sentinel: no lap cap
)

// ScoreSource is anything that can report the current race score.
type ScoreSource interface {
	Score() int
}

// PlayingScreen tracks lap progress of the race in progress and draws the HUD.
// The world itself is drawn by the track, not by this screen.
type PlayingScreen struct {
	base
	currentLap   int
	maxLaps      int
	infiniteMode bool
}

// NewPlayingScreen creates the screen for a fresh race at lap 1.
func NewPlayingScreen(infinite bool) *PlayingScreen {
	p := &PlayingScreen{currentLap: 1}
	p.SetInfiniteMode(infinite)
	return p
}

// Update advances the flash animation only.
func (p *PlayingScreen) Update() {
	p.tick()
}

// UpdateLaps recomputes the lap from the score and advances the flash animation.
// The lap only moves forward, and in normal mode never past the lap cap.
func (p *PlayingScreen) UpdateLaps(src ScoreSource) {
	lapFromScore := LapForScore(src.Score())
	if lapFromScore > p.currentLap && (p.infiniteMode || lapFromScore <= p.maxLaps) {
		p.currentLap = lapFromScore
	}
	p.tick()
}

// LapForScore returns the lap a score corresponds to, starting at 1.
func LapForScore(score int) int {
	return score/LapPoints + 1
}

// IsWinCondition reports whether the final lap has been reached in normal mode.
func (p *PlayingScreen) IsWinCondition() bool {
	return !p.infiniteMode && p.currentLap >= p.maxLaps
}

// SetInfiniteMode switches the lap cap. Only call it before the race starts.
func (p *PlayingScreen) SetInfiniteMode(enable bool) {
	p.infiniteMode = enable
	if enable {
		p.maxLaps = InfiniteLaps
	} else {
		p.maxLaps = NormalLaps
	}
}

// InfiniteMode reports whether the race has no lap cap.
func (p *PlayingScreen) InfiniteMode() bool {
	return p.infiniteMode
}

// CurrentLap returns the lap in progress.
func (p *PlayingScreen) CurrentLap() int {
	return p.currentLap
}

// MaxLaps returns the lap cap, or InfiniteLaps.
func (p *PlayingScreen) MaxLaps() int {
	return p.maxLaps
}

// HandleInput matches the pause key.
func (p *PlayingScreen) HandleInput(k core.Key) bool {
	return matches(k, KeyPause)
}

// Draw is a no-op: the race scene is drawn by the track and DrawHUD.
func (p *PlayingScreen) Draw(_ *core.Screen) {}

// DrawHUD draws score, speed and lap in the top-left corner.
func (p *PlayingScreen) DrawHUD(dst *core.Screen, score, speed int) {
	lap := fmt.Sprintf("Lap:%d/%d", p.currentLap, p.maxLaps)
	if p.infiniteMode {
		lap = fmt.Sprintf("Lap:%d", p.currentLap)
	}

	dst.DrawTextColor(1, 0, "Score:", core.ColorBrightWhite)
	dst.DrawTextColor(1, 1, fmt.Sprint(score), core.ColorBrightWhite)
	dst.DrawTextColor(1, 2, "Speed:", core.ColorBrightWhite)
	dst.DrawTextColor(1, 3, fmt.Sprint(speed), core.ColorBrightWhite)
	dst.DrawTextColor(1, 4, lap, core.ColorBrightWhite)

	if p.infiniteMode && p.flashOn() {
		dst.DrawTextColor(1, 5, "INFINITE MODE", core.ColorBrightGreen)
	}
}
