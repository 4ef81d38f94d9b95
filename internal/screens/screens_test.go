package screens

import (
	"testing"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

type fixedScore int

func (s fixedScore) Score() int { return int(s) }

func TestLapForScore(t *testing.T) {
	tests := []struct {
		score, lap int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{1499, 3},
		{2500, 6},
	}

	for _, tc := range tests {
		if got := LapForScore(tc.score); got != tc.lap {
			t.Errorf("LapForScore(%d) = %d, expected %d", tc.score, got, tc.lap)
		}
	}
}

func TestPlayingScreenNormalMode(t *testing.T) {
	p := NewPlayingScreen(false)

	if p.CurrentLap() != 1 || p.MaxLaps() != NormalLaps {
		t.Fatalf("new race: lap=%d max=%d, expected 1/%d", p.CurrentLap(), p.MaxLaps(), NormalLaps)
	}

	p.UpdateLaps(fixedScore(499))
	if p.CurrentLap() != 1 {
		t.Errorf("score 499: lap = %d, expected 1", p.CurrentLap())
	}
	if p.IsWinCondition() {
		t.Error("lap 1 should not be a win")
	}

	p.UpdateLaps(fixedScore(500))
	if p.CurrentLap() != 2 {
		t.Errorf("score 500: lap = %d, expected 2", p.CurrentLap())
	}

	p.UpdateLaps(fixedScore(1499))
	if p.CurrentLap() != 3 {
		t.Errorf("score 1499: lap = %d, expected 3", p.CurrentLap())
	}
	if !p.IsWinCondition() {
		t.Error("lap 3 of 3 should be a win")
	}
}

func TestPlayingScreenLapCapped(t *testing.T) {
	p := NewPlayingScreen(false)

	// Jumping straight past the cap is ignored, lap stays where it was
	p.UpdateLaps(fixedScore(5000))
	if p.CurrentLap() != 1 {
		t.Errorf("lap past the cap should not be adopted, got %d", p.CurrentLap())
	}

	p.UpdateLaps(fixedScore(1000))
	p.UpdateLaps(fixedScore(5000))
	if p.CurrentLap() != NormalLaps {
		t.Errorf("lap = %d, should never exceed %d", p.CurrentLap(), NormalLaps)
	}
}

func TestPlayingScreenLapMonotonic(t *testing.T) {
	p := NewPlayingScreen(false)
	scores := []int{0, 120, 510, 460, 0, 600, 1100, 900, 10, 1200}

	prev := p.CurrentLap()
	for _, s := range scores {
		p.UpdateLaps(fixedScore(s))
		if p.CurrentLap() < prev {
			t.Fatalf("lap regressed from %d to %d at score %d", prev, p.CurrentLap(), s)
		}
		if p.CurrentLap() > NormalLaps {
			t.Fatalf("lap %d exceeded cap at score %d", p.CurrentLap(), s)
		}
		prev = p.CurrentLap()
	}
	if prev != 3 {
		t.Errorf("final lap = %d, expected 3", prev)
	}
}

func TestPlayingScreenInfiniteMode(t *testing.T) {
	p := NewPlayingScreen(true)

	if p.MaxLaps() != InfiniteLaps {
		t.Errorf("infinite mode max laps = %d, expected %d", p.MaxLaps(), InfiniteLaps)
	}

	p.UpdateLaps(fixedScore(2500))
	if p.CurrentLap() != 6 {
		t.Errorf("score 2500: lap = %d, expected 6", p.CurrentLap())
	}
	if p.IsWinCondition() {
		t.Error("infinite mode should never win")
	}

	p.SetInfiniteMode(false)
	if p.MaxLaps() != NormalLaps || p.InfiniteMode() {
		t.Error("SetInfiniteMode(false) should restore the normal lap cap")
	}
}

func TestPlayingScreenFlashTimer(t *testing.T) {
	p := NewPlayingScreen(false)
	p.Update()
	p.UpdateLaps(fixedScore(0))
	if p.FlashTimer() != 2 {
		t.Errorf("FlashTimer() = %d, expected 2", p.FlashTimer())
	}
}

func TestHandleInputForwardKeys(t *testing.T) {
	tests := []struct {
		name    string
		screen  Screen
		forward []core.Key
		ignored []core.Key
	}{
		{"start", NewStartScreen(), []core.Key{'S', 's'}, []core.Key{'I', 'M', 'P', core.KeyUp}},
		{"instructions", NewInstructionsScreen(), []core.Key{'S', 's'}, []core.Key{'I', 'B'}},
		{"playing", NewPlayingScreen(false), []core.Key{'P', 'p'}, []core.Key{'Q', core.KeyLeft}},
		{"pause", NewPauseScreen(), []core.Key{'P', 'p'}, []core.Key{'B', 'S'}},
		{"game over", NewGameOverScreen(), []core.Key{'C', 'c'}, []core.Key{'S', 'R'}},
		{"win", NewWinScreen(), []core.Key{'C', 'c'}, []core.Key{'S', 'Q'}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range tc.forward {
				if !tc.screen.HandleInput(k) {
					t.Errorf("HandleInput(%q) = false, expected true", k)
				}
			}
			for _, k := range tc.ignored {
				if tc.screen.HandleInput(k) {
					t.Errorf("HandleInput(%q) = true, expected false", k)
				}
			}
		})
	}
}

func TestGameOverScreenCauses(t *testing.T) {
	tests := []struct {
		name            string
		hitAI, hitObs   bool
		wantAI, wantObs bool
	}{
		{"ai only", true, false, true, false},
		{"obstacle only", false, true, false, true},
		{"both", true, true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewGameOverScreen()
			s.SetGameOver(420, tc.hitAI, tc.hitObs)

			dst := core.NewScreen(60, 20)
			s.Draw(dst)

			if s.FinalScore() != 420 {
				t.Errorf("FinalScore() = %d, expected 420", s.FinalScore())
			}
			if dst.Contains("Hit AI Car!") != tc.wantAI {
				t.Errorf("AI message shown = %v, expected %v", !tc.wantAI, tc.wantAI)
			}
			if dst.Contains("Hit Obstacle!") != tc.wantObs {
				t.Errorf("obstacle message shown = %v, expected %v", !tc.wantObs, tc.wantObs)
			}
			if !dst.Contains("Final Score: 420") {
				t.Error("final score should be drawn")
			}
		})
	}
}

func TestWinScreenDraw(t *testing.T) {
	s := NewWinScreen()
	s.SetWin(1520)

	dst := core.NewScreen(60, 20)
	s.Draw(dst)
	if !dst.Contains("YOU WIN!") || !dst.Contains("Final Score: 1520") {
		t.Errorf("win screen missing banner or score:\n%s", dst.String())
	}
}

func TestStartScreenShowsMode(t *testing.T) {
	s := NewStartScreen()
	dst := core.NewScreen(80, 24)

	s.Draw(dst)
	if !dst.Contains("NORMAL MODE") {
		t.Error("start screen should show NORMAL MODE by default")
	}

	s.SetInfiniteMode(true)
	s.SetBestScore(900)
	s.Draw(dst)
	if !dst.Contains("INFINITE MODE") {
		t.Error("start screen should show INFINITE MODE after toggling")
	}
	if !dst.Contains("BEST: 900") {
		t.Error("start screen should show the best score")
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	s := NewStartScreen()
	a := core.NewScreen(80, 24)
	b := core.NewScreen(80, 24)

	s.Draw(a)
	s.Draw(b)
	s.Draw(b)
	if a.String() != b.String() {
		t.Error("drawing twice with the same state should produce the same output")
	}
}

func TestFlashingText(t *testing.T) {
	s := NewPauseScreen()
	dst := core.NewScreen(60, 20)

	s.Draw(dst)
	if !dst.Contains("Press P to Resume") {
		t.Error("flashing text should be visible on the first frame")
	}

	for i := 0; i < flashPeriod; i++ {
		s.Update()
	}
	s.Draw(dst)
	if dst.Contains("Press P to Resume") {
		t.Error("flashing text should be hidden in the second flash period")
	}
	if !dst.Contains("PAUSED") {
		t.Error("the banner itself does not flash")
	}
}

func TestInstructionsScrollWraps(t *testing.T) {
	s := NewInstructionsScreen()
	for i := 0; i <= ScrollResetValue; i++ {
		s.Update()
	}
	if s.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset() = %d after wrap, expected 0", s.ScrollOffset())
	}

	dst := core.NewScreen(60, 20)
	s.Draw(dst)
	if !dst.Contains("CONTROLS") || !dst.Contains("Press B to go BACK") {
		t.Error("instructions screen missing headings")
	}
}
