package game

// Outcome is how a race ended.
type Outcome string

const (
	OutcomeWin       Outcome = "win"       // all laps completed
	OutcomeForced    Outcome = "forced"    // ended early with Q
	OutcomeCrash     Outcome = "crash"     // collision
	OutcomeAbandoned Outcome = "abandoned" // left before the finish
)

// RaceResult describes a finished race.
type RaceResult struct {
	ID          string
	Outcome     Outcome
	Score       int
	Lap         int
	Infinite    bool
	HitAI       bool
	HitObstacle bool
	Frames      int
}

// Mode returns "infinite" or "normal".
func (r RaceResult) Mode() string {
	return ModeName(r.Infinite)
}

// ModeName names the race mode for storage and display.
func ModeName(infinite bool) string {
	if infinite {
		return "infinite"
	}
	return "normal"
}
