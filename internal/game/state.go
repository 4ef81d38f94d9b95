// Package game provides the race state machine and the frame loop that drives it.
package game

// State is the active game state. Exactly one is current at any time.
type State int

const (
	// StateStart is the title menu.
	StateStart State = iota
	// StateInstructions lists the controls.
	StateInstructions
	// StatePlaying is a race in progress.
	StatePlaying
	// StatePaused suspends the race in progress.
	StatePaused
	// StateGameOver follows a crash.
	StateGameOver
	// StateWin follows a finished race.
	StateWin

	stateCount
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}
