package race

import (
	"math/rand"

	"github.com/vovakirdan/pixel-racers/internal/config"
)

// spawner picks respawn lanes, gaps and speeds for traffic and obstacles.
// Gaps shrink and speeds grow with the difficulty level.
type spawner struct {
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	road       *Road
	layout     Layout
}

func (s *spawner) lane() int {
	return s.rng.Intn(s.layout.Lanes)
}

// gap returns a random distance in cells above the screen.
func (s *spawner) gap(minGap, maxGap int) int {
	base := minGap
	if maxGap > minGap {
		base = minGap + s.rng.Intn(maxGap-minGap+1)
	}
	return s.difficulty.Gap(base, minGap, s.road.Distance(), s.road.Frames())
}

func (s *spawner) speed(base int) int {
	return s.difficulty.Speed(base, s.road.Distance(), s.road.Frames())
}
