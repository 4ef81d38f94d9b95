package race

import "github.com/vovakirdan/pixel-racers/internal/game"

// Collision detects overlaps between the player and everything else on the road.
type Collision struct{}

// CheckAll reports whether the player touches any AI car and any obstacle.
// Both groups are always checked so both flags can be set in one frame.
func (Collision) CheckAll(player game.Player, cars []game.AICar, obstacles []game.Obstacle) (hitAI, hitObstacle bool) {
	pb := player.Bounds()
	for _, c := range cars {
		if pb.Intersects(c.Bounds()) {
			hitAI = true
			break
		}
	}
	for _, o := range obstacles {
		if pb.Intersects(o.Bounds()) {
			hitObstacle = true
			break
		}
	}
	return hitAI, hitObstacle
}
