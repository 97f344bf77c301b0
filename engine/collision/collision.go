// Package collision approximates every object as a sphere of its Radius.
package collision

import (
	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/game_object"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
)

// Check reports whether the spheres around a and b touch or overlap.
// Touching exactly at radiusA + radiusB counts as a collision.
//
// Parameters:
//   - a, b: the objects to test
//
// Returns:
//   - bool: true if the distance between centers is <= a.Radius + b.Radius
func Check(a, b *game_object.GameObject) bool {
	return common.Distance(a.Position, b.Position) <= a.Radius+b.Radius
}

// Resolve couples the ball to the player when the ball touches the foot.
//
// On contact the ball takes the player's speed and turn speed and rides along by
// the player's last displacement; there is no bounce or impulse. Resolve holds no
// state, so continuous contact reapplies the coupling every call.
//
// Parameters:
//   - ball: the object that gets pushed
//   - foot: the object tested against the ball
//   - player: the object whose motion is handed to the ball
//
// Returns:
//   - bool: true if the ball and foot were in contact
func Resolve(ball, foot, player *game_object.GameObject) bool {
	if !Check(ball, foot) {
		return false
	}
	ball.CurrentSpeed = player.CurrentSpeed
	ball.CurrentTurnSpeed = player.CurrentTurnSpeed
	ball.Position = ball.Position.Add(locomotion.Displacement(player))
	return true
}
