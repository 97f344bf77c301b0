package locomotion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-stride/engine/game_object"
)

// Default speeds written into the player state when a movement key is held.
const (
	DefaultRunSpeed  float32 = 10.0
	DefaultTurnSpeed float32 = 10.0
)

// Intent is a discrete movement request.
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentTurnLeft
	IntentTurnRight
)

// String implements fmt.Stringer.
func (i Intent) String() string {
	switch i {
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentTurnLeft:
		return "turn-left"
	case IntentTurnRight:
		return "turn-right"
	}
	return fmt.Sprintf("intent(%d)", int(i))
}

// Phase says whether an intent is being held or was just released.
type Phase int

const (
	PhaseHeld Phase = iota
	PhaseReleased
)

// Controller maps movement intents onto the player's speed fields and keeps the
// foot glued to the player's position.
type Controller struct {
	runSpeed  float32
	turnSpeed float32
	moving    bool
}

// NewController creates a Controller using the default run and turn speeds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - *Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) *Controller {
	c := &Controller{
		runSpeed:  DefaultRunSpeed,
		turnSpeed: DefaultTurnSpeed,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Moving reports whether the last applied intent was a held one.
//
// Returns:
//   - bool: true while a movement key is held
func (c *Controller) Moving() bool {
	return c.moving
}

// RunSpeed returns the speed written for forward/backward intents.
//
// Returns:
//   - float32: the run speed
func (c *Controller) RunSpeed() float32 {
	return c.runSpeed
}

// TurnSpeed returns the yaw increment written for turn intents.
//
// Returns:
//   - float32: the turn speed in degrees per step
func (c *Controller) TurnSpeed() float32 {
	return c.turnSpeed
}

// Apply updates player for one intent event.
//
// A held intent sets the matching speed field, integrates the player one step and
// copies the new position into foot. A release zeroes a speed field without moving.
// Releasing backward clears the turn speed, not the linear speed, so the
// stored speed stays negative until another forward intent overwrites it.
//
// Parameters:
//   - player: the controlled object
//   - foot: the object that tracks the player's position
//   - intent: the movement request
//   - phase: held or released
//
// Returns:
//   - bool: the moving flag after the update
func (c *Controller) Apply(player, foot *game_object.GameObject, intent Intent, phase Phase) bool {
	if phase == PhaseReleased {
		c.moving = false
		switch intent {
		case IntentForward:
			player.CurrentSpeed = 0
		case IntentBackward, IntentTurnLeft, IntentTurnRight:
			player.CurrentTurnSpeed = 0
		}
		return c.moving
	}

	c.moving = true
	switch intent {
	case IntentForward:
		player.CurrentSpeed = c.runSpeed
	case IntentBackward:
		player.CurrentSpeed = -c.runSpeed
	case IntentTurnLeft:
		player.CurrentTurnSpeed = -c.turnSpeed
	case IntentTurnRight:
		player.CurrentTurnSpeed = c.turnSpeed
	}
	foot.Position = player.Move()
	return c.moving
}

// Displacement returns the player's x/z motion from its most recent step as a vector.
//
// Parameters:
//   - player: the controlled object
//
// Returns:
//   - mgl32.Vec3: (dx, 0, dz)
func Displacement(player *game_object.GameObject) mgl32.Vec3 {
	return mgl32.Vec3{player.LastDisplacement.DX, 0, player.LastDisplacement.DZ}
}
