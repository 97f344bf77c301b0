package locomotion

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*Controller)

// WithRunSpeed overrides the forward/backward speed. Values <= 0 keep the default.
//
// Parameters:
//   - speed: the run speed
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithRunSpeed(speed float32) ControllerBuilderOption {
	return func(c *Controller) {
		if speed > 0 {
			c.runSpeed = speed
		}
	}
}

// WithTurnSpeed overrides the turn increment. Values <= 0 keep the default.
//
// Parameters:
//   - speed: the turn speed in degrees per step
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithTurnSpeed(speed float32) ControllerBuilderOption {
	return func(c *Controller) {
		if speed > 0 {
			c.turnSpeed = speed
		}
	}
}
