package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*GameObject)

// WithPosition sets the starting world-space position.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Position = mgl32.Vec3{x, y, z}
	}
}

// WithSize sets the nominal size of the object.
//
// Parameters:
//   - x, y, z: the size along each axis
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the size
func WithSize(x, y, z float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Size = mgl32.Vec3{x, y, z}
	}
}

// WithVelocity sets the starting velocity.
//
// Parameters:
//   - x, y, z: the velocity components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the velocity
func WithVelocity(x, y, z float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Velocity = mgl32.Vec3{x, y, z}
	}
}

// WithAcceleration sets the starting acceleration.
//
// Parameters:
//   - x, y, z: the acceleration components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the acceleration
func WithAcceleration(x, y, z float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Acceleration = mgl32.Vec3{x, y, z}
	}
}

// WithRadius sets the collision radius. Negative values are clamped to 0.
//
// Parameters:
//   - r: the collision radius
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the radius
func WithRadius(r float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.SetRadius(r)
	}
}

// WithRotation sets the starting Euler angles in degrees.
//
// Parameters:
//   - pitch, yaw, roll: the rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw, roll float32) GameObjectBuilderOption {
	return func(obj *GameObject) {
		obj.Rotation = Rotation{Pitch: pitch, Yaw: yaw, Roll: roll}
	}
}
