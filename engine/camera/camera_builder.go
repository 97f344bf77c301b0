package camera

import "github.com/go-gl/mathgl/mgl32"

type CameraBuilderOption func(*cameraImpl)

// WithEye sets the camera's starting position and moves the look-at point with it.
//
// Parameters:
//   - eye: world-space eye position
//
// Returns:
//   - CameraBuilderOption: a function that sets the eye position
func WithEye(eye mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt = c.lookAt.Sub(c.eye).Add(eye)
		c.eye = eye
	}
}

// WithSpeed sets the fly and strafe step as a fraction of the view vector.
//
// Parameters:
//   - speed: step factor
//
// Returns:
//   - CameraBuilderOption: a function that sets the movement speed
func WithSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if speed > 0 {
			c.speed = speed
		}
	}
}

// WithSensitivity sets the radians applied per pixel of cursor movement.
//
// Parameters:
//   - s: mouse sensitivity
//
// Returns:
//   - CameraBuilderOption: a function that sets the mouse sensitivity
func WithSensitivity(s float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if s > 0 {
			c.sensitivity = s
		}
	}
}

// WithPitchLimit sets the magnitude pitch must stay under, in radians.
//
// Parameters:
//   - limit: pitch limit in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the pitch limit
func WithPitchLimit(limit float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if limit > 0 {
			c.pitchLimit = limit
		}
	}
}

// WithFov sets the vertical field of view in degrees.
//
// Parameters:
//   - fovDeg: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the field of view
func WithFov(fovDeg float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovDeg = fovDeg
	}
}

// WithClip sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClip(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}
