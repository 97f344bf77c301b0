package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// controller defines the input-driven movement methods of the camera.
// Fly and strafe moves translate the eye and look-at point together; mouse look
// re-aims the look-at point around the eye.
type controller interface {
	// Forward moves the camera one speed step along the view vector.
	Forward()

	// Backward moves the camera one speed step against the view vector.
	Backward()

	// StrafeLeft moves the camera one speed step against cross(view, up).
	StrafeLeft()

	// StrafeRight moves the camera one speed step along cross(view, up).
	StrafeRight()

	// BeginLook starts a mouse look gesture at the given cursor position.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates
	BeginLook(x, y float64)

	// Look applies the cursor offset since the previous call while a gesture is active.
	// It does nothing when no gesture is active.
	//
	// Parameters:
	//   - x, y: cursor position in screen coordinates
	Look(x, y float64)

	// EndLook stops the current mouse look gesture.
	EndLook()

	// Looking reports whether a mouse look gesture is active.
	//
	// Returns:
	//   - bool: true between BeginLook and EndLook
	Looking() bool

	// Spin adds delta degrees to the scene spin about Y.
	//
	// Parameters:
	//   - delta: spin increment in degrees
	Spin(delta float32)
}

func (c *cameraImpl) Forward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.lookAt.Sub(c.eye).Mul(c.speed))
}

func (c *cameraImpl) Backward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.lookAt.Sub(c.eye).Mul(-c.speed))
}

func (c *cameraImpl) StrafeLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.strafe().Mul(-c.speed))
}

func (c *cameraImpl) StrafeRight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translate(c.strafe().Mul(c.speed))
}

func (c *cameraImpl) BeginLook(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.looking = true
	c.lastX, c.lastY = x, y
}

func (c *cameraImpl) Look(x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.looking {
		return
	}
	dx := float32(x-c.lastX) * c.sensitivity
	dy := float32(y-c.lastY) * c.sensitivity
	c.lastX, c.lastY = x, y

	// pitch only accepts increments that keep it inside the limit
	if dy > 0 {
		if c.phi+dy < c.pitchLimit {
			c.phi += dy
		}
	} else if c.phi+dy > -c.pitchLimit {
		c.phi += dy
	}
	c.theta += dx

	cosPhi := math32.Cos(c.phi)
	c.lookAt = c.eye.Add(mgl32.Vec3{
		math32.Cos(c.theta) * cosPhi,
		math32.Sin(c.phi),
		cosPhi * math32.Cos(1.57-c.theta),
	})
}

func (c *cameraImpl) EndLook() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.looking = false
}

func (c *cameraImpl) Looking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.looking
}

func (c *cameraImpl) Spin(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spin += delta
}

// translate shifts eye and look-at by d. Caller must hold the mutex.
func (c *cameraImpl) translate(d mgl32.Vec3) {
	c.eye = c.eye.Add(d)
	c.lookAt = c.lookAt.Add(d)
}

// strafe returns cross(view, up) unnormalized. Caller must hold the mutex.
func (c *cameraImpl) strafe() mgl32.Vec3 {
	return c.lookAt.Sub(c.eye).Cross(c.up)
}
