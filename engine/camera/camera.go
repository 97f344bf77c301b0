package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-stride/engine/transform"
)

type cameraImpl struct {
	mu *sync.Mutex

	eye    mgl32.Vec3
	lookAt mgl32.Vec3
	up     mgl32.Vec3
	speed  float32

	// theta is yaw, phi is pitch, both in radians
	theta float32
	phi   float32

	sensitivity float32
	pitchLimit  float32

	looking      bool
	lastX, lastY float64

	spin float32

	fovDeg float32
	near   float32
	far    float32
}

// Camera defines the interface for the first-person free camera.
// The camera owns its eye, look-at point and up vector, and derives
// view and projection matrices from them on request.
type Camera interface {
	controller

	// Eye returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at point
	Target() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Angles returns the yaw and pitch in radians.
	//
	// Returns:
	//   - theta: yaw in radians
	//   - phi: pitch in radians
	Angles() (theta, phi float32)

	// WorldSpin returns the accumulated scene spin about Y in degrees.
	//
	// Returns:
	//   - float32: the spin in degrees
	WorldSpin() float32

	// View returns the view matrix for the current eye and look-at point.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	View() mgl32.Mat4

	// Projection returns the perspective projection for aspect.
	//
	// Parameters:
	//   - aspect: viewport width divided by height
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Projection(aspect float32) mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		eye:         mgl32.Vec3{0, 0, 0},
		lookAt:      mgl32.Vec3{0, 0, -1},
		up:          mgl32.Vec3{0, 1, 0},
		speed:       0.25,
		theta:       -mgl32.DegToRad(90),
		sensitivity: 0.005,
		pitchLimit:  1.4,
		fovDeg:      45,
		near:        0.01,
		far:         100,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookAt
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Angles() (theta, phi float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theta, c.phi
}

func (c *cameraImpl) WorldSpin() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spin
}

func (c *cameraImpl) View() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := transform.NewStack()
	s.LookAt(c.eye, c.lookAt, c.up)
	return s.Top()
}

func (c *cameraImpl) Projection(aspect float32) mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := transform.NewStack()
	s.Perspective(c.fovDeg, aspect, c.near, c.far)
	return s.Top()
}
