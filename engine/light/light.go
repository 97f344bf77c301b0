package light

import "github.com/go-gl/mathgl/mgl32"

// Nudge directions.
const (
	Left  = -1
	Right = 1
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position mgl32.Vec3
	color    mgl32.Vec3
	offset   float32
	step     float32
}

// Light defines the interface for the scene's point light.
//
// The light is moved along X by keyboard nudges. A nudge moves an internal
// offset by one step and then assigns the offset to the light's x coordinate,
// so the first nudge snaps x from its starting value to plus or minus one step.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Color() mgl32.Vec3

	// Offset returns the accumulated nudge offset.
	//
	// Returns:
	//   - float32: the offset along X
	Offset() float32

	// Nudge moves the light one step in dir and returns the new position.
	// dir is Left or Right; any other non-zero value is reduced to its sign.
	//
	// Parameters:
	//   - dir: Left or Right
	//
	// Returns:
	//   - mgl32.Vec3: the updated position
	Nudge(dir int) mgl32.Vec3

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)
}

var _ Light = &lightImpl{}

// NewLight creates a white point light at (-6, 5, 0) with a nudge step of 0.25.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		position: mgl32.Vec3{-6, 5, 0},
		color:    mgl32.Vec3{1, 1, 1},
		step:     0.25,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *lightImpl) Offset() float32 {
	return l.offset
}

func (l *lightImpl) Nudge(dir int) mgl32.Vec3 {
	switch {
	case dir > 0:
		l.offset += l.step
	case dir < 0:
		l.offset -= l.step
	default:
		return l.position
	}
	l.position[0] = l.offset
	return l.position
}

func (l *lightImpl) SetPosition(p mgl32.Vec3) {
	l.position = p
}
