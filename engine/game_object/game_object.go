package game_object

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// StepDistance scales CurrentSpeed into distance per Move call. It is a fixed
// per-call factor, not elapsed time, so movement speed follows the input
// repeat rate. Multiply by a frame delta here to make movement time-based.
const StepDistance float32 = 0.01

// Rotation holds Euler angles in degrees.
type Rotation struct {
	Pitch float32 // about X
	Yaw   float32 // about Y; drives facing. Unbounded, wrapped implicitly by trig.
	Roll  float32 // about Z
}

// Displacement is the x/z motion produced by the most recent Move.
type Displacement struct {
	DX float32
	DZ float32
}

// GameObject is the kinematic state of a single scene entity.
// The scene owns each GameObject by value; nothing holds a long-lived pointer to one.
type GameObject struct {
	Position     mgl32.Vec3
	Size         mgl32.Vec3
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
	Rotation     Rotation

	// Radius is the collision sphere radius. Never negative.
	Radius float32

	// CurrentSpeed is the signed forward speed consumed by Move.
	CurrentSpeed float32
	// CurrentTurnSpeed is the signed yaw increment, in degrees, applied per Move.
	CurrentTurnSpeed float32

	// LastDisplacement is overwritten by every Move and only meaningful right after one.
	LastDisplacement Displacement
}

// NewGameObject creates a GameObject configured with the given options.
// Velocity and acceleration default to (1, 1, 1).
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := GameObject{
		Velocity:     mgl32.Vec3{1, 1, 1},
		Acceleration: mgl32.Vec3{1, 1, 1},
	}
	for _, option := range options {
		option(&obj)
	}
	return obj
}

// Move advances the object by one integration step and returns the new position.
//
// The turn speed is added straight to yaw, then the object travels
// CurrentSpeed * StepDistance along its facing in the x/z plane. The x/z delta is
// cached in LastDisplacement for dependents such as the collision coupling.
//
// Returns:
//   - mgl32.Vec3: the updated position
func (g *GameObject) Move() mgl32.Vec3 {
	g.IncreaseRotation(0, g.CurrentTurnSpeed, 0)

	distance := g.CurrentSpeed * StepDistance
	yaw := mgl32.DegToRad(g.Rotation.Yaw)
	dx := distance * math32.Cos(yaw)
	dz := distance * math32.Sin(yaw)

	g.LastDisplacement = Displacement{DX: dx, DZ: dz}
	g.IncreasePosition(dx, 0, dz)

	return g.Position
}

// IncreaseRotation adds the given deltas, in degrees, to the Euler angles.
//
// Parameters:
//   - dPitch, dYaw, dRoll: the angle increments
func (g *GameObject) IncreaseRotation(dPitch, dYaw, dRoll float32) {
	g.Rotation.Pitch += dPitch
	g.Rotation.Yaw += dYaw
	g.Rotation.Roll += dRoll
}

// IncreasePosition offsets the position.
//
// Parameters:
//   - dx, dy, dz: the position increments
func (g *GameObject) IncreasePosition(dx, dy, dz float32) {
	g.Position = g.Position.Add(mgl32.Vec3{dx, dy, dz})
}

// SetRadius sets the collision radius, clamping negative values to 0.
//
// Parameters:
//   - r: the new radius
func (g *GameObject) SetRadius(r float32) {
	if r < 0 {
		r = 0
	}
	g.Radius = r
}
