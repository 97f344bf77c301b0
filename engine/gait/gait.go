package gait

// Default oscillator constants. Step is applied once per Update, so the swing
// rate follows the frame rate; scale Step by a frame delta to make it time-based.
const (
	DefaultLimit float32 = 20.0
	DefaultStep  float32 = 0.4
)

// Direction is the sign the limb-swing angle is currently moving in.
type Direction int

const (
	// SwingingDown decreases the angle. It is also the idle state.
	SwingingDown Direction = iota
	// SwingingUp increases the angle.
	SwingingUp
)

func (d Direction) String() string {
	if d == SwingingUp {
		return "up"
	}
	return "down"
}

// Animator is a two-state oscillator producing a triangle wave limb-swing angle
// while the figure is moving.
//
// The angle is kept as a whole number of steps so the limits are hit exactly and
// the wave never leaves [-limit, limit], however long the figure walks.
type Animator struct {
	limit     float32
	step      float32
	maxTicks  int
	ticks     int
	direction Direction
}

// NewAnimator creates an idle Animator at angle 0.
//
// Parameters:
//   - options: functional options to configure the animator
//
// Returns:
//   - *Animator: the newly created animator
func NewAnimator(options ...AnimatorBuilderOption) *Animator {
	a := &Animator{
		limit:     DefaultLimit,
		step:      DefaultStep,
		direction: SwingingDown,
	}
	for _, option := range options {
		option(a)
	}
	a.maxTicks = max(1, int(a.limit/a.step+0.5))
	return a
}

// Angle returns the current limb-swing angle in degrees.
//
// Returns:
//   - float32: the angle
func (a *Animator) Angle() float32 {
	return float32(a.ticks) * a.limit / float32(a.maxTicks)
}

// Direction returns the current swing direction.
//
// Returns:
//   - Direction: SwingingUp or SwingingDown
func (a *Animator) Direction() Direction {
	return a.direction
}

// Limit returns the swing amplitude in degrees.
//
// Returns:
//   - float32: the limit
func (a *Animator) Limit() float32 {
	return a.limit
}

// Step returns the effective per-frame change in degrees. It differs from the
// configured step only when the step does not divide the limit evenly.
//
// Returns:
//   - float32: the step
func (a *Animator) Step() float32 {
	return a.limit / float32(a.maxTicks)
}

// Update advances the oscillator by one frame.
//
// When not moving, the angle snaps back to 0 and the direction resets to
// SwingingDown. When moving, the direction flips once the angle sits on a limit,
// then the angle moves one step in the current direction.
//
// Parameters:
//   - moving: whether the figure is currently walking
//
// Returns:
//   - float32: the new angle
func (a *Animator) Update(moving bool) float32 {
	if !moving {
		a.ticks = 0
		a.direction = SwingingDown
		return 0
	}

	if a.direction == SwingingUp && a.ticks >= a.maxTicks {
		a.direction = SwingingDown
	} else if a.direction == SwingingDown && a.ticks <= -a.maxTicks {
		a.direction = SwingingUp
	}

	if a.direction == SwingingUp {
		a.ticks++
	} else {
		a.ticks--
	}
	return a.Angle()
}
