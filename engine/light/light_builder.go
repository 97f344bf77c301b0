package light

import "github.com/go-gl/mathgl/mgl32"

type LightBuilderOption func(*lightImpl)

// WithPosition sets the light's starting position.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - LightBuilderOption: a function that sets the position
func WithPosition(p mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = p
	}
}

// WithColor sets the light's RGB color.
//
// Parameters:
//   - c: color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that sets the color
func WithColor(c mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = c
	}
}

// WithStep sets the distance one nudge moves the light. Non-positive values are ignored.
//
// Parameters:
//   - step: nudge distance
//
// Returns:
//   - LightBuilderOption: a function that sets the nudge step
func WithStep(step float32) LightBuilderOption {
	return func(l *lightImpl) {
		if step > 0 {
			l.step = step
		}
	}
}
