package gait

// AnimatorBuilderOption is a functional option for configuring an Animator.
type AnimatorBuilderOption func(*Animator)

// WithLimit sets the swing amplitude. Values <= 0 keep the default.
//
// Parameters:
//   - limit: the amplitude in degrees
//
// Returns:
//   - AnimatorBuilderOption: option function to apply
func WithLimit(limit float32) AnimatorBuilderOption {
	return func(a *Animator) {
		if limit > 0 {
			a.limit = limit
		}
	}
}

// WithStep sets the per-frame angle change. Values <= 0 keep the default.
//
// Parameters:
//   - step: the increment in degrees per frame
//
// Returns:
//   - AnimatorBuilderOption: option function to apply
func WithStep(step float32) AnimatorBuilderOption {
	return func(a *Animator) {
		if step > 0 {
			a.step = step
		}
	}
}
