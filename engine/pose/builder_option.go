package pose

// BuilderOption is a functional option for configuring a Builder.
type BuilderOption func(*Builder)

// WithMeshScale sets the uniform scale measured from the mesh bounds at load time.
// Values <= 0 keep the default of 1.
//
// Parameters:
//   - s: the mesh scale
//
// Returns:
//   - BuilderOption: option function to apply
func WithMeshScale(s float32) BuilderOption {
	return func(b *Builder) {
		if s > 0 {
			b.meshScale = s
		}
	}
}
