package transform

import "github.com/go-gl/mathgl/mgl32"

// StackBuilderOption is a functional option for configuring a Stack during construction.
type StackBuilderOption func(*Stack)

// WithCapacity preallocates room for n matrices so nested pushes up to that depth
// never grow the backing slice.
//
// Parameters:
//   - n: the expected maximum depth
//
// Returns:
//   - StackBuilderOption: functional option to set the capacity
func WithCapacity(n int) StackBuilderOption {
	return func(s *Stack) {
		if n > cap(s.mats) {
			s.mats = make([]mgl32.Mat4, 0, n)
		}
	}
}
