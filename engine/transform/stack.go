package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrStackUnderflow is returned by Pop when the stack holds no matrix to remove.
var ErrStackUnderflow = errors.New("transform: pop on empty matrix stack")

// Stack is a last-in-first-out accumulator of 4x4 transforms.
// The top of the stack is the current composed transform. Every composing call
// right-multiplies the top, so the most recent call applies closest to the object.
//
// A Stack is frame-scoped and not safe for concurrent use; give each render its own.
type Stack struct {
	mats []mgl32.Mat4
}

// NewStack creates a Stack holding a single identity matrix.
//
// Parameters:
//   - options: functional options to configure the stack
//
// Returns:
//   - *Stack: the newly created stack
func NewStack(options ...StackBuilderOption) *Stack {
	s := &Stack{
		mats: make([]mgl32.Mat4, 0, 8),
	}
	for _, option := range options {
		option(s)
	}
	s.mats = append(s.mats, mgl32.Ident4())
	return s
}

// Depth returns the number of matrices on the stack.
//
// Returns:
//   - int: the stack depth
func (s *Stack) Depth() int {
	return len(s.mats)
}

// Reset discards every matrix and leaves a single identity on the stack.
// The backing storage is kept, so a per-frame Reset does not allocate.
func (s *Stack) Reset() {
	s.mats = append(s.mats[:0], mgl32.Ident4())
}

// Push duplicates the top matrix so the new frame inherits its parent transform.
// Pushing onto an empty stack starts a fresh identity frame.
func (s *Stack) Push() {
	if len(s.mats) == 0 {
		s.mats = append(s.mats, mgl32.Ident4())
		return
	}
	s.mats = append(s.mats, s.mats[len(s.mats)-1])
}

// Pop removes the top matrix.
//
// Returns:
//   - error: ErrStackUnderflow if the stack is empty
func (s *Stack) Pop() error {
	if len(s.mats) == 0 {
		return ErrStackUnderflow
	}
	s.mats = s.mats[:len(s.mats)-1]
	return nil
}

// Top returns a copy of the current matrix without changing the stack.
// An empty stack reads as identity.
//
// Returns:
//   - mgl32.Mat4: the top matrix
func (s *Stack) Top() mgl32.Mat4 {
	if len(s.mats) == 0 {
		return mgl32.Ident4()
	}
	return s.mats[len(s.mats)-1]
}

// Load replaces the top matrix with m.
//
// Parameters:
//   - m: the matrix to load
func (s *Stack) Load(m mgl32.Mat4) {
	if len(s.mats) == 0 {
		s.mats = append(s.mats, m)
		return
	}
	s.mats[len(s.mats)-1] = m
}

// LoadIdentity replaces the top matrix with identity.
func (s *Stack) LoadIdentity() {
	s.Load(mgl32.Ident4())
}

// MultMatrix right-multiplies the top by m: top = top * m.
//
// Parameters:
//   - m: the local transform to compose
func (s *Stack) MultMatrix(m mgl32.Mat4) {
	s.Load(s.Top().Mul4(m))
}

// Translate composes a translation by v.
//
// Parameters:
//   - v: the translation offset
func (s *Stack) Translate(v mgl32.Vec3) {
	s.MultMatrix(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate composes a rotation of angleDeg degrees about axis.
// The axis does not need to be unit length; a zero axis is a no-op.
//
// Parameters:
//   - angleDeg: the rotation angle in degrees
//   - axis: the rotation axis
func (s *Stack) Rotate(angleDeg float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	s.MultMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize()))
}

// Scale composes a uniform scale.
//
// Parameters:
//   - f: the scale factor on all axes
func (s *Stack) Scale(f float32) {
	s.MultMatrix(mgl32.Scale3D(f, f, f))
}

// ScaleV composes a per-axis scale.
//
// Parameters:
//   - v: the scale factors for x, y and z
func (s *Stack) ScaleV(v mgl32.Vec3) {
	s.MultMatrix(mgl32.Scale3D(v[0], v[1], v[2]))
}

// LookAt replaces the top with a view matrix looking from eye toward target.
//
// Parameters:
//   - eye: the camera position
//   - target: the point being looked at
//   - up: the world up direction
func (s *Stack) LookAt(eye, target, up mgl32.Vec3) {
	s.Load(mgl32.LookAtV(eye, target, up))
}

// Perspective replaces the top with a perspective projection.
//
// Parameters:
//   - fovYDeg: vertical field of view in degrees
//   - aspect: viewport width / height
//   - near: near clipping distance (> 0)
//   - far: far clipping distance (> near)
func (s *Stack) Perspective(fovYDeg, aspect, near, far float32) {
	s.Load(mgl32.Perspective(mgl32.DegToRad(fovYDeg), aspect, near, far))
}
