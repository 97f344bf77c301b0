package pose

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-stride/engine/transform"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// PartTransform is the composed model matrix for one mesh part.
type PartTransform struct {
	Part  int
	Group string
	Model mgl32.Mat4
}

// Builder composes per-part model transforms for an articulated mesh from a
// validated group table.
type Builder struct {
	table     *Table
	meshScale float32
}

// NewBuilder creates a Builder over table. The mesh scale defaults to 1.
//
// Parameters:
//   - table: the validated part-to-group table
//   - options: functional options to configure the builder
//
// Returns:
//   - *Builder: the newly created builder
func NewBuilder(table *Table, options ...BuilderOption) *Builder {
	b := &Builder{
		table:     table,
		meshScale: 1,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Table returns the group table the builder draws from.
func (b *Builder) Table() *Table {
	return b.table
}

// MeshScale returns the uniform scale applied last in every group.
func (b *Builder) MeshScale() float32 {
	return b.meshScale
}

// Build composes the transform of every part for limb-swing angle theta.
//
// The root is composed onto the stack's current top. Each group is pushed,
// composed and popped before the next, so groups are siblings under the root and
// the stack leaves Build at the depth it entered with.
//
// Parameters:
//   - stack: the frame's model stack
//   - root: the figure's root transform
//   - theta: the gait angle in degrees
//
// Returns:
//   - []PartTransform: one entry per part, indexed by part number
//   - error: a wrapped transform.ErrStackUnderflow if the stack was unbalanced
func (b *Builder) Build(stack *transform.Stack, root mgl32.Mat4, theta float32) ([]PartTransform, error) {
	out := make([]PartTransform, b.table.PartCount())

	stack.Push()
	stack.MultMatrix(root)
	for _, g := range b.table.groups {
		stack.Push()
		stack.Translate(g.Joint)
		if g.SwingSign != 0 {
			stack.Rotate(g.SwingSign*theta, axisY)
		}
		if g.RestPitch != 0 {
			stack.Rotate(g.RestPitch, axisX)
		}
		stack.Translate(g.Origin)
		stack.Scale(b.meshScale)

		model := stack.Top()
		for _, p := range g.Parts {
			out[p] = PartTransform{Part: p, Group: g.Name, Model: model}
		}
		if err := stack.Pop(); err != nil {
			return nil, fmt.Errorf("pose: group %q: %w", g.Name, err)
		}
	}
	if err := stack.Pop(); err != nil {
		return nil, fmt.Errorf("pose: root: %w", err)
	}
	return out, nil
}

// RootTransform composes the figure's root from the scene spin, its x/z position on
// the floor and its yaw. The final -90° pitch stands the Z-up dummy mesh upright.
//
// Parameters:
//   - spinDeg: the whole-scene spin about Y in degrees
//   - pos: the figure position; only x and z are used
//   - yawDeg: the figure yaw in degrees
//   - floorY: the height at which the figure stands
//
// Returns:
//   - mgl32.Mat4: the root transform
func RootTransform(spinDeg float32, pos mgl32.Vec3, yawDeg, floorY float32) mgl32.Mat4 {
	s := transform.NewStack()
	s.Rotate(spinDeg, axisY)
	s.Translate(mgl32.Vec3{pos[0], floorY, pos[2]})
	s.Rotate(-yawDeg, axisY)
	s.Rotate(-90, axisX)
	return s.Top()
}
