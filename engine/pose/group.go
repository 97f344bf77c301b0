package pose

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidGroupIndex is returned when a part index falls outside the mesh or no group owns it.
	ErrInvalidGroupIndex = errors.New("pose: part index is not in any group")
	// ErrOverlappingGroups is returned when two groups claim the same part.
	ErrOverlappingGroups = errors.New("pose: part belongs to more than one group")
	// ErrUncoveredPart is returned when a mesh part has no group.
	ErrUncoveredPart = errors.New("pose: mesh part has no group")
)

// DefaultPartCount is the number of shapes in the stock dummy mesh.
const DefaultPartCount = 29

// Group is a fixed set of mesh parts that share one composed transform per frame.
//
// The group transform is root * T(Joint) * Ry(SwingSign*θ) * Rx(RestPitch) * T(Origin) * S(meshScale):
// Origin moves the joint to the mesh origin, the rotations happen about it, and
// Joint puts the limb back on the body.
type Group struct {
	Name  string
	Parts []int

	// Joint is the translation applied before the joint rotations.
	Joint mgl32.Vec3
	// SwingSign multiplies the gait angle; 0 means the group does not swing.
	SwingSign float32
	// RestPitch is a fixed rotation about X, in degrees, applied after the swing.
	RestPitch float32
	// Origin is the negated local pivot, applied after the rotations.
	Origin mgl32.Vec3
}

// Table is a validated partition of a mesh's part indices into groups.
type Table struct {
	groups []Group
	owner  []int
}

// NewTable validates groups against a mesh with partCount parts.
// Group index sets must be disjoint and their union must be exactly [0, partCount).
//
// Parameters:
//   - partCount: the number of parts in the loaded mesh
//   - groups: the group definitions, in draw order
//
// Returns:
//   - *Table: the validated table
//   - error: ErrInvalidGroupIndex, ErrOverlappingGroups or ErrUncoveredPart
func NewTable(partCount int, groups []Group) (*Table, error) {
	owner := make([]int, partCount)
	for i := range owner {
		owner[i] = -1
	}

	copied := make([]Group, len(groups))
	for gi, g := range groups {
		g.Parts = slices.Clone(g.Parts)
		copied[gi] = g
		for _, p := range g.Parts {
			if p < 0 || p >= partCount {
				return nil, fmt.Errorf("group %q part %d of %d: %w", g.Name, p, partCount, ErrInvalidGroupIndex)
			}
			if owner[p] != -1 {
				return nil, fmt.Errorf("part %d in %q and %q: %w", p, groups[owner[p]].Name, g.Name, ErrOverlappingGroups)
			}
			owner[p] = gi
		}
	}
	for p, gi := range owner {
		if gi == -1 {
			return nil, fmt.Errorf("part %d: %w", p, ErrUncoveredPart)
		}
	}

	return &Table{groups: copied, owner: owner}, nil
}

// Groups returns the groups in draw order.
//
// Returns:
//   - []Group: a copy of the group list
func (t *Table) Groups() []Group {
	return slices.Clone(t.groups)
}

// PartCount returns the number of mesh parts covered by the table.
func (t *Table) PartCount() int {
	return len(t.owner)
}

// Lookup returns the group that owns part.
//
// Parameters:
//   - part: the mesh part index
//
// Returns:
//   - Group: the owning group
//   - error: ErrInvalidGroupIndex if part is out of range
func (t *Table) Lookup(part int) (Group, error) {
	if part < 0 || part >= len(t.owner) {
		return Group{}, fmt.Errorf("part %d of %d: %w", part, len(t.owner), ErrInvalidGroupIndex)
	}
	return t.groups[t.owner[part]], nil
}

// DefaultGroups returns the layout of the stock 29-part dummy mesh, seen from the
// dummy's own point of view.
//
// Returns:
//   - []Group: the left arm, right arm, left leg, right leg and rigid rest groups
func DefaultGroups() []Group {
	return []Group{
		{
			Name:      "left-arm",
			Parts:     []int{6, 7, 8, 9, 10, 11},
			Joint:     mgl32.Vec3{0, -0.57, 1.67},
			SwingSign: -1,
			RestPitch: -75,
			Origin:    mgl32.Vec3{0, 0.1, -0.85},
		},
		{
			Name:      "right-arm",
			Parts:     []int{12, 15, 18, 22, 27, 28},
			Joint:     mgl32.Vec3{0, 0.57, 1.67},
			SwingSign: 1,
			RestPitch: 75,
			Origin:    mgl32.Vec3{0, -0.1, -0.85},
		},
		{
			Name:      "left-leg",
			Parts:     []int{0, 1, 2, 3, 4, 5},
			Joint:     mgl32.Vec3{0, 0.07, 1.07},
			SwingSign: 1,
			Origin:    mgl32.Vec3{0, -0.07, -1.05},
		},
		{
			Name:      "right-leg",
			Parts:     []int{14, 16, 19, 20, 25, 26},
			Joint:     mgl32.Vec3{0, -0.07, 1.05},
			SwingSign: -1,
			Origin:    mgl32.Vec3{0, 0.07, -1.05},
		},
		{
			// head, neck, torso and pelvis
			Name:  "rest",
			Parts: []int{13, 17, 21, 23, 24},
		},
	}
}
