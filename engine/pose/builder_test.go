package pose

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-stride/engine/transform"
)

const eps = 1e-4

func newDummyBuilder(t *testing.T, scale float32) *Builder {
	t.Helper()
	table, err := NewTable(DefaultPartCount, DefaultGroups())
	require.NoError(t, err)
	return NewBuilder(table, WithMeshScale(scale))
}

func TestBuildCoversEveryPart(t *testing.T) {
	b := newDummyBuilder(t, 0.5)
	parts, err := b.Build(transform.NewStack(), mgl32.Ident4(), 10)
	require.NoError(t, err)
	require.Len(t, parts, DefaultPartCount)
	for i, p := range parts {
		assert.Equal(t, i, p.Part)
		assert.NotEmpty(t, p.Group)
	}
}

func TestBuildLeavesStackBalanced(t *testing.T) {
	b := newDummyBuilder(t, 1)
	s := transform.NewStack()
	s.Translate(mgl32.Vec3{1, 2, 3})
	depth, top := s.Depth(), s.Top()

	_, err := b.Build(s, rootAt(-30, mgl32.Vec3{4, 0, 4}), 12.4)
	require.NoError(t, err)
	assert.Equal(t, depth, s.Depth())
	assert.True(t, top.ApproxEqualThreshold(s.Top(), eps))
}

func TestRestGroupIsRootTimesScale(t *testing.T) {
	b := newDummyBuilder(t, 0.25)
	root := rootAt(15, mgl32.Vec3{2, 0, -3}, 40)
	parts, err := b.Build(transform.NewStack(), root, 17)
	require.NoError(t, err)

	want := root.Mul4(mgl32.Scale3D(0.25, 0.25, 0.25))
	for _, i := range []int{13, 17, 21, 23, 24} {
		assert.True(t, want.ApproxEqualThreshold(parts[i].Model, eps), "part %d", i)
	}
}

func TestLeftArmComposition(t *testing.T) {
	b := newDummyBuilder(t, 2)
	theta := float32(8)
	parts, err := b.Build(transform.NewStack(), mgl32.Ident4(), theta)
	require.NoError(t, err)

	want := mgl32.Translate3D(0, -0.57, 1.67).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-theta))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-75))).
		Mul4(mgl32.Translate3D(0, 0.1, -0.85)).
		Mul4(mgl32.Scale3D(2, 2, 2))
	for i := 6; i < 12; i++ {
		assert.True(t, want.ApproxEqualThreshold(parts[i].Model, eps), "part %d", i)
	}
}

func TestArmsAreMirrorImages(t *testing.T) {
	b := newDummyBuilder(t, 0.7)
	mirror := mgl32.Scale3D(1, -1, 1)

	for _, theta := range []float32{0, 5, -12.4, 20} {
		left, err := b.Build(transform.NewStack(), mgl32.Ident4(), theta)
		require.NoError(t, err)
		right, err := b.Build(transform.NewStack(), mgl32.Ident4(), -theta)
		require.NoError(t, err)

		mirrored := mirror.Mul4(right[12].Model).Mul4(mirror)
		assert.True(t, left[6].Model.ApproxEqualThreshold(mirrored, eps), "theta %v", theta)
	}
}

func TestLegsSwingInAntiPhase(t *testing.T) {
	b := newDummyBuilder(t, 1)
	parts, err := b.Build(transform.NewStack(), mgl32.Ident4(), 20)
	require.NoError(t, err)

	// A point at the hip-local origin swings forward on one leg and back on the other.
	left := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 1.05}, parts[0].Model)
	right := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 1.05}, parts[14].Model)
	assert.Less(t, left[2], float32(1.05))
	assert.Greater(t, right[2], float32(1.05))
}

func TestGroupsShareRootNotEachOther(t *testing.T) {
	b := newDummyBuilder(t, 1)
	a, err := b.Build(transform.NewStack(), mgl32.Ident4(), 20)
	require.NoError(t, err)
	c, err := b.Build(transform.NewStack(), mgl32.Ident4(), 0)
	require.NoError(t, err)

	// Swinging the limbs never moves the rigid group.
	assert.Equal(t, a[21].Model, c[21].Model)
	assert.NotEqual(t, a[6].Model, c[6].Model)
}

func TestBuildOnEmptyStack(t *testing.T) {
	b := newDummyBuilder(t, 1)
	s := transform.NewStack()
	require.NoError(t, s.Pop())

	// Build pushes its own root frame, so an empty stack still balances.
	_, err := b.Build(s, mgl32.Ident4(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
}

func TestRootTransform(t *testing.T) {
	root := RootTransform(0, mgl32.Vec3{3, 99, -2}, 0, -1)
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, root)
	assert.InDelta(t, 3, origin[0], eps)
	assert.InDelta(t, -1, origin[1], eps)
	assert.InDelta(t, -2, origin[2], eps)

	// The mesh's +Z axis becomes world up.
	up := mgl32.TransformNormal(mgl32.Vec3{0, 0, 1}, root)
	assert.InDelta(t, 1, up[1], eps)
}

func rootAt(spin float32, pos mgl32.Vec3, yaw ...float32) mgl32.Mat4 {
	var y float32
	if len(yaw) > 0 {
		y = yaw[0]
	}
	return RootTransform(spin, pos, y, -1)
}
