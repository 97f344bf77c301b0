package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoParts = `# two boxes
o left
v -1 0 0
v 0 1 0
v -1 1 2
f 1 2 3
o right
v 1 0 0
v 3 2 1
f 4/1 5//2 -1
`

func TestReadOBJParts(t *testing.T) {
	parts, err := ReadOBJ(strings.NewReader(twoParts))
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "left", parts[0].Name)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, parts[0].Bounds.Min)
	assert.Equal(t, mgl32.Vec3{0, 1, 2}, parts[0].Bounds.Max)

	assert.Equal(t, "right", parts[1].Name)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, parts[1].Bounds.Min)
	assert.Equal(t, mgl32.Vec3{3, 2, 1}, parts[1].Bounds.Max)
}

func TestReadOBJFaceBoundsUseReferencedVertices(t *testing.T) {
	// vertices are global; the second group only references the far corner
	src := "v 0 0 0\nv 1 1 1\nv 9 9 9\ng a\nf 1 2 1\ng b\nf 3 3 3\n"
	parts, err := ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "a", parts[0].Name)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, parts[0].Bounds.Max)
	assert.Equal(t, mgl32.Vec3{9, 9, 9}, parts[1].Bounds.Min)
}

func TestReadOBJPointCloud(t *testing.T) {
	parts, err := ReadOBJ(strings.NewReader("v 1 2 3\nv -1 -2 -3\n"))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "default", parts[0].Name)
	assert.Equal(t, mgl32.Vec3{-1, -2, -3}, parts[0].Bounds.Min)
}

func TestReadOBJErrors(t *testing.T) {
	_, err := ReadOBJ(strings.NewReader("# empty\ng nothing\n"))
	assert.ErrorIs(t, err, ErrNoGeometry)

	_, err = ReadOBJ(strings.NewReader("v 1 2 3\nv 1 x 3\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadOBJ(strings.NewReader("v 1 2\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReadOBJ(strings.NewReader("v 1 2 3\nf 1 2 3\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFit(t *testing.T) {
	parts, err := ReadOBJ(strings.NewReader(twoParts))
	require.NoError(t, err)

	b, center, scale := Fit(parts)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, b.Min)
	assert.Equal(t, mgl32.Vec3{3, 2, 2}, b.Max)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, center)
	// max x (3) dominates, extent x is 4
	assert.Equal(t, float32(0.5), scale)
}

func TestFitEmpty(t *testing.T) {
	_, center, scale := Fit(nil)
	assert.Equal(t, mgl32.Vec3{}, center)
	assert.Equal(t, float32(1), scale)
}

func TestMeasurementPart(t *testing.T) {
	m := NewMeasurement("x", []Part{{Name: "only"}})
	p, ok := m.Part(0)
	require.True(t, ok)
	assert.Equal(t, "only", p.Name)
	_, ok = m.Part(1)
	assert.False(t, ok)
}

func TestLoaderCachesByPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.obj"), []byte(twoParts), 0o644))

	l := NewLoader(BackendTypeOBJ, WithAssetDir(dir))
	m, err := l.Measure("box.obj")
	require.NoError(t, err)
	assert.Equal(t, "box.obj", m.Name)
	assert.Len(t, m.Parts, 2)

	// the cached copy survives the file going away
	require.NoError(t, os.Remove(filepath.Join(dir, "box.obj")))
	again, err := l.Measure("box.obj")
	require.NoError(t, err)
	assert.Equal(t, m, again)

	got, ok := l.Get(filepath.Join(dir, "box.obj"))
	require.True(t, ok)
	assert.Equal(t, m.Scale, got.Scale)
	assert.Len(t, l.Measurements(), 1)
}

func TestLoaderErrors(t *testing.T) {
	l := NewLoader(BackendTypeOBJ, WithAssetDir(t.TempDir()))
	_, err := l.Measure("model.gltf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.Measure("missing.obj")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.MeasureReader("empty", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoGeometry)
}

func TestMeasureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.obj")
	require.NoError(t, os.WriteFile(path, []byte("v -1 -1 -1\nv 1 1 1\nf 1 2 1\n"), 0o644))
	m, err := MeasureFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sphere.obj", m.Name)
	assert.Equal(t, float32(1), m.Scale)
	assert.Equal(t, mgl32.Vec3{}, m.Center)
}
