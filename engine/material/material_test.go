package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableLookup(t *testing.T) {
	table := DefaultTable()
	require.Equal(t, 7, table.Len())

	m, err := table.Lookup(Copper)
	require.NoError(t, err)
	assert.Equal(t, "copper", m.Name)
	assert.Equal(t, float32(0.7038), m.Diffuse[0])

	m, err = table.Lookup(MatteBlack)
	require.NoError(t, err)
	assert.Equal(t, float32(1), m.Shine)

	_, err = table.Lookup(7)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	_, err = table.Lookup(-1)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestByName(t *testing.T) {
	table := DefaultTable()
	i, err := table.ByName("brass")
	require.NoError(t, err)
	assert.Equal(t, Brass, i)

	_, err = table.ByName("gold")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestGPUMaterialLayout(t *testing.T) {
	m, err := DefaultTable().Lookup(ShinyBluePlastic)
	require.NoError(t, err)
	g := m.GPU()
	require.Equal(t, 48, g.Size())

	buf := g.Marshal()
	require.Len(t, buf, 48)
	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(0.02), f(0))
	assert.Equal(t, float32(0.16), f(20))
	assert.Equal(t, float32(0.9922), f(32))
	assert.Equal(t, float32(180), f(44))
	assert.Equal(t, float32(0), f(12))
}

func TestTextureSamplers(t *testing.T) {
	tex := DefaultTextures()
	require.Len(t, tex, 3)
	assert.Equal(t, "soccer_field.jpg", tex[TextureField].File)
	assert.Equal(t, wgpu.AddressModeClampToEdge, tex[TextureField].Sampler.AddressModeU)
	assert.Equal(t, wgpu.AddressModeRepeat, tex[TextureBall].Sampler.AddressModeV)
}

func TestSkyboxFaceOrder(t *testing.T) {
	s := DefaultSkybox()
	assert.Equal(t, "sincity_ft.tga", s.Faces[FaceNegativeZ])
	assert.Equal(t, "sincity_bk.tga", s.Faces[FacePositiveZ])
	assert.Equal(t, "sincity_lf.tga", s.Faces[FacePositiveX])
	assert.Equal(t, "sincity_rt.tga", s.Faces[FaceNegativeX])
}
