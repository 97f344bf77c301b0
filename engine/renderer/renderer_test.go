package renderer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-stride/engine/material"
)

func frame(n uint64, passes ...Pass) Frame {
	f := Frame{Number: n}
	for i, p := range passes {
		f.Commands = append(f.Commands, DrawCommand{Mesh: "m", Part: i, Model: mgl32.Ident4(), Pass: p, Texture: NoTexture})
	}
	return f
}

func TestRecorderStoresCopies(t *testing.T) {
	r := NewRecorder()
	f := frame(1, PassLit, PassSkybox)
	require.NoError(t, r.Render(f))
	f.Commands[0].Mesh = "changed"

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "m", last.Commands[0].Mesh)
	assert.Equal(t, 1, last.Count(PassLit))
	assert.Equal(t, 1, last.Count(PassSkybox))
	assert.Equal(t, 0, last.Count(PassTextured))
}

func TestRecorderKeepLast(t *testing.T) {
	r := NewRecorder(WithKeepLast(2))
	for i := uint64(1); i <= 5; i++ {
		require.NoError(t, r.Render(frame(i)))
	}
	frames := r.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, uint64(4), frames[0].Number)
	assert.Equal(t, uint64(5), frames[1].Number)
	assert.Equal(t, 5, r.Rendered())
}

func TestRecorderMaxFrames(t *testing.T) {
	r := NewRecorder(WithMaxFrames(1))
	require.NoError(t, r.Render(frame(1)))
	assert.ErrorIs(t, r.Render(frame(2)), ErrFrameLimit)
	assert.Equal(t, 1, r.Rendered())
}

func TestRecorderEmpty(t *testing.T) {
	_, ok := NewRecorder().Last()
	assert.False(t, ok)
}

func TestMarshalDraw(t *testing.T) {
	table := material.DefaultTable()
	c := DrawCommand{Mesh: "goal", Model: mgl32.Translate3D(1, 2, 3), Material: material.Brass, Pass: PassLit}
	buf, err := MarshalDraw(c, table)
	require.NoError(t, err)
	require.Len(t, buf, DrawUniformSize)

	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(1), f(12*4))
	assert.Equal(t, float32(3), f(14*4))
	assert.Equal(t, float32(0.3294), f(64))
	assert.Equal(t, float32(180), f(64+44))

	c.Material = 42
	_, err = MarshalDraw(c, table)
	assert.ErrorIs(t, err, material.ErrUnknownMaterial)

	c.Pass = PassTextured
	buf, err = MarshalDraw(c, table)
	require.NoError(t, err)
	assert.Equal(t, float32(0), f(64))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])))
}

func TestPassString(t *testing.T) {
	assert.Equal(t, "lit", PassLit.String())
	assert.Equal(t, "skybox", PassSkybox.String())
	assert.Equal(t, "pass(9)", Pass(9).String())
}
