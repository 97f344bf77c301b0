package renderer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-stride/engine/material"
)

// DrawUniformSize is the byte size of a packed per-draw uniform block.
const DrawUniformSize = 64 + 48

// MarshalDraw packs the per-draw uniform block for a lit or textured draw:
// the model matrix (mat4x4<f32>, column-major) followed by the material block.
// Non-lit passes get a zeroed material block.
//
// Parameters:
//   - c: the draw command
//   - materials: the material table to resolve c.Material against
//
// Returns:
//   - []byte: DrawUniformSize bytes ready for GPU upload
//   - error: material.ErrUnknownMaterial if a lit draw names an unknown material
func MarshalDraw(c DrawCommand, materials *material.Table) ([]byte, error) {
	buf := make([]byte, DrawUniformSize)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c.Model[i]))
	}
	if c.Pass != PassLit {
		return buf, nil
	}
	m, err := materials.Lookup(c.Material)
	if err != nil {
		return nil, fmt.Errorf("draw %s[%d]: %w", c.Mesh, c.Part, err)
	}
	g := m.GPU()
	copy(buf[64:], g.Marshal())
	return buf, nil
}
