package material

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUMaterial is the uniform block for the lit fragment shader.
// Each vec3 is padded to 16 bytes and shine takes the last slot's first lane:
//
//	offset  0: ambient  vec3<f32> (+4 pad)
//	offset 16: diffuse  vec3<f32> (+4 pad)
//	offset 32: specular vec3<f32>
//	offset 44: shine    f32
//
// Size: 48 bytes.
type GPUMaterial struct {
	Ambient  mgl32.Vec3
	_        float32
	Diffuse  mgl32.Vec3
	_        float32
	Specular mgl32.Vec3
	Shine    float32
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 48)
	putVec3(buf[0:12], g.Ambient)
	putVec3(buf[16:28], g.Diffuse)
	putVec3(buf[32:44], g.Specular)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Shine))
	return buf
}

func putVec3(buf []byte, v mgl32.Vec3) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
}
