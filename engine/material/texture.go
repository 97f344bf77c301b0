package material

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-stride/common"
)

// Indices of the stock texture slots.
const (
	TextureField = iota
	TextureBall
	TextureMars
)

// TextureSlot names an image file and the sampler it must be drawn with.
// Decoding and upload are left to the renderer.
type TextureSlot struct {
	Name    string
	File    string
	Sampler common.SamplerStagingData
}

// DefaultTextures returns the stock texture slots, indexed by the constants in this package.
// The pitch clamps to its edges; the ball and planet textures tile.
//
// Returns:
//   - []TextureSlot: the texture slots
func DefaultTextures() []TextureSlot {
	return []TextureSlot{
		{Name: "field", File: "soccer_field.jpg", Sampler: common.LinearSampler(wgpu.AddressModeClampToEdge)},
		{Name: "ball", File: "soccer_texture.jpg", Sampler: common.LinearSampler(wgpu.AddressModeRepeat)},
		{Name: "mars", File: "mars.jpg", Sampler: common.LinearSampler(wgpu.AddressModeRepeat)},
	}
}

// CubeFace identifies one side of a cube map.
type CubeFace int

const (
	FacePositiveX CubeFace = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// Skybox lists the six images of the environment cube map by face.
type Skybox struct {
	Faces   [6]string
	Sampler common.SamplerStagingData
}

// NewSkybox maps a front/back/up/down/left/right image set onto cube faces.
// Front looks down -Z; the left and right images land on +X and -X respectively.
//
// Parameters:
//   - front, back, up, down, left, right: the image file names
//
// Returns:
//   - Skybox: the face table with a clamped linear sampler
func NewSkybox(front, back, up, down, left, right string) Skybox {
	var s Skybox
	s.Faces[FaceNegativeZ] = front
	s.Faces[FacePositiveZ] = back
	s.Faces[FacePositiveY] = up
	s.Faces[FaceNegativeY] = down
	s.Faces[FacePositiveX] = left
	s.Faces[FaceNegativeX] = right
	s.Sampler = common.LinearSampler(wgpu.AddressModeClampToEdge)
	return s
}

// DefaultSkybox returns the stock "sincity" environment.
//
// Returns:
//   - Skybox: the stock cube map
func DefaultSkybox() Skybox {
	return NewSkybox("sincity_ft.tga", "sincity_bk.tga", "sincity_up.tga", "sincity_dn.tga", "sincity_lf.tga", "sincity_rt.tga")
}
