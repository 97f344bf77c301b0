package loader

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-stride/common"
)

// Measurement is a measured mesh file: its parts, their union, and the
// translate and scale that fit it into a unit cube.
type Measurement struct {
	Name   string
	Parts  []Part
	Bounds common.Bounds
	Center mgl32.Vec3
	Scale  float32
}

// Part returns the part at index i, or false if i is out of range.
//
// Parameters:
//   - i: the part index
//
// Returns:
//   - Part: the part
//   - bool: false if there is no such part
func (m Measurement) Part(i int) (Part, bool) {
	if i < 0 || i >= len(m.Parts) {
		return Part{}, false
	}
	return m.Parts[i], true
}

// Fit unions the bounds of parts and derives the centring translate and unit scale.
//
// Parameters:
//   - parts: the measured parts
//
// Returns:
//   - common.Bounds: the overall bounds
//   - mgl32.Vec3: the centre of the overall bounds
//   - float32: the unit scale, see common.UnitScale
func Fit(parts []Part) (common.Bounds, mgl32.Vec3, float32) {
	b := common.EmptyBounds()
	for _, p := range parts {
		b = b.Union(p.Bounds)
	}
	if b.Empty() {
		return b, mgl32.Vec3{}, 1
	}
	return b, b.Center(), common.UnitScale(b)
}

// NewMeasurement fits parts and wraps the result under name.
//
// Parameters:
//   - name: the mesh name
//   - parts: the measured parts
//
// Returns:
//   - Measurement: the fitted measurement
func NewMeasurement(name string, parts []Part) Measurement {
	b, c, s := Fit(parts)
	return Measurement{Name: name, Parts: parts, Bounds: b, Center: c, Scale: s}
}
