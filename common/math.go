package common

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box in model space.
// The zero value is NOT empty; use EmptyBounds to start an accumulation.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBounds returns an inverted box that any call to Extend will replace.
//
// Returns:
//   - Bounds: a box with Min at +MaxFloat32 and Max at -MaxFloat32
func EmptyBounds() Bounds {
	return Bounds{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Empty reports whether no point has been added to the box.
//
// Returns:
//   - bool: true if Min exceeds Max on any axis
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend grows the box to contain p.
//
// Parameters:
//   - p: the point to include
func (b *Bounds) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union returns the smallest box containing both b and o.
// An empty operand is ignored.
//
// Parameters:
//   - o: the other box
//
// Returns:
//   - Bounds: the combined box
func (b Bounds) Union(o Bounds) Bounds {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	out := b
	out.Extend(o.Min)
	out.Extend(o.Max)
	return out
}

// Extent returns Max - Min.
//
// Returns:
//   - mgl32.Vec3: the box size on each axis
func (b Bounds) Extent() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint Min + 0.5 * (Max - Min).
//
// Returns:
//   - mgl32.Vec3: the box center
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Extent().Mul(0.5))
}

// UnitScale returns the uniform scale that maps the box to a size of 2 along its
// dominant axis. The dominant axis is picked by comparing the Max components, not
// the extents; assets authored around the origin behave the same either way.
// A degenerate extent along the chosen axis yields 1.
//
// Parameters:
//   - b: the bounds to normalize
//
// Returns:
//   - float32: the scale factor
func UnitScale(b Bounds) float32 {
	ext := b.Extent()
	var size float32
	switch {
	case b.Max[0] > b.Max[1] && b.Max[0] > b.Max[2]:
		size = ext[0]
	case b.Max[1] > b.Max[0] && b.Max[1] > b.Max[2]:
		size = ext[1]
	default:
		size = ext[2]
	}
	if size <= 0 {
		return 1
	}
	return 2.0 / size
}

// Distance returns the Euclidean distance between two points.
//
// Parameters:
//   - a, b: the points to measure between
//
// Returns:
//   - float32: |a - b|
func Distance(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}
