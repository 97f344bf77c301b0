package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-stride/common"
)

// Part is a named piece of a mesh file with its axis-aligned bounds.
type Part struct {
	Name   string
	Bounds common.Bounds
}

// loaderBackend defines the internal interface for reading a mesh format into measured parts.
// Each supported file format implements this interface.
type loaderBackend interface {
	// Measure reads a mesh from r and returns its parts in file order.
	//
	// Parameters:
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - []Part: the measured parts
	//   - error: error if the data is malformed or has no geometry
	Measure(r io.Reader) ([]Part, error)
}
