package material

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownMaterial is returned when a material index or name is not in the table.
var ErrUnknownMaterial = errors.New("material: unknown material")

// Indices of the stock materials.
const (
	ShinyBluePlastic = iota
	FlatGrey
	Brass
	Copper
	ShinyChocolate
	PlasticPink
	MatteBlack
)

// Material is a set of Blinn-Phong shading coefficients.
type Material struct {
	Name     string
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Shine    float32
}

// GPU returns the material in its uniform upload layout.
//
// Returns:
//   - GPUMaterial: the packed uniform
func (m Material) GPU() GPUMaterial {
	return GPUMaterial{
		Ambient:  m.Ambient,
		Diffuse:  m.Diffuse,
		Specular: m.Specular,
		Shine:    m.Shine,
	}
}

// Table is an indexed list of materials.
type Table struct {
	materials []Material
}

// NewTable creates a Table from materials, indexed in the order given.
//
// Parameters:
//   - materials: the materials to index
//
// Returns:
//   - *Table: the newly created table
func NewTable(materials ...Material) *Table {
	return &Table{materials: append([]Material(nil), materials...)}
}

// DefaultTable returns the stock materials, indexed by the constants in this package.
//
// Returns:
//   - *Table: the stock material table
func DefaultTable() *Table {
	specular := mgl32.Vec3{0.9922, 0.941176, 0.9}
	return NewTable(
		Material{Name: "shiny blue plastic", Ambient: mgl32.Vec3{0.02, 0.04, 0.2}, Diffuse: mgl32.Vec3{0.0, 0.16, 0.9}, Specular: specular, Shine: 180},
		Material{Name: "flat grey", Ambient: mgl32.Vec3{0.13, 0.13, 0.14}, Diffuse: mgl32.Vec3{0.3, 0.3, 0.4}, Specular: specular, Shine: 180},
		Material{Name: "brass", Ambient: mgl32.Vec3{0.3294, 0.2235, 0.02745}, Diffuse: mgl32.Vec3{0.7804, 0.5686, 0.11373}, Specular: specular, Shine: 180},
		Material{Name: "copper", Ambient: mgl32.Vec3{0.1913, 0.0735, 0.0225}, Diffuse: mgl32.Vec3{0.7038, 0.27048, 0.0828}, Specular: specular, Shine: 180},
		Material{Name: "shiny chocolate", Ambient: mgl32.Vec3{0.02, 0.20, 0.027}, Diffuse: mgl32.Vec3{0.8, 0.16, 0.21}, Specular: specular, Shine: 180},
		Material{Name: "plastic pink", Ambient: mgl32.Vec3{0.20, 0.02, 0.027}, Diffuse: mgl32.Vec3{0.8, 0.16, 0.21}, Specular: specular, Shine: 180},
		Material{Name: "matte black", Ambient: mgl32.Vec3{0.01, 0.01, 0.01}, Diffuse: mgl32.Vec3{0.03, 0.03, 0.04}, Specular: mgl32.Vec3{0.2, 0.2, 0.2}, Shine: 1},
	)
}

// Len returns the number of materials.
func (t *Table) Len() int {
	return len(t.materials)
}

// Lookup returns the material at index i.
//
// Parameters:
//   - i: the material index
//
// Returns:
//   - Material: the material
//   - error: ErrUnknownMaterial if i is out of range
func (t *Table) Lookup(i int) (Material, error) {
	if i < 0 || i >= len(t.materials) {
		return Material{}, fmt.Errorf("index %d of %d: %w", i, len(t.materials), ErrUnknownMaterial)
	}
	return t.materials[i], nil
}

// ByName returns the index of the material called name.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - int: the material index
//   - error: ErrUnknownMaterial if no material has that name
func (t *Table) ByName(name string) (int, error) {
	for i, m := range t.materials {
		if m.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
}
