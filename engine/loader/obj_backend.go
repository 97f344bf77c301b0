package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-stride/common"
)

// objLoaderBackend measures Wavefront OBJ files. Only positions, groups and
// faces are read; normals, texture coordinates and materials are skipped.
type objLoaderBackend struct{}

var _ loaderBackend = &objLoaderBackend{}

func newOBJLoaderBackend() loaderBackend {
	return &objLoaderBackend{}
}

func (b *objLoaderBackend) Measure(r io.Reader) ([]Part, error) {
	return ReadOBJ(r)
}

type objPart struct {
	name     string
	faces    common.Bounds
	declared common.Bounds
}

// ReadOBJ scans an OBJ stream and returns the bounds of each object or group.
// A part's bounds cover the vertices its faces reference, and parts with no
// faces are dropped. A file with no faces at all is measured by the vertices
// declared under each part instead.
//
// Parameters:
//   - r: the reader providing OBJ text
//
// Returns:
//   - []Part: the measured parts in file order
//   - error: ErrNoGeometry if the stream has no vertices, or a parse error with its line number
func ReadOBJ(r io.Reader) ([]Part, error) {
	var (
		verts []mgl32.Vec3
		parts []*objPart
	)
	current := func() *objPart {
		if len(parts) == 0 {
			parts = append(parts, &objPart{name: "default", faces: common.EmptyBounds(), declared: common.EmptyBounds()})
		}
		return parts[len(parts)-1]
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "o", "g":
			name := "default"
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			p := current()
			if p.faces.Empty() && p.declared.Empty() {
				// nothing measured under the previous name yet
				p.name = name
				continue
			}
			parts = append(parts, &objPart{name: name, faces: common.EmptyBounds(), declared: common.EmptyBounds()})
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates: %w", line, ErrMalformed)
			}
			var v mgl32.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformed, err)
				}
				v[i] = float32(f)
			}
			verts = append(verts, v)
			current().declared.Extend(v)
		case "f":
			p := current()
			for _, tok := range fields[1:] {
				idx, err := faceIndex(tok, len(verts))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				p.faces.Extend(verts[idx])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(verts) == 0 {
		return nil, ErrNoGeometry
	}

	faced := false
	for _, p := range parts {
		if !p.faces.Empty() {
			faced = true
			break
		}
	}
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		b := p.declared
		if faced {
			b = p.faces
		}
		if b.Empty() {
			continue
		}
		out = append(out, Part{Name: p.name, Bounds: b})
	}
	return out, nil
}

// faceIndex resolves the position index of one face token ("v", "v/t", "v//n", "v/t/n").
// Negative indices count back from the last vertex read.
func faceIndex(tok string, count int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: face index %q", ErrMalformed, tok)
	}
	switch {
	case n > 0 && n <= count:
		return n - 1, nil
	case n < 0 && -n <= count:
		return count + n, nil
	}
	return 0, fmt.Errorf("%w: face index %d of %d vertices", ErrMalformed, n, count)
}
