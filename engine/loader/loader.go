package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoGeometry is returned when a mesh file has no vertices.
	ErrNoGeometry = errors.New("loader: no geometry")
	// ErrMalformed is returned for lines that cannot be parsed.
	ErrMalformed = errors.New("loader: malformed mesh data")
	// ErrUnsupportedFormat is returned for file extensions with no backend.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")
)

// LoaderBackendType identifies the mesh file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	dir string

	cache map[string]Measurement

	backend loaderBackend
}

// Loader measures mesh files and caches the results by name.
// Only bounds are extracted; vertex data is left to the renderer.
type Loader interface {
	// Measure reads and fits a mesh file, resolving relative paths against the asset directory.
	// If the file was already measured, the cached result is returned.
	//
	// Parameters:
	//   - path: the mesh file path
	//
	// Returns:
	//   - Measurement: the fitted measurement
	//   - error: error if the file cannot be read or measured
	Measure(path string) (Measurement, error)

	// MeasureReader measures a mesh from r and caches it under name.
	//
	// Parameters:
	//   - name: the cache key
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - Measurement: the fitted measurement
	//   - error: error if measurement fails
	MeasureReader(name string, r io.Reader) (Measurement, error)

	// Get retrieves a cached measurement by name.
	//
	// Parameters:
	//   - name: the cache key
	//
	// Returns:
	//   - Measurement: the cached measurement
	//   - bool: false if nothing is cached under name
	Get(name string) (Measurement, bool)

	// Measurements returns a copy of the full cache.
	//
	// Returns:
	//   - map[string]Measurement: all cached measurements keyed by name
	Measurements() map[string]Measurement
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the given backend and options.
//
// Parameters:
//   - backendType: the mesh format backend (e.g. BackendTypeOBJ)
//   - options: functional options to configure the loader
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		cache: make(map[string]Measurement),
	}
	switch backendType {
	case BackendTypeOBJ:
		l.backend = newOBJLoaderBackend()
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// MeasureFile opens an OBJ file and measures it without caching.
//
// Parameters:
//   - path: the OBJ file path
//
// Returns:
//   - Measurement: the fitted measurement, named after the file's base name
//   - error: error if the file cannot be opened or measured
func MeasureFile(path string) (Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return Measurement{}, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()

	parts, err := ReadOBJ(f)
	if err != nil {
		return Measurement{}, fmt.Errorf("measure %s: %w", path, err)
	}
	return NewMeasurement(filepath.Base(path), parts), nil
}

func (l *loader) Measure(path string) (Measurement, error) {
	if l.dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, path)
	}
	l.mu.RLock()
	if cached, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	if err := l.checkFormat(path); err != nil {
		return Measurement{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Measurement{}, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()

	m, err := l.measure(filepath.Base(path), f)
	if err != nil {
		return Measurement{}, fmt.Errorf("measure %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = m
	l.mu.Unlock()

	log.Info().
		Str("mesh", m.Name).
		Int("parts", len(m.Parts)).
		Float32("scale", m.Scale).
		Msg("measured mesh")
	return m, nil
}

func (l *loader) MeasureReader(name string, r io.Reader) (Measurement, error) {
	l.mu.RLock()
	if cached, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	m, err := l.measure(name, r)
	if err != nil {
		return Measurement{}, fmt.Errorf("measure %q: %w", name, err)
	}

	l.mu.Lock()
	l.cache[name] = m
	l.mu.Unlock()
	return m, nil
}

func (l *loader) Get(name string) (Measurement, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.cache[name]
	return m, ok
}

func (l *loader) Measurements() map[string]Measurement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]Measurement, len(l.cache))
	for k, v := range l.cache {
		result[k] = v
	}
	return result
}

func (l *loader) measure(name string, r io.Reader) (Measurement, error) {
	if l.backend == nil {
		return Measurement{}, ErrUnsupportedFormat
	}
	parts, err := l.backend.Measure(r)
	if err != nil {
		return Measurement{}, err
	}
	return NewMeasurement(name, parts), nil
}

func (l *loader) checkFormat(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		if _, ok := l.backend.(*objLoaderBackend); ok {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}
