package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("config file is not in a valid format")
)

//go:embed default.yaml
var DEFAULT []byte

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load decodes the embedded default configuration and then each provided
// file in order on top of it. Keys set in later files win; sequences such as
// figure.groups are replaced wholesale rather than merged.
func Load(paths ...string) (*Config, error) {
	cfg := &Config{}
	if err := decode(DEFAULT, cfg); err != nil {
		return nil, fmt.Errorf("invalid default config file: %w", err)
	}

	for _, path := range paths {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil, fmt.Errorf("could not process config file %s: %w", path, ErrUnsupportedFormat)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not process config file %s: %w", path, err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("could not merge config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills fields a user file zeroed out.
func (c *Config) applyDefaults() {
	c.Window.Title = common.Coalesce(c.Window.Title, "stride")
	c.Assets.Dir = common.Coalesce(c.Assets.Dir, ".")
	c.Light.Color = common.Coalesce(c.Light.Color, mgl32.Vec3{1, 1, 1})
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every section and reports all problems at once.
// Each reported error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalid(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.MinWidth >= 0 && c.Window.MinHeight >= 0 && c.Window.MaxWidth >= 0 && c.Window.MaxHeight >= 0,
		"window size limits must not be negative")
	check(c.Window.MaxWidth == 0 || c.Window.MinWidth <= c.Window.MaxWidth, "window.minWidth exceeds window.maxWidth")
	check(c.Window.MaxHeight == 0 || c.Window.MinHeight <= c.Window.MaxHeight, "window.minHeight exceeds window.maxHeight")
	check(c.Window.FrameLimit >= 0, "window.frameLimit must not be negative")

	for _, mesh := range []struct{ key, name string }{
		{"assets.goal", c.Assets.Goal},
		{"assets.dummy", c.Assets.Dummy},
		{"assets.world", c.Assets.World},
	} {
		check(strings.EqualFold(filepath.Ext(mesh.name), ".obj"), "%s %q must name an .obj file", mesh.key, mesh.name)
	}
	check(c.Assets.FootPart >= 0, "assets.footPart must not be negative")

	check(c.Simulation.RunSpeed > 0, "simulation.runSpeed must be positive")
	check(c.Simulation.TurnSpeed > 0, "simulation.turnSpeed must be positive")

	check(c.Gait.Limit > 0, "gait.limit must be positive")
	check(c.Gait.Step > 0 && c.Gait.Step <= c.Gait.Limit, "gait.step must be in (0, limit]")

	check(c.Camera.Speed > 0, "camera.speed must be positive")
	check(c.Camera.Sensitivity > 0, "camera.sensitivity must be positive")
	check(c.Camera.PitchLimit > 0 && c.Camera.PitchLimit < math.Pi/2, "camera.pitchLimit must be in (0, pi/2)")
	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "camera.fov must be in (0, 180)")
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "camera clip planes must satisfy 0 < near < far")

	check(c.Light.Step > 0, "light.step must be positive")

	if len(c.Figure.Groups) == 0 {
		errs = append(errs, invalid("figure.groups must not be empty"))
	} else {
		parts := c.partCount()
		if _, err := pose.NewTable(parts, c.Groups()); err != nil {
			errs = append(errs, fmt.Errorf("%w: figure.groups: %w", ErrInvalidConfig, err))
		}
		check(c.Assets.FootPart < parts, "assets.footPart %d is not a figure part", c.Assets.FootPart)
	}

	return errors.Join(errs...)
}

// partCount is one past the highest part index named by any group.
func (c *Config) partCount() int {
	n := 0
	for _, g := range c.Figure.Groups {
		for _, p := range g.Parts {
			n = max(n, p+1)
		}
	}
	return n
}

// Encode writes the configuration as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
