package config

import (
	"fmt"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-stride/engine/camera"
	"github.com/Carmen-Shannon/oxy-stride/engine/gait"
	"github.com/Carmen-Shannon/oxy-stride/engine/light"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-stride/engine/material"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
)

// Path joins an asset file name onto the asset directory.
func (a AssetsConfig) Path(name string) string {
	return filepath.Join(a.Dir, name)
}

// Groups converts the figure section into pose groups, in file order.
func (c *Config) Groups() []pose.Group {
	groups := make([]pose.Group, len(c.Figure.Groups))
	for i, g := range c.Figure.Groups {
		groups[i] = pose.Group{
			Name:      g.Name,
			Parts:     append([]int(nil), g.Parts...),
			Joint:     g.Joint,
			SwingSign: g.SwingSign,
			RestPitch: g.RestPitch,
			Origin:    g.Origin,
		}
	}
	return groups
}

// PoseTable validates the figure groups against a mesh that was actually loaded.
func (c *Config) PoseTable(partCount int) (*pose.Table, error) {
	t, err := pose.NewTable(partCount, c.Groups())
	if err != nil {
		return nil, fmt.Errorf("figure groups for a %d-part mesh: %w", partCount, err)
	}
	return t, nil
}

// Textures returns the stock texture slots with file names taken from the assets section.
func (c *Config) Textures() []material.TextureSlot {
	slots := material.DefaultTextures()
	files := map[string]string{
		"field": c.Assets.Textures.Field,
		"ball":  c.Assets.Textures.Ball,
		"mars":  c.Assets.Textures.Mars,
	}
	for i := range slots {
		if f := files[slots[i].Name]; f != "" {
			slots[i].File = f
		}
	}
	return slots
}

func (c *Config) Skybox() material.Skybox {
	s := c.Assets.Skybox
	return material.NewSkybox(s.Front, s.Back, s.Up, s.Down, s.Left, s.Right)
}

func (c *Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithEye(c.Camera.Eye),
		camera.WithSpeed(c.Camera.Speed),
		camera.WithSensitivity(c.Camera.Sensitivity),
		camera.WithPitchLimit(c.Camera.PitchLimit),
		camera.WithFov(c.Camera.Fov),
		camera.WithClip(c.Camera.Near, c.Camera.Far),
	}
}

func (c *Config) LightOptions() []light.LightBuilderOption {
	return []light.LightBuilderOption{
		light.WithPosition(c.Light.Position),
		light.WithColor(c.Light.Color),
		light.WithStep(c.Light.Step),
	}
}

func (c *Config) GaitOptions() []gait.AnimatorBuilderOption {
	return []gait.AnimatorBuilderOption{
		gait.WithLimit(c.Gait.Limit),
		gait.WithStep(c.Gait.Step),
	}
}

func (c *Config) LocomotionOptions() []locomotion.ControllerBuilderOption {
	return []locomotion.ControllerBuilderOption{
		locomotion.WithRunSpeed(c.Simulation.RunSpeed),
		locomotion.WithTurnSpeed(c.Simulation.TurnSpeed),
	}
}

// SceneOptions builds every scene collaborator the configuration describes.
//
// Parameters:
//   - partCount: the number of shapes in the loaded dummy mesh
//
// Returns:
//   - []scene.SceneBuilderOption: options for scene.NewScene
//   - error: the pose table validation error, if the groups do not fit the mesh
func (c *Config) SceneOptions(partCount int) ([]scene.SceneBuilderOption, error) {
	table, err := c.PoseTable(partCount)
	if err != nil {
		return nil, err
	}
	return []scene.SceneBuilderOption{
		scene.WithCamera(camera.NewCamera(c.CameraOptions()...)),
		scene.WithLight(light.NewLight(c.LightOptions()...)),
		scene.WithGait(gait.NewAnimator(c.GaitOptions()...)),
		scene.WithLocomotion(locomotion.NewController(c.LocomotionOptions()...)),
		scene.WithPoseTable(table),
		scene.WithFloorY(c.Figure.FloorY),
		scene.WithFootPart(c.Assets.FootPart),
	}, nil
}
