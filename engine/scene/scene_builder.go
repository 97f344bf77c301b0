package scene

import (
	"github.com/Carmen-Shannon/oxy-stride/engine/camera"
	"github.com/Carmen-Shannon/oxy-stride/engine/gait"
	"github.com/Carmen-Shannon/oxy-stride/engine/game_object"
	"github.com/Carmen-Shannon/oxy-stride/engine/input"
	"github.com/Carmen-Shannon/oxy-stride/engine/light"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-stride/engine/material"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithCamera replaces the default camera.
//
// Parameters:
//   - c: the camera to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(c camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.camera = c
	}
}

// WithLight replaces the default point light.
//
// Parameters:
//   - l: the light to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.light = l
	}
}

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the bindings to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBindings(b *input.Bindings) SceneBuilderOption {
	return func(s *scene) {
		s.bindings = b
	}
}

// WithMaterials replaces the default material table.
//
// Parameters:
//   - t: the material table
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMaterials(t *material.Table) SceneBuilderOption {
	return func(s *scene) {
		s.materials = t
	}
}

// WithLocomotion replaces the default locomotion controller.
//
// Parameters:
//   - c: the controller to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLocomotion(c *locomotion.Controller) SceneBuilderOption {
	return func(s *scene) {
		s.locomotion = c
	}
}

// WithGait replaces the default gait animator.
//
// Parameters:
//   - a: the animator to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithGait(a *gait.Animator) SceneBuilderOption {
	return func(s *scene) {
		s.gait = a
	}
}

// WithPoseTable replaces the stock dummy part layout.
//
// Parameters:
//   - t: a validated group table
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPoseTable(t *pose.Table) SceneBuilderOption {
	return func(s *scene) {
		s.poseTable = t
	}
}

// WithPlayer sets the figure's starting state.
//
// Parameters:
//   - options: game object options applied to a fresh player
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPlayer(options ...game_object.GameObjectBuilderOption) SceneBuilderOption {
	return func(s *scene) {
		s.player = game_object.NewGameObject(options...)
	}
}

// WithFloorY sets the height the figure stands at.
//
// Parameters:
//   - y: the floor height
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFloorY(y float32) SceneBuilderOption {
	return func(s *scene) {
		s.floorY = y
	}
}

// WithFootPart sets which figure mesh part is measured for the foot.
//
// Parameters:
//   - part: the part index
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFootPart(part int) SceneBuilderOption {
	return func(s *scene) {
		s.footPart = part
	}
}
