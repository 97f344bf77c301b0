package config

import (
	"github.com/go-gl/mathgl/mgl32"
)

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Resize limits; 0 leaves a bound at the window default.
	MinWidth  int `yaml:"minWidth"`
	MinHeight int `yaml:"minHeight"`
	MaxWidth  int `yaml:"maxWidth"`
	MaxHeight int `yaml:"maxHeight"`
	// FrameLimit caps frames per second; 0 leaves the loop uncapped.
	FrameLimit float64 `yaml:"frameLimit"`
	Profile    bool    `yaml:"profile"`
}

type TextureConfig struct {
	Field string `yaml:"field"`
	Ball  string `yaml:"ball"`
	Mars  string `yaml:"mars"`
}

type SkyboxConfig struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type AssetsConfig struct {
	Dir      string        `yaml:"dir"`
	Goal     string        `yaml:"goal"`
	Dummy    string        `yaml:"dummy"`
	World    string        `yaml:"world"`
	FootPart int           `yaml:"footPart"`
	Textures TextureConfig `yaml:"textures"`
	Skybox   SkyboxConfig  `yaml:"skybox"`
}

type SimulationConfig struct {
	RunSpeed  float32 `yaml:"runSpeed"`
	TurnSpeed float32 `yaml:"turnSpeed"`
}

type GaitConfig struct {
	Limit float32 `yaml:"limit"`
	Step  float32 `yaml:"step"`
}

type CameraConfig struct {
	Eye         mgl32.Vec3 `yaml:"eye,flow"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	PitchLimit  float32    `yaml:"pitchLimit"`
	Fov         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

type LightConfig struct {
	Position mgl32.Vec3 `yaml:"position,flow"`
	Color    mgl32.Vec3 `yaml:"color,flow"`
	Step     float32    `yaml:"step"`
}

type GroupConfig struct {
	Name      string     `yaml:"name"`
	Parts     []int      `yaml:"parts,flow"`
	Joint     mgl32.Vec3 `yaml:"joint,flow"`
	SwingSign float32    `yaml:"swingSign"`
	RestPitch float32    `yaml:"restPitch"`
	Origin    mgl32.Vec3 `yaml:"origin,flow"`
}

type FigureConfig struct {
	FloorY float32       `yaml:"floorY"`
	Groups []GroupConfig `yaml:"groups"`
}

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Assets     AssetsConfig     `yaml:"assets"`
	Simulation SimulationConfig `yaml:"simulation"`
	Gait       GaitConfig       `yaml:"gait"`
	Camera     CameraConfig     `yaml:"camera"`
	Light      LightConfig      `yaml:"light"`
	Figure     FigureConfig     `yaml:"figure"`
}
