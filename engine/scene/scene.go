package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog/log"

	"github.com/Carmen-Shannon/oxy-stride/engine/camera"
	"github.com/Carmen-Shannon/oxy-stride/engine/collision"
	"github.com/Carmen-Shannon/oxy-stride/engine/gait"
	"github.com/Carmen-Shannon/oxy-stride/engine/game_object"
	"github.com/Carmen-Shannon/oxy-stride/engine/input"
	"github.com/Carmen-Shannon/oxy-stride/engine/light"
	"github.com/Carmen-Shannon/oxy-stride/engine/loader"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-stride/engine/material"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
	"github.com/Carmen-Shannon/oxy-stride/engine/renderer"
	"github.com/Carmen-Shannon/oxy-stride/engine/transform"
)

// ErrMissingPart is returned when the figure mesh has no part at the configured foot index.
var ErrMissingPart = errors.New("scene: figure mesh is missing the foot part")

// Mesh names used in draw commands.
const (
	MeshGoal   = "goal"
	MeshDummy  = "dummy"
	MeshBall   = "sphere"
	MeshGround = "ground"
	MeshSkybox = "skybox"
)

// DefaultFootPart is the dummy mesh part used as the kicking foot.
const DefaultFootPart = 26

// Measurements are the fitted bounds of the three scene meshes.
type Measurements struct {
	Goal  loader.Measurement
	Dummy loader.Measurement
	World loader.Measurement
}

// Snapshot is a copy of the scene state after a step.
type Snapshot struct {
	Frame     uint64
	Player    game_object.GameObject
	Ball      game_object.GameObject
	Foot      game_object.GameObject
	Moving    bool
	LimbAngle float32
	Direction gait.Direction
	Collided  bool
	Eye       mgl32.Vec3
	Light     mgl32.Vec3
	WorldSpin float32
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu sync.Mutex

	name string

	player game_object.GameObject
	ball   game_object.GameObject
	foot   game_object.GameObject

	camera    camera.Camera
	light     light.Light
	bindings  *input.Bindings
	materials *material.Table

	locomotion *locomotion.Controller
	gait       *gait.Animator
	poseTable  *pose.Table
	pose       *pose.Builder
	stack      *transform.Stack

	goalParts int
	goalScale float32
	// dummyTranslate is the figure's mesh centre. Part pivots are authored
	// against the raw mesh, so it is measured but not applied.
	dummyTranslate mgl32.Vec3
	dummyScale     float32
	worldScale     float32
	worldTranslate mgl32.Vec3

	floorY   float32
	footPart int

	cursorX, cursorY float64

	parts    []pose.PartTransform
	collided bool
	frame    uint64
	quit     bool
}

// Scene owns every entity of the demo and advances them one frame at a time.
// A Scene is driven from a single goroutine; the mutex only guards reads from
// callbacks that may run between steps.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Light returns the scene's point light.
	Light() light.Light

	// Materials returns the material table draw commands index into.
	Materials() *material.Table

	// HandleKey resolves a key event through the bindings and applies it immediately.
	//
	// Parameters:
	//   - key: the virtual key code
	//   - action: the key transition
	//
	// Returns:
	//   - input.Command: the applied command
	//   - bool: false if the event is unbound
	HandleKey(key uint32, action input.Action) (input.Command, bool)

	// MouseButton starts a camera look gesture on press and ends it on release.
	//
	// Parameters:
	//   - pressed: true for press, false for release
	//   - x, y: the cursor position
	MouseButton(pressed bool, x, y float64)

	// CursorMoved records the cursor position consumed by the next Step.
	//
	// Parameters:
	//   - x, y: the cursor position
	CursorMoved(x, y float64)

	// Scroll spins the whole scene about Y by dx degrees.
	//
	// Parameters:
	//   - dx: the horizontal scroll offset
	Scroll(dx float64)

	// Step advances the scene by one frame: camera look, gait, pose, collision.
	//
	// Returns:
	//   - error: a wrapped transform.ErrStackUnderflow if pose composition failed
	Step() error

	// Frame builds the draw list for the most recent step.
	//
	// Parameters:
	//   - aspect: viewport width divided by height
	//
	// Returns:
	//   - renderer.Frame: the frame to draw
	//   - error: an error if a transform could not be composed
	Frame(aspect float32) (renderer.Frame, error)

	// Snapshot returns a copy of the current state.
	Snapshot() Snapshot

	// FrameCount returns the number of completed steps.
	FrameCount() uint64

	// QuitRequested reports whether a quit command was handled.
	QuitRequested() bool
}

var _ Scene = &scene{}

// NewScene creates a Scene from the fitted mesh measurements.
// The ball is placed from the world mesh bounds and the foot from the figure's foot part.
//
// Parameters:
//   - m: the goal, figure and world mesh measurements
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: ErrMissingPart, or a pose table error when the default table is used
func NewScene(m Measurements, options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		name:      "stride",
		floorY:    -1,
		footPart:  DefaultFootPart,
		stack:     transform.NewStack(transform.WithCapacity(8)),
		player:    game_object.NewGameObject(),
		goalParts: len(m.Goal.Parts),
	}
	for _, option := range options {
		option(s)
	}

	if s.camera == nil {
		s.camera = camera.NewCamera()
	}
	if s.light == nil {
		s.light = light.NewLight()
	}
	if s.bindings == nil {
		s.bindings = input.DefaultBindings()
	}
	if s.materials == nil {
		s.materials = material.DefaultTable()
	}
	if s.locomotion == nil {
		s.locomotion = locomotion.NewController()
	}
	if s.gait == nil {
		s.gait = gait.NewAnimator()
	}
	if s.poseTable == nil {
		t, err := pose.NewTable(pose.DefaultPartCount, pose.DefaultGroups())
		if err != nil {
			return nil, err
		}
		s.poseTable = t
	}

	s.goalScale = m.Goal.Scale
	s.dummyScale = m.Dummy.Scale
	s.dummyTranslate = m.Dummy.Center
	s.worldScale = m.World.Scale
	s.worldTranslate = m.World.Center
	s.pose = pose.NewBuilder(s.poseTable, pose.WithMeshScale(s.dummyScale))

	// the ball sits off the first world part, at max/2 per axis rather than its centre
	ballBounds := m.World.Bounds
	if first, ok := m.World.Part(0); ok {
		ballBounds = first.Bounds
	}
	half := ballBounds.Min.Add(ballBounds.Extent()).Mul(0.5)
	s.ball = game_object.NewGameObject(
		game_object.WithPosition(half[0]+2, half[1]-0.7, half[2]-5),
		game_object.WithVelocity(1, 1, 1),
		game_object.WithRadius(0.5*s.worldScale*0.3),
	)

	footPart, ok := m.Dummy.Part(s.footPart)
	if !ok {
		return nil, fmt.Errorf("part %d of %d: %w", s.footPart, len(m.Dummy.Parts), ErrMissingPart)
	}
	ext := footPart.Bounds.Extent().Mul(s.dummyScale)
	s.foot = game_object.NewGameObject(
		game_object.WithPosition(ext[0]/2+1, ext[1]/2, ext[2]/2-1),
		game_object.WithRadius(ext[0]),
	)

	log.Info().
		Str("scene", s.name).
		Float32("goalScale", s.goalScale).
		Float32("dummyScale", s.dummyScale).
		Float32("worldScale", s.worldScale).
		Float32("ballRadius", s.ball.Radius).
		Float32("footRadius", s.foot.Radius).
		Msg("scene created")
	return s, nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Light() light.Light {
	return s.light
}

func (s *scene) Materials() *material.Table {
	return s.materials
}

func (s *scene) HandleKey(key uint32, action input.Action) (input.Command, bool) {
	cmd, ok := s.bindings.Resolve(key, action)
	if !ok {
		return cmd, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch cmd.Kind {
	case input.CommandLocomotion:
		s.locomotion.Apply(&s.player, &s.foot, cmd.Intent, cmd.Phase)
	case input.CommandCameraForward:
		s.camera.Forward()
	case input.CommandCameraBackward:
		s.camera.Backward()
	case input.CommandCameraLeft:
		s.camera.StrafeLeft()
	case input.CommandCameraRight:
		s.camera.StrafeRight()
	case input.CommandLightNudge:
		s.light.Nudge(cmd.Nudge)
	case input.CommandQuit:
		s.quit = true
	}
	return cmd, true
}

func (s *scene) MouseButton(pressed bool, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorX, s.cursorY = x, y
	if pressed {
		s.camera.BeginLook(x, y)
		return
	}
	s.camera.EndLook()
}

func (s *scene) CursorMoved(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorX, s.cursorY = x, y
}

func (s *scene) Scroll(dx float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.Spin(float32(dx))
}

func (s *scene) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.camera.Looking() {
		s.camera.Look(s.cursorX, s.cursorY)
	}

	theta := s.gait.Update(s.locomotion.Moving())

	s.stack.Reset()
	root := pose.RootTransform(s.camera.WorldSpin(), s.player.Position, s.player.Rotation.Yaw, s.floorY)
	parts, err := s.pose.Build(s.stack, root, theta)
	if err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}
	s.parts = parts

	s.collided = collision.Resolve(&s.ball, &s.foot, &s.player)
	if s.collided {
		log.Debug().
			Uint64("frame", s.frame).
			Float32("ballX", s.ball.Position[0]).
			Float32("ballZ", s.ball.Position[2]).
			Msg("collision")
	}

	s.frame++
	return nil
}

func (s *scene) Frame(aspect float32) (renderer.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := renderer.Frame{
		Number:        s.frame,
		View:          s.camera.View(),
		Projection:    s.camera.Projection(aspect),
		LightPosition: s.light.Position(),
	}
	spin := s.camera.WorldSpin()
	st := s.stack
	st.Reset()

	goals := []struct {
		at       mgl32.Vec3
		yaw      float32
		material int
	}{
		{mgl32.Vec3{-6, 0.4, -1.9}, -90, material.Brass},
		{mgl32.Vec3{16, 0.4, -1.9}, 90, material.ShinyBluePlastic},
	}
	for _, g := range goals {
		st.Push()
		st.Rotate(spin, yAxis)
		st.Translate(g.at)
		st.Rotate(g.yaw, yAxis)
		st.Scale(s.goalScale)
		model := st.Top()
		for i := 0; i < s.goalParts; i++ {
			f.Commands = append(f.Commands, renderer.DrawCommand{
				Mesh: MeshGoal, Part: i, Model: model, Material: g.material, Texture: renderer.NoTexture, Pass: renderer.PassLit,
			})
		}
		if err := st.Pop(); err != nil {
			return renderer.Frame{}, fmt.Errorf("goal: %w", err)
		}
	}

	for _, p := range s.parts {
		f.Commands = append(f.Commands, renderer.DrawCommand{
			Mesh: MeshDummy, Part: p.Part, Model: p.Model, Material: material.Copper, Texture: renderer.NoTexture, Pass: renderer.PassLit,
		})
	}

	st.Push()
	st.Rotate(spin, yAxis)
	st.Translate(mgl32.Vec3{s.ball.Position[0], -0.7, s.ball.Position[2]})
	st.Scale(s.worldScale * 0.3)
	f.Commands = append(f.Commands, renderer.DrawCommand{
		Mesh: MeshBall, Model: st.Top(), Texture: material.TextureBall, Pass: renderer.PassTextured,
	})
	if err := st.Pop(); err != nil {
		return renderer.Frame{}, fmt.Errorf("ball: %w", err)
	}

	st.Push()
	st.Rotate(spin, yAxis)
	st.Translate(mgl32.Vec3{5, 0, -2})
	st.Scale(s.worldScale * 0.7)
	st.Translate(s.worldTranslate.Mul(-1))
	f.Commands = append(f.Commands, renderer.DrawCommand{
		Mesh: MeshGround, Model: st.Top(), Texture: material.TextureField, Pass: renderer.PassTextured,
	})
	if err := st.Pop(); err != nil {
		return renderer.Frame{}, fmt.Errorf("ground: %w", err)
	}

	f.Commands = append(f.Commands, renderer.DrawCommand{
		Mesh: MeshSkybox, Model: mgl32.Ident4(), Texture: renderer.NoTexture, Pass: renderer.PassSkybox,
	})
	return f, nil
}

func (s *scene) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Frame:     s.frame,
		Player:    s.player,
		Ball:      s.ball,
		Foot:      s.foot,
		Moving:    s.locomotion.Moving(),
		LimbAngle: s.gait.Angle(),
		Direction: s.gait.Direction(),
		Collided:  s.collided,
		Eye:       s.camera.Eye(),
		Light:     s.light.Position(),
		WorldSpin: s.camera.WorldSpin(),
	}
}

func (s *scene) FrameCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *scene) QuitRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

var yAxis = mgl32.Vec3{0, 1, 0}
