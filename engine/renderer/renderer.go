package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrFrameLimit is returned by a Recorder once it has stored its maximum number of frames.
var ErrFrameLimit = errors.New("renderer: frame limit reached")

// Pass identifies the shader program a draw command is issued under.
type Pass int

const (
	// PassLit draws with Blinn-Phong shading and a material.
	PassLit Pass = iota
	// PassTextured draws with a single diffuse texture.
	PassTextured
	// PassSkybox draws the environment cube map.
	PassSkybox
)

func (p Pass) String() string {
	switch p {
	case PassLit:
		return "lit"
	case PassTextured:
		return "textured"
	case PassSkybox:
		return "skybox"
	}
	return fmt.Sprintf("pass(%d)", int(p))
}

// NoTexture marks a draw command that samples no texture.
const NoTexture = -1

// DrawCommand is one mesh draw with its model matrix.
// Material is used by PassLit and Texture by PassTextured; the unused one is ignored.
type DrawCommand struct {
	Mesh     string
	Part     int
	Model    mgl32.Mat4
	Material int
	Texture  int
	Pass     Pass
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Number        uint64
	View          mgl32.Mat4
	Projection    mgl32.Mat4
	LightPosition mgl32.Vec3
	Commands      []DrawCommand
}

// Count returns the number of draw commands issued under pass.
//
// Parameters:
//   - pass: the pass to count
//
// Returns:
//   - int: the number of matching commands
func (f Frame) Count(pass Pass) int {
	n := 0
	for _, c := range f.Commands {
		if c.Pass == pass {
			n++
		}
	}
	return n
}

// Renderer draws frames. GPU resources, shaders and texture upload live behind it.
type Renderer interface {
	// Render draws one frame.
	//
	// Parameters:
	//   - f: the frame to draw
	//
	// Returns:
	//   - error: an error if the frame could not be drawn
	Render(f Frame) error
}

// Recorder is a Renderer that keeps frames in memory instead of drawing them.
// It backs headless runs and tests, and stands in for a GPU backend in the window.
type Recorder struct {
	mu       sync.Mutex
	frames   []Frame
	keep     int
	max      int
	rendered int
}

var _ Renderer = &Recorder{}

// NewRecorder creates a Recorder with the given options. By default it keeps every frame.
//
// Parameters:
//   - options: functional options to configure the recorder
//
// Returns:
//   - *Recorder: the newly created recorder
func NewRecorder(options ...RecorderBuilderOption) *Recorder {
	r := &Recorder{}
	for _, option := range options {
		option(r)
	}
	return r
}

// Render stores a copy of f. When the recorder keeps only the latest N frames,
// older frames are dropped.
func (r *Recorder) Render(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max > 0 && r.rendered >= r.max {
		return ErrFrameLimit
	}
	f.Commands = append([]DrawCommand(nil), f.Commands...)
	r.frames = append(r.frames, f)
	if r.keep > 0 && len(r.frames) > r.keep {
		r.frames = append(r.frames[:0], r.frames[len(r.frames)-r.keep:]...)
	}
	r.rendered++
	return nil
}

// Frames returns the stored frames, oldest first.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// Last returns the most recent frame, or false if nothing was rendered.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Rendered returns how many frames were accepted in total.
func (r *Recorder) Rendered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rendered
}
