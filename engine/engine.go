package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/input"
	"github.com/Carmen-Shannon/oxy-stride/engine/profiler"
	"github.com/Carmen-Shannon/oxy-stride/engine/renderer"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
	"github.com/Carmen-Shannon/oxy-stride/engine/window"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoWindow = errors.New("engine has no window")
	ErrNoScene  = errors.New("engine has no scene")
)

// engine implements the Engine interface.
// Every callback runs on the window thread; the scene is never touched concurrently.
type engine struct {
	running  bool
	quitOnce sync.Once

	window   window.Window
	scene    scene.Scene
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	maxFrames        uint64        // quit once the scene has stepped this many frames; 0 = forever

	now       func() time.Time
	sleep     func(time.Duration)
	lastFrame time.Time
}

// Engine drives one scene from a window's message loop.
// Each window update runs the scene step, then the draw list hand-off, then the profiler.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene being driven.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers a function called after each scene step.
	//
	// Parameters:
	//   - callback: function receiving the wall-clock delta since the previous frame in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers a function called after each frame is handed to the renderer.
	//
	// Parameters:
	//   - callback: function receiving the wall-clock delta since the previous frame in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run wires the window callbacks and blocks until the window stops running.
	//
	// Returns:
	//   - error: ErrNoWindow or ErrNoScene if the engine is not fully configured
	Run() error

	// Quit asks the window to close. Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
		now:      time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.scene == nil {
		return ErrNoScene
	}

	e.bind()
	e.running = true
	e.lastFrame = e.now()
	e.window.ProcessMessages()
	e.running = false
	return nil
}

// Quit asks the window to close.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// bind routes window input into the scene and installs the per-frame update.
func (e *engine) bind() {
	e.window.SetKeyCallback(func(keyCode uint32, action input.Action) {
		cmd, ok := e.scene.HandleKey(keyCode, action)
		if ok {
			log.Debug().Str("key", common.KeyName(keyCode)).Str("action", action.String()).Int("command", int(cmd.Kind)).Msg("key")
		}
		if e.scene.QuitRequested() {
			e.signalQuit()
		}
	})
	e.window.SetMouseButtonCallback(e.scene.MouseButton)
	e.window.SetMouseMoveCallback(e.scene.CursorMoved)
	e.window.SetScrollCallback(func(dx, _ float64) {
		e.scene.Scroll(dx)
	})
	e.window.SetResizeCallback(func(width, height int) {
		log.Debug().Int("width", width).Int("height", height).Msg("resize")
	})
	e.window.SetUpdateCallback(e.update)
}

// update runs one frame: scene step, draw list hand-off, then profiling.
// A panic inside the frame is logged and stops the loop.
func (e *engine) update() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Uint64("frame", e.scene.FrameCount()).Msg("frame recovered from panic")
			e.signalQuit()
		}
	}()

	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	if err := e.scene.Step(); err != nil {
		log.Error().Err(err).Uint64("frame", e.scene.FrameCount()).Msg("scene step failed")
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	frame, err := e.scene.Frame(e.aspect())
	if err != nil {
		log.Error().Err(err).Uint64("frame", e.scene.FrameCount()).Msg("frame dropped")
	} else if e.renderer != nil {
		if err := e.renderer.Render(frame); err != nil {
			log.Error().Err(err).Uint64("frame", frame.Number).Msg("render failed")
		}
	}
	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(e.scene.FrameCount())
	}

	if e.maxFrames > 0 && e.scene.FrameCount() >= e.maxFrames {
		e.signalQuit()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

// aspect returns the window's width over height, or 1 while the window is minimised.
func (e *engine) aspect() float32 {
	w, h := e.window.Width(), e.window.Height()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
