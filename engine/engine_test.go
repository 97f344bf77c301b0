package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/input"
	"github.com/Carmen-Shannon/oxy-stride/engine/loader"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
	"github.com/Carmen-Shannon/oxy-stride/engine/renderer"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
	"github.com/Carmen-Shannon/oxy-stride/engine/window"
)

// fakeWindow runs the update callback until closed, up to a fixed number of iterations.
// beforeUpdate runs ahead of each update with the zero-based iteration index.
type fakeWindow struct {
	running      bool
	closeCalls   int
	iterations   int
	maxLoops     int
	width        int
	height       int
	beforeUpdate func(w *fakeWindow, i int)

	onUpdate      func()
	onResize      func(width, height int)
	onScroll      func(dx, dy float64)
	onKey         func(keyCode uint32, action input.Action)
	onMouseButton func(pressed bool, x, y float64)
	onMouseMove   func(x, y float64)
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(maxLoops int) *fakeWindow {
	return &fakeWindow{running: true, maxLoops: maxLoops, width: 800, height: 400}
}

func (w *fakeWindow) SetUpdateCallback(cb func()) { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(dx, dy float64)) { w.onScroll = cb }
func (w *fakeWindow) SetKeyCallback(cb func(uint32, input.Action)) { w.onKey = cb }
func (w *fakeWindow) SetMouseButtonCallback(cb func(bool, float64, float64)) { w.onMouseButton = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float64)) { w.onMouseMove = cb }
func (w *fakeWindow) IsRunning() bool { return w.running }
func (w *fakeWindow) Close() error { w.running = false; return nil }
func (w *fakeWindow) Width() int { return w.width }
func (w *fakeWindow) Height() int { return w.height }

func (w *fakeWindow) RequestClose() {
	w.closeCalls++
	w.running = false
}

func (w *fakeWindow) ProcessMessages() {
	for w.IsRunning() && w.iterations < w.maxLoops {
		if w.beforeUpdate != nil {
			w.beforeUpdate(w, w.iterations)
		}
		w.iterations++
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

func measurements() scene.Measurements {
	unit := loader.Part{Bounds: common.Bounds{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}}
	dummy := make([]loader.Part, pose.DefaultPartCount)
	for i := range dummy {
		dummy[i] = unit
	}
	return scene.Measurements{
		Goal:  loader.NewMeasurement("goal", []loader.Part{unit}),
		Dummy: loader.NewMeasurement("dummy", dummy),
		World: loader.NewMeasurement("world", []loader.Part{unit}),
	}
}

func newTestScene(t *testing.T) scene.Scene {
	t.Helper()
	s, err := scene.NewScene(measurements())
	require.NoError(t, err)
	return s
}

func TestRunRequiresWindowAndScene(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(), ErrNoWindow)
	assert.ErrorIs(t, NewEngine(WithWindow(newFakeWindow(1))).Run(), ErrNoScene)
}

func TestRunStepsAndRendersEachFrame(t *testing.T) {
	w := newFakeWindow(5)
	s := newTestScene(t)
	rec := renderer.NewRecorder()

	var order []string
	e := NewEngine(WithWindow(w), WithScene(s), WithRenderer(rec))
	e.SetTickCallback(func(float32) { order = append(order, "tick") })
	e.SetRenderCallback(func(float32) { order = append(order, "render") })

	require.NoError(t, e.Run())
	assert.Equal(t, uint64(5), s.FrameCount())
	assert.Equal(t, 5, rec.Rendered())
	assert.Equal(t, []string{"tick", "render", "tick", "render"}, order[:4])

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, uint64(5), last.Number)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 2, 0.01, 100), last.Projection)
}

func TestMaxFramesQuits(t *testing.T) {
	w := newFakeWindow(100)
	s := newTestScene(t)

	e := NewEngine(WithWindow(w), WithScene(s), WithMaxFrames(3))
	require.NoError(t, e.Run())
	assert.Equal(t, uint64(3), s.FrameCount())
	assert.Equal(t, 1, w.closeCalls)
}

func TestEscapeKeyQuits(t *testing.T) {
	w := newFakeWindow(100)
	w.beforeUpdate = func(w *fakeWindow, i int) {
		if i == 2 {
			w.onKey(common.KeyEsc, input.Press)
		}
	}
	s := newTestScene(t)

	e := NewEngine(WithWindow(w), WithScene(s))
	require.NoError(t, e.Run())
	assert.True(t, s.QuitRequested())
	assert.Equal(t, 3, w.iterations)
	assert.Equal(t, uint64(3), s.FrameCount())
}

func TestInputIsRoutedToScene(t *testing.T) {
	w := newFakeWindow(2)
	w.beforeUpdate = func(w *fakeWindow, i int) {
		if i == 0 {
			w.onKey(common.KeyI, input.Repeat)
			w.onScroll(10, 3)
			w.onMouseButton(true, 0, 0)
			w.onMouseMove(20, 0)
		}
	}
	s := newTestScene(t)
	theta, _ := s.Camera().Angles()

	e := NewEngine(WithWindow(w), WithScene(s))
	require.NoError(t, e.Run())

	snap := s.Snapshot()
	assert.NotEqual(t, mgl32.Vec3{}, snap.Player.Position)
	assert.InDelta(t, 10, snap.WorldSpin, 1e-6)
	gotTheta, _ := s.Camera().Angles()
	assert.NotEqual(t, theta, gotTheta)
}

func TestQuitIsIdempotent(t *testing.T) {
	w := newFakeWindow(1)
	e := NewEngine(WithWindow(w))
	e.Quit()
	e.Quit()
	assert.Equal(t, 1, w.closeCalls)
	assert.False(t, w.IsRunning())
}

type failingRenderer struct{ calls int }

func (r *failingRenderer) Render(renderer.Frame) error {
	r.calls++
	return errors.New("device lost")
}

func TestRenderErrorsDoNotStopTheLoop(t *testing.T) {
	w := newFakeWindow(4)
	s := newTestScene(t)
	r := &failingRenderer{}

	require.NoError(t, NewEngine(WithWindow(w), WithScene(s), WithRenderer(r)).Run())
	assert.Equal(t, 4, r.calls)
	assert.Equal(t, uint64(4), s.FrameCount())
}

func TestPanicInFrameQuits(t *testing.T) {
	w := newFakeWindow(10)
	s := newTestScene(t)

	e := NewEngine(WithWindow(w), WithScene(s))
	e.SetTickCallback(func(float32) { panic("boom") })
	require.NotPanics(t, func() { require.NoError(t, e.Run()) })
	assert.Equal(t, 1, w.iterations)
	assert.Equal(t, 1, w.closeCalls)
}

func TestRenderFrameLimitSleepsRemainder(t *testing.T) {
	w := newFakeWindow(2)
	s := newTestScene(t)

	now := time.Unix(0, 0)
	var slept []time.Duration
	clock := func() time.Time { return now }
	sleep := func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}

	e := NewEngine(WithWindow(w), WithScene(s), WithRenderFrameLimit(50), WithClock(clock, sleep))
	require.NoError(t, e.Run())
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 20 * time.Millisecond}, slept)
}

func TestZeroSizedWindowUsesUnitAspect(t *testing.T) {
	w := newFakeWindow(1)
	w.width, w.height = 0, 0
	s := newTestScene(t)
	rec := renderer.NewRecorder()

	require.NoError(t, NewEngine(WithWindow(w), WithScene(s), WithRenderer(rec)).Run())
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.01, 100), last.Projection)
}
