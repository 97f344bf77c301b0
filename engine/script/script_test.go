package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/loader"
	"github.com/Carmen-Shannon/oxy-stride/engine/pose"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
)

const walk = `
name: walk
steps:
  - events:
      - {key: I, action: repeat}
    repeat: 3
  - events:
      - {key: I, action: release}
  - scroll: 2
`

func unitPart() loader.Part {
	return loader.Part{Bounds: common.Bounds{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}}
}

func newScene() (scene.Scene, error) {
	dummy := make([]loader.Part, pose.DefaultPartCount)
	for i := range dummy {
		dummy[i] = unitPart()
	}
	return scene.NewScene(scene.Measurements{
		Goal:  loader.NewMeasurement("goal", []loader.Part{unitPart()}),
		Dummy: loader.NewMeasurement("dummy", dummy),
		World: loader.NewMeasurement("world", []loader.Part{unitPart()}),
	})
}

func mustScene(t *testing.T) scene.Scene {
	t.Helper()
	sc, err := newScene()
	require.NoError(t, err)
	return sc
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(walk))
	require.NoError(t, err)
	assert.Equal(t, "walk", s.Name)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, 3, s.Steps[0].Repeat)
	assert.Equal(t, 5, s.Frames())
}

func TestParseRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"key", "steps: [{events: [{key: Z, action: press}]}]"},
		{"action", "steps: [{events: [{key: I, action: hold}]}]"},
		{"mouse", "steps: [{mouse: [{kind: drag}]}]"},
		{"repeat", "steps: [{repeat: -1}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}

	_, err := Parse([]byte("steps: {"))
	assert.Error(t, err)
}

func TestReplayTrace(t *testing.T) {
	s, err := Parse([]byte(walk))
	require.NoError(t, err)

	trace, err := Replay(mustScene(t), s)
	require.NoError(t, err)
	require.Len(t, trace, 5)

	for i, f := range trace {
		assert.Equal(t, uint64(i+1), f.Frame)
	}
	assert.InDelta(t, 0.1, trace[0].Player[0], 1e-5)
	assert.InDelta(t, 0.3, trace[2].Player[0], 1e-5)
	assert.InDelta(t, -0.4, trace[0].LimbAngle, 1e-5)
	assert.InDelta(t, -1.2, trace[2].LimbAngle, 1e-5)
	assert.Zero(t, trace[3].LimbAngle)
	assert.Equal(t, trace[3].Player, trace[4].Player)
}

func TestReplayIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(walk))
	require.NoError(t, err)
	a, err := Replay(mustScene(t), s)
	require.NoError(t, err)
	b, err := Replay(mustScene(t), s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReplayMouse(t *testing.T) {
	sc := mustScene(t)
	s := Script{Steps: []Step{
		{Mouse: []MouseEvent{{Kind: "press", X: 0, Y: 0}, {Kind: "move", X: 100, Y: 0}}},
		{Mouse: []MouseEvent{{Kind: "release", X: 100, Y: 0}}},
	}}
	theta0, _ := sc.Camera().Angles()
	_, err := Replay(sc, s)
	require.NoError(t, err)
	theta1, _ := sc.Camera().Angles()
	assert.InDelta(t, 0.5, theta1-theta0, 1e-5)
}

func TestRunKeepsJobOrder(t *testing.T) {
	short := Script{Name: "short", Steps: []Step{{Repeat: 2}}}
	long, err := Parse([]byte(walk))
	require.NoError(t, err)

	jobs := []Job{
		{Script: long, NewScene: newScene},
		{Script: short, NewScene: newScene},
		{Script: long, NewScene: newScene},
	}
	results := NewRunner(2).Run(context.Background(), jobs)
	require.Len(t, results, 3)
	assert.Equal(t, "walk", results[0].Name)
	assert.Equal(t, "short", results[1].Name)
	assert.Len(t, results[0].Trace, 5)
	assert.Len(t, results[1].Trace, 2)
	assert.Equal(t, results[0].Trace, results[2].Trace)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}

func TestRunReportsErrors(t *testing.T) {
	boom := errors.New("no assets")
	jobs := []Job{
		{Script: Script{Name: "broken"}, NewScene: func() (scene.Scene, error) { return nil, boom }},
		{Script: Script{Name: "panics"}, NewScene: func() (scene.Scene, error) { panic("bad scene") }},
	}
	results := NewRunner(4).Run(context.Background(), jobs)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.Contains(t, results[0].Error, "no assets")
	assert.Error(t, results[1].Err)
	assert.Contains(t, results[1].Error, "panicked")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := NewRunner(1).Run(ctx, []Job{{Script: Script{Name: "c", Steps: []Step{{Repeat: 10}}}, NewScene: newScene}})
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.Empty(t, results[0].Trace)
}

func TestRunEmpty(t *testing.T) {
	assert.Empty(t, NewRunner(3).Run(context.Background(), nil))
}

func TestRunnerReusesWorkers(t *testing.T) {
	r := NewRunner(4)
	assert.Equal(t, 4, r.Workers())
	jobs := make([]Job, 4)
	for i := range jobs {
		jobs[i] = Job{Script: Script{Name: "tick", Steps: []Step{{Repeat: 3}}}, NewScene: newScene}
	}

	r.Run(context.Background(), jobs)
	runtime.Gosched()
	before := runtime.NumGoroutine()

	for range 10 {
		results := r.Run(context.Background(), jobs)
		require.Len(t, results, 4)
		for _, res := range results {
			require.NoError(t, res.Err)
		}
	}
	runtime.Gosched()
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+2)
}

func TestNewRunnerClampsWorkers(t *testing.T) {
	assert.Equal(t, 1, NewRunner(0).Workers())
}

func TestWriteTraces(t *testing.T) {
	results := []Result{{Name: "one", Trace: []TraceFrame{{Frame: 1, Player: [3]float32{0.5, 0, 0}, Collided: true}}}}
	var buf bytes.Buffer
	require.NoError(t, WriteTraces(&buf, results))

	var decoded []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "one", decoded[0].Name)
	assert.Equal(t, results[0].Trace, decoded[0].Trace)
	assert.Contains(t, buf.String(), "player: [0.5, 0, 0]")
}

func TestLoadFileNamesFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [{repeat: 1}]"), 0o644))
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
