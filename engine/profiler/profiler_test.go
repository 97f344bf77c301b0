package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTickLogsPerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second), WithLogger(zerolog.New(&buf)))

	for i := 0; i < 59; i++ {
		clock.t = clock.t.Add(10 * time.Millisecond)
		_, logged := p.Tick(uint64(i))
		require.False(t, logged)
	}
	clock.t = time.Unix(1, 0)
	s, logged := p.Tick(60)
	require.True(t, logged)
	assert.InDelta(t, 60.0, s.FPS, 1e-9)
	assert.Equal(t, uint64(60), s.SceneFrames)
	assert.Greater(t, s.SysMB, 0.0)

	out := buf.String()
	assert.Contains(t, out, `"message":"profiler"`)
	assert.Contains(t, out, `"sceneFrames":60`)

	// the frame counter restarts after each report
	clock.t = time.Unix(3, 0)
	s, logged = p.Tick(61)
	require.True(t, logged)
	assert.InDelta(t, 0.5, s.FPS, 1e-9)
}

func TestIntervalOptionIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(-time.Second), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.now)
}
