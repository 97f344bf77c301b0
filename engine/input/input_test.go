package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name   string
		key    uint32
		action Action
		want   Command
		ok     bool
	}{
		{"forward held", common.KeyI, Repeat, Command{Kind: CommandLocomotion, Intent: locomotion.IntentForward, Phase: locomotion.PhaseHeld}, true},
		{"forward released", common.KeyI, Release, Command{Kind: CommandLocomotion, Intent: locomotion.IntentForward, Phase: locomotion.PhaseReleased}, true},
		{"backward held", common.KeyK, Repeat, Command{Kind: CommandLocomotion, Intent: locomotion.IntentBackward, Phase: locomotion.PhaseHeld}, true},
		{"turn left held", common.KeyJ, Repeat, Command{Kind: CommandLocomotion, Intent: locomotion.IntentTurnLeft, Phase: locomotion.PhaseHeld}, true},
		{"turn right released", common.KeyL, Release, Command{Kind: CommandLocomotion, Intent: locomotion.IntentTurnRight, Phase: locomotion.PhaseReleased}, true},
		{"move ignores press", common.KeyI, Press, Command{}, false},
		{"camera forward", common.KeyW, Repeat, Command{Kind: CommandCameraForward}, true},
		{"camera ignores press", common.KeyW, Press, Command{}, false},
		{"camera strafe left", common.KeyA, Repeat, Command{Kind: CommandCameraLeft}, true},
		{"light right", common.KeyE, Press, Command{Kind: CommandLightNudge, Nudge: 1}, true},
		{"light left", common.KeyQ, Press, Command{Kind: CommandLightNudge, Nudge: -1}, true},
		{"light ignores repeat", common.KeyE, Repeat, Command{}, false},
		{"quit", common.KeyEsc, Press, Command{Kind: CommandQuit}, true},
		{"unbound", 'Z', Press, Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Resolve(tt.key, tt.action)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindOverrides(t *testing.T) {
	b := DefaultBindings()
	n := b.Len()
	b.Bind(common.KeyI, Press, Command{Kind: CommandQuit})
	require.Equal(t, n+1, b.Len())

	got, ok := b.Resolve(common.KeyI, Press)
	require.True(t, ok)
	assert.Equal(t, CommandQuit, got.Kind)
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{Press, Repeat, Release} {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := ParseAction("REPEAT")
	require.NoError(t, err)
	assert.Equal(t, Repeat, got)

	_, err = ParseAction("hold")
	assert.Error(t, err)
}
