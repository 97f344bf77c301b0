// Package input maps raw key events onto scene commands.
package input

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/locomotion"
)

// Action is the state transition a key event reports.
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction resolves an action name as written in scripts.
//
// Parameters:
//   - s: "press", "repeat" or "release", case-insensitive
//
// Returns:
//   - Action: the parsed action
//   - error: non-nil if s is not an action name
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "press":
		return Press, nil
	case "repeat":
		return Repeat, nil
	case "release":
		return Release, nil
	}
	return 0, fmt.Errorf("unknown key action %q", s)
}

// CommandKind selects which part of the scene a command drives.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandLocomotion
	CommandCameraForward
	CommandCameraBackward
	CommandCameraLeft
	CommandCameraRight
	CommandLightNudge
	CommandQuit
)

// Command is the resolved meaning of a key event.
// Intent and Phase are set for CommandLocomotion; Nudge for CommandLightNudge.
type Command struct {
	Kind   CommandKind
	Intent locomotion.Intent
	Phase  locomotion.Phase
	Nudge  int
}

type binding struct {
	key    uint32
	action Action
}

// Bindings is a lookup from (key, action) to Command.
type Bindings struct {
	table map[binding]Command
}

// NewBindings creates an empty binding table.
//
// Returns:
//   - *Bindings: the newly created table
func NewBindings() *Bindings {
	return &Bindings{table: make(map[binding]Command)}
}

// DefaultBindings returns the stock key layout.
// I/K/J/L drive the dummy and W/S/A/D fly the camera, both on key repeat only.
// E/Q nudge the light on press and Esc quits.
//
// Returns:
//   - *Bindings: the stock bindings
func DefaultBindings() *Bindings {
	b := NewBindings()
	moves := []struct {
		key    uint32
		intent locomotion.Intent
	}{
		{common.KeyI, locomotion.IntentForward},
		{common.KeyK, locomotion.IntentBackward},
		{common.KeyJ, locomotion.IntentTurnLeft},
		{common.KeyL, locomotion.IntentTurnRight},
	}
	for _, m := range moves {
		b.Bind(m.key, Repeat, Command{Kind: CommandLocomotion, Intent: m.intent, Phase: locomotion.PhaseHeld})
		b.Bind(m.key, Release, Command{Kind: CommandLocomotion, Intent: m.intent, Phase: locomotion.PhaseReleased})
	}
	b.Bind(common.KeyW, Repeat, Command{Kind: CommandCameraForward})
	b.Bind(common.KeyS, Repeat, Command{Kind: CommandCameraBackward})
	b.Bind(common.KeyA, Repeat, Command{Kind: CommandCameraLeft})
	b.Bind(common.KeyD, Repeat, Command{Kind: CommandCameraRight})
	b.Bind(common.KeyE, Press, Command{Kind: CommandLightNudge, Nudge: 1})
	b.Bind(common.KeyQ, Press, Command{Kind: CommandLightNudge, Nudge: -1})
	b.Bind(common.KeyEsc, Press, Command{Kind: CommandQuit})
	return b
}

// Bind maps a key event to cmd, replacing any existing binding.
//
// Parameters:
//   - key: the virtual key code
//   - action: the key transition
//   - cmd: the command to issue
func (b *Bindings) Bind(key uint32, action Action, cmd Command) {
	b.table[binding{key: key, action: action}] = cmd
}

// Resolve looks up the command for a key event.
//
// Parameters:
//   - key: the virtual key code
//   - action: the key transition
//
// Returns:
//   - Command: the bound command, or a CommandNone command
//   - bool: false if nothing is bound
func (b *Bindings) Resolve(key uint32, action Action) (Command, bool) {
	cmd, ok := b.table[binding{key: key, action: action}]
	return cmd, ok
}

// Len returns the number of bound events.
func (b *Bindings) Len() int {
	return len(b.table)
}
