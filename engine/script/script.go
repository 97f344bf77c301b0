// Package script replays recorded input against a scene without a window and
// records a per-frame trace of the result.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-stride/common"
	"github.com/Carmen-Shannon/oxy-stride/engine/input"
	"github.com/Carmen-Shannon/oxy-stride/engine/scene"
)

// ErrInvalidScript is returned when a script names an unknown key, action or mouse event.
var ErrInvalidScript = errors.New("script: invalid script")

// Script is a named sequence of input steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a group of input events applied before each of Repeat frames.
// A zero Repeat runs the step once.
type Step struct {
	Events []Event      `yaml:"events,omitempty"`
	Mouse  []MouseEvent `yaml:"mouse,omitempty"`
	Scroll float64      `yaml:"scroll,omitempty"`
	Repeat int          `yaml:"repeat,omitempty"`
}

// Event is a key event by name, e.g. {key: I, action: repeat}.
type Event struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`

	code   uint32
	action input.Action
}

// MouseEvent is a button or cursor event. Kind is "press", "release" or "move".
type MouseEvent struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// TraceFrame is the recorded state after one replayed frame.
type TraceFrame struct {
	Frame     uint64     `yaml:"frame"`
	Player    [3]float32 `yaml:"player,flow"`
	Yaw       float32    `yaml:"yaw"`
	LimbAngle float32    `yaml:"limbAngle"`
	Ball      [3]float32 `yaml:"ball,flow"`
	Collided  bool       `yaml:"collided"`
}

// Parse decodes and validates a YAML script.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Script: the decoded script
//   - error: a decode error or a wrapped ErrInvalidScript
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if err := s.resolve(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadFile reads and parses a script file. A script without a name is named after its path.
//
// Parameters:
//   - path: the script file path
//
// Returns:
//   - Script: the decoded script
//   - error: a read, decode or validation error
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = common.Coalesce(s.Name, path)
	return s, nil
}

// Frames returns the number of frames the script runs for.
func (s Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += max(st.Repeat, 1)
	}
	return n
}

func (s *Script) resolve() error {
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Repeat < 0 {
			return fmt.Errorf("step %d: negative repeat: %w", i, ErrInvalidScript)
		}
		for j := range st.Events {
			ev := &st.Events[j]
			code, ok := common.KeyCode(ev.Key)
			if !ok {
				return fmt.Errorf("step %d: unknown key %q: %w", i, ev.Key, ErrInvalidScript)
			}
			action, err := input.ParseAction(ev.Action)
			if err != nil {
				return fmt.Errorf("step %d: %v: %w", i, err, ErrInvalidScript)
			}
			ev.code, ev.action = code, action
		}
		for _, m := range st.Mouse {
			switch m.Kind {
			case "press", "release", "move":
			default:
				return fmt.Errorf("step %d: unknown mouse event %q: %w", i, m.Kind, ErrInvalidScript)
			}
		}
	}
	return nil
}

// Replay runs script against sc and returns one trace frame per step.
// Each repeat of a step applies its events in order, then advances the scene once.
//
// Parameters:
//   - sc: the scene to drive
//   - s: the script to run
//
// Returns:
//   - []TraceFrame: the trace, one entry per frame
//   - error: a validation error, or the first step error from the scene
func Replay(sc scene.Scene, s Script) ([]TraceFrame, error) {
	return replay(context.Background(), sc, s)
}

func replay(ctx context.Context, sc scene.Scene, s Script) ([]TraceFrame, error) {
	if err := s.resolve(); err != nil {
		return nil, err
	}
	trace := make([]TraceFrame, 0, s.Frames())
	for _, st := range s.Steps {
		for r := 0; r < max(st.Repeat, 1); r++ {
			if err := ctx.Err(); err != nil {
				return trace, err
			}
			for _, ev := range st.Events {
				sc.HandleKey(ev.code, ev.action)
			}
			for _, m := range st.Mouse {
				switch m.Kind {
				case "press":
					sc.MouseButton(true, m.X, m.Y)
				case "release":
					sc.MouseButton(false, m.X, m.Y)
				case "move":
					sc.CursorMoved(m.X, m.Y)
				}
			}
			if st.Scroll != 0 {
				sc.Scroll(st.Scroll)
			}
			if err := sc.Step(); err != nil {
				return trace, err
			}
			trace = append(trace, traceOf(sc.Snapshot()))
		}
	}
	return trace, nil
}

func traceOf(snap scene.Snapshot) TraceFrame {
	return TraceFrame{
		Frame:     snap.Frame,
		Player:    snap.Player.Position,
		Yaw:       snap.Player.Rotation.Yaw,
		LimbAngle: snap.LimbAngle,
		Ball:      snap.Ball.Position,
		Collided:  snap.Collided,
	}
}
