package animico

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a frame script.
type scriptStep struct {
	Action string  `yaml:"action"`
	DT     float64 `yaml:"dt,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Tag    string  `yaml:"tag,omitempty"`
}

// script is the top-level structure for a frame script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a frame script against a Scheduler, one frame per
// Step call. Scripts make frame-by-frame behaviour reproducible in tests and
// tools without a real game loop.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	repeat int // frames left in the current tick or wait step
	done   bool
}

// LoadScript parses a YAML (or JSON) frame script:
//
//	steps:
//	  - {action: tick, dt: 0.016, frames: 30}
//	  - {action: cancelTag, tag: intro}
//	  - {action: wait, frames: 2}
//	  - {action: cancelAll}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w: %v", ErrScript, err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w: no steps", ErrScript)
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "tick":
			if !(st.DT > 0) {
				return nil, fmt.Errorf("parse script: %w: step %d: tick needs dt > 0", ErrScript, i)
			}
		case "wait", "cancelAll":
		case "cancelTag":
			if st.Tag == "" {
				return nil, fmt.Errorf("parse script: %w: step %d: cancelTag needs a tag", ErrScript, i)
			}
		default:
			return nil, fmt.Errorf("parse script: %w: step %d: unknown action %q", ErrScript, i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes one frame of the script against s and reports whether a
// frame was consumed. Tick steps advance s by dt for each of their frames;
// wait steps consume frames without ticking. Cancel steps take effect
// immediately and do not consume a frame, so a cancel followed by a tick
// happens within the same Step.
func (r *ScriptRunner) Step(s *Scheduler) bool {
	for !r.done {
		if r.cursor >= len(r.steps) {
			r.done = true
			break
		}
		st := &r.steps[r.cursor]

		switch st.Action {
		case "cancelTag":
			s.CancelTag(st.Tag)
			r.cursor++
			continue
		case "cancelAll":
			s.CancelAll()
			r.cursor++
			continue
		}

		if r.repeat == 0 {
			r.repeat = max(st.Frames, 1)
		}
		if st.Action == "tick" {
			s.Tick(st.DT)
		}
		r.repeat--
		if r.repeat == 0 {
			r.cursor++
		}
		if r.cursor >= len(r.steps) {
			r.done = true
		}
		return true
	}
	return false
}

// Run steps until the script is done and returns the number of frames run.
func (r *ScriptRunner) Run(s *Scheduler) int {
	frames := 0
	for !r.done {
		if r.Step(s) {
			frames++
		}
	}
	return frames
}
