package pretender

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned when a session script has no steps.
var ErrEmptyScript = errors.New("pretender: session script has no steps")

// Step actions understood by a Script.
const (
	ActionWait       = "wait"
	ActionKill       = "kill"
	ActionScreenshot = "screenshot"
	ActionPan        = "pan"
	ActionQuit       = "quit"
)

// scriptStep is a single action in a session script.
type scriptStep struct {
	Action string `yaml:"action" json:"action"`
	Label  string `yaml:"label,omitempty" json:"label,omitempty"`
	// X and Y are world coordinates for kill and pan.
	X float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y float64 `yaml:"y,omitempty" json:"y,omitempty"`
	// Frames waits a fixed number of ticks.
	Frames int `yaml:"frames,omitempty" json:"frames,omitempty"`
	// Seconds waits simulated time (wait) or sets the pan duration.
	Seconds float64 `yaml:"seconds,omitempty" json:"seconds,omitempty"`
	// Zoom, when positive, sets the camera zoom before a pan.
	Zoom float64 `yaml:"zoom,omitempty" json:"zoom,omitempty"`
}

// sessionScript is the top-level structure of a script file.
type sessionScript struct {
	Steps []scriptStep `yaml:"steps" json:"steps"`
}

// ScriptHost is what a Script drives. Scene implements it.
type ScriptHost interface {
	KillAt(x, y float64) bool
	Screenshot(label string)
	ScrollTo(x, y float64, duration float32)
	SetZoom(zoom float64)
	Quit()
}

// waitEpsilon absorbs float drift when summing tick deltas.
const waitEpsilon = 1e-9

// Script sequences kills, camera pans, waits and screenshots across ticks
// for automated runs. One step executes per tick; waits hold the cursor.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitTicks int
	waitTime  float64
	done      bool
}

// ParseScript parses a YAML or JSON session script.
func ParseScript(data []byte) (*Script, error) {
	var script sessionScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse session script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range script.Steps {
		switch st.Action {
		case ActionWait, ActionKill, ActionScreenshot, ActionPan, ActionQuit:
		default:
			return nil, fmt.Errorf("parse session script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// LoadScript reads and parses a session script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *Script) Len() int { return len(r.steps) }

// step advances the script by one tick of dt seconds.
func (r *Script) step(host ScriptHost, dt float64) {
	if r.done {
		return
	}
	if r.waitTicks > 0 {
		r.waitTicks--
		return
	}
	if r.waitTime > waitEpsilon {
		r.waitTime -= dt
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case ActionScreenshot:
		host.Screenshot(st.Label)
	case ActionKill:
		host.KillAt(st.X, st.Y)
	case ActionPan:
		if st.Zoom > 0 {
			host.SetZoom(st.Zoom)
		}
		host.ScrollTo(st.X, st.Y, float32(st.Seconds))
	case ActionQuit:
		host.Quit()
	case ActionWait:
		if st.Frames > 0 {
			r.waitTicks = st.Frames - 1 // this tick counts as one
		}
		// this tick also counts toward a timed wait
		r.waitTime = st.Seconds - dt
	}

	if r.cursor >= len(r.steps) && r.waitTicks == 0 && r.waitTime <= waitEpsilon {
		r.done = true
	}
}
