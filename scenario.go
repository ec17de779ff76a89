package inkblot

import (
	"encoding/json"
	"fmt"
)

// scenarioStep is a single action in a scenario script.
type scenarioStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	Mode   Mode     `json:"mode,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario script.
type scenarioScript struct {
	Steps []scenarioStep `json:"steps"`
}

// ScenarioRunner plays a scripted sequence of transitions, pointer moves,
// waits and screenshots against a Driver, one step per frame.
//
// Script actions:
//
//	{"action": "transition", "mode": "menuExpanded", "x": 300, "y": 200}
//	{"action": "move", "x": 120, "y": 80}
//	{"action": "pointer", "x": 50, "y": 50}
//	{"action": "wait", "frames": 30}
//	{"action": "stop"}
//	{"action": "screenshot", "label": "expanded"}
//
// x and y are optional for transition.
type ScenarioRunner struct {
	steps     []scenarioStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScenario parses a JSON scenario script.
func LoadScenario(jsonData []byte) (*ScenarioRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse scenario: step %d: %w", i, err)
		}
	}
	return &ScenarioRunner{steps: script.Steps}, nil
}

func (st scenarioStep) validate() error {
	switch st.Action {
	case "transition":
		if (st.X == nil) != (st.Y == nil) {
			return fmt.Errorf("transition needs both x and y or neither")
		}
	case "move", "pointer":
		if st.X == nil || st.Y == nil {
			return fmt.Errorf("%s needs x and y", st.Action)
		}
	case "wait":
		if st.Frames < 0 {
			return fmt.Errorf("wait frames %d is negative", st.Frames)
		}
	case "stop", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether all steps have been executed.
func (r *ScenarioRunner) Done() bool {
	return r.done
}

// Step executes the next action, if any, against d. Call it once per frame
// before Driver.Step.
func (r *ScenarioRunner) Step(d *Driver) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "transition":
		var target *Vec2
		if st.X != nil {
			target = &Vec2{*st.X, *st.Y}
		}
		d.Transition(st.Mode, target)
	case "move":
		d.MoveTo(*st.X, *st.Y)
	case "pointer":
		d.Pointer = Vec2{*st.X, *st.Y}
	case "stop":
		d.Stop()
	case "screenshot":
		d.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
