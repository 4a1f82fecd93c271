package pretender

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type recordingHost struct {
	calls []string
	kills [][2]float64
	zoom  float64
	quit  bool
}

func (h *recordingHost) KillAt(x, y float64) bool {
	h.calls = append(h.calls, ActionKill)
	h.kills = append(h.kills, [2]float64{x, y})
	return true
}

func (h *recordingHost) Screenshot(label string) {
	h.calls = append(h.calls, ActionScreenshot+":"+label)
}

func (h *recordingHost) ScrollTo(x, y float64, duration float32) {
	h.calls = append(h.calls, ActionPan)
}

func (h *recordingHost) SetZoom(zoom float64) {
	h.zoom = zoom
}

func (h *recordingHost) Quit() {
	h.calls = append(h.calls, ActionQuit)
	h.quit = true
}

func TestParseScriptYAML(t *testing.T) {
	s, err := ParseScript([]byte(`
steps:
  - action: wait
    frames: 3
  - action: kill
    x: 61
    y: 75
  - action: screenshot
    label: after-kill
`))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestParseScriptJSON(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [{"action": "pan", "x": 10, "y": 20, "seconds": 2}, {"action": "quit"}]}`))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestParseScriptErrors(t *testing.T) {
	if _, err := ParseScript([]byte(`steps: []`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("empty: err = %v, want ErrEmptyScript", err)
	}
	if _, err := ParseScript([]byte(`steps: [{action: dance}]`)); err == nil {
		t.Error("unknown action should fail")
	}
	if _, err := ParseScript([]byte(`steps: [`)); err == nil {
		t.Error("malformed script should fail")
	}
}

func TestScriptRunsStepsInOrder(t *testing.T) {
	s, _ := ParseScript([]byte(`
steps:
  - {action: kill, x: 61, y: 75}
  - {action: screenshot, label: one}
  - {action: quit}
`))
	h := &recordingHost{}
	for i := 0; i < 3; i++ {
		s.step(h, 1.0/60)
	}
	want := []string{ActionKill, ActionScreenshot + ":one", ActionQuit}
	if len(h.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, h.calls[i], want[i])
		}
	}
	if h.kills[0] != [2]float64{61, 75} {
		t.Errorf("kill at %v, want (61,75)", h.kills[0])
	}
	if !s.Done() {
		t.Error("Done() = false after last step")
	}
}

func TestScriptWaitFrames(t *testing.T) {
	s, _ := ParseScript([]byte(`
steps:
  - {action: wait, frames: 3}
  - {action: screenshot, label: x}
`))
	h := &recordingHost{}
	for i := 0; i < 3; i++ {
		s.step(h, 0.1)
	}
	if len(h.calls) != 0 {
		t.Fatalf("screenshot before wait elapsed: %v", h.calls)
	}
	s.step(h, 0.1)
	if len(h.calls) != 1 {
		t.Errorf("calls after wait = %v, want one screenshot", h.calls)
	}
}

func TestScriptWaitSeconds(t *testing.T) {
	s, _ := ParseScript([]byte(`
steps:
  - {action: wait, seconds: 1}
  - {action: quit}
`))
	h := &recordingHost{}
	ticks := 0
	for !h.quit && ticks < 100 {
		s.step(h, 0.25)
		ticks++
	}
	// wait executes on tick 1 and covers 1s; quit runs on the fifth tick.
	if ticks != 5 {
		t.Errorf("quit after %d ticks, want 5", ticks)
	}
}

func TestScriptPanSetsZoom(t *testing.T) {
	s, err := ParseScript([]byte("steps:\n  - {action: pan, x: 240, y: 120, zoom: 2, seconds: 1}\n  - {action: pan, x: 100, y: 90}\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	h := &recordingHost{}
	s.step(h, 1.0/60)
	if h.zoom != 2 {
		t.Errorf("zoom = %f, want 2", h.zoom)
	}
	h.zoom = 0
	s.step(h, 1.0/60)
	if h.zoom != 0 {
		t.Errorf("pan without zoom changed zoom to %f", h.zoom)
	}
	if len(h.calls) != 2 || h.calls[0] != ActionPan || h.calls[1] != ActionPan {
		t.Errorf("calls = %v, want [pan pan]", h.calls)
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - action: quit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if _, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadScriptSample(t *testing.T) {
	s, err := LoadScript(filepath.Join("testdata", "session.yaml"))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 7 {
		t.Errorf("Len = %d, want 7", s.Len())
	}
}
