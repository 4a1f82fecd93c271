package pretender

import "testing"

func TestGameLayoutScalesAndResizes(t *testing.T) {
	s, _, _ := newTestScene(t, testSceneConfig())
	g := NewGame(s, 4)

	w, h := g.Layout(1280, 720)
	if w != 320 || h != 180 {
		t.Errorf("Layout = %dx%d, want 320x180", w, h)
	}

	w, h = g.Layout(1600, 800)
	if w != 400 || h != 200 {
		t.Errorf("Layout = %dx%d, want 400x200", w, h)
	}
	if b := s.Compositor().Buffer(); b.Width() != 400 || b.Height() != 200 {
		t.Errorf("buffer = %dx%d, want 400x200", b.Width(), b.Height())
	}
}

func TestGameLayoutNeverZero(t *testing.T) {
	s, _, _ := newTestScene(t, testSceneConfig())
	g := NewGame(s, 0)
	w, h := g.Layout(0, 0)
	if w != 1 || h != 1 {
		t.Errorf("Layout = %dx%d, want 1x1", w, h)
	}
}

func TestRunConfigFrom(t *testing.T) {
	rc := RunConfigFrom(DefaultConfig())
	if rc.Width != 320 || rc.Height != 180 || rc.Scale != 4 || rc.TPS != 60 {
		t.Errorf("RunConfig = %+v", rc)
	}
}
