package pretender

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingStage is a PostProcess that remembers uniforms and draw calls.
type recordingStage struct {
	uniforms map[string][]float32
	draws    int
	lastSrc  *ebiten.Image
}

func newRecordingStage() *recordingStage {
	return &recordingStage{uniforms: make(map[string][]float32)}
}

func (r *recordingStage) Set(name string, values ...float32) {
	r.uniforms[name] = append([]float32(nil), values...)
}

func (r *recordingStage) Draw(dst, src *ebiten.Image, x, y float64) {
	r.draws++
	r.lastSrc = src
}

func TestNewCompositorRejectsNilStage(t *testing.T) {
	_, err := NewCompositor(nil, DefaultCompositorConfig())
	if !errors.Is(err, ErrNoPostProcess) {
		t.Errorf("err = %v, want ErrNoPostProcess", err)
	}
}

func TestCompositorSetsUniforms(t *testing.T) {
	stage := newRecordingStage()
	cfg := DefaultCompositorConfig()
	cfg.Width, cfg.Height = 64, 32
	c, err := NewCompositor(stage, cfg)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	defer c.Dispose()

	screen := ebiten.NewImage(64, 32)
	c.Draw(screen, Layers{}, 2.5, Color{R: 0.5, G: 0.25, B: 1, A: 1})

	want := map[string][]float32{
		UniformTime:        {2.5},
		UniformFrequency:   {160},
		UniformNoiseFactor: {0.1},
		UniformIntensity:   {1.5},
		UniformLineSpeed:   {50.5},
		UniformWidth:       {64},
		UniformHeight:      {32},
		UniformAmbient:     {0.6, 0.3, 1.2},
	}
	for name, w := range want {
		got, ok := stage.uniforms[name]
		if !ok {
			t.Errorf("uniform %q not set", name)
			continue
		}
		if len(got) != len(w) {
			t.Errorf("uniform %q = %v, want %v", name, got, w)
			continue
		}
		for i := range w {
			if math.Abs(float64(got[i]-w[i])) > 1e-5 {
				t.Errorf("uniform %q = %v, want %v", name, got, w)
				break
			}
		}
	}
	if stage.draws != 1 {
		t.Errorf("stage draws = %d, want 1", stage.draws)
	}
	if stage.lastSrc != c.Buffer().Image() {
		t.Error("stage did not draw the offscreen buffer")
	}
}

func TestCompositorDrawsOnlyLiveVisibleEntities(t *testing.T) {
	stage := newRecordingStage()
	cfg := DefaultCompositorConfig()
	cfg.Width, cfg.Height = 100, 100
	c, _ := NewCompositor(stage, cfg)
	defer c.Dispose()

	tex := ebiten.NewImage(10, 10)
	reg := NewRegistry()
	mk := func(x, y float64) *Entity {
		e := NewEntity()
		e.SetDimensions(10, 10)
		e.SetPosition(x, y)
		e.Texture = tex
		reg.Add(e)
		return e
	}
	mk(10, 10)
	mk(500, 10) // off camera
	gone := mk(20, 20)
	reg.Remove(gone)
	noTex := mk(30, 30)
	noTex.Texture = nil

	c.Draw(ebiten.NewImage(100, 100), Layers{Entities: reg}, 0, ColorWhite)
	drawn, culled := c.Stats()
	if drawn != 1 {
		t.Errorf("drawn = %d, want 1", drawn)
	}
	if culled != 1 {
		t.Errorf("culled = %d, want 1", culled)
	}
}

func TestCompositorResize(t *testing.T) {
	c, _ := NewCompositor(newRecordingStage(), DefaultCompositorConfig())
	defer c.Dispose()

	c.Resize(640, 360)
	if c.Buffer().Width() != 640 || c.Buffer().Height() != 360 {
		t.Errorf("buffer = %dx%d, want 640x360", c.Buffer().Width(), c.Buffer().Height())
	}
	if c.Camera().Viewport.Width != 640 {
		t.Errorf("camera viewport width = %f, want 640", c.Camera().Viewport.Width)
	}

	c.Resize(0, 10)
	if c.Buffer().Width() != 640 {
		t.Error("zero-size Resize should be ignored")
	}
}
