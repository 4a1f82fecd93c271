package pretender

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-kill", "after-kill"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque passes through
		0, 0, 0, 0, // transparent stays zero
	}, 3, 1)
	if got := img.NRGBAAt(0, 0); got.R != 127 || got.G != 63 || got.A != 128 {
		t.Errorf("pixel 0 = %+v, want R127 G63 A128", got)
	}
	if got := img.NRGBAAt(1, 0); got.R != 10 || got.B != 30 {
		t.Errorf("pixel 1 = %+v, want unchanged", got)
	}
	if got := img.NRGBAAt(2, 0); got.A != 0 {
		t.Errorf("pixel 2 = %+v, want transparent", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 4x2", b)
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s, _, _ := newTestScene(t, testSceneConfig())
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestScreenshotDirFromConfig(t *testing.T) {
	cfg := testSceneConfig()
	cfg.ScreenshotDir = "shots"
	s, _, _ := newTestScene(t, cfg)
	if s.screenshotDir != "shots" {
		t.Errorf("screenshotDir = %q, want %q", s.screenshotDir, "shots")
	}
}
