package pretender

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestGenerateVillagerStripsShape(t *testing.T) {
	cfg := DefaultTextureConfig()
	cfg.Capacity = 6
	strips, err := GenerateVillagerStrips(context.Background(), cfg, 7)
	if err != nil {
		t.Fatalf("GenerateVillagerStrips: %v", err)
	}
	if len(strips) != 6 {
		t.Fatalf("len = %d, want 6", len(strips))
	}
	for i, s := range strips {
		b := s.Bounds()
		if b.Dx() != cfg.FrameWidth*cfg.Frames || b.Dy() != cfg.FrameHeight {
			t.Errorf("strip %d bounds = %v, want %dx%d", i, b, cfg.FrameWidth*cfg.Frames, cfg.FrameHeight)
		}
	}
}

func TestGenerateVillagerStripsDeterministic(t *testing.T) {
	cfg := DefaultTextureConfig()
	cfg.Capacity = 4
	a, _ := GenerateVillagerStrips(context.Background(), cfg, 99)
	b, _ := GenerateVillagerStrips(context.Background(), cfg, 99)
	for i := range a {
		if !bytes.Equal(a[i].Pix, b[i].Pix) {
			t.Errorf("strip %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerateVillagerStripsFramesDiffer(t *testing.T) {
	cfg := DefaultTextureConfig()
	cfg.Capacity = 1
	strips, _ := GenerateVillagerStrips(context.Background(), cfg, 1)
	s := strips[0]
	same := true
	for y := 0; y < cfg.FrameHeight && same; y++ {
		for x := 0; x < cfg.FrameWidth; x++ {
			if s.RGBAAt(x, y) != s.RGBAAt(x+cfg.FrameWidth, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("walk frames are identical")
	}
}

func TestGenerateVillagerStripsInvalidConfig(t *testing.T) {
	cfg := DefaultTextureConfig()
	cfg.Frames = 0
	_, err := GenerateVillagerStrips(context.Background(), cfg, 1)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestGenerateVillagerStripsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := GenerateVillagerStrips(ctx, DefaultTextureConfig(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestTexturePoolPicksFromPool(t *testing.T) {
	cfg := DefaultTextureConfig()
	cfg.Capacity = 3
	p, err := NewTexturePool(context.Background(), cfg, 5, newTestRand(5))
	if err != nil {
		t.Fatalf("NewTexturePool: %v", err)
	}
	defer p.Dispose()
	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	for i := 0; i < 20; i++ {
		if p.Texture() == nil {
			t.Fatal("Texture() returned nil")
		}
	}
}

func TestHouseRowCoversWidth(t *testing.T) {
	cfg := DefaultBackdropConfig()
	row := drawHouseRow(newTestRand(3), 200, 30, cfg)
	if row.Bounds().Dy() != 30+cfg.RoofOffset {
		t.Errorf("row height = %d, want %d", row.Bounds().Dy(), 30+cfg.RoofOffset)
	}
	bottom := row.Bounds().Dy() - 1
	for x := 0; x < 200; x++ {
		if row.RGBAAt(x, bottom).A == 0 {
			t.Fatalf("gap in house row at x=%d", x)
		}
	}
}

func TestNewBackdropPlacesLayers(t *testing.T) {
	street := Rect{X: 0, Y: 72, Width: 320, Height: 72}
	b := NewBackdrop(320, 180, street, DefaultBackdropConfig(), newTestRand(1))
	defer b.Dispose()

	if b.Sky.Image == nil || b.Sky.Image.Bounds().Dy() != 72 {
		t.Errorf("sky = %v, want height 72", b.Sky.Image)
	}
	if b.Street.Y != 72 || b.Street.Image.Bounds().Dx() != 320 {
		t.Errorf("street layer at y=%f width %d", b.Street.Y, b.Street.Image.Bounds().Dx())
	}
	bgBottom := b.Background.Y + float64(b.Background.Image.Bounds().Dy())
	if bgBottom != street.Y {
		t.Errorf("background bottom = %f, want %f", bgBottom, street.Y)
	}
	fgBottom := b.Foreground.Y + float64(b.Foreground.Image.Bounds().Dy())
	if fgBottom != 180 {
		t.Errorf("foreground bottom = %f, want 180", fgBottom)
	}

	layers := b.Layers(NewRegistry())
	if layers.Entities == nil {
		t.Error("Layers() dropped the registry")
	}
}
