package pretender

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// TextureConfig controls procedural villager generation.
type TextureConfig struct {
	// Capacity is the number of distinct villager strips generated.
	Capacity int `yaml:"capacity"`
	// FrameWidth and FrameHeight are the size of one animation frame.
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	// Frames is the number of frames laid out horizontally per strip.
	Frames int `yaml:"frames"`
	// Workers bounds generation goroutines. Zero or less means one per strip.
	Workers int `yaml:"workers"`
}

// DefaultTextureConfig returns 50 two-frame 25x32 villagers.
func DefaultTextureConfig() TextureConfig {
	return TextureConfig{
		Capacity:    50,
		FrameWidth:  25,
		FrameHeight: 32,
		Frames:      2,
		Workers:     8,
	}
}

// GenerateVillagerStrips draws cfg.Capacity villager frame strips in
// parallel. Strip i is drawn from its own PCG stream (seed, i), so the output
// does not depend on scheduling.
func GenerateVillagerStrips(ctx context.Context, cfg TextureConfig, seed uint64) ([]*image.RGBA, error) {
	if cfg.Capacity <= 0 || cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 || cfg.Frames <= 0 {
		return nil, fmt.Errorf("%w: texture config %+v", ErrInvalidConfig, cfg)
	}

	strips := make([]*image.RGBA, cfg.Capacity)
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := range strips {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			strips[i] = drawVillagerStrip(rng, cfg.FrameWidth, cfg.FrameHeight, cfg.Frames)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate villager textures: %w", err)
	}
	return strips, nil
}

// TexturePool hands out pre-generated villager textures at random.
type TexturePool struct {
	textures []*ebiten.Image
	rng      *rand.Rand
}

// NewTexturePool generates the villager strips and uploads them as images.
func NewTexturePool(ctx context.Context, cfg TextureConfig, seed uint64, rng *rand.Rand) (*TexturePool, error) {
	strips, err := GenerateVillagerStrips(ctx, cfg, seed)
	if err != nil {
		return nil, err
	}
	p := &TexturePool{textures: make([]*ebiten.Image, len(strips)), rng: rng}
	for i, s := range strips {
		p.textures[i] = ebiten.NewImageFromImage(s)
	}
	return p, nil
}

// Texture returns a random villager texture.
func (p *TexturePool) Texture() *ebiten.Image {
	return p.textures[p.rng.IntN(len(p.textures))]
}

// Len returns the number of distinct textures.
func (p *TexturePool) Len() int { return len(p.textures) }

// Dispose releases every texture.
func (p *TexturePool) Dispose() {
	for _, t := range p.textures {
		t.Deallocate()
	}
	p.textures = nil
}

var (
	skinTones = []color.RGBA{
		{0xf1, 0xc2, 0x7d, 0xff},
		{0xe0, 0xac, 0x69, 0xff},
		{0xc6, 0x86, 0x42, 0xff},
		{0x8d, 0x55, 0x24, 0xff},
	}
	hairColors = []color.RGBA{
		{0x2c, 0x1b, 0x10, 0xff},
		{0x6a, 0x4e, 0x2f, 0xff},
		{0xd8, 0xc0, 0x78, 0xff},
		{0x90, 0x90, 0x90, 0xff},
	}
)

func randomCloth(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(40 + rng.IntN(200)),
		G: uint8(40 + rng.IntN(200)),
		B: uint8(40 + rng.IntN(200)),
		A: 0xff,
	}
}

// drawVillagerStrip paints frames side by side. Frames differ only in the
// leg stance, which gives a two-step walk cycle.
func drawVillagerStrip(rng *rand.Rand, w, h, frames int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w*frames, h))

	skin := skinTones[rng.IntN(len(skinTones))]
	hair := hairColors[rng.IntN(len(hairColors))]
	shirt := randomCloth(rng)
	pants := randomCloth(rng)

	headH := h / 4
	torsoH := h * 3 / 8
	legH := h - headH - torsoH
	headW := w * 2 / 5
	torsoW := w * 3 / 5

	for f := 0; f < frames; f++ {
		ox := f * w
		cx := ox + w/2

		fillRect(img, cx-headW/2, 0, headW, headH, skin)
		fillRect(img, cx-headW/2, 0, headW, max(1, headH/3), hair)
		fillRect(img, cx-torsoW/2, headH, torsoW, torsoH, shirt)

		legW := max(1, torsoW/3)
		stride := 0
		if f%2 == 1 {
			stride = max(1, legW/2)
		}
		fillRect(img, cx-torsoW/2+stride, headH+torsoH, legW, legH, pants)
		fillRect(img, cx+torsoW/2-legW-stride, headH+torsoH, legW, legH, pants)
	}
	return img
}

// BackdropConfig shapes the static scene layers.
type BackdropConfig struct {
	SkyColor    Color `yaml:"sky_color"`
	StreetColor Color `yaml:"street_color"`
	HouseMinW   int   `yaml:"house_min_width"`
	HouseMaxW   int   `yaml:"house_max_width"`
	// RoofOffset is the extra height a house row may reach above its base.
	RoofOffset int `yaml:"roof_offset"`
	// BackHeight is the height of the house row behind the street.
	BackHeight int `yaml:"back_height"`
}

// DefaultBackdropConfig returns a pale sky over grey cobbles.
func DefaultBackdropConfig() BackdropConfig {
	return BackdropConfig{
		SkyColor:    Color{0.55, 0.75, 0.95, 1},
		StreetColor: Color{0.42, 0.4, 0.38, 1},
		HouseMinW:   30,
		HouseMaxW:   40,
		RoofOffset:  14,
		BackHeight:  30,
	}
}

// Backdrop is the set of static layers around the street. The Entities
// field of the returned Layers is left for the scene to fill in.
type Backdrop struct {
	Sky        Layer
	Background Layer
	Street     Layer
	Foreground Layer
}

// Layers returns the backdrop with reg as the entity layer.
func (b Backdrop) Layers(reg *Registry) Layers {
	return Layers{
		Sky:        b.Sky,
		Background: b.Background,
		Street:     b.Street,
		Entities:   reg,
		Foreground: b.Foreground,
	}
}

// Dispose releases the backdrop images.
func (b Backdrop) Dispose() {
	for _, l := range []Layer{b.Sky, b.Background, b.Street, b.Foreground} {
		if l.Image != nil {
			l.Image.Deallocate()
		}
	}
}

// NewBackdrop paints the sky above the street, a house row behind it, the
// street itself, and a house row in front reaching the bottom of the screen.
func NewBackdrop(width, height int, street Rect, cfg BackdropConfig, rng *rand.Rand) Backdrop {
	var b Backdrop

	if skyH := int(street.Y); skyH > 0 {
		sky := image.NewRGBA(image.Rect(0, 0, width, skyH))
		fillRect(sky, 0, 0, width, skyH, cfg.SkyColor.rgba())
		b.Sky = Layer{Image: ebiten.NewImageFromImage(sky)}
	}

	if cfg.BackHeight > 0 {
		row := drawHouseRow(rng, width, cfg.BackHeight, cfg)
		b.Background = Layer{
			Image: ebiten.NewImageFromImage(row),
			X:     0,
			Y:     street.Y - float64(row.Bounds().Dy()),
		}
	}

	sw, sh := int(street.Width), int(street.Height)
	if sw > 0 && sh > 0 {
		b.Street = Layer{
			Image: ebiten.NewImageFromImage(drawStreet(rng, sw, sh, cfg.StreetColor)),
			X:     street.X,
			Y:     street.Y,
		}
	}

	if frontH := height - int(street.Bottom()); frontH > 0 {
		row := drawHouseRow(rng, width, frontH, cfg)
		b.Foreground = Layer{
			Image: ebiten.NewImageFromImage(row),
			X:     0,
			Y:     street.Bottom() - float64(row.Bounds().Dy()-frontH),
		}
	}
	return b
}

// drawHouseRow lays houses left to right starting at a random negative
// offset. Every house is at least minH tall; roofs reach up to RoofOffset
// higher. Houses stand on the bottom edge of the image.
func drawHouseRow(rng *rand.Rand, width, minH int, cfg BackdropConfig) *image.RGBA {
	rowH := minH + cfg.RoofOffset
	img := image.NewRGBA(image.Rect(0, 0, width, rowH))

	span := max(1, cfg.HouseMaxW-cfg.HouseMinW)
	x := -rng.IntN(max(1, cfg.HouseMaxW))
	for x < width {
		w := cfg.HouseMinW + rng.IntN(span)
		h := minH + rng.IntN(max(1, cfg.RoofOffset))
		drawHouse(rng, img, x, rowH-h, w, h)
		x += w
	}
	return img
}

func drawHouse(rng *rand.Rand, img *image.RGBA, x, y, w, h int) {
	wall := color.RGBA{
		R: uint8(150 + rng.IntN(90)),
		G: uint8(120 + rng.IntN(90)),
		B: uint8(90 + rng.IntN(80)),
		A: 0xff,
	}
	roof := color.RGBA{R: uint8(90 + rng.IntN(60)), G: 0x3a, B: 0x2a, A: 0xff}
	window := color.RGBA{0x30, 0x38, 0x50, 0xff}

	roofH := max(2, h/6)
	fillRect(img, x, y, w, roofH, roof)
	fillRect(img, x, y+roofH, w, h-roofH, wall)

	const win = 4
	for wy := y + roofH + 3; wy+win < y+h-2; wy += win * 2 {
		for wx := x + 3; wx+win < x+w-2; wx += win * 2 {
			fillRect(img, wx, wy, win, win, window)
		}
	}
}

// drawStreet fills the band with a base color and scatters darker cobbles.
func drawStreet(rng *rand.Rand, w, h int, base Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := base.rgba()
	fillRect(img, 0, 0, w, h, c)
	dark := color.RGBA{R: c.R * 4 / 5, G: c.G * 4 / 5, B: c.B * 4 / 5, A: 0xff}
	for i := 0; i < w*h/24; i++ {
		fillRect(img, rng.IntN(w), rng.IntN(h), 2, 1, dark)
	}
	return img
}

// fillRect paints a rectangle, clipped to the image.
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

// rgba converts an opaque Color to color.RGBA.
func (c Color) rgba() color.RGBA {
	rgba := c.toRGBA()
	return color.RGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}
