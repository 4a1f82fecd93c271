package pretender

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoPostProcess is returned by NewCompositor when no post-process stage is given.
var ErrNoPostProcess = errors.New("pretender: compositor needs a post-process stage")

// Uniform names written by the compositor on every frame.
const (
	UniformTime        = "Time"
	UniformFrequency   = "Frequency"
	UniformNoiseFactor = "NoiseFactor"
	UniformIntensity   = "Intensity"
	UniformLineSpeed   = "LineSpeed"
	UniformWidth       = "Width"
	UniformHeight      = "Height"
	UniformAmbient     = "Ambient"
)

// CompositorConfig holds the buffer size and the fixed post-process parameters.
type CompositorConfig struct {
	Width  int `yaml:"-"`
	Height int `yaml:"-"`

	Frequency   float32 `yaml:"frequency"`
	NoiseFactor float32 `yaml:"noise_factor"`
	Intensity   float32 `yaml:"intensity"`
	LineSpeed   float32 `yaml:"line_speed"`

	// AmbientScale multiplies the ambient color before it reaches the shader.
	AmbientScale float64 `yaml:"ambient_scale"`

	// ClearColor fills the buffer before the sky layer is drawn.
	ClearColor Color `yaml:"clear_color"`
}

// DefaultCompositorConfig returns the stock CRT parameters for a 320x180 buffer.
func DefaultCompositorConfig() CompositorConfig {
	return CompositorConfig{
		Width:        320,
		Height:       180,
		Frequency:    160,
		NoiseFactor:  0.1,
		Intensity:    1.5,
		LineSpeed:    50.5,
		AmbientScale: 1.2,
		ClearColor:   Color{0, 0, 0, 1},
	}
}

// Layer is a static image placed at a world position.
type Layer struct {
	Image *ebiten.Image
	X, Y  float64
}

// Layers is everything pass 1 draws, back to front. Nil images are skipped.
type Layers struct {
	Sky        Layer
	Background Layer
	Street     Layer
	Entities   *Registry
	Foreground Layer
}

// Compositor renders the street in two passes: the scene into an offscreen
// buffer through the camera, then the buffer onto the screen through a
// post-process stage.
type Compositor struct {
	stage  PostProcess
	cfg    CompositorConfig
	buffer *RenderTexture
	camera *Camera

	drawOp ebiten.DrawImageOptions
	drawn  int
	culled int
}

// NewCompositor allocates the offscreen buffer and a camera over it.
func NewCompositor(stage PostProcess, cfg CompositorConfig) (*Compositor, error) {
	if stage == nil {
		return nil, ErrNoPostProcess
	}
	return &Compositor{
		stage:  stage,
		cfg:    cfg,
		buffer: NewRenderTexture(cfg.Width, cfg.Height),
		camera: NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
	}, nil
}

// Camera returns the camera used for pass 1.
func (c *Compositor) Camera() *Camera { return c.camera }

// Buffer returns the offscreen scene buffer.
func (c *Compositor) Buffer() *RenderTexture { return c.buffer }

// Stats returns how many entities were drawn and culled in the last frame.
func (c *Compositor) Stats() (drawn, culled int) { return c.drawn, c.culled }

// Resize reallocates the buffer and moves the camera viewport to match.
func (c *Compositor) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.cfg.Width, c.cfg.Height = w, h
	c.buffer.Resize(w, h)
	c.camera.SetViewport(Rect{Width: float64(w), Height: float64(h)})
}

// Draw runs both passes. elapsed drives the shader's Time uniform and ambient
// is the current day/night color.
func (c *Compositor) Draw(screen *ebiten.Image, layers Layers, elapsed float64, ambient Color) {
	c.drawScene(layers)
	c.applyPostProcess(screen, elapsed, ambient)
}

func (c *Compositor) drawScene(layers Layers) {
	dst := c.buffer.Image()
	c.buffer.Fill(c.cfg.ClearColor)

	c.drawLayer(dst, layers.Sky)
	c.drawLayer(dst, layers.Background)
	c.drawLayer(dst, layers.Street)

	c.drawn, c.culled = 0, 0
	if layers.Entities != nil {
		visible := c.camera.VisibleBounds()
		for _, e := range layers.Entities.Entities() {
			if !e.Alive() || e.Texture == nil {
				continue
			}
			if !e.Bounds().Intersects(visible) {
				c.culled++
				continue
			}
			img := e.Texture
			if e.Animation != nil {
				img = e.Animation.Frame(e.Texture)
			}
			c.drawOp.GeoM = c.camera.GeoM(e.X, e.Y)
			c.drawOp.ColorScale = e.Tint.colorScale()
			dst.DrawImage(img, &c.drawOp)
			c.drawn++
		}
	}

	c.drawLayer(dst, layers.Foreground)
}

func (c *Compositor) drawLayer(dst *ebiten.Image, l Layer) {
	if l.Image == nil {
		return
	}
	c.drawOp.GeoM = c.camera.GeoM(l.X, l.Y)
	c.drawOp.ColorScale.Reset()
	dst.DrawImage(l.Image, &c.drawOp)
}

func (c *Compositor) applyPostProcess(screen *ebiten.Image, elapsed float64, ambient Color) {
	a := ambient.Scale(c.cfg.AmbientScale)
	c.stage.Set(UniformTime, float32(elapsed))
	c.stage.Set(UniformFrequency, c.cfg.Frequency)
	c.stage.Set(UniformNoiseFactor, c.cfg.NoiseFactor)
	c.stage.Set(UniformIntensity, c.cfg.Intensity)
	c.stage.Set(UniformLineSpeed, c.cfg.LineSpeed)
	c.stage.Set(UniformWidth, float32(c.buffer.Width()))
	c.stage.Set(UniformHeight, float32(c.buffer.Height()))
	c.stage.Set(UniformAmbient, float32(a.R), float32(a.G), float32(a.B))
	c.stage.Draw(screen, c.buffer.Image(), 0, 0)
}

// Dispose releases the offscreen buffer.
func (c *Compositor) Dispose() {
	c.buffer.Dispose()
}
