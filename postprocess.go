package pretender

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// PostProcess is the second render pass: it takes named float uniforms and
// draws a source texture through an effect.
type PostProcess interface {
	// Set stores a uniform. One value sets a float, several set a vector.
	Set(name string, values ...float32)
	// Draw renders src into dst at (x, y) with the effect applied.
	Draw(dst, src *ebiten.Image, x, y float64)
}

// DefaultCRTShader is the bundled post-process effect: scrolling scan lines,
// grain, a soft vignette, and the ambient day/night tint.
// All shaders use //kage:unit pixels; Ebitengine colors are premultiplied.
var DefaultCRTShader = []byte(`//kage:unit pixels
package main

var Time float
var Frequency float
var NoiseFactor float
var Intensity float
var LineSpeed float
var Width float
var Height float
var Ambient vec3

func grain(p vec2) float {
	return fract(sin(dot(p, vec2(12.9898, 78.233))) * 43758.5453)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	uv := (dstPos.xy - imageDstOrigin()) / vec2(Width, Height)

	// Scan lines scroll down the screen at LineSpeed pixels per second.
	s := sin((uv.y*Frequency - Time*LineSpeed/Height) * 3.14159265)
	scan := 1.0 - (s*0.5+0.5)*0.1*Intensity

	n := (grain(uv+vec2(Time*0.013, Time*0.007)) - 0.5) * NoiseFactor

	rgb := (c.rgb*scan + vec3(n)*c.a) * Ambient

	d := uv - vec2(0.5)
	rgb *= clamp(1.0-dot(d, d)*0.6*Intensity, 0, 1)

	return vec4(clamp(rgb, vec3(0), vec3(c.a)), c.a)
}
`)

// ShaderStage is a PostProcess backed by a Kage shader. The source image is
// bound as Images[0]; uniforms are kept in a persistent map and reused across
// frames.
type ShaderStage struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	shaderOp ebiten.DrawRectShaderOptions
}

// NewShaderStage compiles src into a post-process stage.
func NewShaderStage(src []byte) (*ShaderStage, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile post-process shader: %w", err)
	}
	return &ShaderStage{shader: s, uniforms: make(map[string]any, 8)}, nil
}

// Set stores a uniform value. Vector slices are reused when the length is
// unchanged so steady-state frames do not allocate.
func (s *ShaderStage) Set(name string, values ...float32) {
	switch len(values) {
	case 0:
		delete(s.uniforms, name)
	case 1:
		s.uniforms[name] = values[0]
	default:
		if buf, ok := s.uniforms[name].([]float32); ok && len(buf) == len(values) {
			copy(buf, values)
			return
		}
		s.uniforms[name] = append([]float32(nil), values...)
	}
}

// Uniform returns the stored value of a uniform, or nil.
func (s *ShaderStage) Uniform(name string) any {
	return s.uniforms[name]
}

// Draw runs the shader with src as Images[0], covering src's bounds at (x, y).
func (s *ShaderStage) Draw(dst, src *ebiten.Image, x, y float64) {
	b := src.Bounds()
	s.shaderOp.GeoM.Reset()
	s.shaderOp.GeoM.Translate(x, y)
	s.shaderOp.Images[0] = src
	s.shaderOp.Uniforms = s.uniforms
	dst.DrawRectShader(b.Dx(), b.Dy(), s.shader, &s.shaderOp)
}

// Dispose releases the compiled shader.
func (s *ShaderStage) Dispose() {
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}
