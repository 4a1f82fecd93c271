package pretender

import (
	"image"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationStrategy selects which frame of a horizontal frame strip an entity
// shows. Each strategy waits a random initial delay before its clock starts,
// so a crowd spawned together does not step in lockstep.
type AnimationStrategy struct {
	FrameWidth, FrameHeight int
	FrameDuration           float64

	initialDelay float64
	clock        float64
	frame        int
}

// NewAnimationStrategy creates a strategy for frames of the given size,
// drawing its initial delay from [0, frameDuration) with rng.
func NewAnimationStrategy(frameW, frameH int, frameDuration float64, rng *rand.Rand) *AnimationStrategy {
	return &AnimationStrategy{
		FrameWidth:    frameW,
		FrameHeight:   frameH,
		FrameDuration: frameDuration,
		initialDelay:  rng.Float64() * frameDuration,
	}
}

// InitialDelay returns the stagger applied before the first frame change.
func (a *AnimationStrategy) InitialDelay() float64 {
	return a.initialDelay
}

// Update advances the frame clock by dt seconds.
func (a *AnimationStrategy) Update(dt float64) {
	a.clock += dt
	if a.FrameDuration <= 0 || a.clock < a.initialDelay {
		return
	}
	a.frame = int((a.clock - a.initialDelay) / a.FrameDuration)
}

// FrameIndex returns the current frame counter, unbounded. Frame wraps it to
// the strip length.
func (a *AnimationStrategy) FrameIndex() int {
	return a.frame
}

// Frame returns the current frame of tex, a horizontal strip of frames.
// Returns tex unchanged if it is nil or narrower than one frame.
func (a *AnimationStrategy) Frame(tex *ebiten.Image) *ebiten.Image {
	if tex == nil || a.FrameWidth <= 0 {
		return tex
	}
	b := tex.Bounds()
	count := b.Dx() / a.FrameWidth
	if count <= 1 {
		return tex
	}
	x := b.Min.X + (a.frame%count)*a.FrameWidth
	h := a.FrameHeight
	if h <= 0 || h > b.Dy() {
		h = b.Dy()
	}
	return tex.SubImage(image.Rect(x, b.Min.Y, x+a.FrameWidth, b.Min.Y+h)).(*ebiten.Image)
}
