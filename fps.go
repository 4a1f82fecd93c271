package pretender

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS and the live villager count in the top-left
// corner. The text is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	op         ebiten.DrawImageOptions
}

func newFPSOverlay() *fpsOverlay {
	// 100x48 is enough for three short lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(100, 48), lastUpdate: 0.5}
}

func (o *fpsOverlay) update(dt float64, live int) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nLive: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), live))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, &o.op)
}

func (o *fpsOverlay) dispose() {
	o.img.Deallocate()
}
