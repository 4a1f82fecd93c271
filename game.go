package pretender

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Scene to ebiten.Game. Every tick advances the scene by
// 1/TPS seconds; a left click or a tap retires the villager under it and F12
// queues a screenshot.
type Game struct {
	scene    *Scene
	scale    int
	touchBuf []ebiten.TouchID
}

// NewGame wraps scene. scale divides the outside size to get the logical
// resolution; values below 1 are treated as 1.
func NewGame(scene *Scene, scale int) *Game {
	return &Game{scene: scene, scale: max(1, scale)}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.scene.Quitting() {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.KillAtScreen(float64(x), float64(y))
	}
	g.touchBuf = inpututil.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := ebiten.TouchPosition(id)
		g.scene.KillAtScreen(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.scene.Screenshot("manual")
	}

	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout implements ebiten.Game. The logical size follows the window so the
// buffer is reallocated when the window is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(1, outsideWidth/g.scale)
	h := max(1, outsideHeight/g.scale)
	g.scene.Resize(w, h)
	return w, h
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Fullscreen bool
	Resizable  bool
}

// RunConfigFrom extracts the window settings from a Config.
func RunConfigFrom(cfg Config) RunConfig {
	w := cfg.Window
	return RunConfig{
		Title:      w.Title,
		Width:      w.Width,
		Height:     w.Height,
		Scale:      w.Scale,
		TPS:        w.TPS,
		Fullscreen: w.Fullscreen,
		Resizable:  w.Resizable,
	}
}

// Run opens the window and runs scene until the window closes or the scene
// quits. It blocks on the main goroutine.
func Run(scene *Scene, cfg RunConfig) error {
	scale := max(1, cfg.Scale)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(NewGame(scene, scale))
}
