package pretender

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneOptions collects everything a Scene is built from.
type SceneOptions struct {
	Config Config
	// Stage is the post-process pass. Required.
	Stage PostProcess
	// Textures supplies villager textures. Nil spawns untextured villagers.
	Textures TextureSource
	// Backdrop holds the static layers. The zero value draws none.
	Backdrop Backdrop
	// Rand drives every random decision. Nil derives one from Config.Seed.
	Rand *rand.Rand
	// Logger receives scene logs. Nil discards them.
	Logger *zap.Logger
	// Events receives lifecycle events. May be nil.
	Events EventSink
	// Script is an optional session script stepped once per tick.
	Script *Script
}

var _ ScriptHost = (*Scene)(nil)

// Scene owns the living street: the entity registry and pool, tweens,
// behaviors, spawner, killer, day/night cycle and compositor. Update runs one
// simulation tick in a fixed order and Draw composites the result.
type Scene struct {
	street Rect

	registry   *Registry
	pool       *Pool[*Entity]
	tweens     *TweenManager
	behaviors  *BehaviorEngine
	detector   *Detector
	spawner    *Spawner
	killer     *Killer
	dayNight   *DayNightCycle
	compositor *Compositor
	layers     Layers

	logger *zap.Logger
	events EventSink
	script *Script

	elapsed float64
	frame   uint64
	quit    bool

	debug            bool
	fps              *fpsOverlay
	stats            debugStats
	warnedPopulation bool

	screenshotDir   string
	screenshotQueue []string
}

// NewScene validates the config, wires the subsystems together and spawns
// the initial crowd.
func NewScene(opts SceneOptions) (*Scene, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	crt := cfg.CRT
	crt.Width, crt.Height = cfg.Window.Width, cfg.Window.Height
	compositor, err := NewCompositor(opts.Stage, crt)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = cfg.NewRand()
	}

	street := cfg.Street.Rect(cfg.Window.Width, cfg.Window.Height)
	registry := NewRegistry()
	pool := NewPool(NewEntityFactory())
	tweens := NewTweenManager()
	behaviors := NewBehaviorEngine(street, tweens, rng, cfg.Villager)
	detector := NewDetector(registry)

	s := &Scene{
		street:        street,
		registry:      registry,
		pool:          pool,
		tweens:        tweens,
		behaviors:     behaviors,
		detector:      detector,
		killer:        NewKiller(registry, tweens, pool, detector, opts.Events),
		dayNight:      NewDayNightCycle(tweens, cfg.DayNight.Day, cfg.DayNight.Night, cfg.DayNight.DayLength),
		compositor:    compositor,
		layers:        opts.Backdrop.Layers(registry),
		logger:        logger,
		events:        opts.Events,
		script:        opts.Script,
		screenshotDir: cfg.ScreenshotDir,
	}
	s.spawner = NewSpawner(cfg.Spawner, street, SpawnerDeps{
		Registry:  registry,
		Pool:      pool,
		Behaviors: behaviors,
		Textures:  opts.Textures,
		Rand:      rng,
		Events:    opts.Events,
	})
	// The backdrop covers the window; panning never shows past its edges.
	compositor.Camera().SetBounds(Rect{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)})
	s.SetDebugMode(cfg.Debug)

	logger.Info("street ready",
		zap.String("street", fmt.Sprintf("%+v", street)),
		zap.Int("villagers", registry.Len()),
		zap.Float64("spawn_interval", cfg.Spawner.Interval),
		zap.Float32("day_length", cfg.DayNight.DayLength))
	return s, nil
}

// Update advances the street by dt seconds: pending removals are flushed,
// the script steps, the spawner runs, every live villager behaves, tweens
// advance, animations tick, and villagers past the left edge are retired.
func (s *Scene) Update(dt float64) {
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	s.killer.Flush()
	if s.script != nil {
		s.script.step(s, dt)
	}
	s.spawner.Update(dt)
	s.behaviors.BehaveAll(dt, s.registry)
	s.tweens.Update(dt)
	for _, e := range s.registry.Entities() {
		if e.Alive() && e.Animation != nil {
			e.Animation.Update(dt)
		}
	}
	s.killer.RetireOffStreet(s.street)
	s.compositor.Camera().Update(float32(dt))
	flushEvents(s.events)

	s.elapsed += dt
	s.frame++

	if s.debug {
		s.fps.update(dt, s.registry.Len())
		s.stats.updateTime = time.Since(start)
		s.debugCheckPopulation()
	}
}

// Draw composites the street onto screen: pass 1 into the offscreen buffer,
// pass 2 through the post-process stage with the current ambient color.
func (s *Scene) Draw(screen *ebiten.Image) {
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	s.compositor.Draw(screen, s.layers, s.elapsed, s.dayNight.Ambient())

	if s.debug {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)

	if s.debug {
		s.stats.drawTime = time.Since(start)
		s.collectStats(&s.stats)
		s.debugLog(s.stats)
	}
}

// Resize changes the buffer to w x h logical pixels.
func (s *Scene) Resize(w, h int) {
	s.compositor.Resize(w, h)
}

// KillAt retires the villager whose body contains the world point (x, y).
func (s *Scene) KillAt(x, y float64) bool {
	ok := s.killer.KillAt(x, y)
	if ok {
		s.logger.Debug("villager killed", zap.Float64("x", x), zap.Float64("y", y))
	}
	return ok
}

// KillAtScreen is KillAt for a point in screen coordinates.
func (s *Scene) KillAtScreen(sx, sy float64) bool {
	wx, wy := s.compositor.Camera().ScreenToWorld(sx, sy)
	return s.KillAt(wx, wy)
}

// ScrollTo pans the camera so it centers on the world point (x, y).
func (s *Scene) ScrollTo(x, y float64, duration float32) {
	s.compositor.Camera().ScrollTo(x, y, duration, ease.InOutSine)
}

// SetZoom changes the camera zoom. Non-positive values are ignored.
func (s *Scene) SetZoom(zoom float64) {
	if zoom > 0 {
		s.compositor.Camera().Zoom = zoom
	}
}

// Quit asks the host to stop after the current tick.
func (s *Scene) Quit() {
	s.quit = true
}

// Quitting reports whether Quit was called.
func (s *Scene) Quitting() bool {
	return s.quit
}

// SetDebugMode enables or disables the FPS overlay and per-frame stats.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled && s.fps == nil {
		s.fps = newFPSOverlay()
	}
}

// Street returns the walkable band.
func (s *Scene) Street() Rect { return s.street }

// Registry returns the live entity registry.
func (s *Scene) Registry() *Registry { return s.registry }

// Tweens returns the scene's tween manager.
func (s *Scene) Tweens() *TweenManager { return s.tweens }

// Spawner returns the villager spawner.
func (s *Scene) Spawner() *Spawner { return s.spawner }

// Killer returns the retirement policy.
func (s *Scene) Killer() *Killer { return s.killer }

// Detector returns the occupancy detector over the registry.
func (s *Scene) Detector() *Detector { return s.detector }

// DayNight returns the ambient color cycle.
func (s *Scene) DayNight() *DayNightCycle { return s.dayNight }

// Compositor returns the two-pass renderer.
func (s *Scene) Compositor() *Compositor { return s.compositor }

// Camera returns the pass 1 camera.
func (s *Scene) Camera() *Camera { return s.compositor.Camera() }

// Elapsed returns simulated seconds since the scene was created.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Frame returns the number of ticks run.
func (s *Scene) Frame() uint64 { return s.frame }

// Dispose releases the scene's GPU resources.
func (s *Scene) Dispose() {
	s.compositor.Dispose()
	if s.fps != nil {
		s.fps.dispose()
	}
}
