package pretender

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSource hands out villager textures. Implemented by TexturePool.
type TextureSource interface {
	Texture() *ebiten.Image
}

// SpawnerConfig holds the spawn cadence and villager shape.
type SpawnerConfig struct {
	// Interval is the time between spawns at the street's right edge.
	Interval float64 `yaml:"interval"`
	// InitialCount villagers are spawned over the right half of the street
	// when the spawner is created.
	InitialCount int `yaml:"initial_count"`
	// Width and Height are the villager dimensions.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// FrameDuration is the animation frame time of each villager.
	FrameDuration float64 `yaml:"frame_duration"`
}

// DefaultSpawnerConfig returns one villager every half second, a 400 villager
// initial crowd, 25x32 villagers and half-second animation frames.
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Interval:      0.5,
		InitialCount:  400,
		Width:         25,
		Height:        32,
		FrameDuration: 0.5,
	}
}

// SpawnerDeps are the collaborators a Spawner writes to.
type SpawnerDeps struct {
	Registry  *Registry
	Pool      *Pool[*Entity]
	Behaviors *BehaviorEngine
	Textures  TextureSource // optional; nil spawns untextured villagers
	Rand      *rand.Rand
	Events    EventSink // optional
}

// Spawner places villagers on the street at a fixed cadence.
type Spawner struct {
	cfg     SpawnerConfig
	street  Rect
	deps    SpawnerDeps
	elapsed float64
	spawned int
}

// NewSpawner creates a spawner and synchronously spawns the initial crowd at
// random positions over the right half of the street.
// Panics if cfg.Interval is not positive.
func NewSpawner(cfg SpawnerConfig, street Rect, deps SpawnerDeps) *Spawner {
	if cfg.Interval <= 0 {
		panic("pretender: spawn interval must be positive")
	}
	s := &Spawner{cfg: cfg, street: street, deps: deps}
	half := street.Width / 2
	for i := 0; i < cfg.InitialCount; i++ {
		x := street.X + half + half*deps.Rand.Float64()
		s.Spawn(x, s.randomY())
	}
	return s
}

// Update accumulates dt and spawns one villager at the right edge for every
// full interval elapsed. The remainder carries over, so the number of spawns
// depends only on total time, not on how it was chunked.
func (s *Spawner) Update(dt float64) {
	s.elapsed += dt
	for s.elapsed+spawnEpsilon >= s.cfg.Interval {
		s.elapsed -= s.cfg.Interval
		s.Spawn(s.street.Right()-s.cfg.Width, s.randomY())
	}
	if s.elapsed < 0 {
		s.elapsed = 0
	}
}

// spawnEpsilon absorbs float drift from summing tick deltas such as 1/60.
const spawnEpsilon = 1e-9

// Spawn obtains a villager from the pool, fully reassigns it and adds it to the
// registry at (x, y).
func (s *Spawner) Spawn(x, y float64) *Entity {
	e := s.deps.Pool.Obtain()
	e.Reset()
	e.SetPosition(x, y)
	e.SetDimensions(s.cfg.Width, s.cfg.Height)
	e.Body = s.body()
	if s.deps.Textures != nil {
		e.Texture = s.deps.Textures.Texture()
	}
	anim := NewAnimationStrategy(int(s.cfg.Width), int(s.cfg.Height), s.cfg.FrameDuration, s.deps.Rand)
	e.Animation = anim
	e.Behavior = s.deps.Behaviors.NewWander(anim.InitialDelay())

	s.deps.Registry.Add(e)
	s.spawned++
	emit(s.deps.Events, LifecycleEvent{Type: EventSpawned, EntityID: e.ID, X: x, Y: y})
	return e
}

// Elapsed returns the time accumulated toward the next spawn.
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}

// Spawned returns the number of villagers spawned so far, initial crowd included.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// body covers the lower third of the villager: the feet, for ground contact.
func (s *Spawner) body() Rect {
	third := s.cfg.Height / 3
	return Rect{X: 0, Y: s.cfg.Height - third, Width: s.cfg.Width, Height: third}
}

// randomY returns a position whose body lies inside the street band.
func (s *Spawner) randomY() float64 {
	b := s.body()
	minY := s.street.Y - b.Y
	span := s.street.Height - b.Height
	if span <= 0 {
		return minY
	}
	return minY + span*s.deps.Rand.Float64()
}
