package pretender

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// BehaviorKind selects the per-tick logic of an entity. It is resolved once at
// spawn; the engine dispatches on it with a switch.
type BehaviorKind uint8

const (
	BehaviorNone   BehaviorKind = iota // entity is static
	BehaviorWander                     // idle, then drift left with a random vertical step
)

// Behavior is the tagged variant attached to an entity. Only the state
// matching Kind is meaningful.
type Behavior struct {
	Kind   BehaviorKind
	Wander WanderState
}

// WanderPhase is the observable state of a wander behavior.
type WanderPhase uint8

const (
	WanderWaiting WanderPhase = iota // no move issued yet
	WanderIdle                       // between moves
)

// WanderState is the per-entity state of a wandering villager.
type WanderState struct {
	// Delay is the staggered start offset. It is cleared by the first move.
	Delay float64
	// Idle accumulates time since the last move decision. It starts at Delay.
	Idle float64
	// Threshold is the idle time required before the next decision.
	Threshold float64
	// Moves counts issued decisions.
	Moves int
}

// Phase reports whether the villager has made its first move.
func (w WanderState) Phase() WanderPhase {
	if w.Moves == 0 {
		return WanderWaiting
	}
	return WanderIdle
}

// NewWanderBehavior returns a wander behavior that starts with delay seconds
// of idle time already accumulated and decides after threshold seconds.
func NewWanderBehavior(delay, threshold float64) Behavior {
	return Behavior{
		Kind: BehaviorWander,
		Wander: WanderState{
			Delay:     delay,
			Idle:      delay,
			Threshold: threshold,
		},
	}
}

// WanderConfig holds the tuning of the wander behavior.
type WanderConfig struct {
	// MinWait and MaxWait bound the randomized idle threshold, in seconds.
	MinWait float64 `yaml:"min_wait"`
	MaxWait float64 `yaml:"max_wait"`
	// MinSpeedX and MaxSpeedX bound the leftward step per decision, in pixels.
	MinSpeedX float64 `yaml:"min_speed_x"`
	MaxSpeedX float64 `yaml:"max_speed_x"`
	// SpeedY is the vertical step per decision, in pixels. The sign is random.
	SpeedY float64 `yaml:"speed_y"`
	// MoveDuration is the duration of both step tweens.
	MoveDuration float32 `yaml:"move_duration"`
	// Easing is applied to both step tweens. Nil means ease.InOutCubic.
	Easing ease.TweenFunc `yaml:"-"`
}

// DefaultWanderConfig returns the villager tuning: wait 1-5s, step 10-15px
// left and 8px up or down over one second.
func DefaultWanderConfig() WanderConfig {
	return WanderConfig{
		MinWait:      1,
		MaxWait:      5,
		MinSpeedX:    10,
		MaxSpeedX:    15,
		SpeedY:       8,
		MoveDuration: 1,
		Easing:       ease.InOutCubic,
	}
}

// BehaviorEngine runs entity behaviors once per tick.
type BehaviorEngine struct {
	street Rect
	tweens *TweenManager
	rng    *rand.Rand
	cfg    WanderConfig
}

// NewBehaviorEngine creates an engine confined to street. Moves are issued
// through tweens and every random draw comes from rng.
func NewBehaviorEngine(street Rect, tweens *TweenManager, rng *rand.Rand, cfg WanderConfig) *BehaviorEngine {
	if cfg.Easing == nil {
		cfg.Easing = ease.InOutCubic
	}
	return &BehaviorEngine{street: street, tweens: tweens, rng: rng, cfg: cfg}
}

// NewWander returns a fresh wander behavior with a randomized threshold.
func (b *BehaviorEngine) NewWander(delay float64) Behavior {
	return NewWanderBehavior(delay, b.nextThreshold())
}

// Behave runs e's behavior for one tick of dt seconds.
func (b *BehaviorEngine) Behave(dt float64, e *Entity) {
	switch e.Behavior.Kind {
	case BehaviorWander:
		b.wander(dt, e)
	}
}

// BehaveAll runs the behavior of every live entity in reg. Entities added
// during the pass are not visited until the next tick.
func (b *BehaviorEngine) BehaveAll(dt float64, reg *Registry) {
	entities := reg.Entities()
	n := len(entities)
	for i := 0; i < n; i++ {
		if e := entities[i]; e.Alive() {
			b.Behave(dt, e)
		}
	}
}

func (b *BehaviorEngine) wander(dt float64, e *Entity) {
	w := &e.Behavior.Wander
	w.Idle += dt

	target := EntityTarget(e)
	if b.tweens.IsAnimating(target) || w.Idle < w.Threshold {
		return
	}

	w.Idle = 0
	w.Threshold = b.nextThreshold()
	w.Delay = 0
	w.Moves++

	speedX := b.cfg.MinSpeedX + b.rng.Float64()*(b.cfg.MaxSpeedX-b.cfg.MinSpeedX)
	b.tweens.Animate(target, PropertyX, e.X-speedX, b.cfg.MoveDuration, b.cfg.Easing, Repeat{})

	b.tweens.Animate(target, PropertyY, b.clampY(e), b.cfg.MoveDuration, b.cfg.Easing, Repeat{})
}

// clampY picks the vertical target for e. A step that would put the body on
// or past the street's upper edge goes down instead; one that would reach the
// lower edge goes up.
func (b *BehaviorEngine) clampY(e *Entity) float64 {
	speed := b.cfg.SpeedY
	step := speed
	if b.rng.Float64() > 0.5 {
		step = -speed
	}
	newY := e.Y + step
	if newY+e.Body.Y <= b.street.Y {
		newY = e.Y + speed
	}
	if newY+e.Body.Y+e.Body.Height >= b.street.Bottom() {
		newY = e.Y - speed
	}
	return newY
}

func (b *BehaviorEngine) nextThreshold() float64 {
	return b.cfg.MinWait + b.rng.Float64()*(b.cfg.MaxWait-b.cfg.MinWait)
}
