package pretender

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MinTweenDuration is the shortest duration a tween may have. Shorter or
// non-positive durations passed to Animate are raised to this value.
const MinTweenDuration = 1e-3

// Property identifies the animated field of a Target.
type Property uint8

const (
	PropertyX     Property = iota // Entity.X
	PropertyY                     // Entity.Y
	PropertyRed                   // Color.R (or Entity.Tint.R)
	PropertyGreen                 // Color.G (or Entity.Tint.G)
	PropertyBlue                  // Color.B (or Entity.Tint.B)
	PropertyAlpha                 // Color.A (or Entity.Tint.A)
)

// Target is the closed set of things a tween can write to: an entity or a
// color. Build one with EntityTarget or ColorTarget. Targets compare equal
// when they refer to the same entity or color.
type Target struct {
	entity *Entity
	color  *Color
}

// EntityTarget returns a Target for an entity's position and tint.
func EntityTarget(e *Entity) Target { return Target{entity: e} }

// ColorTarget returns a Target for the channels of a color.
func ColorTarget(c *Color) Target { return Target{color: c} }

func (t Target) channels() *Color {
	if t.entity != nil {
		return &t.entity.Tint
	}
	return t.color
}

func (t Target) get(p Property) float64 {
	switch p {
	case PropertyX:
		return t.entity.X
	case PropertyY:
		return t.entity.Y
	case PropertyRed:
		return t.channels().R
	case PropertyGreen:
		return t.channels().G
	case PropertyBlue:
		return t.channels().B
	default:
		return t.channels().A
	}
}

func (t Target) set(p Property, v float64) {
	switch p {
	case PropertyX:
		t.entity.X = v
	case PropertyY:
		t.entity.Y = v
	case PropertyRed:
		t.channels().R = v
	case PropertyGreen:
		t.channels().G = v
	case PropertyBlue:
		t.channels().B = v
	default:
		t.channels().A = v
	}
}

func (t Target) supports(p Property) bool {
	switch {
	case t.entity != nil:
		return p <= PropertyAlpha
	case t.color != nil:
		return p >= PropertyRed && p <= PropertyAlpha
	}
	return false
}

// RepeatMode selects what a tween does when it reaches its target.
type RepeatMode uint8

const (
	RepeatNone RepeatMode = iota // finish and be removed
	RepeatYoyo                   // reverse direction forever
)

// Repeat configures a tween's repetition. The zero value is RepeatNone.
type Repeat struct {
	Mode RepeatMode
	// Delay pauses the tween for this many seconds at each reversal. The
	// direction is kept; only advancement stops.
	Delay float64
}

// Yoyo returns an infinite yoyo repeat with the given delay between legs.
func Yoyo(delay float64) Repeat {
	return Repeat{Mode: RepeatYoyo, Delay: delay}
}

// Tween is a single property interpolation owned by a TweenManager.
// Endpoints and time are kept in float64; the gween tween only maps elapsed
// time to eased progress in [0, 1].
type Tween struct {
	target   Target
	prop     Property
	from, to float64
	duration float64
	elapsed  float64
	wait     float64
	repeat   Repeat
	progress *gween.Tween
	done     bool
}

// Done reports whether the tween has finished or was stopped.
func (t *Tween) Done() bool { return t.done }

// Stop ends the tween where it is. The property keeps its current value.
func (t *Tween) Stop() { t.done = true }

// Target returns the tween's target.
func (t *Tween) Target() Target { return t.target }

// Property returns the animated property.
func (t *Tween) Property() Property { return t.prop }

// advance moves the tween forward by dt seconds and writes the new value.
// Overshoot past the end of a yoyo leg carries into the next leg.
func (t *Tween) advance(dt float64) {
	for !t.done && dt > 0 {
		if t.wait > 0 {
			if dt <= t.wait {
				t.wait -= dt
				return
			}
			dt -= t.wait
			t.wait = 0
		}

		t.elapsed += dt
		dt = 0
		if t.elapsed < t.duration {
			p, _ := t.progress.Set(float32(t.elapsed))
			t.target.set(t.prop, t.from+(t.to-t.from)*float64(p))
			return
		}

		t.target.set(t.prop, t.to)
		if t.repeat.Mode != RepeatYoyo {
			t.done = true
			return
		}
		dt = t.elapsed - t.duration
		t.from, t.to = t.to, t.from
		t.elapsed = 0
		t.wait = t.repeat.Delay
	}
}

// TweenManager advances a set of tweens once per tick, in registration order.
// There is no global manager; each scene owns one.
type TweenManager struct {
	tweens []*Tween
}

// NewTweenManager creates an empty manager.
func NewTweenManager() *TweenManager {
	return &TweenManager{}
}

// Animate registers a tween of target's property toward to. The start value is
// the property's value right now. A nil easing means ease.Linear.
// Panics if the property does not exist on the target.
func (m *TweenManager) Animate(target Target, prop Property, to float64, duration float32, fn ease.TweenFunc, repeat Repeat) *Tween {
	if !target.supports(prop) {
		panic(fmt.Sprintf("pretender: property %d not supported by tween target", prop))
	}
	d := float64(duration)
	if d < MinTweenDuration {
		d = MinTweenDuration
	}
	if fn == nil {
		fn = ease.Linear
	}
	t := &Tween{
		target:   target,
		prop:     prop,
		from:     target.get(prop),
		to:       to,
		duration: d,
		repeat:   repeat,
		progress: gween.New(0, 1, float32(d), fn),
	}
	m.tweens = append(m.tweens, t)
	return t
}

// Update advances every active tween by dt seconds and drops finished ones.
func (m *TweenManager) Update(dt float64) {
	n := len(m.tweens)
	for i := 0; i < n; i++ {
		m.tweens[i].advance(dt)
	}
	m.compact()
}

// IsAnimating reports whether any active tween writes to target, on any
// property.
func (m *TweenManager) IsAnimating(target Target) bool {
	for _, t := range m.tweens {
		if !t.done && t.target == target {
			return true
		}
	}
	return false
}

// Kill stops every tween on target and returns how many were stopped.
func (m *TweenManager) Kill(target Target) int {
	n := 0
	for _, t := range m.tweens {
		if !t.done && t.target == target {
			t.done = true
			n++
		}
	}
	if n > 0 {
		m.compact()
	}
	return n
}

// Len returns the number of active tweens.
func (m *TweenManager) Len() int {
	n := 0
	for _, t := range m.tweens {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *TweenManager) compact() {
	kept := m.tweens[:0]
	for _, t := range m.tweens {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept
}
