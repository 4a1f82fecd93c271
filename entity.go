package pretender

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entity is a pooled simulation unit: a villager, or anything else that lives
// on the street. A single flat struct is used for every kind; per-kind logic
// is selected by Behavior.Kind.
type Entity struct {
	// ID is the pool slot. It survives Reset so a recycled entity keeps its
	// identity in logs and events.
	ID uint32

	// X and Y are the world-space position of the entity's top-left corner.
	X, Y float64

	// Body is the collision rectangle relative to (X, Y).
	Body Rect

	// Texture is the renderable handle. May be nil (entity is not drawn).
	Texture *ebiten.Image

	// Tint multiplies the texture color when drawn.
	Tint Color

	// Behavior is the per-tick logic attached at spawn.
	Behavior Behavior

	// Animation selects frames from Texture. Nil draws the whole texture.
	Animation *AnimationStrategy

	width, height float64
	sized         bool
	alive         bool
	removed       bool
}

// NewEntity allocates an untinted entity with ID 0.
func NewEntity() *Entity {
	return &Entity{Tint: ColorWhite}
}

// NewEntityFactory returns a pool constructor that numbers the entities it
// allocates 1, 2, 3... Each factory keeps its own count, so two scenes never
// share IDs state. Not safe for concurrent use.
func NewEntityFactory() func() *Entity {
	var next uint32
	return func() *Entity {
		next++
		e := NewEntity()
		e.ID = next
		return e
	}
}

// Reset clears every field except ID so a recycled entity carries nothing
// from its previous occupant.
func (e *Entity) Reset() {
	id := e.ID
	*e = Entity{ID: id, Tint: ColorWhite}
}

// SetDimensions fixes the entity's width and height. Dimensions are set once
// per occupancy; a second call before Reset panics.
func (e *Entity) SetDimensions(w, h float64) {
	if e.sized {
		panic(fmt.Sprintf("pretender: dimensions of entity %d already set", e.ID))
	}
	e.width, e.height = w, h
	e.sized = true
}

// Width returns the entity width.
func (e *Entity) Width() float64 { return e.width }

// Height returns the entity height.
func (e *Entity) Height() float64 { return e.height }

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.X, e.Y = x, y
}

// Bounds returns the entity's full world-space rectangle.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.width, Height: e.height}
}

// WorldBody returns the collision body in world space.
func (e *Entity) WorldBody() Rect {
	return e.Body.Offset(e.X, e.Y)
}

// Alive reports whether the entity is registered in a live registry.
func (e *Entity) Alive() bool {
	return e.alive && !e.removed
}
