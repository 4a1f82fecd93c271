package pretender

import (
	"math/rand/v2"
	"testing"
)

var testStreet = Rect{X: 0, Y: 40, Width: 100, Height: 40}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func villagerBody() Rect {
	return Rect{X: 0, Y: 32 - 32.0/3, Width: 25, Height: 32.0 / 3}
}

func newVillagerAt(x, y float64) *Entity {
	e := NewEntity()
	e.SetPosition(x, y)
	e.SetDimensions(25, 32)
	e.Body = villagerBody()
	return e
}

func TestWanderWaitsForThreshold(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(1), DefaultWanderConfig())
	e := newVillagerAt(50, 30)
	e.Behavior = NewWanderBehavior(0, 2)

	b.Behave(1, e)
	if m.Len() != 0 {
		t.Fatalf("moved before threshold: %d tweens", m.Len())
	}
	if e.Behavior.Wander.Phase() != WanderWaiting {
		t.Error("phase should be waiting before the first move")
	}

	b.Behave(1, e)
	if m.Len() != 2 {
		t.Fatalf("tweens = %d, want 2 (X and Y)", m.Len())
	}
	w := e.Behavior.Wander
	if w.Idle != 0 || w.Moves != 1 || w.Delay != 0 {
		t.Errorf("state after decision = %+v", w)
	}
	if w.Threshold < 1 || w.Threshold >= 5 {
		t.Errorf("Threshold = %f, want in [1,5)", w.Threshold)
	}
	if w.Phase() != WanderIdle {
		t.Error("phase should be idle after the first move")
	}
}

func TestWanderDelayIsStartingOffset(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(2), DefaultWanderConfig())
	e := newVillagerAt(50, 30)
	e.Behavior = NewWanderBehavior(1.5, 2)
	b.Behave(0.5, e)
	if !m.IsAnimating(EntityTarget(e)) {
		t.Error("delay offset plus 0.5s should reach the 2s threshold")
	}
}

func TestWanderSkipsWhileAnimating(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(3), DefaultWanderConfig())
	e := newVillagerAt(50, 30)
	e.Behavior = NewWanderBehavior(0, 1)
	b.Behave(1, e)
	b.Behave(10, e)
	if m.Len() != 2 {
		t.Errorf("tweens = %d, want 2 (no overlapping decision)", m.Len())
	}
	if e.Behavior.Wander.Moves != 1 {
		t.Errorf("Moves = %d, want 1", e.Behavior.Wander.Moves)
	}
}

func TestWanderMovesLeft(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(4), DefaultWanderConfig())
	e := newVillagerAt(50, 30)
	e.Behavior = NewWanderBehavior(0, 1)
	b.Behave(1, e)
	m.Update(0.5)
	m.Update(0.5)
	if d := 50 - e.X; d < 10-1e-3 || d > 15+1e-3 {
		t.Errorf("moved left by %f, want in [10,15]", d)
	}
}

func TestWanderClampsAtUpperEdge(t *testing.T) {
	body := villagerBody()
	for seed := uint64(0); seed < 32; seed++ {
		m := NewTweenManager()
		b := NewBehaviorEngine(testStreet, m, newTestRand(seed), DefaultWanderConfig())
		// Body top one pixel below the street's upper edge.
		y := testStreet.Y + 1 - body.Y
		e := newVillagerAt(50, y)
		e.Behavior = NewWanderBehavior(0, 1)
		b.Behave(1, e)
		m.Update(1)
		if e.Y != y+8 {
			t.Fatalf("seed %d: Y = %f, want %f (forced down)", seed, e.Y, y+8)
		}
	}
}

func TestWanderClampsAtLowerEdge(t *testing.T) {
	body := villagerBody()
	for seed := uint64(0); seed < 32; seed++ {
		m := NewTweenManager()
		b := NewBehaviorEngine(testStreet, m, newTestRand(seed), DefaultWanderConfig())
		// Body bottom one pixel above the street's lower edge.
		y := testStreet.Bottom() - 1 - body.Y - body.Height
		e := newVillagerAt(50, y)
		e.Behavior = NewWanderBehavior(0, 1)
		b.Behave(1, e)
		m.Update(1)
		if e.Y != y-8 {
			t.Fatalf("seed %d: Y = %f, want %f (forced up)", seed, e.Y, y-8)
		}
	}
}

func TestBehaveNoneIsStatic(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(5), DefaultWanderConfig())
	e := newVillagerAt(50, 30)
	b.Behave(100, e)
	if m.Len() != 0 {
		t.Error("BehaviorNone should never animate")
	}
}

func TestBehaveAllSkipsRemoved(t *testing.T) {
	m := NewTweenManager()
	b := NewBehaviorEngine(testStreet, m, newTestRand(6), DefaultWanderConfig())
	reg := NewRegistry()
	a := newVillagerAt(50, 30)
	a.Behavior = NewWanderBehavior(0, 1)
	gone := newVillagerAt(50, 30)
	gone.Behavior = NewWanderBehavior(0, 1)
	reg.Add(a)
	reg.Add(gone)
	reg.Remove(gone)

	b.BehaveAll(1, reg)
	if !m.IsAnimating(EntityTarget(a)) {
		t.Error("live entity should have moved")
	}
	if m.IsAnimating(EntityTarget(gone)) {
		t.Error("removed entity should not behave")
	}
}
