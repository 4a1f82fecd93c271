package pretender

import "testing"

func TestPoolObtainConstructsWhenEmpty(t *testing.T) {
	n := 0
	p := NewPool(func() *Entity {
		n++
		return &Entity{}
	})
	a := p.Obtain()
	b := p.Obtain()
	if a == b {
		t.Fatal("expected distinct instances from an empty pool")
	}
	if n != 2 || p.Created() != 2 {
		t.Errorf("created = %d (ctor calls %d), want 2", p.Created(), n)
	}
}

func TestPoolReusesReleased(t *testing.T) {
	p := NewPool(func() *Entity { return &Entity{} })
	a := p.Obtain()
	p.Release(a)
	if p.Free() != 1 {
		t.Fatalf("Free = %d, want 1", p.Free())
	}
	if got := p.Obtain(); got != a {
		t.Error("expected the released instance to be reused")
	}
	if p.Free() != 0 {
		t.Errorf("Free = %d, want 0", p.Free())
	}
	if p.Created() != 1 {
		t.Errorf("Created = %d, want 1", p.Created())
	}
}

func TestPoolGrowsUnbounded(t *testing.T) {
	p := NewPool(func() int { return 7 })
	for i := 0; i < 1000; i++ {
		p.Obtain()
	}
	if p.Created() != 1000 {
		t.Errorf("Created = %d, want 1000", p.Created())
	}
}

func TestNewPoolNilConstructorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil constructor")
		}
	}()
	NewPool[*Entity](nil)
}
