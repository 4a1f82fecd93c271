package pretender

import "testing"

func newBodyEntity(x, y float64, body Rect) *Entity {
	e := NewEntity()
	e.SetPosition(x, y)
	e.SetDimensions(body.X+body.Width, body.Y+body.Height)
	e.Body = body
	return e
}

func TestDetectorEmptyRegistry(t *testing.T) {
	d := NewDetector(NewRegistry())
	if d.HasEntity(0, 0) {
		t.Error("empty registry should report no entity")
	}
}

func TestDetectorStreetScenario(t *testing.T) {
	// Street (0,40,100,40); entity at (50,50) with body (0,21,25,11):
	// world body spans x in (50,75), y in (71,82).
	reg := NewRegistry()
	e := newBodyEntity(50, 50, Rect{X: 0, Y: 21, Width: 25, Height: 11})
	reg.Add(e)
	d := NewDetector(reg)

	const eps = 1e-6
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 61, 75, true},
		{"just inside top-left", 50 + eps, 71 + eps, true},
		{"just inside bottom-right", 75 - eps, 82 - eps, true},
		{"top edge", 61, 71, false},
		{"bottom edge", 61, 82, false},
		{"left edge", 50, 75, false},
		{"right edge", 75, 75, false},
		{"just outside left", 50 - eps, 75, false},
		{"just outside bottom", 61, 82 + eps, false},
		{"above body, inside sprite", 61, 65, false},
	}
	for _, c := range cases {
		if got := d.HasEntity(c.x, c.y); got != c.want {
			t.Errorf("%s: HasEntity(%v, %v) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestDetectorExclusion(t *testing.T) {
	reg := NewRegistry()
	street := newBodyEntity(0, 40, Rect{Width: 100, Height: 40})
	reg.Add(street)
	d := NewDetector(reg, street)
	if d.HasEntity(10, 50) {
		t.Error("excluded entity should not be reported")
	}

	v := newBodyEntity(5, 45, Rect{Width: 10, Height: 10})
	reg.Add(v)
	if got := d.EntityAt(10, 50); got != v {
		t.Errorf("EntityAt = %v, want the villager", got)
	}
}

func TestDetectorSkipsRemoved(t *testing.T) {
	reg := NewRegistry()
	e := newBodyEntity(0, 0, Rect{Width: 10, Height: 10})
	reg.Add(e)
	d := NewDetector(reg)
	reg.Remove(e)
	if d.HasEntity(5, 5) {
		t.Error("entity marked for removal should not be reported")
	}
}
