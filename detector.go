package pretender

// Detector answers point-in-entity queries against a live registry by brute
// force: every query walks the registry once. Fine for the tens to low
// hundreds of villagers a street holds; there is no spatial index.
type Detector struct {
	registry *Registry
	exclude  []*Entity
}

// NewDetector creates a detector over reg. Entities in exclude are never
// reported, even when the point lies inside their body.
func NewDetector(reg *Registry, exclude ...*Entity) *Detector {
	return &Detector{registry: reg, exclude: exclude}
}

// HasEntity reports whether (x, y) lies strictly inside the world-space body
// of any live, non-excluded entity. Points on a body edge do not count.
func (d *Detector) HasEntity(x, y float64) bool {
	return d.EntityAt(x, y) != nil
}

// EntityAt returns the first live, non-excluded entity whose world-space body
// strictly contains (x, y), or nil. Among overlapping entities the choice is
// unspecified.
func (d *Detector) EntityAt(x, y float64) *Entity {
	for _, e := range d.registry.Entities() {
		if !e.Alive() || d.excluded(e) {
			continue
		}
		if e.WorldBody().ContainsStrict(x, y) {
			return e
		}
	}
	return nil
}

func (d *Detector) excluded(e *Entity) bool {
	for _, ex := range d.exclude {
		if ex == e {
			return true
		}
	}
	return false
}
