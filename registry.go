package pretender

// Registry is the live, insertion-ordered set of entities. The spawner inserts,
// the compositor and behavior pass iterate, the detector reads.
//
// Removal is deferred: Remove only marks the entity, so a pass that is
// iterating Entities is never disturbed. Marked entities are skipped by every
// reader (check Alive) and compacted out by Flush at the start of the next tick.
type Registry struct {
	entities []*Entity
	pending  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends e to the registry. Panics if e is nil or already live.
func (r *Registry) Add(e *Entity) {
	if e == nil {
		panic("pretender: cannot add nil entity")
	}
	if e.alive {
		panic("pretender: entity already registered")
	}
	e.alive = true
	e.removed = false
	r.entities = append(r.entities, e)
}

// Remove marks e for removal. Returns false if e is not live.
func (r *Registry) Remove(e *Entity) bool {
	if e == nil || !e.Alive() {
		return false
	}
	e.removed = true
	r.pending++
	return true
}

// Contains reports whether e is live in this registry.
func (r *Registry) Contains(e *Entity) bool {
	if e == nil || !e.Alive() {
		return false
	}
	for _, c := range r.entities {
		if c == e {
			return true
		}
	}
	return false
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities) - r.pending
}

// Pending returns the number of entities marked but not yet flushed.
func (r *Registry) Pending() int {
	return r.pending
}

// Entities returns the backing slice in insertion order. It may contain
// entities marked for removal; callers skip those with Alive. The returned
// slice MUST NOT be mutated.
func (r *Registry) Entities() []*Entity {
	return r.entities
}

// Flush compacts marked entities out of the registry, preserving order, and
// calls released (if non-nil) for each one after it is detached.
func (r *Registry) Flush(released func(*Entity)) int {
	if r.pending == 0 {
		return 0
	}
	n := 0
	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.removed {
			e.alive = false
			e.removed = false
			n++
			if released != nil {
				released(e)
			}
			continue
		}
		kept = append(kept, e)
	}
	// Nil out the tail so released entities are not retained by the backing array.
	for i := len(kept); i < len(r.entities); i++ {
		r.entities[i] = nil
	}
	r.entities = kept
	r.pending = 0
	return n
}
