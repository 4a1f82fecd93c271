package pretender

// Killer retires entities: it stops their tweens, takes them out of the
// registry and hands them back to the pool once the registry is flushed. A
// retired entity is never left alive in another subsystem.
type Killer struct {
	registry *Registry
	tweens   *TweenManager
	pool     *Pool[*Entity]
	detector *Detector
	events   EventSink
	retired  int
}

// NewKiller creates a killer. events may be nil.
func NewKiller(reg *Registry, tweens *TweenManager, pool *Pool[*Entity], detector *Detector, events EventSink) *Killer {
	return &Killer{
		registry: reg,
		tweens:   tweens,
		pool:     pool,
		detector: detector,
		events:   events,
	}
}

// KillAt retires the entity whose body contains (x, y). Reports whether one
// was found.
func (k *Killer) KillAt(x, y float64) bool {
	e := k.detector.EntityAt(x, y)
	if e == nil {
		return false
	}
	return k.retire(e, RetireKilled)
}

// Retire retires e. Reports false if e was not live.
func (k *Killer) Retire(e *Entity) bool {
	return k.retire(e, RetireKilled)
}

// RetireOffStreet retires every entity whose body lies entirely left of
// street and returns how many were retired.
func (k *Killer) RetireOffStreet(street Rect) int {
	n := 0
	for _, e := range k.registry.Entities() {
		if !e.Alive() {
			continue
		}
		if e.WorldBody().Right() < street.X && k.retire(e, RetireOffStreet) {
			n++
		}
	}
	return n
}

// Flush compacts the registry and releases every retired entity to the pool.
// The scene calls it at the start of each tick.
func (k *Killer) Flush() int {
	return k.registry.Flush(k.pool.Release)
}

// Retired returns the total number of retirements.
func (k *Killer) Retired() int {
	return k.retired
}

func (k *Killer) retire(e *Entity, reason RetireReason) bool {
	if !k.registry.Remove(e) {
		return false
	}
	k.tweens.Kill(EntityTarget(e))
	k.retired++
	emit(k.events, LifecycleEvent{Type: EventRetired, EntityID: e.ID, X: e.X, Y: e.Y, Reason: reason})
	return true
}
