package ecs

import (
	"github.com/phanxgames/pretender"

	"github.com/yohamta/donburi"
)

// CensusData is the street population as seen through lifecycle events.
type CensusData struct {
	Spawned  int
	Retired  int
	Killed   int
	Departed int
}

// Live returns the number of villagers currently on the street.
func (c CensusData) Live() int { return c.Spawned - c.Retired }

// Census is the singleton component holding CensusData.
var Census = donburi.NewComponentType[CensusData]()

// CensusTracker owns the census entity in a world.
type CensusTracker struct {
	entry *donburi.Entry
}

// NewCensus creates the census entity and subscribes it to lifecycle events.
func NewCensus(world donburi.World) *CensusTracker {
	entry := world.Entry(world.Create(Census))
	t := &CensusTracker{entry: entry}
	LifecycleEventType.Subscribe(world, t.onLifecycle)
	return t
}

// Snapshot returns the current counts.
func (t *CensusTracker) Snapshot() CensusData {
	return *Census.Get(t.entry)
}

func (t *CensusTracker) onLifecycle(_ donburi.World, ev pretender.LifecycleEvent) {
	c := Census.Get(t.entry)
	switch ev.Type {
	case pretender.EventSpawned:
		c.Spawned++
	case pretender.EventRetired:
		c.Retired++
		switch ev.Reason {
		case pretender.RetireKilled:
			c.Killed++
		case pretender.RetireOffStreet:
			c.Departed++
		}
	}
}
