package ecs

import "github.com/quarterpie/tumble/ecs/component"

const defaultTimeStep = 1.0 / 60.0

// World owns entities, component storage, the shared event queue, and
// the simulation time step for the current tick.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*componentStore
	events   EventQueue
	timeStep float64
}

// NewWorld creates an empty world ticking at 60 steps per second until
// SetTimeStep says otherwise.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*componentStore),
		timeStep: defaultTimeStep,
	}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return NilEntity
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Entities returns the handles of all live entities.
func (w *World) Entities() []Entity {
	if w == nil || w.entities.count == 0 {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) {
		out = append(out, e)
	})
	return out
}

func (w *World) store(id component.ComponentID, create bool) *componentStore {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &componentStore{}
		w.stores[id] = s
	}
	return s
}

// Count returns how many entities carry the component.
func (w *World) Count(id component.ComponentID) int {
	if w == nil {
		return 0
	}
	return w.store(id, false).len()
}

// Query returns the live entities carrying every listed component.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	// iterate the smallest store
	base := w.store(ids[0], false)
	for _, id := range ids[1:] {
		if s := w.store(id, false); s.len() < base.len() {
			base = s
		}
	}
	if base.len() == 0 {
		return nil
	}
	out := make([]Entity, 0, base.len())
next:
	for _, slot := range base.dense {
		for _, id := range ids {
			if !w.store(id, false).has(slot) {
				continue next
			}
		}
		if e := w.entities.handle(slot); w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns a live entity carrying the component, if any exists.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	if w == nil {
		return NilEntity, false
	}
	s := w.store(id, false)
	if s == nil {
		return NilEntity, false
	}
	for _, slot := range s.dense {
		if e := w.entities.handle(slot); w.entities.isAlive(e) {
			return e, true
		}
	}
	return NilEntity, false
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetTimeStep sets the simulation step, in seconds, that systems use
// this tick. Non-positive values are ignored.
func (w *World) SetTimeStep(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.timeStep = dt
}

// TimeStep returns the current simulation step in seconds.
func (w *World) TimeStep() float64 {
	if w == nil {
		return defaultTimeStep
	}
	return w.timeStep
}
