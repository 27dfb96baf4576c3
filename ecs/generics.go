package ecs

import "github.com/quarterpie/tumble/ecs/component"

// Add attaches a component value to a live entity. Adding a component
// the entity already carries replaces the old value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).set(e.id(), value)
	return nil
}

// Remove detaches a component from a live entity.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).remove(e.id())
}

// Has reports whether a live entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).has(e.id())
}

// Get returns the entity's component. The pointer aliases the stored
// value, so callers mutate it in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	cast, ok := w.store(kind.ID(), false).get(e.id()).(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// ForEach calls fn for every live entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.ID(), false)
	for _, slot := range s.ids() {
		e := w.entities.handle(slot)
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.get(slot).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	for _, slot := range sa.ids() {
		if !sb.has(slot) {
			continue
		}
		e := w.entities.handle(slot)
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(slot).(*A)
		b, okB := sb.get(slot).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	for _, slot := range sa.ids() {
		if !sb.has(slot) || !sc.has(slot) {
			continue
		}
		e := w.entities.handle(slot)
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(slot).(*A)
		b, okB := sb.get(slot).(*B)
		c, okC := sc.get(slot).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
