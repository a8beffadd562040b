package ecs

import "github.com/kamstrup/intmap"

// tableRef is the type-erased view of a component table the world uses for
// cleanup. Typed access goes through Table[T] directly.
type tableRef interface {
	remove(e Entity) bool
	clear()
}

// World owns the entity registry and the component tables. It is exclusively
// owned by the tick goroutine; no method is safe for concurrent use.
type World struct {
	nextID Entity
	// order holds live entities in creation order so queries iterate
	// deterministically. Compacted when deferred destroys are applied.
	order   []Entity
	masks   *intmap.Map[Entity, Mask]
	pending []Entity
	tables  [MaxKinds]tableRef
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID: 1,
		masks:  intmap.New[Entity, Mask](64),
	}
}

// Create issues a new entity with no components. Identifiers are never reused.
func (w *World) Create() Entity {
	e := w.nextID
	w.nextID++
	w.order = append(w.order, e)
	w.masks.Put(e, 0)
	return e
}

// Destroy marks an entity for removal. The entity stops matching queries and
// Alive immediately, but its components remain readable until Flush so systems
// later in the same tick never observe a half-removed entity. Destroying an
// unknown or already-destroyed entity is a no-op.
func (w *World) Destroy(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.pending = append(w.pending, e)
}

// Alive reports whether the entity exists and is not marked for removal.
func (w *World) Alive(e Entity) bool {
	if !w.masks.Has(e) {
		return false
	}
	for _, p := range w.pending {
		if p == e {
			return false
		}
	}
	return true
}

// ComponentMask returns the set of kinds currently attached to the entity.
// Unknown entities have the empty mask.
func (w *World) ComponentMask(e Entity) Mask {
	m, _ := w.masks.Get(e)
	return m
}

// Query appends to dst every live entity whose component set is a superset of
// req, in creation order, and returns the result. Entities marked for removal
// are skipped. Passing a reusable dst avoids per-tick allocations.
func (w *World) Query(req Mask, dst []Entity) []Entity {
	for _, e := range w.order {
		m, ok := w.masks.Get(e)
		if !ok || !m.ContainsAll(req) {
			continue
		}
		if w.isPending(e) {
			continue
		}
		dst = append(dst, e)
	}
	return dst
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.masks.Len() - len(w.pending)
}

// Flush applies deferred destroys, removing each marked entity and all of its
// components atomically. Called by the scheduler at the end of every tick.
func (w *World) Flush() {
	if len(w.pending) == 0 {
		return
	}
	for _, e := range w.pending {
		for _, t := range w.tables {
			if t != nil {
				t.remove(e)
			}
		}
		w.masks.Del(e)
	}
	w.pending = w.pending[:0]

	kept := w.order[:0]
	for _, e := range w.order {
		if w.masks.Has(e) {
			kept = append(kept, e)
		}
	}
	w.order = kept
}

// Clear removes every entity and component. Entity identifiers keep counting
// up, so references held across a Clear never alias a new entity.
func (w *World) Clear() {
	for _, t := range w.tables {
		if t != nil {
			t.clear()
		}
	}
	w.masks.Clear()
	w.order = w.order[:0]
	w.pending = w.pending[:0]
}

func (w *World) isPending(e Entity) bool {
	for _, p := range w.pending {
		if p == e {
			return true
		}
	}
	return false
}

func (w *World) setKind(e Entity, k Kind) {
	if m, ok := w.masks.Get(e); ok {
		w.masks.Put(e, m.With(k))
	}
}

func (w *World) clearKind(e Entity, k Kind) {
	if m, ok := w.masks.Get(e); ok {
		w.masks.Put(e, m.Without(k))
	}
}

func (w *World) registerTable(k Kind, t tableRef) {
	if k >= MaxKinds {
		panic("ecs: kind out of range")
	}
	if w.tables[k] != nil {
		panic("ecs: kind already registered")
	}
	w.tables[k] = t
}
