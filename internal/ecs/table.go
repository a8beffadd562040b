package ecs

import "github.com/kamstrup/intmap"

// Table is the dense storage for one component kind. Values live in a packed
// slice with an entity-to-row index on the side; removal swap-deletes, so row
// order is not stable but lookups stay O(1) and iteration stays cache-friendly.
type Table[T any] struct {
	world  *World
	kind   Kind
	index  *intmap.Map[Entity, int32]
	dense  []T
	owners []Entity
}

// NewTable registers storage for a component kind with the world. Each kind
// may be registered exactly once.
func NewTable[T any](w *World, kind Kind) *Table[T] {
	t := &Table[T]{
		world: w,
		kind:  kind,
		index: intmap.New[Entity, int32](64),
	}
	w.registerTable(kind, t)
	return t
}

// Kind returns the component kind this table stores.
func (t *Table[T]) Kind() Kind {
	return t.kind
}

// Set attaches the component to the entity, overwriting any existing value.
// Setting a component on an unknown or destroyed entity is a silent no-op.
func (t *Table[T]) Set(e Entity, v T) {
	if !t.world.Alive(e) {
		return
	}
	if row, ok := t.index.Get(e); ok {
		t.dense[row] = v
		return
	}
	t.index.Put(e, int32(len(t.dense)))
	t.dense = append(t.dense, v)
	t.owners = append(t.owners, e)
	t.world.setKind(e, t.kind)
}

// Get returns a pointer to the entity's component, or false when the entity
// does not carry one. Absence is an ordinary result, never a panic; mutations
// through the pointer are visible to systems running later in the same tick.
func (t *Table[T]) Get(e Entity) (*T, bool) {
	row, ok := t.index.Get(e)
	if !ok {
		return nil, false
	}
	return &t.dense[row], true
}

// Has reports whether the entity carries this component.
func (t *Table[T]) Has(e Entity) bool {
	return t.index.Has(e)
}

// Remove detaches the component from the entity. Removing an absent component
// is a no-op.
func (t *Table[T]) Remove(e Entity) {
	if t.remove(e) {
		t.world.clearKind(e, t.kind)
	}
}

// Len returns the number of entities carrying this component.
func (t *Table[T]) Len() int {
	return len(t.dense)
}

func (t *Table[T]) remove(e Entity) bool {
	row, ok := t.index.Get(e)
	if !ok {
		return false
	}
	last := int32(len(t.dense) - 1)
	if row != last {
		t.dense[row] = t.dense[last]
		t.owners[row] = t.owners[last]
		t.index.Put(t.owners[row], row)
	}
	t.dense = t.dense[:last]
	t.owners = t.owners[:last]
	t.index.Del(e)
	return true
}

func (t *Table[T]) clear() {
	t.index.Clear()
	t.dense = t.dense[:0]
	t.owners = t.owners[:0]
}
