// Package ecs implements the entity-component-system runtime that drives the
// game simulation. Entities are plain identifiers, components live in dense
// per-kind tables, and systems run in a fixed order once per tick.
package ecs

// Entity is an opaque identifier for a game object. The zero value is never
// issued and can be used as a sentinel.
type Entity uint64

// Kind identifies a component kind. Each kind occupies one bit position in a
// Mask, so at most 64 kinds can be registered per world.
type Kind uint8

// MaxKinds is the number of component kinds a world can hold.
const MaxKinds = 64

// Mask is a set of component kinds.
type Mask uint64

// K returns the mask containing only the given kind.
func K(k Kind) Mask {
	return Mask(1) << k
}

// With returns the mask with the given kind added.
func (m Mask) With(k Kind) Mask {
	return m | K(k)
}

// Without returns the mask with the given kind removed.
func (m Mask) Without(k Kind) Mask {
	return m &^ K(k)
}

// Has reports whether the mask contains the given kind.
func (m Mask) Has(k Kind) bool {
	return m&K(k) != 0
}

// ContainsAll reports whether the mask is a superset of req.
func (m Mask) ContainsAll(req Mask) bool {
	return m&req == req
}
