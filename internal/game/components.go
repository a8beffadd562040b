// Package game implements the pong simulation on top of the ECS kernel.
// All world coordinates are float64 units with the origin at the top-left
// corner of the playfield; rendering projects them onto the character screen.
package game

import (
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// Component kinds. Every component type registered with the world gets a
// stable kind used in query masks.
const (
	KindPosition ecs.Kind = iota
	KindVelocity
	KindShape
	KindSprite
)

// Query masks for the fixed system set.
var (
	MaskMovable  = ecs.K(KindPosition) | ecs.K(KindVelocity)
	MaskCollider = ecs.K(KindPosition) | ecs.K(KindVelocity) | ecs.K(KindShape)
	MaskDrawable = ecs.K(KindPosition) | ecs.K(KindSprite)
)

// Role classifies an entity for collision response. It never changes after
// the entity is spawned.
type Role uint8

const (
	RoleBall Role = iota
	RolePaddle
	RoleWall
)

func (r Role) String() string {
	switch r {
	case RoleBall:
		return "ball"
	case RolePaddle:
		return "paddle"
	case RoleWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Position is the top-left corner of the entity's AABB, in world units.
type Position struct {
	X, Y float64
}

// Velocity is the entity's movement in world units per second.
type Velocity struct {
	DX, DY float64
}

// Shape is the entity's AABB extent plus its collision classification.
// Non-solid shapes are decorative and skipped by the collision pair pass.
type Shape struct {
	W, H  float64
	Role  Role
	Solid bool
}

// Sprite is the render handle consumed by the pull-based render pass.
// Higher layers draw over lower ones.
type Sprite struct {
	Char  rune
	Color core.Color
	Layer int
}

// Bounds returns the entity's AABB from its position and shape.
func Bounds(p Position, s Shape) core.FRect {
	return core.NewFRect(p.X, p.Y, s.W, s.H)
}

// tables bundles the component tables of one world. Systems share it by
// pointer so spawn/despawn stays in one place.
type tables struct {
	pos    *ecs.Table[Position]
	vel    *ecs.Table[Velocity]
	shape  *ecs.Table[Shape]
	sprite *ecs.Table[Sprite]
}

func newTables(w *ecs.World) *tables {
	return &tables{
		pos:    ecs.NewTable[Position](w, KindPosition),
		vel:    ecs.NewTable[Velocity](w, KindVelocity),
		shape:  ecs.NewTable[Shape](w, KindShape),
		sprite: ecs.NewTable[Sprite](w, KindSprite),
	}
}
