package game

import (
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// MovementSystem integrates positions by one tick: pos += vel*dt. It does
// not branch on role; boundary handling belongs to the collision system.
type MovementSystem struct {
	t *tables
}

func NewMovementSystem(t *tables) *MovementSystem {
	return &MovementSystem{t: t}
}

func (s *MovementSystem) Mask() ecs.Mask { return MaskMovable }

func (s *MovementSystem) Priority() int { return PriorityMovement }

func (s *MovementSystem) Update(dt float64, entities []ecs.Entity) {
	for _, e := range entities {
		pos, ok := s.t.pos.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.t.vel.Get(e)
		if !ok {
			continue
		}
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
	}
}
