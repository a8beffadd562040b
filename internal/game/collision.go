package game

import (
	"math"

	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// GoalEvent reports a ball leaving the field through a vertical edge. The
// scoring system drains these at its priority slot within the same tick.
type GoalEvent struct {
	Ball    ecs.Entity
	Crossed core.Side
}

// CollisionSystem runs two passes after movement: a boundary pass against
// the playfield edges, then a pair pass testing every ball against every
// solid paddle.
//
// Boundary rules by role: paddles clamp to [0, fieldH-paddleH] with the
// vertical velocity zeroed on contact; balls reflect off the top and bottom
// edges with position clamped and no speed change; balls cross the left and
// right edges freely, emitting exactly one GoalEvent per crossing. A crossed
// ball stays out of play until the scoring system re-serves it.
type CollisionSystem struct {
	t       *tables
	cfg     config.Config
	events  *ecs.Queue[GoalEvent]
	out     map[ecs.Entity]bool // balls that crossed and await re-serve
	bounced map[ecs.Entity]bool // balls that already hit a paddle this tick
}

func NewCollisionSystem(t *tables, cfg config.Config, events *ecs.Queue[GoalEvent]) *CollisionSystem {
	return &CollisionSystem{
		t:       t,
		cfg:     cfg,
		events:  events,
		out:     make(map[ecs.Entity]bool),
		bounced: make(map[ecs.Entity]bool),
	}
}

func (s *CollisionSystem) Mask() ecs.Mask { return MaskCollider }

func (s *CollisionSystem) Priority() int { return PriorityCollision }

// Rearm puts a crossed ball back in play. Called by the scoring system when
// the ball is re-served.
func (s *CollisionSystem) Rearm(e ecs.Entity) {
	delete(s.out, e)
}

func (s *CollisionSystem) Update(dt float64, entities []ecs.Entity) {
	clear(s.bounced)

	// Boundary pass.
	for _, e := range entities {
		shape, ok := s.t.shape.Get(e)
		if !ok {
			continue
		}
		switch shape.Role {
		case RolePaddle:
			s.clampPaddle(e, shape)
		case RoleBall:
			s.bounceWalls(e, shape)
		}
	}

	// Pair pass: every ball against every solid paddle.
	for _, ball := range entities {
		bs, ok := s.t.shape.Get(ball)
		if !ok || bs.Role != RoleBall || s.out[ball] {
			continue
		}
		for _, paddle := range entities {
			ps, ok := s.t.shape.Get(paddle)
			if !ok || ps.Role != RolePaddle || !ps.Solid {
				continue
			}
			s.bounceOffPaddle(ball, bs, paddle, ps)
		}
	}

	// Goal detection after the pair pass, so a paddle save on the same tick
	// wins over a crossing.
	for _, e := range entities {
		shape, ok := s.t.shape.Get(e)
		if !ok || shape.Role != RoleBall || s.out[e] {
			continue
		}
		pos, ok := s.t.pos.Get(e)
		if !ok {
			continue
		}
		if pos.X+shape.W <= 0 {
			s.out[e] = true
			s.events.Push(GoalEvent{Ball: e, Crossed: core.SideLeft})
		} else if pos.X >= s.cfg.Field.Width {
			s.out[e] = true
			s.events.Push(GoalEvent{Ball: e, Crossed: core.SideRight})
		}
	}
}

// clampPaddle keeps a paddle fully inside the vertical extent of the field.
// The crossing velocity component is zeroed so the paddle does not keep
// pushing into the edge next tick.
func (s *CollisionSystem) clampPaddle(e ecs.Entity, shape *Shape) {
	pos, ok := s.t.pos.Get(e)
	if !ok {
		return
	}
	maxY := s.cfg.Field.Height - shape.H
	if pos.Y < 0 {
		pos.Y = 0
		if vel, ok := s.t.vel.Get(e); ok && vel.DY < 0 {
			vel.DY = 0
		}
	} else if pos.Y > maxY {
		pos.Y = maxY
		if vel, ok := s.t.vel.Get(e); ok && vel.DY > 0 {
			vel.DY = 0
		}
	}
}

// bounceWalls reflects a ball off the top and bottom field edges. Reflection
// flips the vertical velocity without changing speed.
func (s *CollisionSystem) bounceWalls(e ecs.Entity, shape *Shape) {
	pos, ok := s.t.pos.Get(e)
	if !ok {
		return
	}
	vel, ok := s.t.vel.Get(e)
	if !ok {
		return
	}
	if pos.Y < 0 {
		pos.Y = 0
		if vel.DY < 0 {
			vel.DY = -vel.DY
		}
	} else if pos.Y+shape.H > s.cfg.Field.Height {
		pos.Y = s.cfg.Field.Height - shape.H
		if vel.DY > 0 {
			vel.DY = -vel.DY
		}
	}
}

// bounceOffPaddle handles one ball/paddle overlap: flip the horizontal
// velocity away from the paddle, steer the vertical component by the contact
// offset from paddle center, apply the bounce multiplier capped at the
// configured maximum total speed, and reposition the ball flush with the
// paddle's leading edge. The multiplier fires at most once per ball per
// tick, so the anti-tunneling reposition can never double-apply it.
func (s *CollisionSystem) bounceOffPaddle(ball ecs.Entity, bs *Shape, paddle ecs.Entity, ps *Shape) {
	bp, ok := s.t.pos.Get(ball)
	if !ok {
		return
	}
	pp, ok := s.t.pos.Get(paddle)
	if !ok {
		return
	}
	if !Bounds(*bp, *bs).Overlaps(Bounds(*pp, *ps)) {
		return
	}
	if s.bounced[ball] {
		return
	}
	s.bounced[ball] = true

	vel, ok := s.t.vel.Get(ball)
	if !ok {
		return
	}
	speed := math.Hypot(vel.DX, vel.DY)

	// Which side of the paddle did the ball come from.
	ballCenterX := bp.X + bs.W/2
	paddleCenterX := pp.X + ps.W/2
	fromLeft := ballCenterX < paddleCenterX

	if fromLeft {
		vel.DX = -math.Abs(vel.DX)
		bp.X = pp.X - bs.W
	} else {
		vel.DX = math.Abs(vel.DX)
		bp.X = pp.X + ps.W
	}

	// Impact-offset steering: contact above paddle center angles the ball
	// up, below angles it down, proportionally to the offset. Center contact
	// leaves the vertical component untouched.
	ballCenterY := bp.Y + bs.H/2
	offset := (ballCenterY - Bounds(*pp, *ps).CenterY()) / (ps.H / 2)
	offset = core.ClampF(offset, -1, 1)
	vel.DY += offset * s.cfg.Physics.SpinFactor * speed

	// Speed up the rally, capping the total vector magnitude.
	vel.DX *= s.cfg.Physics.BounceMultiplier
	vel.DY *= s.cfg.Physics.BounceMultiplier
	if newSpeed := math.Hypot(vel.DX, vel.DY); newSpeed > s.cfg.Physics.MaxBallSpeed {
		scale := s.cfg.Physics.MaxBallSpeed / newSpeed
		vel.DX *= scale
		vel.DY *= scale
	}
}
