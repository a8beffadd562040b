package game

import (
	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// System priorities. Lower runs first; the scheduler keeps this order for
// every tick so movement always sees the velocities input just wrote.
const (
	PriorityInput     = 10
	PriorityMovement  = 20
	PriorityCollision = 30
	PriorityScoring   = 40
)

// InputSystem translates the per-tick input frame into paddle velocities.
// Left paddle listens to w/s, right paddle to the arrow keys. A paddle with
// no key held stops immediately.
type InputSystem struct {
	t     *tables
	cfg   config.Config
	frame core.InputFrame
}

func NewInputSystem(t *tables, cfg config.Config) *InputSystem {
	return &InputSystem{t: t, cfg: cfg, frame: core.NewInputFrame()}
}

// SetFrame installs the input frame consumed by the next Update.
func (s *InputSystem) SetFrame(in core.InputFrame) {
	s.frame = in
}

func (s *InputSystem) Mask() ecs.Mask { return MaskCollider }

func (s *InputSystem) Priority() int { return PriorityInput }

func (s *InputSystem) Update(dt float64, entities []ecs.Entity) {
	for _, e := range entities {
		shape, ok := s.t.shape.Get(e)
		if !ok || shape.Role != RolePaddle {
			continue
		}
		pos, ok := s.t.pos.Get(e)
		if !ok {
			continue
		}

		up, down := core.ActionLeftUp, core.ActionLeftDown
		if pos.X >= s.cfg.Field.Width/2 {
			up, down = core.ActionRightUp, core.ActionRightDown
		}

		var dy float64
		if s.frame.Has(up) {
			dy -= s.cfg.Physics.PaddleSpeed
		}
		if s.frame.Has(down) {
			dy += s.cfg.Physics.PaddleSpeed
		}
		s.t.vel.Set(e, Velocity{DY: dy})
	}
}
