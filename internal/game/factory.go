package game

import (
	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// spawnBall creates the ball at field center with no velocity. The scoring
// system serves it once the serve delay has elapsed.
func spawnBall(w *ecs.World, t *tables, cfg config.Config) ecs.Entity {
	e := w.Create()
	t.pos.Set(e, Position{X: cfg.Field.Width / 2, Y: cfg.Field.Height / 2})
	t.vel.Set(e, Velocity{})
	t.shape.Set(e, Shape{W: cfg.Ball.Size, H: cfg.Ball.Size, Role: RoleBall, Solid: true})
	t.sprite.Set(e, Sprite{Char: BallChar, Color: core.ColorBrightYellow, Layer: 1})
	return e
}

// spawnPaddle creates a vertically centered paddle on the given side.
func spawnPaddle(w *ecs.World, t *tables, cfg config.Config, side core.Side) ecs.Entity {
	x := cfg.Paddles.Offset
	if side == core.SideRight {
		x = cfg.Field.Width - cfg.Paddles.Offset - cfg.Paddles.Width
	}
	e := w.Create()
	t.pos.Set(e, Position{X: x, Y: (cfg.Field.Height - cfg.Paddles.Height) / 2})
	t.vel.Set(e, Velocity{})
	t.shape.Set(e, Shape{W: cfg.Paddles.Width, H: cfg.Paddles.Height, Role: RolePaddle, Solid: true})
	t.sprite.Set(e, Sprite{Char: PaddleChar, Color: core.ColorCyan, Layer: 1})
	return e
}

// spawnNet creates the decorative center line. It carries no velocity and is
// not solid, so movement and collision never touch it.
func spawnNet(w *ecs.World, t *tables, cfg config.Config) ecs.Entity {
	e := w.Create()
	t.pos.Set(e, Position{X: cfg.Field.Width / 2, Y: 0})
	t.shape.Set(e, Shape{W: 0, H: cfg.Field.Height, Role: RoleWall, Solid: false})
	t.sprite.Set(e, Sprite{Char: NetChar, Color: core.ColorGray, Layer: 0})
	return e
}
