package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the simulation cannot run
// with. All problems are collected and reported together.
func (c Config) Validate() error {
	var problems []string

	if c.Field.Width <= 0 {
		problems = append(problems, fmt.Sprintf("field.width must be positive, got %g", c.Field.Width))
	}
	if c.Field.Height <= 0 {
		problems = append(problems, fmt.Sprintf("field.height must be positive, got %g", c.Field.Height))
	}
	if c.Physics.BallSpeed <= 0 {
		problems = append(problems, fmt.Sprintf("physics.ball_speed must be positive, got %g", c.Physics.BallSpeed))
	}
	if c.Physics.PaddleSpeed <= 0 {
		problems = append(problems, fmt.Sprintf("physics.paddle_speed must be positive, got %g", c.Physics.PaddleSpeed))
	}
	if c.Physics.BounceMultiplier < 1 {
		problems = append(problems, fmt.Sprintf("physics.bounce_multiplier must be at least 1, got %g", c.Physics.BounceMultiplier))
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		problems = append(problems, fmt.Sprintf("physics.max_ball_speed (%g) must not be below physics.ball_speed (%g)",
			c.Physics.MaxBallSpeed, c.Physics.BallSpeed))
	}
	if c.Physics.SpinFactor < 0 {
		problems = append(problems, fmt.Sprintf("physics.spin_factor must not be negative, got %g", c.Physics.SpinFactor))
	}
	if c.Paddles.Width <= 0 {
		problems = append(problems, fmt.Sprintf("paddles.width must be positive, got %g", c.Paddles.Width))
	}
	if c.Paddles.Height <= 0 {
		problems = append(problems, fmt.Sprintf("paddles.height must be positive, got %g", c.Paddles.Height))
	}
	if c.Paddles.Height > c.Field.Height && c.Field.Height > 0 {
		problems = append(problems, fmt.Sprintf("paddles.height (%g) must not exceed field.height (%g)",
			c.Paddles.Height, c.Field.Height))
	}
	if c.Paddles.Offset < 0 {
		problems = append(problems, fmt.Sprintf("paddles.offset must not be negative, got %g", c.Paddles.Offset))
	}
	if c.Ball.Size <= 0 {
		problems = append(problems, fmt.Sprintf("ball.size must be positive, got %g", c.Ball.Size))
	}
	if c.Gameplay.WinScore <= 0 {
		problems = append(problems, fmt.Sprintf("gameplay.win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if c.Gameplay.ServeDelay < 0 {
		problems = append(problems, fmt.Sprintf("gameplay.serve_delay must not be negative, got %d", c.Gameplay.ServeDelay))
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid config:\n  - " + strings.Join(problems, "\n  - "))
}
