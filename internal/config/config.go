// Package config provides YAML-based game configuration loading and
// validation for the pong simulation.
package config

// Config contains all tunable parameters of a pong match.
type Config struct {
	Field    Field    `yaml:"field"`
	Physics  Physics  `yaml:"physics"`
	Paddles  Paddles  `yaml:"paddles"`
	Ball     Ball     `yaml:"ball"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Field defines the playfield dimensions in world units.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the movement parameters.
type Physics struct {
	BallSpeed        float64 `yaml:"ball_speed"`        // initial serve speed, units/sec
	PaddleSpeed      float64 `yaml:"paddle_speed"`      // units/sec while a movement key is held
	BounceMultiplier float64 `yaml:"bounce_multiplier"` // applied to ball speed on paddle contact
	MaxBallSpeed     float64 `yaml:"max_ball_speed"`    // cap on the ball's total speed
	SpinFactor       float64 `yaml:"spin_factor"`       // vertical steering strength from contact offset
}

// Paddles defines the paddle geometry.
type Paddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // distance from the paddle's edge to its field edge
}

// Ball defines the ball geometry.
type Ball struct {
	Size float64 `yaml:"size"` // the ball is a square AABB of this side
}

// Gameplay defines the match rules.
type Gameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"` // ticks between a goal and the next serve
}
