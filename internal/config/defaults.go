package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the default pong configuration.
func Default() Config {
	return Config{
		Field: Field{
			Width:  800,
			Height: 600,
		},
		Physics: Physics{
			BallSpeed:        200,
			PaddleSpeed:      300,
			BounceMultiplier: 1.05,
			MaxBallSpeed:     600,
			SpinFactor:       0.5,
		},
		Paddles: Paddles{
			Width:  15,
			Height: 80,
			Offset: 50,
		},
		Ball: Ball{
			Size: 10,
		},
		Gameplay: Gameplay{
			WinScore:   10,
			ServeDelay: 60, // one second at 60fps
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultPongYAML
}
