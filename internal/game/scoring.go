package game

import (
	"math/rand"

	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// Phase is the match state machine: Active while the rally runs, Scored
// between a goal and the next serve, MatchOver once a player reaches the
// win score. MatchOver is terminal until the match is reset.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseScored
	PhaseMatchOver
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseScored:
		return "scored"
	case PhaseMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// recentEventLimit caps the rolling score event history kept on the match.
const recentEventLimit = 16

// matchState is the explicitly owned score and phase record. The match
// facade owns it and hands the scoring system a pointer; nothing global.
type matchState struct {
	phase      Phase
	scoreLeft  int
	scoreRight int
	winner     core.Side
	serveTimer int               // ticks until the next serve while PhaseScored
	serveTo    core.Side         // side the next serve travels toward
	events     []core.ScoreEvent // events fired this tick
	recent     []core.ScoreEvent // rolling history, newest last
}

// record appends a score event to both the per-tick list and the rolling
// history, evicting the oldest history entry past the cap.
func (s *matchState) record(ev core.ScoreEvent) {
	s.events = append(s.events, ev)
	s.recent = append(s.recent, ev)
	if len(s.recent) > recentEventLimit {
		s.recent = s.recent[len(s.recent)-recentEventLimit:]
	}
}

// ScoringSystem drains the goal queue, awards points, and runs the
// Active -> Scored -> Active|MatchOver transitions. A ball that crossed the
// left edge scores for the right player and is re-served toward the left
// side, and vice versa.
type ScoringSystem struct {
	t         *tables
	cfg       config.Config
	events    *ecs.Queue[GoalEvent]
	collision *CollisionSystem
	state     *matchState
	rng       *rand.Rand
}

func NewScoringSystem(t *tables, cfg config.Config, events *ecs.Queue[GoalEvent], collision *CollisionSystem, state *matchState, rng *rand.Rand) *ScoringSystem {
	return &ScoringSystem{t: t, cfg: cfg, events: events, collision: collision, state: state, rng: rng}
}

func (s *ScoringSystem) Mask() ecs.Mask { return MaskCollider }

func (s *ScoringSystem) Priority() int { return PriorityScoring }

func (s *ScoringSystem) Update(dt float64, entities []ecs.Entity) {
	// Count down to the pending serve.
	if s.state.phase == PhaseScored {
		s.state.serveTimer--
		if s.state.serveTimer <= 0 {
			for _, e := range entities {
				if shape, ok := s.t.shape.Get(e); ok && shape.Role == RoleBall {
					s.serve(e)
				}
			}
			s.state.phase = PhaseActive
		}
	}

	s.events.Drain(func(ev GoalEvent) {
		if s.state.phase == PhaseMatchOver {
			return
		}
		scorer := ev.Crossed.Opposite()
		switch scorer {
		case core.SideLeft:
			s.state.scoreLeft++
		case core.SideRight:
			s.state.scoreRight++
		}

		// Park the ball at field center while the serve is pending.
		s.t.pos.Set(ev.Ball, Position{X: s.cfg.Field.Width / 2, Y: s.cfg.Field.Height / 2})
		s.t.vel.Set(ev.Ball, Velocity{})

		over := s.state.scoreLeft >= s.cfg.Gameplay.WinScore ||
			s.state.scoreRight >= s.cfg.Gameplay.WinScore
		if over {
			s.state.phase = PhaseMatchOver
			s.state.winner = scorer
		} else {
			s.state.phase = PhaseScored
			s.state.serveTimer = s.cfg.Gameplay.ServeDelay
			s.state.serveTo = ev.Crossed
		}

		s.state.record(core.ScoreEvent{
			CrossedSide: ev.Crossed,
			Scorer:      scorer,
			ScoreLeft:   s.state.scoreLeft,
			ScoreRight:  s.state.scoreRight,
			MatchOver:   over,
		})
	})
}

// serve launches the ball from field center toward the side that was scored
// against, with a seeded random vertical angle.
func (s *ScoringSystem) serve(ball ecs.Entity) {
	s.t.pos.Set(ball, Position{X: s.cfg.Field.Width / 2, Y: s.cfg.Field.Height / 2})

	speed := s.cfg.Physics.BallSpeed
	dx := speed
	if s.state.serveTo == core.SideLeft {
		dx = -speed
	}
	// Vertical angle in [-0.3, 0.3] of the serve speed.
	angle := (s.rng.Float64() - 0.5) * 0.6
	s.t.vel.Set(ball, Velocity{DX: dx, DY: speed * angle})

	s.collision.Rearm(ball)
}
