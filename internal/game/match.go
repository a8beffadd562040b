package game

import (
	"fmt"
	"math/rand"

	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/ecs"
)

// goalQueueLimit bounds the per-tick goal queue. One ball can cross at most
// once per tick, so any headroom beyond a handful is plenty.
const goalQueueLimit = 16

// Match is the pong game facade. It owns the ECS world, the system
// scheduler, the goal queue, and the match state, and exposes the platform
// game contract (Reset/Step/Render/State) plus a primitive snapshot for
// determinism checks.
type Match struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	dt      float64

	world     *ecs.World
	tabs      *tables
	sched     *ecs.Scheduler
	goals     *ecs.Queue[GoalEvent]
	input     *InputSystem
	collision *CollisionSystem
	state     *matchState
	rng       *rand.Rand

	ball        ecs.Entity
	leftPaddle  ecs.Entity
	rightPaddle ecs.Entity

	paused bool
	tick   uint64
}

// NewMatch creates a match with the given configuration. Reset must be
// called before the first Step.
func NewMatch(cfg config.Config) *Match {
	return &Match{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (m *Match) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (m *Match) Title() string {
	return "Pong"
}

// Reset builds a fresh world: two centered paddles, the net, and the ball
// parked at field center awaiting the opening serve toward the left player.
func (m *Match) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultRuntimeConfig().TickRate
	}
	m.runtime = runtime
	m.dt = 1.0 / float64(runtime.TickRate)
	m.rng = rand.New(rand.NewSource(runtime.Seed))
	m.paused = false
	m.tick = 0

	m.world = ecs.NewWorld()
	m.tabs = newTables(m.world)
	m.goals = ecs.NewQueue[GoalEvent](goalQueueLimit)
	m.state = &matchState{
		phase:      PhaseScored,
		serveTimer: m.cfg.Gameplay.ServeDelay,
		serveTo:    core.SideLeft,
	}

	m.sched = ecs.NewScheduler(m.world)
	m.input = NewInputSystem(m.tabs, m.cfg)
	m.collision = NewCollisionSystem(m.tabs, m.cfg, m.goals)
	m.sched.Register("input", m.input)
	m.sched.Register("movement", NewMovementSystem(m.tabs))
	m.sched.Register("collision", m.collision)
	m.sched.Register("scoring", NewScoringSystem(m.tabs, m.cfg, m.goals, m.collision, m.state, m.rng))

	m.leftPaddle = spawnPaddle(m.world, m.tabs, m.cfg, core.SideLeft)
	m.rightPaddle = spawnPaddle(m.world, m.tabs, m.cfg, core.SideRight)
	m.ball = spawnBall(m.world, m.tabs, m.cfg)
	spawnNet(m.world, m.tabs, m.cfg)
}

// Step advances the match by one tick and reports any score events that
// fired during it.
func (m *Match) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && m.state.phase == PhaseMatchOver {
		m.Reset(m.runtime)
	}

	if m.state.phase == PhaseMatchOver {
		return core.StepResult{State: m.State()}
	}

	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		return core.StepResult{State: m.State()}
	}

	m.tick++
	m.state.events = m.state.events[:0]
	m.input.SetFrame(in)
	m.sched.Tick(m.dt)

	res := core.StepResult{State: m.State()}
	if len(m.state.events) > 0 {
		res.Events = append(res.Events, m.state.events...)
	}
	return res
}

// State reports the current scores and match phase.
func (m *Match) State() core.GameState {
	return core.GameState{
		ScoreLeft:  m.state.scoreLeft,
		ScoreRight: m.state.scoreRight,
		GameOver:   m.state.phase == PhaseMatchOver,
		Paused:     m.paused,
		Winner:     m.state.winner,
	}
}

// RecentEvents returns the rolling score event history, oldest first,
// capped at the last few goals. The returned slice is a copy.
func (m *Match) RecentEvents() []core.ScoreEvent {
	out := make([]core.ScoreEvent, len(m.state.recent))
	copy(out, m.state.recent)
	return out
}

// Stats exposes per-system timing from the scheduler.
func (m *Match) Stats() []ecs.SystemStats {
	return m.sched.Stats()
}

// Render draws the world onto the character screen. This is the pull pass:
// it queries drawable entities and projects world units onto screen cells,
// drawing lower sprite layers first.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / m.cfg.Field.Width
	sy := float64(dst.Height()) / m.cfg.Field.Height

	for layer := 0; layer <= 1; layer++ {
		for _, e := range m.world.Query(MaskDrawable, nil) {
			sprite, ok := m.tabs.sprite.Get(e)
			if !ok || sprite.Layer != layer {
				continue
			}
			pos, ok := m.tabs.pos.Get(e)
			if !ok {
				continue
			}
			m.drawEntity(dst, e, *pos, *sprite, sx, sy)
		}
	}

	centerX := dst.Width() / 2
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", m.state.scoreLeft))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", m.state.scoreRight))
	dst.DrawText(1, 0, "P1")
	dst.DrawText(dst.Width()-3, 0, "P2")

	if m.paused {
		m.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if m.state.phase == PhaseMatchOver {
		msg := "LEFT PLAYER WINS!"
		if m.state.winner == core.SideRight {
			msg = "RIGHT PLAYER WINS!"
		}
		m.drawCenteredMessage(dst, msg,
			fmt.Sprintf("%d - %d  |  Press R to restart", m.state.scoreLeft, m.state.scoreRight))
	}
}

// drawEntity projects one entity's AABB onto the screen. Every entity
// covers at least one cell so small shapes stay visible.
func (m *Match) drawEntity(dst *core.Screen, e ecs.Entity, pos Position, sprite Sprite, sx, sy float64) {
	x := int(pos.X * sx)
	y := int(pos.Y * sy)

	w, h := 1, 1
	if shape, ok := m.tabs.shape.Get(e); ok {
		w = core.Max(1, int(shape.W*sx))
		h = core.Max(1, int(shape.H*sy))
	}

	// Blink the ball while a serve is pending.
	if e == m.ball && m.state.phase == PhaseScored && (m.state.serveTimer/10)%2 == 1 {
		return
	}

	if sprite.Char == NetChar {
		for yy := y; yy < y+h; yy += 2 {
			dst.SetWithColor(x, yy, sprite.Char, sprite.Color)
		}
		return
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			dst.SetWithColor(xx, yy, sprite.Char, sprite.Color)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m *Match) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
