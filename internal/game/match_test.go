package game

import (
	"strings"
	"testing"

	"github.com/arcadelab/tui-pong/internal/config"
	"github.com/arcadelab/tui-pong/internal/core"
)

func testRuntime(tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed}
}

// newServedMatch returns a match with the opening serve already fired, so
// scenario tests can plant ball state directly.
func newServedMatch(cfg config.Config, tickRate int) *Match {
	m := NewMatch(cfg)
	m.Reset(testRuntime(tickRate, 42))
	for m.state.phase != PhaseActive {
		m.Step(core.NewInputFrame())
	}
	return m
}

func TestGoalRightEdge(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 0
	// dt = 0.1: one tick carries the ball from x=790 past x=800.
	m := newServedMatch(cfg, 10)

	m.tabs.pos.Set(m.ball, Position{X: 790, Y: 300})
	m.tabs.vel.Set(m.ball, Velocity{DX: 250, DY: 0})

	res := m.Step(core.NewInputFrame())

	if len(res.Events) != 1 {
		t.Fatalf("got %d score events, expected exactly 1", len(res.Events))
	}
	ev := res.Events[0]
	if ev.Scorer != core.SideLeft || ev.CrossedSide != core.SideRight {
		t.Errorf("event = %+v, expected left player scoring off a right-edge crossing", ev)
	}
	if res.State.ScoreLeft != 1 || res.State.ScoreRight != 0 {
		t.Errorf("score = (%d, %d), expected (1, 0)", res.State.ScoreLeft, res.State.ScoreRight)
	}

	pos, _ := m.tabs.pos.Get(m.ball)
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("ball = (%g, %g), expected reset to field center (400, 300)", pos.X, pos.Y)
	}
	vel, _ := m.tabs.vel.Get(m.ball)
	if vel.DX != 0 || vel.DY != 0 {
		t.Errorf("ball velocity = (%g, %g), expected parked until the serve", vel.DX, vel.DY)
	}
}

func TestGoalLeftEdgeScoresRight(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)

	m.tabs.pos.Set(m.ball, Position{X: 2, Y: 300})
	m.tabs.vel.Set(m.ball, Velocity{DX: -250, DY: 0})

	res := m.Step(core.NewInputFrame())

	if len(res.Events) != 1 || res.Events[0].Scorer != core.SideRight {
		t.Fatalf("expected the right player to score, got %+v", res.Events)
	}
	if res.State.ScoreRight != 1 {
		t.Errorf("right score = %d, expected 1", res.State.ScoreRight)
	}
}

func TestBallTopReflectionThroughStep(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)

	m.tabs.pos.Set(m.ball, Position{X: 400, Y: 5})
	m.tabs.vel.Set(m.ball, Velocity{DX: 0, DY: -100})

	m.Step(core.NewInputFrame())

	pos, _ := m.tabs.pos.Get(m.ball)
	vel, _ := m.tabs.vel.Get(m.ball)
	if pos.Y != 0 {
		t.Errorf("ball Y = %g, expected clamp to 0", pos.Y)
	}
	if vel.DY != 100 {
		t.Errorf("ball DY = %g, expected +100", vel.DY)
	}
}

func TestServeAfterDelay(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 5
	m := NewMatch(cfg)
	m.Reset(testRuntime(60, 7))

	// The opening serve is pending; the ball must stay parked until the
	// delay elapses.
	for i := 0; i < 4; i++ {
		m.Step(core.NewInputFrame())
		vel, _ := m.tabs.vel.Get(m.ball)
		if vel.DX != 0 || vel.DY != 0 {
			t.Fatalf("ball moving at tick %d, expected parked through the serve delay", i+1)
		}
	}

	m.Step(core.NewInputFrame())
	vel, _ := m.tabs.vel.Get(m.ball)
	if vel.DX >= 0 {
		t.Errorf("ball DX = %g, opening serve should travel toward the left player", vel.DX)
	}
	if m.state.phase != PhaseActive {
		t.Errorf("phase = %v, expected active after the serve", m.state.phase)
	}
}

func TestServeTravelsTowardScoredAgainstSide(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 1
	m := newServedMatch(cfg, 10)

	// Right player concedes: ball crossed the right edge, so the re-serve
	// travels toward the right side.
	m.tabs.pos.Set(m.ball, Position{X: cfg.Field.Width + 5, Y: 300})
	m.tabs.vel.Set(m.ball, Velocity{DX: 250, DY: 0})
	m.Step(core.NewInputFrame())

	m.Step(core.NewInputFrame())
	vel, _ := m.tabs.vel.Get(m.ball)
	if vel.DX <= 0 {
		t.Errorf("ball DX = %g, re-serve should travel toward the side scored against", vel.DX)
	}
}

func TestMatchOverIsTerminal(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.WinScore = 1
	m := newServedMatch(cfg, 10)

	m.tabs.pos.Set(m.ball, Position{X: 790, Y: 300})
	m.tabs.vel.Set(m.ball, Velocity{DX: 250, DY: 0})
	res := m.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("reaching the win score should end the match")
	}
	if res.State.Winner != core.SideLeft {
		t.Errorf("winner = %v, expected left", res.State.Winner)
	}
	if len(res.Events) != 1 || !res.Events[0].MatchOver {
		t.Errorf("final score event should carry MatchOver, got %+v", res.Events)
	}

	// No further simulation until reset.
	before := m.Snapshot()
	for i := 0; i < 10; i++ {
		m.Step(core.NewInputFrame())
	}
	if m.Snapshot() != before {
		t.Error("match state changed after match over")
	}
}

func TestRestartAfterMatchOver(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.WinScore = 1
	m := newServedMatch(cfg, 10)

	m.tabs.pos.Set(m.ball, Position{X: 790, Y: 300})
	m.tabs.vel.Set(m.ball, Velocity{DX: 250, DY: 0})
	m.Step(core.NewInputFrame())

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := m.Step(in)

	if res.State.GameOver {
		t.Error("restart should clear the match-over state")
	}
	if res.State.ScoreLeft != 0 || res.State.ScoreRight != 0 {
		t.Errorf("score = (%d, %d) after restart, expected (0, 0)",
			res.State.ScoreLeft, res.State.ScoreRight)
	}
}

func TestRestartIgnoredMidMatch(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)
	m.state.scoreLeft = 3

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := m.Step(in)

	if res.State.ScoreLeft != 3 {
		t.Error("restart must only apply once the match is over")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := m.Step(in)
	if !res.State.Paused {
		t.Fatal("pause action should pause the match")
	}

	before := m.Snapshot()
	for i := 0; i < 5; i++ {
		m.Step(core.NewInputFrame())
	}
	if m.Snapshot() != before {
		t.Error("simulation advanced while paused")
	}

	res = m.Step(in)
	if res.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestPaddleStaysInFieldUnderHeldKey(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)

	in := core.NewInputFrame()
	in.Set(core.ActionLeftUp)
	for i := 0; i < 100; i++ {
		m.Step(in)
		pos, _ := m.tabs.pos.Get(m.leftPaddle)
		if pos.Y < 0 || pos.Y > cfg.Field.Height-cfg.Paddles.Height {
			t.Fatalf("left paddle Y = %g out of range at tick %d", pos.Y, i+1)
		}
	}
	pos, _ := m.tabs.pos.Get(m.leftPaddle)
	if pos.Y != 0 {
		t.Errorf("left paddle Y = %g, expected pinned at 0", pos.Y)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and input sequence twice must produce identical snapshots.
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 10

	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputSequence[i].Set(core.ActionLeftUp)
			inputSequence[i].Set(core.ActionRightDown)
		case i%7 < 5:
			inputSequence[i].Set(core.ActionLeftDown)
			inputSequence[i].Set(core.ActionRightUp)
		}
	}

	run := func() Snapshot {
		m := NewMatch(cfg)
		m.Reset(testRuntime(60, 12345))
		for _, in := range inputSequence {
			if m.Step(in).State.GameOver {
				break
			}
		}
		return m.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1 != snap2 {
		t.Errorf("determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", snap1, snap2)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 0

	run := func(seed int64) Snapshot {
		m := NewMatch(cfg)
		m.Reset(testRuntime(60, seed))
		for i := 0; i < 300; i++ {
			m.Step(core.NewInputFrame())
		}
		return m.Snapshot()
	}

	if run(1) == run(2) {
		t.Error("different seeds should produce different serve angles")
	}
}

func TestResetClearsMatch(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)
	m.state.scoreLeft = 5
	m.state.scoreRight = 3

	m.Reset(testRuntime(10, 42))

	st := m.State()
	if st.ScoreLeft != 0 || st.ScoreRight != 0 || st.GameOver {
		t.Errorf("state after reset = %+v, expected a fresh match", st)
	}

	pos, _ := m.tabs.pos.Get(m.ball)
	if pos.X != cfg.Field.Width/2 || pos.Y != cfg.Field.Height/2 {
		t.Errorf("ball = (%g, %g), expected field center", pos.X, pos.Y)
	}

	lp, _ := m.tabs.pos.Get(m.leftPaddle)
	wantY := (cfg.Field.Height - cfg.Paddles.Height) / 2
	if lp.Y != wantY {
		t.Errorf("left paddle Y = %g, expected centered at %g", lp.Y, wantY)
	}
}

func TestDestroyedEntityVanishesFromMatch(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)

	m.world.Destroy(m.ball)
	m.Step(core.NewInputFrame())

	if m.tabs.pos.Has(m.ball) || m.tabs.vel.Has(m.ball) ||
		m.tabs.shape.Has(m.ball) || m.tabs.sprite.Has(m.ball) {
		t.Error("destroyed ball still has components after the tick")
	}
	if m.world.Alive(m.ball) {
		t.Error("destroyed ball still reported alive")
	}
}

func TestRenderShowsScoreAndPaddles(t *testing.T) {
	cfg := config.Default()
	m := newServedMatch(cfg, 10)
	m.state.scoreLeft = 2
	m.state.scoreRight = 7

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "2") || !strings.Contains(out, "7") {
		t.Error("render should show both scores")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("render should draw the paddles")
	}
	if !strings.ContainsRune(out, NetChar) {
		t.Error("render should draw the net")
	}
}

func TestRecentEventsHistory(t *testing.T) {
	cfg := config.Default()
	cfg.Gameplay.ServeDelay = 1
	m := newServedMatch(cfg, 10)

	// Score three goals against the right player.
	for i := 0; i < 3; i++ {
		m.tabs.pos.Set(m.ball, Position{X: cfg.Field.Width + 5, Y: 300})
		m.tabs.vel.Set(m.ball, Velocity{DX: 250, DY: 0})
		m.Step(core.NewInputFrame()) // goal
		m.Step(core.NewInputFrame()) // re-serve
	}

	history := m.RecentEvents()
	if len(history) != 3 {
		t.Fatalf("got %d events in history, expected 3", len(history))
	}
	for i, ev := range history {
		if ev.Scorer != core.SideLeft {
			t.Errorf("history[%d].Scorer = %v, expected left", i, ev.Scorer)
		}
		if ev.ScoreLeft != i+1 {
			t.Errorf("history[%d].ScoreLeft = %d, expected %d (oldest first)", i, ev.ScoreLeft, i+1)
		}
	}
}

func TestSchedulerStatsExposed(t *testing.T) {
	m := newServedMatch(config.Default(), 60)
	m.Step(core.NewInputFrame())

	stats := m.Stats()
	if len(stats) != 4 {
		t.Fatalf("got %d system stats, expected 4", len(stats))
	}
	want := []string{"input", "movement", "collision", "scoring"}
	for i, s := range stats {
		if s.Name != want[i] {
			t.Errorf("stats[%d] = %q, expected %q (priority order)", i, s.Name, want[i])
		}
	}
}
