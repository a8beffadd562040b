package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcadelab/tui-pong/internal/ecs"
)

// recordingSystem appends its name to a shared trace on every update.
type recordingSystem struct {
	name     string
	priority int
	mask     ecs.Mask
	trace    *[]string
	seen     [][]ecs.Entity
	onUpdate func(dt float64, entities []ecs.Entity)
}

func (s *recordingSystem) Update(dt float64, entities []ecs.Entity) {
	*s.trace = append(*s.trace, s.name)
	s.seen = append(s.seen, append([]ecs.Entity(nil), entities...))
	if s.onUpdate != nil {
		s.onUpdate(dt, entities)
	}
}

func (s *recordingSystem) Mask() ecs.Mask { return s.mask }
func (s *recordingSystem) Priority() int  { return s.priority }

func TestTickRunsSystemsInPriorityOrder(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	var trace []string
	collision := &recordingSystem{name: "collision", priority: 30, trace: &trace}
	movement := &recordingSystem{name: "movement", priority: 20, trace: &trace}
	input := &recordingSystem{name: "input", priority: 10, trace: &trace}

	// Registered out of order on purpose.
	sched.Register("collision", collision)
	sched.Register("input", input)
	sched.Register("movement", movement)

	sched.Tick(1.0 / 60.0)
	sched.Tick(1.0 / 60.0)

	assert.Equal(t, []string{
		"input", "movement", "collision",
		"input", "movement", "collision",
	}, trace)
}

func TestEmptyEntitySetStillRuns(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	var trace []string
	sys := &recordingSystem{name: "movement", priority: 0, mask: ecs.K(kindPosition), trace: &trace}
	sched.Register("movement", sys)

	sched.Tick(0.016)

	assert.Len(t, trace, 1)
	assert.Empty(t, sys.seen[0])
}

func TestQueriesComputedFreshPerSystem(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	var trace []string

	// The first system spawns an entity mid-tick; the second must see it
	// because its query is computed after the first system ran.
	spawner := &recordingSystem{name: "spawner", priority: 1, trace: &trace}
	spawner.onUpdate = func(dt float64, _ []ecs.Entity) {
		if len(spawner.seen) == 1 { // only on the first tick
			e := tw.world.Create()
			tw.positions.Set(e, Position{X: 1})
		}
	}
	observer := &recordingSystem{name: "observer", priority: 2, mask: ecs.K(kindPosition), trace: &trace}

	sched.Register("spawner", spawner)
	sched.Register("observer", observer)

	sched.Tick(0.016)
	assert.Len(t, observer.seen[0], 1)
}

func TestDeferredDestroyAppliedAfterTick(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	e := tw.world.Create()
	tw.positions.Set(e, Position{})

	var trace []string
	destroyer := &recordingSystem{name: "destroyer", priority: 1, mask: ecs.K(kindPosition), trace: &trace}
	destroyer.onUpdate = func(dt float64, entities []ecs.Entity) {
		for _, id := range entities {
			tw.world.Destroy(id)
		}
	}
	later := &recordingSystem{name: "later", priority: 2, mask: ecs.K(kindPosition), trace: &trace}

	sched.Register("destroyer", destroyer)
	sched.Register("later", later)

	sched.Tick(0.016)

	// The later system already skipped the destroyed entity.
	assert.Empty(t, later.seen[0])
	// And after the tick the components are gone for good.
	assert.False(t, tw.positions.Has(e))
	assert.Equal(t, 0, tw.world.Len())
}

func TestSameDtForEverySystem(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	var dts []float64
	var trace []string
	for i := 1; i <= 3; i++ {
		sys := &recordingSystem{name: "s", priority: i, trace: &trace}
		sys.onUpdate = func(dt float64, _ []ecs.Entity) {
			dts = append(dts, dt)
		}
		sched.Register("s", sys)
	}

	sched.Tick(0.025)
	assert.Equal(t, []float64{0.025, 0.025, 0.025}, dts)
}

func TestStats(t *testing.T) {
	tw := newTestWorld()
	sched := ecs.NewScheduler(tw.world)

	var trace []string
	sched.Register("movement", &recordingSystem{name: "movement", priority: 1, trace: &trace})
	sched.Register("collision", &recordingSystem{name: "collision", priority: 2, trace: &trace})

	sched.Tick(0.016)
	sched.Tick(0.016)
	sched.Tick(0.016)

	stats := sched.Stats()
	assert.Len(t, stats, 2)
	assert.Equal(t, "movement", stats[0].Name)
	assert.Equal(t, "collision", stats[1].Name)
	for _, st := range stats {
		assert.Equal(t, int64(3), st.ExecutionCount)
		assert.LessOrEqual(t, st.MinDuration, st.MaxDuration)
	}
}
