package ecs

import (
	"sort"
	"time"
)

// System is one unit of per-tick behavior. Mask declares the component kinds
// an entity must carry to be handed to Update; Priority fixes the execution
// order (lower runs first) and must not change after registration.
type System interface {
	Update(dt float64, entities []Entity)
	Mask() Mask
	Priority() int
}

// SystemStats reports execution statistics for a registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
}

type systemEntry struct {
	sys   System
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	last  time.Duration
	total time.Duration
}

// Scheduler runs registered systems in priority order, once each per tick.
type Scheduler struct {
	world   *World
	entries []*systemEntry
	buf     []Entity
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{world: w}
}

// Register adds a named system. Registration order breaks priority ties.
func (s *Scheduler) Register(name string, sys System) {
	s.entries = append(s.entries, &systemEntry{
		sys:  sys,
		name: name,
		min:  time.Duration(1<<63 - 1),
	})
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].sys.Priority() < s.entries[j].sys.Priority()
	})
}

// Tick runs every system exactly once with the given delta time. Each
// system's entity list is computed fresh, so writes made by one system are
// visible to the next within the same tick. A system with no matching
// entities still runs (with an empty list). Deferred entity destroys are
// applied after the last system.
func (s *Scheduler) Tick(dt float64) {
	for _, entry := range s.entries {
		s.buf = s.world.Query(entry.sys.Mask(), s.buf[:0])

		start := time.Now()
		entry.sys.Update(dt, s.buf)
		elapsed := time.Since(start)

		entry.count++
		entry.last = elapsed
		entry.total += elapsed
		if elapsed < entry.min {
			entry.min = elapsed
		}
		if elapsed > entry.max {
			entry.max = elapsed
		}
	}
	s.world.Flush()
}

// Stats returns execution statistics for all systems in run order.
func (s *Scheduler) Stats() []SystemStats {
	out := make([]SystemStats, len(s.entries))
	for i, e := range s.entries {
		avg := time.Duration(0)
		if e.count > 0 {
			avg = e.total / time.Duration(e.count)
		}
		out[i] = SystemStats{
			Name:           e.name,
			ExecutionCount: e.count,
			MinDuration:    e.min,
			MaxDuration:    e.max,
			AvgDuration:    avg,
			LastDuration:   e.last,
		}
	}
	return out
}
