package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcadelab/tui-pong/internal/ecs"
)

type goalEvent struct {
	Side int
}

func TestQueuePushDrainOrder(t *testing.T) {
	q := ecs.NewQueue[goalEvent](8)

	q.Push(goalEvent{Side: 1})
	q.Push(goalEvent{Side: 2})
	q.Push(goalEvent{Side: 3})
	assert.Equal(t, 3, q.Len())

	var sides []int
	q.Drain(func(ev goalEvent) {
		sides = append(sides, ev.Side)
	})

	assert.Equal(t, []int{1, 2, 3}, sides)
	assert.Equal(t, 0, q.Len())
}

func TestQueueDropsOnOverflow(t *testing.T) {
	q := ecs.NewQueue[goalEvent](2)

	assert.True(t, q.Push(goalEvent{Side: 1}))
	assert.True(t, q.Push(goalEvent{Side: 2}))
	assert.False(t, q.Push(goalEvent{Side: 3}))

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, uint64(1), q.Dropped())
}

func TestQueueReset(t *testing.T) {
	q := ecs.NewQueue[goalEvent](4)
	q.Push(goalEvent{Side: 1})
	q.Reset()

	assert.Equal(t, 0, q.Len())
	drained := 0
	q.Drain(func(goalEvent) { drained++ })
	assert.Equal(t, 0, drained)
}

func TestQueuePushDuringDrainIsSeen(t *testing.T) {
	q := ecs.NewQueue[goalEvent](8)
	q.Push(goalEvent{Side: 1})

	var sides []int
	q.Drain(func(ev goalEvent) {
		sides = append(sides, ev.Side)
		if ev.Side == 1 {
			q.Push(goalEvent{Side: 2})
		}
	})

	assert.Equal(t, []int{1, 2}, sides)
	assert.Equal(t, 0, q.Len())
}
