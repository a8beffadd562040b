package ecs

// Queue is a bounded single-tick event queue. Producers push during their
// system's Update, consumers drain later in the same tick; anything left over
// is discarded by whoever owns the queue before the next tick. The explicit
// queue keeps event ordering deterministic, unlike observer callbacks.
type Queue[T any] struct {
	items   []T
	limit   int
	dropped uint64
}

// NewQueue creates a queue that holds at most limit events per tick.
func NewQueue[T any](limit int) *Queue[T] {
	if limit <= 0 {
		limit = 1
	}
	return &Queue[T]{
		items: make([]T, 0, limit),
		limit: limit,
	}
}

// Push appends an event. When the queue is full the event is dropped and
// counted; simulation never blocks on a slow consumer.
func (q *Queue[T]) Push(v T) bool {
	if len(q.items) >= q.limit {
		q.dropped++
		return false
	}
	q.items = append(q.items, v)
	return true
}

// Drain calls fn for every queued event in push order, then empties the
// queue. The queue may be pushed to again while draining; those events are
// seen by the same Drain call.
func (q *Queue[T]) Drain(fn func(T)) {
	for i := 0; i < len(q.items); i++ {
		fn(q.items[i])
	}
	q.items = q.items[:0]
}

// Len returns the number of queued events.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Dropped returns the total number of events discarded due to overflow.
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped
}

// Reset discards queued events without consuming them.
func (q *Queue[T]) Reset() {
	q.items = q.items[:0]
}
