package ecs

// Event is a broadcast payload delivered through the world queue.
type Event struct {
	Type string
	Data any
}

// EventImpact is pushed by the physics system when two bodies hit each
// other hard enough to matter.
const EventImpact = "impact"

// ImpactEvent describes one qualifying contact between two bodies.
type ImpactEvent struct {
	A, B  Entity
	Speed float64
	X, Y  float64
}

// EventQueue is a simple FIFO queue. Systems push during their update,
// consumers drain later the same tick, and anything left over is
// dropped when the tick ends.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
