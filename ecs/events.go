package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventType identifies what happened during a step.
type EventType string

const (
	EventRespawned         EventType = "respawned"
	EventCoinCollected     EventType = "coin_collected"
	EventTransitionStarted EventType = "transition_started"
	EventLevelLoaded       EventType = "level_loaded"
)

// EventQueue is a simple FIFO queue. Systems push, the step owner drains.
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
