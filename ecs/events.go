package ecs

// EventKind identifies gameplay events raised by systems.
type EventKind string

const (
	EventPlayerDamaged EventKind = "player_damaged"
	EventEnemyDamaged  EventKind = "enemy_damaged"
	EventEnemyDefeated EventKind = "enemy_defeated"
	EventLevelComplete EventKind = "level_complete"
	EventGameOver      EventKind = "game_over"
)

// Event is a gameplay event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Tick   uint64
	Health int
}

// EventQueue is a simple FIFO queue. Events stay queued until drained.
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
