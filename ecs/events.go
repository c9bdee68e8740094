package ecs

// EventKind identifies gameplay event types.
type EventKind string

const (
	EventEnemySpawned  EventKind = "enemy_spawned"
	EventEnemyDamaged  EventKind = "enemy_damaged"
	EventEnemyKilled   EventKind = "enemy_killed"
	EventPlayerDamaged EventKind = "player_damaged"
	EventWeaponFired   EventKind = "weapon_fired"
	EventExplosion     EventKind = "explosion"
	EventGameOver      EventKind = "game_over"
)

// Event is a gameplay notification produced during a frame.
type Event struct {
	Kind   EventKind
	Entity Entity
	Amount float64
	Data   any
}

// EventQueue is a simple FIFO queue.
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
