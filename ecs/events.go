package ecs

// EventType identifies gameplay events raised by systems.
type EventType string

const (
	EventRoomLoaded     EventType = "room_loaded"
	EventRoomCleared    EventType = "room_cleared"
	EventPlayerDamaged  EventType = "player_damaged"
	EventPlayerDefeated EventType = "player_defeated"
	EventEnemyFired     EventType = "enemy_fired"
	EventEnemyDefeated  EventType = "enemy_defeated"
	EventCoinDropped    EventType = "coin_dropped"
)

// Event is a gameplay notification. Data is event specific.
type Event struct {
	Type   EventType
	Entity Entity
	At     int64
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
