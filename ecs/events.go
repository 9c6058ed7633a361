package ecs

import "github.com/milk9111/hopper/ecs/component"

// EventType names a domain event raised during a tick.
type EventType string

const (
	// EventPlayerDied fires once per tick at most, after the body has been
	// put back on the current level's spawn point.
	EventPlayerDied EventType = "player_died"
	// EventLevelCompleted fires when the finish region was reached and the
	// next level has been loaded.
	EventLevelCompleted EventType = "level_completed"
	// EventAllLevelsComplete fires when the level index wraps to 0.
	EventAllLevelsComplete EventType = "all_levels_complete"
	// EventJumped fires when a jump impulse is applied.
	EventJumped EventType = "jumped"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// DiedData is the payload of EventPlayerDied.
type DiedData struct {
	Cause component.DeathCause
	Level int
}

// LevelData is the payload of EventLevelCompleted and EventAllLevelsComplete.
type LevelData struct {
	From    int
	To      int
	Wrapped bool
}

// EventQueue is a simple FIFO queue. Front ends drain it once per tick.
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
