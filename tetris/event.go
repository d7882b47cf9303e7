package tetris

// EventKind classifies engine events.
type EventKind uint8

const (
	EventSpawn EventKind = iota
	EventMove
	EventRotate
	EventSoftDrop
	EventHardDrop
	EventLock
	EventLineClear
	EventLevelUp
	EventPause
	EventResume
	EventGameOver
	EventRestart
)

// Event describes a state change. Fields that do not apply to a kind are
// zero.
type Event struct {
	Kind  EventKind
	Shape Shape
	// Lines is the number of rows removed by a line clear.
	Lines int
	// Points is the score awarded by a line clear.
	Points int
	// Level is the level after the event.
	Level int
	// Distance is how many rows a hard drop travelled.
	Distance int
}

// Listener receives events synchronously, from inside the engine command
// that caused them. Listeners must not call back into the engine.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// EventQueue is a Listener that buffers events until drained. Presentation
// layers use it to react to events after a command returns.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) OnEvent(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
