package engine

type EventType int

const (
	EventBallHit EventType = iota
	EventMiss
	EventRoundWon
	EventRoundLost
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventBallHit:
		return "ball-hit"
	case EventMiss:
		return "miss"
	case EventRoundWon:
		return "round-won"
	case EventRoundLost:
		return "round-lost"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

type Event struct {
	Type  EventType
	X, Y  float64
	Index int // ball index for EventBallHit, -1 otherwise
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously. Handlers must not
// block; anything slow (sound playback) belongs on its own goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
