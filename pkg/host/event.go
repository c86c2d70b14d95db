package host

// EventType identifies a kind of interaction event.
type EventType int

const (
	// EventClick fires when the primary pointer button activates an element.
	EventClick EventType = iota
	// EventMouseEnter fires when the pointer moves onto an element.
	EventMouseEnter
	// EventMouseLeave fires when the pointer moves off an element.
	EventMouseLeave
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventMouseEnter:
		return "mouseenter"
	case EventMouseLeave:
		return "mouseleave"
	default:
		return "unknown"
	}
}

// Event describes a dispatched interaction event.
type Event struct {
	// Type is the kind of event.
	Type EventType
	// Target is the innermost element the event was dispatched to.
	Target Element
}

// Listener receives dispatched events.
type Listener func(Event)

// EventTarget accepts listener registrations for interaction events.
type EventTarget interface {
	// On registers listener for events of the given type. The returned
	// registration removes exactly the listener this call installed.
	On(t EventType, listener Listener) *Registration
}
