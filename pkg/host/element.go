package host

// Element is a single host UI node.
//
// Controllers borrow elements; they never create or destroy them. An
// element handed to a controller must outlive it.
type Element interface {
	EventTarget

	// ID returns the element's identifier, or "" when it has none.
	ID() string
	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)
	// AddClass adds name to the element's class list.
	AddClass(name string)
	// RemoveClass removes name from the element's class list.
	RemoveClass(name string)
	// HasClass reports whether name is in the element's class list.
	HasClass(name string) bool
	// Contains reports whether other is this element or a descendant of it.
	Contains(other Element) bool
	// Hovered reports whether the pointer is currently over this element
	// or one of its descendants.
	Hovered() bool
}

// Document is the root scope of a host: element lookup plus document-level
// event capture.
type Document interface {
	// ElementByID returns the element with the given id, or nil.
	ElementByID(id string) Element
	// ElementsByAttr returns the elements carrying the named attribute,
	// in document order.
	ElementsByAttr(name string) []Element
	// Capture registers a capture-phase listener that observes every event
	// of the given type before per-element listeners run.
	Capture(t EventType, listener Listener) *Registration
}
