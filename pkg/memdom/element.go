package memdom

import (
	"github.com/go-drift/flyout/pkg/host"
)

// Element is a node in an in-memory document tree.
type Element struct {
	doc      *Document
	parent   *Element
	children []*Element
	id       string
	attrs    map[string]string
	classes  map[string]struct{}

	listeners map[host.EventType][]*listenerEntry
}

type listenerEntry struct {
	fn host.Listener
}

// ID returns the element's identifier, or "" when it has none.
func (e *Element) ID() string {
	return e.id
}

// Attr returns the value of the named attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets the named attribute.
func (e *Element) SetAttr(name, value string) {
	e.attrs[name] = value
}

// AddClass adds name to the element's class list.
func (e *Element) AddClass(name string) {
	e.classes[name] = struct{}{}
}

// RemoveClass removes name from the element's class list.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether name is in the element's class list.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// Append attaches the given elements as children of e.
// Panics if a child is nil or already attached to a parent.
func (e *Element) Append(children ...*Element) {
	for _, child := range children {
		if child == nil {
			panic("memdom: append of nil element")
		}
		if child.parent != nil {
			panic("memdom: element already attached")
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// Parent returns the element's parent, or nil for the root and for
// detached elements.
func (e *Element) Parent() *Element {
	return e.parent
}

// Contains reports whether other is this element or a descendant of it.
func (e *Element) Contains(other host.Element) bool {
	node, ok := other.(*Element)
	if !ok {
		return false
	}
	for ; node != nil; node = node.parent {
		if node == e {
			return true
		}
	}
	return false
}

// Hovered reports whether the simulated pointer is over this element or
// one of its descendants.
func (e *Element) Hovered() bool {
	if e.doc == nil || e.doc.hovered == nil {
		return false
	}
	return e.Contains(e.doc.hovered)
}

// On registers listener for events of the given type on this element.
func (e *Element) On(t host.EventType, listener host.Listener) *host.Registration {
	entry := &listenerEntry{fn: listener}
	e.listeners[t] = append(e.listeners[t], entry)
	return host.NewRegistration(func() {
		e.removeListener(t, entry)
	})
}

func (e *Element) removeListener(t host.EventType, entry *listenerEntry) {
	entries := e.listeners[t]
	for i, en := range entries {
		if en == entry {
			e.listeners[t] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
}

// ListenerCount returns the number of live listeners for the given event
// type. Intended for tests and diagnostics.
func (e *Element) ListenerCount(t host.EventType) int {
	return len(e.listeners[t])
}

// dispatchOwn runs the element's own listeners for ev.
func (e *Element) dispatchOwn(t host.EventType, ev host.Event) {
	entries := make([]*listenerEntry, len(e.listeners[t]))
	copy(entries, e.listeners[t])
	for _, entry := range entries {
		entry.fn(ev)
	}
}
