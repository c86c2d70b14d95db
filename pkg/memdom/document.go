package memdom

import (
	"fmt"

	"github.com/go-drift/flyout/pkg/errors"
	"github.com/go-drift/flyout/pkg/host"
)

// Document is an in-memory element tree with a simulated pointer.
// It implements host.Document.
type Document struct {
	root    *Element
	byID    map[string]*Element
	hovered *Element

	capture map[host.EventType][]*listenerEntry
}

// NewDocument creates an empty document holding only the root element.
func NewDocument() *Document {
	d := &Document{
		byID:    make(map[string]*Element),
		capture: make(map[host.EventType][]*listenerEntry),
	}
	d.root = d.newElement("")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// CreateElement creates a detached element owned by this document.
// Pass "" for an element without an identifier.
// Panics if the id is already taken.
func (d *Document) CreateElement(id string) *Element {
	if id != "" {
		if _, taken := d.byID[id]; taken {
			panic(fmt.Sprintf("memdom: duplicate element id %q", id))
		}
	}
	el := d.newElement(id)
	if id != "" {
		d.byID[id] = el
	}
	return el
}

func (d *Document) newElement(id string) *Element {
	return &Element{
		doc:       d,
		id:        id,
		attrs:     make(map[string]string),
		classes:   make(map[string]struct{}),
		listeners: make(map[host.EventType][]*listenerEntry),
	}
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) host.Element {
	if el, ok := d.byID[id]; ok {
		return el
	}
	return nil
}

// ElementsByAttr returns the attached elements carrying the named
// attribute, in document order.
func (d *Document) ElementsByAttr(name string) []host.Element {
	var found []host.Element
	var walk func(el *Element)
	walk = func(el *Element) {
		if _, ok := el.attrs[name]; ok {
			found = append(found, el)
		}
		for _, child := range el.children {
			walk(child)
		}
	}
	walk(d.root)
	return found
}

// Capture registers a capture-phase listener. It observes every dispatched
// event of the given type before per-element listeners run.
func (d *Document) Capture(t host.EventType, listener host.Listener) *host.Registration {
	entry := &listenerEntry{fn: listener}
	d.capture[t] = append(d.capture[t], entry)
	return host.NewRegistration(func() {
		d.removeCapture(t, entry)
	})
}

func (d *Document) removeCapture(t host.EventType, entry *listenerEntry) {
	entries := d.capture[t]
	for i, en := range entries {
		if en == entry {
			d.capture[t] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
}

// CaptureCount returns the number of live capture-phase listeners for the
// given event type. Intended for tests and diagnostics.
func (d *Document) CaptureCount(t host.EventType) int {
	return len(d.capture[t])
}

// Click moves the pointer onto el and dispatches a click event to it.
// The event runs capture-phase listeners first, then el's own listeners,
// then bubbles through el's ancestors. The event target stays el
// throughout.
func (d *Document) Click(el *Element) {
	defer errors.Recover("memdom.Click")
	if el == nil || el.doc != d {
		return
	}
	d.movePointer(el)
	ev := host.Event{Type: host.EventClick, Target: el}
	d.dispatchCapture(host.EventClick, ev)
	for node := el; node != nil; node = node.parent {
		node.dispatchOwn(host.EventClick, ev)
	}
}

// PointTo moves the pointer onto el, firing mouseleave events up the old
// hover chain and mouseenter events down the new one. Pass nil to move
// the pointer off every element.
//
// Hover state is updated before any event fires, so listeners observe the
// new pointer position. Enter and leave events do not bubble; each element
// in the chain diff receives its own event.
func (d *Document) PointTo(el *Element) {
	defer errors.Recover("memdom.PointTo")
	if el != nil && el.doc != d {
		return
	}
	d.movePointer(el)
}

func (d *Document) movePointer(el *Element) {
	if d.hovered == el {
		return
	}
	oldChain := hoverChain(d.hovered)
	newChain := hoverChain(el)
	d.hovered = el

	// Leave events fire innermost-first for elements no longer hovered.
	for _, node := range oldChain {
		if !inChain(newChain, node) {
			ev := host.Event{Type: host.EventMouseLeave, Target: node}
			d.dispatchCapture(host.EventMouseLeave, ev)
			node.dispatchOwn(host.EventMouseLeave, ev)
		}
	}
	// Enter events fire outermost-first for newly hovered elements.
	for i := len(newChain) - 1; i >= 0; i-- {
		node := newChain[i]
		if !inChain(oldChain, node) {
			ev := host.Event{Type: host.EventMouseEnter, Target: node}
			d.dispatchCapture(host.EventMouseEnter, ev)
			node.dispatchOwn(host.EventMouseEnter, ev)
		}
	}
}

func (d *Document) dispatchCapture(t host.EventType, ev host.Event) {
	entries := make([]*listenerEntry, len(d.capture[t]))
	copy(entries, d.capture[t])
	for _, entry := range entries {
		entry.fn(ev)
	}
}

// hoverChain returns el and its ancestors, innermost first.
func hoverChain(el *Element) []*Element {
	var chain []*Element
	for node := el; node != nil; node = node.parent {
		chain = append(chain, node)
	}
	return chain
}

func inChain(chain []*Element, el *Element) bool {
	for _, node := range chain {
		if node == el {
			return true
		}
	}
	return false
}
