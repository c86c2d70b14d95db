package teahost

import (
	"github.com/go-drift/flyout/pkg/host"
)

// Rect is a rectangle in screen cells. The right and bottom edges are
// exclusive, so a Rect with W == 0 or H == 0 contains nothing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type listenerEntry struct {
	listener host.Listener
}

// Region is a rectangular screen area that participates in event
// dispatch. Regions are flat: they do not nest, and Contains is
// identity. A region carrying the host's hidden class is skipped by hit
// testing, so a dismissed panel never captures hover or clicks even
// though its rectangle still overlaps the page.
type Region struct {
	owner     *Host
	id        string
	label     string
	bounds    Rect
	attrs     map[string]string
	classes   map[string]struct{}
	items     []string
	listeners map[host.EventType][]*listenerEntry
}

// ID returns the region identifier.
func (r *Region) ID() string { return r.id }

// Label returns the text the region renders, typically a button caption.
func (r *Region) Label() string { return r.label }

// Bounds returns the region rectangle in screen cells.
func (r *Region) Bounds() Rect { return r.bounds }

// SetBounds moves or resizes the region. Attached panels keep their old
// position until repositioned; call [CellEngine.Reflow] after a batch of
// bounds changes to recompute everything that is showing.
func (r *Region) SetBounds(b Rect) { r.bounds = b }

// Items returns the selectable rows a panel region renders.
func (r *Region) Items() []string { return r.items }

// SetItems replaces the selectable rows a panel region renders.
func (r *Region) SetItems(items []string) {
	r.items = items
}

// ItemAt maps a screen cell to an item index. It returns -1 when the
// cell is outside the region or below the last item.
func (r *Region) ItemAt(x, y int) int {
	if !r.bounds.Contains(x, y) {
		return -1
	}
	idx := y - r.bounds.Y
	if idx >= len(r.items) {
		return -1
	}
	return idx
}

// Attr returns the markup attribute value and whether it is present.
func (r *Region) Attr(name string) (string, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// SetAttr sets a markup attribute on the region.
func (r *Region) SetAttr(name, value string) {
	if r.attrs == nil {
		r.attrs = make(map[string]string)
	}
	r.attrs[name] = value
}

// AddClass adds a class to the region. Adding a class twice is a no-op.
func (r *Region) AddClass(name string) {
	if r.classes == nil {
		r.classes = make(map[string]struct{})
	}
	r.classes[name] = struct{}{}
}

// RemoveClass removes a class from the region. Removing an absent class
// is a no-op.
func (r *Region) RemoveClass(name string) {
	delete(r.classes, name)
}

// HasClass reports whether the region carries the class.
func (r *Region) HasClass(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// Contains reports whether other is this region. Regions do not nest.
func (r *Region) Contains(other host.Element) bool {
	o, ok := other.(*Region)
	if !ok {
		return false
	}
	return o == r
}

// Hovered reports whether the terminal pointer is over this region.
func (r *Region) Hovered() bool {
	return r.owner != nil && r.owner.hovered == r
}

// On registers a listener for an event type on this region. Cancel the
// returned registration to remove exactly this listener.
func (r *Region) On(t host.EventType, listener host.Listener) *host.Registration {
	entry := &listenerEntry{listener: listener}
	if r.listeners == nil {
		r.listeners = make(map[host.EventType][]*listenerEntry)
	}
	r.listeners[t] = append(r.listeners[t], entry)
	return host.NewRegistration(func() {
		r.removeListener(t, entry)
	})
}

func (r *Region) removeListener(t host.EventType, entry *listenerEntry) {
	entries := r.listeners[t]
	for i, e := range entries {
		if e == entry {
			r.listeners[t] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for an event
// type.
func (r *Region) ListenerCount(t host.EventType) int {
	return len(r.listeners[t])
}

func (r *Region) dispatch(ev host.Event) {
	entries := r.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]*listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		e.listener(ev)
	}
}
