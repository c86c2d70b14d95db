package teahost

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/flyout/pkg/errors"
	"github.com/go-drift/flyout/pkg/host"
)

// DefaultHiddenClass is the class hit testing treats as invisible.
const DefaultHiddenClass = "hidden"

// Host adapts a terminal screen to the host interfaces controllers are
// written against. It owns a flat set of regions, tracks the pointer
// cell reported by the terminal, and dispatches enter, leave, and click
// events as mouse messages arrive.
//
// Host is not safe for concurrent use. Drive it from a single update
// loop, the way a Bubble Tea program delivers messages.
type Host struct {
	regions  []*Region
	byID     map[string]*Region
	capture  map[host.EventType][]*listenerEntry
	hovered  *Region
	pointerX int
	pointerY int

	// HiddenClass is the class that removes a region from hit testing.
	// Defaults to [DefaultHiddenClass].
	HiddenClass string
}

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{
		byID:        make(map[string]*Region),
		capture:     make(map[host.EventType][]*listenerEntry),
		pointerX:    -1,
		pointerY:    -1,
		HiddenClass: DefaultHiddenClass,
	}
}

// NewRegion creates a region and adds it to the host. Later regions win
// hit testing over earlier ones where they overlap. NewRegion panics if
// the id is already taken.
func (h *Host) NewRegion(id, label string, bounds Rect) *Region {
	if _, ok := h.byID[id]; ok {
		panic(fmt.Sprintf("teahost: duplicate region id %q", id))
	}
	r := &Region{
		owner:  h,
		id:     id,
		label:  label,
		bounds: bounds,
	}
	h.regions = append(h.regions, r)
	h.byID[id] = r
	return r
}

// Regions returns the host's regions in creation order.
func (h *Host) Regions() []*Region {
	return h.regions
}

// ElementByID returns the region with the given id, or nil when no such
// region exists.
func (h *Host) ElementByID(id string) host.Element {
	r, ok := h.byID[id]
	if !ok {
		return nil
	}
	return r
}

// ElementsByAttr returns, in creation order, every region carrying the
// attribute. Hidden regions are included; only hit testing skips them.
func (h *Host) ElementsByAttr(name string) []host.Element {
	var out []host.Element
	for _, r := range h.regions {
		if _, ok := r.attrs[name]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Capture registers a listener that observes every event of the given
// type before the region under the pointer does, including clicks that
// land on no region at all.
func (h *Host) Capture(t host.EventType, listener host.Listener) *host.Registration {
	entry := &listenerEntry{listener: listener}
	h.capture[t] = append(h.capture[t], entry)
	return host.NewRegistration(func() {
		h.removeCapture(t, entry)
	})
}

func (h *Host) removeCapture(t host.EventType, entry *listenerEntry) {
	entries := h.capture[t]
	for i, e := range entries {
		if e == entry {
			h.capture[t] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// CaptureCount returns the number of capture listeners for an event
// type.
func (h *Host) CaptureCount(t host.EventType) int {
	return len(h.capture[t])
}

// Pointer returns the cell the terminal last reported the pointer at,
// or (-1, -1) before any mouse message arrives.
func (h *Host) Pointer() (x, y int) {
	return h.pointerX, h.pointerY
}

// HitTest returns the topmost visible region containing the cell, or
// nil. Later regions win, and regions carrying the hidden class are
// skipped.
func (h *Host) HitTest(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		r := h.regions[i]
		if r.HasClass(h.HiddenClass) {
			continue
		}
		if r.bounds.Contains(x, y) {
			return r
		}
	}
	return nil
}

// HandleMouse feeds a terminal mouse message into event dispatch.
// Motion maintains the hovered region and fires enter and leave events;
// a left button press clicks the region under the pointer. Other
// buttons and actions are ignored. Listener panics are reported to the
// error handler, not propagated.
func (h *Host) HandleMouse(msg tea.MouseMsg) {
	defer errors.Recover("teahost.HandleMouse")
	switch {
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		h.MovePointer(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		h.MovePointer(msg.X, msg.Y)
		h.click(msg.X, msg.Y)
	}
}

// MovePointer moves the pointer to a cell, updating the hovered region
// and dispatching leave and enter events when it changes.
func (h *Host) MovePointer(x, y int) {
	h.pointerX, h.pointerY = x, y
	hit := h.HitTest(x, y)
	if hit == h.hovered {
		return
	}
	old := h.hovered
	h.hovered = hit
	if old != nil {
		h.dispatchCaptured(host.Event{Type: host.EventMouseLeave, Target: old}, old)
	}
	if hit != nil {
		h.dispatchCaptured(host.Event{Type: host.EventMouseEnter, Target: hit}, hit)
	}
}

func (h *Host) click(x, y int) {
	hit := h.HitTest(x, y)
	var target host.Element
	if hit != nil {
		target = hit
	}
	h.dispatchCaptured(host.Event{Type: host.EventClick, Target: target}, hit)
}

// dispatchCaptured runs capture listeners first, then the region's own.
func (h *Host) dispatchCaptured(ev host.Event, r *Region) {
	entries := h.capture[ev.Type]
	if len(entries) > 0 {
		snapshot := make([]*listenerEntry, len(entries))
		copy(snapshot, entries)
		for _, e := range snapshot {
			e.listener(ev)
		}
	}
	if r != nil {
		r.dispatch(ev)
	}
}
