package dropdown

import (
	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/position"
)

// Dropdown drives the visibility of a panel element anchored to a trigger
// element.
//
// A controller owns three things: the visibility state, the listener
// registrations that implement its interaction mode, and the outside-click
// registration it holds while visible. It borrows the trigger and panel
// elements from the host and never creates or destroys them.
//
// Controllers are not safe for concurrent use. The host must serialize
// event dispatch and clock callbacks onto one goroutine, as memdom and
// teahost both do.
type Dropdown struct {
	doc     host.Document
	trigger host.Element
	target  host.Element
	cfg     Config

	instance     position.Instance
	visible      bool
	outsideClick *host.Registration
	wiring       []*host.Registration
}

// New wires a controller for the given panel (target) anchored to trigger.
//
// The positioning engine is attached immediately, with its reactive
// listeners disabled, and stays attached for the controller's life. If
// trigger is non-nil, the interaction listeners for cfg.Trigger are
// registered; a nil trigger wires nothing and leaves only the programmatic
// Show, Hide, and Toggle surface. The panel starts hidden.
//
// The target must be non-nil for correct operation. A controller built
// without one degrades to bare state tracking: transitions still run, but
// no classes are toggled and outside clicks cannot be told apart from
// inside ones. Elements are not otherwise validated.
//
// doc supplies the outside-click capture scope. With a nil doc the
// controller never installs an outside-click listener, so dismissal is
// left entirely to the trigger wiring and programmatic calls.
func New(doc host.Document, trigger, target host.Element, cfg Config) *Dropdown {
	cfg = cfg.withDefaults()
	d := &Dropdown{
		doc:     doc,
		trigger: trigger,
		target:  target,
		cfg:     cfg,
	}
	d.instance = cfg.Engine.Attach(trigger, target, position.Options{
		Placement: cfg.Placement,
		Offset:    position.Offset{Skidding: cfg.OffsetSkidding, Distance: cfg.OffsetDistance},
	})
	d.wire()
	return d
}

// wire registers the trigger and target listeners for the configured
// interaction mode. Runs once, at construction.
func (d *Dropdown) wire() {
	if d.trigger == nil {
		return
	}
	switch d.cfg.Trigger {
	case TriggerHover:
		d.keep(d.trigger.On(host.EventClick, func(host.Event) { d.Toggle() }))
		d.keep(d.trigger.On(host.EventMouseEnter, func(host.Event) { d.Show() }))
		d.keep(d.trigger.On(host.EventMouseLeave, func(host.Event) { d.scheduleHide(d.target) }))
		if d.target != nil {
			// Hovering or clicking the open panel keeps it open; leaving
			// it hides unless the pointer is back on the trigger.
			d.keep(d.target.On(host.EventMouseEnter, func(host.Event) { d.Show() }))
			d.keep(d.target.On(host.EventClick, func(host.Event) { d.Show() }))
			d.keep(d.target.On(host.EventMouseLeave, func(host.Event) { d.scheduleHide(d.trigger) }))
		}
	default:
		d.keep(d.trigger.On(host.EventClick, func(host.Event) { d.Toggle() }))
	}
}

func (d *Dropdown) keep(reg *host.Registration) {
	d.wiring = append(d.wiring, reg)
}

// scheduleHide runs the hover hide check after the configured delay. The
// check re-reads state at fire time, so a stale check left over from a
// rapid enter/leave sequence resolves safely without cancellation: it
// hides only if the panel is still visible and the pointer is not on
// stayFor.
func (d *Dropdown) scheduleHide(stayFor host.Element) {
	d.cfg.Clock.AfterFunc(d.cfg.Delay, func() {
		if stayFor != nil && stayFor.Hovered() {
			return
		}
		if !d.visible {
			return
		}
		d.Hide()
	})
}

// Show makes the panel visible.
//
// Side effects run in a fixed order: the panel's visibility classes flip,
// the positioning instance enables its reactive listeners, the
// outside-click listener is installed, the position is recomputed, and
// finally the observer is notified. Calling Show while already visible
// repeats all of these effects; only the outside-click registration is
// reused rather than installed a second time.
func (d *Dropdown) Show() {
	if d.target != nil {
		d.target.RemoveClass(d.cfg.HiddenClass)
		d.target.AddClass(d.cfg.VisibleClass)
	}
	d.instance.SetOptions(func(opts *position.Options) {
		opts.Listeners = true
	})
	d.registerOutsideClick()
	d.instance.Update()
	d.visible = true
	d.cfg.Observer.DropdownShown(d)
}

// Hide makes the panel hidden, releasing the outside-click registration
// and disabling the positioning instance's reactive listeners.
func (d *Dropdown) Hide() {
	if d.target != nil {
		d.target.RemoveClass(d.cfg.VisibleClass)
		d.target.AddClass(d.cfg.HiddenClass)
	}
	d.instance.SetOptions(func(opts *position.Options) {
		opts.Listeners = false
	})
	d.visible = false
	d.unregisterOutsideClick()
	d.cfg.Observer.DropdownHidden(d)
}

// Toggle flips visibility: a visible panel hides, a hidden one shows.
func (d *Dropdown) Toggle() {
	if d.visible {
		d.Hide()
		return
	}
	d.Show()
}

// Visible reports whether the panel is currently shown.
func (d *Dropdown) Visible() bool {
	return d.visible
}

// Trigger returns the trigger element, which may be nil.
func (d *Dropdown) Trigger() host.Element {
	return d.trigger
}

// Target returns the panel element.
func (d *Dropdown) Target() host.Element {
	return d.target
}

// Dispose releases every listener registration the controller holds: the
// outside-click listener, if installed, and all trigger and target wiring.
// The panel's classes and the visibility state are left as they are.
// Dispose is safe to call more than once; a disposed controller still
// honors programmatic Show, Hide, and Toggle.
func (d *Dropdown) Dispose() {
	d.unregisterOutsideClick()
	for _, reg := range d.wiring {
		reg.Cancel()
	}
	d.wiring = nil
}

// registerOutsideClick installs the capture-phase dismiss listener. The
// held registration is reused when one is already installed, so repeated
// Show calls never stack listeners.
func (d *Dropdown) registerOutsideClick() {
	if d.doc == nil || d.outsideClick != nil {
		return
	}
	d.outsideClick = d.doc.Capture(host.EventClick, d.handleOutsideClick)
}

func (d *Dropdown) unregisterOutsideClick() {
	if d.outsideClick == nil {
		return
	}
	d.outsideClick.Cancel()
	d.outsideClick = nil
}

// handleOutsideClick hides the panel when a click lands outside both the
// panel and the trigger. It runs at the capture phase, so it observes the
// click even when inner content consumes it.
func (d *Dropdown) handleOutsideClick(ev host.Event) {
	clicked := ev.Target
	if clicked != nil {
		if d.target != nil && d.target.Contains(clicked) {
			return
		}
		if d.trigger != nil && d.trigger.Contains(clicked) {
			return
		}
	}
	if d.visible {
		d.Hide()
	}
}
