// Package dropdown implements the interaction controller behind dropdown
// menus and popover panels.
//
// A controller pairs a trigger element with a panel element and drives the
// panel's visibility from user interaction: clicks toggle it, hovering
// shows it with a hide delay, and clicks outside both elements dismiss it.
// Placement is delegated to a positioning engine through the contract in
// the position package; the controller itself never computes coordinates.
//
// # Quick Start
//
// Build a controller over any host. With memdom:
//
//	doc := memdom.NewDocument()
//	button := doc.CreateElement("user-button")
//	menu := doc.CreateElement("user-menu")
//	menu.AddClass("hidden")
//	doc.Root().Append(button, menu)
//
//	dd := dropdown.New(doc, button, menu, dropdown.Config{})
//
//	doc.Click(button) // menu now carries "block" instead of "hidden"
//	doc.Click(button) // hidden again
//
// Visibility is expressed purely as a class swap on the panel: the hidden
// class (default "hidden") and the visible class (default "block") are
// exchanged on every transition. Rendering those classes is the host's
// business.
//
// # Interaction modes
//
// TriggerClick wires a single click listener on the trigger that toggles
// the panel. TriggerHover additionally shows on pointer entry, keeps the
// panel open while the pointer is over either element, and schedules a
// delayed check when the pointer leaves one of them: after Config.Delay
// (default 100ms) the panel hides unless the pointer has settled on the
// other element. The delay absorbs the pointer's travel across the gap
// between trigger and panel, so the panel does not flicker shut in
// transit. Checks are fire-and-forget; a stale one re-reads hover state
// when it fires and backs off if the panel should stay open.
//
// # Outside-click dismissal
//
// While visible, the controller holds one capture-phase click registration
// on the document. A click whose target lies outside both the trigger and
// the panel hides the panel; the registration is released on every hide
// and on Dispose, never leaking across show/hide cycles.
//
// # Observers
//
// Transitions can be observed by supplying an Observer in the Config.
// CallbackObserver adapts plain functions:
//
//	dd := dropdown.New(doc, button, menu, dropdown.Config{
//	    Observer: dropdown.CallbackObserver{
//	        OnShown: func(*dropdown.Dropdown) { log.Print("open") },
//	    },
//	})
//
// # Markup
//
// Controllers are usually built one by one with New. Hosts that describe
// their UI declaratively can instead mark elements with data-dropdown-*
// attributes and let the markup package construct every controller in one
// pass.
package dropdown
