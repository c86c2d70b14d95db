// Package host defines the surface a UI host exposes to flyout controllers.
//
// Controllers never talk to a concrete UI toolkit. They see elements through
// the [Element] interface (class list mutation, containment and hover
// queries, listener registration), look elements up through a [Document],
// and schedule deferred work through a [Clock]. A host implements these
// interfaces once; every controller then works against it unchanged. The
// repository ships two hosts: memdom (an in-memory element tree used by the
// tests and by headless embedders) and teahost (a terminal host built on
// Bubble Tea).
//
// Listener registration follows a handle-based discipline: every On or
// Capture call returns a [Registration] whose Cancel removes exactly the
// listener that call installed. Handles are safe to cancel more than once.
package host
