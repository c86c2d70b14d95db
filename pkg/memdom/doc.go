// Package memdom provides an in-memory element tree implementing the host
// interfaces.
//
// It is the reference host: a small retained tree with identifiers,
// attributes, class lists, per-element listeners, document-level capture
// listeners, and a simulated pointer. The flyout tests drive controllers
// through it, and headless embedders can use it as a model layer.
//
// Dispatch is synchronous and single-threaded: Click and PointTo run every
// affected listener before returning. A Document must only be driven from
// one goroutine.
//
//	doc := memdom.NewDocument()
//	button := doc.CreateElement("open-menu")
//	menu := doc.CreateElement("menu")
//	doc.Root().Append(button, menu)
//
//	doc.Click(button)  // dispatches click through capture, target, ancestors
//	doc.PointTo(menu)  // fires mouseleave/mouseenter along the hover chain
package memdom
