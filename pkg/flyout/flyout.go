// Package flyout re-exports the library's primary entry points so that
// simple programs can reach the whole dropdown surface through a single
// import. Applications with their own host implementation or custom
// positioning engine should import the underlying packages directly.
package flyout

import (
	"github.com/go-drift/flyout/pkg/dropdown"
	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/markup"
)

// Dropdown is the interaction controller for one trigger/panel pair.
// See package dropdown for the full API.
type Dropdown = dropdown.Dropdown

// Config configures a controller passed to New. The zero value selects
// the documented defaults.
type Config = dropdown.Config

// Observer receives visibility notifications from a controller.
type Observer = dropdown.Observer

// InitOptions carries the shared collaborators Init hands to every
// controller it builds.
type InitOptions = markup.Options

// Markup attribute names recognized by Init.
const (
	AttrToggle         = markup.AttrToggle
	AttrPlacement      = markup.AttrPlacement
	AttrTrigger        = markup.AttrTrigger
	AttrOffsetSkidding = markup.AttrOffsetSkidding
	AttrOffsetDistance = markup.AttrOffsetDistance
	AttrDelay          = markup.AttrDelay
)

// New constructs a dropdown controller binding a trigger element to a
// target panel inside a host document.
func New(doc host.Document, trigger, target host.Element, cfg Config) *Dropdown {
	return dropdown.New(doc, trigger, target, cfg)
}

// Init scans the document for elements carrying AttrToggle and builds a
// controller for each resolvable trigger/panel pair.
func Init(doc host.Document, opts InitOptions) []*Dropdown {
	return markup.Init(doc, opts)
}
