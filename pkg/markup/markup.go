// Package markup constructs dropdown controllers from attribute-annotated
// host documents.
//
// A trigger element marks itself with data-dropdown-toggle, naming the
// panel element's id. Optional sibling attributes adjust the controller's
// configuration; anything absent or unparsable falls back to the
// controller defaults. One Init pass over a document builds every
// controller the markup declares.
package markup

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-drift/flyout/pkg/dropdown"
	"github.com/go-drift/flyout/pkg/errors"
	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/position"
)

// Attributes recognized on trigger elements.
const (
	// AttrToggle marks a trigger element; its value is the panel's id.
	AttrToggle = "data-dropdown-toggle"
	// AttrPlacement names the preferred placement (see position.ParsePlacement).
	AttrPlacement = "data-dropdown-placement"
	// AttrTrigger names the interaction mode, "click" or "hover".
	AttrTrigger = "data-dropdown-trigger"
	// AttrOffsetSkidding is the along-edge offset in engine units.
	AttrOffsetSkidding = "data-dropdown-offset-skidding"
	// AttrOffsetDistance is the away-from-anchor offset in engine units.
	AttrOffsetDistance = "data-dropdown-offset-distance"
	// AttrDelay is the hover hide delay in milliseconds.
	AttrDelay = "data-dropdown-delay"
)

// Options supplies the host-level collaborators shared by every controller
// Init constructs. The zero value works; controllers fall back to their
// documented defaults.
type Options struct {
	// Engine positions every panel (default position.Null()).
	Engine position.Engine
	// Clock schedules hover hide delays (default host.SystemClock).
	Clock host.Clock
	// Observer receives visibility notifications from every controller.
	Observer dropdown.Observer
	// HiddenClass and VisibleClass override the visibility class pair.
	HiddenClass  string
	VisibleClass string
}

// Init scans doc for trigger elements carrying AttrToggle and constructs
// one controller per resolved trigger/panel pair, in document order.
//
// A toggle attribute whose id does not resolve is recoverable: the pairing
// is reported through the errors handler and skipped, and every other
// pairing still initializes.
func Init(doc host.Document, opts Options) []*dropdown.Dropdown {
	var controllers []*dropdown.Dropdown
	for _, trigger := range doc.ElementsByAttr(AttrToggle) {
		id, _ := trigger.Attr(AttrToggle)
		target := doc.ElementByID(id)
		if target == nil {
			errors.Report(&errors.Error{
				Op:   "markup.Init",
				Kind: errors.KindMarkup,
				Ref:  id,
				Err:  fmt.Errorf("dropdown target %q not found", id),
			})
			continue
		}
		controllers = append(controllers, dropdown.New(doc, trigger, target, configFor(trigger, opts)))
	}
	return controllers
}

// configFor reads the optional attributes off one trigger element.
func configFor(trigger host.Element, opts Options) dropdown.Config {
	cfg := dropdown.Config{
		Engine:       opts.Engine,
		Clock:        opts.Clock,
		Observer:     opts.Observer,
		HiddenClass:  opts.HiddenClass,
		VisibleClass: opts.VisibleClass,
	}
	if v, ok := trigger.Attr(AttrPlacement); ok {
		cfg.Placement = position.ParsePlacement(v)
	}
	if v, ok := trigger.Attr(AttrTrigger); ok {
		cfg.Trigger = dropdown.ParseTriggerType(v)
	}
	if v, ok := trigger.Attr(AttrOffsetSkidding); ok {
		cfg.OffsetSkidding = parseInt(v, 0)
	}
	if v, ok := trigger.Attr(AttrOffsetDistance); ok {
		cfg.OffsetDistance = parseInt(v, 0)
	}
	if v, ok := trigger.Attr(AttrDelay); ok {
		if ms := parseInt(v, 0); ms > 0 {
			cfg.Delay = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
