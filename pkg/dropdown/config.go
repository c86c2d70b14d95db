package dropdown

import (
	"time"

	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/position"
)

// TriggerType selects which trigger interactions drive visibility.
type TriggerType int

const (
	// TriggerClick toggles the panel on trigger clicks.
	TriggerClick TriggerType = iota
	// TriggerHover shows the panel on pointer entry and hides it shortly
	// after the pointer has left both the trigger and the panel.
	TriggerHover
)

func (t TriggerType) String() string {
	switch t {
	case TriggerHover:
		return "hover"
	default:
		return "click"
	}
}

// ParseTriggerType maps a trigger-type name to its TriggerType value.
// Unrecognized names map to TriggerClick; an invalid trigger type is
// never an error.
func ParseTriggerType(s string) TriggerType {
	if s == "hover" {
		return TriggerHover
	}
	return TriggerClick
}

// Defaults applied by New when the corresponding Config field is zero.
const (
	// DefaultOffsetDistance is the distance between trigger and panel.
	DefaultOffsetDistance = 10
	// DefaultDelay is the hover-mode hide delay.
	DefaultDelay = 100 * time.Millisecond
	// DefaultHiddenClass marks the panel hidden.
	DefaultHiddenClass = "hidden"
	// DefaultVisibleClass marks the panel visible.
	DefaultVisibleClass = "block"
)

// Config customizes a controller. The zero value selects the documented
// default for every field.
type Config struct {
	// Placement is the preferred panel position relative to the trigger
	// (default position.Bottom).
	Placement position.Placement
	// Trigger selects the interaction mode (default TriggerClick). Any
	// value other than TriggerHover behaves as TriggerClick.
	Trigger TriggerType
	// OffsetSkidding shifts the panel along the trigger's edge (default 0).
	OffsetSkidding int
	// OffsetDistance shifts the panel away from the trigger
	// (0 selects DefaultOffsetDistance).
	OffsetDistance int
	// Delay is how long a hover-mode controller waits after the pointer
	// leaves before hiding (0 selects DefaultDelay).
	Delay time.Duration
	// HiddenClass is applied to the panel while hidden
	// ("" selects DefaultHiddenClass).
	HiddenClass string
	// VisibleClass is applied to the panel while visible
	// ("" selects DefaultVisibleClass).
	VisibleClass string
	// Observer receives visibility notifications (default none).
	Observer Observer
	// Engine positions the panel (default position.Null()).
	Engine position.Engine
	// Clock schedules the hover hide delay (default host.SystemClock).
	Clock host.Clock
}

// withDefaults fills zero fields with their documented defaults.
func (c Config) withDefaults() Config {
	if c.OffsetDistance == 0 {
		c.OffsetDistance = DefaultOffsetDistance
	}
	if c.Delay == 0 {
		c.Delay = DefaultDelay
	}
	if c.HiddenClass == "" {
		c.HiddenClass = DefaultHiddenClass
	}
	if c.VisibleClass == "" {
		c.VisibleClass = DefaultVisibleClass
	}
	if c.Observer == nil {
		c.Observer = nopObserver{}
	}
	if c.Engine == nil {
		c.Engine = position.Null()
	}
	if c.Clock == nil {
		c.Clock = host.SystemClock{}
	}
	return c
}
