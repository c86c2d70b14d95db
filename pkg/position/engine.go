package position

import "github.com/go-drift/flyout/pkg/host"

// Offset displaces the positioned element from the spot the placement
// alone would give it.
type Offset struct {
	// Skidding shifts the element along the anchor's edge.
	Skidding int
	// Distance shifts the element away from the anchor's edge.
	Distance int
}

// Options configures one attachment between an anchor and a positioned
// element.
type Options struct {
	// Placement is the preferred side and alignment.
	Placement Placement
	// Offset displaces the element from the computed spot.
	Offset Offset
	// Listeners enables the engine's reactive repositioning (tracking
	// scroll and resize) while the element is visible. Engines keep it
	// disabled for hidden elements; an invisible element needs no
	// position updates.
	Listeners bool
}

// Engine attaches positioned elements to anchor elements.
type Engine interface {
	// Attach binds target to anchor and returns the live attachment.
	// The attachment persists for the life of the pair; callers
	// reconfigure it through the returned Instance rather than
	// re-attaching.
	Attach(anchor, target host.Element, opts Options) Instance
}

// Instance is one live anchor/target attachment.
type Instance interface {
	// SetOptions applies update to the current options and reconfigures
	// the attachment accordingly.
	SetOptions(update func(*Options))
	// Update recomputes the target's position immediately.
	Update()
}

// Null returns an engine whose instances record options and do nothing
// else. It keeps controllers fully functional when no positioning engine
// is wired, for hosts that place panels themselves.
func Null() Engine {
	return nullEngine{}
}

type nullEngine struct{}

func (nullEngine) Attach(anchor, target host.Element, opts Options) Instance {
	return &nullInstance{opts: opts}
}

type nullInstance struct {
	opts Options
}

func (i *nullInstance) SetOptions(update func(*Options)) {
	update(&i.opts)
}

func (i *nullInstance) Update() {}
