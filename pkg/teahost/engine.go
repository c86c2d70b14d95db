package teahost

import (
	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/position"
)

// CellEngine positions panel regions relative to their anchors in
// character cells. Placement picks the anchor side and alignment, the
// offset shifts the result, and nothing is clamped: a panel placed past
// the screen edge simply renders clipped.
type CellEngine struct {
	instances []*cellInstance
}

// NewCellEngine returns an engine with no attachments.
func NewCellEngine() *CellEngine {
	return &CellEngine{}
}

// Attach binds a target region to an anchor region. The target keeps
// its current bounds until Update is called.
func (e *CellEngine) Attach(anchor, target host.Element, opts position.Options) position.Instance {
	inst := &cellInstance{anchor: anchor, target: target, opts: opts}
	e.instances = append(e.instances, inst)
	return inst
}

// Reflow recomputes the position of every attachment whose update
// listeners are enabled, which is exactly the set that is showing.
// Call it after a terminal resize or after moving anchor regions.
func (e *CellEngine) Reflow() {
	for _, inst := range e.instances {
		if inst.opts.Listeners {
			inst.Update()
		}
	}
}

type cellInstance struct {
	anchor host.Element
	target host.Element
	opts   position.Options
}

func (i *cellInstance) SetOptions(update func(*position.Options)) {
	if update == nil {
		return
	}
	update(&i.opts)
}

// Update recomputes the target's bounds from the anchor's. Attachments
// whose anchor or target is not a Region degrade to a no-op.
func (i *cellInstance) Update() {
	anchor, ok := i.anchor.(*Region)
	if !ok {
		return
	}
	target, ok := i.target.(*Region)
	if !ok {
		return
	}
	target.SetBounds(placeRect(anchor.Bounds(), target.Bounds(), i.opts))
}

// placeRect returns the target rectangle positioned against the anchor.
// The side and distance set the main axis, the alignment and skidding
// the cross axis; width and height pass through unchanged.
func placeRect(anchor, target Rect, opts position.Options) Rect {
	out := target
	side := opts.Placement.Side()
	align := opts.Placement.Alignment()

	switch side {
	case position.SideBottom:
		out.Y = anchor.Y + anchor.H + opts.Offset.Distance
	case position.SideTop:
		out.Y = anchor.Y - target.H - opts.Offset.Distance
	case position.SideRight:
		out.X = anchor.X + anchor.W + opts.Offset.Distance
	case position.SideLeft:
		out.X = anchor.X - target.W - opts.Offset.Distance
	}

	horizontal := side == position.SideLeft || side == position.SideRight
	if horizontal {
		switch align {
		case position.AlignStart:
			out.Y = anchor.Y
		case position.AlignEnd:
			out.Y = anchor.Y + anchor.H - target.H
		default:
			out.Y = anchor.Y + (anchor.H-target.H)/2
		}
		out.Y += opts.Offset.Skidding
	} else {
		switch align {
		case position.AlignStart:
			out.X = anchor.X
		case position.AlignEnd:
			out.X = anchor.X + anchor.W - target.W
		default:
			out.X = anchor.X + (anchor.W-target.W)/2
		}
		out.X += opts.Offset.Skidding
	}
	return out
}
