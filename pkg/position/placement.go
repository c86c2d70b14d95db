package position

// Placement identifies the preferred side of the anchor for the positioned
// element, with an optional alignment along that side.
//
// The zero value is Bottom, which is also the default placement everywhere
// a placement can be omitted.
type Placement int

const (
	// Bottom centers the element below the anchor.
	Bottom Placement = iota
	// BottomStart aligns the element below the anchor, flush with its start edge.
	BottomStart
	// BottomEnd aligns the element below the anchor, flush with its end edge.
	BottomEnd
	// Top centers the element above the anchor.
	Top
	// TopStart aligns the element above the anchor, flush with its start edge.
	TopStart
	// TopEnd aligns the element above the anchor, flush with its end edge.
	TopEnd
	// Right centers the element to the right of the anchor.
	Right
	// RightStart aligns the element to the right of the anchor, flush with its top edge.
	RightStart
	// RightEnd aligns the element to the right of the anchor, flush with its bottom edge.
	RightEnd
	// Left centers the element to the left of the anchor.
	Left
	// LeftStart aligns the element to the left of the anchor, flush with its top edge.
	LeftStart
	// LeftEnd aligns the element to the left of the anchor, flush with its bottom edge.
	LeftEnd
)

var placementNames = map[Placement]string{
	Bottom:      "bottom",
	BottomStart: "bottom-start",
	BottomEnd:   "bottom-end",
	Top:         "top",
	TopStart:    "top-start",
	TopEnd:      "top-end",
	Right:       "right",
	RightStart:  "right-start",
	RightEnd:    "right-end",
	Left:        "left",
	LeftStart:   "left-start",
	LeftEnd:     "left-end",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return "bottom"
}

// ParsePlacement maps a placement name to its Placement value.
// Unrecognized names map to Bottom; an invalid placement is never an error.
func ParsePlacement(s string) Placement {
	for p, name := range placementNames {
		if name == s {
			return p
		}
	}
	return Bottom
}

// Side is the anchor side a placement puts the element on.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideRight
	SideLeft
)

// Alignment is how a placement lines the element up along the chosen
// side.
type Alignment int

const (
	// AlignCenter centers the element on the anchor.
	AlignCenter Alignment = iota
	// AlignStart lines the element up with the anchor's start edge: the
	// left edge for top and bottom sides, the top edge for left and right
	// sides.
	AlignStart
	// AlignEnd lines the element up with the anchor's end edge.
	AlignEnd
)

// Side returns the anchor side the placement selects. Out-of-range
// placements report SideBottom, matching String.
func (p Placement) Side() Side {
	switch p {
	case Top, TopStart, TopEnd:
		return SideTop
	case Right, RightStart, RightEnd:
		return SideRight
	case Left, LeftStart, LeftEnd:
		return SideLeft
	default:
		return SideBottom
	}
}

// Alignment returns the placement's alignment along its side.
// Out-of-range placements report AlignCenter.
func (p Placement) Alignment() Alignment {
	switch p {
	case BottomStart, TopStart, RightStart, LeftStart:
		return AlignStart
	case BottomEnd, TopEnd, RightEnd, LeftEnd:
		return AlignEnd
	default:
		return AlignCenter
	}
}
