package teahost

import (
	"testing"

	"github.com/go-drift/flyout/pkg/position"
)

func TestPlaceRect_SidesAndAlignments(t *testing.T) {
	anchor := Rect{X: 10, Y: 10, W: 8, H: 2}
	target := Rect{X: 0, Y: 0, W: 4, H: 3}

	cases := []struct {
		placement position.Placement
		want      Rect
	}{
		{position.Bottom, Rect{X: 12, Y: 12, W: 4, H: 3}},
		{position.BottomStart, Rect{X: 10, Y: 12, W: 4, H: 3}},
		{position.BottomEnd, Rect{X: 14, Y: 12, W: 4, H: 3}},
		{position.Top, Rect{X: 12, Y: 7, W: 4, H: 3}},
		{position.TopStart, Rect{X: 10, Y: 7, W: 4, H: 3}},
		{position.TopEnd, Rect{X: 14, Y: 7, W: 4, H: 3}},
		{position.Right, Rect{X: 18, Y: 10, W: 4, H: 3}},
		{position.RightStart, Rect{X: 18, Y: 10, W: 4, H: 3}},
		{position.RightEnd, Rect{X: 18, Y: 9, W: 4, H: 3}},
		{position.Left, Rect{X: 6, Y: 10, W: 4, H: 3}},
		{position.LeftStart, Rect{X: 6, Y: 10, W: 4, H: 3}},
		{position.LeftEnd, Rect{X: 6, Y: 9, W: 4, H: 3}},
	}
	for _, c := range cases {
		got := placeRect(anchor, target, position.Options{Placement: c.placement})
		if got != c.want {
			t.Errorf("placeRect(%v) = %v, want %v", c.placement, got, c.want)
		}
	}
}

func TestPlaceRect_Offsets(t *testing.T) {
	anchor := Rect{X: 10, Y: 10, W: 8, H: 2}
	target := Rect{W: 4, H: 3}

	got := placeRect(anchor, target, position.Options{
		Placement: position.BottomStart,
		Offset:    position.Offset{Skidding: 3, Distance: 1},
	})
	want := Rect{X: 13, Y: 13, W: 4, H: 3}
	if got != want {
		t.Fatalf("bottom-start with offset = %v, want %v", got, want)
	}

	got = placeRect(anchor, target, position.Options{
		Placement: position.RightStart,
		Offset:    position.Offset{Skidding: -1, Distance: 2},
	})
	want = Rect{X: 20, Y: 9, W: 4, H: 3}
	if got != want {
		t.Fatalf("right-start with offset = %v, want %v", got, want)
	}
}

func TestCellEngine_UpdateMovesTargetRegion(t *testing.T) {
	h := NewHost()
	anchor := h.NewRegion("anchor", "", Rect{X: 5, Y: 1, W: 6, H: 1})
	target := h.NewRegion("panel", "", Rect{X: 0, Y: 0, W: 10, H: 3})

	eng := NewCellEngine()
	inst := eng.Attach(anchor, target, position.Options{Placement: position.BottomStart})

	if target.Bounds() != (Rect{X: 0, Y: 0, W: 10, H: 3}) {
		t.Fatal("expected Attach to leave the target where it was")
	}

	inst.Update()
	want := Rect{X: 5, Y: 2, W: 10, H: 3}
	if got := target.Bounds(); got != want {
		t.Fatalf("bounds after Update = %v, want %v", got, want)
	}

	anchor.SetBounds(Rect{X: 20, Y: 4, W: 6, H: 1})
	inst.Update()
	want = Rect{X: 20, Y: 5, W: 10, H: 3}
	if got := target.Bounds(); got != want {
		t.Fatalf("bounds after anchor move = %v, want %v", got, want)
	}
}

func TestCellEngine_SetOptionsPreservesState(t *testing.T) {
	h := NewHost()
	anchor := h.NewRegion("anchor", "", Rect{W: 1, H: 1})
	target := h.NewRegion("panel", "", Rect{W: 1, H: 1})

	eng := NewCellEngine()
	inst := eng.Attach(anchor, target, position.Options{Placement: position.Top})

	inst.SetOptions(func(opts *position.Options) {
		if opts.Placement != position.Top {
			t.Errorf("updater saw placement %v, want Top", opts.Placement)
		}
		opts.Listeners = true
	})
	inst.SetOptions(func(opts *position.Options) {
		if !opts.Listeners {
			t.Error("expected Listeners flag to persist across updates")
		}
	})
	inst.SetOptions(nil)
}

func TestCellEngine_ReflowUpdatesOnlyEnabledInstances(t *testing.T) {
	h := NewHost()
	anchor := h.NewRegion("anchor", "", Rect{X: 5, Y: 5, W: 2, H: 1})
	shown := h.NewRegion("shown", "", Rect{X: 0, Y: 0, W: 2, H: 1})
	idle := h.NewRegion("idle", "", Rect{X: 0, Y: 0, W: 2, H: 1})

	eng := NewCellEngine()
	shownInst := eng.Attach(anchor, shown, position.Options{Placement: position.BottomStart})
	eng.Attach(anchor, idle, position.Options{Placement: position.BottomStart})
	shownInst.SetOptions(func(opts *position.Options) { opts.Listeners = true })

	anchor.SetBounds(Rect{X: 9, Y: 9, W: 2, H: 1})
	eng.Reflow()

	if got := shown.Bounds(); got != (Rect{X: 9, Y: 10, W: 2, H: 1}) {
		t.Errorf("enabled instance bounds = %v, want repositioned under the moved anchor", got)
	}
	if got := idle.Bounds(); got != (Rect{X: 0, Y: 0, W: 2, H: 1}) {
		t.Errorf("disabled instance bounds = %v, want untouched", got)
	}
}

func TestCellEngine_NonRegionElementsDegrade(t *testing.T) {
	eng := NewCellEngine()
	inst := eng.Attach(nil, nil, position.Options{})
	// Update with no regions attached must be a quiet no-op.
	inst.Update()
}
