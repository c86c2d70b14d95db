package memdom

import (
	"testing"

	"github.com/go-drift/flyout/pkg/errors"
	"github.com/go-drift/flyout/pkg/host"
)

func TestDocument_ElementByID(t *testing.T) {
	doc := NewDocument()
	menu := doc.CreateElement("menu")
	doc.Root().Append(menu)

	if got := doc.ElementByID("menu"); got != host.Element(menu) {
		t.Errorf("ElementByID(%q) = %v, want the created element", "menu", got)
	}
	if got := doc.ElementByID("missing"); got != nil {
		t.Errorf("ElementByID(\"missing\") = %v, want nil", got)
	}
}

func TestDocument_CreateElement_DuplicateIDPanics(t *testing.T) {
	doc := NewDocument()
	doc.CreateElement("menu")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	doc.CreateElement("menu")
}

func TestDocument_ElementsByAttr_DocumentOrder(t *testing.T) {
	doc := NewDocument()
	first := doc.CreateElement("a")
	second := doc.CreateElement("b")
	inner := doc.CreateElement("c")
	first.SetAttr("data-menu", "1")
	inner.SetAttr("data-menu", "2")
	second.Append(inner)
	doc.Root().Append(first, second)

	found := doc.ElementsByAttr("data-menu")
	if len(found) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(found))
	}
	if found[0].ID() != "a" || found[1].ID() != "c" {
		t.Errorf("expected document order [a c], got [%s %s]", found[0].ID(), found[1].ID())
	}
}

func TestElement_ClassList(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("")

	el.AddClass("hidden")
	if !el.HasClass("hidden") {
		t.Error("expected class after AddClass")
	}
	el.RemoveClass("hidden")
	if el.HasClass("hidden") {
		t.Error("expected class removed after RemoveClass")
	}
	// Removing an absent class is a no-op.
	el.RemoveClass("hidden")
}

func TestElement_Contains(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("outer")
	inner := doc.CreateElement("inner")
	sibling := doc.CreateElement("sibling")
	outer.Append(inner)
	doc.Root().Append(outer, sibling)

	if !outer.Contains(outer) {
		t.Error("element should contain itself")
	}
	if !outer.Contains(inner) {
		t.Error("element should contain its descendant")
	}
	if outer.Contains(sibling) {
		t.Error("element should not contain its sibling")
	}
	if inner.Contains(outer) {
		t.Error("descendant should not contain its ancestor")
	}
}

func TestElement_On_CancelRemovesExactListener(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("btn")
	doc.Root().Append(el)

	var first, second int
	reg := el.On(host.EventClick, func(host.Event) { first++ })
	el.On(host.EventClick, func(host.Event) { second++ })

	doc.Click(el)
	reg.Cancel()
	doc.Click(el)

	if first != 1 {
		t.Errorf("canceled listener ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("surviving listener ran %d times, want 2", second)
	}
	if el.ListenerCount(host.EventClick) != 1 {
		t.Errorf("expected 1 live listener, got %d", el.ListenerCount(host.EventClick))
	}
}

func TestDocument_Click_CaptureRunsFirstThenBubbles(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("outer")
	inner := doc.CreateElement("inner")
	outer.Append(inner)
	doc.Root().Append(outer)

	var order []string
	doc.Capture(host.EventClick, func(ev host.Event) {
		order = append(order, "capture")
		if ev.Target != host.Element(inner) {
			t.Errorf("capture saw target %v, want inner", ev.Target)
		}
	})
	inner.On(host.EventClick, func(host.Event) { order = append(order, "inner") })
	outer.On(host.EventClick, func(ev host.Event) {
		order = append(order, "outer")
		// The target stays the innermost element while bubbling.
		if ev.Target != host.Element(inner) {
			t.Errorf("bubbled event target %v, want inner", ev.Target)
		}
	})

	doc.Click(inner)

	want := []string{"capture", "inner", "outer"}
	if len(order) != len(want) {
		t.Fatalf("dispatch order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("dispatch order %v, want %v", order, want)
		}
	}
}

func TestDocument_PointTo_FiresEnterLeaveAlongChain(t *testing.T) {
	doc := NewDocument()
	button := doc.CreateElement("button")
	menu := doc.CreateElement("menu")
	item := doc.CreateElement("item")
	menu.Append(item)
	doc.Root().Append(button, menu)

	var order []string
	button.On(host.EventMouseEnter, func(host.Event) { order = append(order, "enter button") })
	button.On(host.EventMouseLeave, func(host.Event) { order = append(order, "leave button") })
	menu.On(host.EventMouseEnter, func(host.Event) { order = append(order, "enter menu") })
	menu.On(host.EventMouseLeave, func(host.Event) { order = append(order, "leave menu") })
	item.On(host.EventMouseEnter, func(host.Event) { order = append(order, "enter item") })

	doc.PointTo(button)
	doc.PointTo(item)
	doc.PointTo(nil)

	want := []string{
		"enter button",
		"leave button", "enter menu", "enter item",
		"leave menu",
	}
	if len(order) != len(want) {
		t.Fatalf("event order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event order %v, want %v", order, want)
		}
	}
}

func TestElement_Hovered_TracksPointerChain(t *testing.T) {
	doc := NewDocument()
	menu := doc.CreateElement("menu")
	item := doc.CreateElement("item")
	other := doc.CreateElement("other")
	menu.Append(item)
	doc.Root().Append(menu, other)

	doc.PointTo(item)
	if !item.Hovered() {
		t.Error("item should be hovered")
	}
	if !menu.Hovered() {
		t.Error("ancestor of hovered element should be hovered")
	}
	if other.Hovered() {
		t.Error("unrelated element should not be hovered")
	}

	doc.PointTo(nil)
	if menu.Hovered() || item.Hovered() {
		t.Error("nothing should be hovered after PointTo(nil)")
	}
}

func TestDocument_Click_MovesPointer(t *testing.T) {
	doc := NewDocument()
	button := doc.CreateElement("button")
	other := doc.CreateElement("other")
	doc.Root().Append(button, other)

	doc.PointTo(other)
	doc.Click(button)

	if !button.Hovered() {
		t.Error("clicked element should be hovered")
	}
	if other.Hovered() {
		t.Error("previously hovered element should not stay hovered")
	}
}

func TestDocument_Capture_CancelStopsObserving(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("btn")
	doc.Root().Append(el)

	calls := 0
	reg := doc.Capture(host.EventClick, func(host.Event) { calls++ })

	doc.Click(el)
	reg.Cancel()
	doc.Click(el)

	if calls != 1 {
		t.Errorf("capture listener ran %d times, want 1", calls)
	}
	if doc.CaptureCount(host.EventClick) != 0 {
		t.Errorf("expected 0 capture listeners, got %d", doc.CaptureCount(host.EventClick))
	}
}

func TestDocument_Click_RecoversListenerPanic(t *testing.T) {
	var recovered *errors.PanicError
	errors.SetHandler(panicRecorder{onPanic: func(err *errors.PanicError) { recovered = err }})
	defer errors.SetHandler(nil)

	doc := NewDocument()
	el := doc.CreateElement("btn")
	doc.Root().Append(el)
	el.On(host.EventClick, func(host.Event) { panic("listener blew up") })

	doc.Click(el)

	if recovered == nil {
		t.Fatal("expected listener panic to be recovered and reported")
	}
	if recovered.Op != "memdom.Click" {
		t.Errorf("Op = %q, want %q", recovered.Op, "memdom.Click")
	}
}

type panicRecorder struct {
	onPanic func(*errors.PanicError)
}

func (r panicRecorder) HandleError(*errors.Error) {}

func (r panicRecorder) HandlePanic(err *errors.PanicError) {
	if r.onPanic != nil {
		r.onPanic(err)
	}
}
