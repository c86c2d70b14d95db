package teahost

import "testing"

func TestSplice_ReplacesRectangle(t *testing.T) {
	frame := "abcdefgh\nijklmnop\nqrstuvwx"
	got := Splice(frame, []string{"XX", "YY"}, 2, 1)
	want := "abcdefgh\nij\x1b[0mXX\x1b[0mmnop\nqr\x1b[0mYY\x1b[0muvwx"
	if got != want {
		t.Fatalf("Splice = %q, want %q", got, want)
	}
}

func TestSplice_AtOriginHasNoPrefix(t *testing.T) {
	got := Splice("abcdefgh", []string{"ZZ"}, 0, 0)
	want := "\x1b[0mZZ\x1b[0mcdefgh"
	if got != want {
		t.Fatalf("Splice = %q, want %q", got, want)
	}
}

func TestSplice_PadsShortFrameLines(t *testing.T) {
	got := Splice("ab", []string{"XX"}, 5, 0)
	want := "ab   \x1b[0mXX\x1b[0m"
	if got != want {
		t.Fatalf("Splice = %q, want %q", got, want)
	}
}

func TestSplice_RowsOutsideFrameAreDropped(t *testing.T) {
	got := Splice("abcd", []string{"11", "22", "33"}, 0, -1)
	want := "\x1b[0m22\x1b[0mcd"
	if got != want {
		t.Fatalf("Splice = %q, want %q", got, want)
	}
}

func TestSplice_EmptyOverlayReturnsFrame(t *testing.T) {
	frame := "abc\ndef"
	if got := Splice(frame, nil, 3, 3); got != frame {
		t.Fatalf("Splice = %q, want the frame unchanged", got)
	}
}

func TestSplice_PreservesStyledFrameEdges(t *testing.T) {
	// A styled frame line keeps its escape sequences on both sides of
	// the spliced column range.
	frame := "\x1b[31mabcdefgh\x1b[0m"
	got := Splice(frame, []string{"XX"}, 2, 0)
	prefix := "\x1b[31mab"
	if len(got) < len(prefix) || got[:len(prefix)] != prefix {
		t.Fatalf("Splice = %q, want prefix %q preserved", got, prefix)
	}
}

func TestSpliceRegion_UsesRegionBounds(t *testing.T) {
	h := NewHost()
	r := h.NewRegion("panel", "", Rect{X: 3, Y: 1, W: 2, H: 2})

	frame := "......\n......\n......"
	got := SpliceRegion(frame, r, "AA\nBB")
	want := "......\n...\x1b[0mAA\x1b[0m.\n...\x1b[0mBB\x1b[0m."
	if got != want {
		t.Fatalf("SpliceRegion = %q, want %q", got, want)
	}
}
