package teahost

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Splice composites overlay lines over a rendered frame, with the first
// overlay line starting at cell (x, y). Truncation is ANSI-aware, so
// styling in the frame survives on both sides of the overlay, and each
// overlay line is framed with a reset so frame styling cannot bleed into
// it. Overlay lines that fall outside the frame are dropped; nothing is
// clamped.
func Splice(frame string, overlay []string, x, y int) string {
	if len(overlay) == 0 {
		return frame
	}

	frameLines := strings.Split(frame, "\n")
	for i, overlayLine := range overlay {
		row := y + i
		if row < 0 || row >= len(frameLines) {
			continue
		}

		frameLine := frameLines[row]
		frameWidth := ansi.StringWidth(frameLine)

		var spliced strings.Builder
		if x > 0 {
			prefix := ansi.Truncate(frameLine, x, "")
			spliced.WriteString(prefix)
			if pad := x - ansi.StringWidth(prefix); pad > 0 {
				spliced.WriteString(strings.Repeat(" ", pad))
			}
		}
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		after := x + ansi.StringWidth(overlayLine)
		if after < frameWidth {
			spliced.WriteString(ansi.TruncateLeft(frameLine, after, ""))
		}

		frameLines[row] = spliced.String()
	}
	return strings.Join(frameLines, "\n")
}

// SpliceRegion composites a region's rendered block over the frame at
// the region's bounds.
func SpliceRegion(frame string, r *Region, rendered string) string {
	b := r.Bounds()
	return Splice(frame, strings.Split(rendered, "\n"), b.X, b.Y)
}
