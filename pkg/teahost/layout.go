package teahost

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flyout/pkg/errors"
)

// Layout is the YAML description of a screen of regions.
type Layout struct {
	Title   string         `yaml:"title"`
	Regions []LayoutRegion `yaml:"regions"`
}

// LayoutRegion describes one region of a layout. Classes and attrs map
// straight onto the region, so a layout can declare the same dropdown
// markup attributes a page would.
type LayoutRegion struct {
	ID      string            `yaml:"id"`
	Label   string            `yaml:"label"`
	X       int               `yaml:"x"`
	Y       int               `yaml:"y"`
	W       int               `yaml:"w"`
	H       int               `yaml:"h"`
	Classes []string          `yaml:"classes"`
	Attrs   map[string]string `yaml:"attrs"`
	Items   []string          `yaml:"items"`
}

// ParseLayout decodes a YAML layout document.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, nil
}

// LoadLayout reads a YAML layout file. A missing file is not an error;
// the zero layout comes back so callers can fall through to a built-in
// default.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseLayout(data)
}

// BuildHost constructs a host from a layout. A region with a duplicate
// id is reported to the error handler and skipped; the rest of the
// layout still builds. Regions without explicit dimensions are sized to
// their items.
func BuildHost(l Layout) *Host {
	h := NewHost()
	for _, lr := range l.Regions {
		if _, ok := h.byID[lr.ID]; ok {
			errors.Report(&errors.Error{
				Op:   "teahost.BuildHost",
				Kind: errors.KindLayout,
				Ref:  lr.ID,
				Err:  fmt.Errorf("duplicate region id"),
			})
			continue
		}
		r := h.NewRegion(lr.ID, lr.Label, Rect{X: lr.X, Y: lr.Y, W: lr.W, H: lr.H})
		for _, c := range lr.Classes {
			r.AddClass(c)
		}
		for name, value := range lr.Attrs {
			r.SetAttr(name, value)
		}
		if len(lr.Items) > 0 {
			r.SetItems(lr.Items)
			b := r.Bounds()
			if b.W == 0 {
				for _, item := range lr.Items {
					if w := ansi.StringWidth(item) + 2; w > b.W {
						b.W = w
					}
				}
			}
			if b.H == 0 {
				b.H = len(lr.Items)
			}
			r.SetBounds(b)
		}
	}
	return h
}
