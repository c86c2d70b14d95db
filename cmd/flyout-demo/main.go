// flyout-demo is an interactive terminal showcase for dropdown
// controllers. It renders a menu bar whose dropdowns are declared as
// markup attributes in a YAML layout: File and Edit open on click, View
// opens on hover with a configured close delay. Click outside an open
// menu to dismiss it, click an item to select it, press q to quit.
//
// Pass --layout to drive the demo from your own layout file.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/go-drift/flyout/pkg/dropdown"
	"github.com/go-drift/flyout/pkg/markup"
	"github.com/go-drift/flyout/pkg/teahost"
)

const defaultLayout = `
title: flyout demo
regions:
  - id: file-button
    label: File
    x: 2
    y: 1
    w: 8
    h: 1
    attrs:
      data-dropdown-toggle: file-menu
      data-dropdown-placement: bottom-start
      data-dropdown-offset-distance: "1"
  - id: file-menu
    classes: [hidden]
    items:
      - New Window
      - Open Recent
      - Save All
      - Close Window
  - id: edit-button
    label: Edit
    x: 12
    y: 1
    w: 8
    h: 1
    attrs:
      data-dropdown-toggle: edit-menu
      data-dropdown-placement: bottom-start
      data-dropdown-offset-distance: "1"
      data-dropdown-offset-skidding: "2"
  - id: edit-menu
    classes: [hidden]
    items:
      - Undo
      - Redo
      - Cut
      - Copy
      - Paste
  - id: view-button
    label: View
    x: 22
    y: 1
    w: 8
    h: 1
    attrs:
      data-dropdown-toggle: view-menu
      data-dropdown-placement: bottom-start
      data-dropdown-offset-distance: "1"
      data-dropdown-trigger: hover
      data-dropdown-delay: "300"
  - id: view-menu
    classes: [hidden]
    items:
      - Zoom In
      - Zoom Out
      - Full Screen
`

var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("231")).
			Bold(true)
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("250"))
)

type keyMap struct {
	Quit key.Binding
}

var defaultKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	host      *teahost.Host
	engine    *teahost.CellEngine
	dropdowns []*dropdown.Dropdown
	byTarget  map[string]*dropdown.Dropdown
	keys      keyMap
	title     string
	status    string
	width     int
	height    int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		// Resolve the item under a press before dispatch moves anything.
		var picked *teahost.Region
		pickedItem := -1
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if r := m.host.HitTest(msg.X, msg.Y); r != nil {
				if idx := r.ItemAt(msg.X, msg.Y); idx >= 0 {
					picked, pickedItem = r, idx
				}
			}
		}
		m.host.HandleMouse(msg)
		if picked != nil {
			m.status = "selected " + picked.Items()[pickedItem]
			// Inside clicks leave a dropdown open; a menu selection
			// should close it, so the page does that itself.
			if dd := m.byTarget[picked.ID()]; dd != nil {
				dd.Hide()
			}
		}

	case teahost.FuncMsg:
		msg.Fn()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.engine.Reflow()
	}
	return m, nil
}

func (m model) View() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}

	blank := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}
	lines[0] = titleStyle.Width(w).Render(" " + m.title)
	if h > 1 {
		status := m.status
		if status == "" {
			status = "click File or Edit, hover View"
		}
		lines[h-1] = statusStyle.Width(w).Render(" " + status + "  ·  q quits")
	}
	frame := strings.Join(lines, "\n")

	// Buttons first, then any open panels on top of them.
	px, py := m.host.Pointer()
	for _, r := range m.host.Regions() {
		if _, ok := r.Attr(markup.AttrToggle); ok {
			frame = teahost.SpliceRegion(frame, r, teahost.RenderButton(r, r.Hovered()))
		}
	}
	for _, r := range m.host.Regions() {
		if len(r.Items()) == 0 || r.HasClass(m.host.HiddenClass) {
			continue
		}
		frame = teahost.SpliceRegion(frame, r, teahost.RenderPanel(r, r.ItemAt(px, py)))
	}
	return frame
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var layoutPath string
	flagSet := pflag.NewFlagSet("flyout-demo", pflag.ContinueOnError)
	flagSet.StringVar(&layoutPath, "layout", "", "path to a YAML layout file (built-in demo layout when omitted)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	layout, err := teahost.ParseLayout([]byte(defaultLayout))
	if err != nil {
		return err
	}
	if layoutPath != "" {
		loaded, err := teahost.LoadLayout(layoutPath)
		if err != nil {
			return err
		}
		if len(loaded.Regions) == 0 {
			return fmt.Errorf("layout %s has no regions", layoutPath)
		}
		layout = loaded
	}

	h := teahost.BuildHost(layout)
	engine := teahost.NewCellEngine()
	clock := &teahost.ProgramClock{}

	m := model{
		host:     h,
		engine:   engine,
		byTarget: make(map[string]*dropdown.Dropdown),
		keys:     defaultKeys,
		title:    layout.Title,
	}
	if m.title == "" {
		m.title = "flyout demo"
	}
	m.dropdowns = markup.Init(h, markup.Options{Engine: engine, Clock: clock})
	for _, dd := range m.dropdowns {
		if target := dd.Target(); target != nil {
			m.byTarget[target.ID()] = dd
		}
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	clock.Send = program.Send
	_, err = program.Run()
	return err
}
