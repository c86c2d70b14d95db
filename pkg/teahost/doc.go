// Package teahost hosts flyout controllers in a Bubble Tea terminal
// program.
//
// The host models the screen as a flat list of rectangular regions, each
// implementing host.Element. Terminal mouse events feed [Host.HandleMouse],
// which translates them into the enter/leave/click events controllers
// wire against: pointer motion maintains a hovered region, and a left
// press clicks the region under the pointer. Hit testing is later-wins,
// so a panel region added after the page regions sits on top of them.
//
// [CellEngine] fills the positioning engine role in character cells. It
// supports every placement side and alignment plus offsets, and nothing
// else: no collision handling, no flipping, no viewport clamping. Panels
// render exactly where the arithmetic puts them.
//
// Rendering stays in the program's View: [Splice] composites panel lines
// over a rendered frame with ANSI-aware truncation, and the Render
// helpers draw buttons and item panels sized to their regions.
//
// A typical program builds its regions from a YAML layout, initializes
// controllers from the markup attributes the layout declares, and routes
// messages in Update:
//
//	layout, err := teahost.LoadLayout(path)
//	if err != nil {
//	    return err
//	}
//	h := teahost.BuildHost(layout)
//	eng := teahost.NewCellEngine()
//	dropdowns := markup.Init(h, markup.Options{Engine: eng, Clock: clock})
//
// Hover-mode delays must re-enter the update loop rather than fire on a
// timer goroutine; [ProgramClock] delivers them as [FuncMsg] messages.
package teahost
