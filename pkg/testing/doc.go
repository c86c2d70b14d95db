// Package testing provides test instrumentation for flyout controllers.
//
// # Controlling time
//
// Hover-mode controllers schedule their hide check on a clock. Substitute
// a [FakeClock] and advance it to drive the delay deterministically:
//
//	clk := flytest.NewFakeClock()
//	dd := dropdown.New(doc, trigger, target, dropdown.Config{
//	    Trigger: dropdown.TriggerHover,
//	    Clock:   clk,
//	})
//
//	doc.PointTo(trigger)             // shows
//	doc.PointTo(nil)                 // schedules the hide check
//	clk.Advance(100 * time.Millisecond)
//
// # Observing the positioning contract
//
// A [RecordingEngine] stands in for a real positioning engine and records
// every attachment, option change, and update request:
//
//	eng := &flytest.RecordingEngine{}
//	dd := dropdown.New(doc, trigger, target, dropdown.Config{Engine: eng})
//	dd.Show()
//	inst := eng.Instances[0]  // inst.Options.Listeners is now true
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import flytest "github.com/go-drift/flyout/pkg/testing"
package testing
