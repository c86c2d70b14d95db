package testing

import (
	"github.com/go-drift/flyout/pkg/host"
	"github.com/go-drift/flyout/pkg/position"
)

// RecordingEngine is a position.Engine that records every attachment made
// through it. The zero value is ready to use.
type RecordingEngine struct {
	// Instances holds the attachments in creation order.
	Instances []*RecordingInstance
}

// Attach records the attachment and returns its recording instance.
func (e *RecordingEngine) Attach(anchor, target host.Element, opts position.Options) position.Instance {
	inst := &RecordingInstance{Anchor: anchor, Target: target, Options: opts}
	e.Instances = append(e.Instances, inst)
	return inst
}

// RecordingInstance records the calls made against one attachment.
type RecordingInstance struct {
	// Anchor and Target are the elements passed to Attach.
	Anchor host.Element
	Target host.Element
	// Options reflects the attach options plus every SetOptions update.
	Options position.Options
	// SetOptionsCalls counts SetOptions invocations.
	SetOptionsCalls int
	// UpdateCalls counts Update invocations.
	UpdateCalls int
}

// SetOptions applies update to the recorded options.
func (i *RecordingInstance) SetOptions(update func(*position.Options)) {
	i.SetOptionsCalls++
	update(&i.Options)
}

// Update counts the recomputation request.
func (i *RecordingInstance) Update() {
	i.UpdateCalls++
}
