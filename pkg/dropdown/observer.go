package dropdown

// Observer receives visibility notifications from a controller.
//
// Implementations are notified after the transition's other side effects
// have run: the panel's classes, the positioning instance, and the
// outside-click registration already reflect the new state.
type Observer interface {
	// DropdownShown is called at the end of every Show.
	DropdownShown(d *Dropdown)
	// DropdownHidden is called at the end of every Hide.
	DropdownHidden(d *Dropdown)
}

// CallbackObserver adapts plain functions to the Observer interface.
// Nil fields are skipped.
type CallbackObserver struct {
	// OnShown is called when the panel is shown.
	OnShown func(*Dropdown)
	// OnHidden is called when the panel is hidden.
	OnHidden func(*Dropdown)
}

func (o CallbackObserver) DropdownShown(d *Dropdown) {
	if o.OnShown != nil {
		o.OnShown(d)
	}
}

func (o CallbackObserver) DropdownHidden(d *Dropdown) {
	if o.OnHidden != nil {
		o.OnHidden(d)
	}
}

// nopObserver is the default when no observer is configured.
type nopObserver struct{}

func (nopObserver) DropdownShown(*Dropdown)  {}
func (nopObserver) DropdownHidden(*Dropdown) {}
