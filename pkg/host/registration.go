package host

import "sync/atomic"

// Registration represents an active listener registration.
//
// The handle is the registration's identity: canceling it removes exactly
// the listener whose installation produced it, leaving all other listeners
// in place.
type Registration struct {
	remove   func()
	canceled atomic.Bool
}

// NewRegistration wraps a removal function in a cancelable handle.
// Hosts call this from their On and Capture implementations; remove is
// invoked at most once, on the first Cancel.
func NewRegistration(remove func()) *Registration {
	return &Registration{remove: remove}
}

// Cancel removes the registered listener. Safe to call multiple times.
func (r *Registration) Cancel() {
	if r.canceled.CompareAndSwap(false, true) {
		if r.remove != nil {
			r.remove()
		}
	}
}

// IsCanceled reports whether Cancel has been called.
func (r *Registration) IsCanceled() bool {
	return r.canceled.Load()
}
