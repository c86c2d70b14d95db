package host

import "time"

// Clock schedules deferred callbacks. Controllers use it for the hover
// hide delay; tests substitute a fake to control time.
type Clock interface {
	// AfterFunc runs fn after at least d has elapsed.
	AfterFunc(d time.Duration, fn func())
}

// SystemClock schedules callbacks on the runtime timer heap.
//
// Callbacks run on their own goroutine. Hosts whose event dispatch must
// stay single-threaded should provide a Clock that reschedules callbacks
// onto their event loop instead.
type SystemClock struct{}

// AfterFunc runs fn after at least d, via time.AfterFunc.
func (SystemClock) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
