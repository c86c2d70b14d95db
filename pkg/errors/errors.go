// Package errors provides structured error reporting for the flyout library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMarkup indicates a markup scanning or resolution failure.
	KindMarkup
	// KindHost indicates a host event dispatch or lookup failure.
	KindHost
	// KindLayout indicates a layout document failure.
	KindLayout
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindHost:
		return "host"
	case KindLayout:
		return "layout"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured, recoverable error in the flyout library.
type Error struct {
	// Op is the operation that failed (e.g., "markup.Init").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Ref is the element identifier involved, if applicable.
	Ref string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s [%s] ref=%s: %v", e.Op, e.Kind, e.Ref, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "memdom.Click").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the flyout library.
type Handler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
