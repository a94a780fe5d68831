package dispatch

import "errors"

var (
	// ErrAlreadyDispatched is returned when a second outcome is attempted on
	// a dispatcher that has already produced its response.
	ErrAlreadyDispatched = errors.New("dispatch: outcome already dispatched")

	// ErrNilHandler is returned when Forward is called with a nil handler.
	ErrNilHandler = errors.New("dispatch: nil handler")

	// ErrNilComponent is returned when RenderPage is called with a nil component.
	ErrNilComponent = errors.New("dispatch: nil component")

	// ErrUnsafeRedirect is returned when a redirect target points at a
	// different host than the current request.
	ErrUnsafeRedirect = errors.New("dispatch: unsafe redirect target")
)
