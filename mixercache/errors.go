package mixercache

import "errors"

var (
	// ErrDevice is returned when the hardware handle or one of its controls cannot be reached.
	ErrDevice = errors.New("mixer device error")
	// ErrNotFound is returned by name lookups that miss.
	ErrNotFound = errors.New("control not found")
	// ErrTypeMismatch is returned when a control kind differs from the expected one.
	ErrTypeMismatch = errors.New("control type mismatch")
	// ErrUnwritable is returned when a control kind has no writable scalar values.
	ErrUnwritable = errors.New("control is not writable")
	// ErrIncomplete is returned by Report.Err when a pass left controls unaccounted for.
	ErrIncomplete = errors.New("controls left unaccounted for")
)
