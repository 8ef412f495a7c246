package board

import "errors"

var (
	// ErrInvalidArgument is returned for unknown directions, frontends, backends or route controls.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedHardware is returned when no known capability variant matches the live controls.
	ErrUnsupportedHardware = errors.New("unsupported hardware")
	// ErrNotSupported is returned by profiles that have no routing.
	ErrNotSupported = errors.New("operation not supported by profile")
	// ErrNoProfile is returned when no registered profile matches.
	ErrNoProfile = errors.New("no board profile")
)
