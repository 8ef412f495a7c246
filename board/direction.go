package board

import "fmt"

// Direction is the stream direction a route table belongs to.
type Direction int

const (
	Playback Direction = iota
	Capture
)

// String returns the command line name of the direction.
func (d Direction) String() string {
	switch d {
	case Playback:
		return "play"
	case Capture:
		return "cap"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts the command line names "play" and "cap".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "play", "playback":
		return Playback, nil
	case "cap", "capture":
		return Capture, nil
	default:
		return 0, fmt.Errorf("%w: %q is not 'play' or 'cap'", ErrInvalidArgument, s)
	}
}

// ParseEnable accepts "1", "0", "enable" and "disable".
func ParseEnable(s string) (bool, error) {
	switch s {
	case "1", "enable":
		return true, nil
	case "0", "disable":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not '0', '1', 'disable', or 'enable'", ErrInvalidArgument, s)
	}
}
