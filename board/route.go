package board

import (
	"fmt"
	"slices"
)

// DefaultOffLabel is the enum label written when an enumerated setting is disabled.
const DefaultOffLabel = "Off"

// Setting is one control write of a route. An enumerated setting selects Enum
// when enabled and Off (DefaultOffLabel when empty) when disabled. A scalar
// setting writes Value to every slot when enabled and zero when disabled.
type Setting struct {
	Control string
	Enum    string
	Value   int
	Off     string
}

// IsEnum reports whether the setting selects an enum label.
func (s Setting) IsEnum() bool {
	return s.Enum != ""
}

// OffLabel returns the label written when the setting is disabled.
func (s Setting) OffLabel() string {
	if s.Off != "" {
		return s.Off
	}

	return DefaultOffLabel
}

// Int builds a scalar setting.
func Int(control string, value int) Setting {
	return Setting{Control: control, Value: value}
}

// Enum builds an enumerated setting disabled with "Off".
func Enum(control, label string) Setting {
	return Setting{Control: control, Enum: label}
}

// EnumOff builds an enumerated setting with its own disabled label.
func EnumOff(control, label, off string) Setting {
	return Setting{Control: control, Enum: label, Off: off}
}

// Route is an ordered list of settings applied together.
type Route []Setting

// PathKey selects a frontend route. An empty Backend matches every backend
// that has no route of its own.
type PathKey struct {
	Frontend string
	Backend  string
}

// RouteTable holds the routes of one direction.
type RouteTable struct {
	Frontends []string
	Backends  []string
	// Ports maps a frontend to the PCM port it is played or captured on.
	Ports map[string]int
	// Paths holds the frontend side routes.
	Paths map[PathKey]Route
	// Outputs holds the backend side routes, keyed by backend.
	Outputs map[string]Route
}

// Validate checks that both names belong to the table.
func (t *RouteTable) Validate(frontend, backend string) error {
	if !slices.Contains(t.Frontends, frontend) {
		return fmt.Errorf("%w: '%s' is not a supported frontend", ErrInvalidArgument, frontend)
	}

	if !slices.Contains(t.Backends, backend) {
		return fmt.Errorf("%w: '%s' is not a supported backend", ErrInvalidArgument, backend)
	}

	return nil
}

// FrontendRoute returns the route of the frontend towards the backend. An exact
// (frontend, backend) entry wins over the frontend wildcard.
func (t *RouteTable) FrontendRoute(frontend, backend string) Route {
	if r, ok := t.Paths[PathKey{Frontend: frontend, Backend: backend}]; ok {
		return r
	}

	return t.Paths[PathKey{Frontend: frontend}]
}

// BackendRoute returns the route of the backend, independent of the frontend.
func (t *RouteTable) BackendRoute(backend string) Route {
	return t.Outputs[backend]
}

// Port returns the PCM port of the frontend.
func (t *RouteTable) Port(frontend string) int {
	return t.Ports[frontend]
}

// Controls returns the distinct control names used by the table, in first use order.
func (t *RouteTable) Controls() []string {
	var names []string
	add := func(r Route) {
		for _, s := range r {
			if !slices.Contains(names, s.Control) {
				names = append(names, s.Control)
			}
		}
	}

	for _, fe := range t.Frontends {
		for _, be := range t.Backends {
			add(t.FrontendRoute(fe, be))
		}
	}

	for _, be := range t.Backends {
		add(t.BackendRoute(be))
	}

	return names
}

// RouteSet holds the route tables of both directions.
type RouteSet struct {
	Playback *RouteTable
	Capture  *RouteTable
}

// Table returns the table of the direction.
func (s RouteSet) Table(dir Direction) (*RouteTable, error) {
	var t *RouteTable
	switch dir {
	case Playback:
		t = s.Playback
	case Capture:
		t = s.Capture
	default:
		return nil, fmt.Errorf("%w: direction %s", ErrInvalidArgument, dir)
	}

	if t == nil {
		return nil, fmt.Errorf("%w: no %s routes", ErrNotSupported, dir)
	}

	return t, nil
}

// Names returns the frontends and backends of the direction.
func (s RouteSet) Names(dir Direction) (frontends, backends []string, err error) {
	t, err := s.Table(dir)
	if err != nil {
		return nil, nil, err
	}

	return slices.Clone(t.Frontends), slices.Clone(t.Backends), nil
}
