package board

import (
	"fmt"

	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

func logger() logging.Logger {
	return logging.GetLogger("board")
}

// Activate enables or disables the path from frontend to backend. The frontend
// route is applied first and the backend route only when the first stage
// succeeded. Settings already written are not rolled back on failure.
// It returns the PCM port of the frontend.
func Activate(m mixercache.Mixer, table *RouteTable, frontend, backend string, enable bool) (int, error) {
	if err := table.Validate(frontend, backend); err != nil {
		return 0, err
	}

	if err := ApplyRoute(m, table.FrontendRoute(frontend, backend), enable); err != nil {
		return 0, fmt.Errorf("frontend %s: %w", frontend, err)
	}

	if err := ApplyRoute(m, table.BackendRoute(backend), enable); err != nil {
		return 0, fmt.Errorf("backend %s: %w", backend, err)
	}

	logger().Debug("Route configured", "frontend", frontend, "backend", backend, "enable", enable)

	return table.Port(frontend), nil
}

// ApplyRoute writes every setting of the route in order. All controls are
// resolved before the first write, so a missing control writes nothing.
func ApplyRoute(m mixercache.Mixer, route Route, enable bool) error {
	ctls := make([]mixercache.Control, len(route))
	for i, s := range route {
		ctl, err := m.ControlByName(s.Control)
		if err != nil {
			return fmt.Errorf("%w: %w: %s", ErrInvalidArgument, mixercache.ErrNotFound, s.Control)
		}

		if err := checkKind(ctl, s); err != nil {
			return err
		}

		ctls[i] = ctl
	}

	for i, s := range route {
		if err := writeSetting(ctls[i], s, enable); err != nil {
			return fmt.Errorf("%w: %s: %w", mixercache.ErrDevice, s.Control, err)
		}
	}

	return nil
}

func checkKind(ctl mixercache.Control, s Setting) error {
	kind := mixercache.KindOf(ctl.Type())
	if kind == mixercache.KindUnknown || s.IsEnum() != (kind == mixercache.KindEnumerated) {
		return fmt.Errorf("%w: %w: %s is %s", ErrInvalidArgument, mixercache.ErrTypeMismatch, s.Control, kind)
	}

	return nil
}

func writeSetting(ctl mixercache.Control, s Setting, enable bool) error {
	if s.IsEnum() {
		label := s.Enum
		if !enable {
			label = s.OffLabel()
		}

		logger().Debug("Set control", "control", s.Control, "value", label)

		return ctl.SetEnumByString(label)
	}

	value := 0
	if enable {
		value = s.Value
	}

	logger().Debug("Set control", "control", s.Control, "value", value)

	for slot := uint(0); slot < uint(ctl.NumValues()); slot++ {
		if err := ctl.SetValue(slot, value); err != nil {
			return err
		}
	}

	return nil
}
