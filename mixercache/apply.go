package mixercache

import (
	"errors"
	"fmt"
)

// Apply writes every entry back to the hardware control with the same id.
// A failing control is reported and skipped, the remaining controls are still
// written. The returned error joins every failure.
func (c *Cache) Apply(m Mixer) error {
	var errs []error
	for id := range c.entries {
		if err := c.ApplyEntry(m, id); err != nil {
			c.logger.Warn("Could not apply control", "id", id, "control", c.entries[id].Name, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ApplyEntry writes a single entry back to the hardware control with the same id.
func (c *Cache) ApplyEntry(m Mixer, id int) error {
	e, ok := c.Entry(id)
	if !ok {
		return fmt.Errorf("%w: control #%d", ErrNotFound, id)
	}

	ctl, err := m.Control(id)
	if err != nil {
		return fmt.Errorf("%w: control #%d: %w", ErrDevice, id, err)
	}

	return WriteValue(ctl, e.Value)
}

// WriteValue writes v to the slots of ctl. Enumerated values that select the
// same label in every slot are written by label in one call, otherwise each
// slot is written with its item index.
func WriteValue(ctl Control, v Value) error {
	if v == nil {
		return fmt.Errorf("%w: %s", ErrUnwritable, ctl.Name())
	}

	if k := KindOf(ctl.Type()); k != v.Kind() {
		return fmt.Errorf("%w: %s is %s, value is %s", ErrTypeMismatch, ctl.Name(), k, v.Kind())
	}

	var err error
	switch t := v.(type) {
	case Booleans:
		for i, b := range t {
			n := 0
			if b {
				n = 1
			}
			if err = ctl.SetValue(uint(i), n); err != nil {
				break
			}
		}
	case Integers:
		for i, n := range t {
			if err = ctl.SetValue(uint(i), n); err != nil {
				break
			}
		}
	case Bytes:
		for i, b := range t {
			if err = ctl.SetValue(uint(i), int(b)); err != nil {
				break
			}
		}
	case Integers64:
		for i, n := range t {
			if err = ctl.SetValue64(uint(i), n); err != nil {
				break
			}
		}
	case Enumerated:
		err = writeEnumerated(ctl, t)
	default:
		return fmt.Errorf("%w: %s", ErrUnwritable, ctl.Name())
	}

	if err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrDevice, ctl.Name(), err)
	}

	return nil
}

func writeEnumerated(ctl Control, labels Enumerated) error {
	if len(labels) == 0 {
		return nil
	}

	uniform := true
	for _, l := range labels[1:] {
		if l != labels[0] {
			uniform = false
			break
		}
	}

	if uniform {
		return ctl.SetEnumByString(labels[0])
	}

	for i, l := range labels {
		item, err := EnumIndex(ctl, l)
		if err != nil {
			return err
		}

		if err := ctl.SetValue(uint(i), int(item)); err != nil {
			return err
		}
	}

	return nil
}

// EnumIndex returns the item index of label on an enumerated control.
func EnumIndex(ctl Control, label string) (uint, error) {
	items, err := ctl.NumEnums()
	if err != nil {
		return 0, err
	}

	for i := uint(0); i < uint(items); i++ {
		s, err := ctl.EnumString(i)
		if err != nil {
			return 0, err
		}

		if s == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: enum value %q on %s", ErrNotFound, label, ctl.Name())
}
