// Package mixercache snapshots the controls of a sound card mixer, reconciles
// them against static default tables and writes them back to the hardware.
//
// A Cache is an ordered list of ControlDescriptors. The position of an entry is
// its id for the lifetime of the snapshot, so ids are only meaningful within the
// cache that produced them. Lookups across caches always go through names.
package mixercache

import (
	"fmt"

	"github.com/gen2brain/alsa-audiotool/internal/logging"
)

// Slot capacities per kind. Hardware slots beyond these are truncated.
const (
	MaxEnumValues      = 8
	MaxIntegerValues   = 128
	MaxInteger64Values = 64
	MaxByteValues      = 512
)

// ControlDescriptor is one mixer control as recorded in a cache.
type ControlDescriptor struct {
	ID      int
	Name    string
	Kind    Kind
	Count   int
	Value   Value // nil for KindUnknown
	Touched bool
}

// Cache is an ordered snapshot of mixer controls. It is not safe for concurrent use.
type Cache struct {
	entries   []ControlDescriptor
	maxValues int
	logger    logging.Logger
}

// New returns an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		logger: logging.GetLogger("mixercache"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Entry returns the entry with the given id. The pointer stays valid until the next Populate.
func (c *Cache) Entry(id int) (*ControlDescriptor, bool) {
	if id < 0 || id >= len(c.entries) {
		return nil, false
	}

	return &c.entries[id], true
}

// Entries returns a copy of all entries in id order.
func (c *Cache) Entries() []ControlDescriptor {
	out := make([]ControlDescriptor, len(c.entries))
	for i, e := range c.entries {
		out[i] = e
		if e.Value != nil {
			out[i].Value = e.Value.Clone()
		}
	}

	return out
}

// Capacity returns the number of slots the cache records for a control of kind k.
func (c *Cache) Capacity(k Kind) int {
	var limit int
	switch k {
	case KindEnumerated:
		limit = MaxEnumValues
	case KindBoolean, KindInteger:
		limit = MaxIntegerValues
	case KindInteger64:
		limit = MaxInteger64Values
	case KindByte:
		limit = MaxByteValues
	default:
		limit = MaxIntegerValues
	}

	if c.maxValues > 0 && c.maxValues < limit {
		return c.maxValues
	}

	return limit
}

// Add appends a descriptor and returns its id. The value is copied and resized
// to the descriptor's count, which is capped to the cache capacity.
// It is how static default tables are built.
func (c *Cache) Add(d ControlDescriptor) int {
	d.ID = len(c.entries)
	d.Touched = false

	if d.Count > c.Capacity(d.Kind) {
		d.Count = c.Capacity(d.Kind)
	}

	if d.Value != nil {
		if d.Count <= 0 {
			d.Count = min(d.Value.Len(), c.Capacity(d.Kind))
		}
		d.Value = Resize(d.Value, d.Count)
	}

	c.entries = append(c.entries, d)

	return d.ID
}

// Populate replaces the contents of the cache with every control of the mixer,
// reading back the current value of each. Ids equal the enumeration index.
// On failure the cache is left empty.
func (c *Cache) Populate(m Mixer) error {
	c.entries = nil

	count := m.NumCtls()
	entries := make([]ControlDescriptor, 0, count)

	for id := 0; id < count; id++ {
		ctl, err := m.Control(id)
		if err != nil {
			return fmt.Errorf("%w: control #%d: %w", ErrDevice, id, err)
		}

		name := ctl.Name()
		if name == "" {
			return fmt.Errorf("%w: control #%d has no name", ErrDevice, id)
		}

		kind := KindOf(ctl.Type())
		n := min(int(ctl.NumValues()), c.Capacity(kind))

		value, err := readValue(ctl, kind, n)
		if err != nil {
			return fmt.Errorf("%w: reading %s: %w", ErrDevice, name, err)
		}

		entries = append(entries, ControlDescriptor{
			ID:    id,
			Name:  name,
			Kind:  kind,
			Count: n,
			Value: value,
		})
	}

	c.entries = entries
	c.logger.Debug("Populated mixer cache", "controls", len(entries))

	return nil
}

// IDByName returns the id of the entry with exactly the given name.
func (c *Cache) IDByName(name string) (int, error) {
	for i := range c.entries {
		if c.entries[i].Name == name {
			return c.entries[i].ID, nil
		}
	}

	return -1, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ResetTouch clears every touched flag.
func (c *Cache) ResetTouch() {
	for i := range c.entries {
		c.entries[i].Touched = false
	}
}

// Touch marks one entry as touched. Out of range ids are ignored.
func (c *Cache) Touch(id int) {
	if id < 0 || id >= len(c.entries) {
		return
	}

	c.entries[id].Touched = true
}

// Untouched returns the names of the entries not touched since the last ResetTouch, in id order.
func (c *Cache) Untouched() []string {
	var names []string
	for _, e := range c.entries {
		if !e.Touched {
			names = append(names, e.Name)
		}
	}

	return names
}

// AuditTouch reports whether every entry was touched. When verbose, each
// untouched entry is logged as a warning.
func (c *Cache) AuditTouch(verbose bool) bool {
	complete := true
	for _, e := range c.entries {
		if e.Touched {
			continue
		}

		complete = false
		if verbose {
			c.logger.Warn("Control was not touched", "id", e.ID, "control", e.Name)
		}
	}

	return complete
}

func readValue(ctl Control, kind Kind, n int) (Value, error) {
	switch kind {
	case KindBoolean:
		out := make(Booleans, n)
		for i := range out {
			v, err := ctl.Value(uint(i))
			if err != nil {
				return nil, err
			}
			out[i] = v != 0
		}

		return out, nil
	case KindInteger:
		out := make(Integers, n)
		for i := range out {
			v, err := ctl.Value(uint(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	case KindEnumerated:
		out := make(Enumerated, n)
		for i := range out {
			item, err := ctl.Value(uint(i))
			if err != nil {
				return nil, err
			}

			label, err := ctl.EnumString(uint(item))
			if err != nil {
				return nil, err
			}
			out[i] = label
		}

		return out, nil
	case KindByte:
		out := make(Bytes, n)
		for i := range out {
			v, err := ctl.Value(uint(i))
			if err != nil {
				return nil, err
			}
			out[i] = byte(v)
		}

		return out, nil
	case KindInteger64:
		out := make(Integers64, n)
		for i := range out {
			v, err := ctl.Value64(uint(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	default:
		return nil, nil
	}
}
