// Package mixertest provides an in-memory mixer for tests of code that drives
// hardware controls through the mixercache interfaces.
package mixertest

import (
	"errors"
	"fmt"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// ErrInjected is returned by controls configured to fail.
var ErrInjected = errors.New("injected failure")

// Write records one write issued against a control.
// Slot is -1 for a by-label enum write, which sets every slot.
type Write struct {
	Control string
	Slot    int
	Value   int64
	Label   string
}

// Mixer is an in-memory mixer. Controls keep their insertion order as ids.
type Mixer struct {
	ctls   []*Ctl
	byName map[string]*Ctl
	Writes []Write
}

// Ctl is one in-memory control. Enumerated slots hold item indexes.
type Ctl struct {
	mixer     *Mixer
	name      string
	typ       alsa.MixerCtlType
	values    []int64
	items     []string
	failRead  bool
	failWrite bool
}

// New returns an empty mixer.
func New() *Mixer {
	return &Mixer{byName: make(map[string]*Ctl)}
}

func (m *Mixer) add(name string, typ alsa.MixerCtlType, values []int64, items []string) *Ctl {
	c := &Ctl{mixer: m, name: name, typ: typ, values: values, items: items}
	m.ctls = append(m.ctls, c)
	if _, ok := m.byName[name]; !ok {
		m.byName[name] = c
	}

	return c
}

// AddBool adds a boolean control with one slot per value.
func (m *Mixer) AddBool(name string, values ...bool) *Ctl {
	raw := make([]int64, len(values))
	for i, v := range values {
		if v {
			raw[i] = 1
		}
	}

	return m.add(name, alsa.MIXER_CTL_TYPE_BOOL, raw, nil)
}

// AddInt adds an integer control with one slot per value.
func (m *Mixer) AddInt(name string, values ...int) *Ctl {
	raw := make([]int64, len(values))
	for i, v := range values {
		raw[i] = int64(v)
	}

	return m.add(name, alsa.MIXER_CTL_TYPE_INT, raw, nil)
}

// AddInt64 adds a 64-bit integer control with one slot per value.
func (m *Mixer) AddInt64(name string, values ...int64) *Ctl {
	return m.add(name, alsa.MIXER_CTL_TYPE_INT64, append([]int64(nil), values...), nil)
}

// AddByte adds a byte control with one slot per value.
func (m *Mixer) AddByte(name string, values ...byte) *Ctl {
	raw := make([]int64, len(values))
	for i, v := range values {
		raw[i] = int64(v)
	}

	return m.add(name, alsa.MIXER_CTL_TYPE_BYTE, raw, nil)
}

// AddEnum adds an enumerated control over items with one slot per selected label.
// It panics on a label that is not an item, which is a broken test fixture.
func (m *Mixer) AddEnum(name string, items []string, selected ...string) *Ctl {
	raw := make([]int64, len(selected))
	for i, s := range selected {
		idx := indexOf(items, s)
		if idx < 0 {
			panic(fmt.Sprintf("mixertest: %q is not an item of %s", s, name))
		}
		raw[i] = int64(idx)
	}

	return m.add(name, alsa.MIXER_CTL_TYPE_ENUM, raw, append([]string(nil), items...))
}

// AddIEC958 adds a control of a kind without scalar values.
func (m *Mixer) AddIEC958(name string, count int) *Ctl {
	return m.add(name, alsa.MIXER_CTL_TYPE_IEC958, make([]int64, count), nil)
}

// FailReads makes every read of the control fail.
func (c *Ctl) FailReads() *Ctl {
	c.failRead = true
	return c
}

// FailWrites makes every write to the control fail.
func (c *Ctl) FailWrites() *Ctl {
	c.failWrite = true
	return c
}

// NumCtls implements mixercache.Mixer.
func (m *Mixer) NumCtls() int {
	return len(m.ctls)
}

// Control implements mixercache.Mixer.
func (m *Mixer) Control(index int) (mixercache.Control, error) {
	if index < 0 || index >= len(m.ctls) {
		return nil, fmt.Errorf("index %d out of bounds (number of controls: %d)", index, len(m.ctls))
	}

	return m.ctls[index], nil
}

// ControlByName implements mixercache.Mixer.
func (m *Mixer) ControlByName(name string) (mixercache.Control, error) {
	c, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("control not found: %s", name)
	}

	return c, nil
}

// Int returns the raw value of a slot. Enumerated slots return the item index.
func (m *Mixer) Int(name string, slot int) int64 {
	return m.byName[name].values[slot]
}

// Enum returns the label selected in a slot of an enumerated control.
func (m *Mixer) Enum(name string, slot int) string {
	c := m.byName[name]
	return c.items[c.values[slot]]
}

// Values returns a copy of the raw slots of a control.
func (m *Mixer) Values(name string) []int64 {
	return append([]int64(nil), m.byName[name].values...)
}

// ResetWrites clears the write log.
func (m *Mixer) ResetWrites() {
	m.Writes = nil
}

func (c *Ctl) Name() string {
	return c.name
}

func (c *Ctl) Type() alsa.MixerCtlType {
	return c.typ
}

func (c *Ctl) NumValues() uint32 {
	return uint32(len(c.values))
}

func (c *Ctl) Value64(index uint) (int64, error) {
	if err := c.check(index, c.failRead); err != nil {
		return 0, err
	}

	return c.values[index], nil
}

func (c *Ctl) Value(index uint) (int, error) {
	v, err := c.Value64(index)

	return int(v), err
}

func (c *Ctl) SetValue64(index uint, value int64) error {
	if err := c.check(index, c.failWrite); err != nil {
		return err
	}

	switch c.typ {
	case alsa.MIXER_CTL_TYPE_BOOL:
		if value != 0 {
			value = 1
		}
	case alsa.MIXER_CTL_TYPE_ENUM:
		if value < 0 || value >= int64(len(c.items)) {
			return fmt.Errorf("enum item %d out of bounds for %s", value, c.name)
		}
	case alsa.MIXER_CTL_TYPE_IEC958:
		return fmt.Errorf("unsupported control type %s for %s", c.typ, c.name)
	}

	c.values[index] = value
	c.mixer.Writes = append(c.mixer.Writes, Write{Control: c.name, Slot: int(index), Value: value})

	return nil
}

func (c *Ctl) SetValue(index uint, value int) error {
	return c.SetValue64(index, int64(value))
}

func (c *Ctl) NumEnums() (uint32, error) {
	if c.typ != alsa.MIXER_CTL_TYPE_ENUM {
		return 0, fmt.Errorf("control %s is not an enumerated control", c.name)
	}

	return uint32(len(c.items)), nil
}

func (c *Ctl) EnumString(item uint) (string, error) {
	if c.typ != alsa.MIXER_CTL_TYPE_ENUM {
		return "", fmt.Errorf("control %s is not an enumerated control", c.name)
	}

	if item >= uint(len(c.items)) {
		return "", fmt.Errorf("enum item %d out of bounds for %s", item, c.name)
	}

	return c.items[item], nil
}

func (c *Ctl) SetEnumByString(value string) error {
	if c.typ != alsa.MIXER_CTL_TYPE_ENUM {
		return fmt.Errorf("control %s is not an enumerated control", c.name)
	}

	if c.failWrite {
		return fmt.Errorf("%s: %w", c.name, ErrInjected)
	}

	idx := indexOf(c.items, value)
	if idx < 0 {
		return fmt.Errorf("enum value %q not found for %s", value, c.name)
	}

	for i := range c.values {
		c.values[i] = int64(idx)
	}
	c.mixer.Writes = append(c.mixer.Writes, Write{Control: c.name, Slot: -1, Value: int64(idx), Label: value})

	return nil
}

func (c *Ctl) check(index uint, fail bool) error {
	if fail {
		return fmt.Errorf("%s: %w", c.name, ErrInjected)
	}

	if index >= uint(len(c.values)) {
		return fmt.Errorf("index %d out of bounds for %s (%d values)", index, c.name, len(c.values))
	}

	return nil
}

func indexOf(items []string, s string) int {
	for i, it := range items {
		if it == s {
			return i
		}
	}

	return -1
}
