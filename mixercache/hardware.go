package mixercache

import (
	alsa "github.com/gen2brain/alsa-audiotool"
)

// Control is the subset of a hardware mixer control the cache reads and writes.
// *alsa.MixerCtl satisfies it.
type Control interface {
	Name() string
	Type() alsa.MixerCtlType
	NumValues() uint32
	Value(index uint) (int, error)
	SetValue(index uint, value int) error
	Value64(index uint) (int64, error)
	SetValue64(index uint, value int64) error
	NumEnums() (uint32, error)
	EnumString(item uint) (string, error)
	SetEnumByString(value string) error
}

// Mixer is an opened hardware mixer whose controls are addressed by enumeration index.
type Mixer interface {
	NumCtls() int
	Control(index int) (Control, error)
	ControlByName(name string) (Control, error)
}

type hardware struct {
	mixer *alsa.Mixer
}

// Hardware adapts an opened ALSA mixer to the Mixer interface.
func Hardware(m *alsa.Mixer) Mixer {
	return &hardware{mixer: m}
}

func (h *hardware) NumCtls() int {
	return h.mixer.NumCtls()
}

func (h *hardware) Control(index int) (Control, error) {
	if index < 0 {
		return nil, ErrNotFound
	}

	ctl, err := h.mixer.CtlByIndex(uint(index))
	if err != nil {
		return nil, err
	}

	return ctl, nil
}

func (h *hardware) ControlByName(name string) (Control, error) {
	ctl, err := h.mixer.CtlByName(name)
	if err != nil {
		return nil, err
	}

	return ctl, nil
}
