package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/internal/mixertest"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

var (
	playItems = []string{"Off", "HS DAC", "HF DAC"}
	muxItems  = []string{"None", "AMic0", "AMic1"}
)

func newTable() *board.RouteTable {
	return &board.RouteTable{
		Frontends: []string{"Multimedia", "Voice"},
		Backends:  []string{"Headset", "Handsfree"},
		Ports:     map[string]int{"Multimedia": 0, "Voice": 2},
		Paths: map[board.PathKey]board.Route{
			{Frontend: "Multimedia"}: {
				board.Int("DL1 Mixer Multimedia", 1),
				board.Int("DL1 Media Playback Volume", 118),
			},
			{Frontend: "Multimedia", Backend: "Handsfree"}: {
				board.Int("DL2 Mixer Multimedia", 1),
			},
			{Frontend: "Voice"}: {
				board.EnumOff("MUX_VX0", "AMic0", "None"),
			},
		},
		Outputs: map[string]board.Route{
			"Headset": {
				board.Enum("Headset Left Playback", "HS DAC"),
				board.Int("Headset Playback Volume", 15),
			},
			"Handsfree": {
				board.Enum("Handsfree Left Playback", "HF DAC"),
			},
		},
	}
}

func newMixer() *mixertest.Mixer {
	m := mixertest.New()
	m.AddBool("DL1 Mixer Multimedia", false)
	m.AddInt("DL1 Media Playback Volume", 0)
	m.AddBool("DL2 Mixer Multimedia", false)
	m.AddEnum("MUX_VX0", muxItems, "None")
	m.AddEnum("Headset Left Playback", playItems, "Off")
	m.AddInt("Headset Playback Volume", 0, 0)
	m.AddEnum("Handsfree Left Playback", playItems, "Off")

	return m
}

func TestActivateEnableDisable(t *testing.T) {
	m := newMixer()
	table := newTable()

	port, err := board.Activate(m, table, "Multimedia", "Headset", true)
	require.NoError(t, err)
	assert.Equal(t, 0, port)

	assert.Equal(t, int64(1), m.Int("DL1 Mixer Multimedia", 0))
	assert.Equal(t, int64(118), m.Int("DL1 Media Playback Volume", 0))
	assert.Equal(t, "HS DAC", m.Enum("Headset Left Playback", 0))
	assert.Equal(t, []int64{15, 15}, m.Values("Headset Playback Volume"), "scalars are written to every slot")
	assert.Equal(t, int64(0), m.Int("DL2 Mixer Multimedia", 0), "the wildcard path must not use the handsfree route")

	// Frontend settings are written before backend settings.
	require.NotEmpty(t, m.Writes)
	assert.Equal(t, "DL1 Mixer Multimedia", m.Writes[0].Control)
	assert.Equal(t, "Headset Playback Volume", m.Writes[len(m.Writes)-1].Control)

	_, err = board.Activate(m, table, "Multimedia", "Headset", false)
	require.NoError(t, err)

	assert.Equal(t, int64(0), m.Int("DL1 Mixer Multimedia", 0))
	assert.Equal(t, int64(0), m.Int("DL1 Media Playback Volume", 0))
	assert.Equal(t, "Off", m.Enum("Headset Left Playback", 0))
	assert.Equal(t, []int64{0, 0}, m.Values("Headset Playback Volume"))
}

func TestActivateExactPathWins(t *testing.T) {
	m := newMixer()

	_, err := board.Activate(m, newTable(), "Multimedia", "Handsfree", true)
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.Int("DL2 Mixer Multimedia", 0))
	assert.Equal(t, int64(0), m.Int("DL1 Mixer Multimedia", 0))
	assert.Equal(t, "HF DAC", m.Enum("Handsfree Left Playback", 0))
}

func TestActivateCustomOffLabel(t *testing.T) {
	m := newMixer()
	table := newTable()

	port, err := board.Activate(m, table, "Voice", "Handsfree", true)
	require.NoError(t, err)
	assert.Equal(t, 2, port)
	assert.Equal(t, "AMic0", m.Enum("MUX_VX0", 0))

	_, err = board.Activate(m, table, "Voice", "Handsfree", false)
	require.NoError(t, err)
	assert.Equal(t, "None", m.Enum("MUX_VX0", 0))
}

func TestActivateUnknownNames(t *testing.T) {
	m := newMixer()
	table := newTable()

	_, err := board.Activate(m, table, "Ringtone", "Headset", true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)

	_, err = board.Activate(m, table, "Multimedia", "Speaker", true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)

	assert.Empty(t, m.Writes, "unknown names must not write any control")
}

func TestActivateMissingControlStopsBeforeBackend(t *testing.T) {
	m := mixertest.New()
	m.AddBool("DL1 Mixer Multimedia", false)
	m.AddEnum("Headset Left Playback", playItems, "Off")
	m.AddInt("Headset Playback Volume", 0)

	_, err := board.Activate(m, newTable(), "Multimedia", "Headset", true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)
	assert.ErrorIs(t, err, mixercache.ErrNotFound)
	assert.Contains(t, err.Error(), "DL1 Media Playback Volume")

	assert.Empty(t, m.Writes, "neither stage may write when the frontend route is incomplete")
}

func TestActivateNoRollback(t *testing.T) {
	m := mixertest.New()
	m.AddBool("DL1 Mixer Multimedia", false)
	m.AddInt("DL1 Media Playback Volume", 0)
	m.AddEnum("Headset Left Playback", playItems, "Off")

	_, err := board.Activate(m, newTable(), "Multimedia", "Headset", true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)

	assert.Equal(t, int64(1), m.Int("DL1 Mixer Multimedia", 0), "the frontend stage stays applied")
	assert.Equal(t, "Off", m.Enum("Headset Left Playback", 0))
}

func TestActivateDeviceError(t *testing.T) {
	m := newMixer()
	m.AddEnum("Spare", playItems, "Off").FailWrites()
	table := newTable()
	table.Outputs["Headset"] = board.Route{board.Enum("Spare", "HS DAC")}

	_, err := board.Activate(m, table, "Multimedia", "Headset", true)
	assert.ErrorIs(t, err, mixercache.ErrDevice)
}

func TestActivateKindMismatch(t *testing.T) {
	m := newMixer()
	route := board.Route{board.Enum("Headset Playback Volume", "HS DAC")}

	err := board.ApplyRoute(m, route, true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)
	assert.ErrorIs(t, err, mixercache.ErrTypeMismatch)

	err = board.ApplyRoute(m, board.Route{board.Int("MUX_VX0", 1)}, true)
	assert.ErrorIs(t, err, mixercache.ErrTypeMismatch)
}
