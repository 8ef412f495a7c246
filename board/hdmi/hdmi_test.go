package hdmi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/board/hdmi"
	"github.com/gen2brain/alsa-audiotool/internal/mixertest"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

func TestMixerDefaults(t *testing.T) {
	p := hdmi.New()

	report, err := p.MixerDefaults(mixercache.New())
	require.NoError(t, err)
	assert.True(t, report.Complete())

	m := mixertest.New()
	m.AddIEC958("IEC958 Playback Default", 1)
	m.AddBool("HDMI Playback Switch", true)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	report, err = p.MixerDefaults(live)
	require.NoError(t, err)
	assert.Equal(t, []string{"IEC958 Playback Default", "HDMI Playback Switch"}, report.Missing)
	assert.ErrorIs(t, report.Err(), mixercache.ErrIncomplete)
}

func TestRoutingNotSupported(t *testing.T) {
	p := hdmi.New()

	_, _, err := p.Names(board.Playback)
	assert.ErrorIs(t, err, board.ErrNotSupported)

	_, err = p.Config(mixertest.New(), board.Playback, "Multimedia", "HDMI", true)
	assert.ErrorIs(t, err, board.ErrNotSupported)
}

func TestProbe(t *testing.T) {
	p := hdmi.New()

	assert.Equal(t, "HDMI", p.Name())
	assert.True(t, p.Probe([]alsa.SoundCard{{ID: 1, Name: "HDMI"}}))
	assert.False(t, p.Probe([]alsa.SoundCard{{ID: 0, Name: "SDP4430"}}))
}
