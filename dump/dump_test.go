package dump_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/alsa-audiotool/dump"
	"github.com/gen2brain/alsa-audiotool/internal/mixertest"
)

var routeItems = []string{"Off", "HS DAC", "HF DAC"}

func newMixer() *mixertest.Mixer {
	m := mixertest.New()
	m.AddInt("Headset Playback Volume", 13, 15)
	m.AddBool("Earphone Playback Switch", true)
	m.AddEnum("Headset Left Playback", routeItems, "HS DAC")
	m.AddEnum("Handsfree Playback", routeItems, "HF DAC", "Off")
	m.AddIEC958("IEC958 Playback Default", 1)
	m.AddInt64("Sample Counter", 1<<40)

	return m
}

func TestSave(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Save(&buf, newMixer()))

	want := dump.Header + "\n" +
		"Headset Playback Volume\tINT\t2\t13\t15\n" +
		"Earphone Playback Switch\tBOOL\t1\t1\n" +
		"Headset Left Playback\tENUM\t1\tHS DAC\n" +
		"Handsfree Playback\tENUM\t2\tHF DAC\tOff\n" +
		"IEC958 Playback Default\tIEC958\t1\t#N/A\n" +
		"Sample Counter\tINT64\t1\t1099511627776\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveReadFailure(t *testing.T) {
	m := newMixer()
	m.AddInt("Broken", 0).FailReads()

	err := dump.Save(&bytes.Buffer{}, m)
	assert.ErrorContains(t, err, "Broken")
}

func TestRestoreRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dump.Save(&buf, newMixer()))

	m := mixertest.New()
	m.AddInt("Headset Playback Volume", 0, 0)
	m.AddBool("Earphone Playback Switch", false)
	m.AddEnum("Headset Left Playback", routeItems, "Off")
	m.AddEnum("Handsfree Playback", routeItems, "Off", "Off")
	m.AddIEC958("IEC958 Playback Default", 1)
	m.AddInt64("Sample Counter", 0)

	report, err := dump.Restore(&buf, m)
	require.NoError(t, err)
	assert.True(t, report.Complete(), "%+v", report)

	assert.Equal(t, []int64{13, 15}, m.Values("Headset Playback Volume"))
	assert.Equal(t, int64(1), m.Int("Earphone Playback Switch", 0))
	assert.Equal(t, "HS DAC", m.Enum("Headset Left Playback", 0))
	assert.Equal(t, "HF DAC", m.Enum("Handsfree Playback", 0))
	assert.Equal(t, "Off", m.Enum("Handsfree Playback", 1))
	assert.Equal(t, int64(1<<40), m.Int("Sample Counter", 0))
}

func TestRestoreReportsProblems(t *testing.T) {
	file := strings.Join([]string{
		dump.Header,
		"",
		"Headset Playback Volume\tINT\t2\t7\t#N/A",
		"Earphone Playback Switch\tINT\t1\t1",
		"Headset Left Playback\tENUM\t2\tHS DAC\tHS DAC",
		"Handsfree Playback\tENUM\t2\tLoud\tOff",
		"Vibra Playback Volume\tINT\t1\t3",
		"",
	}, "\n")

	m := newMixer()
	report, err := dump.Restore(strings.NewReader(file), m)
	require.NoError(t, err)

	assert.Equal(t, []int64{7, 15}, m.Values("Headset Playback Volume"))
	assert.Equal(t, []string{"Earphone Playback Switch", "Headset Left Playback"}, report.Mismatched)
	assert.Equal(t, []string{"Handsfree Playback"}, report.Unaccounted)
	assert.Equal(t, []string{"Vibra Playback Volume"}, report.Unapplied)
	assert.Equal(t, []string{"IEC958 Playback Default", "Sample Counter"}, report.Missing)
	assert.False(t, report.Complete())

	// Skipped lines leave the control alone.
	assert.Equal(t, int64(1), m.Int("Earphone Playback Switch", 0))
	assert.Equal(t, "HS DAC", m.Enum("Headset Left Playback", 0))
}

func TestRestorePopulateFailure(t *testing.T) {
	m := newMixer()
	m.AddInt("Broken", 0).FailReads()

	report, err := dump.Restore(strings.NewReader(dump.Header+"\n"), m)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestRestoreHashNames(t *testing.T) {
	saved := mixertest.New()
	saved.AddInt("#1 Volume", 4)
	saved.AddBool("Earphone Playback Switch", true)

	var buf bytes.Buffer
	require.NoError(t, dump.Save(&buf, saved))
	buf.WriteString("# trailing comment\t1\n#\n")

	m := mixertest.New()
	m.AddInt("#1 Volume", 0)
	m.AddBool("Earphone Playback Switch", false)

	report, err := dump.Restore(&buf, m)
	require.NoError(t, err)
	assert.True(t, report.Complete(), "%+v", report)
	assert.Equal(t, int64(4), m.Int("#1 Volume", 0))
	assert.Equal(t, int64(1), m.Int("Earphone Playback Switch", 0))
}
