package mixercache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/alsa-audiotool/internal/mixertest"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

func TestReconcilePartial(t *testing.T) {
	m := mixertest.New()
	m.AddInt("Volume A", 0, 0)
	m.AddBool("Volume B", false)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	defaults := mixercache.New()
	defaults.Add(mixercache.ControlDescriptor{Name: "Volume A", Kind: mixercache.KindInteger, Count: 2, Value: mixercache.Int(118, 118)})

	report := mixercache.Reconcile(live, defaults)
	require.NotNil(t, report)

	e, _ := live.Entry(0)
	assert.Equal(t, mixercache.Integers{118, 118}, e.Value)
	assert.True(t, e.Touched)

	d, _ := defaults.Entry(0)
	assert.True(t, d.Touched)

	assert.Equal(t, []string{"Volume B"}, report.Missing)
	assert.Empty(t, report.Mismatched)
	assert.Empty(t, report.Unapplied)
	assert.False(t, report.Complete())
	assert.ErrorIs(t, report.Err(), mixercache.ErrIncomplete)
	assert.False(t, live.AuditTouch(false))
}

func TestReconcileMismatchAndUnapplied(t *testing.T) {
	m := mixertest.New()
	m.AddEnum("Headset Left Playback", routeItems, "Off")
	m.AddInt("Earphone Playback Volume", 3)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	defaults := mixercache.New()
	defaults.Add(mixercache.ControlDescriptor{Name: "Headset Left Playback", Kind: mixercache.KindInteger, Value: mixercache.Int(1)})
	defaults.Add(mixercache.ControlDescriptor{Name: "Earphone Playback Volume", Kind: mixercache.KindInteger, Value: mixercache.Int(14)})
	defaults.Add(mixercache.ControlDescriptor{Name: "Aux FM Volume", Kind: mixercache.KindInteger, Value: mixercache.Int(3, 3)})

	report := mixercache.Reconcile(live, defaults)

	assert.Equal(t, []string{"Headset Left Playback"}, report.Mismatched)
	assert.Equal(t, []string{"Headset Left Playback", "Aux FM Volume"}, report.Unapplied)

	e, _ := live.Entry(0)
	assert.Equal(t, mixercache.Enumerated{"Off"}, e.Value, "mismatched controls keep their live value")
	e, _ = live.Entry(1)
	assert.Equal(t, mixercache.Integers{14}, e.Value)
}

func TestReconcileIdempotent(t *testing.T) {
	m := mixertest.New()
	m.AddInt("Volume A", 0, 0)
	m.AddBool("Volume B", true)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	defaults := mixercache.New()
	defaults.Add(mixercache.ControlDescriptor{Name: "Volume A", Kind: mixercache.KindInteger, Value: mixercache.Int(118)})

	first := mixercache.Reconcile(live, defaults)
	values := live.Entries()

	second := mixercache.Reconcile(live, defaults)
	assert.Equal(t, first, second)
	assert.Equal(t, values, live.Entries())
}

func TestReconcileCopiesValues(t *testing.T) {
	m := mixertest.New()
	m.AddInt("Capture Volume", 0, 0)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	defaults := mixercache.New()
	defaults.Add(mixercache.ControlDescriptor{Name: "Capture Volume", Kind: mixercache.KindInteger, Count: 2, Value: mixercache.Int(4, 4)})

	report := mixercache.Reconcile(live, defaults)
	assert.True(t, report.Complete())
	assert.NoError(t, report.Err())

	e, _ := live.Entry(0)
	e.Value.(mixercache.Integers)[0] = 99

	d, _ := defaults.Entry(0)
	assert.Equal(t, mixercache.Integers{4, 4}, d.Value, "the defaults table must never be written")
}

func TestReconcileFillsExtraSlots(t *testing.T) {
	m := mixertest.New()
	m.AddInt("DMIC1 UL Volume", 0, 0, 0)

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	defaults := mixercache.New()
	defaults.Add(mixercache.ControlDescriptor{Name: "DMIC1 UL Volume", Kind: mixercache.KindInteger, Count: 2, Value: mixercache.Int(120, 110)})

	mixercache.Reconcile(live, defaults)

	e, _ := live.Entry(0)
	assert.Equal(t, mixercache.Integers{120, 110, 110}, e.Value)

	require.NoError(t, live.Apply(m))
	assert.Equal(t, []int64{120, 110, 110}, m.Values("DMIC1 UL Volume"))
}
