package omap4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/internal/mixertest"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

var enumItems = []string{
	"Off", "None", "Flat response", "High-pass 0dB", "Low-Power", "High-Performance",
	"HS DAC", "HF DAC", "Main Mic", "Sub Mic", "Headset Mic",
	"AMic0", "AMic1", "DMic0L", "DMic0R", "BT Left", "BT Right",
}

// newCard builds a mixer exposing every default and route control of the variant.
func newCard(t *testing.T, v Variant, aux bool) *mixertest.Mixer {
	t.Helper()

	m := mixertest.New()
	seen := map[string]bool{}

	blocks := [][]mixercache.ControlDescriptor{commonDefaults}
	if aux {
		blocks = append(blocks, auxDefaults)
	}
	if v == VariantB {
		blocks = append(blocks, variantBDefaults)
	} else {
		blocks = append(blocks, variantADefaults)
	}

	for _, block := range blocks {
		for _, d := range block {
			seen[d.Name] = true
			switch d.Kind {
			case mixercache.KindBoolean:
				m.AddBool(d.Name, make([]bool, d.Count)...)
			case mixercache.KindInteger:
				m.AddInt(d.Name, make([]int, d.Count)...)
			case mixercache.KindEnumerated:
				m.AddEnum(d.Name, enumItems, "Off")
			default:
				t.Fatalf("unexpected kind %s for %s", d.Kind, d.Name)
			}
		}
	}

	set := routes(v)
	for _, table := range []*board.RouteTable{set.Playback, set.Capture} {
		var all []board.Route
		for _, r := range table.Paths {
			all = append(all, r)
		}
		for _, r := range table.Outputs {
			all = append(all, r)
		}

		for _, r := range all {
			for _, s := range r {
				if seen[s.Control] {
					continue
				}
				seen[s.Control] = true

				if s.IsEnum() {
					m.AddEnum(s.Control, enumItems, s.OffLabel())
				} else {
					m.AddInt(s.Control, 0, 0)
				}
			}
		}
	}

	return m
}

func populate(t *testing.T, m mixercache.Mixer) *mixercache.Cache {
	t.Helper()

	live := mixercache.New()
	require.NoError(t, live.Populate(m))

	return live
}

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		aux     bool
	}{
		{"variant A", VariantA, false},
		{"variant B", VariantB, false},
		{"variant A with aux", VariantA, true},
		{"variant B with aux", VariantB, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var caps Capabilities
			require.NoError(t, caps.Detect(populate(t, newCard(t, tt.variant, tt.aux))))

			assert.True(t, caps.Detected())
			assert.Equal(t, tt.variant, caps.Variant())
			assert.Equal(t, tt.aux, caps.Aux())
			assert.NotNil(t, caps.Routes().Playback)
		})
	}
}

func TestDetectBothMarkers(t *testing.T) {
	m := mixertest.New()
	m.AddBool(MarkerVariantA, false)
	m.AddBool(MarkerVariantB, false)

	var caps Capabilities
	require.NoError(t, caps.Detect(populate(t, m)))
	assert.Equal(t, VariantB, caps.Variant())
}

func TestDetectUnsupported(t *testing.T) {
	m := mixertest.New()
	m.AddInt("Master Playback Volume", 0)

	var caps Capabilities
	err := caps.Detect(populate(t, m))
	require.ErrorIs(t, err, board.ErrUnsupportedHardware)
	assert.False(t, caps.Detected())
	assert.Equal(t, VariantUnknown, caps.Variant())
	assert.Nil(t, caps.DefaultNames())

	// A failed detection is not remembered.
	require.NoError(t, caps.Detect(populate(t, newCard(t, VariantA, false))))
	assert.Equal(t, VariantA, caps.Variant())
}

func TestDetectMemoized(t *testing.T) {
	var caps Capabilities
	require.NoError(t, caps.Detect(populate(t, newCard(t, VariantB, false))))
	require.NoError(t, caps.Detect(populate(t, newCard(t, VariantA, true))))

	assert.Equal(t, VariantB, caps.Variant())
	assert.False(t, caps.Aux())
}

func TestDefaultsComposition(t *testing.T) {
	var caps Capabilities
	require.NoError(t, caps.Detect(populate(t, newCard(t, VariantB, true))))

	names := caps.DefaultNames()
	require.Len(t, names, len(commonDefaults)+len(auxDefaults)+len(variantBDefaults))

	assert.Equal(t, commonDefaults[0].Name, names[0])
	n := len(commonDefaults)
	assert.Equal(t, []string{"AUXL Playback Switch", "AUXR Playback Switch"}, names[n:n+2])
	assert.Equal(t, []string{"DL1 PDM_DL1 Switch", "DL1 PDM_DL2 Switch"}, names[n+2:])

	for i, e := range caps.defaults.Entries() {
		assert.Equal(t, i, e.ID)
	}

	assert.NotContains(t, names, MarkerVariantA)
}

func TestMixerDefaults(t *testing.T) {
	for _, v := range []Variant{VariantA, VariantB} {
		t.Run(v.String(), func(t *testing.T) {
			m := mixertest.New()
			for _, d := range buildDefaults(commonDefaults, auxDefaults, variantDefaults(v)).Entries() {
				switch d.Kind {
				case mixercache.KindBoolean:
					m.AddBool(d.Name, make([]bool, d.Count)...)
				case mixercache.KindInteger:
					m.AddInt(d.Name, make([]int, d.Count)...)
				case mixercache.KindEnumerated:
					m.AddEnum(d.Name, enumItems, "Off")
				}
			}

			p := NewSDP4430()
			live := populate(t, m)

			report, err := p.MixerDefaults(live)
			require.NoError(t, err)
			assert.True(t, report.Complete(), "%+v", report)

			require.NoError(t, live.Apply(m))
			assert.Equal(t, []int64{118}, m.Values("DL1 Media Playback Volume"))
			assert.Equal(t, []int64{120, 120}, m.Values("AMIC UL Volume"))
			assert.Equal(t, "Flat response", m.Enum("DL1 Equalizer", 0))
			assert.Equal(t, "HF DAC", m.Enum("Handsfree Left Playback", 0))
			assert.Equal(t, int64(1), m.Int("Sidetone Mixer Playback", 0))
		})
	}
}

func TestMixerDefaultsReportsDrift(t *testing.T) {
	m := newCard(t, VariantA, false)
	m.AddInt("Unknown Volume", 3)

	p := NewOMAP45()
	report, err := p.MixerDefaults(populate(t, m))
	require.NoError(t, err)

	assert.False(t, report.Complete())
	assert.Equal(t, []string{"Unknown Volume"}, report.Missing)
	assert.Empty(t, report.Unapplied)
	assert.ErrorIs(t, report.Err(), mixercache.ErrIncomplete)
}

func TestMixerDefaultsUnsupported(t *testing.T) {
	m := mixertest.New()
	m.AddInt("Master Playback Volume", 0)

	report, err := NewSDP4430().MixerDefaults(populate(t, m))
	assert.ErrorIs(t, err, board.ErrUnsupportedHardware)
	assert.Nil(t, report)
}

func TestConfigSweep(t *testing.T) {
	for _, v := range []Variant{VariantA, VariantB} {
		for _, dir := range []board.Direction{board.Playback, board.Capture} {
			m := newCard(t, v, false)
			p := NewSDP4430()

			frontends, backends, err := p.Names(dir)
			require.NoError(t, err)

			for _, fe := range frontends {
				for _, be := range backends {
					name := v.String() + "/" + dir.String() + "/" + fe + "/" + be

					port, err := p.Config(m, dir, fe, be, true)
					require.NoError(t, err, name)

					table, err := p.Capabilities().Routes().Table(dir)
					require.NoError(t, err)
					assert.Equal(t, table.Port(fe), port, name)

					route := append(append(board.Route{}, table.FrontendRoute(fe, be)...), table.BackendRoute(be)...)
					require.NotEmpty(t, route, name)

					for _, s := range route {
						if s.IsEnum() {
							assert.Equal(t, s.Enum, m.Enum(s.Control, 0), name)
						} else {
							assert.Equal(t, int64(s.Value), m.Int(s.Control, 0), name)
						}
					}

					_, err = p.Config(m, dir, fe, be, false)
					require.NoError(t, err, name)

					for _, s := range route {
						if s.IsEnum() {
							assert.Equal(t, s.OffLabel(), m.Enum(s.Control, 0), name)
						} else {
							for _, raw := range m.Values(s.Control) {
								assert.Zero(t, raw, name+" "+s.Control)
							}
						}
					}
				}
			}
		}
	}
}

func TestConfigVariantRoutes(t *testing.T) {
	m := newCard(t, VariantB, false)
	p := NewOMAP45()

	port, err := p.Config(m, board.Playback, Voice, Handsfree, true)
	require.NoError(t, err)
	assert.Equal(t, 2, port)

	assert.Equal(t, int64(1), m.Int("DL2 Mixer Voice", 0))
	assert.Equal(t, int64(1), m.Int(MarkerVariantB, 0))
	assert.Equal(t, int64(0), m.Int("DL1 Mixer Voice", 0))

	_, err = p.Config(m, board.Playback, Multimedia, Headset, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Int("DL1 PDM_DL1 Switch", 0))
	assert.Equal(t, "HS DAC", m.Enum("Headset Right Playback", 0))
}

func TestConfigErrors(t *testing.T) {
	m := newCard(t, VariantA, false)
	p := NewSDP4430()

	_, err := p.Config(m, board.Playback, "Ringtone", Headset, true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)

	_, err = p.Config(m, board.Capture, Multimedia, Headset, true)
	assert.ErrorIs(t, err, board.ErrInvalidArgument)
	assert.Empty(t, m.Writes)

	empty := mixertest.New()
	empty.AddInt("Master Playback Volume", 0)
	_, err = NewSDP4430().Config(empty, board.Playback, Multimedia, Headset, true)
	assert.ErrorIs(t, err, board.ErrUnsupportedHardware)
}

func TestProbe(t *testing.T) {
	cards := []alsa.SoundCard{{ID: 0, Name: CardOMAP45}, {ID: 1, Name: "HDMI"}}

	assert.True(t, NewOMAP45().Probe(cards))
	assert.False(t, NewSDP4430().Probe(cards))
}

func TestNamesBeforeDetection(t *testing.T) {
	fes, bes, err := NewSDP4430().Names(board.Playback)
	require.NoError(t, err)
	assert.Equal(t, []string{Multimedia, Voice, Tones, MultimediaLP}, fes)
	assert.Equal(t, []string{Headset, Handsfree, Earpiece, Bluetooth}, bes)

	fes, bes, err = NewSDP4430().Names(board.Capture)
	require.NoError(t, err)
	assert.Equal(t, []string{Multimedia, Multimedia2, Voice}, fes)
	assert.Equal(t, []string{MainMic, HeadsetMic, DMic, Bluetooth}, bes)
}
