package omap4

import "github.com/gen2brain/alsa-audiotool/mixercache"

func integer(name string, values ...int) mixercache.ControlDescriptor {
	return mixercache.ControlDescriptor{Name: name, Kind: mixercache.KindInteger, Count: len(values), Value: mixercache.Int(values...)}
}

func boolean(name string, value bool) mixercache.ControlDescriptor {
	return mixercache.ControlDescriptor{Name: name, Kind: mixercache.KindBoolean, Count: 1, Value: mixercache.Bool(value)}
}

func enum(name, label string) mixercache.ControlDescriptor {
	return mixercache.ControlDescriptor{Name: name, Kind: mixercache.KindEnumerated, Count: 1, Value: mixercache.Enum(label)}
}

// commonDefaults holds the ABE and TWL6040 defaults shared by every variant.
var commonDefaults = []mixercache.ControlDescriptor{
	enum("DL1 Equalizer", "Flat response"),
	enum("DL2 Left Equalizer", "High-pass 0dB"),
	enum("DL2 Right Equalizer", "High-pass 0dB"),
	enum("Sidetone Equalizer", "Flat response"),
	enum("AMIC Equalizer", "High-pass 0dB"),
	enum("DMIC Equalizer", "High-pass 0dB"),

	integer("DL1 Media Playback Volume", 118),
	integer("DL1 Tones Playback Volume", 0),
	integer("DL1 Voice Playback Volume", 120),
	integer("DL1 Capture Playback Volume", 0),
	integer("DL2 Media Playback Volume", 118),
	integer("DL2 Tones Playback Volume", 0),
	integer("DL2 Voice Playback Volume", 120),
	integer("DL2 Capture Playback Volume", 0),
	integer("VXREC Media Volume", 0),
	integer("VXREC Tones Volume", 0),
	integer("VXREC Voice DL Volume", 0),
	integer("VXREC Voice UL Volume", 0),
	integer("AUDUL Media Volume", 0),
	integer("AUDUL Tones Volume", 0),
	integer("AUDUL Voice UL Volume", 120),
	integer("AUDUL Voice DL Volume", 0),
	integer("SDT UL Volume", 101),
	integer("SDT DL Volume", 120),
	integer("DMIC1 UL Volume", 120, 120),
	integer("DMIC2 UL Volume", 120, 120),
	integer("DMIC3 UL Volume", 120, 120),
	integer("AMIC UL Volume", 120, 120),
	integer("BT UL Volume", 120, 120),

	boolean("DL1 Mono Mixer", false),
	boolean("DL2 Mono Mixer", false),
	boolean("AUDUL Mono Mixer", false),
	boolean("DL1 MM_EXT Switch", false),
	boolean("DL1 BT_VX Switch", false),
	boolean("Sidetone Mixer Capture", false),
	boolean("Sidetone Mixer Playback", true),
	boolean("Capture Mixer Tones", false),
	boolean("Capture Mixer Voice Playback", false),
	boolean("Capture Mixer Voice Capture", false),
	boolean("Capture Mixer Media Playback", false),
	boolean("Voice Capture Mixer Tones Playback", false),
	boolean("Voice Capture Mixer Media Playback", false),
	boolean("Voice Capture Mixer Capture", false),
	boolean("DL2 Mixer Tones", false),
	boolean("DL2 Mixer Voice", false),
	boolean("DL2 Mixer Capture", false),
	boolean("DL2 Mixer Multimedia", true),
	boolean("DL1 Mixer Tones", false),
	boolean("DL1 Mixer Voice", false),
	boolean("DL1 Mixer Capture", false),
	boolean("DL1 Mixer Multimedia", false),

	enum("MUX_VX1", "None"),
	enum("MUX_VX0", "None"),
	enum("MUX_UL11", "None"),
	enum("MUX_UL10", "None"),
	enum("MUX_UL07", "None"),
	enum("MUX_UL06", "None"),
	enum("MUX_UL05", "None"),
	enum("MUX_UL04", "None"),
	enum("MUX_UL03", "None"),
	enum("MUX_UL02", "None"),
	enum("MUX_UL01", "None"),
	enum("MUX_UL00", "None"),

	integer("Capture Preamplifier Volume", 1, 1),
	integer("Capture Volume", 4, 4),
	integer("Aux FM Volume", 3, 3),
	integer("Headset Playback Volume", 15, 15),
	integer("Handsfree Playback Volume", 26, 26),
	integer("Earphone Playback Volume", 14),
	enum("Headset Power Mode", "Low-Power"),
	boolean("Earphone Playback Switch", false),
	enum("Headset Right Playback", "Off"),
	enum("Headset Left Playback", "Off"),
	enum("Handsfree Right Playback", "HF DAC"),
	enum("Handsfree Left Playback", "HF DAC"),
	enum("Analog Right Capture Route", "Off"),
	enum("Analog Left Capture Route", "Off"),
	enum("TWL6040 Power Mode", "Low-Power"),
}

// auxDefaults is present on board assemblies with the auxiliary output switches.
var auxDefaults = []mixercache.ControlDescriptor{
	boolean("AUXL Playback Switch", false),
	boolean("AUXR Playback Switch", false),
}

// variantADefaults holds the single DL1 PDM switch of the older ABE firmware.
var variantADefaults = []mixercache.ControlDescriptor{
	boolean("DL1 PDM Switch", false),
}

// variantBDefaults holds the split DL1 PDM switches of the newer ABE firmware.
var variantBDefaults = []mixercache.ControlDescriptor{
	boolean("DL1 PDM_DL1 Switch", false),
	boolean("DL1 PDM_DL2 Switch", false),
}

// buildDefaults concatenates the blocks into a fresh table with ids 0..N-1.
func buildDefaults(blocks ...[]mixercache.ControlDescriptor) *mixercache.Cache {
	table := mixercache.New()
	for _, block := range blocks {
		for _, d := range block {
			table.Add(d)
		}
	}

	return table
}
