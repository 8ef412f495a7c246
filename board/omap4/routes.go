package omap4

import "github.com/gen2brain/alsa-audiotool/board"

// Playback frontends.
const (
	Multimedia   = "Multimedia"
	Multimedia2  = "Multimedia2"
	Voice        = "Voice"
	Tones        = "Tones"
	MultimediaLP = "MultimediaLP"
)

// Playback and capture backends.
const (
	Headset    = "Headset"
	Handsfree  = "Handsfree"
	Earpiece   = "Earpiece"
	Bluetooth  = "Bluetooth"
	MainMic    = "MainMic"
	HeadsetMic = "HeadsetMic"
	DMic       = "DMic"
)

// ABE muxes are disabled by selecting no input.
const muxOff = "None"

// pdmSwitch is the switch feeding DL1 to the PDM output, per variant.
func pdmSwitch(v Variant) string {
	if v == VariantB {
		return "DL1 PDM_DL1 Switch"
	}

	return MarkerVariantA
}

// downlink returns the frontend mixing route on the DL1 or DL2 path.
func downlink(dl, volume, mixer string, gain int) board.Route {
	return board.Route{
		board.Int(dl+" Mixer "+mixer, 1),
		board.Int(dl+" "+volume+" Playback Volume", gain),
	}
}

func playbackRoutes(v Variant) *board.RouteTable {
	paths := map[board.PathKey]board.Route{}
	for _, fe := range []struct {
		name, mixer, volume string
		gain                int
	}{
		{Multimedia, "Multimedia", "Media", 118},
		{Voice, "Voice", "Voice", 120},
		{Tones, "Tones", "Tones", 120},
		{MultimediaLP, "Multimedia", "Media", 118},
	} {
		paths[board.PathKey{Frontend: fe.name}] = downlink("DL1", fe.volume, fe.mixer, fe.gain)
		// Handsfree is fed by DL2.
		paths[board.PathKey{Frontend: fe.name, Backend: Handsfree}] = downlink("DL2", fe.volume, fe.mixer, fe.gain)
	}

	handsfree := board.Route{
		board.Enum("Handsfree Left Playback", "HF DAC"),
		board.Enum("Handsfree Right Playback", "HF DAC"),
		board.Int("Handsfree Playback Volume", 26),
	}
	if v == VariantB {
		handsfree = append(board.Route{board.Int(MarkerVariantB, 1)}, handsfree...)
	}

	return &board.RouteTable{
		Frontends: []string{Multimedia, Voice, Tones, MultimediaLP},
		Backends:  []string{Headset, Handsfree, Earpiece, Bluetooth},
		Ports: map[string]int{
			Multimedia:   0,
			Voice:        2,
			Tones:        3,
			MultimediaLP: 6,
		},
		Paths: paths,
		Outputs: map[string]board.Route{
			Headset: {
				board.Int(pdmSwitch(v), 1),
				board.Enum("Headset Left Playback", "HS DAC"),
				board.Enum("Headset Right Playback", "HS DAC"),
				board.Int("Headset Playback Volume", 15),
			},
			Handsfree: handsfree,
			Earpiece: {
				board.Int(pdmSwitch(v), 1),
				board.Int("Earphone Playback Switch", 1),
				board.Int("Earphone Playback Volume", 14),
			},
			Bluetooth: {
				board.Int("DL1 BT_VX Switch", 1),
			},
		},
	}
}

// uplink returns the mux route of a capture frontend for a pair of sources.
func uplink(muxes [2]string, sources [2]string) board.Route {
	return board.Route{
		board.EnumOff(muxes[0], sources[0], muxOff),
		board.EnumOff(muxes[1], sources[1], muxOff),
	}
}

func captureRoutes() *board.RouteTable {
	sources := map[string][2]string{
		MainMic:    {"AMic0", "AMic1"},
		HeadsetMic: {"AMic0", "AMic1"},
		DMic:       {"DMic0L", "DMic0R"},
		Bluetooth:  {"BT Left", "BT Right"},
	}

	muxes := map[string][2]string{
		Multimedia:  {"MUX_UL00", "MUX_UL01"},
		Multimedia2: {"MUX_UL10", "MUX_UL11"},
		Voice:       {"MUX_VX0", "MUX_VX1"},
	}

	paths := map[board.PathKey]board.Route{}
	for fe, mux := range muxes {
		for be, src := range sources {
			r := uplink(mux, src)
			if fe == Voice {
				r = append(r, board.Int("Voice Capture Mixer Capture", 1))
			}
			paths[board.PathKey{Frontend: fe, Backend: be}] = r
		}
	}

	analog := func(left, right string) board.Route {
		return board.Route{
			board.Enum("Analog Left Capture Route", left),
			board.Enum("Analog Right Capture Route", right),
			board.Int("Capture Preamplifier Volume", 1),
			board.Int("Capture Volume", 4),
			board.Int("AMIC UL Volume", 120),
		}
	}

	return &board.RouteTable{
		Frontends: []string{Multimedia, Multimedia2, Voice},
		Backends:  []string{MainMic, HeadsetMic, DMic, Bluetooth},
		Ports: map[string]int{
			Multimedia:  0,
			Multimedia2: 1,
			Voice:       2,
		},
		Paths: paths,
		Outputs: map[string]board.Route{
			MainMic:    analog("Main Mic", "Sub Mic"),
			HeadsetMic: analog("Headset Mic", "Headset Mic"),
			DMic: {
				board.Int("DMIC1 UL Volume", 120),
			},
			Bluetooth: {
				board.Int("BT UL Volume", 120),
			},
		},
	}
}

func routes(v Variant) board.RouteSet {
	return board.RouteSet{
		Playback: playbackRoutes(v),
		Capture:  captureRoutes(),
	}
}
