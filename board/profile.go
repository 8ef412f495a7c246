// Package board describes sound card boards: their default mixer values, their
// audio paths and how a path is switched on or off.
//
// A path joins a frontend (a PCM stream such as "Multimedia") to a backend (an
// output or input such as "Headset"). Enabling it writes the frontend route and
// then the backend route of the direction's RouteTable.
package board

import (
	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// Profile is the board support for one family of sound cards.
type Profile interface {
	// Name is the card id the profile is registered under.
	Name() string
	// Probe reports whether one of the present cards is handled by this profile.
	Probe(cards []alsa.SoundCard) bool
	// MixerDefaults copies the board defaults into the live cache. A non-nil
	// report is returned whenever the pass ran, complete or not.
	MixerDefaults(live *mixercache.Cache) (*mixercache.Report, error)
	// Names returns the frontends and backends of a direction.
	Names(dir Direction) (frontends, backends []string, err error)
	// Config enables or disables a path and returns the PCM port to use.
	Config(m mixercache.Mixer, dir Direction, frontend, backend string, enable bool) (port int, err error)
}

// CardPresent reports whether a card with the given id is among cards.
func CardPresent(cards []alsa.SoundCard, id string) bool {
	_, err := alsa.FindCardByName(cards, id)

	return err == nil
}
