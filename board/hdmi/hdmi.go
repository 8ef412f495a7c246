// Package hdmi is the board support for the OMAP HDMI audio card. The card
// has no mixer controls of its own, so it has no defaults and no routes.
package hdmi

import (
	"fmt"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// CardName is the card id of the HDMI card.
const CardName = "HDMI"

// Profile is the HDMI board profile.
type Profile struct{}

var _ board.Profile = Profile{}

// New returns the HDMI profile.
func New() Profile {
	return Profile{}
}

func (Profile) Name() string {
	return CardName
}

func (Profile) Probe(cards []alsa.SoundCard) bool {
	return board.CardPresent(cards, CardName)
}

// MixerDefaults reports every live control as having no default.
func (Profile) MixerDefaults(live *mixercache.Cache) (*mixercache.Report, error) {
	log := logging.GetLogger("hdmi")

	report := &mixercache.Report{}
	for _, e := range live.Entries() {
		log.Warn("No default defined", "control", e.Name, "id", e.ID)
		report.Missing = append(report.Missing, e.Name)
	}

	return report, nil
}

func (Profile) Names(dir board.Direction) ([]string, []string, error) {
	return nil, nil, fmt.Errorf("%w: %s has no %s routes", board.ErrNotSupported, CardName, dir)
}

func (Profile) Config(_ mixercache.Mixer, dir board.Direction, _, _ string, _ bool) (int, error) {
	return 0, fmt.Errorf("%w: %s has no %s routes", board.ErrNotSupported, CardName, dir)
}
