// Package omap4 is the board support for TI OMAP4 and OMAP5 reference boards
// (SDP4430, OMAP45) with the ABE digital audio engine and a TWL6040 codec.
//
// The ABE firmware revision is not reported by the driver, it is inferred from
// marker controls (see Capabilities). Defaults and routes follow the revision.
package omap4

import (
	"fmt"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// Card ids claimed by the shipped profiles.
const (
	CardSDP4430 = "SDP4430"
	CardOMAP45  = "OMAP45"
)

// Profile drives one OMAP4/5 card. The capability context lives for as long
// as the profile, so one profile serves one mixer session.
type Profile struct {
	name string
	caps Capabilities
}

var _ board.Profile = (*Profile)(nil)

// New returns a profile claiming the card with the given id.
func New(name string) *Profile {
	return &Profile{name: name}
}

// NewSDP4430 returns the profile of the SDP4430 reference board.
func NewSDP4430() *Profile {
	return New(CardSDP4430)
}

// NewOMAP45 returns the profile of the OMAP4/5 panda style boards.
func NewOMAP45() *Profile {
	return New(CardOMAP45)
}

// Name returns the card id.
func (p *Profile) Name() string {
	return p.name
}

// Probe reports whether the card is present.
func (p *Profile) Probe(cards []alsa.SoundCard) bool {
	return board.CardPresent(cards, p.name)
}

// Capabilities returns the capability context of the profile.
func (p *Profile) Capabilities() *Capabilities {
	return &p.caps
}

// MixerDefaults detects the board variant on the live cache if needed and
// copies the matching defaults into it.
func (p *Profile) MixerDefaults(live *mixercache.Cache) (*mixercache.Report, error) {
	if err := p.caps.Detect(live); err != nil {
		return nil, err
	}

	logging.GetLogger("omap4").Debug("Reconciling defaults", "card", p.name, "variant", p.caps.Variant().String(), "aux", p.caps.Aux())

	return p.caps.reconcile(live), nil
}

// Names returns the frontends and backends of a direction. It is available
// before detection, the name lists do not depend on the variant.
func (p *Profile) Names(dir board.Direction) (frontends, backends []string, err error) {
	set := p.caps.Routes()
	if set.Playback == nil {
		set = routes(VariantA)
	}

	return set.Names(dir)
}

// Config enables or disables a path. The variant is detected on first use
// from a snapshot of m.
func (p *Profile) Config(m mixercache.Mixer, dir board.Direction, frontend, backend string, enable bool) (int, error) {
	if !p.caps.Detected() {
		live := mixercache.New()
		if err := live.Populate(m); err != nil {
			return 0, err
		}

		if err := p.caps.Detect(live); err != nil {
			return 0, err
		}
	}

	table, err := p.caps.Routes().Table(dir)
	if err != nil {
		return 0, err
	}

	port, err := board.Activate(m, table, frontend, backend, enable)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", p.name, dir, err)
	}

	return port, nil
}
