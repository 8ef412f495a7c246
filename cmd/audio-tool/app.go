package main

import (
	"errors"
	"fmt"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/board/hdmi"
	"github.com/gen2brain/alsa-audiotool/board/omap4"
	"github.com/gen2brain/alsa-audiotool/board/yamlprofile"
	"github.com/gen2brain/alsa-audiotool/internal/config"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// app holds the state shared by the subcommands.
type app struct {
	cfg *config.Config
}

// session is one opened card with the profile driving it.
type session struct {
	card    alsa.SoundCard
	mixer   *alsa.Mixer
	profile board.Profile
}

func (s *session) Close() error {
	return s.mixer.Close()
}

// hw returns the mixer behind the narrow interfaces of the engine.
func (s *session) hw() mixercache.Mixer {
	return mixercache.Hardware(s.mixer)
}

// registry returns the compiled-in profiles followed by the YAML profiles.
func (a *app) registry() (*board.Registry, error) {
	reg, err := board.NewRegistry(omap4.NewSDP4430(), omap4.NewOMAP45(), hdmi.New())
	if err != nil {
		return nil, err
	}

	profiles, err := yamlprofile.LoadDir(a.cfg.ProfilesDir)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if err := reg.Register(p); err != nil {
			logging.GetLogger("main").Warn("Ignoring board file", "profile", p.Name(), "error", err)
		}
	}

	return reg, nil
}

func (a *app) cards() ([]alsa.SoundCard, error) {
	cards, err := alsa.EnumerateCards()
	if err != nil {
		return nil, err
	}

	if len(cards) == 0 {
		return nil, alsa.ErrNoCard
	}

	return cards, nil
}

// card resolves the configured card.
func (a *app) card() (alsa.SoundCard, error) {
	cards, err := a.cards()
	if err != nil {
		return alsa.SoundCard{}, err
	}

	return alsa.FindCard(cards, a.cfg.Card)
}

// profile returns the forced profile if any, else the profile registered
// under the card id.
func (a *app) profile(card alsa.SoundCard) (board.Profile, error) {
	reg, err := a.registry()
	if err != nil {
		return nil, err
	}

	if a.cfg.Profile != "" {
		return reg.Lookup(a.cfg.Profile)
	}

	p, err := reg.ForCard(card)
	if err != nil {
		return nil, fmt.Errorf("could not find the defaults for this card (%s): %w", card.Name, err)
	}

	return p, nil
}

// open opens the configured card. withProfile also resolves its profile.
func (a *app) open(withProfile bool) (*session, error) {
	card, err := a.card()
	if err != nil {
		return nil, err
	}

	s := &session{card: card}
	if withProfile {
		if s.profile, err = a.profile(card); err != nil {
			return nil, err
		}
	}

	s.mixer, err = alsa.MixerOpen(uint(card.ID))
	if err != nil {
		return nil, fmt.Errorf("%w: could not open mixer device: %w", mixercache.ErrDevice, err)
	}

	return s, nil
}

// populate snapshots the mixer of the session.
func (a *app) populate(s *session) (*mixercache.Cache, error) {
	live := mixercache.New(mixercache.WithLogger(logging.GetLogger("mixercache")))
	if err := live.Populate(s.hw()); err != nil {
		return nil, fmt.Errorf("could not populate the mixer cache: %w", err)
	}

	return live, nil
}

// report logs an incomplete pass and, when verbose, lists the controls of
// each problem group on stdout.
func (a *app) report(what string, r *mixercache.Report) {
	if r.Complete() {
		return
	}

	logging.GetLogger("main").Warn(what, "summary", r.Err().Error())

	if !a.cfg.Verbose {
		return
	}

	for _, group := range []struct {
		label string
		names []string
	}{
		{"No default defined", r.Missing},
		{"Type mismatch", r.Mismatched},
		{"Default not applied", r.Unapplied},
		{"Not restored", r.Unaccounted},
	} {
		for _, name := range group.names {
			fmt.Printf("%s: %s\n", group.label, name)
		}
	}
}

func isNotSupported(err error) bool {
	return errors.Is(err, board.ErrNotSupported)
}
