package board

import (
	"fmt"
	"sync"

	alsa "github.com/gen2brain/alsa-audiotool"
)

// Registry is an ordered list of profiles. Lookups walk it in registration order.
type Registry struct {
	mu       sync.RWMutex
	profiles []Profile
}

// NewRegistry returns a registry holding the given profiles in order.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{}
	for _, p := range profiles {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register appends a profile. Profile names must be unique.
func (r *Registry) Register(p Profile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.profiles {
		if existing.Name() == p.Name() {
			return fmt.Errorf("%w: profile %s already registered", ErrInvalidArgument, p.Name())
		}
	}

	r.profiles = append(r.profiles, p)

	return nil
}

// Lookup returns the profile registered under name.
func (r *Registry) Lookup(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.Name() == name {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoProfile, name)
}

// Probe returns the first profile claiming one of the present cards.
func (r *Registry) Probe(cards []alsa.SoundCard) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.Probe(cards) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: no profile matches the present cards", ErrNoProfile)
}

// ForCard returns the profile registered under the card id, as the card's own profile.
func (r *Registry) ForCard(card alsa.SoundCard) (Profile, error) {
	p, err := r.Lookup(card.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: card %d", err, card.ID)
	}

	return p, nil
}

// Profiles returns the registered profiles in order.
func (r *Registry) Profiles() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Profile(nil), r.profiles...)
}
