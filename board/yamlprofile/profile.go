// Package yamlprofile loads board profiles from YAML files, for boards whose
// defaults and routes are not compiled in.
//
// A board file looks like:
//
//	name: PANDA
//	defaults:
//	  - control: DL1 Media Playback Volume
//	    type: INT
//	    values: [118, 118]
//	playback:
//	  frontends:
//	    - {name: Multimedia, port: 0}
//	  backends: [Headset]
//	  paths:
//	    - frontend: Multimedia
//	      settings:
//	        - {control: DL1 Mixer Multimedia, value: 1}
//	  outputs:
//	    Headset:
//	      - {control: Headset Left Playback, enum: HS DAC}
package yamlprofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// Profile is a board profile described by a File.
type Profile struct {
	name string

	mu       sync.Mutex
	defaults *mixercache.Cache
	routes   board.RouteSet
}

var _ board.Profile = (*Profile)(nil)

// New builds a profile from a parsed board file.
func New(f *File) (*Profile, error) {
	defaults, err := f.defaults()
	if err != nil {
		return nil, fmt.Errorf("%s defaults: %w", f.Name, err)
	}

	playback, err := f.Playback.table()
	if err != nil {
		return nil, fmt.Errorf("%s playback: %w", f.Name, err)
	}

	capture, err := f.Capture.table()
	if err != nil {
		return nil, fmt.Errorf("%s capture: %w", f.Name, err)
	}

	return &Profile{
		name:     f.Name,
		defaults: defaults,
		routes:   board.RouteSet{Playback: playback, Capture: capture},
	}, nil
}

// Load reads a single board file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return New(f)
}

// LoadDir reads every .yaml and .yml file of dir in name order. A missing
// directory holds no profiles.
func LoadDir(dir string) ([]board.Profile, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read profiles directory %s: %w", dir, err)
	}

	var profiles []board.Profile
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		p, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}

func (p *Profile) Name() string {
	return p.name
}

func (p *Profile) Probe(cards []alsa.SoundCard) bool {
	return board.CardPresent(cards, p.name)
}

// MixerDefaults copies the file defaults into the live cache.
func (p *Profile) MixerDefaults(live *mixercache.Cache) (*mixercache.Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return mixercache.Reconcile(live, p.defaults), nil
}

func (p *Profile) Names(dir board.Direction) ([]string, []string, error) {
	return p.routes.Names(dir)
}

func (p *Profile) Config(m mixercache.Mixer, dir board.Direction, frontend, backend string, enable bool) (int, error) {
	table, err := p.routes.Table(dir)
	if err != nil {
		return 0, err
	}

	return board.Activate(m, table, frontend, backend, enable)
}

// Controls returns the names of every control the profile writes, defaults first.
func (p *Profile) Controls() []string {
	var names []string
	for _, e := range p.defaults.Entries() {
		names = append(names, e.Name)
	}

	for _, t := range []*board.RouteTable{p.routes.Playback, p.routes.Capture} {
		if t == nil {
			continue
		}
		for _, c := range t.Controls() {
			if !slices.Contains(names, c) {
				names = append(names, c)
			}
		}
	}

	return names
}
