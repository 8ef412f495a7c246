package yamlprofile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// File is the YAML document describing one board.
type File struct {
	// Name is the card id the profile claims.
	Name     string     `yaml:"name"`
	Defaults []Default  `yaml:"defaults"`
	Playback *TableFile `yaml:"playback"`
	Capture  *TableFile `yaml:"capture"`
}

// Default is one entry of the defaults table.
type Default struct {
	Control string  `yaml:"control"`
	Type    string  `yaml:"type"`
	Values  Scalars `yaml:"values"`
}

// TableFile is the route table of one direction.
type TableFile struct {
	Frontends []FrontendFile           `yaml:"frontends"`
	Backends  []string                 `yaml:"backends"`
	Paths     []PathFile               `yaml:"paths"`
	Outputs   map[string][]SettingFile `yaml:"outputs"`
}

// FrontendFile names a frontend and its PCM port.
type FrontendFile struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

// PathFile is the frontend route towards a backend, or towards every backend
// without a path of its own when Backend is empty.
type PathFile struct {
	Frontend string        `yaml:"frontend"`
	Backend  string        `yaml:"backend"`
	Settings []SettingFile `yaml:"settings"`
}

// SettingFile is one control write. Enum selects a label, Value a scalar.
type SettingFile struct {
	Control string `yaml:"control"`
	Enum    string `yaml:"enum"`
	Value   int    `yaml:"value"`
	Off     string `yaml:"off"`
}

// Scalars accepts either a single scalar or a sequence of scalars.
type Scalars []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalars) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Scalars{node.Value}
	case yaml.SequenceNode:
		out := make(Scalars, 0, len(node.Content))
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: values must be scalars", n.Line)
			}
			out = append(out, n.Value)
		}
		*s = out
	default:
		return fmt.Errorf("line %d: values must be a scalar or a sequence", node.Line)
	}

	return nil
}

// Parse decodes and validates a board document.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse board YAML: %w", board.ErrInvalidArgument, err)
	}

	if f.Name == "" {
		return nil, fmt.Errorf("%w: board must have a name", board.ErrInvalidArgument)
	}

	return &f, nil
}

func (f *File) defaults() (*mixercache.Cache, error) {
	table := mixercache.New()
	for _, d := range f.Defaults {
		kind := mixercache.ParseKind(d.Type)
		if kind == mixercache.KindUnknown {
			return nil, fmt.Errorf("%w: %s: unsupported type %q", board.ErrInvalidArgument, d.Control, d.Type)
		}

		if len(d.Values) == 0 {
			return nil, fmt.Errorf("%w: %s: no values", board.ErrInvalidArgument, d.Control)
		}

		fields := []string(d.Values)
		if kind == mixercache.KindBoolean {
			fields = boolFields(fields)
		}

		value, err := mixercache.ParseValue(kind, fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", board.ErrInvalidArgument, d.Control, err)
		}

		table.Add(mixercache.ControlDescriptor{Name: d.Control, Kind: kind, Count: value.Len(), Value: value})
	}

	return table, nil
}

// boolFields maps YAML booleans to the 0/1 form of the control values.
func boolFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if b, err := strconv.ParseBool(f); err == nil && f != "0" && f != "1" {
			f = "0"
			if b {
				f = "1"
			}
		}
		out[i] = f
	}

	return out
}

func (t *TableFile) table() (*board.RouteTable, error) {
	if t == nil {
		return nil, nil
	}

	table := &board.RouteTable{
		Backends: t.Backends,
		Ports:    make(map[string]int, len(t.Frontends)),
		Paths:    make(map[board.PathKey]board.Route, len(t.Paths)),
		Outputs:  make(map[string]board.Route, len(t.Outputs)),
	}

	for _, fe := range t.Frontends {
		table.Frontends = append(table.Frontends, fe.Name)
		table.Ports[fe.Name] = fe.Port
	}

	for _, p := range t.Paths {
		if !slices.Contains(table.Frontends, p.Frontend) {
			return nil, fmt.Errorf("%w: path of unknown frontend %q", board.ErrInvalidArgument, p.Frontend)
		}

		if p.Backend != "" && !slices.Contains(table.Backends, p.Backend) {
			return nil, fmt.Errorf("%w: path to unknown backend %q", board.ErrInvalidArgument, p.Backend)
		}

		key := board.PathKey{Frontend: p.Frontend, Backend: p.Backend}
		if _, dup := table.Paths[key]; dup {
			return nil, fmt.Errorf("%w: duplicate path %s/%s", board.ErrInvalidArgument, p.Frontend, p.Backend)
		}

		table.Paths[key] = route(p.Settings)
	}

	for be, settings := range t.Outputs {
		if !slices.Contains(table.Backends, be) {
			return nil, fmt.Errorf("%w: output of unknown backend %q", board.ErrInvalidArgument, be)
		}

		table.Outputs[be] = route(settings)
	}

	return table, nil
}

func route(settings []SettingFile) board.Route {
	r := make(board.Route, len(settings))
	for i, s := range settings {
		r[i] = board.Setting{Control: s.Control, Enum: s.Enum, Value: s.Value, Off: s.Off}
	}

	return r
}
