// Package config loads the audio-tool configuration.
//
// Values are resolved with the precedence: command line flag, AUDIO_TOOL_*
// environment variable, TOML file, built-in default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/gen2brain/alsa-audiotool/internal/logging"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "/etc/audio-tool.toml"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "AUDIO_TOOL_"

// Flag names.
const (
	FlagConfig      = "config"
	FlagCard        = "card"
	FlagProfile     = "profile"
	FlagProfilesDir = "profiles-dir"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagVerbose     = "verbose"
)

// Config is the tool configuration.
type Config struct {
	// Card is a card number or card id.
	Card string `toml:"card"`
	// Profile forces a board profile by name instead of probing.
	Profile string `toml:"profile"`
	// ProfilesDir holds YAML board files.
	ProfilesDir string `toml:"profiles_dir"`
	// Verbose reports every control left untouched by a pass.
	Verbose bool           `toml:"verbose"`
	Logging logging.Config `toml:"logging"`
}

// fileConfig accepts the card as a number or a string.
type fileConfig struct {
	Card        any            `toml:"card"`
	Profile     *string        `toml:"profile"`
	ProfilesDir *string        `toml:"profiles_dir"`
	Verbose     *bool          `toml:"verbose"`
	Logging     *fileLogConfig `toml:"logging"`
}

type fileLogConfig struct {
	Level   *string           `toml:"level"`
	Format  *string           `toml:"format"`
	Modules map[string]string `toml:"modules"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Card:        "0",
		ProfilesDir: "/etc/audio-tool/boards.d",
		Logging: logging.Config{
			Level:   "info",
			Format:  "text",
			Modules: make(map[string]string),
		},
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String(FlagConfig, DefaultPath, "Configuration file")
	fs.StringP(FlagCard, "D", d.Card, "Card number or id")
	fs.String(FlagProfile, "", "Board profile to use instead of probing")
	fs.String(FlagProfilesDir, d.ProfilesDir, "Directory of YAML board files")
	fs.String(FlagLogLevel, d.Logging.Level, "Log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, d.Logging.Format, "Log format (text, json)")
	fs.BoolP(FlagVerbose, "v", d.Verbose, "Report every untouched control")
}

// Load resolves the configuration. The file named by the config flag is read
// when it exists, a missing file is only an error when the flag was set.
// A nil flag set reads the default path and skips flag overrides.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	path := DefaultPath
	explicit := false
	if fs != nil && fs.Changed(FlagConfig) {
		path, _ = fs.GetString(FlagConfig)
		explicit = true
	}

	if err := cfg.loadFile(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if fs != nil {
		cfg.loadFlags(fs)
	}

	if _, ok := logging.ParseLevel(cfg.Logging.Level); !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.Logging.Level)
	}

	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return nil, fmt.Errorf("invalid log format %q", cfg.Logging.Format)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("failed to parse TOML config %s: %w", path, err)
	}

	switch card := f.Card.(type) {
	case nil:
	case int64:
		c.Card = strconv.FormatInt(card, 10)
	case string:
		c.Card = card
	default:
		return fmt.Errorf("%s: card must be a number or a card id", path)
	}

	setString(&c.Profile, f.Profile)
	setString(&c.ProfilesDir, f.ProfilesDir)
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}

	if f.Logging != nil {
		setString(&c.Logging.Level, f.Logging.Level)
		setString(&c.Logging.Format, f.Logging.Format)
		for module, level := range f.Logging.Modules {
			c.Logging.Modules[module] = level
		}
	}

	return nil
}

func (c *Config) loadEnv() error {
	lookup := func(key string) (string, bool) {
		v, ok := os.LookupEnv(EnvPrefix + key)
		return v, ok && v != ""
	}

	if v, ok := lookup("CARD"); ok {
		c.Card = v
	}
	if v, ok := lookup("PROFILE"); ok {
		c.Profile = v
	}
	if v, ok := lookup("PROFILES_DIR"); ok {
		c.ProfilesDir = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := lookup("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %w", EnvPrefix, err)
		}
		c.Verbose = b
	}

	return nil
}

func (c *Config) loadFlags(fs *pflag.FlagSet) {
	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}

	str(FlagCard, &c.Card)
	str(FlagProfile, &c.Profile)
	str(FlagProfilesDir, &c.ProfilesDir)
	str(FlagLogLevel, &c.Logging.Level)
	str(FlagLogFormat, &c.Logging.Format)

	if fs.Changed(FlagVerbose) {
		c.Verbose, _ = fs.GetBool(FlagVerbose)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
