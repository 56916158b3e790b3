// Package config loads the optional run configuration for the portlayout CLI.
//
// Without a configuration file the CLI checks the port counts 1, 2, 3, 4, 6
// and 8. A TOML file can replace that list and add device types to check:
//
//	counts  = [1, 2, 3, 4, 6, 8, 12]
//	devices = ["router", "switch"]
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/portlayout/pkg/device"
	apperr "github.com/matzehuels/portlayout/pkg/errors"
)

// DefaultCounts are the port counts checked when no configuration overrides them.
var DefaultCounts = []int{1, 2, 3, 4, 6, 8}

// Config is the run configuration.
type Config struct {
	Counts  []int    `toml:"counts"`
	Devices []string `toml:"devices"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Counts: append([]int(nil), DefaultCounts...)}
}

// Load reads and validates the TOML file at path. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects negative port counts and unknown device types.
func (c Config) Validate() error {
	for _, n := range c.Counts {
		if err := apperr.ValidatePortCount(n); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "counts")
		}
	}
	for _, d := range c.Devices {
		if _, err := device.Lookup(d); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "devices")
		}
	}
	return nil
}
