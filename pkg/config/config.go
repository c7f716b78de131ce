// Package config loads the command line tool's settings.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/movsb/peerwire/pkg/peer"
	"github.com/movsb/peerwire/pkg/record"
)

// Config ...
type Config struct {
	MaxMessageLength uint32 `toml:"max_message_length"` // payload bound when reading a stream
	Format           string `toml:"format"`             // record format: yaml or bencode
	Workers          int    `toml:"workers"`            // concurrent decodes when scanning
	LogLevel         string `toml:"log_level"`          // zerolog level name
}

// Default ...
func Default() Config {
	return Config{
		MaxMessageLength: peer.DefaultMaxLength,
		Format:           record.FormatYAML,
		Workers:          0,
		LogLevel:         `info`,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == `` {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "config: %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Errorf("config: %s: unknown keys %v", path, undecoded)
	}
	return c, c.Validate()
}

// Validate ...
func (c Config) Validate() error {
	switch c.Format {
	case record.FormatYAML, record.FormatBencode:
	default:
		return errors.Errorf("config: format must be %s or %s, got %q",
			record.FormatYAML, record.FormatBencode, c.Format)
	}
	if c.MaxMessageLength == 0 {
		return errors.New("config: max_message_length must be positive")
	}
	if c.Workers < 0 {
		return errors.New("config: workers must not be negative")
	}
	return nil
}
