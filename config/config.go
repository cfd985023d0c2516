// Package config handles tagword.toml tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/chazu/tagword/vm"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "tagword.toml"

// Config represents a tagword.toml file.
type Config struct {
	Codec  Codec  `toml:"codec"`
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`

	// Path is the file the configuration was read from (set at load time,
	// empty for defaults).
	Path string `toml:"-"`
}

// Codec selects which word-width configuration the tool inspects.
type Codec struct {
	Width int `toml:"width"`
}

// Output configures how words are printed.
type Output struct {
	Format string `toml:"format"` // hex | binary
	Color  string `toml:"color"`  // auto | on | off
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Codec:  Codec{Width: vm.WordBits},
		Output: Output{Format: "hex", Color: "auto"},
	}
}

// Load parses tagword.toml from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a configuration file at an explicit path. Fields the
// file leaves out keep their Default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find a tagword.toml file and
// loads it. Returns Default() if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Codec.Width != 32 && c.Codec.Width != 64 {
		return fmt.Errorf("codec.width must be 32 or 64, got %d", c.Codec.Width)
	}
	switch c.Output.Format {
	case "hex", "binary":
	default:
		return fmt.Errorf("output.format must be hex or binary, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("output.color must be auto, on or off, got %q", c.Output.Color)
	}
	return nil
}

// CodecFor returns the codec for a word width.
func CodecFor(width int) (vm.Codec, error) {
	switch width {
	case 64:
		return vm.Wide, nil
	case 32:
		return vm.Narrow, nil
	default:
		return nil, fmt.Errorf("unsupported word width %d", width)
	}
}
