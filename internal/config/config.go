// Package config handles anyscalar.toml configuration for the anyscalar tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/anyscalar/scalar"
)

// FileName is the name FindAndLoad looks for.
const FileName = "anyscalar.toml"

// Config represents an anyscalar.toml file.
type Config struct {
	Log   Log   `toml:"log"`
	Kinds Kinds `toml:"kinds"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`

	show []scalar.Kind
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Kinds filters the kind table printed by `anyscalar kinds`.
type Kinds struct {
	Show []string `toml:"show"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{Log: Log{Verbosity: 1}}
}

// Load parses anyscalar.toml from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the config file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := c.resolveKinds(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Log.Verbosity < 0 {
		return nil, fmt.Errorf("%s: log.verbosity must not be negative, got %d", path, c.Log.Verbosity)
	}

	c.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	return c, nil
}

// FindAndLoad walks up from startDir to find an anyscalar.toml file,
// then loads and returns it. Returns nil if no file is found.
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
			return nil, nil
		}
		dir = parent
	}
}

func (c *Config) resolveKinds() error {
	c.show = c.show[:0]
	for _, name := range c.Kinds.Show {
		k, ok := scalar.ParseKind(name)
		if !ok || k == scalar.KindNone {
			return fmt.Errorf("kinds.show: unknown kind %q", name)
		}
		c.show = append(c.show, k)
	}
	return nil
}

// ShownKinds returns the kinds to list, in the order the file names them.
// With no filter configured every value-carrying kind is returned.
func (c *Config) ShownKinds() []scalar.Kind {
	if len(c.show) == 0 {
		return scalar.Kinds()
	}
	out := make([]scalar.Kind, len(c.show))
	copy(out, c.show)
	return out
}

// LogPath returns the configured log file, or nil to log to stderr.
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	if !filepath.IsAbs(path) && c.Path != "" {
		path = filepath.Join(filepath.Dir(c.Path), path)
	}
	return &path
}
