// Package config loads poczfx.toml project configuration: project
// identity, where compile units live, and how the batch compiler and
// cache behave. Grounded on the teacher's manifest.Load/FindAndLoad.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root of a poczfx.toml file.
type Config struct {
	Project Project `toml:"project"`
	Source  Source  `toml:"source"`
	Batch   Batch   `toml:"batch"`
	Cache   Cache   `toml:"cache"`

	// Dir is the directory the config file was loaded from; set by Load,
	// never read from TOML.
	Dir string `toml:"-"`
}

// Project carries project identity, mirroring the teacher's manifest
// metadata block.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Source configures where ZFX source files live.
type Source struct {
	Dirs []string `toml:"dirs"`
}

// Batch configures the bounded-concurrency batch compiler.
type Batch struct {
	MaxConcurrency int `toml:"max-concurrency"`
}

// Cache configures the content-addressed compile cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default returns a Config with every field set to its documented
// default, for callers that have no poczfx.toml.
func Default() Config {
	return Config{
		Source: Source{Dirs: []string{"src"}},
		Batch:  Batch{MaxConcurrency: 4},
		Cache:  Cache{Enabled: true, Path: "poczfx-cache.db"},
	}
}

// Load parses poczfx.toml from dir, filling unset fields with Default's
// values.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "poczfx.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	c.Dir = abs

	if len(c.Source.Dirs) == 0 {
		c.Source.Dirs = []string{"src"}
	}
	if c.Batch.MaxConcurrency <= 0 {
		c.Batch.MaxConcurrency = 4
	}

	return &c, nil
}

// FindAndLoad walks up from startDir looking for poczfx.toml, the way
// the teacher's FindAndLoad walks up for maggie.toml. It returns a nil
// Config and nil error if none is found, letting the caller fall back
// to Default.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "poczfx.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// SourceDirPaths returns absolute paths for the configured source
// directories.
func (c *Config) SourceDirPaths() []string {
	paths := make([]string, len(c.Source.Dirs))
	for i, d := range c.Source.Dirs {
		if filepath.IsAbs(d) {
			paths[i] = d
		} else {
			paths[i] = filepath.Join(c.Dir, d)
		}
	}
	return paths
}
