// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles intcode.toml configuration files.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// FileName is the name of the configuration file looked up by Find.
const FileName = "intcode.toml"

// Config represents an intcode.toml configuration.
type Config struct {
	Image   string  `toml:"image"`
	Log     Log     `toml:"log"`
	Run     Run     `toml:"run"`
	Network Network `toml:"network"`
	Keys    Keys    `toml:"keys"`

	// Dir is the directory containing the configuration file (set at load
	// time).
	Dir string `toml:"-"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Run configures the run command.
type Run struct {
	Inputs []vm.Cell `toml:"inputs"`
	ASCII  bool      `toml:"ascii"`

	// History is the line history file of the --interactive prompt.
	History string `toml:"history"`
}

// Network configures amplifier networks.
type Network struct {
	Phases   []vm.Cell `toml:"phases"`
	Feedback bool      `toml:"feedback"`
	Initial  vm.Cell   `toml:"initial"`
}

// Keys maps keystrokes to input values for interactive programs. Outputs are
// processed in groups of Group values.
type Keys struct {
	Group    int                `toml:"group"`
	Bindings map[string]vm.Cell `toml:"bindings"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Keys: Keys{Group: 1},
	}
}

// Load parses the configuration file at path. Keys not defined in Config are
// rejected. Missing keys keep their default value.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for n, k := range u {
			keys[n] = k.String()
		}
		return nil, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err = c.validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Keys.Group < 1 {
		return errors.Errorf("keys.group must be positive, got %d", c.Keys.Group)
	}
	for k := range c.Keys.Bindings {
		if utf8.RuneCountInString(k) != 1 {
			return errors.Errorf("keys.bindings: %q is not a single character", k)
		}
	}
	return nil
}

// Find walks up from startDir to find an intcode.toml file, then loads and
// returns the configuration. Returns nil if no configuration file is found.
func Find(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// ImagePath returns the path of the program image, relative to the directory
// of the configuration file. It returns an empty string if no image is set.
func (c *Config) ImagePath() string {
	return c.path(c.Image)
}

// HistoryPath returns the path of the interactive prompt history file,
// resolved like ImagePath.
func (c *Config) HistoryPath() string {
	return c.path(c.Run.History)
}

func (c *Config) path(name string) string {
	if name == "" || filepath.IsAbs(name) || c.Dir == "" {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// Binding returns the input value bound to key r.
func (c *Config) Binding(r rune) (vm.Cell, bool) {
	v, ok := c.Keys.Bindings[string(r)]
	return v, ok
}
