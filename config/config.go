// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/staticconfig/namespace"
)

const (
	// DefaultFileMode is the permission used for written config files.
	DefaultFileMode os.FileMode = 0o644

	indent = "  "
)

// Config is the root namespace of one configuration tree.
//
// It is created by a [Loader] and remembers the file it was loaded from.
// The path is not part of the configuration data and is never written.
type Config struct {
	*namespace.Namespace

	path string
	perm os.FileMode
}

// Path returns the file the config was loaded from, or an empty string for
// a config built in memory.
func (c *Config) Path() string {
	return c.path
}

// Update merges overlay into the config. See [Merge] for the rules; the
// config is unchanged when an error is returned.
func (c *Config) Update(overlay map[string]any) error {
	return Merge(c.Namespace, overlay)
}

// ToJSON writes the config to path, replacing any existing file. The output
// is produced by [Marshal].
func (c *Config) ToJSON(path string) error {
	data, err := Marshal(c.Namespace)
	if err != nil {
		return err
	}

	perm := c.perm
	if perm == 0 {
		perm = DefaultFileMode
	}

	if err := atomicWriteFile(path, data, perm); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	if c.path == "" {
		return ErrNoPath
	}

	return c.ToJSON(c.path)
}

// Clone returns a deep copy of the config, including its path.
func (c *Config) Clone() *Config {
	return &Config{
		Namespace: c.Namespace.Clone(),
		path:      c.path,
		perm:      c.perm,
	}
}

// Marshal encodes ns deterministically: keys sorted at every level, two
// space indentation and a trailing newline. Numbers are spelled so that they
// decode back to the same Go type.
func Marshal(ns *namespace.Namespace) ([]byte, error) {
	data, err := json.MarshalIndent(ns, "", indent)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}

	return append(data, '\n'), nil
}
