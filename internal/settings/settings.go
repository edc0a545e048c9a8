// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "github.com/spf13/pflag"

// EnvPrefix is prepended to every environment variable name read into
// [Settings].
const EnvPrefix = "STATICCONFIG_"

// Settings is the runtime configuration of the staticconfig command.
//
// Struct tags:
//   - env — environment variable name, without [EnvPrefix] (caarlos0/env).
type Settings struct {
	// ConfigPath is the JSON configuration file to load, validate or
	// bootstrap.
	// Env: STATICCONFIG_CONFIG
	ConfigPath string `env:"CONFIG"`

	// SchemaPath is a JSON file holding every option with its default
	// value. It defines which keys ConfigPath may contain.
	// Env: STATICCONFIG_SCHEMA
	SchemaPath string `env:"SCHEMA"`

	// LogLevel is the minimum level of log entries written to stderr
	// (e.g. "debug", "info", "warn").
	// Env: STATICCONFIG_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Strict makes reads of absent keys fail instead of creating empty
	// sections. A pointer, so that an explicit false from a later source
	// still overrides true from an earlier one.
	// Env: STATICCONFIG_STRICT
	Strict *bool `env:"STRICT"`
}

// IsStrict reports whether the strict miss policy was requested.
func (s *Settings) IsStrict() bool {
	return s.Strict != nil && *s.Strict
}

// Defaults returns the settings used when neither the environment nor the
// flags provide a value.
func Defaults() *Settings {
	return &Settings{
		ConfigPath: "config.json",
		SchemaPath: "schema.json",
		LogLevel:   "info",
	}
}

// Get loads, merges, and validates the settings from all sources: defaults,
// environment variables and the explicitly set flags of fs.
func Get(fs *pflag.FlagSet) (*Settings, error) {
	return newBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		build()
}
