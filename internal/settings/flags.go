package settings

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig   = "config"
	FlagSchema   = "schema"
	FlagLogLevel = "log-level"
	FlagStrict   = "strict"
)

// RegisterFlags defines the settings flags on fs.
//
// Flags:
//
//	-c/--config     JSON configuration file path
//	-s/--schema     JSON file with every option and its default value
//	--log-level     log level (debug, info, warn, error)
//	--strict        fail on reads of absent keys
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON configuration file path")
	fs.StringP(FlagSchema, "s", "", "JSON file with every option and its default value")
	fs.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	fs.Bool(FlagStrict, false, "fail on reads of absent keys")
}

// parseFlags reads the flags registered by [RegisterFlags]. Only flags that
// were set explicitly are copied, so unset flags never override other
// sources.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case FlagConfig:
			cfg.ConfigPath, err = fs.GetString(FlagConfig)
		case FlagSchema:
			cfg.SchemaPath, err = fs.GetString(FlagSchema)
		case FlagLogLevel:
			cfg.LogLevel, err = fs.GetString(FlagLogLevel)
		case FlagStrict:
			var strict bool
			strict, err = fs.GetBool(FlagStrict)
			cfg.Strict = &strict
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error getting flag settings: %w", err)
	}

	return cfg, nil
}
