// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [Settings] can be used to run a command.
func (cfg *Settings) validate() error {
	if cfg.ConfigPath == "" {
		return ErrInvalidConfigPath
	}

	if cfg.SchemaPath == "" {
		return ErrInvalidSchemaPath
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
