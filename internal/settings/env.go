package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Names are taken from the `env` tags of [Settings] and prefixed
// with [EnvPrefix].
//
// Returns a wrapped error if a value cannot be converted to the field type.
func parseEnv(cfg *Settings) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
