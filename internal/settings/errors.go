package settings

import "errors"

// Validation errors returned by [Settings.validate].
var (
	// ErrInvalidConfigPath indicates an empty configuration file path.
	ErrInvalidConfigPath = errors.New("invalid config path")
	// ErrInvalidSchemaPath indicates an empty schema file path.
	ErrInvalidSchemaPath = errors.New("invalid schema path")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
