package config

import (
	"errors"
	"fmt"
)

// Errors returned while building, merging and persisting a [Config].
var (
	// ErrConfig is the root of all configuration content errors.
	ErrConfig = errors.New("config error")
	// ErrUnexpectedOption indicates an overlay key absent from the defaults.
	ErrUnexpectedOption = fmt.Errorf("%w: unexpected config option", ErrConfig)
	// ErrNotSection indicates an overlay object targeting a default value
	// that is not a section.
	ErrNotSection = fmt.Errorf("%w: config option is not a section", ErrConfig)
	// ErrNoPath indicates a save of a config that was never loaded from or
	// written to a file.
	ErrNoPath = errors.New("config has no file path")
)

// OptionError reports the dotted path of the option that failed to merge.
type OptionError struct {
	Path string
	Err  error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%s: '%s'", e.Err, e.Path)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
