package config

import (
	"fmt"
	"io"
)

// Status tells how [Loader.FromJSON] finished.
type Status int

const (
	// StatusLoaded means the file existed and was merged onto the defaults.
	StatusLoaded Status = iota
	// StatusTemplateGenerated means the file was missing and the defaults
	// were written to it as a template for the operator to review.
	StatusTemplateGenerated
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusTemplateGenerated:
		return "template generated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of [Loader.FromJSON].
type Result struct {
	Status Status
	// Config is the loaded config. After a template was generated it is the
	// value returned by the bootstrap hook, nil without one.
	Config *Config
	Path   string
	// Message explains a generated template to the operator.
	Message string
}

// TemplateGenerated reports whether the config file had to be created.
func (r Result) TemplateGenerated() bool {
	return r.Status == StatusTemplateGenerated
}

// BootstrapFunc is called once after [Loader.FromJSON] wrote a template to
// path. The returned config becomes Result.Config.
type BootstrapFunc func(path, message string, template *Config) (*Config, error)

// UseTemplate is a [BootstrapFunc] that continues with the freshly written
// defaults.
func UseTemplate(_, _ string, template *Config) (*Config, error) {
	return template, nil
}

// HaltOnTemplate returns a [BootstrapFunc] that prints the message to w and
// calls exit with status 0, so the operator can edit the template before
// the application runs. exit is usually os.Exit.
func HaltOnTemplate(w io.Writer, exit func(code int)) BootstrapFunc {
	return func(_, message string, _ *Config) (*Config, error) {
		if _, err := fmt.Fprintln(w, message); err != nil {
			return nil, fmt.Errorf("error printing bootstrap message: %w", err)
		}

		exit(0)
		return nil, nil
	}
}
