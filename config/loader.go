// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/staticconfig/internal/logger"
	"github.com/MKhiriev/staticconfig/namespace"
)

// Loader builds [Config] values from a [Schema].
type Loader struct {
	schema    Schema
	log       *logger.Logger
	policy    namespace.Policy
	bootstrap BootstrapFunc
	perm      os.FileMode
}

// Option configures a [Loader].
type Option func(*Loader)

// WithLogger sets the logger used for load and template events.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithPolicy sets the miss policy of the namespaces in built configs.
func WithPolicy(p namespace.Policy) Option {
	return func(l *Loader) {
		l.policy = p
	}
}

// WithBootstrap installs the hook called when [Loader.FromJSON] generates a
// template.
func WithBootstrap(fn BootstrapFunc) Option {
	return func(l *Loader) {
		l.bootstrap = fn
	}
}

// WithFileMode sets the permission of written config files.
func WithFileMode(perm os.FileMode) Option {
	return func(l *Loader) {
		l.perm = perm
	}
}

// NewLoader returns a loader producing configs described by schema.
func NewLoader(schema Schema, opts ...Option) *Loader {
	l := &Loader{
		schema: schema,
		log:    logger.Nop(),
		policy: namespace.Vivify,
		perm:   DefaultFileMode,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Defaults returns a fresh config holding only the schema defaults.
func (l *Loader) Defaults() (*Config, error) {
	root := namespace.New(namespace.WithPolicy(l.policy))
	if l.schema != nil {
		if err := l.schema(root); err != nil {
			return nil, fmt.Errorf("error building config defaults: %w", err)
		}
	}

	return &Config{Namespace: root, perm: l.perm}, nil
}

// FromMap returns the defaults with src merged on top. See [Merge].
func (l *Loader) FromMap(src map[string]any) (*Config, error) {
	cfg, err := l.Defaults()
	if err != nil {
		return nil, err
	}

	if err := cfg.Update(src); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromJSON loads the config stored at path.
//
// When path exists, its content must be a single JSON object; it is merged
// onto the defaults and the result has [StatusLoaded]. Decoding and file
// system errors are returned wrapped, never translated.
//
// When path does not exist, the defaults are written to it, the bootstrap
// hook (if any) is called once, and the result has
// [StatusTemplateGenerated]. Its Config is whatever the hook returned.
func (l *Loader) FromJSON(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l.generateTemplate(path)
		}
		return Result{}, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading config file: %w", err)
	}

	overlay, err := namespace.ParseObject(data)
	if err != nil {
		return Result{}, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	cfg, err := l.FromMap(overlay)
	if err != nil {
		return Result{}, fmt.Errorf("error loading config file %s: %w", path, err)
	}
	cfg.path = path

	l.log.Debug().Str("path", path).Int("options", len(overlay)).Msg("config loaded")

	return Result{Status: StatusLoaded, Config: cfg, Path: path}, nil
}

func (l *Loader) generateTemplate(path string) (Result, error) {
	template, err := l.Defaults()
	if err != nil {
		return Result{}, err
	}

	if err := template.ToJSON(path); err != nil {
		return Result{}, err
	}
	template.path = path

	message := path + " not found, generated template"
	l.log.Info().Str("path", path).Msg("generated config template")

	result := Result{Status: StatusTemplateGenerated, Path: path, Message: message}
	if l.bootstrap == nil {
		return result, nil
	}

	cfg, err := l.bootstrap(path, message, template)
	if err != nil {
		return result, fmt.Errorf("error in bootstrap hook: %w", err)
	}
	result.Config = cfg

	return result, nil
}
