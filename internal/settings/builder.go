package settings

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type builder struct {
	sources []*Settings
	err     error
}

func newBuilder() *builder {
	return &builder{
		sources: make([]*Settings, 0, 3),
	}
}

func (b *builder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	cfg := new(Settings)
	for _, src := range b.sources {
		if err := mergo.Merge(cfg, src, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func (b *builder) withDefaults() *builder {
	b.sources = append(b.sources, Defaults())
	return b
}

func (b *builder) withEnv() *builder {
	envCfg := &Settings{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envCfg)
	return b
}

func (b *builder) withFlags(fs *pflag.FlagSet) *builder {
	flagCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, flagCfg)
	return b
}
