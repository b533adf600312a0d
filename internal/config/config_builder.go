// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partially filled configs from several sources and
// merges them in insertion order.
type configBuilder[T any] struct {
	configs []*T
	err     error
}

func newConfigBuilder[T any](defaults *T) *configBuilder[T] {
	b := &configBuilder[T]{
		configs: make([]*T, 0, 4),
	}
	if defaults != nil {
		b.configs = append(b.configs, defaults)
	}
	return b
}

// with appends cfg as the next source, or records err if the source failed.
func (b *configBuilder[T]) with(cfg *T, err error) *configBuilder[T] {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder[T]) build(validate func(*T) error) (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}
	return config, validate(config)
}
