// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// layer orders configuration sources; higher layers override lower ones.
type layer int

const (
	layerDefaults layer = iota
	layerJSON
	layerEnv
	layerFlags
)

type layeredConfig struct {
	layer  layer
	config *StructuredConfig
}

type configBuilder struct {
	configs []layeredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]layeredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	ordered := slices.Clone(b.configs)
	slices.SortStableFunc(ordered, func(a, c layeredConfig) int {
		return int(a.layer) - int(c.layer)
	})

	config := new(StructuredConfig)
	for _, cfg := range ordered {
		if err := mergo.Merge(config, cfg.config, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) add(l layer, cfg *StructuredConfig) {
	b.configs = append(b.configs, layeredConfig{layer: l, config: cfg})
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.add(layerDefaults, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(layerEnv, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.add(layerFlags, flagsCfg)
	return b
}

// withJSON loads the JSON file named by the highest-priority source that set
// JSONFilePath. It must run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	var pathLayer layer = -1

	for _, cfg := range b.configs {
		if cfg.config.JSONFilePath != "" && cfg.layer > pathLayer {
			jsonPath = cfg.config.JSONFilePath
			pathLayer = cfg.layer
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.add(layerJSON, jsonCfg)

	return b
}
