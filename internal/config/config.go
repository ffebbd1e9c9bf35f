// Package config handles loading and validation of the QOC weight document.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is the default configuration file name (without extension).
	DefaultConfigFile = ".qoc"
	// DefaultConfigType is the default configuration file type.
	DefaultConfigType = "yaml"
)

// Config holds the full weight document.
type Config struct {
	// Languages maps a language identifier to its weight configuration.
	Languages map[string]LanguageConfig `mapstructure:"languages" yaml:"languages"`
}

// LanguageConfig holds the per-language node weight table.
type LanguageConfig struct {
	// NodeWeights maps a syntax node kind name to its weight. Kinds not
	// listed here weigh 1.0; an explicit 0 excludes the kind from the
	// metric while its subtree is still visited.
	NodeWeights map[string]float64 `mapstructure:"node_weights" yaml:"node_weights"`
}

// Load loads the weight document from file and environment variables,
// falling back to the built-in defaults for anything unset. path may be
// empty, in which case the default file (.qoc.yaml in the current
// directory) is used if present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigFile)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QOC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// With the default search path a missing file just means presets; an
	// explicitly named file must exist, and malformed files are always fatal.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading weight config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing weight config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the weight document is well formed.
func (c *Config) Validate() error {
	for lang, lc := range c.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("weight config: empty language name")
		}
		for kind := range lc.NodeWeights {
			if strings.TrimSpace(kind) == "" {
				return fmt.Errorf("weight config: language %q has an empty node kind", lang)
			}
		}
	}
	return nil
}

// setDefaults registers the built-in weight presets so a missing config
// file still yields a usable table.
func setDefaults(v *viper.Viper) {
	for lang, weights := range DefaultWeights {
		for kind, w := range weights {
			v.SetDefault("languages."+lang+".node_weights."+kind, w)
		}
	}
}
