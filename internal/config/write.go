package config

import (
	"os"

	"go.yaml.in/yaml/v3"
)

// WriteConfig serializes the given Config to YAML and writes it to path.
func WriteConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	content := "# QOC weight configuration\n" +
		"# Node kinds not listed here weigh 1.0; a weight of 0 excludes the\n" +
		"# kind from the metric without pruning its subtree.\n" + string(data)
	return os.WriteFile(path, []byte(content), 0644)
}
