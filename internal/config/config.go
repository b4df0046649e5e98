package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "propgen.yaml"

type Config struct {
	Version int      `yaml:"version"`
	Schemas []Schema `yaml:"schemas"`
	Output  Output   `yaml:"output"`
}

// Schema is a glob of schema files relative to the working directory.
type Schema struct {
	Path string `yaml:"path"`
}

type Output struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if len(c.Schemas) == 0 {
		return fmt.Errorf("no schemas configured")
	}

	for i, s := range c.Schemas {
		if s.Path == "" {
			return fmt.Errorf("schemas[%d] has an empty path", i)
		}
	}

	if c.Output.Path == "" {
		return fmt.Errorf("output path is missing")
	}

	return nil
}
