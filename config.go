package teamcheck

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
}

// LoadConfig reads a YAML config file. An empty path returns an empty Config.
// Relative input and output paths are used as is, relative to the working
// directory and not to the config file.
func LoadConfig(path string) (*Config, error) {
	c := Config{}
	if path == "" {
		return &c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config failed")
	}
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s failed", path)
	}
	// input and output are checked after flags are applied
	return &c, c.validateLogLevel()
}

// Override replaces fields of c with non-empty fields of o.
func (c *Config) Override(o *Config) {
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c *Config) validateLogLevel() error {
	if c.LogLevel != "" && !validLogLevel(c.LogLevel) {
		return errors.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	if c.Input != "" && c.Input == c.Output {
		return errors.Errorf("input and output are the same file: %s", c.Input)
	}
	return nil
}
