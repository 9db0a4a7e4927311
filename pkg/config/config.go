package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meetfinder/pkg/environment"
	"github.com/nikmy/meetfinder/pkg/errors"
)

const (
	envEnvironment = "MEETFINDER_ENV"
	envDuration    = "MEETFINDER_DURATION"
	envFormat      = "MEETFINDER_FORMAT"
	envEvents      = "MEETFINDER_EVENTS"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`
	Defaults    Defaults        `yaml:"defaults"`
}

type Defaults struct {
	// Duration is the meeting length in minutes used when no flag is given.
	Duration int    `yaml:"duration"`
	Format   string `yaml:"format"`
	Events   string `yaml:"events"`
}

func Default() Config {
	return Config{
		Environment: environment.Development,
		Defaults: Defaults{
			Duration: 30,
			Format:   "text",
		},
	}
}

// Load reads the yaml file at path on top of Default and applies
// MEETFINDER_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.WrapFailf(err, "read %q", path)
	default:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, errors.WrapFail(err, "parse yaml")
		}
	}

	err = cfg.applyEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if raw, ok := lookup(envEnvironment); ok && raw != "" {
		c.Environment = environment.FromString(raw)
	}

	if raw, ok := lookup(envDuration); ok && raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return errors.WrapFailf(err, "parse %s", envDuration)
		}
		c.Defaults.Duration = d
	}

	if raw, ok := lookup(envFormat); ok && raw != "" {
		c.Defaults.Format = raw
	}

	if raw, ok := lookup(envEvents); ok && raw != "" {
		c.Defaults.Events = raw
	}

	return nil
}
