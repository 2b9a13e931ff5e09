package chembl

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the public ChEMBL REST endpoint.
const DefaultBaseURL = "https://www.ebi.ac.uk/chembl/api/data"

// DefaultTimeout bounds a single HTTP request when the config does not
// say otherwise.
const DefaultTimeout = 30 * time.Second

// Config holds the REST client settings.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single HTTP request, as a Go duration string
	// such as "30s". Empty means DefaultTimeout.
	Timeout string `yaml:"timeout,omitempty"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent,omitempty"`
}

// DefaultConfig returns a config pointed at the public ChEMBL API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "targetroll",
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// GetTimeout parses the timeout, falling back to DefaultTimeout when the
// field is empty or unparseable.
func (c Config) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return DefaultTimeout
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return DefaultTimeout
	}
	return d
}

// Validate checks the config for usable values.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
	}
	return nil
}
