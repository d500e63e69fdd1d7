package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultProbeTimeout bounds a single toolchain version probe.
const DefaultProbeTimeout = 20 * time.Second

// Config is one layered-configuration snapshot. Precedence when resolving
// the active toolchain: Root (explicit override), then AlternateTools,
// then default discovery. Values from GOVCTL_* environment variables
// override the file on load.
type Config struct {
	// Root is the explicit toolchain root override; empty means unset.
	Root string `yaml:"root" json:"root,omitempty" env:"GOVCTL_ROOT"`

	// AlternateTools maps a logical tool name (e.g. "go") to a specific
	// executable path, e.g. go: /opt/tip/bin/go3.
	AlternateTools map[string]string `yaml:"alternate_tools" json:"alternate_tools,omitempty" env:"GOVCTL_ALTERNATE_TOOLS"`

	// ProbeTimeout bounds the `go version` child process.
	ProbeTimeout time.Duration `yaml:"probe_timeout" json:"probe_timeout,omitempty" env:"GOVCTL_PROBE_TIMEOUT"`
}

// Timeout returns ProbeTimeout, falling back to DefaultProbeTimeout.
func (c Config) Timeout() time.Duration {
	if c.ProbeTimeout > 0 {
		return c.ProbeTimeout
	}
	return DefaultProbeTimeout
}

// Load reads config.yaml from the govctl config dir and overlays GOVCTL_*
// environment variables. A missing file yields the zero config and no error.
func Load() (Config, error) {
	var cfg Config
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if uerr := yaml.Unmarshal(b, &cfg); uerr != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, uerr)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
