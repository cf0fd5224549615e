package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfig names the config file when --config is not given.
const EnvConfig = "GLUSHKOV_CONFIG"

// Config holds the defaults read from the config file. Flags override them.
type Config struct {
	Format  string `toml:"format"`
	Verbose bool   `toml:"verbose"`
	History string `toml:"history"`
}

var formats = []string{"text", "dot", "table", "toml"}

func defaultConfig() Config {
	return Config{Format: "text"}
}

// loadConfig reads path over the defaults. An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %q: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for _, f := range formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("format must be one of %s, not %q", strings.Join(formats, ", "), c.Format)
}
