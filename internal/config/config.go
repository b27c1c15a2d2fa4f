// Package config loads cmd/netflow's configuration by layering
// defaults, an optional YAML file, and environment variables, in
// increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NETFLOW_"

// Config is cmd/netflow's resolved configuration. Command-line flags
// (parsed by the binary itself, not this package) override whatever
// Load resolves.
type Config struct {
	Algorithm string    `koanf:"algorithm"` // dinic, edmonds-karp
	Output    string    `koanf:"output"`    // plain, json
	Log       LogConfig `koanf:"log"`
}

// LogConfig mirrors internal/logging.Config's shape for koanf binding.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Output string `koanf:"output"`
	File   string `koanf:"file"`
}

var defaults = map[string]any{
	"algorithm":  "dinic",
	"output":     "plain",
	"log.level":  "info",
	"log.format": "text",
	"log.output": "stderr",
	"log.file":   "",
}

// Load resolves Config from, in increasing priority: built-in defaults,
// the YAML file at configPath (if non-empty; a missing or unreadable
// file is an error), and NETFLOW_-prefixed environment variables.
func Load(configPath string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("config: load file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// normalizeEnvKey maps NETFLOW_LOG_LEVEL -> log.level.
func normalizeEnvKey(key string) string {
	trimmed := strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(strings.ToLower(trimmed), "_", ".")
}
