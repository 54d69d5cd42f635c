package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads, parses, applies env overrides, normalizes, and validates a
// config file.
func Load(path string, lookup LookupFunc) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	return finish(cfg, lookup)
}

// ResolveOptions controls config discovery.
type ResolveOptions struct {
	// Path is an explicit config file; discovery is skipped when set.
	Path string
	// StartDir begins the upward search; defaults to the working directory.
	StartDir string
}

// Resolved is a loaded config and where it came from.
type Resolved struct {
	Config Config
	// Path is empty when defaults were used.
	Path string
}

// Resolve finds and loads the config. Without a config file the defaults
// plus environment overrides are used. A .env file next to the config
// directory, or in the start directory, supplies further variables.
func Resolve(opts ResolveOptions) (Resolved, error) {
	path := opts.Path
	if path == "" {
		found, err := FindConfigPath(opts.StartDir)
		switch {
		case err == nil:
			path = found
		case errors.Is(err, ErrConfigNotFound):
		default:
			return Resolved{}, err
		}
	}

	envDir := opts.StartDir
	if path != "" {
		envDir = RootFromConfigPath(path)
	}
	if envDir == "" {
		envDir = "."
	}
	lookup, err := EnvLookup(filepath.Join(envDir, EnvFileName))
	if err != nil {
		return Resolved{}, err
	}

	if path == "" {
		cfg, err := finish(Config{Version: 1}, lookup)
		return Resolved{Config: cfg}, err
	}
	cfg, err := Load(path, lookup)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Config: cfg, Path: path}, nil
}

func finish(cfg Config, lookup LookupFunc) (Config, error) {
	ApplyEnv(&cfg, lookup)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
