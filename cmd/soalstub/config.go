package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"learnstyle/internal/soal"
)

// config describes the soalstub YAML configuration.
type config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
		Token      string `yaml:"token"`
	} `yaml:"server"`
	Bank struct {
		Path string `yaml:"path"`
	} `yaml:"bank"`
	Behavior struct {
		OmitDimensions  []string `yaml:"omit_dimensions"`
		SubmitLatencyMS int      `yaml:"submit_latency_ms"`
	} `yaml:"behavior"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// loadConfig reads the configuration file. An empty path yields defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8000"
	}
	if cfg.Behavior.SubmitLatencyMS < 0 {
		return cfg, fmt.Errorf("behavior.submit_latency_ms must not be negative")
	}
	if _, err := omittedDimensions(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// omittedDimensions resolves behavior.omit_dimensions.
func omittedDimensions(cfg config) ([]soal.Dimension, error) {
	dims := make([]soal.Dimension, 0, len(cfg.Behavior.OmitDimensions))
	for _, name := range cfg.Behavior.OmitDimensions {
		dim, ok := soal.ParseDimension(name)
		if !ok {
			return nil, fmt.Errorf("behavior.omit_dimensions: unknown dimension %q", name)
		}
		dims = append(dims, dim)
	}
	return dims, nil
}

// submitLatency converts millisecond config to a duration.
func submitLatency(cfg config) time.Duration {
	return time.Duration(cfg.Behavior.SubmitLatencyMS) * time.Millisecond
}
