package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvAPIURL      = "LEARNSTYLE_API_URL"
	EnvToken       = "LEARNSTYLE_TOKEN"
	EnvStorage     = "LEARNSTYLE_STORAGE"
	EnvStoragePath = "LEARNSTYLE_STORAGE_PATH"
	EnvRedisURL    = "LEARNSTYLE_REDIS_URL"
	EnvLocale      = "LEARNSTYLE_LOCALE"
	EnvLogLevel    = "LEARNSTYLE_LOG_LEVEL"
	EnvLogFile     = "LEARNSTYLE_LOG_FILE"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a lookup that prefers the process environment and falls
// back to the dotenv file at path. A missing file is not an error.
func EnvLookup(path string) (LookupFunc, error) {
	values := map[string]string{}
	if path != "" {
		read, err := godotenv.Read(path)
		switch {
		case err == nil:
			values = read
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// ApplyEnv copies set variables over cfg.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		return
	}
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvAPIURL, &cfg.API.BaseURL},
		{EnvToken, &cfg.API.Token},
		{EnvStorage, &cfg.Storage.Backend},
		{EnvStoragePath, &cfg.Storage.Path},
		{EnvRedisURL, &cfg.Storage.RedisURL},
		{EnvLocale, &cfg.Questionnaire.Locale},
		{EnvLogLevel, &cfg.Log.Level},
		{EnvLogFile, &cfg.Log.File},
	}
	for _, o := range overrides {
		if v, ok := lookup(o.key); ok && v != "" {
			*o.target = v
		}
	}
}
