package config

import "strings"

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	cfg.API.Token = strings.TrimSpace(cfg.API.Token)
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultTimeout
	}

	if cfg.Questionnaire.PageSize == 0 {
		cfg.Questionnaire.PageSize = DefaultPageSize
	}
	cfg.Questionnaire.Locale = lowerOr(cfg.Questionnaire.Locale, DefaultLocale)

	cfg.Storage.Backend = lowerOr(cfg.Storage.Backend, StorageFile)
	if cfg.Storage.Backend == StorageFile && strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = DefaultStatePath()
	}
	if strings.TrimSpace(cfg.Storage.KeyPrefix) == "" {
		cfg.Storage.KeyPrefix = DefaultKeyPrefix
	}

	cfg.Log.Level = lowerOr(cfg.Log.Level, "info")
	cfg.Log.Format = lowerOr(cfg.Log.Format, "text")
	cfg.UI.Mode = lowerOr(cfg.UI.Mode, "auto")
}

func lowerOr(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
