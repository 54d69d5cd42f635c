package config

import "time"

// Config is the learnstyle client configuration.
type Config struct {
	Version       int                 `yaml:"version" validate:"eq=1"`
	API           APIConfig           `yaml:"api"`
	Questionnaire QuestionnaireConfig `yaml:"questionnaire"`
	Storage       StorageConfig       `yaml:"storage"`
	Log           LogConfig           `yaml:"log"`
	UI            UIConfig            `yaml:"ui"`
}

// APIConfig locates the questionnaire backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,http_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// QuestionnaireConfig controls paging and language.
type QuestionnaireConfig struct {
	PageSize int    `yaml:"page_size" validate:"gte=1,lte=44"`
	Locale   string `yaml:"locale" validate:"oneof=id en"`
}

// StorageConfig selects where progress is kept between runs.
type StorageConfig struct {
	Backend   string `yaml:"backend" validate:"oneof=file memory redis"`
	Path      string `yaml:"path" validate:"required_if=Backend file"`
	RedisURL  string `yaml:"redis_url" validate:"required_if=Backend redis"`
	// KeyPrefix namespaces redis keys; the file and memory backends ignore it.
	KeyPrefix string `yaml:"key_prefix" validate:"required_if=Backend redis"`
	// TTL expires redis entries; zero keeps them.
	TTL time.Duration `yaml:"ttl" validate:"gte=0"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	File   string `yaml:"file"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	Mode    string `yaml:"mode" validate:"oneof=auto live plain"`
	NoColor bool   `yaml:"no_color"`
}

// Storage backends.
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Default values applied by Normalize.
const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 15 * time.Second
	DefaultPageSize  = 11
	DefaultLocale    = "id"
	DefaultKeyPrefix = "learnstyle"
)

// Default returns a config with every default applied.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
