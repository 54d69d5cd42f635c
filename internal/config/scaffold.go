package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
api:
  base_url: "http://localhost:8000"
  token: ""
  timeout: 15s

questionnaire:
  page_size: 11
  locale: id

storage:
  backend: file
  path: "~/.local/state/learnstyle/progress.json"
  redis_url: ""
  key_prefix: learnstyle

log:
  level: info
  format: text
  file: ""

ui:
  mode: auto
  no_color: false
`

// Scaffold writes a starter config to path. Existing files are left alone.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
