package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorruptFile reports a store file that is not a JSON object of strings.
var ErrCorruptFile = errors.New("progress file is corrupt")

// FileStore persists all keys as one JSON object in a file.
// Writes replace the file with an atomic rename; a corrupt file is
// treated as empty by the next write.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore constructs a store backed by path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("progress file path is required")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil && !errors.Is(err, ErrCorruptFile) {
		return err
	}
	if values == nil {
		values = map[string]string{}
	}
	values[key] = value
	return s.write(values)
}

// Clear removes key.
func (s *FileStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.read()
	if err != nil && !errors.Is(err, ErrCorruptFile) {
		return err
	}
	if err == nil {
		if _, ok := values[key]; !ok {
			return nil
		}
	}
	if values == nil {
		values = map[string]string{}
	}
	delete(values, key)
	return s.write(values)
}

// read loads the file, returning an empty map when it does not exist.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptFile, s.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

// write persists values using an atomic rename.
func (s *FileStore) write(values map[string]string) error {
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
