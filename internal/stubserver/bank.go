package stubserver

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"learnstyle/internal/soal"
)

//go:embed questions.yml
var defaultBank []byte

type bankFile struct {
	Questions []soal.Question `yaml:"questions"`
}

// DefaultBank returns the built-in 44-item question bank.
func DefaultBank() ([]soal.Question, error) {
	return LoadBank(bytes.NewReader(defaultBank))
}

// LoadBankFile reads a question bank from a YAML file.
func LoadBankFile(path string) ([]soal.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	questions, err := LoadBank(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return questions, nil
}

// LoadBank decodes a question bank and checks that ids run 1..n in order.
func LoadBank(r io.Reader) ([]soal.Question, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var file bankFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	var extra any
	if err := decoder.Decode(&extra); err == nil {
		return nil, errors.New("decode bank: multiple YAML documents")
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, errors.New("bank has no questions")
	}
	for i, q := range file.Questions {
		if q.ID != i+1 {
			return nil, fmt.Errorf("question %d has id %d", i+1, q.ID)
		}
		if q.Prompt == "" || q.OptionA == "" || q.OptionB == "" {
			return nil, fmt.Errorf("question %d is missing text", q.ID)
		}
	}
	return file.Questions, nil
}
