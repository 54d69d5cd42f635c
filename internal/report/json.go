package report

import (
	"encoding/json"
	"fmt"
	"io"

	"learnstyle/internal/soal"
)

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result soal.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// ReadJSON decodes a result written by WriteJSON.
func ReadJSON(r io.Reader) (soal.Result, error) {
	var result soal.Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return soal.Result{}, fmt.Errorf("decode result: %w", err)
	}
	return result, nil
}
