package soal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError reports a non-2xx response from the backend.
type HTTPError struct {
	Status  int
	Message string
}

// Error renders the status and the server message when present.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d", e.Status)
}

// IsUnauthorized reports whether err carries an authentication failure.
func IsUnauthorized(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.Status == http.StatusUnauthorized || httpErr.Status == http.StatusForbidden
}

// ServerMessage returns the message the backend attached to err, if any.
func ServerMessage(err error) (string, bool) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Message == "" {
		return "", false
	}
	return httpErr.Message, true
}

// errorBody covers the error shapes the platform's services emit:
// {"detail": "..."}, {"message": "..."}, {"error": "..."} and the
// {"ok": false, "error": {"message": "..."}} envelope.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func decodeHTTPError(status int, body []byte) error {
	return &HTTPError{Status: status, Message: extractMessage(body)}
}

func extractMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if msg := rawString(parsed.Detail); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(parsed.Message); msg != "" {
		return msg
	}
	if msg := rawString(parsed.Error); msg != "" {
		return msg
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if len(parsed.Error) > 0 && json.Unmarshal(parsed.Error, &envelope) == nil {
		return strings.TrimSpace(envelope.Message)
	}
	return ""
}

// rawString returns raw as a trimmed string when it holds a JSON string.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
