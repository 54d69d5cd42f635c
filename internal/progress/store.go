package progress

import "context"

// Store is a synchronous key-value store over string keys and values.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Clear removes key. Clearing a missing key is not an error.
	Clear(ctx context.Context, key string) error
}

// Key names for the values the questionnaire keeps between sessions.
const (
	KeyAnswers    = "answers"
	KeyPage       = "page"
	KeyProcessing = "processing"
	KeyResult     = "result"
)

// AllKeys lists every key the questionnaire writes.
var AllKeys = []string{KeyAnswers, KeyPage, KeyProcessing, KeyResult}
