package questionnaire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSubmissionInFlight is returned when Finish is called while a submission runs.
	ErrSubmissionInFlight = errors.New("submission already in progress")
	// ErrIndexOutOfRange is returned for answers outside the current page.
	ErrIndexOutOfRange = errors.New("question index out of range")
	// ErrInvalidChoice is returned for choices other than A or B.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrNotInitialized is returned when the question set has not been loaded.
	ErrNotInitialized = errors.New("questionnaire not initialized")
)

// IncompleteError lists unanswered questions by 1-based number.
type IncompleteError struct {
	Numbers []int
}

// Error renders the missing question numbers.
func (e *IncompleteError) Error() string {
	parts := make([]string, 0, len(e.Numbers))
	for _, n := range e.Numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	return fmt.Sprintf("unanswered questions: %s", strings.Join(parts, ", "))
}

// First returns the lowest missing question number.
func (e *IncompleteError) First() int {
	if len(e.Numbers) == 0 {
		return 0
	}
	return e.Numbers[0]
}

// QuestionCountError reports a backend question set of the wrong size.
type QuestionCountError struct {
	Got int
}

// Error renders the mismatch.
func (e *QuestionCountError) Error() string {
	return fmt.Sprintf("backend returned %d questions, want %d", e.Got, TotalQuestions)
}
