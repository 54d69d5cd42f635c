package questionnaire

import (
	"encoding/json"
	"fmt"

	"learnstyle/internal/soal"
)

// TotalQuestions is the fixed size of the questionnaire.
const TotalQuestions = 44

// unansweredValue is the persisted marker for an empty slot.
const unansweredValue = -1

// Choice is the selected option of a question.
type Choice int8

const (
	// ChoiceA selects the first option.
	ChoiceA Choice = 0
	// ChoiceB selects the second option.
	ChoiceB Choice = 1
)

// Valid reports whether c is A or B.
func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB
}

// Letter returns the wire letter for the choice.
func (c Choice) Letter() string {
	if c == ChoiceB {
		return soal.ChoiceLetterB
	}
	return soal.ChoiceLetterA
}

// String implements fmt.Stringer.
func (c Choice) String() string {
	if !c.Valid() {
		return fmt.Sprintf("choice(%d)", int(c))
	}
	return c.Letter()
}

// ParseChoice accepts a/b letters and 0/1 indexes.
func ParseChoice(s string) (Choice, bool) {
	switch s {
	case "a", "A", "0":
		return ChoiceA, true
	case "b", "B", "1":
		return ChoiceB, true
	default:
		return 0, false
	}
}

// Answer is either Unanswered or an answered Choice.
type Answer struct {
	choice   Choice
	answered bool
}

// Unanswered is the zero Answer.
var Unanswered = Answer{}

// Answered wraps a choice.
func Answered(c Choice) Answer {
	return Answer{choice: c, answered: true}
}

// Choice returns the selected choice and whether the slot is answered.
func (a Answer) Choice() (Choice, bool) {
	return a.choice, a.answered
}

// IsAnswered reports whether the slot holds a choice.
func (a Answer) IsAnswered() bool {
	return a.answered
}

// AnswerSet holds one slot per question; index i is question i+1.
type AnswerSet [TotalQuestions]Answer

// Count returns the number of answered slots.
func (s *AnswerSet) Count() int {
	n := 0
	for _, a := range s {
		if a.answered {
			n++
		}
	}
	return n
}

// Missing returns the 1-based numbers of unanswered questions in [from, to).
func (s *AnswerSet) Missing(from, to int) []int {
	from = max(from, 0)
	to = min(to, TotalQuestions)
	var missing []int
	for i := from; i < to; i++ {
		if !s[i].answered {
			missing = append(missing, i+1)
		}
	}
	return missing
}

// Entries converts a complete set into the submit wire format.
func (s *AnswerSet) Entries() ([]soal.AnswerEntry, error) {
	entries := make([]soal.AnswerEntry, 0, TotalQuestions)
	for i, a := range s {
		choice, ok := a.Choice()
		if !ok {
			return nil, &IncompleteError{Numbers: s.Missing(0, TotalQuestions)}
		}
		entries = append(entries, soal.AnswerEntry{QuestionID: i + 1, Choice: choice.Letter()})
	}
	return entries, nil
}

// MarshalJSON encodes the set as 44 integers with -1 for unanswered slots.
func (s AnswerSet) MarshalJSON() ([]byte, error) {
	values := make([]int, TotalQuestions)
	for i, a := range s {
		if a.answered {
			values[i] = int(a.choice)
		} else {
			values[i] = unansweredValue
		}
	}
	return json.Marshal(values)
}

// UnmarshalJSON decodes the integer form, rejecting wrong lengths or values.
// The receiver is left untouched on error.
func (s *AnswerSet) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != TotalQuestions {
		return fmt.Errorf("answer set has %d entries, want %d", len(values), TotalQuestions)
	}
	var decoded AnswerSet
	for i, v := range values {
		switch {
		case v == unansweredValue:
			decoded[i] = Unanswered
		case v == int(ChoiceA) || v == int(ChoiceB):
			decoded[i] = Answered(Choice(v))
		default:
			return fmt.Errorf("answer %d has invalid value %d", i+1, v)
		}
	}
	*s = decoded
	return nil
}
