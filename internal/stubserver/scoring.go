package stubserver

import "learnstyle/internal/soal"

// Pole names the two ends of a dimension, A first.
type Pole struct {
	A string
	B string
}

// Poles lists the ends of each dimension as labelled by the backend.
var Poles = map[soal.Dimension]Pole{
	soal.DimensionProcessing:    {A: "Aktif", B: "Reflektif"},
	soal.DimensionPerception:    {A: "Sensing", B: "Intuitif"},
	soal.DimensionInput:         {A: "Visual", B: "Verbal"},
	soal.DimensionUnderstanding: {A: "Sekuensial", B: "Global"},
}

// Strength labels.
const (
	StrengthBalanced = "Seimbang"
	StrengthModerate = "Sedang"
	StrengthStrong   = "Kuat"
)

// DimensionOf returns the dimension an item belongs to; items cycle through
// the four dimensions starting with processing.
func DimensionOf(questionID int) soal.Dimension {
	return soal.Dimensions[(questionID-1)%len(soal.Dimensions)]
}

// Tally is the A-minus-B count per dimension.
type Tally map[soal.Dimension]int

// Score tallies entries. Entries must already be validated.
func Score(entries []soal.AnswerEntry) Tally {
	tally := make(Tally, len(soal.Dimensions))
	for _, dim := range soal.Dimensions {
		tally[dim] = 0
	}
	for _, entry := range entries {
		dim := DimensionOf(entry.QuestionID)
		if entry.Choice == soal.ChoiceLetterA {
			tally[dim]++
		} else {
			tally[dim]--
		}
	}
	return tally
}

// Strength classifies the magnitude of a score.
func Strength(score int) string {
	if score < 0 {
		score = -score
	}
	switch {
	case score <= 3:
		return StrengthBalanced
	case score <= 7:
		return StrengthModerate
	default:
		return StrengthStrong
	}
}

// Category renders the label for score on dim, e.g. "Visual Kuat".
func Category(dim soal.Dimension, score int) string {
	strength := Strength(score)
	if strength == StrengthBalanced {
		return strength
	}
	pole := Poles[dim]
	if score > 0 {
		return pole.A + " " + strength
	}
	return pole.B + " " + strength
}

// Response converts a tally into the submit response body.
func (t Tally) Response() soal.ScoreResponse {
	return soal.ScoreResponse{
		ProcessingCategory:    Category(soal.DimensionProcessing, t[soal.DimensionProcessing]),
		ProcessingScore:       float64(t[soal.DimensionProcessing]),
		PerceptionCategory:    Category(soal.DimensionPerception, t[soal.DimensionPerception]),
		PerceptionScore:       float64(t[soal.DimensionPerception]),
		InputCategory:         Category(soal.DimensionInput, t[soal.DimensionInput]),
		InputScore:            float64(t[soal.DimensionInput]),
		UnderstandingCategory: Category(soal.DimensionUnderstanding, t[soal.DimensionUnderstanding]),
		UnderstandingScore:    float64(t[soal.DimensionUnderstanding]),
	}
}
