package soal

import "time"

// Question is one questionnaire item as served by GET /soal/.
type Question struct {
	ID      int    `json:"id" yaml:"id"`
	Prompt  string `json:"pertanyaan" yaml:"pertanyaan"`
	OptionA string `json:"pilihan_a" yaml:"pilihan_a"`
	OptionB string `json:"pilihan_b" yaml:"pilihan_b"`
}

// AnswerEntry is one element of the POST /soal/submit body.
type AnswerEntry struct {
	QuestionID int    `json:"id_soal"`
	Choice     string `json:"pilihan"`
}

// Choice letters accepted by the submit endpoint.
const (
	ChoiceLetterA = "A"
	ChoiceLetterB = "B"
)

// ScoreResponse is the POST /soal/submit response body.
type ScoreResponse struct {
	ProcessingCategory    string  `json:"kategori_pemrosesan"`
	ProcessingScore       float64 `json:"skor_pemrosesan"`
	PerceptionCategory    string  `json:"kategori_persepsi"`
	PerceptionScore       float64 `json:"skor_persepsi"`
	InputCategory         string  `json:"kategori_input"`
	InputScore            float64 `json:"skor_input"`
	UnderstandingCategory string  `json:"kategori_pemahaman"`
	UnderstandingScore    float64 `json:"skor_pemahaman"`
}

// ByDimension maps the flat response onto the fixed dimension set.
func (r ScoreResponse) ByDimension() map[Dimension]DimensionScore {
	return map[Dimension]DimensionScore{
		DimensionProcessing:    {Category: r.ProcessingCategory, Score: r.ProcessingScore},
		DimensionPerception:    {Category: r.PerceptionCategory, Score: r.PerceptionScore},
		DimensionInput:         {Category: r.InputCategory, Score: r.InputScore},
		DimensionUnderstanding: {Category: r.UnderstandingCategory, Score: r.UnderstandingScore},
	}
}

// RecommendationEntry is one element of GET /soal/rekomendasi.
type RecommendationEntry struct {
	Dimension   string `json:"dimensi"`
	Explanation string `json:"penjelasan"`
	Advice      string `json:"rekomendasi"`
}

// DimensionScore holds the category label and numeric score for a dimension.
type DimensionScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Recommendation is the merged explanation and advice for a dimension.
type Recommendation struct {
	Dimension   Dimension `json:"dimension"`
	Explanation string    `json:"explanation"`
	Advice      string    `json:"advice"`
}

// Result is the display-ready outcome of a submission.
type Result struct {
	Scores          map[Dimension]DimensionScore `json:"scores"`
	Recommendations []Recommendation             `json:"recommendations"`
	SessionID       string                       `json:"session_id,omitempty"`
	SubmittedAt     time.Time                    `json:"submitted_at"`
}
