package questionnaire

import (
	"fmt"
	"strconv"
	"strings"
)

// Messages holds the user-facing texts the controller produces.
type Messages struct {
	LoadFailed       string
	SessionExpired   string
	SubmitFailed     string
	WrongCount       string
	IncompletePage   string
	IncompleteAll    string
	SubmissionActive string
}

// Locales known to the questionnaire.
const (
	LocaleIndonesian = "id"
	LocaleEnglish    = "en"
)

var catalog = map[string]Messages{
	LocaleIndonesian: {
		LoadFailed:       "Gagal memuat soal. Silakan muat ulang halaman.",
		SessionExpired:   "Sesi Anda telah berakhir. Mengalihkan ke halaman login...",
		SubmitFailed:     "Gagal mengirim jawaban. Silakan coba lagi.",
		WrongCount:       "Jumlah soal tidak sesuai (%d dari %d).",
		IncompletePage:   "Soal berikut belum dijawab: %s",
		IncompleteAll:    "Masih ada soal yang belum dijawab: %s",
		SubmissionActive: "Jawaban sedang dikirim...",
	},
	LocaleEnglish: {
		LoadFailed:       "Could not load the questions. Please reload.",
		SessionExpired:   "Your session has expired. Redirecting to login...",
		SubmitFailed:     "Could not submit your answers. Please try again.",
		WrongCount:       "Unexpected number of questions (%d of %d).",
		IncompletePage:   "These questions are not answered yet: %s",
		IncompleteAll:    "Some questions are still unanswered: %s",
		SubmissionActive: "Submitting your answers...",
	},
}

// MessagesFor returns the catalog for locale, falling back to Indonesian.
func MessagesFor(locale string) Messages {
	if m, ok := catalog[strings.ToLower(strings.TrimSpace(locale))]; ok {
		return m
	}
	return catalog[LocaleIndonesian]
}

// Incomplete formats a missing-question banner.
func (m Messages) Incomplete(numbers []int, wholeSet bool) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	format := m.IncompletePage
	if wholeSet {
		format = m.IncompleteAll
	}
	return fmt.Sprintf(format, strings.Join(parts, ", "))
}

// QuestionCount formats the wrong-size banner.
func (m Messages) QuestionCount(got int) string {
	return fmt.Sprintf(m.WrongCount, got, TotalQuestions)
}
