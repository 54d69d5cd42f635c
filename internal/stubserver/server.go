package stubserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"learnstyle/internal/soal"
)

// Config wires a stub server.
type Config struct {
	// Questions defaults to DefaultBank.
	Questions []soal.Question
	// Token, when set, is required as a bearer token on every /soal route.
	Token  string
	Logger *slog.Logger
}

// Failure is a canned error response.
type Failure struct {
	Status int
	Detail string
}

// Calls counts requests per endpoint.
type Calls struct {
	Questions       int
	Submit          int
	Recommendations int
}

// Server is an in-memory questionnaire backend.
type Server struct {
	questions []soal.Question
	token     string
	logger    *slog.Logger
	validate  *validator.Validate

	mu            sync.Mutex
	calls         Calls
	results       map[string]Tally
	submissions   [][]soal.AnswerEntry
	omit          map[soal.Dimension]bool
	failures      map[string]Failure
	submitLatency time.Duration
}

// New constructs a server. It fails only when the default bank cannot load.
func New(cfg Config) (*Server, error) {
	questions := cfg.Questions
	if questions == nil {
		bank, err := DefaultBank()
		if err != nil {
			return nil, err
		}
		questions = bank
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		questions: questions,
		token:     cfg.Token,
		logger:    logger.With("component", "stubserver"),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		results:   map[string]Tally{},
		omit:      map[soal.Dimension]bool{},
		failures:  map[string]Failure{},
	}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Route("/soal", func(api chi.Router) {
		api.Use(s.requireToken)
		api.Get("/", s.handleQuestions)
		api.Post("/submit", s.handleSubmit)
		api.Get("/rekomendasi", s.handleRecommendations)
	})
	return r
}

// Fail makes the endpoint at path answer with failure until Reset.
func (s *Server) Fail(path string, failure Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure
}

// OmitRecommendations drops dims from the recommendation response.
func (s *Server) OmitRecommendations(dims ...soal.Dimension) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dim := range dims {
		s.omit[dim] = true
	}
}

// SetSubmitLatency delays every submit response by d.
func (s *Server) SetSubmitLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitLatency = d
}

// Reset clears failures, omissions, stored results and counters.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = Calls{}
	s.results = map[string]Tally{}
	s.submissions = nil
	s.omit = map[soal.Dimension]bool{}
	s.failures = map[string]Failure{}
	s.submitLatency = 0
}

// Calls returns the request counters.
func (s *Server) Calls() Calls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Submissions returns every accepted answer list in arrival order.
func (s *Server) Submissions() [][]soal.AnswerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]soal.AnswerEntry, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls.Questions++
	failure, failed := s.failures[soal.PathQuestions]
	s.mu.Unlock()
	if failed {
		writeDetail(w, failure.Status, failure.Detail)
		return
	}
	writeJSON(w, http.StatusOK, s.questions)
}

type submitEntry struct {
	QuestionID int    `json:"id_soal" validate:"required,gt=0"`
	Choice     string `json:"pilihan" validate:"required,oneof=A B"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls.Submit++
	failure, failed := s.failures[soal.PathSubmit]
	latency := s.submitLatency
	s.mu.Unlock()

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-r.Context().Done():
			return
		}
	}
	if failed {
		writeDetail(w, failure.Status, failure.Detail)
		return
	}

	var body []submitEntry
	decoder := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "Format jawaban tidak valid.")
		return
	}
	entries, detail := s.checkSubmission(body)
	if detail != "" {
		writeDetail(w, http.StatusUnprocessableEntity, detail)
		return
	}

	tally := Score(entries)
	s.mu.Lock()
	s.results[sessionKey(r)] = tally
	s.submissions = append(s.submissions, entries)
	s.mu.Unlock()
	s.logger.InfoContext(r.Context(), "submission scored", "session", sessionKey(r), "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusOK, tally.Response())
}

// checkSubmission requires exactly one valid entry per bank question. The
// returned detail is empty when the body is acceptable.
func (s *Server) checkSubmission(body []submitEntry) ([]soal.AnswerEntry, string) {
	if len(body) != len(s.questions) {
		return nil, fmt.Sprintf("Jumlah jawaban harus %d, diterima %d.", len(s.questions), len(body))
	}
	seen := make(map[int]bool, len(body))
	entries := make([]soal.AnswerEntry, 0, len(body))
	for i, entry := range body {
		if err := s.validate.Struct(entry); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				return nil, fmt.Sprintf("Jawaban ke-%d tidak valid (%s).", i+1, strings.ToLower(fieldErrs[0].Field()))
			}
			return nil, fmt.Sprintf("Jawaban ke-%d tidak valid.", i+1)
		}
		if entry.QuestionID > len(s.questions) {
			return nil, fmt.Sprintf("Soal %d tidak dikenal.", entry.QuestionID)
		}
		if seen[entry.QuestionID] {
			return nil, fmt.Sprintf("Soal %d dijawab lebih dari sekali.", entry.QuestionID)
		}
		seen[entry.QuestionID] = true
		entries = append(entries, soal.AnswerEntry{QuestionID: entry.QuestionID, Choice: entry.Choice})
	}
	return entries, ""
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls.Recommendations++
	failure, failed := s.failures[soal.PathRecommendations]
	tally, ok := s.results[sessionKey(r)]
	omit := make(map[soal.Dimension]bool, len(s.omit))
	for dim, v := range s.omit {
		omit[dim] = v
	}
	s.mu.Unlock()

	if failed {
		writeDetail(w, failure.Status, failure.Detail)
		return
	}
	if !ok {
		writeDetail(w, http.StatusNotFound, "Belum ada hasil tes untuk sesi ini.")
		return
	}
	writeJSON(w, http.StatusOK, Recommendations(tally, omit))
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" {
			next.ServeHTTP(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) != s.token {
			writeDetail(w, http.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.DebugContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"client_request_id", r.Header.Get("X-Request-ID"),
			"duration", time.Since(started),
		)
	})
}

// sessionKey scopes stored results: the client session id, then the token.
func sessionKey(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Session-ID")); id != "" {
		return id
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return "token:" + token
	}
	return "anonymous"
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"detail":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
