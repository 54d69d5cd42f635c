package questionnaire

import (
	"context"
	"fmt"
	"sync"
	"time"

	"learnstyle/internal/progress"
	"learnstyle/internal/soal"
)

// testQuestions builds n numbered questions.
func testQuestions(n int) []soal.Question {
	questions := make([]soal.Question, n)
	for i := range questions {
		questions[i] = soal.Question{
			ID:      i + 1,
			Prompt:  fmt.Sprintf("Pertanyaan %d", i+1),
			OptionA: "pilihan a",
			OptionB: "pilihan b",
		}
	}
	return questions
}

type fakeSource struct {
	questions []soal.Question
	err       error
	calls     int
}

func (f *fakeSource) FetchQuestions(context.Context) ([]soal.Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeSubmitter struct {
	mu            sync.Mutex
	submitted     [][]soal.AnswerEntry
	recCalls      int
	scores        soal.ScoreResponse
	recs          []soal.RecommendationEntry
	submitErr     error
	recErr        error
	block         chan struct{}
	submitStarted chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, answers []soal.AnswerEntry) (soal.ScoreResponse, error) {
	f.mu.Lock()
	f.submitted = append(f.submitted, answers)
	block, started := f.block, f.submitStarted
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return soal.ScoreResponse{}, ctx.Err()
		}
	}
	if f.submitErr != nil {
		return soal.ScoreResponse{}, f.submitErr
	}
	return f.scores, nil
}

func (f *fakeSubmitter) FetchRecommendations(context.Context) ([]soal.RecommendationEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recCalls++
	if f.recErr != nil {
		return nil, f.recErr
	}
	return f.recs, nil
}

func (f *fakeSubmitter) submitCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

type recordingNavigator struct {
	mu      sync.Mutex
	routes  []Route
	scrolls int
}

func (n *recordingNavigator) Navigate(route Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) ScrollToTop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scrolls++
}

func (n *recordingNavigator) Routes() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.routes...)
}

// harness bundles a controller with its fakes.
type harness struct {
	ctrl      *Controller
	source    *fakeSource
	submitter *fakeSubmitter
	store     *progress.MemoryStore
	nav       *recordingNavigator
	delayed   []time.Duration
	pending   []func()
}

func newHarness(store *progress.MemoryStore) *harness {
	if store == nil {
		store = progress.NewMemoryStore()
	}
	h := &harness{
		source:    &fakeSource{questions: testQuestions(TotalQuestions)},
		submitter: &fakeSubmitter{recs: fullRecommendations()},
		store:     store,
		nav:       &recordingNavigator{},
	}
	h.ctrl = New(Config{
		Questions: h.source,
		Submitter: h.submitter,
		Cache:     progress.NewCache(store, nil),
		Navigator: h.nav,
		PageSize:  DefaultPageSize,
		SessionID: "test-session",
		Now:       func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) },
		AfterFunc: func(d time.Duration, f func()) {
			h.delayed = append(h.delayed, d)
			h.pending = append(h.pending, f)
		},
	})
	return h
}

func fullRecommendations() []soal.RecommendationEntry {
	return []soal.RecommendationEntry{
		{Dimension: "Pemrosesan", Explanation: "exp proc", Advice: "adv proc"},
		{Dimension: "Persepsi", Explanation: "exp perc", Advice: "adv perc"},
		{Dimension: "Input", Explanation: "exp input", Advice: "adv input"},
		{Dimension: "Pemahaman", Explanation: "exp und", Advice: "adv und"},
	}
}

// answerAll answers every question, walking the pages forward, then returns to page 0.
func (h *harness) answerAll(ctx context.Context, choice Choice) error {
	for {
		page := h.ctrl.Pagination()
		start, end := page.Bounds(page.CurrentPage)
		for i := 0; i < end-start; i++ {
			if err := h.ctrl.RecordAnswer(ctx, i, choice); err != nil {
				return err
			}
		}
		if page.IsLast() {
			break
		}
		if err := h.ctrl.NextPage(ctx); err != nil {
			return err
		}
	}
	return h.ctrl.GoToPage(ctx, 0)
}
