package questionnaire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"learnstyle/internal/progress"
	"learnstyle/internal/soal"
)

// RedirectDelay is how long an authentication failure stays on screen
// before the login route is opened.
const RedirectDelay = 3 * time.Second

// Route names a destination outside the questionnaire.
type Route string

const (
	// RouteLogin is the login entry point.
	RouteLogin Route = "login"
	// RouteResult is the result view.
	RouteResult Route = "result"
)

// QuestionSource loads the question set.
type QuestionSource interface {
	FetchQuestions(ctx context.Context) ([]soal.Question, error)
}

// Submitter sends answers and loads recommendations.
type Submitter interface {
	Submit(ctx context.Context, answers []soal.AnswerEntry) (soal.ScoreResponse, error)
	FetchRecommendations(ctx context.Context) ([]soal.RecommendationEntry, error)
}

// Navigator moves the user between views.
type Navigator interface {
	Navigate(route Route)
	ScrollToTop()
}

// Config wires dependencies for a Controller.
type Config struct {
	Questions QuestionSource
	Submitter Submitter
	Cache     *progress.Cache
	Navigator Navigator
	PageSize  int
	Locale    string
	SessionID string
	Logger    *slog.Logger
	Now       func() time.Time
	// AfterFunc schedules delayed navigation; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
}

// Controller drives the paginated questionnaire.
type Controller struct {
	source    QuestionSource
	submitter Submitter
	cache     *progress.Cache
	nav       Navigator
	messages  Messages
	sessionID string
	logger    *slog.Logger
	now       func() time.Time
	afterFunc func(d time.Duration, f func())

	mu         sync.Mutex
	questions  []soal.Question
	answers    AnswerSet
	page       Pagination
	banner     string
	missing    []int
	missingAll bool
	ready      bool
	submitting bool
}

// New constructs a controller. Call Initialize before use.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cache := cfg.Cache
	if cache == nil {
		cache = progress.NewCache(progress.NewMemoryStore(), logger)
	}
	nav := cfg.Navigator
	if nav == nil {
		nav = nopNavigator{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	afterFunc := cfg.AfterFunc
	if afterFunc == nil {
		afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	return &Controller{
		source:    cfg.Questions,
		submitter: cfg.Submitter,
		cache:     cache,
		nav:       nav,
		messages:  MessagesFor(cfg.Locale),
		sessionID: cfg.SessionID,
		logger:    logger.With("component", "questionnaire"),
		now:       now,
		afterFunc: afterFunc,
		page:      NewPagination(cfg.PageSize),
	}
}

// Initialize restores cached progress and loads the question set.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	c.rehydrate(ctx)
	c.mu.Unlock()

	questions, err := c.source.FetchQuestions(ctx)
	if err != nil {
		c.mu.Lock()
		c.banner = c.messages.LoadFailed
		unauthorized := soal.IsUnauthorized(err)
		if unauthorized {
			c.banner = c.messages.SessionExpired
		}
		c.mu.Unlock()
		c.logger.ErrorContext(ctx, "load questions", "error", err, "unauthorized", unauthorized)
		if unauthorized {
			c.afterFunc(RedirectDelay, func() { c.nav.Navigate(RouteLogin) })
		}
		return err
	}
	if len(questions) != TotalQuestions {
		countErr := &QuestionCountError{Got: len(questions)}
		c.mu.Lock()
		c.banner = c.messages.QuestionCount(len(questions))
		c.mu.Unlock()
		c.logger.ErrorContext(ctx, "unexpected question count", "got", len(questions), "want", TotalQuestions)
		return countErr
	}

	c.mu.Lock()
	c.questions = questions
	c.banner = ""
	c.ready = true
	answered := c.answers.Count()
	page := c.page.CurrentPage
	c.mu.Unlock()
	c.logger.InfoContext(ctx, "questionnaire ready", "answered", answered, "page", page, "session_id", c.sessionID)
	return nil
}

// rehydrate restores answers and page from the cache. Callers hold c.mu.
func (c *Controller) rehydrate(ctx context.Context) {
	var answers AnswerSet
	if c.cache.Load(ctx, progress.KeyAnswers, &answers) {
		c.answers = answers
	}
	var page int
	if c.cache.Load(ctx, progress.KeyPage, &page) {
		if c.page.Valid(page) {
			c.page.CurrentPage = page
		} else {
			c.logger.WarnContext(ctx, "discarding cached page out of range", "page", page, "total_pages", c.page.TotalPages)
			c.cache.Clear(ctx, progress.KeyPage)
		}
	}
	var processing bool
	if c.cache.Load(ctx, progress.KeyProcessing, &processing) && processing {
		c.logger.WarnContext(ctx, "clearing stale submission flag from an interrupted run")
		c.cache.Clear(ctx, progress.KeyProcessing)
	}
}

// RecordAnswer stores choice for the question at indexOnPage of the current page.
func (c *Controller) RecordAnswer(ctx context.Context, indexOnPage int, choice Choice) error {
	if !choice.Valid() {
		return ErrInvalidChoice
	}
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	start, end := c.page.Bounds(c.page.CurrentPage)
	index := start + indexOnPage
	if indexOnPage < 0 || index >= end {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d on page %d", ErrIndexOutOfRange, indexOnPage, c.page.CurrentPage)
	}
	c.answers[index] = Answered(choice)
	c.missing = nil
	answers := c.answers
	c.mu.Unlock()

	c.cache.Save(ctx, progress.KeyAnswers, answers)
	return nil
}

// ValidatePage checks that every question on the current page is answered.
func (c *Controller) ValidatePage() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validatePageLocked()
}

func (c *Controller) validatePageLocked() error {
	start, end := c.page.Bounds(c.page.CurrentPage)
	missing := c.answers.Missing(start, end)
	c.missingAll = false
	if len(missing) == 0 {
		c.missing = nil
		return nil
	}
	c.missing = missing
	return &IncompleteError{Numbers: missing}
}

// GoToPage moves to page. Out-of-range pages are ignored; moving forward
// requires the current page to be complete. Going to the current page only
// persists it.
func (c *Controller) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if !c.page.Valid(page) {
		c.mu.Unlock()
		return nil
	}
	if page == c.page.CurrentPage {
		c.mu.Unlock()
		c.cache.Save(ctx, progress.KeyPage, page)
		return nil
	}
	if page > c.page.CurrentPage {
		if err := c.validatePageLocked(); err != nil {
			c.mu.Unlock()
			return err
		}
	}
	c.setPageLocked(page)
	c.mu.Unlock()

	c.cache.Save(ctx, progress.KeyPage, page)
	c.nav.ScrollToTop()
	return nil
}

// NextPage moves forward one page.
func (c *Controller) NextPage(ctx context.Context) error {
	return c.GoToPage(ctx, c.Pagination().CurrentPage+1)
}

// PrevPage moves back one page.
func (c *Controller) PrevPage(ctx context.Context) error {
	return c.GoToPage(ctx, c.Pagination().CurrentPage-1)
}

// JumpToFirstUnanswered opens the page holding the lowest unanswered question
// and returns its 1-based number, or 0 when every question is answered.
func (c *Controller) JumpToFirstUnanswered(ctx context.Context) int {
	c.mu.Lock()
	missing := c.answers.Missing(0, TotalQuestions)
	if len(missing) == 0 {
		c.mu.Unlock()
		return 0
	}
	first := missing[0]
	page := c.page.PageOf(first - 1)
	changed := page != c.page.CurrentPage
	c.setPageLocked(page)
	c.mu.Unlock()

	if changed {
		c.cache.Save(ctx, progress.KeyPage, page)
		c.nav.ScrollToTop()
	}
	return first
}

// setPageLocked switches page and drops page-scoped validation state.
func (c *Controller) setPageLocked(page int) {
	c.page.CurrentPage = page
	c.missing = nil
}

// Finish validates the whole set, submits it, and stores the merged result.
// On failure all cached progress is kept so the user can retry.
func (c *Controller) Finish(ctx context.Context) (soal.Result, error) {
	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return soal.Result{}, ErrNotInitialized
	}
	if c.submitting {
		c.mu.Unlock()
		return soal.Result{}, ErrSubmissionInFlight
	}
	entries, err := c.answers.Entries()
	if err != nil {
		var incomplete *IncompleteError
		if errors.As(err, &incomplete) {
			c.missing = incomplete.Numbers
			c.missingAll = true
		}
		c.mu.Unlock()
		return soal.Result{}, err
	}
	c.submitting = true
	c.banner = ""
	c.missing = nil
	c.mu.Unlock()

	c.cache.Save(ctx, progress.KeyProcessing, true)
	result, err := c.submit(ctx, entries)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		if msg, ok := soal.ServerMessage(err); ok {
			c.banner = msg
		} else {
			c.banner = c.messages.SubmitFailed
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.cache.Clear(ctx, progress.KeyProcessing)
		c.logger.ErrorContext(ctx, "submit answers", "error", err, "session_id", c.sessionID)
		return soal.Result{}, err
	}

	c.cache.Save(ctx, progress.KeyResult, result)
	c.cache.Clear(ctx, progress.KeyAnswers)
	c.cache.Clear(ctx, progress.KeyPage)
	c.cache.Clear(ctx, progress.KeyProcessing)
	c.logger.InfoContext(ctx, "answers submitted", "session_id", c.sessionID)
	c.nav.Navigate(RouteResult)
	return result, nil
}

// submit runs the two backend calls in order and merges their responses.
func (c *Controller) submit(ctx context.Context, entries []soal.AnswerEntry) (soal.Result, error) {
	scores, err := c.submitter.Submit(ctx, entries)
	if err != nil {
		return soal.Result{}, err
	}
	recs, err := c.submitter.FetchRecommendations(ctx)
	if err != nil {
		return soal.Result{}, err
	}
	result := soal.Merge(scores, recs)
	result.SessionID = c.sessionID
	result.SubmittedAt = c.now().UTC()
	return result, nil
}

// Progress returns floor(100 * answered / TotalQuestions).
func (c *Controller) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return progressPercent(c.answers.Count())
}

func progressPercent(answered int) int {
	return 100 * answered / TotalQuestions
}

// Pagination returns the current pagination state.
func (c *Controller) Pagination() Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Answers returns a copy of the answer set.
func (c *Controller) Answers() AnswerSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers
}

type nopNavigator struct{}

func (nopNavigator) Navigate(Route) {}
func (nopNavigator) ScrollToTop()   {}
