package questionnaire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"learnstyle/internal/progress"
	"learnstyle/internal/soal"
)

func initialized(t *testing.T, h *harness) {
	t.Helper()
	if err := h.ctrl.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
}

// TestGoToPageValidIndices verifies every valid page can be reached and is persisted.
func TestGoToPageValidIndices(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	total := h.ctrl.Pagination().TotalPages
	if total != 4 {
		t.Fatalf("expected 4 pages, got %d", total)
	}
	for _, p := range []int{1, 3, 0, 2} {
		if err := h.ctrl.GoToPage(ctx, p); err != nil {
			t.Fatalf("go to page %d: %v", p, err)
		}
		if got := h.ctrl.Pagination().CurrentPage; got != p {
			t.Fatalf("expected page %d, got %d", p, got)
		}
		raw, ok, _ := h.store.Get(ctx, progress.KeyPage)
		var stored int
		if !ok || json.Unmarshal([]byte(raw), &stored) != nil || stored != p {
			t.Fatalf("expected persisted page %d, got %q", p, raw)
		}
	}
}

// TestGoToPageCurrentPersists verifies a move to the current page writes it
// without scrolling.
func TestGoToPageCurrentPersists(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if _, ok, _ := h.store.Get(ctx, progress.KeyPage); ok {
		t.Fatalf("fresh session should not have a stored page")
	}
	if err := h.ctrl.GoToPage(ctx, 0); err != nil {
		t.Fatalf("go to page 0: %v", err)
	}
	raw, ok, _ := h.store.Get(ctx, progress.KeyPage)
	if !ok || raw != "0" {
		t.Fatalf("expected persisted page 0, got %q %v", raw, ok)
	}
	if h.nav.scrolls != 0 {
		t.Fatalf("expected no scroll, got %d", h.nav.scrolls)
	}
}

// TestGoToPageInvalidIndices verifies out-of-range pages leave the state unchanged.
func TestGoToPageInvalidIndices(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	scrolls := h.nav.scrolls
	for _, p := range []int{-1, -10, 4, 99} {
		if err := h.ctrl.GoToPage(ctx, p); err != nil {
			t.Fatalf("expected no-op for page %d, got %v", p, err)
		}
		if got := h.ctrl.Pagination().CurrentPage; got != 0 {
			t.Fatalf("expected page 0 after %d, got %d", p, got)
		}
	}
	if _, ok, _ := h.store.Get(ctx, progress.KeyPage); ok {
		t.Fatalf("expected no page to be persisted")
	}
	if h.nav.scrolls != scrolls {
		t.Fatalf("expected no scroll for invalid pages")
	}
}

// TestForwardNavigationRequiresCompletePage verifies the forward guard and the unguarded back move.
func TestForwardNavigationRequiresCompletePage(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)

	err := h.ctrl.NextPage(ctx)
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if len(incomplete.Numbers) != DefaultPageSize || incomplete.First() != 1 {
		t.Fatalf("unexpected missing numbers %v", incomplete.Numbers)
	}
	if h.ctrl.Pagination().CurrentPage != 0 {
		t.Fatalf("expected to stay on page 0")
	}

	for i := 0; i < DefaultPageSize; i++ {
		if err := h.ctrl.RecordAnswer(ctx, i, ChoiceB); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := h.ctrl.NextPage(ctx); err != nil {
		t.Fatalf("next page: %v", err)
	}
	if err := h.ctrl.NextPage(ctx); err == nil {
		t.Fatalf("expected page 1 to block forward navigation")
	}
	if err := h.ctrl.PrevPage(ctx); err != nil {
		t.Fatalf("expected backward navigation to be unguarded: %v", err)
	}
	if h.nav.scrolls != 2 {
		t.Fatalf("expected two scrolls, got %d", h.nav.scrolls)
	}
}

// TestProgressFormula verifies floor(100*answered/44) and monotonic growth.
func TestProgressFormula(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)

	previous := h.ctrl.Progress()
	if previous != 0 {
		t.Fatalf("expected 0 progress, got %d", previous)
	}
	answered := 0
	for {
		page := h.ctrl.Pagination()
		start, end := page.Bounds(page.CurrentPage)
		for i := 0; i < end-start; i++ {
			if err := h.ctrl.RecordAnswer(ctx, i, Choice(i%2)); err != nil {
				t.Fatalf("record: %v", err)
			}
			answered++
			got := h.ctrl.Progress()
			if want := 100 * answered / TotalQuestions; got != want {
				t.Fatalf("after %d answers expected %d, got %d", answered, want, got)
			}
			if got < previous {
				t.Fatalf("progress decreased from %d to %d", previous, got)
			}
			previous = got
		}
		if page.IsLast() {
			break
		}
		if err := h.ctrl.NextPage(ctx); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if previous != 100 {
		t.Fatalf("expected 100 progress, got %d", previous)
	}
}

// TestRecordAnswerIdempotent verifies recording the same answer twice changes nothing.
func TestRecordAnswerIdempotent(t *testing.T) {
	ctx := context.Background()
	once := newHarness(nil)
	twice := newHarness(nil)
	initialized(t, once)
	initialized(t, twice)

	if err := once.ctrl.RecordAnswer(ctx, 3, ChoiceB); err != nil {
		t.Fatalf("record: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := twice.ctrl.RecordAnswer(ctx, 3, ChoiceB); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if once.ctrl.Answers() != twice.ctrl.Answers() {
		t.Fatalf("expected identical answer sets")
	}
	once1, _, _ := once.store.Get(ctx, progress.KeyAnswers)
	twice1, _, _ := twice.store.Get(ctx, progress.KeyAnswers)
	if once1 != twice1 {
		t.Fatalf("expected identical persisted answers, got %s and %s", once1, twice1)
	}
}

// TestRecordAnswerMapsPageRelativeIndex verifies the absolute slot computation.
func TestRecordAnswerMapsPageRelativeIndex(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	if err := h.ctrl.GoToPage(ctx, 2); err != nil {
		t.Fatalf("go to page: %v", err)
	}
	if err := h.ctrl.RecordAnswer(ctx, 4, ChoiceB); err != nil {
		t.Fatalf("record: %v", err)
	}
	answers := h.ctrl.Answers()
	if choice, ok := answers[2*DefaultPageSize+4].Choice(); !ok || choice != ChoiceB {
		t.Fatalf("expected slot %d to hold B", 2*DefaultPageSize+4)
	}
	if err := h.ctrl.RecordAnswer(ctx, DefaultPageSize, ChoiceA); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := h.ctrl.RecordAnswer(ctx, 0, Choice(5)); !errors.Is(err, ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
}

// TestRecordAnswerClearsValidation verifies a new answer hides the validation banner.
func TestRecordAnswerClearsValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	_ = h.ctrl.ValidatePage()
	if snap := h.ctrl.Snapshot(); len(snap.Missing) == 0 || snap.Validation == "" {
		t.Fatalf("expected validation state, got %+v", snap)
	}
	if err := h.ctrl.RecordAnswer(ctx, 0, ChoiceA); err != nil {
		t.Fatalf("record: %v", err)
	}
	if snap := h.ctrl.Snapshot(); len(snap.Missing) != 0 || snap.Validation != "" {
		t.Fatalf("expected validation to be cleared, got %+v", snap.Missing)
	}
}

// TestValidatePageReportsSingleMissingQuestion flips one slot and expects its number.
func TestValidatePageReportsSingleMissingQuestion(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	h := newHarness(store)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	if err := h.ctrl.GoToPage(ctx, 1); err != nil {
		t.Fatalf("go to page: %v", err)
	}
	if err := h.ctrl.ValidatePage(); err != nil {
		t.Fatalf("expected complete page, got %v", err)
	}

	answers := h.ctrl.Answers()
	answers[DefaultPageSize+6] = Unanswered
	cache := progress.NewCache(store, nil)
	cache.Save(ctx, progress.KeyAnswers, answers)

	reloaded := newHarness(store)
	initialized(t, reloaded)
	if got := reloaded.ctrl.Pagination().CurrentPage; got != 1 {
		t.Fatalf("expected page 1 to be restored, got %d", got)
	}
	err := reloaded.ctrl.ValidatePage()
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(incomplete.Numbers, []int{DefaultPageSize + 7}) {
		t.Fatalf("expected [%d], got %v", DefaultPageSize+7, incomplete.Numbers)
	}
}

// TestInitializeDiscardsMalformedCache verifies garbage and wrong shapes fall back to defaults.
func TestInitializeDiscardsMalformedCache(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"garbage":    "{{{",
		"short":      "[0,1,-1]",
		"bad value":  "[" + strings.Repeat("0,", TotalQuestions-1) + "7]",
		"wrong type": `{"answers":true}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store := progress.NewMemoryStore()
			_ = store.Set(ctx, progress.KeyAnswers, raw)
			_ = store.Set(ctx, progress.KeyPage, "not a number")
			h := newHarness(store)
			initialized(t, h)

			if got := h.ctrl.Answers().Count(); got != 0 {
				t.Fatalf("expected default answers, got %d answered", got)
			}
			if got := h.ctrl.Pagination().CurrentPage; got != 0 {
				t.Fatalf("expected default page, got %d", got)
			}
			if _, ok, _ := store.Get(ctx, progress.KeyAnswers); ok {
				t.Fatalf("expected corrupt answers to be removed")
			}
			if _, ok, _ := store.Get(ctx, progress.KeyPage); ok {
				t.Fatalf("expected corrupt page to be removed")
			}
		})
	}
}

// TestInitializeIgnoresOutOfRangePage verifies a stale page index is dropped.
func TestInitializeIgnoresOutOfRangePage(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	_ = store.Set(ctx, progress.KeyPage, "9")
	_ = store.Set(ctx, progress.KeyProcessing, "true")
	h := newHarness(store)
	initialized(t, h)
	if got := h.ctrl.Pagination().CurrentPage; got != 0 {
		t.Fatalf("expected page 0, got %d", got)
	}
	if _, ok, _ := store.Get(ctx, progress.KeyPage); ok {
		t.Fatalf("expected out-of-range page to be cleared")
	}
	if _, ok, _ := store.Get(ctx, progress.KeyProcessing); ok {
		t.Fatalf("expected stale processing flag to be cleared")
	}
}

// TestInitializeAuthFailureSchedulesLoginRedirect verifies the delayed redirect.
func TestInitializeAuthFailureSchedulesLoginRedirect(t *testing.T) {
	h := newHarness(nil)
	h.source.err = &soal.HTTPError{Status: http.StatusUnauthorized, Message: "Not authenticated"}

	if err := h.ctrl.Initialize(context.Background()); err == nil {
		t.Fatalf("expected initialize to fail")
	}
	snap := h.ctrl.Snapshot()
	if snap.Ready || snap.Banner != h.ctrl.Messages().SessionExpired {
		t.Fatalf("expected session-expired banner, got %+v", snap)
	}
	if len(h.delayed) != 1 || h.delayed[0] != RedirectDelay {
		t.Fatalf("expected one redirect scheduled after %s, got %v", RedirectDelay, h.delayed)
	}
	if len(h.nav.Routes()) != 0 {
		t.Fatalf("expected redirect to wait for the delay")
	}
	h.pending[0]()
	if routes := h.nav.Routes(); len(routes) != 1 || routes[0] != RouteLogin {
		t.Fatalf("expected login redirect, got %v", routes)
	}
}

// TestInitializeNetworkFailureShowsBanner verifies non-auth failures do not redirect.
func TestInitializeNetworkFailureShowsBanner(t *testing.T) {
	h := newHarness(nil)
	h.source.err = errors.New("connection refused")
	if err := h.ctrl.Initialize(context.Background()); err == nil {
		t.Fatalf("expected initialize to fail")
	}
	if snap := h.ctrl.Snapshot(); snap.Banner != h.ctrl.Messages().LoadFailed {
		t.Fatalf("expected load-failed banner, got %q", snap.Banner)
	}
	if len(h.delayed) != 0 {
		t.Fatalf("expected no redirect")
	}
	if h.source.calls != 1 {
		t.Fatalf("expected exactly one fetch, got %d", h.source.calls)
	}
}

// TestInitializeRejectsWrongQuestionCount verifies the 44-question assertion.
func TestInitializeRejectsWrongQuestionCount(t *testing.T) {
	h := newHarness(nil)
	h.source.questions = testQuestions(40)
	err := h.ctrl.Initialize(context.Background())
	var countErr *QuestionCountError
	if !errors.As(err, &countErr) || countErr.Got != 40 {
		t.Fatalf("expected QuestionCountError, got %v", err)
	}
	if _, err := h.ctrl.Finish(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

// TestFinishScenarioA submits a complete set and clears the caches.
func TestFinishScenarioA(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	if err := h.ctrl.RecordAnswer(ctx, 1, ChoiceB); err != nil {
		t.Fatalf("record: %v", err)
	}

	result, err := h.ctrl.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if h.submitter.submitCalls() != 1 || h.submitter.recCalls != 1 {
		t.Fatalf("expected one submit and one recommendation call, got %d/%d", h.submitter.submitCalls(), h.submitter.recCalls)
	}
	entries := h.submitter.submitted[0]
	if len(entries) != TotalQuestions {
		t.Fatalf("expected %d entries, got %d", TotalQuestions, len(entries))
	}
	for i, entry := range entries {
		if entry.QuestionID != i+1 {
			t.Fatalf("expected id %d at %d, got %d", i+1, i, entry.QuestionID)
		}
	}
	if entries[1].Choice != "B" || entries[0].Choice != "A" {
		t.Fatalf("unexpected choices %+v %+v", entries[0], entries[1])
	}
	for _, key := range []string{progress.KeyAnswers, progress.KeyPage, progress.KeyProcessing} {
		if _, ok, _ := h.store.Get(ctx, key); ok {
			t.Fatalf("expected %s to be cleared", key)
		}
	}
	raw, ok, _ := h.store.Get(ctx, progress.KeyResult)
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	var stored soal.Result
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("decode stored result: %v", err)
	}
	if !reflect.DeepEqual(stored, result) {
		t.Fatalf("expected stored result to equal returned result")
	}
	if result.SessionID != "test-session" {
		t.Fatalf("expected session id on result, got %q", result.SessionID)
	}
	if routes := h.nav.Routes(); len(routes) != 1 || routes[0] != RouteResult {
		t.Fatalf("expected navigation to result, got %v", routes)
	}
}

// TestFinishScenarioB rejects an incomplete set without network calls.
func TestFinishScenarioB(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	answers := h.ctrl.Answers()
	answers[30] = Unanswered
	progress.NewCache(h.store, nil).Save(ctx, progress.KeyAnswers, answers)
	h2 := newHarness(h.store)
	initialized(t, h2)

	_, err := h2.ctrl.Finish(ctx)
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(incomplete.Numbers, []int{31}) {
		t.Fatalf("expected [31], got %v", incomplete.Numbers)
	}
	if h2.submitter.submitCalls() != 0 || h2.submitter.recCalls != 0 {
		t.Fatalf("expected no network calls")
	}
	snap := h2.ctrl.Snapshot()
	if !reflect.DeepEqual(snap.Missing, []int{31}) {
		t.Fatalf("expected snapshot to list 31, got %v", snap.Missing)
	}
	if want := h2.ctrl.Messages().Incomplete([]int{31}, true); snap.Validation != want {
		t.Fatalf("expected whole-set message %q, got %q", want, snap.Validation)
	}
	if first := h2.ctrl.JumpToFirstUnanswered(ctx); first != 31 {
		t.Fatalf("expected jump to 31, got %d", first)
	}
	if got := h2.ctrl.Pagination().CurrentPage; got != 30/DefaultPageSize {
		t.Fatalf("expected page %d, got %d", 30/DefaultPageSize, got)
	}
}

// TestFinishScenarioC keeps the caches when the backend rejects the submission.
func TestFinishScenarioC(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceB); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	if err := h.ctrl.GoToPage(ctx, 3); err != nil {
		t.Fatalf("go to page: %v", err)
	}
	before, _, _ := h.store.Get(ctx, progress.KeyAnswers)
	h.submitter.submitErr = &soal.HTTPError{Status: http.StatusUnauthorized, Message: "Token tidak valid"}

	if _, err := h.ctrl.Finish(ctx); err == nil {
		t.Fatalf("expected finish to fail")
	}
	after, ok, _ := h.store.Get(ctx, progress.KeyAnswers)
	if !ok || after != before {
		t.Fatalf("expected answers cache to be intact")
	}
	if page, ok, _ := h.store.Get(ctx, progress.KeyPage); !ok || page != "3" {
		t.Fatalf("expected page cache to be intact, got %q", page)
	}
	if _, ok, _ := h.store.Get(ctx, progress.KeyResult); ok {
		t.Fatalf("expected no result to be stored")
	}
	if _, ok, _ := h.store.Get(ctx, progress.KeyProcessing); ok {
		t.Fatalf("expected processing flag to be cleared")
	}
	snap := h.ctrl.Snapshot()
	if snap.Banner != "Token tidak valid" {
		t.Fatalf("expected server message banner, got %q", snap.Banner)
	}
	if snap.Answered != TotalQuestions || snap.Submitting {
		t.Fatalf("expected answers intact and not submitting, got %+v", snap)
	}
	if h.submitter.recCalls != 0 {
		t.Fatalf("expected recommendations not to be fetched")
	}
	if len(h.nav.Routes()) != 0 {
		t.Fatalf("expected no navigation")
	}

	h.submitter.submitErr = nil
	if _, err := h.ctrl.Finish(ctx); err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
}

// TestFinishGenericMessageWithoutServerText verifies the fallback banner.
func TestFinishGenericMessageWithoutServerText(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	h.submitter.recErr = errors.New("connection reset")
	if _, err := h.ctrl.Finish(ctx); err == nil {
		t.Fatalf("expected failure")
	}
	if got := h.ctrl.Snapshot().Banner; got != h.ctrl.Messages().SubmitFailed {
		t.Fatalf("expected generic banner, got %q", got)
	}
	if _, ok, _ := h.store.Get(ctx, progress.KeyAnswers); !ok {
		t.Fatalf("expected answers to remain cached")
	}
}

// TestFinishScenarioD substitutes placeholders for a missing dimension.
func TestFinishScenarioD(t *testing.T) {
	ctx := context.Background()
	h := newHarness(nil)
	h.submitter.recs = []soal.RecommendationEntry{
		{Dimension: "pemrosesan", Explanation: "exp proc", Advice: "adv proc"},
		{Dimension: "persepsi", Explanation: "exp perc", Advice: "adv perc"},
		{Dimension: "pemahaman", Explanation: "exp und", Advice: "adv und"},
	}
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	result, err := h.ctrl.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	input := result.Recommendations[soal.DimensionInput]
	if input.Explanation != soal.PlaceholderExplanation || input.Advice != soal.PlaceholderAdvice {
		t.Fatalf("expected placeholders for input, got %+v", input)
	}
	if result.Recommendations[soal.DimensionProcessing].Advice != "adv proc" {
		t.Fatalf("expected processing advice from backend")
	}
}

// TestFinishRejectsConcurrentSubmission verifies the controller-level in-flight guard.
func TestFinishRejectsConcurrentSubmission(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	h := newHarness(nil)
	initialized(t, h)
	if err := h.answerAll(ctx, ChoiceA); err != nil {
		t.Fatalf("answer all: %v", err)
	}
	h.submitter.block = make(chan struct{})
	h.submitter.submitStarted = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := h.ctrl.Finish(ctx)
		done <- err
	}()
	select {
	case <-h.submitter.submitStarted:
	case <-ctx.Done():
		t.Fatalf("timed out waiting for submit")
	}

	if !h.ctrl.Snapshot().Submitting {
		t.Fatalf("expected submitting state")
	}
	if _, err := h.ctrl.Finish(ctx); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
	if err := h.ctrl.RecordAnswer(ctx, 0, ChoiceB); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected answers to be locked during submission, got %v", err)
	}
	if raw, ok, _ := h.store.Get(ctx, progress.KeyProcessing); !ok || raw != "true" {
		t.Fatalf("expected processing flag during submission, got %q", raw)
	}

	close(h.submitter.block)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("finish: %v", err)
		}
	case <-ctx.Done():
		t.Fatalf("timed out waiting for finish")
	}
	if h.submitter.submitCalls() != 1 {
		t.Fatalf("expected exactly one submit, got %d", h.submitter.submitCalls())
	}
}
