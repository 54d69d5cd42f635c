package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"learnstyle/internal/questionnaire"
	"learnstyle/internal/report"
	"learnstyle/internal/soal"
)

// plainNavigator records routes for the line-based runner.
type plainNavigator struct {
	mu    sync.Mutex
	login bool
}

func (n *plainNavigator) Navigate(route questionnaire.Route) {
	if route != questionnaire.RouteLogin {
		return
	}
	n.mu.Lock()
	n.login = true
	n.mu.Unlock()
}

func (n *plainNavigator) ScrollToTop() {}

func (n *plainNavigator) loginRequested() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.login
}

// plainRunner answers the questionnaire with line prompts.
type plainRunner struct {
	ctrl    *questionnaire.Controller
	nav     *plainNavigator
	in      *bufio.Reader
	out     io.Writer
	noColor bool
}

func (r *plainRunner) run(ctx context.Context) int {
	if err := r.ctrl.Initialize(ctx); err != nil {
		fmt.Fprintln(r.out, r.ctrl.Snapshot().Banner)
		if r.nav.loginRequested() || soal.IsUnauthorized(err) {
			fmt.Fprintln(r.out, loginHint)
			return ExitAuth
		}
		return ExitError
	}

	for {
		snap := r.ctrl.Snapshot()
		r.printPage(snap)
		for i, item := range snap.Items {
			if item.Answer.IsAnswered() {
				continue
			}
			choice, err := r.askChoice(item)
			if err != nil {
				return r.leave(err)
			}
			if err := r.ctrl.RecordAnswer(ctx, i, choice); err != nil {
				fmt.Fprintf(r.out, "Gagal menyimpan jawaban: %v\n", err)
				return ExitError
			}
		}
		if done, code := r.pageAction(ctx); done {
			return code
		}
	}
}

func (r *plainRunner) printPage(snap questionnaire.Snapshot) {
	fmt.Fprintf(r.out, "\n== Halaman %d/%d  (%d%%, %d/%d dijawab) ==\n",
		snap.Page.CurrentPage+1, snap.Page.TotalPages, snap.Progress, snap.Answered, questionnaire.TotalQuestions)
	if snap.Banner != "" {
		fmt.Fprintf(r.out, "! %s\n", snap.Banner)
	}
	for _, item := range snap.Items {
		choice, answered := item.Answer.Choice()
		fmt.Fprintf(r.out, "%2d. %s\n", item.Number, item.Question.Prompt)
		fmt.Fprintf(r.out, "    %s A. %s\n", mark(answered && choice == questionnaire.ChoiceA), item.Question.OptionA)
		fmt.Fprintf(r.out, "    %s B. %s\n", mark(answered && choice == questionnaire.ChoiceB), item.Question.OptionB)
	}
}

func mark(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func (r *plainRunner) askChoice(item questionnaire.Item) (questionnaire.Choice, error) {
	label := fmt.Sprintf("Soal %d, jawaban (a/b, q=keluar)", item.Number)
	value, err := promptOption(r.in, r.out, label, []string{"a", "b"}, "")
	if err != nil {
		return 0, err
	}
	choice, _ := questionnaire.ParseChoice(value)
	return choice, nil
}

// pageAction asks what to do with a fully answered page. done reports
// that the run is over.
func (r *plainRunner) pageAction(ctx context.Context) (done bool, code int) {
	page := r.ctrl.Pagination()
	def := "n"
	if page.IsLast() {
		def = "f"
	}
	action, err := promptOption(r.in, r.out,
		"n=berikut, p=sebelumnya, u=soal belum dijawab, f=selesai, q=keluar",
		[]string{"n", "p", "u", "f"}, def)
	if err != nil {
		return true, r.leave(err)
	}

	switch action {
	case "n":
		if err := r.ctrl.NextPage(ctx); err != nil {
			fmt.Fprintln(r.out, r.ctrl.Snapshot().Validation)
		}
	case "p":
		_ = r.ctrl.PrevPage(ctx)
	case "u":
		if r.ctrl.JumpToFirstUnanswered(ctx) == 0 {
			fmt.Fprintln(r.out, "Semua soal sudah dijawab.")
		}
	case "f":
		return r.finish(ctx)
	}
	return false, ExitOK
}

func (r *plainRunner) finish(ctx context.Context) (bool, int) {
	fmt.Fprintln(r.out, r.ctrl.Messages().SubmissionActive)
	result, err := r.ctrl.Finish(ctx)
	if err != nil {
		var incomplete *questionnaire.IncompleteError
		if errors.As(err, &incomplete) {
			fmt.Fprintln(r.out, r.ctrl.Snapshot().Validation)
			r.ctrl.JumpToFirstUnanswered(ctx)
			return false, ExitOK
		}
		if soal.IsUnauthorized(err) {
			fmt.Fprintln(r.out, r.ctrl.Snapshot().Banner)
			fmt.Fprintln(r.out, loginHint)
			return true, ExitAuth
		}
		// The banner is shown with the page again so the user can retry.
		return false, ExitOK
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, report.RenderText(result, report.TextOptions{NoColor: r.noColor}))
	return true, ExitOK
}

// leave ends the run on quit or end of input; progress is already saved.
func (r *plainRunner) leave(err error) int {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		fmt.Fprintln(r.out, "\nProgres tersimpan. Jalankan `learnstyle take` untuk melanjutkan.")
		return ExitOK
	}
	fmt.Fprintf(r.out, "Gagal membaca input: %s\n", strings.TrimSpace(err.Error()))
	return ExitError
}
