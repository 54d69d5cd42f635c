package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"learnstyle/internal/progress"
	"learnstyle/internal/questionnaire"
)

func runStatus(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		ctx := context.Background()
		sess, err := openSession(ctx, sessionOptions{ConfigPath: *configPath, LogFallback: stderr})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		defer sess.Close()

		var answers questionnaire.AnswerSet
		sess.cache.Load(ctx, progress.KeyAnswers, &answers)
		pages := questionnaire.NewPagination(sess.cfg.Questionnaire.PageSize)
		var page int
		if sess.cache.Load(ctx, progress.KeyPage, &page) && pages.Valid(page) {
			pages.CurrentPage = page
		}
		answered := answers.Count()

		fmt.Fprintf(stdout, "Dijawab:  %d/%d (%d%%)\n", answered, questionnaire.TotalQuestions,
			100*answered/questionnaire.TotalQuestions)
		fmt.Fprintf(stdout, "Halaman:  %d/%d\n", pages.CurrentPage+1, pages.TotalPages)
		if missing := answers.Missing(0, questionnaire.TotalQuestions); len(missing) > 0 && answered > 0 {
			fmt.Fprintf(stdout, "Belum:    soal %d dan %d lainnya\n", missing[0], len(missing)-1)
		}
		if result, ok := sess.savedResult(ctx); ok {
			fmt.Fprintf(stdout, "Hasil:    tersimpan (%s)\n", result.SubmittedAt.Local().Format("2006-01-02 15:04"))
		} else {
			fmt.Fprintln(stdout, "Hasil:    belum ada")
		}
		return ExitOK
	}
}
