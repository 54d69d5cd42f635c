package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"learnstyle/internal/report"
	"learnstyle/internal/soal"
)

const noResultMessage = "Belum ada hasil. Jalankan `learnstyle take` terlebih dahulu."

func runResult(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		asJSON := flags.Bool("json", false, "Print the result as JSON")
		noColor := flags.Bool("no-color", false, "Disable colored output")
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

		result, ok := sess.savedResult(ctx)
		if !ok {
			fmt.Fprintln(stderr, noResultMessage)
			return ExitError
		}
		if *asJSON {
			if err := report.WriteJSON(stdout, result); err != nil {
				fmt.Fprintf(stderr, "Failed to write result: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		fmt.Fprintln(stdout, report.RenderText(result, report.TextOptions{
			NoColor: colorDisabled(*noColor, sess.cfg.UI.NoColor),
		}))
		return ExitOK
	}
}

func runExport(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		formatFlag := flags.String("format", "", "Output format: html|xlsx|json|text")
		output := flags.String("output", "", "Output file, or - for stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		format, err := exportFormat(*formatFlag, *output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}

		ctx := context.Background()
		sess, err := openSession(ctx, sessionOptions{ConfigPath: *configPath, LogFallback: stderr})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		defer sess.Close()

		result, ok := sess.savedResult(ctx)
		if !ok {
			fmt.Fprintln(stderr, noResultMessage)
			return ExitError
		}

		if *output == "-" {
			if err := report.Export(ctx, stdout, format, result); err != nil {
				fmt.Fprintf(stderr, "Failed to export result: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		path := *output
		if path == "" {
			path = report.DefaultFileName(format)
		}
		if err := writeExport(ctx, path, format, result); err != nil {
			fmt.Fprintf(stderr, "Failed to export result: %v\n", err)
			return ExitError
		}
		sess.logger.Info("result exported", "path", path, "format", string(format))
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}

// exportFormat prefers the explicit flag, then the output extension, then HTML.
func exportFormat(flagValue, output string) (report.Format, error) {
	if flagValue != "" {
		return report.ParseFormat(flagValue)
	}
	if output != "" && output != "-" {
		if format, ok := report.FormatFromPath(output); ok {
			return format, nil
		}
	}
	return report.FormatHTML, nil
}

func writeExport(ctx context.Context, path string, format report.Format, result soal.Result) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if err := report.Export(ctx, f, format, result); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
