package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"learnstyle/internal/reportserver"
)

// serveResult is a test seam for running the report server.
var serveResult = reportserver.Serve

func runServe(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		addr := flags.String("addr", "127.0.0.1:8089", "Listen address")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sess, err := openSession(ctx, sessionOptions{ConfigPath: *configPath, LogFallback: stderr})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		defer sess.Close()

		fmt.Fprintf(stdout, "Serving result at http://%s/ (Ctrl+C to stop)\n", *addr)
		err = serveResult(ctx, reportserver.Config{
			Addr:   *addr,
			Load:   sess.savedResult,
			Logger: sess.logger,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to serve result: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
