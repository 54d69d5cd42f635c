package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
)

func runReset(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		yes := flags.Bool("yes", false, "Skip confirmation prompt")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		if !*yes {
			ok, err := promptYesNo(bufio.NewReader(stdin), stdout, "Hapus semua jawaban dan hasil yang tersimpan?", false)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read confirmation: %v\n", err)
				return ExitError
			}
			if !ok {
				fmt.Fprintln(stdout, "Dibatalkan.")
				return ExitOK
			}
		}

		ctx := context.Background()
		sess, err := openSession(ctx, sessionOptions{ConfigPath: *configPath, LogFallback: stderr})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		defer sess.Close()

		sess.cache.ClearAll(ctx)
		sess.logger.Info("progress reset")
		fmt.Fprintln(stdout, "Progres dan hasil dihapus.")
		return ExitOK
	}
}
