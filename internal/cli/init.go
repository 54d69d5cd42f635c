package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"learnstyle/internal/config"
)

func runInit(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		yes := flags.Bool("yes", false, "Skip confirmation prompt")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		root, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve working directory: %v\n", err)
			return ExitError
		}
		path := config.ConfigPath(root)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(stderr, "Config already exists at %s\n", path)
			return ExitError
		} else if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Failed to check config: %v\n", err)
			return ExitError
		}

		if !*yes {
			ok, err := promptYesNo(bufio.NewReader(stdin), stdout, fmt.Sprintf("Create %s?", path), true)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read confirmation: %v\n", err)
				return ExitError
			}
			if !ok {
				fmt.Fprintln(stdout, "Aborted.")
				return ExitOK
			}
		}

		if err := config.Scaffold(path); err != nil {
			fmt.Fprintf(stderr, "Failed to write config: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		fmt.Fprintln(stdout, "Set api.base_url and api.token (or LEARNSTYLE_TOKEN), then run `learnstyle take`.")
		return ExitOK
	}
}
