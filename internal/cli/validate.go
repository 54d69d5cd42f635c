package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"learnstyle/internal/config"
)

func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := configResolve(*configPath)
		if err != nil {
			var validation *config.ValidationError
			if errors.As(err, &validation) {
				fmt.Fprintln(stderr, "Config invalid:")
				for _, issue := range validation.Issues {
					fmt.Fprintf(stderr, "  - %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		if resolved.Path == "" {
			fmt.Fprintln(stdout, "No config file found; defaults are valid.")
			return ExitOK
		}
		fmt.Fprintf(stdout, "Config OK: %s\n", resolved.Path)
		return ExitOK
	}
}
