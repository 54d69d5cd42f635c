package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
	// ExitAuth reports an expired or rejected session token.
	ExitAuth = 3
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdin io.Reader, stdout, stderr io.Writer) int
}

func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdin, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  learnstyle <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"learnstyle <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses args and reports the exit code to use when parsing
// did not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return ExitOK, false
	}
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .learnstyle/config.yml", []string{
		"learnstyle init [--yes]",
	}, runInit),
	command("validate", "Validate the configuration", []string{
		"learnstyle validate [--config <path>]",
	}, runValidate),
	command("take", "Answer (or resume) the learning-style questionnaire", []string{
		"learnstyle take [--config <path>] [--ui auto|live|plain] [--no-color] [--token <token>]",
	}, runTake),
	command("status", "Show saved progress", []string{
		"learnstyle status [--config <path>]",
	}, runStatus),
	command("result", "Print the last result", []string{
		"learnstyle result [--config <path>] [--json] [--no-color]",
	}, runResult),
	command("export", "Export the last result to a file", []string{
		"learnstyle export [--config <path>] [--format html|xlsx|json|text] [--output <path>|-]",
	}, runExport),
	command("serve", "Serve the last result over HTTP", []string{
		"learnstyle serve [--config <path>] [--addr <host:port>]",
	}, runServe),
	command("reset", "Discard saved progress and result", []string{
		"learnstyle reset [--config <path>] [--yes]",
	}, runReset),
}
