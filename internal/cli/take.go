package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"learnstyle/internal/ui/live"
)

// redirectAfter delays the login redirect in plain mode.
var redirectAfter = func(d time.Duration, f func()) {
	time.Sleep(d)
	f()
}

const loginHint = "Masuk kembali lalu jalankan ulang dengan --token <token> atau LEARNSTYLE_TOKEN."

func runTake(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		token := flags.String("token", "", "Bearer token (overrides config)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		mode := *uiMode
		if mode == "" {
			mode = peekUIMode(*configPath)
		}
		decision, err := resolveUIMode(mode, stdin, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		// The live UI owns the terminal, so logs only go to a configured file.
		var fallback io.Writer = stderr
		if decision.useLive {
			fallback = nil
		}
		sess, err := openSession(ctx, sessionOptions{ConfigPath: *configPath, LogFallback: fallback})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		defer sess.Close()

		client := sess.client(*token)
		noColorOut := colorDisabled(*noColor, sess.cfg.UI.NoColor)
		if decision.useLive {
			nav := live.NewNavigator()
			ctrl := sess.controller(client, nav, nil)
			outcome, err := live.Run(ctx, ctrl, nav, live.ProgramOptions{
				Options: live.Options{NoColor: noColorOut},
				Input:   stdin,
				Output:  stdout,
			})
			if err != nil {
				fmt.Fprintf(stderr, "live ui failed: %v\n", err)
				return ExitError
			}
			switch {
			case outcome.LoginRequired:
				fmt.Fprintln(stderr, loginHint)
				return ExitAuth
			case outcome.Result != nil:
				fmt.Fprintln(stdout, "Hasil tersimpan. Jalankan `learnstyle result` untuk melihatnya lagi.")
			}
			return ExitOK
		}

		nav := &plainNavigator{}
		runner := &plainRunner{
			ctrl:    sess.controller(client, nav, redirectAfter),
			nav:     nav,
			in:      bufio.NewReader(stdin),
			out:     stdout,
			noColor: noColorOut,
		}
		return runner.run(ctx)
	}
}

// peekUIMode reads ui.mode from config without failing the command; errors
// surface later when the session is opened.
func peekUIMode(configPath string) string {
	resolved, err := configResolve(configPath)
	if err != nil {
		return ""
	}
	return resolved.Config.UI.Mode
}
