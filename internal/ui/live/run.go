package live

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"learnstyle/internal/questionnaire"
)

// ProgramOptions selects the terminal streams for Run.
type ProgramOptions struct {
	Options
	Input  io.Reader
	Output io.Writer
}

// Run drives ctrl in a full-screen program until the user quits, the
// session expires or the result has been shown. nav must be the
// Navigator the controller was built with.
func Run(ctx context.Context, ctrl *questionnaire.Controller, nav *Navigator, opts ProgramOptions) (Outcome, error) {
	defer nav.Close()
	model := NewModel(ctx, ctrl, nav.Events(), opts.Options)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return Outcome{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Outcome(), nil
	}
	return Outcome{}, nil
}
