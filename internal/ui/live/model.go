package live

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"learnstyle/internal/questionnaire"
	"learnstyle/internal/soal"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseSubmitting
	phaseResult
	phaseLogin
	phaseFailed
)

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// Outcome reports how the UI session ended.
type Outcome struct {
	// Result is set after a successful submission.
	Result *soal.Result
	// LoginRequired is set when the session expired.
	LoginRequired bool
}

// Model renders the questionnaire using Bubble Tea.
type Model struct {
	ctx     context.Context
	ctrl    *questionnaire.Controller
	events  <-chan Event
	snap    questionnaire.Snapshot
	phase   phase
	cursor  int
	result  *soal.Result
	outcome Outcome
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	noColor bool
	width   int
}

// NewModel constructs a model over ctrl. Navigation events arrive on events.
func NewModel(ctx context.Context, ctrl *questionnaire.Controller, events <-chan Event, opts Options) Model {
	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		events:  events,
		snap:    ctrl.Snapshot(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    defaultKeys(),
		noColor: opts.NoColor,
	}
}

// Outcome returns how the session ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// loadedMsg reports the end of Initialize.
type loadedMsg struct {
	err error
}

// finishedMsg reports the end of Finish.
type finishedMsg struct {
	result soal.Result
	err    error
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// Init loads the questions and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick, waitForEvent(m.events))
}

func (m Model) load() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Initialize(ctx)}
	}
}

func (m Model) finish() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		result, err := ctrl.Finish(ctx)
		return finishedMsg{result: result, err: err}
	}
}

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: event}
	}
}

// Update consumes key presses, controller results and navigation events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case loadedMsg:
		m.snap = m.ctrl.Snapshot()
		m.cursor = 0
		switch {
		case typed.err == nil:
			m.phase = phaseAnswering
		case soal.IsUnauthorized(typed.err):
			m.phase = phaseLogin
			m.outcome.LoginRequired = true
		default:
			m.phase = phaseFailed
		}
		return m, nil
	case finishedMsg:
		m.snap = m.ctrl.Snapshot()
		if typed.err != nil {
			m.phase = phaseAnswering
			return m, nil
		}
		result := typed.result
		m.result = &result
		m.outcome.Result = &result
		m.phase = phaseResult
		return m, nil
	case EventMsg:
		return m.applyEvent(typed.Event)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// applyEvent handles navigation requested by the controller.
func (m Model) applyEvent(event Event) (tea.Model, tea.Cmd) {
	next := waitForEvent(m.events)
	switch event.Kind {
	case EventScrollTop:
		m.snap = m.ctrl.Snapshot()
		m.cursor = firstUnanswered(m.snap)
	case EventNavigate:
		switch event.Route {
		case questionnaire.RouteLogin:
			m.phase = phaseLogin
			m.outcome.LoginRequired = true
			return m, tea.Quit
		case questionnaire.RouteResult:
			if m.result != nil {
				m.phase = phaseResult
			}
		}
	}
	return m, next
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.phase {
	case phaseResult, phaseLogin:
		if key.Matches(msg, m.keys.Quit) || msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		return m, nil
	case phaseFailed:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Retry):
			m.phase = phaseLoading
			return m, tea.Batch(m.load(), m.spinner.Tick)
		}
		return m, nil
	case phaseLoading, phaseSubmitting:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.ChooseA):
		m.choose(questionnaire.ChoiceA)
	case key.Matches(msg, m.keys.ChooseB):
		m.choose(questionnaire.ChoiceB)
	case key.Matches(msg, m.keys.Next):
		_ = m.ctrl.NextPage(m.ctx)
	case key.Matches(msg, m.keys.Prev):
		_ = m.ctrl.PrevPage(m.ctx)
	case key.Matches(msg, m.keys.Jump):
		if number := m.ctrl.JumpToFirstUnanswered(m.ctx); number > 0 {
			m.snap = m.ctrl.Snapshot()
			m.cursor = indexOnPage(m.snap, number)
			return m, nil
		}
	case key.Matches(msg, m.keys.Finish):
		if m.snap.Submitting {
			return m, nil
		}
		m.phase = phaseSubmitting
		m.snap = m.ctrl.Snapshot()
		return m, tea.Batch(m.finish(), m.spinner.Tick)
	}
	m.snap = m.ctrl.Snapshot()
	m.cursor = min(m.cursor, max(len(m.snap.Items)-1, 0))
	return m, nil
}

// choose records an answer for the item under the cursor and advances.
func (m *Model) choose(choice questionnaire.Choice) {
	if err := m.ctrl.RecordAnswer(m.ctx, m.cursor, choice); err != nil {
		return
	}
	if m.cursor < len(m.snap.Items)-1 {
		m.cursor++
	}
}

func (m Model) busy() bool {
	return m.phase == phaseLoading || m.phase == phaseSubmitting
}

// firstUnanswered returns the position of the first open item on the page.
func firstUnanswered(snap questionnaire.Snapshot) int {
	for i, item := range snap.Items {
		if !item.Answer.IsAnswered() {
			return i
		}
	}
	return 0
}

// indexOnPage returns the position of question number within the page.
func indexOnPage(snap questionnaire.Snapshot, number int) int {
	for i, item := range snap.Items {
		if item.Number == number {
			return i
		}
	}
	return 0
}
