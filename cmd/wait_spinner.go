package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var waitSpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

// waitOutcome travels from the wait goroutine to the model as a message, so
// the caller only ever reads the value from the final model.
type waitOutcome[T any] struct {
	value T
	err   error
}

type waitModel[T any] struct {
	spinner  spinner.Model
	label    string
	run      tea.Cmd
	started  time.Time
	deadline time.Time
	now      time.Time
	outcome  *waitOutcome[T]
}

func newWaitModel[T any](label string, run tea.Cmd, started, deadline time.Time) waitModel[T] {
	return waitModel[T]{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(waitSpinnerStyle)),
		label:    label,
		run:      run,
		started:  started,
		deadline: deadline,
		now:      started,
	}
}

func (m waitModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m waitModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if outcome, ok := msg.(waitOutcome[T]); ok {
		m.outcome = &outcome
		return m, tea.Quit
	}

	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	if tick.Time.After(m.now) {
		m.now = tick.Time
	}
	return m, cmd
}

func (m waitModel[T]) View() string {
	if m.outcome != nil {
		return ""
	}

	line := m.spinner.View() + " " + m.label
	if status := m.timing(); status != "" {
		line += " (" + status + ")"
	}
	return line
}

func (m waitModel[T]) timing() string {
	elapsed := m.now.Sub(m.started).Truncate(time.Second)
	if elapsed < time.Second {
		return ""
	}
	if m.deadline.IsZero() {
		return elapsed.String()
	}

	left := max(m.deadline.Sub(m.now).Truncate(time.Second), 0)
	return fmt.Sprintf("%s, %s left", elapsed, left)
}

// runWaitSpinner draws a spinner on output until wait returns, then hands
// back whatever wait produced. Cancellation reaches wait through ctx.
func runWaitSpinner[T any](ctx context.Context, output io.Writer, label string, wait func(context.Context) (T, error)) (T, error) {
	run := func() tea.Msg {
		value, err := wait(ctx)
		return waitOutcome[T]{value: value, err: err}
	}

	deadline, _ := ctx.Deadline()
	program := tea.NewProgram(
		newWaitModel[T](label, run, time.Now(), deadline),
		tea.WithInput(nil),
		tea.WithOutput(output),
	)

	var zero T
	final, err := program.Run()
	if err != nil {
		return zero, err
	}

	model, ok := final.(waitModel[T])
	if !ok || model.outcome == nil {
		return zero, fmt.Errorf("wait spinner for %q exited without a result", label)
	}
	return model.outcome.value, model.outcome.err
}
