package jobs

import (
	"errors"
	"io"

	"github.com/bnema/mc-assistant/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// rowMsg asks the model to lay out the row at index; an index past the end
// closes the listing.
type rowMsg int

func layoutRow(index int) tea.Cmd {
	return func() tea.Msg { return rowMsg(index) }
}

type model struct {
	rows     []jobRow
	styles   styles
	sections []string
	output   string
}

func newModel(jobs []domain.CommandJob, opts RenderOptions) model {
	rows := make([]jobRow, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, newJobRow(job, opts.Now))
	}

	return model{
		rows:     rows,
		styles:   newStyles(),
		sections: make([]string, 0, len(rows)),
	}
}

func (m model) Init() tea.Cmd {
	return layoutRow(0)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	index, ok := msg.(rowMsg)
	if !ok {
		return m, nil
	}

	if int(index) < len(m.rows) {
		m.sections = append(m.sections, m.rows[index].render(m.styles))
		return m, layoutRow(int(index) + 1)
	}

	m.output = layoutListing(m.sections, m.styles)
	return m, tea.Quit
}

func (m model) View() string {
	return m.output
}

// Render lays out jobs in the order given.
func Render(jobs []domain.CommandJob, opts RenderOptions) (string, error) {
	program := tea.NewProgram(
		newModel(jobs, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
