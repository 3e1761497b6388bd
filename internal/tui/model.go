package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gradetally/internal/log"
	"gradetally/internal/services"
)

type mode int

const (
	browseMode mode = iota
	promptMode
)

type action int

const (
	addAction action = iota
	removeAction
	revenueAction
)

var (
	cardFields    = []string{"Card name", "Card grade", "Card cost"}
	revenueFields = []string{"Card name", "Card revenue"}
)

// Model is the Bubble Tea model for one report session.
type Model struct {
	ctx    context.Context
	svc    *services.ReportService
	logger *log.Logger

	mode    mode
	action  action
	fields  []string
	answers []string

	textInput textinput.Model
	status    string
	statusErr bool
	width     int
}

func NewModel(ctx context.Context, svc *services.ReportService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Width = 40

	return Model{
		ctx:       ctx,
		svc:       svc,
		logger:    log.FromContext(ctx).WithComponent(log.ComponentTUI),
		textInput: ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.textInput.Width = min(msg.Width-10, 60)
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode == promptMode {
			return m, m.updatePromptMode(msg)
		}
		return m, m.updateBrowseMode(msg)
	}

	if m.mode == promptMode {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	return render(m)
}

// Status returns the last message shown in the status line.
func (m *Model) Status() string { return m.status }

func (m *Model) updateBrowseMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.logger.DebugContext(m.ctx, "TUI closed", log.FieldOperation, log.OpShutdown)
		return tea.Quit
	case "a":
		return m.startPrompt(addAction, cardFields)
	case "r":
		return m.startPrompt(removeAction, cardFields)
	case "v":
		return m.startPrompt(revenueAction, revenueFields)
	case "w":
		path, err := m.svc.Export(m.ctx)
		if err != nil {
			m.setError(services.Describe(err, ""))
			return nil
		}
		m.setStatus(fmt.Sprintf("Report written to %s.", path))
	}
	return nil
}

func (m *Model) updatePromptMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		m.endPrompt()
		m.setStatus("Cancelled.")
		return nil
	case tea.KeyEnter:
		m.answers = append(m.answers, m.textInput.Value())
		m.textInput.Reset()
		if len(m.answers) < len(m.fields) {
			m.textInput.Placeholder = m.fields[len(m.answers)]
			return nil
		}
		m.execute()
		m.endPrompt()
		return nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

func (m *Model) startPrompt(a action, fields []string) tea.Cmd {
	m.mode = promptMode
	m.action = a
	m.fields = fields
	m.answers = m.answers[:0]
	m.textInput.Reset()
	m.textInput.Placeholder = fields[0]
	m.status = ""
	return m.textInput.Focus()
}

func (m *Model) endPrompt() {
	m.mode = browseMode
	m.fields = nil
	m.answers = m.answers[:0]
	m.textInput.Blur()
	m.textInput.Reset()
}

func (m *Model) execute() {
	name := m.answers[0]
	switch m.action {
	case addAction:
		c, err := m.svc.AddCard(m.ctx, name, m.answers[1], m.answers[2])
		if err != nil {
			m.setError(services.Describe(err, name))
			return
		}
		m.setStatus(fmt.Sprintf("Added %s.", c))
	case removeAction:
		c, err := m.svc.RemoveCard(m.ctx, name, m.answers[1], m.answers[2])
		if err != nil {
			m.setError(services.Describe(err, name))
			return
		}
		m.setStatus(fmt.Sprintf("Removed %s.", c))
	case revenueAction:
		if err := m.svc.UpdateRevenue(m.ctx, name, m.answers[1]); err != nil {
			m.setError(services.Describe(err, name))
			return
		}
		m.setStatus(fmt.Sprintf("Revenue for %s set to %s.", name, m.svc.Format(revenueOf(m.svc, name))))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
