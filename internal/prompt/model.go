package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// kind selects how a question is answered.
type kind int

const (
	kindText    kind = iota // free text, blank accepts the default
	kindConfirm             // Enter continues, no input
)

// question is one step of the questionnaire.
type question struct {
	key    string
	kind   kind
	title  string
	detail string

	// def computes the default from earlier answers.
	def func(answers map[string]string) string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// model is the bubbletea model walking through the questions in order.
type model struct {
	questions []question
	idx       int
	input     textinput.Model
	answers   map[string]string
	history   []string
	aborted   bool
}

func newModel(questions []question) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 72
	ti.Focus()

	m := model{
		questions: questions,
		input:     ti,
		answers:   make(map[string]string, len(questions)),
	}
	m.prepare()
	return m
}

func (m model) Init() tea.Cmd {
	if len(m.questions) == 0 {
		return tea.Quit
	}
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	if m.done() || m.current().kind == kindConfirm {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	for _, h := range m.history {
		b.WriteString(h)
		b.WriteString("\n")
	}
	if m.done() || m.aborted {
		return b.String()
	}

	q := m.current()
	b.WriteString(titleStyle.Render(q.title))
	b.WriteString("\n")
	if q.detail != "" {
		b.WriteString(detailStyle.Render(q.detail))
		b.WriteString("\n")
	}
	if q.kind == kindText {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

// submit records the current answer and advances.
func (m model) submit() (tea.Model, tea.Cmd) {
	if m.done() {
		return m, tea.Quit
	}
	q := m.current()

	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		value = m.input.Placeholder
	}
	m.answers[q.key] = value

	if q.kind == kindText {
		m.history = append(m.history, q.title+" "+answerStyle.Render(value))
	}

	m.idx++
	if m.done() {
		return m, tea.Quit
	}
	m.prepare()
	return m, nil
}

// prepare resets the input for the current question.
func (m *model) prepare() {
	m.input.Reset()
	m.input.Placeholder = ""
	if m.done() {
		return
	}
	if q := m.current(); q.def != nil {
		m.input.Placeholder = q.def(m.answers)
	}
}

func (m model) current() question {
	return m.questions[m.idx]
}

func (m model) done() bool {
	return m.idx >= len(m.questions)
}
