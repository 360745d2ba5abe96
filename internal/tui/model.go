package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// QAPort is the TUI-facing subset of the orchestrator.
type QAPort interface {
	AskQuestion(question string) (string, error)
}

// TranscriptPort persists the conversation; it may be nil.
type TranscriptPort interface {
	Save(name string, messages []domain.Message) error
}

// Model is the Bubble Tea model for the chat front-end.
type Model struct {
	service     QAPort
	transcripts TranscriptPort
	sessionName string
	input       textinput.Model
	viewport    viewport.Model
	messages    []domain.Message
	summary     string
	status      string
	ready       bool
}

// New creates a chat model. transcripts may be nil to disable
// persistence.
func New(service QAPort, summary string, transcripts TranscriptPort, sessionName string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about the document"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:     service,
		transcripts: transcripts,
		sessionName: sessionName,
		input:       ti,
		viewport:    vp,
		summary:     summary,
		status:      "Document loaded. Ask away.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ch)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				break
			}
			m.input.SetValue("")
			m.messages = append(m.messages, domain.Message{Role: domain.RoleUser, Content: question})

			answer, err := m.service.AskQuestion(question)
			if err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.messages = append(m.messages, domain.Message{Role: domain.RoleAssistant, Content: answer})
				m.status = "Answered."
				m.persist()
			}
			m.viewport.SetContent(m.renderTranscript())
			m.viewport.GotoBottom()
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Chat with your document")
	summary := summaryStyle.Render(m.summary)
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + chat + "\n" + input + "\n" + status
}

func (m *Model) persist() {
	if m.transcripts == nil || m.sessionName == "" {
		return
	}
	if err := m.transcripts.Save(m.sessionName, m.messages); err != nil {
		m.status = "Warning: could not save session: " + err.Error()
	}
}

func (m Model) renderTranscript() string {
	if len(m.messages) == 0 {
		return "No questions yet."
	}
	var sb strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch msg.Role {
		case domain.RoleUser:
			sb.WriteString(userStyle.Render("You: "))
		default:
			sb.WriteString(assistantStyle.Render("Assistant: "))
		}
		sb.WriteString(msg.Content)
	}
	return sb.String()
}

var (
	chatBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
