package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/chatterd/internal/dialog"
	"github.com/fyrsmithlabs/chatterd/internal/intent"
)

// styles for the chat transcript and chrome.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	userStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	intentStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// farewells are inputs that end the chat after one last engine turn, so
// the user still gets a goodbye response.
var farewells = map[string]bool{
	"bye":  true,
	"exit": true,
	"quit": true,
}

// chatModel is the bubbletea model for an interactive chat window bound
// to one dialog session.
type chatModel struct {
	textinput textinput.Model
	viewport  viewport.Model

	engine    *dialog.Engine
	sessionID string

	transcript []string
	quitting   bool
	err        error
	width      int
	height     int
	ready      bool
}

// NewChatModel creates the chat model for the given engine and session.
func NewChatModel(engine *dialog.Engine, sessionID string) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "Say something... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 80

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return chatModel{
		textinput: ti,
		viewport:  vp,
		engine:    engine,
		sessionID: sessionID,
		transcript: []string{
			botStyle.Render("Hello! I can help with appointments, weather, and food orders."),
			helpStyle.Render("Commands: /context  /reset  (bye, exit or quit to leave)"),
		},
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleSubmit()
		}

		m.textinput, tiCmd = m.textinput.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		inputHeight := 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-headerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - headerHeight - inputHeight
		}
		m.textinput.Width = msg.Width - 4
		m.refreshViewport()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// handleSubmit processes the current input line: control commands are
// handled locally, everything else goes through the engine.
func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}
	m.textinput.Reset()

	m.transcript = append(m.transcript, userStyle.Render("you: ")+input)

	switch {
	case input == "/context":
		m.transcript = append(m.transcript, m.renderContext())
		m.refreshViewport()
		return m, nil

	case input == "/reset" || input == "/clear":
		m.engine.ResetContext(m.sessionID)
		m.transcript = append(m.transcript, botStyle.Render("bot: Context cleared. What would you like to talk about?"))
		m.refreshViewport()
		return m, nil
	}

	reply, err := m.engine.ProcessMessage(m.sessionID, input)
	if err != nil {
		m.err = err
		m.transcript = append(m.transcript, errStyle.Render("error: "+err.Error()))
		m.refreshViewport()
		return m, nil
	}

	line := botStyle.Render("bot: "+reply.Response) + " " +
		intentStyle.Render(fmt.Sprintf("[%s]", reply.Intent))
	m.transcript = append(m.transcript, line)
	m.refreshViewport()

	if farewells[strings.ToLower(input)] || reply.Intent == intent.IntentFarewell {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// renderContext formats the session snapshot for the transcript.
func (m chatModel) renderContext() string {
	snap, ok := m.engine.GetSession(m.sessionID)
	if !ok {
		return helpStyle.Render("(no session yet, say something first)")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "session:     %s\n", snap.SessionID)
	fmt.Fprintf(&b, "last intent: %s\n", snap.LastIntent)
	fmt.Fprintf(&b, "turns:       %d\n", len(snap.Turns))
	if len(snap.ContextData) == 0 {
		b.WriteString("context:     (empty)")
	} else {
		b.WriteString("context:\n")
		for k, v := range snap.ContextData {
			fmt.Fprintf(&b, "  %s = %s\n", k, v)
		}
	}
	return helpStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *chatModel) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("chatterd") +
		helpStyle.Render("  session "+m.sessionID) + "\n"

	return fmt.Sprintf("%s\n%s\n\n%s", header, m.viewport.View(), m.textinput.View())
}

// Run starts the full-screen chat interface and blocks until it exits.
func Run(engine *dialog.Engine, sessionID string) error {
	p := tea.NewProgram(NewChatModel(engine, sessionID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
