// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avltree/render"
)

// Model represents the Bubble Tea shell state
type Model struct {
	ready bool

	input   textinput.Model
	diagram viewport.Model

	session *Session
	layout  string

	// State
	showHelp  bool
	helpText  string
	lastDraw  string
	status    string
	statusErr bool

	// Styling
	styles *Styles

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the shell around a session
func InitialModel(session *Session, layout string) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 1..10, delete 5, print sideways, help..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	diagram := viewport.New(0, 0)

	helpText := sessionHelp
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		if rendered, err := renderer.Render(sessionHelp); err == nil {
			helpText = rendered
		}
	}

	return Model{
		input:    ti,
		diagram:  diagram,
		session:  session,
		layout:   layout,
		helpText: helpText,
		status:   "Type a command and press enter. F1 shows the command reference.",
		styles:   NewStyles(),
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshContent()
			return m, nil
		case "ctrl+y":
			if err := copyToClipboard(m.lastDraw); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("📋 Copied diagram to clipboard.", false)
			}
			return m, nil
		case "pgup":
			m.diagram.LineUp(m.diagram.Height)
			return m, nil
		case "pgdown":
			m.diagram.LineDown(m.diagram.Height)
			return m, nil
		case "home":
			m.diagram.GotoTop()
			return m, nil
		case "end":
			m.diagram.GotoBottom()
			return m, nil
		case "enter":
			return m.execute()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshContent()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) execute() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	out, err := m.session.Exec(line)
	switch {
	case errors.Is(err, errQuit):
		return m, tea.Quit
	case err != nil:
		m.setStatus(err.Error(), true)
	case isPrint(line):
		// the viewport shows the diagram, so print only switches layout
		if fields := strings.Fields(line); len(fields) > 1 {
			m.layout = fields[1]
		}
		m.setStatus("layout "+m.layout, false)
	case out == "":
		m.setStatus("ok", false)
	default:
		m.setStatus(out, false)
	}
	m.showHelp = false
	m.refreshContent()
	return m, nil
}

func isPrint(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && strings.EqualFold(fields[0], "print")
}

func (m *Model) setStatus(text string, isErr bool) {
	// multi-line results such as keys or has collapse onto one line
	m.status = strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " | ")), " ")
	m.statusErr = isErr
}

// refreshContent puts the help or the current diagram into the viewport.
func (m *Model) refreshContent() {
	if m.showHelp {
		m.diagram.SetContent(m.helpText)
		m.diagram.GotoTop()
		return
	}
	drawing, err := m.session.Render(m.layout, m.diagram.Width)
	if errors.Is(err, render.ErrTooTall) {
		m.layout = LayoutSideways
		m.setStatus(m.status+" (too tall for a pyramid, layout sideways)", m.statusErr)
		drawing, err = m.session.Render(m.layout, m.diagram.Width)
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.lastDraw = drawing
	m.diagram.SetContent(drawing)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 1
	diagramHeight := m.height - inputHeight - 9 // borders, titles, status and footer

	m.input.Width = m.width - 10
	m.diagram.Width = m.width - 4
	m.diagram.Height = max(1, diagramHeight)
}

// View renders the shell
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	tree := m.session.Tree()
	title := " 🌳 Tree "
	if m.showHelp {
		title = " 📖 Command Reference "
	}
	diagramBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			m.diagram.View(),
		))

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.HelpKey.Render(fmt.Sprintf(" size %d  height %d  ", tree.Len(), tree.Height())),
		statusStyle.Render(truncate(m.status, m.width-24)),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		diagramBox,
		inputBox,
		status,
		m.renderHelp(),
	)
}

func (m Model) renderHelp() string {
	helps := []struct{ key, desc string }{
		{"enter", "run"},
		{"F1", "commands"},
		{"ctrl+y", "copy diagram"},
		{"pgup/pgdown", "scroll"},
		{"esc", "quit"},
	}
	parts := make([]string, len(helps))
	for i, h := range helps {
		parts[i] = m.styles.HelpKey.Render(h.key) + " " + m.styles.HelpDesc.Render(h.desc)
	}
	return " " + strings.Join(parts, m.styles.HelpDesc.Render(" • "))
}

func truncate(s string, width int) string {
	if width <= 3 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea shell
func runBubbleTeaApp(session *Session, layout string) error {
	InitializeColors()

	model := InitialModel(session, layout)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
