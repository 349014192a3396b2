package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tbsouza/projeta/internal/app"
	"github.com/tbsouza/projeta/internal/palette"
	"github.com/tbsouza/projeta/internal/ui/theme"
	"github.com/tbsouza/projeta/internal/ui/views"
)

// RootModel is the main application model. There is a single view (the
// project form); the root owns the chrome around it.
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	formView    views.FormView
	helpVisible bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, accent palette.Accent) RootModel {
	h := help.New()
	h.ShowAll = false

	theme.SetAccent(accent)

	return RootModel{
		app:      application,
		keys:     DefaultKeyMap(),
		help:     h,
		formView: views.NewFormView(application, accent),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.formView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		m.formView = m.formView.SetSize(m.width, m.height-4)

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.formView.IsInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}
			// Otherwise, let the form handle 'q' as a character

		case key.Matches(msg, m.keys.AccentCycle):
			// ctrl+t always works (unlikely to type)
			var accent palette.Accent
			m.formView, accent = m.formView.CycleAccent()
			m.statusMsg = fmt.Sprintf("Cor: %s", accent.Name)
			return m, nil
		}

		if !isInputMode && key.Matches(msg, m.keys.Help) {
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			return m, nil
		}

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case AccentChangedMsg:
		m.statusMsg = fmt.Sprintf("Cor: %s", msg.AccentName)
		return m, nil

	case views.AccentSelectedMsg:
		m.statusMsg = fmt.Sprintf("Cor: %s", msg.Accent.Name)
		return m, nil
	}

	// Delegate to the form view
	newFormView, cmd := m.formView.Update(msg)
	m.formView = newFormView.(views.FormView)
	return m, cmd
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Carregando..."
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Content area
	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.formView.View()
	}

	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	// Footer
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("projeta")

	infoStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	codeIndicator := infoStyle.Render(fmt.Sprintf("[%s]", m.formView.Code()))
	accentIndicator := infoStyle.Render(fmt.Sprintf("cor: %s", m.formView.Accent().Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, codeIndicator)
	rightSide := accentIndicator

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	keyHint := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string
	if m.formView.IsInputMode() {
		line1 = keyHint("enter", "confirmar") + sep + keyHint("esc", "cancelar")
	} else {
		line1 = keyHint("j/k", "campos") + sep +
			keyHint("enter", "editar") + sep +
			keyHint("a", "adicionar") + sep +
			keyHint("x", "remover") + sep +
			keyHint("tab", "concluir marco")
		line2 = keyHint("ctrl+e", "gerar documento") + sep +
			keyHint("o", "abrir") + sep +
			keyHint("ctrl+t", "cor") + sep +
			keyHint("?", "ajuda") + sep +
			keyHint("q", "sair")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent.Color()).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Info).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Subtle)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Ajuda"))
	b.WriteString("\n\n")

	section := func(title string, entries [][]string) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kv := range entries {
			b.WriteString(keyStyle.Render(kv[0]))
			b.WriteString(descStyle.Render(kv[1]))
			b.WriteString("\n")
		}
	}

	section("Navegação", [][]string{
		{"↑/k ↓/j", "Mover entre campos"},
		{"←/h →/l", "Item anterior/próximo (listas) ou alternar valor"},
	})

	section("Edição", [][]string{
		{"enter", "Editar o campo focado"},
		{"a", "Adicionar item (equipe, marcos, stack)"},
		{"x", "Remover o item destacado"},
		{"tab", "Marcar/desmarcar marco como concluído"},
		{"ctrl+d", "Confirmar texto multi-linha"},
		{"esc", "Cancelar edição"},
	})

	section("Documento", [][]string{
		{"ctrl+e", "Validar e gerar o PDF do projeto"},
		{"o", "Abrir o último documento gerado"},
	})

	section("Sistema", [][]string{
		{"ctrl+t", "Alternar cor de destaque"},
		{"?", "Mostrar/ocultar esta ajuda"},
		{"q / ctrl+c", "Sair"},
	})

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Pressione ? para fechar"))

	return b.String()
}
