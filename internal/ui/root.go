package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/actionary/internal/app"
	"github.com/dori/actionary/internal/model"
	"github.com/dori/actionary/internal/ui/theme"
	"github.com/dori/actionary/internal/ui/views"
)

// RootModel is the main application model. It owns the global keys and
// the chrome around the task list.
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	listView    views.ListView
	helpVisible bool

	statusMsg string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = true

	return RootModel{
		app:      application,
		keys:     DefaultKeyMap(),
		help:     h,
		listView: views.NewListView(application.Store, application.Logger),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.listView.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (2 lines) and footer (2 lines)
		m.listView = m.listView.SetSize(m.width, m.height-4)
		return m, nil

	case tea.KeyMsg:
		// Clear status on any keypress
		m.statusMsg = ""

		isInputMode := m.listView.IsInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				m.listView = m.listView.Flush()
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.cycleTheme()
			return m, nil
		}

		if m.helpVisible && !isInputMode {
			if msg.String() == "esc" || key.Matches(msg, m.keys.Help) {
				m.helpVisible = false
			}
			return m, nil
		}

		if !isInputMode && key.Matches(msg, m.keys.Help) {
			m.helpVisible = true
			return m, nil
		}
	}

	newListView, cmd := m.listView.Update(msg)
	m.listView = newListView.(views.ListView)

	return m, cmd
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.listView.View()
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the title, per-tag counts and theme name
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("actionary")

	counts := m.listView.Counts()
	var parts []string
	for _, tag := range model.Tags() {
		if n := counts[tag]; n > 0 {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(t.TagColor(tag)).
				Render(fmt.Sprintf("%d %s", n, strings.ToLower(string(tag)))))
		}
	}

	subtle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)
	summary := subtle.Render(strings.Join(parts, subtle.Render("·")))
	themeIndicator := subtle.Render(fmt.Sprintf("theme: %s", t.Name))

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, summary)
	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(themeIndicator)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + themeIndicator
}

// renderFooter renders the status line and context-aware key hints
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string
	switch {
	case m.listView.IsEditing():
		line1 = key("enter/esc", "save") + sep +
			key("M-enter", "newline") + sep +
			key("shift+←/→", "select") + sep +
			key("C-a", "all")
		line2 = key("C-b", "bold") + sep +
			key("M-i", "italic") + sep +
			key("C-u", "underline")
	case m.listView.IsInputMode():
		line1 = key("enter", "add") + sep + key("esc", "done")
	default:
		line1 = key("a", "add") + sep +
			key("enter", "edit") + sep +
			key("space", "done") + sep +
			key("t", "tag") + sep +
			key("d", "del")
		line2 = key("1-4", "set tag") + sep +
			key("ctrl+t", "theme") + sep +
			key("?", "help") + sep +
			key("q", "quit")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	lines = append(lines, line1)
	if line2 != "" {
		lines = append(lines, line2)
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Title.Render("Actionary Help"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Formatting: **bold**  _italic_  __underline__"))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press ? or esc to close"))

	return b.String()
}

// cycleTheme switches to the next available theme
func (m *RootModel) cycleTheme() {
	next := theme.Next()
	theme.SetTheme(next)
	m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
	m.app.Logger.Debug("theme changed", "theme", next.Name)
}
