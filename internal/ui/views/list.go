package views

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dori/actionary/internal/editor"
	"github.com/dori/actionary/internal/format"
	"github.com/dori/actionary/internal/model"
	"github.com/dori/actionary/internal/store"
	"github.com/dori/actionary/internal/ui/theme"
)

// ListMode represents the current input mode of the list view
type ListMode int

const (
	ListModeNormal ListMode = iota
	ListModeAdd
	ListModeEdit
)

// ListView displays tasks with To-Do entries first. Every row carries its
// storage index; actions never use the display position.
type ListView struct {
	store  *store.Store
	logger *log.Logger
	width  int
	height int

	rows         []store.Row
	cursor       int
	scrollOffset int

	mode      ListMode
	input     textinput.Model
	session   editor.Session
	statusMsg string
}

// NewListView creates a new list view over s
func NewListView(s *store.Store, logger *log.Logger) ListView {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "Add a new task..."
	ti.CharLimit = 512

	v := ListView{
		store:  s,
		logger: logger,
		input:  ti,
	}
	v.refresh()
	return v
}

// Init initializes the list view. The store is already loaded.
func (v ListView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input
func (v ListView) IsInputMode() bool {
	return v.mode != ListModeNormal
}

// IsEditing returns true while a task's text is being edited
func (v ListView) IsEditing() bool {
	return v.mode == ListModeEdit
}

// SetSize updates the view dimensions
func (v ListView) SetSize(width, height int) ListView {
	v.width = width
	v.height = height
	v.input.Width = width - 6
	return v
}

// Flush commits any edit in progress. Called before quitting so the
// buffer is never lost.
func (v ListView) Flush() ListView {
	if v.mode == ListModeEdit {
		return v.commitEdit()
	}
	return v
}

// refresh re-projects the store and clamps the cursor
func (v *ListView) refresh() {
	v.rows = v.store.Rows()
	if v.cursor >= len(v.rows) {
		v.cursor = max(0, len(v.rows)-1)
	}
	v.ensureCursorVisible()
}

// refreshKeeping re-projects the store and moves the cursor to the task
// with id, which may have changed display position
func (v *ListView) refreshKeeping(id string) {
	v.rows = v.store.Rows()
	for i, r := range v.rows {
		if r.Task.ID == id {
			v.cursor = i
			break
		}
	}
	v.refresh()
}

func (v ListView) current() (store.Row, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return store.Row{}, false
	}
	return v.rows[v.cursor], true
}

// visibleTaskCount returns how many tasks can fit in the viewport
func (v ListView) visibleTaskCount() int {
	// Reserve lines for the input box and status message
	available := v.height - 6
	if available < 1 {
		available = 1
	}
	return available
}

// ensureCursorVisible adjusts scrollOffset to keep cursor in view
func (v *ListView) ensureCursorVisible() {
	visible := v.visibleTaskCount()

	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}

	maxOffset := max(0, len(v.rows)-visible)
	if v.scrollOffset > maxOffset {
		v.scrollOffset = maxOffset
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Update handles messages for the list view
func (v ListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BlurMsg:
		// Losing focus commits the edit, same as enter
		if v.mode == ListModeEdit {
			v = v.commitEdit()
		}
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case ListModeAdd:
			return v.handleAddMode(msg)
		case ListModeEdit:
			return v.handleEditMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == ListModeAdd {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleNormalMode handles keypresses in normal mode
func (v ListView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		v.ensureCursorVisible()

	case "down", "j":
		if v.cursor < len(v.rows)-1 {
			v.cursor++
		}
		v.ensureCursorVisible()

	case "g":
		v.cursor = 0
		v.ensureCursorVisible()

	case "G":
		v.cursor = max(0, len(v.rows)-1)
		v.ensureCursorVisible()

	case "a":
		v.mode = ListModeAdd
		cmd := v.input.Focus()
		return v, cmd

	case "enter", "e":
		row, ok := v.current()
		if !ok {
			return v, nil
		}
		v.session = v.session.Begin(row.Task.ID, row.Task.Text)
		v.mode = ListModeEdit
		v.logger.Debug("editing", "id", row.Task.ID)

	case " ", "x":
		row, ok := v.current()
		if !ok {
			return v, nil
		}
		v.store.ToggleComplete(row.Index)
		v.refreshKeeping(row.Task.ID)

	case "t":
		row, ok := v.current()
		if !ok {
			return v, nil
		}
		v.store.SetTag(row.Index, row.Task.Tag.Next())
		v.refreshKeeping(row.Task.ID)

	case "1", "2", "3", "4":
		row, ok := v.current()
		if !ok {
			return v, nil
		}
		tag := model.Tags()[msg.String()[0]-'1']
		v.store.SetTag(row.Index, tag)
		v.refreshKeeping(row.Task.ID)

	case "d", "delete":
		row, ok := v.current()
		if !ok {
			return v, nil
		}
		if v.store.Delete(row.Index) {
			v.statusMsg = fmt.Sprintf("Deleted \"%s\"", truncate(format.Plain(format.Parse(row.Task.Text)), 30))
		}
		v.refresh()
	}

	return v, nil
}

// handleAddMode handles keypresses in add mode. The input stays open after
// a task is added so several can be entered in a row.
func (v ListView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v.store.Add(v.input.Value()) {
			v.input.SetValue("")
			tasks := v.store.Tasks()
			v.refreshKeeping(tasks[len(tasks)-1].ID)
		}
		return v, nil
	case "esc":
		v.mode = ListModeNormal
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleEditMode handles keypresses while a task's text is being edited.
// Every way out commits the buffer.
func (v ListView) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := v.session.Buffer

	switch msg.String() {
	case "enter", "esc":
		return v.commitEdit(), nil
	case "up", "down":
		// Leaving the task commits it
		v = v.commitEdit()
		return v.handleNormalMode(msg)
	case "alt+enter", "ctrl+j":
		b = b.Insert("\n")
	case "ctrl+b", "alt+b":
		b = b.Wrap(editor.WrapBold)
	case "alt+i":
		b = b.Wrap(editor.WrapItalic)
	case "ctrl+u", "alt+u":
		b = b.Wrap(editor.WrapUnderline)
	case "left":
		b = b.Move(-1, false)
	case "right":
		b = b.Move(1, false)
	case "shift+left":
		b = b.Move(-1, true)
	case "shift+right":
		b = b.Move(1, true)
	case "home":
		b = b.LineStart(false)
	case "end":
		b = b.LineEnd(false)
	case "shift+home":
		b = b.LineStart(true)
	case "shift+end":
		b = b.LineEnd(true)
	case "ctrl+a":
		b = b.SelectAll()
	case "backspace":
		b = b.Backspace()
	case "delete":
		b = b.DeleteForward()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				b = b.Insert(string(msg.Runes))
			}
		case tea.KeySpace:
			b = b.Insert(" ")
		}
	}

	v.session.Buffer = b
	return v, nil
}

func (v ListView) commitEdit() ListView {
	id := v.session.TaskID()
	var updated bool
	v.session, updated = v.session.CommitTo(v.store)
	v.mode = ListModeNormal
	if updated {
		v.refreshKeeping(id)
	} else {
		v.refresh()
	}
	return v
}

// View renders the list
func (v ListView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder

	if v.mode == ListModeAdd {
		b.WriteString(styles.InputFocused.Render(v.input.View()))
		b.WriteString("\n\n")
	}

	if v.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(t.Info).
			Italic(true)
		b.WriteString(statusStyle.Render(v.statusMsg))
		b.WriteString("\n\n")
	}

	if len(v.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(1, 0)
		b.WriteString(emptyStyle.Render("No tasks. Press 'a' to add one."))
		return b.String()
	}

	visible := v.visibleTaskCount()
	endIdx := min(v.scrollOffset+visible, len(v.rows))

	scrollStyle := lipgloss.NewStyle().Foreground(t.Subtle)
	if v.scrollOffset > 0 {
		b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↑ %d more above", v.scrollOffset)))
		b.WriteString("\n")
	}

	for i := v.scrollOffset; i < endIdx; i++ {
		b.WriteString(v.renderRow(v.rows[i], i == v.cursor))
		b.WriteString("\n")
	}

	if remaining := len(v.rows) - endIdx; remaining > 0 {
		b.WriteString(scrollStyle.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one task: cursor, checkbox, formatted text, tag badge
func (v ListView) renderRow(row store.Row, isCursor bool) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles
	task := row.Task
	tagColor := t.TagColor(task.Tag)

	cursor := "  "
	if isCursor {
		cursor = styles.TaskCursor.Render("> ")
	}

	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}
	checkbox = lipgloss.NewStyle().Foreground(tagColor).Render(checkbox)

	badge := styles.TagBadge(t, task.Tag)

	var text string
	if v.mode == ListModeEdit && v.session.TaskID() == task.ID {
		text = v.renderEditor()
	} else {
		base := styles.TaskNormal
		if task.Completed {
			base = styles.TaskDone
		}
		text = format.Text(task.Text, base)
	}

	textWidth := v.width - lipgloss.Width(cursor) - lipgloss.Width(checkbox) - lipgloss.Width(badge) - 2
	if textWidth < 10 {
		textWidth = 10
	}
	textBlock := lipgloss.NewStyle().Width(textWidth).Render(text)

	return lipgloss.JoinHorizontal(lipgloss.Top, cursor, checkbox, " ", textBlock, " ", badge)
}

// renderEditor draws the raw edit buffer with its selection or caret
func (v ListView) renderEditor() string {
	styles := theme.Current.Styles
	before, selected, after := v.session.Buffer.Segments()

	var b strings.Builder
	b.WriteString(before)
	if selected != "" {
		b.WriteString(styles.Selection.Render(selected))
		b.WriteString(after)
		return b.String()
	}

	r, size := utf8.DecodeRuneInString(after)
	if size == 0 || r == '\n' {
		b.WriteString(styles.Caret.Render(" "))
		b.WriteString(after)
	} else {
		b.WriteString(styles.Caret.Render(string(r)))
		b.WriteString(after[size:])
	}
	return b.String()
}

// Counts returns how many tasks carry each tag
func (v ListView) Counts() map[model.Tag]int {
	counts := make(map[model.Tag]int)
	for _, r := range v.rows {
		counts[r.Task.Tag]++
	}
	return counts
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
