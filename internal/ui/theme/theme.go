package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/actionary/internal/model"
)

// Theme defines the color scheme and styles for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Tag colors; a tag missing here uses its own default color
	Tags map[model.Tag]lipgloss.Color
}

// TagColor returns the color used for a tag badge and checkbox
func (t Theme) TagColor(tag model.Tag) lipgloss.Color {
	if c, ok := t.Tags[tag]; ok {
		return c
	}
	return lipgloss.Color(tag.Color())
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style

	// Task styles
	TaskNormal lipgloss.Style
	TaskCursor lipgloss.Style
	TaskDone   lipgloss.Style

	Title lipgloss.Style

	// Editing
	InputFocused lipgloss.Style
	Selection    lipgloss.Style
	Caret        lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		TaskNormal: lipgloss.NewStyle().
			Foreground(t.Foreground),

		TaskCursor: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TaskDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Strikethrough(true),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Selection: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Secondary),

		Caret: lipgloss.NewStyle().
			Reverse(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}

// TagBadge renders a tag label on its color
func (s Styles) TagBadge(t Theme, tag model.Tag) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(t.TagColor(tag)).
		Bold(true).
		Padding(0, 1).
		Render(string(tag))
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Actionary,
	Styles: NewStyles(Actionary),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Actionary,
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme after the current one, wrapping around
func Next() Theme {
	themes := Available()
	for i, t := range themes {
		if t.Name == Current.Theme.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
