package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/actionary/internal/model"
)

// Actionary is the light default theme. Tag colors
// come straight from the tags themselves.
var Actionary = Theme{
	Name: "actionary",

	Background: lipgloss.Color("#F4F8FF"),
	Foreground: lipgloss.Color("#222222"),
	Subtle:     lipgloss.Color("#B0B0B0"),
	Highlight:  lipgloss.Color("#DCE8FF"),
	Border:     lipgloss.Color("#E0E0E0"),

	Primary:   lipgloss.Color("#007AFF"),
	Secondary: lipgloss.Color("#5E9BFF"),
	Info:      lipgloss.Color("#007AFF"),

	Success: lipgloss.Color("#43A047"),
	Warning: lipgloss.Color("#FFB300"),
	Error:   lipgloss.Color("#FF5252"),
}

// Nord theme - Arctic, north-bluish color palette
// https://www.nordtheme.com/
var Nord = Theme{
	Name: "nord",

	// Polar Night
	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#4C566A"),

	// Frost
	Primary:   lipgloss.Color("#88C0D0"),
	Secondary: lipgloss.Color("#81A1C1"),
	Info:      lipgloss.Color("#5E81AC"),

	// Aurora
	Success: lipgloss.Color("#A3BE8C"),
	Warning: lipgloss.Color("#EBCB8B"),
	Error:   lipgloss.Color("#BF616A"),

	Tags: map[model.Tag]lipgloss.Color{
		model.TagToDo:       lipgloss.Color("#5E81AC"),
		model.TagInProgress: lipgloss.Color("#D08770"),
		model.TagBlocked:    lipgloss.Color("#BF616A"),
		model.TagCompleted:  lipgloss.Color("#A3BE8C"),
	},
}

// Dracula theme
// https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),

	Primary:   lipgloss.Color("#BD93F9"), // Purple
	Secondary: lipgloss.Color("#8BE9FD"), // Cyan
	Info:      lipgloss.Color("#8BE9FD"),

	Success: lipgloss.Color("#50FA7B"),
	Warning: lipgloss.Color("#F1FA8C"),
	Error:   lipgloss.Color("#FF5555"),

	Tags: map[model.Tag]lipgloss.Color{
		model.TagToDo:       lipgloss.Color("#BD93F9"),
		model.TagInProgress: lipgloss.Color("#FFB86C"),
		model.TagBlocked:    lipgloss.Color("#FF5555"),
		model.TagCompleted:  lipgloss.Color("#50FA7B"),
	},
}

// Gruvbox theme (dark)
var Gruvbox = Theme{
	Name: "gruvbox",

	Background: lipgloss.Color("#282828"),
	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Highlight:  lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),

	Primary:   lipgloss.Color("#83A598"), // Aqua
	Secondary: lipgloss.Color("#8EC07C"),
	Info:      lipgloss.Color("#83A598"),

	Success: lipgloss.Color("#B8BB26"),
	Warning: lipgloss.Color("#FABD2F"),
	Error:   lipgloss.Color("#FB4934"),

	Tags: map[model.Tag]lipgloss.Color{
		model.TagToDo:       lipgloss.Color("#458588"),
		model.TagInProgress: lipgloss.Color("#D79921"),
		model.TagBlocked:    lipgloss.Color("#CC241D"),
		model.TagCompleted:  lipgloss.Color("#98971A"),
	},
}

// Catppuccin Mocha
var Catppuccin = Theme{
	Name: "catppuccin",

	Background: lipgloss.Color("#1E1E2E"),
	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"),
	Highlight:  lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475A"),

	Primary:   lipgloss.Color("#89B4FA"), // Blue
	Secondary: lipgloss.Color("#CBA6F7"), // Mauve
	Info:      lipgloss.Color("#74C7EC"),

	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#F9E2AF"),
	Error:   lipgloss.Color("#F38BA8"),

	Tags: map[model.Tag]lipgloss.Color{
		model.TagToDo:       lipgloss.Color("#89B4FA"),
		model.TagInProgress: lipgloss.Color("#FAB387"),
		model.TagBlocked:    lipgloss.Color("#F38BA8"),
		model.TagCompleted:  lipgloss.Color("#A6E3A1"),
	},
}
