package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/actionary/internal/model"
)

func TestTagColorFallsBackToTagDefault(t *testing.T) {
	if got := Actionary.TagColor(model.TagBlocked); got != lipgloss.Color("#ff5252") {
		t.Errorf("TagColor(Blocked) = %q, want #ff5252", got)
	}
	if got := Nord.TagColor(model.TagBlocked); got != lipgloss.Color("#BF616A") {
		t.Errorf("Nord TagColor(Blocked) = %q", got)
	}
}

func TestEveryThemeColorsEveryTag(t *testing.T) {
	for _, th := range Available() {
		for _, tag := range model.Tags() {
			if th.TagColor(tag) == "" {
				t.Errorf("theme %s has no color for %s", th.Name, tag)
			}
		}
	}
}

func TestNextWraps(t *testing.T) {
	defer SetTheme(Current.Theme)

	themes := Available()
	SetTheme(themes[len(themes)-1])
	if got := Next(); got.Name != themes[0].Name {
		t.Errorf("Next() = %s, want %s", got.Name, themes[0].Name)
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("gruvbox"); !ok {
		t.Error("gruvbox not found")
	}
	if _, ok := ByName("solarized"); ok {
		t.Error("unexpected theme solarized")
	}
}
