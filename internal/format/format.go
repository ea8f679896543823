// Package format turns raw task text with inline markers into styled spans.
//
// The transform is display-only and one-way: the raw text, markers included,
// is what gets stored and edited.
package format

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is a set of inline text attributes
type Style uint8

const (
	Underline Style = 1 << iota
	Bold
	Italic
)

// Has reports whether s includes all attributes of other
func (s Style) Has(other Style) bool {
	return s&other == other
}

// Span is a run of text with uniform style. A span with Break set is a line
// break and carries no text.
type Span struct {
	Text  string
	Style Style
	Break bool
}

// pass is one marker rule. Passes run in order over the output of the
// previous pass, so underline is resolved before italic can claim a single
// underscore out of a double one.
type pass struct {
	re     *regexp.Regexp
	marker int
	style  Style
}

var passes = []pass{
	{re: regexp.MustCompile(`__([^_]+?)__`), marker: 2, style: Underline},
	{re: regexp.MustCompile(`\*\*([^*]+?)\*\*`), marker: 2, style: Bold},
	{re: regexp.MustCompile(`_([^_]+?)_`), marker: 1, style: Italic},
}

// Parse converts raw text into spans. Unbalanced markers stay literal.
func Parse(text string) []Span {
	if text == "" {
		return nil
	}

	// styles holds one entry per byte of text; markers are ASCII so byte
	// positions are safe to splice
	styles := make([]Style, len(text))
	for _, p := range passes {
		text, styles = p.apply(text, styles)
	}
	return split(text, styles)
}

func (p pass) apply(text string, styles []Style) (string, []Style) {
	matches := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, styles
	}

	var b strings.Builder
	out := make([]Style, 0, len(styles))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		innerStart, innerEnd := m[2], m[3]

		b.WriteString(text[last:start])
		out = append(out, styles[last:start]...)

		b.WriteString(text[innerStart:innerEnd])
		for _, s := range styles[innerStart:innerEnd] {
			out = append(out, s|p.style)
		}
		last = end
	}
	b.WriteString(text[last:])
	out = append(out, styles[last:]...)
	return b.String(), out
}

// split groups equally styled bytes into spans and turns newlines into breaks
func split(text string, styles []Style) []Span {
	var spans []Span
	start := 0
	flush := func(end int) {
		if end > start {
			spans = append(spans, Span{Text: text[start:end], Style: styles[start]})
		}
	}
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\n':
			flush(i)
			spans = append(spans, Span{Break: true})
			start = i + 1
		case i > start && styles[i] != styles[start]:
			flush(i)
			start = i
		}
	}
	flush(len(text))
	return spans
}

// Plain returns the text of spans with markers removed
func Plain(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Break {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render draws spans with base as the starting style for every run
func Render(spans []Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Break {
			b.WriteByte('\n')
			continue
		}
		st := base
		if s.Style.Has(Underline) {
			st = st.Underline(true)
		}
		if s.Style.Has(Bold) {
			st = st.Bold(true)
		}
		if s.Style.Has(Italic) {
			st = st.Italic(true)
		}
		b.WriteString(st.Render(s.Text))
	}
	return b.String()
}

// Text parses and renders raw in one step
func Text(raw string, base lipgloss.Style) string {
	return Render(Parse(raw), base)
}
