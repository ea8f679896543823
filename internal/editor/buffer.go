package editor

// Inline marker wrappers applied around a selection
const (
	WrapBold      = "**"
	WrapItalic    = "_"
	WrapUnderline = "__"
)

// Buffer is editable text with a caret and a selection anchor. The
// selection spans Anchor..Cursor in either direction; it is empty when they
// are equal. Offsets are in runes.
type Buffer struct {
	text   []rune
	Cursor int
	Anchor int
}

// NewBuffer returns a buffer holding text with the caret at the end
func NewBuffer(text string) Buffer {
	r := []rune(text)
	return Buffer{text: r, Cursor: len(r), Anchor: len(r)}
}

// String returns the buffer contents
func (b Buffer) String() string {
	return string(b.text)
}

// Len returns the length in runes
func (b Buffer) Len() int {
	return len(b.text)
}

// Selection returns the ordered selection bounds
func (b Buffer) Selection() (start, end int) {
	if b.Anchor < b.Cursor {
		return b.Anchor, b.Cursor
	}
	return b.Cursor, b.Anchor
}

// HasSelection reports whether a non-empty range is selected
func (b Buffer) HasSelection() bool {
	return b.Anchor != b.Cursor
}

// Select sets the selection, clamping both ends to the text
func (b Buffer) Select(anchor, cursor int) Buffer {
	b.Anchor = b.clamp(anchor)
	b.Cursor = b.clamp(cursor)
	return b
}

func (b Buffer) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(b.text) {
		return len(b.text)
	}
	return i
}

// Wrap splices wrapper before and after the selection without touching
// what is inside it. The caret lands right after the closing wrapper and
// the selection is cleared. An existing wrapper is never toggled off.
func (b Buffer) Wrap(wrapper string) Buffer {
	start, end := b.Selection()
	w := []rune(wrapper)

	out := make([]rune, 0, len(b.text)+2*len(w))
	out = append(out, b.text[:start]...)
	out = append(out, w...)
	out = append(out, b.text[start:end]...)
	out = append(out, w...)
	out = append(out, b.text[end:]...)

	b.text = out
	b.Cursor = end + 2*len(w)
	b.Anchor = b.Cursor
	return b
}

// Insert replaces the selection with s
func (b Buffer) Insert(s string) Buffer {
	start, end := b.Selection()
	r := []rune(s)

	out := make([]rune, 0, len(b.text)-(end-start)+len(r))
	out = append(out, b.text[:start]...)
	out = append(out, r...)
	out = append(out, b.text[end:]...)

	b.text = out
	b.Cursor = start + len(r)
	b.Anchor = b.Cursor
	return b
}

// Backspace deletes the selection, or the rune before the caret
func (b Buffer) Backspace() Buffer {
	if b.HasSelection() {
		return b.Insert("")
	}
	if b.Cursor == 0 {
		return b
	}
	return b.Select(b.Cursor-1, b.Cursor).Insert("")
}

// DeleteForward deletes the selection, or the rune after the caret
func (b Buffer) DeleteForward() Buffer {
	if b.HasSelection() {
		return b.Insert("")
	}
	if b.Cursor >= len(b.text) {
		return b
	}
	return b.Select(b.Cursor, b.Cursor+1).Insert("")
}

// Move shifts the caret by delta runes. With extend the anchor stays put
// and the selection grows; otherwise the selection collapses.
func (b Buffer) Move(delta int, extend bool) Buffer {
	b.Cursor = b.clamp(b.Cursor + delta)
	if !extend {
		b.Anchor = b.Cursor
	}
	return b
}

// LineStart moves the caret to the start of its line
func (b Buffer) LineStart(extend bool) Buffer {
	i := b.Cursor
	for i > 0 && b.text[i-1] != '\n' {
		i--
	}
	return b.Move(i-b.Cursor, extend)
}

// LineEnd moves the caret to the end of its line
func (b Buffer) LineEnd(extend bool) Buffer {
	i := b.Cursor
	for i < len(b.text) && b.text[i] != '\n' {
		i++
	}
	return b.Move(i-b.Cursor, extend)
}

// SelectAll selects the whole text
func (b Buffer) SelectAll() Buffer {
	return b.Select(0, len(b.text))
}

// Segments splits the text around the selection and caret for rendering:
// text before the selection, the selection itself and text after it.
func (b Buffer) Segments() (before, selected, after string) {
	start, end := b.Selection()
	return string(b.text[:start]), string(b.text[start:end]), string(b.text[end:])
}
