package editor

import (
	"testing"

	"github.com/dori/actionary/internal/model"
	"github.com/dori/actionary/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapSelection(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		anchor     int
		cursor     int
		wrapper    string
		want       string
		wantCursor int
	}{
		{"bold", "buy milk", 4, 8, WrapBold, "buy **milk**", 12},
		{"italic reversed selection", "buy milk", 3, 0, WrapItalic, "_buy_ milk", 5},
		{"underline", "a b c", 2, 3, WrapUnderline, "a __b__ c", 7},
		{"empty selection", "ab", 1, 1, WrapBold, "a****b", 5},
		{"no toggle off", "**x**", 2, 3, WrapBold, "****x****", 7},
		{"multibyte", "héllo", 1, 2, WrapItalic, "h_é_llo", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text).Select(tt.anchor, tt.cursor).Wrap(tt.wrapper)
			assert.Equal(t, tt.want, b.String())
			assert.Equal(t, tt.wantCursor, b.Cursor)
			assert.False(t, b.HasSelection())
		})
	}
}

func TestBufferEditing(t *testing.T) {
	b := NewBuffer("ac")
	b = b.Move(-1, false).Insert("b")
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 2, b.Cursor)

	b = b.Backspace()
	assert.Equal(t, "ac", b.String())

	b = b.LineEnd(false).Insert("\nsecond")
	b = b.LineStart(true)
	before, selected, after := b.Segments()
	assert.Equal(t, "ac\n", before)
	assert.Equal(t, "second", selected)
	assert.Equal(t, "", after)

	b = b.Backspace()
	assert.Equal(t, "ac\n", b.String())

	b = b.SelectAll().DeleteForward()
	assert.Equal(t, "", b.String())
	assert.Equal(t, b, b.Backspace())
}

func TestBufferClamps(t *testing.T) {
	b := NewBuffer("abc").Select(-4, 99)
	start, end := b.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
	assert.Equal(t, 3, b.Move(10, false).Cursor)
}

func TestSessionCommitAppliesBuffer(t *testing.T) {
	s := store.New(nil, nil)
	require.True(t, s.Add("draft"))
	id := s.Tasks()[0].ID

	sess := Session{}.Begin(id, s.Tasks()[0].Text)
	require.Equal(t, Editing, sess.State())
	assert.Equal(t, "draft", sess.Buffer.String())

	sess.Buffer = sess.Buffer.SelectAll().Wrap(WrapBold)
	sess, updated := sess.CommitTo(s)

	assert.True(t, updated)
	assert.Equal(t, Viewing, sess.State())
	assert.Equal(t, "", sess.TaskID())
	assert.Equal(t, "**draft**", s.Tasks()[0].Text)
	assert.Equal(t, model.TagToDo, s.Tasks()[0].Tag)
}

func TestSessionCommitAfterDeleteIsDropped(t *testing.T) {
	s := store.New(nil, nil)
	s.Add("keep")
	s.Add("doomed")
	id := s.Tasks()[1].ID

	sess := Session{}.Begin(id, "doomed")
	sess.Buffer = sess.Buffer.Insert(" edited")
	require.True(t, s.Delete(1))

	sess, updated := sess.CommitTo(s)
	assert.False(t, updated)
	assert.False(t, sess.Editing())
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "keep", s.Tasks()[0].Text)
}

func TestCommitWhileViewing(t *testing.T) {
	_, _, _, ok := Session{}.Commit()
	assert.False(t, ok)
}
