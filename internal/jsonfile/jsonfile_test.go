package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dori/actionary/internal/model"
	"github.com/dori/actionary/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "none.json"))

	tasks, err := f.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestReadAllCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path).ReadAll()
	assert.Error(t, err)
}

func TestReadAllNotAnArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	_, err := New(path).ReadAll()
	assert.Error(t, err)
}

func TestWriteAllFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.json")
	f := New(path)

	err := f.WriteAll([]model.Task{
		{ID: "a1", Text: "line\n**two**", Completed: true, Tag: model.TagCompleted},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `[
  {
    "id": "a1",
    "text": "line\n**two**",
    "completed": true,
    "tag": "Completed"
  }
]`
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not linger")
}

func TestWriteAllNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, New(path).WriteAll(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	f := New(path)
	require.NoError(t, f.WriteAll([]model.Task{
		{ID: "1", Text: "a", Tag: model.TagToDo},
		{ID: "2", Text: "_b_", Tag: model.TagBlocked},
		{ID: "3", Text: "c", Completed: true, Tag: model.TagCompleted},
	}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := f.ReadAll()
	require.NoError(t, err)
	require.NoError(t, f.WriteAll(loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStoreOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := store.New(New(path), nil)
	s.Open()
	require.True(t, s.Add("Buy milk"))
	require.True(t, s.SetTag(0, model.TagInProgress))

	reopened := store.New(New(path), nil)
	reopened.Open()
	require.Equal(t, 1, reopened.Len())
	assert.Equal(t, model.TagInProgress, reopened.Tasks()[0].Tag)
	assert.Equal(t, "Buy milk", reopened.Tasks()[0].Text)
}

func TestWriteFailureReported(t *testing.T) {
	dir := t.TempDir()
	// the target path is an existing directory, so the rename fails
	target := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "x"), nil, 0644))

	err := New(target).WriteAll([]model.Task{{ID: "1", Text: "a", Tag: model.TagToDo}})
	assert.Error(t, err)
}
