// Package jsonfile persists the task list as a single JSON array on disk.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dori/actionary/internal/model"
)

// FileName is the default name of the tasks file in the user's home
const FileName = "actionary-tasks.json"

// File is a gateway backed by one JSON file that is overwritten wholesale
// on every write.
type File struct {
	Path string
}

// DefaultPath returns the per-user tasks file path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// New returns a gateway for path
func New(path string) *File {
	return &File{Path: path}
}

// ReadAll returns the persisted tasks. A missing file yields an empty list
// and no error; unreadable or malformed content is an error.
func (f *File) ReadAll() ([]model.Task, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks file %s: %w", f.Path, err)
	}
	if tasks == nil {
		// a literal "null" is not a sequence
		return nil, fmt.Errorf("tasks file %s does not hold an array", f.Path)
	}
	return tasks, nil
}

// WriteAll replaces the file contents with tasks. The data goes to a
// temporary file in the same directory first and is renamed into place.
func (f *File) WriteAll(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".actionary-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write tasks: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace tasks file: %w", err)
	}
	return nil
}
