package store

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/dori/actionary/internal/model"
)

// Gateway loads and saves the full task list. Implementations overwrite
// their backing storage wholesale on every WriteAll.
type Gateway interface {
	ReadAll() ([]model.Task, error)
	WriteAll(tasks []model.Task) error
}

// Store owns the current snapshot and pushes it to the gateway after every
// change. Persistence failures are logged and never roll back memory.
type Store struct {
	gw     Gateway
	logger *log.Logger
	tasks  Tasks

	// lastErr is the most recent write failure, cleared by a good write
	lastErr error
}

// New creates an empty store. A nil logger discards output.
func New(gw Gateway, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		gw:     gw,
		logger: logger,
		tasks:  Tasks{},
	}
}

// Open replaces the snapshot with whatever the gateway returns. On failure
// the store stays empty.
func (s *Store) Open() {
	if s.gw == nil {
		return
	}
	records, err := s.gw.ReadAll()
	if err != nil {
		s.logger.Warn("load failed, starting empty", "err", err)
		s.tasks = Tasks{}
		return
	}
	s.tasks = Load(records)
	s.logger.Debug("tasks loaded", "count", len(s.tasks))
}

// Tasks returns the current snapshot
func (s *Store) Tasks() Tasks {
	return s.tasks
}

// Rows returns the current snapshot in display order
func (s *Store) Rows() []Row {
	return Display(s.tasks)
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// LastError returns the most recent persistence failure, if any
func (s *Store) LastError() error {
	return s.lastErr
}

// Add appends a task. It returns false when text is blank.
func (s *Store) Add(text string) bool {
	return s.apply(s.tasks.Add(text))
}

// ToggleComplete flips completion of the task at storage index
func (s *Store) ToggleComplete(index int) bool {
	return s.apply(s.tasks.ToggleComplete(index))
}

// SetTag sets the tag of the task at storage index
func (s *Store) SetTag(index int, tag model.Tag) bool {
	return s.apply(s.tasks.SetTag(index, tag))
}

// Delete removes the task at storage index
func (s *Store) Delete(index int) bool {
	return s.apply(s.tasks.Delete(index))
}

// EditText replaces the text of the task with id. Stale ids are dropped.
func (s *Store) EditText(id, text string) bool {
	next, ok := s.tasks.EditText(id, text)
	if !ok {
		s.logger.Debug("edit dropped, task no longer exists", "id", id)
		return false
	}
	return s.apply(next, true)
}

func (s *Store) apply(next Tasks, changed bool) bool {
	if !changed {
		return false
	}
	s.tasks = next
	s.save()
	return true
}

func (s *Store) save() {
	if s.gw == nil {
		return
	}
	if err := s.gw.WriteAll(s.tasks); err != nil {
		s.lastErr = err
		s.logger.Error("save failed", "count", len(s.tasks), "err", err)
		return
	}
	s.lastErr = nil
}
