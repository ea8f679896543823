package store

import (
	"strings"

	"github.com/dori/actionary/internal/model"
	"github.com/google/uuid"
)

// Tasks is an immutable snapshot of the ordered task list. Transitions never
// modify their receiver; they return a fresh slice.
type Tasks []model.Task

// IDFunc generates task ids. Tests swap it for a deterministic sequence.
var IDFunc = func() string {
	return uuid.New().String()
}

// Load returns a snapshot holding records, or an empty one for nil input
func Load(records []model.Task) Tasks {
	if records == nil {
		return Tasks{}
	}
	out := make(Tasks, len(records))
	copy(out, records)
	return out
}

func (ts Tasks) clone() Tasks {
	out := make(Tasks, len(ts))
	copy(out, ts)
	return out
}

func (ts Tasks) inRange(index int) bool {
	return index >= 0 && index < len(ts)
}

// Add appends a new To-Do task. Whitespace-only text leaves the snapshot
// unchanged and reports false.
func (ts Tasks) Add(text string) (Tasks, bool) {
	if strings.TrimSpace(text) == "" {
		return ts, false
	}
	out := make(Tasks, len(ts), len(ts)+1)
	copy(out, ts)
	out = append(out, model.Task{
		ID:        IDFunc(),
		Text:      text,
		Completed: false,
		Tag:       model.TagToDo,
	})
	return out, true
}

// ToggleComplete flips completion of the task at the storage index. A task
// becoming incomplete always reverts to To-Do, whatever its previous tag.
func (ts Tasks) ToggleComplete(index int) (Tasks, bool) {
	if !ts.inRange(index) {
		return ts, false
	}
	out := ts.clone()
	t := &out[index]
	t.Completed = !t.Completed
	if t.Completed {
		t.Tag = model.TagCompleted
	} else {
		t.Tag = model.TagToDo
	}
	return out, true
}

// SetTag sets the tag of the task at the storage index and syncs completion
func (ts Tasks) SetTag(index int, tag model.Tag) (Tasks, bool) {
	if !ts.inRange(index) {
		return ts, false
	}
	out := ts.clone()
	out[index].Tag = tag
	out[index].Completed = tag == model.TagCompleted
	return out, true
}

// Delete removes the task at the storage index
func (ts Tasks) Delete(index int) (Tasks, bool) {
	if !ts.inRange(index) {
		return ts, false
	}
	out := make(Tasks, 0, len(ts)-1)
	out = append(out, ts[:index]...)
	out = append(out, ts[index+1:]...)
	return out, true
}

// EditText replaces the text of the task with the given id. Tag and
// completion are left alone. An unknown id is a no-op.
func (ts Tasks) EditText(id, text string) (Tasks, bool) {
	i := ts.IndexOf(id)
	if i < 0 {
		return ts, false
	}
	out := ts.clone()
	out[i].Text = text
	return out, true
}

// IndexOf returns the storage index of the task with id, or -1
func (ts Tasks) IndexOf(id string) int {
	for i, t := range ts {
		if t.ID == id {
			return i
		}
	}
	return -1
}
