package model

import (
	"strings"
)

// Tag is the status label of a task. It drives both the display color and
// the completion flag.
type Tag string

const (
	TagToDo       Tag = "To-Do"
	TagInProgress Tag = "In Progress"
	TagBlocked    Tag = "Blocked"
	TagCompleted  Tag = "Completed"
)

// fallbackColor is used for tags that are not one of the four known labels
const fallbackColor = "#cccccc"

// Tags returns all tags in selector order
func Tags() []Tag {
	return []Tag{TagToDo, TagInProgress, TagBlocked, TagCompleted}
}

// Valid reports whether t is one of the known tags
func (t Tag) Valid() bool {
	switch t {
	case TagToDo, TagInProgress, TagBlocked, TagCompleted:
		return true
	}
	return false
}

// Color returns the hex color associated with the tag
func (t Tag) Color() string {
	switch t {
	case TagToDo:
		return "#007aff"
	case TagInProgress:
		return "#ffb300"
	case TagBlocked:
		return "#ff5252"
	case TagCompleted:
		return "#43a047"
	default:
		return fallbackColor
	}
}

// Next returns the tag following t in selector order, wrapping around
func (t Tag) Next() Tag {
	tags := Tags()
	for i, tag := range tags {
		if tag == t {
			return tags[(i+1)%len(tags)]
		}
	}
	return TagToDo
}

// ParseTag resolves a label or a short alias to a tag
func ParseTag(s string) (Tag, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to-do", "todo", "to do":
		return TagToDo, true
	case "in progress", "in-progress", "progress", "doing", "wip":
		return TagInProgress, true
	case "blocked", "block":
		return TagBlocked, true
	case "completed", "complete", "done":
		return TagCompleted, true
	}
	return "", false
}

// Task represents a single to-do entry. The JSON layout is the persisted
// file format.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Tag       Tag    `json:"tag"`
}

// IsTodo returns true if the task floats to the front of the display
func (t *Task) IsTodo() bool {
	return t.Tag == TagToDo
}

// Consistent reports whether the completion flag agrees with the tag
func (t *Task) Consistent() bool {
	return t.Completed == (t.Tag == TagCompleted)
}
