package store

import "github.com/dori/actionary/internal/model"

// Row is a task projected for display. Index is its position in storage
// order and is the only valid address for toggle/tag/delete.
type Row struct {
	Index int
	Task  model.Task
}

// Display returns the tasks with To-Do entries floated to the front. The
// partition is stable: relative order within each group is preserved.
func Display(ts Tasks) []Row {
	rows := make([]Row, 0, len(ts))
	for i, t := range ts {
		if t.IsTodo() {
			rows = append(rows, Row{Index: i, Task: t})
		}
	}
	for i, t := range ts {
		if !t.IsTodo() {
			rows = append(rows, Row{Index: i, Task: t})
		}
	}
	return rows
}
