package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dori/actionary/internal/model"
)

// ReadAll returns every task in stored order
func (db *DB) ReadAll() ([]model.Task, error) {
	rows, err := db.Query(`
		SELECT id, text, completed, tag
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Text, &completed, &t.Tag); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Completed = completed == 1
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// WriteAll replaces the stored list with tasks in a single transaction
func (db *DB) WriteAll(tasks []model.Task) error {
	now := time.Now()
	return db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
			return fmt.Errorf("failed to clear tasks: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO tasks (id, position, text, completed, tag, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, t := range tasks {
			completed := 0
			if t.Completed {
				completed = 1
			}
			if _, err := stmt.Exec(t.ID, i, t.Text, completed, string(t.Tag), now); err != nil {
				return fmt.Errorf("failed to insert task %s: %w", t.ID, err)
			}
		}
		return nil
	})
}
