// Package editor holds the inline edit state: a selectable text buffer and
// the Viewing/Editing session that decides when an edit is committed.
package editor

// State is the phase of an edit session
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// Session tracks which task, if any, is being edited. Every exit from
// Editing goes through Commit; there is no discard path.
type Session struct {
	state  State
	taskID string
	Buffer Buffer
}

// State returns the current phase
func (s Session) State() State {
	return s.state
}

// Editing reports whether a task is being edited
func (s Session) Editing() bool {
	return s.state == Editing
}

// TaskID returns the id of the task being edited, or ""
func (s Session) TaskID() string {
	return s.taskID
}

// Begin enters Editing for the task, seeding the buffer with its raw text
func (s Session) Begin(taskID, text string) Session {
	return Session{
		state:  Editing,
		taskID: taskID,
		Buffer: NewBuffer(text),
	}
}

// Commit leaves Editing and hands back the task id and the buffer text to
// apply. ok is false when no edit was in progress.
func (s Session) Commit() (next Session, taskID, text string, ok bool) {
	if s.state != Editing {
		return s, "", "", false
	}
	return Session{state: Viewing}, s.taskID, s.Buffer.String(), true
}

// Committer receives committed edits. store.Store satisfies it.
type Committer interface {
	EditText(id, text string) bool
}

// CommitTo commits the session into c. It reports whether a task was
// updated; a stale id is dropped silently by c.
func (s Session) CommitTo(c Committer) (Session, bool) {
	next, id, text, ok := s.Commit()
	if !ok {
		return next, false
	}
	return next, c.EditText(id, text)
}
