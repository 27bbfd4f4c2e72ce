package checklist

import "time"

// Event is emitted by the Manager after every successful change
type Event interface {
	Type() string
	Timestamp() time.Time
}

// TaskAdded event
type TaskAdded struct {
	TaskID      string
	Description string
	Index       int
	Time        time.Time
}

func (e TaskAdded) Type() string         { return "task_added" }
func (e TaskAdded) Timestamp() time.Time { return e.Time }

// TaskCompleted event
type TaskCompleted struct {
	TaskID      string
	Description string
	Index       int
	Time        time.Time
}

func (e TaskCompleted) Type() string         { return "task_completed" }
func (e TaskCompleted) Timestamp() time.Time { return e.Time }

// TaskReopened event, emitted when a completed task is marked pending
type TaskReopened struct {
	TaskID      string
	Description string
	Index       int
	Time        time.Time
}

func (e TaskReopened) Type() string         { return "task_reopened" }
func (e TaskReopened) Timestamp() time.Time { return e.Time }

// TaskDeleted event
type TaskDeleted struct {
	TaskID      string
	Description string
	Index       int
	Time        time.Time
}

func (e TaskDeleted) Type() string         { return "task_deleted" }
func (e TaskDeleted) Timestamp() time.Time { return e.Time }

// ChangeUndone event carries the snapshot that was applied
type ChangeUndone struct {
	Snapshot Snapshot
	Time     time.Time
}

func (e ChangeUndone) Type() string         { return "change_undone" }
func (e ChangeUndone) Timestamp() time.Time { return e.Time }

// ChangeRedone event carries the snapshot that was applied
type ChangeRedone struct {
	Snapshot Snapshot
	Time     time.Time
}

func (e ChangeRedone) Type() string         { return "change_redone" }
func (e ChangeRedone) Timestamp() time.Time { return e.Time }
