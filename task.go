package checklist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// TaskOptions holds the optional fields of a new task
type TaskOptions struct {
	DueDate string
	Tags    []string
}

// Task represents a single to-do item
type Task struct {
	id          string
	description string
	completed   bool
	dueDate     string
	tags        []string
}

// NewTask creates a pending task with a fresh ID
func NewTask(description string, opts TaskOptions) (*Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	return &Task{
		id:          generateTaskID(),
		description: description,
		dueDate:     strings.TrimSpace(opts.DueDate),
		tags:        slices.Clone(opts.Tags),
	}, nil
}

func generateTaskID() string {
	return "T-" + uuid.New().String()
}

// ID returns the task's stable identifier
func (t *Task) ID() string { return t.id }

// Description returns the task's text
func (t *Task) Description() string { return t.description }

// DueDate returns the due date, or "" when none was set
func (t *Task) DueDate() string { return t.dueDate }

// IsCompleted reports whether the task is marked as completed
func (t *Task) IsCompleted() bool { return t.completed }

// Tags returns a copy of the task's tags
func (t *Task) Tags() []string { return slices.Clone(t.tags) }

// MarkCompleted sets the task as completed. No-op if it already is.
func (t *Task) MarkCompleted() {
	if !t.completed {
		t.completed = true
	}
}

// MarkPending sets the task back to pending. No-op if it already is.
func (t *Task) MarkPending() {
	if t.completed {
		t.completed = false
	}
}

// Snapshot captures the task's current state
func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		taskID:      t.id,
		description: t.description,
		completed:   t.completed,
		dueDate:     t.dueDate,
		tags:        slices.Clone(t.tags),
		present:     true,
		position:    -1,
	}
}

// Restore overwrites the task's fields from a snapshot.
// The caller is responsible for passing a snapshot of this task.
func (t *Task) Restore(s Snapshot) {
	t.description = s.description
	t.completed = s.completed
	t.dueDate = s.dueDate
	t.tags = slices.Clone(s.tags)
}

// String renders "<description> - <Completed|Pending>[, Due: <date>]"
func (t *Task) String() string {
	return formatLine(t.description, t.completed, t.dueDate)
}

func formatLine(description string, completed bool, dueDate string) string {
	status := "Pending"
	if completed {
		status = "Completed"
	}

	line := fmt.Sprintf("%s - %s", description, status)
	if dueDate != "" {
		line += ", Due: " + dueDate
	}
	return line
}

// Snapshot is an immutable capture of a task at a point in time.
// A snapshot that is not present records that the task was absent from
// the list, which is how adds and deletes are undone.
type Snapshot struct {
	taskID      string
	description string
	completed   bool
	dueDate     string
	tags        []string
	present     bool
	position    int
}

// TaskID returns the ID of the captured task
func (s Snapshot) TaskID() string { return s.taskID }

// Description returns the captured description
func (s Snapshot) Description() string { return s.description }

// Completed returns the captured completion flag
func (s Snapshot) Completed() bool { return s.completed }

// DueDate returns the captured due date
func (s Snapshot) DueDate() string { return s.dueDate }

// Tags returns a copy of the captured tags
func (s Snapshot) Tags() []string { return slices.Clone(s.tags) }

// Present reports whether the task was in the list when captured
func (s Snapshot) Present() bool { return s.present }

// Position is the task's 0-based index when captured, or -1 if unknown
func (s Snapshot) Position() int { return s.position }

func (s Snapshot) at(position int) Snapshot {
	s.position = position
	return s
}

func (s Snapshot) absent() Snapshot {
	s.present = false
	s.position = -1
	return s
}

// toTask rebuilds a task from the snapshot, keeping its ID
func (s Snapshot) toTask() *Task {
	return &Task{
		id:          s.taskID,
		description: s.description,
		completed:   s.completed,
		dueDate:     s.dueDate,
		tags:        slices.Clone(s.tags),
	}
}
