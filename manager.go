package checklist

import (
	"fmt"
	"slices"
	"time"
)

// Manager owns the ordered task list and its undo/redo history
type Manager struct {
	tasks     []*Task
	history   *History
	listeners []Listener
	now       func() time.Time
}

// Option configures a Manager
type Option func(*Manager)

// WithMaxHistory caps the number of undoable changes (zero = unbounded)
func WithMaxHistory(n int) Option {
	return func(m *Manager) {
		m.history.SetMaxEntries(n)
	}
}

// WithListener registers a listener at construction time
func WithListener(l Listener) Option {
	return func(m *Manager) {
		m.Subscribe(l)
	}
}

// WithClock overrides the time source used for event timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates an empty task list
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		history: NewHistory(0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers a listener for subsequent events
func (m *Manager) Subscribe(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

func (m *Manager) emit(event Event) {
	for _, l := range m.listeners {
		l(event)
	}
}

// Add appends a task to the end of the list
func (m *Manager) Add(task *Task) error {
	if task == nil {
		return ErrNilTask
	}
	if m.indexOf(task.ID()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, task.ID())
	}

	// Before the add the task was absent; undoing removes it again
	m.history.Record(task.Snapshot().absent())
	m.tasks = append(m.tasks, task)

	m.emit(TaskAdded{
		TaskID:      task.ID(),
		Description: task.Description(),
		Index:       len(m.tasks) - 1,
		Time:        m.now(),
	})
	return nil
}

// Complete marks the task at index as completed
func (m *Manager) Complete(index int) error {
	task, err := m.Task(index)
	if err != nil {
		return err
	}
	if task.IsCompleted() {
		return ErrUnchanged
	}

	m.history.Record(task.Snapshot().at(index))
	task.MarkCompleted()

	m.emit(TaskCompleted{
		TaskID:      task.ID(),
		Description: task.Description(),
		Index:       index,
		Time:        m.now(),
	})
	return nil
}

// MarkPending marks the task at index as pending
func (m *Manager) MarkPending(index int) error {
	task, err := m.Task(index)
	if err != nil {
		return err
	}
	if !task.IsCompleted() {
		return ErrUnchanged
	}

	m.history.Record(task.Snapshot().at(index))
	task.MarkPending()

	m.emit(TaskReopened{
		TaskID:      task.ID(),
		Description: task.Description(),
		Index:       index,
		Time:        m.now(),
	})
	return nil
}

// Delete removes the task at index. Later tasks shift down by one.
func (m *Manager) Delete(index int) error {
	task, err := m.Task(index)
	if err != nil {
		return err
	}

	m.history.Record(task.Snapshot().at(index))
	m.tasks = slices.Delete(m.tasks, index, index+1)

	m.emit(TaskDeleted{
		TaskID:      task.ID(),
		Description: task.Description(),
		Index:       index,
		Time:        m.now(),
	})
	return nil
}

// Undo reverts the most recent change and returns the snapshot it applied
func (m *Manager) Undo() (Snapshot, error) {
	s, err := m.history.Undo(m.restore)
	if err != nil {
		return s, err
	}

	m.emit(ChangeUndone{Snapshot: s, Time: m.now()})
	return s, nil
}

// Redo reapplies the most recently undone change
func (m *Manager) Redo() (Snapshot, error) {
	s, err := m.history.Redo(m.restore)
	if err != nil {
		return s, err
	}

	m.emit(ChangeRedone{Snapshot: s, Time: m.now()})
	return s, nil
}

// restore applies s to the task with the same ID and returns the state it
// replaced. Absent snapshots remove the task; present ones overwrite it or,
// when it is missing, reinsert it at its recorded position.
func (m *Manager) restore(s Snapshot) (Snapshot, error) {
	idx := m.indexOf(s.TaskID())

	var previous Snapshot
	if idx >= 0 {
		previous = m.tasks[idx].Snapshot().at(idx)
	} else {
		previous = s.absent()
	}

	switch {
	case !s.Present() && idx >= 0:
		m.tasks = slices.Delete(m.tasks, idx, idx+1)
	case !s.Present():
		// Already gone
	case idx >= 0:
		m.tasks[idx].Restore(s)
	default:
		pos := s.Position()
		if pos < 0 || pos > len(m.tasks) {
			pos = len(m.tasks)
		}
		m.tasks = slices.Insert(m.tasks, pos, s.toTask())
	}

	return previous, nil
}

// Task returns the task at index
func (m *Manager) Task(index int) (*Task, error) {
	if index < 0 || index >= len(m.tasks) {
		return nil, fmt.Errorf("%w: %d (have %d tasks)", ErrInvalidIndex, index, len(m.tasks))
	}
	return m.tasks[index], nil
}

// Get returns the task with the given ID
func (m *Manager) Get(id string) (*Task, error) {
	idx := m.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return m.tasks[idx], nil
}

// Tasks returns the tasks in display order
func (m *Manager) Tasks() []*Task {
	return slices.Clone(m.tasks)
}

// Len returns the number of tasks in the list
func (m *Manager) Len() int { return len(m.tasks) }

// CanUndo reports whether there is a change to undo
func (m *Manager) CanUndo() bool { return m.history.CanUndo() }

// CanRedo reports whether there is an undone change to redo
func (m *Manager) CanRedo() bool { return m.history.CanRedo() }

// UndoCount returns the number of changes that can be undone
func (m *Manager) UndoCount() int { return m.history.UndoCount() }

// RedoCount returns the number of changes that can be redone
func (m *Manager) RedoCount() int { return m.history.RedoCount() }

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.tasks, func(t *Task) bool {
		return t.ID() == id
	})
}
