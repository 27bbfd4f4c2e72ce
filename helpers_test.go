package checklist

import (
	"iter"
	"testing"
)

// Test utilities - shared helpers for tests

func mustTask(t *testing.T, description string, opts TaskOptions) *Task {
	t.Helper()
	task, err := NewTask(description, opts)
	if err != nil {
		t.Fatalf("NewTask(%q): %v", description, err)
	}
	return task
}

// lines collects entry lines without their index prefix
func lines(seq iter.Seq[Entry]) []string {
	var out []string
	for e := range seq {
		out = append(out, e.Line())
	}
	return out
}

func descriptions(m *Manager) []string {
	var out []string
	for _, task := range m.Tasks() {
		out = append(out, task.Description())
	}
	return out
}

// recorder collects emitted events
type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []string {
	var out []string
	for _, e := range r.events {
		out = append(out, e.Type())
	}
	return out
}
