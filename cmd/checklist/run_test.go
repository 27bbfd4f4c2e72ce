package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/fmizzell/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds one input line per element to a fresh session
func runScript(t *testing.T, cfg SessionConfig, input ...string) (string, *checklist.Manager) {
	t.Helper()

	m := checklist.NewManager()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(input, "\n") + "\n")

	err := NewSession(m, in, &out, cfg).Run(context.Background())
	require.NoError(t, err)
	return out.String(), m
}

func TestSession_AddCompleteUndo(t *testing.T) {
	out, m := runScript(t, SessionConfig{},
		"1", "Buy milk", "n",
		"1", "Call Alice", "y", "2024-01-01",
		"2", "1",
		"6",
		"8",
		"7",
		"10",
	)

	assert.Equal(t, 2, strings.Count(out, "Task added successfully!"))
	assert.Contains(t, out, "Task marked as completed!")
	assert.Contains(t, out, "Tasks:\n1. Buy milk - Completed\n")
	assert.Contains(t, out, "Undo successful.")
	assert.Contains(t, out, "Tasks:\n1. Buy milk - Pending\n2. Call Alice - Pending, Due: 2024-01-01\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))

	assert.Equal(t, 2, m.Len())
}

func TestSession_InvalidChoice(t *testing.T) {
	out, _ := runScript(t, SessionConfig{}, "abc", "42", "", "10")

	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please try again."))
	assert.Equal(t, 4, strings.Count(out, "What would you like to do?"))
	assert.Contains(t, out, "Exiting...")
}

func TestSession_InvalidIndex(t *testing.T) {
	out, m := runScript(t, SessionConfig{},
		"1", "a", "n",
		"2", "99",
		"3", "0",
		"4", "x",
		"10",
	)

	assert.Equal(t, 3, strings.Count(out, "Invalid task index."))
	assert.NotContains(t, out, "Task deleted successfully!")
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.UndoCount())
}

func TestSession_EmptyHistory(t *testing.T) {
	out, _ := runScript(t, SessionConfig{}, "8", "9", "10")

	assert.Contains(t, out, "Nothing to undo.")
	assert.Contains(t, out, "Nothing to redo.")
}

func TestSession_AlreadyInState(t *testing.T) {
	out, _ := runScript(t, SessionConfig{},
		"1", "a", "n",
		"3", "1",
		"2", "1",
		"2", "1",
		"10",
	)

	assert.Contains(t, out, "Task is already pending.")
	assert.Equal(t, 1, strings.Count(out, "Task marked as completed!"))
	assert.Contains(t, out, "Task is already completed.")
}

func TestSession_DeleteUndoRedo(t *testing.T) {
	out, m := runScript(t, SessionConfig{},
		"1", "a", "n",
		"1", "b", "n",
		"4", "1",
		"5",
		"8",
		"5",
		"9",
		"9",
		"10",
	)

	assert.Contains(t, out, "Task deleted successfully!")
	assert.Contains(t, out, "Tasks:\n1. b - Pending\nWhat")
	assert.Contains(t, out, "Tasks:\n1. a - Pending\n2. b - Pending\n")
	assert.Contains(t, out, "Redo successful.")
	assert.Contains(t, out, "Nothing to redo.")

	require.Equal(t, 1, m.Len())
	task, err := m.Task(0)
	require.NoError(t, err)
	assert.Equal(t, "b", task.Description())
}

func TestSession_EmptyDescriptionReprompts(t *testing.T) {
	out, m := runScript(t, SessionConfig{}, "1", "", "  ", "Real task", "n", "10")

	assert.Equal(t, 2, strings.Count(out, "Task description cannot be empty."))
	assert.Contains(t, out, "Task added successfully!")
	assert.Equal(t, 1, m.Len())
}

func TestSession_PromptTags(t *testing.T) {
	out, m := runScript(t, SessionConfig{PromptTags: true},
		"1", "a", "n", "home, , work",
		"5",
		"10",
	)

	assert.Contains(t, out, "Enter tags (comma-separated, optional): ")
	assert.Contains(t, out, "1. a - Pending [home, work]")

	task, err := m.Task(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "work"}, task.Tags())
}

func TestSession_EndOfInput(t *testing.T) {
	out, m := runScript(t, SessionConfig{}, "1", "a")

	assert.NotContains(t, out, "Exiting...")
	assert.NotContains(t, out, "Task added successfully!")
	assert.Equal(t, 0, m.Len())
}

func TestSession_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	s := NewSession(checklist.NewManager(), r, &out, SessionConfig{})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after cancel")
	}
	assert.Contains(t, out.String(), "What would you like to do?")
}

func TestSession_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	out, m := runScript(t, SessionConfig{},
		"1", "keep me", "n",
		"1", long, "n",
		"5",
		"10",
	)

	assert.Equal(t, 2, strings.Count(out, "Task added successfully!"))
	assert.Contains(t, out, "Tasks:\n1. keep me - Pending\n2. "+long+" - Pending\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))

	require.Equal(t, 2, m.Len())
	task, err := m.Task(1)
	require.NoError(t, err)
	assert.Equal(t, long, task.Description())
}

func TestSession_CRLFInput(t *testing.T) {
	out, m := runScript(t, SessionConfig{}, "1\r", "Buy milk\r", "n\r", "5\r", "10\r")

	assert.Contains(t, out, "1. Buy milk - Pending\n")
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, 1, m.Len())
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1\nBuy milk\nn\n10")

	require.NoError(t, NewSession(checklist.NewManager(), in, &out, SessionConfig{}).Run(context.Background()))
	assert.Contains(t, out.String(), "Task added successfully!")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
}

func TestSession_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	in := io.MultiReader(strings.NewReader("1\nBuy milk\nn\n"), iotest.ErrReader(boom))

	var out bytes.Buffer
	m := checklist.NewManager()
	err := NewSession(m, in, &out, SessionConfig{}).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to read input")
	assert.Contains(t, out.String(), "Task added successfully!")
	assert.Equal(t, 1, m.Len())
}

// endless yields "5\n" forever, like a terminal that never stops typing
type endless struct{ n int }

func (e *endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = "5\n"[e.n%2]
		e.n++
	}
	return len(p), nil
}

func TestReadLines_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, &endless{})

	line := <-lines
	assert.Equal(t, "5", line.text)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-lines:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("reader kept sending after cancel")
		}
	}
}

func TestSession_ExitStopsReader(t *testing.T) {
	var out bytes.Buffer
	in := io.MultiReader(strings.NewReader("10\n"), &endless{})

	done := make(chan error, 1)
	go func() {
		done <- NewSession(checklist.NewManager(), in, &out, SessionConfig{}).Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after exit")
	}
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
}
