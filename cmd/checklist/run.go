package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fmizzell/checklist"
)

const menu = `What would you like to do?
1. Add a new task
2. Mark a task as completed
3. Mark a task as pending
4. Delete a task
5. View all tasks
6. View completed tasks
7. View pending tasks
8. Undo
9. Redo
10. Exit
`

// Session is the interactive menu loop over a single Manager
type Session struct {
	manager *checklist.Manager
	in      io.Reader
	out     io.Writer
	lines   <-chan inputLine
	readErr error
	cfg     SessionConfig
	logger  *slog.Logger
}

type inputLine struct {
	text string
	err  error
}

// NewSession creates a session reading commands from in and writing to out
func NewSession(manager *checklist.Manager, in io.Reader, out io.Writer, cfg SessionConfig) *Session {
	return &Session{
		manager: manager,
		in:      in,
		out:     out,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// readLines feeds input lines of any length to a channel so reads can be
// abandoned when ctx is cancelled. A read error other than EOF is sent as
// the last item. The channel closes on every exit path.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)

		send := func(line inputLine) bool {
			select {
			case <-ctx.Done():
				return false
			case lines <- line:
				return true
			}
		}

		reader := bufio.NewReader(in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
				if !send(inputLine{text: text}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(inputLine{err: fmt.Errorf("failed to read input: %w", err)})
				}
				return
			}
		}
	}()
	return lines
}

// readLine returns the next input line, or false at end of input, on a
// read error or when ctx is done
func (s *Session) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		if !ok {
			return "", false
		}
		if line.err != nil {
			s.readErr = line.err
			return "", false
		}
		return line.text, true
	}
}

// prompt prints label and reads the answer
func (s *Session) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine(ctx)
}

// Run processes commands until Exit, end of input or cancellation. It
// returns an error only when reading the input fails.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = readLines(ctx, s.in)

	for {
		fmt.Fprint(s.out, menu)

		input, ok := s.readLine(ctx)
		if !ok {
			return s.readErr
		}

		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			s.logger.Debug("invalid_choice", "input", input)
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		switch choice {
		case 1:
			ok = s.addTask(ctx)
		case 2:
			ok = s.changeStatus(ctx, s.manager.Complete, "Task marked as completed!", "Task is already completed.")
		case 3:
			ok = s.changeStatus(ctx, s.manager.MarkPending, "Task marked as pending!", "Task is already pending.")
		case 4:
			ok = s.deleteTask(ctx)
		case 5:
			s.listTasks(checklist.ShowAll)
		case 6:
			s.listTasks(checklist.ShowCompleted)
		case 7:
			s.listTasks(checklist.ShowPending)
		case 8:
			s.undo()
		case 9:
			s.redo()
		case 10:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			s.logger.Debug("invalid_choice", "input", input)
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if !ok {
			return s.readErr
		}
	}
}
