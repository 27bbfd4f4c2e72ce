package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fmizzell/checklist"
)

// readIndex prompts for a 1-based task index.
// ok is false when input ended; valid is false when the answer is not a number.
func (s *Session) readIndex(ctx context.Context) (index int, valid bool, ok bool) {
	line, ok := s.prompt(ctx, "Enter task index: ")
	if !ok {
		return 0, false, false
	}

	index, err := parseIndex(line)
	if err != nil {
		s.logger.Debug("invalid_index", "input", line)
		fmt.Fprintln(s.out, "Invalid task index.")
		return 0, false, true
	}
	return index, true, true
}

// changeStatus handles the complete and pending menu entries
func (s *Session) changeStatus(ctx context.Context, change func(int) error, done, unchanged string) bool {
	index, valid, ok := s.readIndex(ctx)
	if !valid {
		return ok
	}

	switch err := change(index); {
	case err == nil:
		fmt.Fprintln(s.out, done)
	case errors.Is(err, checklist.ErrUnchanged):
		fmt.Fprintln(s.out, unchanged)
	default:
		s.report(err)
	}
	return true
}

func (s *Session) deleteTask(ctx context.Context) bool {
	index, valid, ok := s.readIndex(ctx)
	if !valid {
		return ok
	}

	if err := s.manager.Delete(index); err != nil {
		s.report(err)
		return true
	}

	fmt.Fprintln(s.out, "Task deleted successfully!")
	return true
}

func (s *Session) undo() {
	if _, err := s.manager.Undo(); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Undo successful.")
}

func (s *Session) redo() {
	if _, err := s.manager.Redo(); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Redo successful.")
}

// report renders a core error as an informational line
func (s *Session) report(err error) {
	s.logger.Debug("command_failed", "error", err)

	switch {
	case errors.Is(err, checklist.ErrInvalidIndex):
		fmt.Fprintln(s.out, "Invalid task index.")
	case errors.Is(err, checklist.ErrNothingToUndo):
		fmt.Fprintln(s.out, "Nothing to undo.")
	case errors.Is(err, checklist.ErrNothingToRedo):
		fmt.Fprintln(s.out, "Nothing to redo.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
