package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fmizzell/checklist"
)

// addTask prompts for a new task and adds it.
// Returns false when input ends mid-prompt.
func (s *Session) addTask(ctx context.Context) bool {
	var description string
	for {
		line, ok := s.prompt(ctx, "Enter task description: ")
		if !ok {
			return false
		}
		if description = strings.TrimSpace(line); description != "" {
			break
		}
		fmt.Fprintln(s.out, "Task description cannot be empty.")
	}

	var opts checklist.TaskOptions

	answer, ok := s.prompt(ctx, "Do you want to add a due date? (y/n): ")
	if !ok {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		if opts.DueDate, ok = s.prompt(ctx, "Enter due date (YYYY-MM-DD): "); !ok {
			return false
		}
	}

	if s.cfg.PromptTags {
		line, ok := s.prompt(ctx, "Enter tags (comma-separated, optional): ")
		if !ok {
			return false
		}
		opts.Tags = splitTags(line)
	}

	task, err := checklist.NewTask(description, opts)
	if err != nil {
		fmt.Fprintf(s.out, "Could not create task: %v\n", err)
		return true
	}

	if err := s.manager.Add(task); err != nil {
		fmt.Fprintf(s.out, "Could not add task: %v\n", err)
		return true
	}

	fmt.Fprintln(s.out, "Task added successfully!")
	return true
}
