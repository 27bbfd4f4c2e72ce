package main

import (
	"fmt"
	"strings"

	"github.com/fmizzell/checklist"
)

// listTasks prints the tasks matching filter
func (s *Session) listTasks(filter checklist.Filter) {
	fmt.Fprintln(s.out, "Tasks:")

	for entry := range s.manager.View(filter) {
		line := entry.String()
		if len(entry.Tags) > 0 {
			line += " [" + strings.Join(entry.Tags, ", ") + "]"
		}
		fmt.Fprintln(s.out, line)
	}
}
