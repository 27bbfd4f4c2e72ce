package checklist

import (
	"fmt"
	"iter"
	"strings"
)

// Filter selects which tasks View yields
type Filter int

const (
	ShowAll Filter = iota
	ShowCompleted
	ShowPending
)

func (f Filter) String() string {
	switch f {
	case ShowAll:
		return "Show all"
	case ShowCompleted:
		return "Show completed"
	case ShowPending:
		return "Show pending"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter accepts "all", "completed", "pending" or the menu labels
// such as "Show all", case-insensitively
func ParseFilter(s string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "show ")

	switch name {
	case "all":
		return ShowAll, nil
	case "completed":
		return ShowCompleted, nil
	case "pending":
		return ShowPending, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

func (f Filter) matches(t *Task) bool {
	switch f {
	case ShowAll:
		return true
	case ShowCompleted:
		return t.IsCompleted()
	case ShowPending:
		return !t.IsCompleted()
	}
	return false
}

// Entry is one row of a task listing
type Entry struct {
	Index       int // 1-based position in the full list
	TaskID      string
	Description string
	Completed   bool
	DueDate     string
	Tags        []string
}

// Line renders the entry without its index
func (e Entry) Line() string {
	return formatLine(e.Description, e.Completed, e.DueDate)
}

// String renders "<index>. <description> - <status>[, Due: <date>]"
func (e Entry) String() string {
	return fmt.Sprintf("%d. %s", e.Index, e.Line())
}

// View returns the tasks matching filter in list order.
// The sequence reads the list lazily and can be ranged over repeatedly.
func (m *Manager) View(filter Filter) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, t := range m.tasks {
			if !filter.matches(t) {
				continue
			}
			entry := Entry{
				Index:       i + 1,
				TaskID:      t.ID(),
				Description: t.Description(),
				Completed:   t.IsCompleted(),
				DueDate:     t.DueDate(),
				Tags:        t.Tags(),
			}
			if !yield(entry) {
				return
			}
		}
	}
}
