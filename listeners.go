package checklist

import (
	"log/slog"
)

// Listener receives manager events synchronously
type Listener func(Event)

// LogListener returns a listener that writes each event to logger
func LogListener(logger *slog.Logger) Listener {
	return func(event Event) {
		attrs := []any{slog.Time("at", event.Timestamp())}

		switch e := event.(type) {
		case TaskAdded:
			attrs = append(attrs, taskAttrs(e.TaskID, e.Description, e.Index)...)
		case TaskCompleted:
			attrs = append(attrs, taskAttrs(e.TaskID, e.Description, e.Index)...)
		case TaskReopened:
			attrs = append(attrs, taskAttrs(e.TaskID, e.Description, e.Index)...)
		case TaskDeleted:
			attrs = append(attrs, taskAttrs(e.TaskID, e.Description, e.Index)...)
		case ChangeUndone:
			attrs = append(attrs, snapshotAttrs(e.Snapshot)...)
		case ChangeRedone:
			attrs = append(attrs, snapshotAttrs(e.Snapshot)...)
		}

		logger.Info(event.Type(), attrs...)
	}
}

func taskAttrs(taskID, description string, index int) []any {
	return []any{
		slog.String("task_id", taskID),
		slog.String("description", description),
		slog.Int("index", index),
	}
}

func snapshotAttrs(s Snapshot) []any {
	return []any{
		slog.String("task_id", s.TaskID()),
		slog.String("description", s.Description()),
		slog.Bool("completed", s.Completed()),
		slog.Bool("present", s.Present()),
	}
}
