package checklist

import "errors"

var (
	// ErrInvalidIndex is returned when an index falls outside the task list
	ErrInvalidIndex = errors.New("invalid task index")

	// ErrUnchanged is returned when an operation would not change the task
	ErrUnchanged = errors.New("task already in requested state")

	// ErrNothingToUndo is returned by Undo when the undo trail is empty
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Redo when the redo trail is empty
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrTaskNotFound is returned by Manager.Get when no listed task has the ID
	ErrTaskNotFound = errors.New("task not found")

	ErrEmptyDescription = errors.New("task description is required")
	ErrNilTask          = errors.New("task is nil")
	ErrDuplicateTask    = errors.New("task already in list")
	ErrUnknownFilter    = errors.New("unknown filter")
)
