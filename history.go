package checklist

// RestoreFunc applies a snapshot and returns the snapshot of the state it
// replaced. The returned snapshot is what the opposite trail stores, so that
// redo reapplies exactly what undo overwrote.
type RestoreFunc func(Snapshot) (Snapshot, error)

// History holds the undo and redo trails.
// It is not safe for concurrent use.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot

	// maxEntries caps the undo trail; zero means unbounded
	maxEntries int
}

// NewHistory creates an empty history.
// A maxEntries of zero or less keeps every entry.
func NewHistory(maxEntries int) *History {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &History{maxEntries: maxEntries}
}

// Record pushes a snapshot onto the undo trail.
// Clears the redo trail.
func (h *History) Record(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	h.redoStack = nil
	h.trim()
}

// Undo pops the most recent snapshot, applies it and moves the result to
// the redo trail. When apply is nil or fails, the popped snapshot itself is
// moved so the entry is consumed either way.
func (h *History) Undo(apply RestoreFunc) (Snapshot, error) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}

	s := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	counter, err := swap(s, apply)
	h.redoStack = append(h.redoStack, counter)
	return s, err
}

// Redo pops the most recently undone snapshot, applies it and moves the
// result back to the undo trail without clearing the redo trail.
func (h *History) Redo(apply RestoreFunc) (Snapshot, error) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}

	s := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	counter, err := swap(s, apply)
	h.undoStack = append(h.undoStack, counter)
	h.trim()
	return s, err
}

func swap(s Snapshot, apply RestoreFunc) (Snapshot, error) {
	if apply == nil {
		return s, nil
	}
	counter, err := apply(s)
	if err != nil {
		return s, err
	}
	return counter, nil
}

// PeekUndo returns the next snapshot Undo would apply
func (h *History) PeekUndo() (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// PeekRedo returns the next snapshot Redo would apply
func (h *History) PeekRedo() (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	return h.redoStack[len(h.redoStack)-1], true
}

// CanUndo reports whether the undo trail has entries
func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

// CanRedo reports whether the redo trail has entries
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// UndoCount returns the number of entries on the undo trail
func (h *History) UndoCount() int { return len(h.undoStack) }

// RedoCount returns the number of entries on the redo trail
func (h *History) RedoCount() int { return len(h.redoStack) }

// Clear removes both trails
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MaxEntries returns the undo trail cap, zero when unbounded
func (h *History) MaxEntries() int { return h.maxEntries }

// SetMaxEntries changes the cap. Oldest entries beyond it are dropped.
func (h *History) SetMaxEntries(max int) {
	if max < 0 {
		max = 0
	}
	h.maxEntries = max
	h.trim()
}

func (h *History) trim() {
	if h.maxEntries == 0 || len(h.undoStack) <= h.maxEntries {
		return
	}
	excess := len(h.undoStack) - h.maxEntries
	h.undoStack = append([]Snapshot(nil), h.undoStack[excess:]...)
}
