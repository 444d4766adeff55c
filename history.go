package easel

// DefaultHistoryLimit is the default maximum number of retained snapshots.
const DefaultHistoryLimit = 50

// history is a bounded linear undo stack of committed-surface snapshots.
// The cursor points at the snapshot matching the current committed state.
// Recording after an undo discards the redo branch.
type history struct {
	snapshots []*Pixmap
	cursor    int
	limit     int
}

func newHistory(limit int) *history {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &history{
		snapshots: make([]*Pixmap, 0, limit),
		cursor:    -1,
		limit:     limit,
	}
}

// Record appends a snapshot after the cursor, discarding any redo entries.
// When the stack is full the oldest snapshot is evicted.
func (h *history) Record(pm *Pixmap) {
	// Drop everything after the cursor.
	h.snapshots = h.snapshots[:h.cursor+1]
	h.snapshots = append(h.snapshots, pm.Clone())
	h.cursor++

	if len(h.snapshots) > h.limit {
		// Evict the oldest. Shift in place to keep the backing array.
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots[len(h.snapshots)-1] = nil
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
		h.cursor--
	}
}

// Undo moves the cursor back and returns the snapshot to restore.
// Returns nil if there is nothing to undo.
func (h *history) Undo() *Pixmap {
	if h.cursor <= 0 {
		return nil
	}
	h.cursor--
	return h.snapshots[h.cursor]
}

// Redo moves the cursor forward and returns the snapshot to restore.
// Returns nil if there is nothing to redo.
func (h *history) Redo() *Pixmap {
	if h.cursor >= len(h.snapshots)-1 {
		return nil
	}
	h.cursor++
	return h.snapshots[h.cursor]
}

// CanUndo reports whether an earlier snapshot exists.
func (h *history) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a later snapshot exists.
func (h *history) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Len returns the number of retained snapshots.
func (h *history) Len() int {
	return len(h.snapshots)
}
