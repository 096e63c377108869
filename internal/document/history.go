package document

import "resumely/internal/model"

// DefaultHistoryLimit bounds the undo stack. Older snapshots are evicted.
const DefaultHistoryLimit = 50

// History is a bounded undo/redo stack of full-document snapshots over a
// Store. It subscribes to the store and checkpoints after every content
// mutation; settings changes and restores are excluded. Distinct from the
// persisted named-snapshot history (persist.SnapshotList).
type History struct {
	store  *Store
	snaps  []*model.Document
	cursor int
	limit  int
}

// NewHistory wraps store with an undo/redo stack and records the baseline
// checkpoint undo can never go below.
func NewHistory(store *Store) *History {
	h := &History{store: store, cursor: -1, limit: DefaultHistoryLimit}
	store.Subscribe(func(kind ChangeKind) {
		if kind == ChangeContent {
			h.Checkpoint()
		}
	})
	h.Checkpoint()
	return h
}

// Checkpoint snapshots the current document: the redo branch past the cursor
// is discarded, the snapshot appended, and the oldest snapshot evicted once
// the stack exceeds its bound.
func (h *History) Checkpoint() {
	if h.cursor < len(h.snaps)-1 {
		h.snaps = h.snaps[:h.cursor+1]
	}
	h.snaps = append(h.snaps, h.store.Document())
	if len(h.snaps) > h.limit {
		h.snaps = h.snaps[1:]
	}
	h.cursor = len(h.snaps) - 1
}

// Undo steps back one checkpoint and restores it into the store. Returns
// false without moving the cursor when already at the baseline.
func (h *History) Undo() bool {
	if h.cursor <= 0 {
		return false
	}
	h.cursor--
	h.store.restore(h.snaps[h.cursor])
	return true
}

// Redo steps forward one checkpoint. Returns false when there is no redo
// branch.
func (h *History) Redo() bool {
	if h.cursor >= len(h.snaps)-1 {
		return false
	}
	h.cursor++
	h.store.restore(h.snaps[h.cursor])
	return true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snaps)-1 }

// Len reports the number of retained checkpoints.
func (h *History) Len() int { return len(h.snaps) }

// Reset drops every checkpoint and records a fresh baseline from the current
// document. Called when the document is reset wholesale.
func (h *History) Reset() {
	h.snaps = nil
	h.cursor = -1
	h.Checkpoint()
}
