package persist

import (
	"encoding/json"
	"strings"
	"time"

	"resumely/internal/model"

	"github.com/google/uuid"
)

// MaxSnapshotEntries bounds the named snapshot history.
const MaxSnapshotEntries = 10

// SnapshotEntry is one user-initiated, durably persisted document copy.
// Distinct from undo/redo checkpoints: these are named, bounded at ten and
// survive restarts.
type SnapshotEntry struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Timestamp  time.Time       `json:"timestamp"`
	Template   string          `json:"template"`
	ResumeData *model.Document `json:"resumeData"`
}

// SnapshotList manages the persisted history list, most-recent-first.
type SnapshotList struct {
	storage Storage
	now     func() time.Time
}

func NewSnapshotList(storage Storage) *SnapshotList {
	return &SnapshotList{storage: storage, now: time.Now}
}

// List returns the stored entries, newest first. A missing or corrupt list
// reads as empty.
func (l *SnapshotList) List() []SnapshotEntry {
	raw, err := l.storage.Read(HistoryKey)
	if err != nil {
		return nil
	}
	var entries []SnapshotEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func (l *SnapshotList) write(entries []SnapshotEntry) bool {
	raw, err := json.Marshal(entries)
	if err != nil {
		return false
	}
	return l.storage.Write(HistoryKey, raw) == nil
}

// Save prepends a snapshot of doc. An empty title is derived from the
// personal name, falling back to "Untitled Resume". The list is truncated to
// its bound. Returns the new entry's id and whether the write stuck.
func (l *SnapshotList) Save(doc *model.Document, title string) (string, bool) {
	if title == "" {
		title = snapshotTitle(doc.Personal)
	}
	entry := SnapshotEntry{
		ID:         uuid.NewString(),
		Title:      title,
		Timestamp:  l.now(),
		Template:   doc.Settings.Template,
		ResumeData: doc.Clone(),
	}
	entries := append([]SnapshotEntry{entry}, l.List()...)
	if len(entries) > MaxSnapshotEntries {
		entries = entries[:MaxSnapshotEntries]
	}
	return entry.ID, l.write(entries)
}

// Load returns a copy of the document stored under id, or nil.
func (l *SnapshotList) Load(id string) *model.Document {
	for _, e := range l.List() {
		if e.ID == id && e.ResumeData != nil {
			return e.ResumeData.Clone()
		}
	}
	return nil
}

// Delete removes one entry by id.
func (l *SnapshotList) Delete(id string) {
	entries := l.List()
	out := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	l.write(out)
}

// Clear removes every entry.
func (l *SnapshotList) Clear() {
	l.write([]SnapshotEntry{})
}

func snapshotTitle(p model.Personal) string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last + "'s Resume"
	case first != "":
		return first
	case last != "":
		return last
	}
	return "Untitled Resume"
}
