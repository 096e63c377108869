package document

import (
	"encoding/json"

	"resumely/internal/model"

	"github.com/google/uuid"
)

// ChangeKind tells subscribers what class of mutation completed. Content
// changes are checkpointed for undo and scheduled for auto-save; settings
// changes are scheduled for auto-save only; restores (undo/redo) trigger
// neither, just a re-render.
type ChangeKind int

const (
	ChangeContent ChangeKind = iota
	ChangeSettings
	ChangeRestore
)

// Store holds the canonical in-memory resume document. All mutation flows
// through its operation set; reads return deep copies so callers can never
// alias live state. Not safe for concurrent use: the editor session owns the
// store and serializes access.
type Store struct {
	doc  *model.Document
	subs []func(ChangeKind)
}

// NewStore creates a store around doc, or around the schema default when doc
// is nil. The store takes ownership of doc.
func NewStore(doc *model.Document) *Store {
	if doc == nil {
		doc = model.DefaultDocument()
	}
	return &Store{doc: doc}
}

// Subscribe registers a change listener. Every mutating operation fires each
// listener exactly once, after the mutation completed.
func (s *Store) Subscribe(fn func(ChangeKind)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(kind ChangeKind) {
	for _, fn := range s.subs {
		fn(kind)
	}
}

// Document returns a deep copy of the live document.
func (s *Store) Document() *model.Document {
	return s.doc.Clone()
}

// SectionEntries returns a copy of the named repeatable section, or nil for
// an unknown section name.
func (s *Store) SectionEntries(sec model.Section) []model.Entry {
	src := s.doc.Entries(sec)
	if src == nil {
		return nil
	}
	out := make([]model.Entry, len(*src))
	for i, e := range *src {
		out[i] = e.Clone()
	}
	return out
}

// Personal returns a copy of the personal section.
func (s *Store) Personal() model.Personal {
	return s.doc.Personal
}

// Settings returns a copy of the presentation settings.
func (s *Store) Settings() model.Settings {
	return s.doc.Settings.Clone()
}

// ReplaceSection swaps out a repeatable section wholesale. Unknown sections
// are absorbed as no-ops.
func (s *Store) ReplaceSection(sec model.Section, entries []model.Entry) {
	dst := s.doc.Entries(sec)
	if dst == nil {
		return
	}
	cp := make([]model.Entry, len(entries))
	for i, e := range entries {
		cp[i] = e.Clone()
	}
	*dst = cp
	s.notify(ChangeContent)
}

// ReplacePersonal swaps out the personal section wholesale.
func (s *Store) ReplacePersonal(p model.Personal) {
	s.doc.Personal = p
	s.notify(ChangeContent)
}

// UpdateField sets one field of the personal singleton through a JSON patch
// (field names are the JSON keys). Any other section name leaves the document
// untouched but still notifies, matching the contract that every mutating
// call fires a change.
func (s *Store) UpdateField(sec model.Section, field string, value interface{}) {
	if sec == model.SectionPersonal {
		applyPatch(&s.doc.Personal, map[string]interface{}{field: value})
	}
	s.notify(ChangeContent)
}

// AddEntry appends an entry to the end of a section's sequence, assigning a
// fresh id. The id is stable for the life of the entry and never reused.
func (s *Store) AddEntry(sec model.Section, e model.Entry) string {
	dst := s.doc.Entries(sec)
	if dst == nil {
		return ""
	}
	e = e.Clone()
	e.ID = uuid.NewString()
	*dst = append(*dst, e)
	s.notify(ChangeContent)
	return e.ID
}

// UpdateEntry shallow-merges patch (JSON keys) into the entry matching id.
// A miss is a no-op: the caller's view already lost the entry, raising would
// only add noise.
func (s *Store) UpdateEntry(sec model.Section, id string, patch map[string]interface{}) {
	dst := s.doc.Entries(sec)
	if dst == nil {
		return
	}
	for i := range *dst {
		if (*dst)[i].ID != id {
			continue
		}
		applyPatch(&(*dst)[i], patch)
		(*dst)[i].ID = id // identity survives any patch
		s.notify(ChangeContent)
		return
	}
}

// RemoveEntry filters out the entry matching id.
func (s *Store) RemoveEntry(sec model.Section, id string) {
	dst := s.doc.Entries(sec)
	if dst == nil {
		return
	}
	out := (*dst)[:0]
	for _, e := range *dst {
		if e.ID != id {
			out = append(out, e)
		}
	}
	*dst = out
	s.notify(ChangeContent)
}

// ReorderEntries moves the entry at from to position to. Out-of-range indices
// are absorbed as a no-op without notification, since nothing changed.
func (s *Store) ReorderEntries(sec model.Section, from, to int) {
	dst := s.doc.Entries(sec)
	if dst == nil {
		return
	}
	n := len(*dst)
	if from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	moved := (*dst)[from]
	rest := append((*dst)[:from:from], (*dst)[from+1:]...)
	out := make([]model.Entry, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	*dst = out
	s.notify(ChangeContent)
}

// UpdateSettings shallow-merges patch into the presentation settings. This
// deliberately does not create an undo checkpoint: slider drags and color
// tweaks arrive continuously and would flood the history with near-duplicate
// states.
func (s *Store) UpdateSettings(patch map[string]interface{}) {
	applyPatch(&s.doc.Settings, patch)
	s.notify(ChangeSettings)
}

// Replace swaps the whole live document, as a single content change. Used by
// import and reset.
func (s *Store) Replace(doc *model.Document) {
	s.doc = doc.Clone()
	s.notify(ChangeContent)
}

// restore swaps the live document without creating a new checkpoint. Only the
// history engine calls this.
func (s *Store) restore(doc *model.Document) {
	s.doc = doc.Clone()
	s.notify(ChangeRestore)
}

// applyPatch shallow-merges a JSON-keyed patch into target. Going through the
// JSON form keeps the merge semantics identical to the persisted wire shape:
// unknown keys are dropped, present keys overwrite.
func applyPatch(target interface{}, patch map[string]interface{}) {
	base, err := json.Marshal(target)
	if err != nil {
		return
	}
	m := map[string]interface{}{}
	if err := json.Unmarshal(base, &m); err != nil {
		return
	}
	for k, v := range patch {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return
	}
	_ = json.Unmarshal(merged, target)
}
