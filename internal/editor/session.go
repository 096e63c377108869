// Package editor owns one editing session: the document store, its undo
// history, the persistence gateway and the snapshot list, bundled into an
// explicit context object. Nothing here is global; independent sessions can
// coexist, which is also what makes the package testable without
// reset-between-tests hacks.
package editor

import (
	"resumely/internal/document"
	"resumely/internal/model"
	"resumely/internal/persist"
	"resumely/internal/render"
)

// Options configures a session. Storage defaults to an in-memory store;
// Scheduler defaults to the wall-clock debounce.
type Options struct {
	Storage   persist.Storage
	Scheduler persist.Scheduler
}

// Session bridges UI events to document mutations and re-renders. Operations
// are synchronous and complete before returning; only persistence runs on
// the debounce clock.
type Session struct {
	store     *document.Store
	history   *document.History
	gateway   *persist.Gateway
	snapshots *persist.SnapshotList
	onRender  func(markup string)
}

// NewSession loads the persisted document (merged with schema defaults, or a
// fresh default when storage is empty or corrupt) and wires the session.
func NewSession(opts Options) *Session {
	storage := opts.Storage
	if storage == nil {
		storage = persist.NewMemStorage()
	}

	store := document.NewStore(persist.LoadDocument(storage))
	s := &Session{
		store:     store,
		history:   document.NewHistory(store),
		gateway:   persist.NewGateway(store, storage, opts.Scheduler),
		snapshots: persist.NewSnapshotList(storage),
	}
	store.Subscribe(func(document.ChangeKind) {
		if s.onRender != nil {
			s.onRender(s.Render())
		}
	})
	return s
}

// OnRender registers the hook fed with fresh markup after every visually
// observable mutation.
func (s *Session) OnRender(fn func(markup string)) { s.onRender = fn }

// OnAutoSave registers the hook observing debounced save outcomes.
func (s *Session) OnAutoSave(fn func(ok bool)) { s.gateway.OnAutoSave(fn) }

// Document state -------------------------------------------------------

func (s *Session) Document() *model.Document               { return s.store.Document() }
func (s *Session) Personal() model.Personal                { return s.store.Personal() }
func (s *Session) Settings() model.Settings                { return s.store.Settings() }
func (s *Session) Section(sec model.Section) []model.Entry { return s.store.SectionEntries(sec) }

// Mutations ------------------------------------------------------------

func (s *Session) UpdateField(sec model.Section, field string, value interface{}) {
	s.store.UpdateField(sec, field, value)
}

func (s *Session) ReplaceSection(sec model.Section, entries []model.Entry) {
	s.store.ReplaceSection(sec, entries)
}

func (s *Session) ReplacePersonal(p model.Personal) { s.store.ReplacePersonal(p) }

func (s *Session) AddEntry(sec model.Section, e model.Entry) string {
	return s.store.AddEntry(sec, e)
}

func (s *Session) UpdateEntry(sec model.Section, id string, patch map[string]interface{}) {
	s.store.UpdateEntry(sec, id, patch)
}

func (s *Session) RemoveEntry(sec model.Section, id string) { s.store.RemoveEntry(sec, id) }

func (s *Session) ReorderEntries(sec model.Section, from, to int) {
	s.store.ReorderEntries(sec, from, to)
}

func (s *Session) UpdateSettings(patch map[string]interface{}) { s.store.UpdateSettings(patch) }

// Reset replaces the document wholesale with a fresh default and clears the
// undo/redo stack.
func (s *Session) Reset() {
	s.store.Replace(model.DefaultDocument())
	s.history.Reset()
}

// Undo / redo ----------------------------------------------------------

func (s *Session) Undo() bool    { return s.history.Undo() }
func (s *Session) Redo() bool    { return s.history.Redo() }
func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Rendering ------------------------------------------------------------

// Render produces markup for the current document with its own settings.
func (s *Session) Render() string {
	doc := s.store.Document()
	return render.Render(doc, doc.Settings)
}

// Templates lists the available themes.
func (s *Session) Templates() []render.TemplateInfo { return render.Templates() }

// Persistence ----------------------------------------------------------

// SaveNow persists immediately, bypassing the debounce window.
func (s *Session) SaveNow() bool { return s.gateway.Save() }

// Flush runs any pending debounced save.
func (s *Session) Flush() { s.gateway.Flush() }

// Close cancels pending persistence work.
func (s *Session) Close() { s.gateway.Close() }

// Export serializes the document for a downloadable backup.
func (s *Session) Export() ([]byte, error) { return s.gateway.Export() }

// Import validates and atomically replaces the document. The live document
// is untouched on failure.
func (s *Session) Import(raw []byte) error { return s.gateway.Import(raw) }

// ExportFilename is the suggested name for the downloaded backup file.
func (s *Session) ExportFilename() string { return persist.ExportFilename }

// Named snapshot history ------------------------------------------------

// SaveSnapshot stores a named copy of the current document in the bounded
// history list. Returns the snapshot id.
func (s *Session) SaveSnapshot(title string) (string, bool) {
	return s.snapshots.Save(s.store.Document(), title)
}

func (s *Session) Snapshots() []persist.SnapshotEntry { return s.snapshots.List() }

// LoadSnapshot replaces the live document with the named snapshot, as a
// single undoable content change. Returns false for an unknown id.
func (s *Session) LoadSnapshot(id string) bool {
	doc := s.snapshots.Load(id)
	if doc == nil {
		return false
	}
	s.store.Replace(doc)
	return true
}

func (s *Session) DeleteSnapshot(id string) { s.snapshots.Delete(id) }
func (s *Session) ClearSnapshots()          { s.snapshots.Clear() }

// Quality feedback -----------------------------------------------------

// ATSScore scores the current document for machine readability.
func (s *Session) ATSScore() int { return ATSScore(s.store.Document()) }

// Tips lists improvement suggestions for the current document.
func (s *Session) Tips() []Tip { return Tips(s.store.Document()) }

// SuggestedSkills proposes skills matching the current job title.
func (s *Session) SuggestedSkills() []string {
	return SuggestedSkills(s.store.Document().Personal.Title)
}

// SummaryReadability rates the professional summary's reading ease.
func (s *Session) SummaryReadability() Readability {
	return ReadabilityOf(s.store.Document().Personal.Summary)
}

// WordCount totals the words across the document's prose fields.
func (s *Session) WordCount() int { return WordCount(s.store.Document()) }
