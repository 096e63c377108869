package persist

import (
	"encoding/json"
	"fmt"
	"time"

	"resumely/internal/document"
	"resumely/internal/model"
)

const (
	// DataKey is the well-known storage key of the live document.
	DataKey = "resumely_data"
	// HistoryKey is the well-known storage key of the named snapshot list.
	HistoryKey = "resumely_history"

	// AutoSaveQuiet is the debounce window: persistence happens once no
	// further changes arrive for this long.
	AutoSaveQuiet = 2 * time.Second

	// ExportFilename is the suggested name for exported backups.
	ExportFilename = "resume_backup.json"
)

// Gateway serializes the live document to durable storage: debounced after
// every change, immediately on explicit save, and reconciled against the
// schema default on load. Persistence is best-effort; failures report false
// and the editor keeps running on in-memory state.
type Gateway struct {
	store      *document.Store
	storage    Storage
	sched      Scheduler
	onAutoSave func(ok bool)
}

// NewGateway wires a gateway to store and storage. A nil scheduler gets the
// wall-clock TimerScheduler. The gateway subscribes to the store: content and
// settings changes (re)arm the debounce window; restores do not.
func NewGateway(store *document.Store, storage Storage, sched Scheduler) *Gateway {
	if sched == nil {
		sched = NewTimerScheduler()
	}
	g := &Gateway{store: store, storage: storage, sched: sched}
	store.Subscribe(func(kind document.ChangeKind) {
		if kind == document.ChangeRestore {
			return
		}
		g.sched.Schedule(AutoSaveQuiet, g.autoSave)
	})
	return g
}

// OnAutoSave registers a callback observing debounced save outcomes, so the
// UI can show an "unsaved" notice on failure.
func (g *Gateway) OnAutoSave(fn func(ok bool)) { g.onAutoSave = fn }

func (g *Gateway) autoSave() {
	ok := g.Save()
	if g.onAutoSave != nil {
		g.onAutoSave(ok)
	}
}

// Save writes the live document now, bypassing the debounce. Storage
// failures are swallowed and reported as false.
func (g *Gateway) Save() bool {
	raw, err := json.Marshal(g.store.Document())
	if err != nil {
		return false
	}
	return g.storage.Write(DataKey, raw) == nil
}

// Flush forces any pending debounced save to run immediately.
func (g *Gateway) Flush() { g.sched.Flush() }

// Close cancels any pending save without running it.
func (g *Gateway) Close() { g.sched.Stop() }

// Load reads the persisted document, merged against the schema default.
// Returns nil when storage has no document or holds one that fails to parse;
// the caller falls back to a fresh default.
func (g *Gateway) Load() *model.Document {
	return LoadDocument(g.storage)
}

// LoadDocument reads the persisted document from storage, merged against the
// schema default. Nil when absent or corrupt.
func LoadDocument(storage Storage) *model.Document {
	raw, err := storage.Read(DataKey)
	if err != nil {
		return nil
	}
	var loaded map[string]interface{}
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return nil
	}
	return decodeMerged(loaded)
}

// Import parses raw as a document (or subset), validates it against the
// schema, merges it with defaults and atomically replaces the live document
// with a single change notification. On any failure the live document is
// untouched.
func (g *Gateway) Import(raw []byte) error {
	var loaded map[string]interface{}
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("import: not a JSON document: %w", err)
	}
	if err := model.ValidateBytes(raw); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	doc := decodeMerged(loaded)
	if doc == nil {
		return fmt.Errorf("import: document does not match the resume shape")
	}
	g.store.Replace(doc)
	return nil
}

// Export serializes the live document verbatim, pretty-printed, for a
// downloadable backup. No merge is applied.
func (g *Gateway) Export() ([]byte, error) {
	return json.MarshalIndent(g.store.Document(), "", "  ")
}

// decodeMerged merges a raw map with the schema default and decodes it into
// the typed document. Keys outside the schema are dropped here: the merge
// boundary is the single place shape is reconciled.
func decodeMerged(loaded map[string]interface{}) *model.Document {
	defRaw, err := json.Marshal(model.DefaultDocument())
	if err != nil {
		return nil
	}
	var defaults map[string]interface{}
	if err := json.Unmarshal(defRaw, &defaults); err != nil {
		return nil
	}
	merged := MergeWithDefaults(loaded, defaults)
	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		return nil
	}
	doc := &model.Document{}
	if err := json.Unmarshal(mergedRaw, doc); err != nil {
		return nil
	}
	return doc
}
