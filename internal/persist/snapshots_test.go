package persist

import (
	"fmt"
	"testing"
	"time"

	"resumely/internal/model"
)

func newTestSnapshotList() (*SnapshotList, *MemStorage) {
	storage := NewMemStorage()
	l := NewSnapshotList(storage)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	l.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
	return l, storage
}

func namedDoc(first, last string) *model.Document {
	doc := model.DefaultDocument()
	doc.Personal.FirstName = first
	doc.Personal.LastName = last
	return doc
}

func TestSnapshotSaveAndLoad(t *testing.T) {
	l, _ := newTestSnapshotList()
	doc := namedDoc("Ada", "Lovelace")
	doc.Settings.Template = "classic"

	id, ok := l.Save(doc, "before rewrite")
	if !ok || id == "" {
		t.Fatalf("save: id=%q ok=%v", id, ok)
	}

	entries := l.List()
	if len(entries) != 1 {
		t.Fatalf("list length = %d", len(entries))
	}
	e := entries[0]
	if e.Title != "before rewrite" || e.Template != "classic" {
		t.Errorf("entry = %+v", e)
	}

	got := l.Load(id)
	if got == nil || got.Personal.FirstName != "Ada" {
		t.Fatalf("loaded = %+v", got)
	}

	// loading returns a copy
	got.Personal.FirstName = "Mutated"
	if again := l.Load(id); again.Personal.FirstName != "Ada" {
		t.Error("load aliased stored snapshot")
	}
}

func TestSnapshotTitleDerivation(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace's Resume"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", "Untitled Resume"},
	}
	for _, tc := range cases {
		l, _ := newTestSnapshotList()
		id, _ := l.Save(namedDoc(tc.first, tc.last), "")
		entries := l.List()
		if len(entries) != 1 || entries[0].ID != id {
			t.Fatalf("unexpected list %+v", entries)
		}
		if entries[0].Title != tc.want {
			t.Errorf("title(%q,%q) = %q, want %q", tc.first, tc.last, entries[0].Title, tc.want)
		}
	}
}

func TestSnapshotListBoundedMostRecentFirst(t *testing.T) {
	l, _ := newTestSnapshotList()
	for i := 0; i < 15; i++ {
		l.Save(namedDoc("User", ""), fmt.Sprintf("v%d", i))
	}

	entries := l.List()
	if len(entries) != MaxSnapshotEntries {
		t.Fatalf("list length = %d, want %d", len(entries), MaxSnapshotEntries)
	}
	if entries[0].Title != "v14" {
		t.Errorf("newest first: got %q", entries[0].Title)
	}
	if entries[len(entries)-1].Title != "v5" {
		t.Errorf("oldest kept: got %q", entries[len(entries)-1].Title)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestSnapshotDeleteAndClear(t *testing.T) {
	l, _ := newTestSnapshotList()
	id1, _ := l.Save(namedDoc("A", ""), "one")
	id2, _ := l.Save(namedDoc("B", ""), "two")

	l.Delete(id1)
	entries := l.List()
	if len(entries) != 1 || entries[0].ID != id2 {
		t.Fatalf("after delete: %+v", entries)
	}
	if l.Load(id1) != nil {
		t.Error("deleted snapshot still loads")
	}

	l.Clear()
	if got := l.List(); len(got) != 0 {
		t.Errorf("after clear: %+v", got)
	}
}

func TestSnapshotCorruptListReadsEmpty(t *testing.T) {
	l, storage := newTestSnapshotList()
	storage.Write(HistoryKey, []byte("{broken"))
	if got := l.List(); got != nil {
		t.Errorf("corrupt list = %+v", got)
	}
	// a save over a corrupt list starts fresh
	if _, ok := l.Save(namedDoc("A", ""), "fresh"); !ok {
		t.Fatal("save over corrupt list failed")
	}
	if got := l.List(); len(got) != 1 {
		t.Errorf("list after recovery = %+v", got)
	}
}
